package coding

// Splitter returns the number of bits a rune occupies in an encoded
// message payload.
type Splitter func(rune) int

// gsmExtension holds the characters that the default alphabet reaches
// through the escape table; each costs two septets.
var gsmExtension = map[rune]bool{
	'\f': true, '^': true, '{': true, '}': true, '\\': true,
	'[': true, '~': true, ']': true, '|': true, '€': true,
}

var (
	GSM7Splitter Splitter = func(r rune) int {
		if gsmExtension[r] {
			return 14
		}
		return 7
	}
	UTF16Splitter Splitter = func(r rune) int {
		if (r <= 0xD7FF) || ((r >= 0xE000) && (r <= 0xFFFF)) {
			return 16
		}
		return 32
	}
)

const (
	singleLimitBytes    = 140     // 1120 bits
	multipartLimitBytes = 140 - 6 // 6-byte UDH overhead
)

// Len returns the encoded size of input in whole bytes.
func (fn Splitter) Len(input string) (n int) {
	for _, point := range input {
		n += fn(point)
	}
	if n%8 != 0 {
		n += 8 - n%8
	}
	return n / 8
}

// Split cuts input into segments of at most limit encoded bytes without
// separating the bits of a single rune.
func (fn Splitter) Split(input string, limit int) (segments []string) {
	limit *= 8
	points := []rune(input)
	var start, length int
	for i := 0; i < len(points); i++ {
		length += fn(points[i])
		if length > limit {
			segments = append(segments, string(points[start:i]))
			start, length = i, 0
			i--
		}
	}
	if length > 0 {
		segments = append(segments, string(points[start:]))
	}
	return
}

// SplitSMS splits msg into single- or multipart segments, packing GSM
// alphabet text into septets and everything else as UTF-16.
func SplitSMS(msg string, gsm bool) []string {
	sp := UTF16Splitter
	if gsm {
		sp = GSM7Splitter
	}

	if sp.Len(msg) <= singleLimitBytes {
		return []string{msg}
	}
	return sp.Split(msg, multipartLimitBytes)
}

// PlanSegments decides the payload alphabet for the big-endian UTF-16
// message wide and splits it into transport segments.
func PlanSegments(wide []byte) (segments []string, gsm bool, err error) {
	text, err := UTF16BEToUTF8(wide)
	if err != nil {
		return nil, false, err
	}

	gsm = IsGSMString(wide)
	return SplitSMS(string(TrimNull(text)), gsm), gsm, nil
}
