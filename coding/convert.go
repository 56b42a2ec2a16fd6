package coding

import (
	"bytes"
	"errors"
	"fmt"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Direction selects which way Convert runs.
type Direction int

const (
	WideToBytes Direction = iota
	BytesToWide
)

const (
	wideEncodingName = "UTF-16BE"
	byteEncodingName = "UTF-8"
)

// Source returns the name of the encoding Convert reads in this direction.
func (d Direction) Source() string {
	if d == WideToBytes {
		return wideEncodingName
	}
	return byteEncodingName
}

// Target returns the name of the encoding Convert produces in this direction.
func (d Direction) Target() string {
	if d == WideToBytes {
		return byteEncodingName
	}
	return wideEncodingName
}

func (d Direction) String() string {
	return d.Source() + " to " + d.Target()
}

var utf16be = unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)

// transformer returns a new transformer for a single conversion. Invalid
// UTF-8 is an error rather than being replaced by U+FFFD.
func (d Direction) transformer() transform.Transformer {
	if d == WideToBytes {
		return utf16be.NewDecoder()
	}
	return transform.Chain(encoding.UTF8Validator, utf16be.NewEncoder())
}

// Convert transcodes s between big-endian UTF-16 and UTF-8 in the given
// direction. The result is null-terminated: one zero byte for UTF-8, two
// for UTF-16BE. On failure no buffer is returned and the error wraps
// ErrConversionFailed.
//
// Wide-form input containing unpaired surrogates cannot be converted.
func Convert(s []byte, dir Direction) ([]byte, error) {
	var info StringInfo

	if dir == WideToBytes {
		var ok bool
		if info, ok = UTF16BEInfo(s); !ok {
			return nil, fmt.Errorf("%w: %s: %w", ErrConversionFailed, dir, info.Err())
		}
	} else {
		info, _ = UTF8Info(s)
	}

	// Worst case for both directions is four bytes per unit: a surrogate
	// pair on the UTF-16 side, RFC 3629's limit on the UTF-8 side.
	size := 4 * info.Units
	target := make([]byte, size, size+2)
	src := s[:info.Bytes]

	nDst, nSrc, err := dir.transformer().Transform(target, src, true)
	if err == nil && nSrc < len(src) {
		err = ErrShortBuffer
	}
	if err != nil {
		if errors.Is(err, transform.ErrShortDst) {
			err = ErrShortBuffer
		}
		return nil, fmt.Errorf("%w: %s: %w", ErrConversionFailed, dir, err)
	}

	target = append(target[:nDst], 0)
	if dir == BytesToWide {
		target = append(target, 0)
	}

	return target, nil
}

// UTF16BEToUTF8 is Convert(s, WideToBytes).
func UTF16BEToUTF8(s []byte) ([]byte, error) {
	return Convert(s, WideToBytes)
}

// UTF8ToUTF16BE is Convert(s, BytesToWide).
func UTF8ToUTF16BE(s []byte) ([]byte, error) {
	return Convert(s, BytesToWide)
}

// TrimNull returns the UTF-8 string b up to its first zero byte.
func TrimNull(b []byte) []byte {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		return b[:i]
	}
	return b
}

// TrimNull16 returns the big-endian UTF-16 string s up to its first zero
// unit.
func TrimNull16(s []byte) []byte {
	for i := 0; i+1 < len(s); i += 2 {
		if s[i] == 0 && s[i+1] == 0 {
			return s[:i]
		}
	}
	return s
}
