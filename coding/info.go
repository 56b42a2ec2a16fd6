// Package coding inspects, validates and transcodes short message payloads
// between big-endian UTF-16 (the wide form carried over the modem
// transport), UTF-8, and the GSM 03.38 default alphabet.
//
// Wide-form and UTF-8 inputs are read up to their null terminator (two zero
// bytes or one zero byte respectively) or the end of the slice, whichever
// comes first. Buffers returned by this package are freshly allocated,
// carry their terminator, and belong to the caller.
package coding

import "encoding/binary"

const (
	surrogateFirst  = 0xd800
	surrogateMiddle = 0xdc00
	surrogateLast   = 0xdfff
)

// DecodeError classifies the first invalid sequence found by a scan.
type DecodeError int

const (
	ErrNone DecodeError = iota
	ErrUnmatchedSurrogate
	ErrUnexpectedSurrogate
	ErrUnknown
)

func (e DecodeError) String() string {
	switch e {
	case ErrNone:
		return "none"
	case ErrUnmatchedSurrogate:
		return "unmatched surrogate"
	case ErrUnexpectedSurrogate:
		return "unexpected surrogate"
	default:
		return "unknown"
	}
}

// StringInfo is the result of scanning a string once.
type StringInfo struct {
	// Bytes consumed before the terminator.
	Bytes int
	// Units is the number of 16-bit units (wide form) or non-continuation
	// bytes (UTF-8) consumed.
	Units int
	// Symbols is the number of complete Unicode scalar values.
	Symbols int

	// ErrorOffset is the byte offset of the first invalid sequence. It is
	// only meaningful when Error is not ErrNone.
	ErrorOffset int
	// InvalidBytes totals the bytes of every invalid sequence.
	InvalidBytes int
	Error        DecodeError
}

// Valid reports whether the scanned string decoded cleanly.
func (i StringInfo) Valid() bool {
	return i.InvalidBytes == 0
}

// Err returns nil for a clean scan, otherwise an *InvalidSequenceError
// describing the first invalid sequence.
func (i StringInfo) Err() error {
	if i.Valid() {
		return nil
	}
	return &InvalidSequenceError{Kind: i.Error, Offset: i.ErrorOffset, Bytes: i.InvalidBytes}
}

// record counts n invalid bytes. Kind and offset are kept from the first
// call only.
func (i *StringInfo) record(e DecodeError, n int) {
	if i.InvalidBytes == 0 {
		i.Error = e
		i.ErrorOffset = i.Bytes
	}
	i.InvalidBytes += n
}

// UTF16BEInfo calculates the number of bytes, code units, and valid symbols
// in the big-endian UTF-16 string s. The kind and offset of the first
// invalid sequence are recorded along with the total number of invalid
// bytes. It returns true if s contained only valid sequences.
//
// A lead surrogate that is not followed by a trail surrogate does not
// consume the unit after it; a trail surrogate with no lead is consumed.
// A single trailing byte that cannot form a unit is reported as ErrUnknown.
func UTF16BEInfo(s []byte) (StringInfo, bool) {
	var info StringInfo
	inSurrogate := false
	terminated := false

scan:
	for info.Bytes+1 < len(s) {
		v := binary.BigEndian.Uint16(s[info.Bytes:])

		if !inSurrogate {
			switch {
			case v == 0:
				terminated = true
				break scan
			case v < surrogateFirst || v > surrogateLast:
				info.Symbols++
			case v < surrogateMiddle:
				inSurrogate = true
			default:
				info.record(ErrUnexpectedSurrogate, 2)
			}
		} else {
			inSurrogate = false
			if v >= surrogateMiddle && v <= surrogateLast {
				info.Symbols++
			} else {
				info.record(ErrUnmatchedSurrogate, 2)
				// reparse v outside of the pair
				continue
			}
		}

		info.Units++
		info.Bytes += 2
	}

	if inSurrogate {
		info.record(ErrUnmatchedSurrogate, 2)
	}
	if !terminated && len(s)-info.Bytes == 1 {
		info.record(ErrUnknown, 1)
	}

	// Point at the lead surrogate rather than the unit after it.
	if info.Error == ErrUnmatchedSurrogate {
		info.ErrorOffset -= 2
	}

	return info, info.Valid()
}

// UTF8Info counts the bytes and characters of the UTF-8 string s. Every
// byte that is not a continuation byte counts as one unit and one symbol.
// This is a sizing pass only: malformed input is not detected and the
// result is always true.
func UTF8Info(s []byte) (StringInfo, bool) {
	var info StringInfo

	for _, c := range s {
		if c == 0 {
			break
		}
		if c&0xc0 != 0x80 {
			info.Units++
			info.Symbols++
		}
		info.Bytes++
	}

	return info, true
}
