package coding

import (
	"encoding/binary"
	"unicode/utf16"
)

// wide returns s as a null-terminated big-endian UTF-16 buffer.
func wide(s string) []byte {
	units := utf16.Encode([]rune(s))
	b := make([]byte, 0, 2*len(units)+2)
	for _, u := range units {
		b = binary.BigEndian.AppendUint16(b, u)
	}
	return append(b, 0, 0)
}

// units builds a wide-form buffer from raw 16-bit values, without adding a
// terminator.
func units(v ...uint16) []byte {
	b := make([]byte, 0, 2*len(v))
	for _, u := range v {
		b = binary.BigEndian.AppendUint16(b, u)
	}
	return b
}
