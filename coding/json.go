package coding

// jsonEscapes maps Basic Latin characters that must be escaped inside a
// JSON string to the letter following the backslash.
var jsonEscapes = map[byte]byte{
	'\r': 'r',
	'\n': 'n',
	'\f': 'f',
	'\b': 'b',
	'\t': 't',
	'\\': '\\',
	'"':  '"',
}

// EncodeJSONUTF8 copies the big-endian UTF-16 string s to a newly allocated
// UTF-8 buffer suitable for output as the contents of a single JSON string.
// Escaping happens on the UTF-16 form, before transcoding, so multi-byte
// UTF-8 sequences are never mistaken for control characters. The result is
// terminated by one zero byte.
func EncodeJSONUTF8(s []byte) ([]byte, error) {
	info, _ := UTF16BEInfo(s)

	// Worst case is every unit escaped with a two-unit backslash sequence,
	// plus the terminator.
	b := make([]byte, 0, 6*info.Units+2)

	for i := 0; i < info.Units; i++ {
		msb, lsb := s[2*i], s[2*i+1]

		if msb == 0 {
			if escape, ok := jsonEscapes[lsb]; ok {
				b = append(b, 0, '\\')
				lsb = escape
			}
		}

		b = append(b, msb, lsb)
	}

	b = append(b, 0, 0)

	return Convert(b, WideToBytes)
}
