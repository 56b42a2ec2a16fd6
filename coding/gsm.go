package coding

// IsGSMCodepoint reports whether the UCS-2 character with most-significant
// byte msb and least-significant byte lsb can be represented in the GSM
// 03.38 default alphabet. The table follows the ETSI mapping published at
// http://www.unicode.org/Public/MAPPINGS/ETSI/GSM0338.TXT.
//
// Copyright (c) 2000 - 2009 Unicode, Inc. All Rights reserved.
// Unicode, Inc. hereby grants the right to freely use the information
// supplied in this file in the creation of products supporting the
// Unicode Standard, and to make copies of this file in any form for
// internal or external distribution as long as this notice remains
// attached.
func IsGSMCodepoint(msb, lsb byte) bool {
	switch msb {
	case 0x00:
		if (lsb >= 0x20 && lsb <= 0x5f) ||
			(lsb >= 0x61 && lsb <= 0x7e) ||
			(lsb >= 0xa3 && lsb <= 0xa5) ||
			(lsb >= 0xc4 && lsb <= 0xc6) ||
			(lsb >= 0xe4 && lsb <= 0xe9) {
			return true
		}
		switch lsb {
		case 0x0a, 0x0c, 0x0d,
			0xa0, 0xa1, 0xa7,
			0xbf, 0xc9, 0xd1,
			0xd6, 0xd8, 0xdc,
			0xdf, 0xe0, 0xec,
			0xf1, 0xf2, 0xf6,
			0xf8, 0xf9, 0xfc:
			return true
		}
		return false

	case 0x03:
		switch lsb {
		case 0x93, 0x94,
			0x98, 0x9b,
			0x9e, 0xa0,
			0xa3, 0xa6,
			0xa8, 0xa9:
			return true
		}
		return false

	case 0x20:
		// Euro sign
		return lsb == 0xac
	}

	return false
}

// IsGSMString reports whether every character of the big-endian UTF-16
// string s can be represented in the GSM default alphabet. An empty string
// is representable.
func IsGSMString(s []byte) bool {
	info, _ := UTF16BEInfo(s)

	for i := 0; i < info.Units; i++ {
		if !IsGSMCodepoint(s[2*i], s[2*i+1]) {
			return false
		}
	}

	return true
}
