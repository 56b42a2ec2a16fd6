package coding

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeJSONUTF8(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
		want  string
	}{
		{"single letter", units(0x0041, 0), "A"},
		{"empty", wide(""), ""},
		{"newline", units(0x000A, 0), `\n`},
		{"all escapes", wide("\r\n\f\b\t"), `\r\n\f\b\t`},
		{"quote and backslash", wide(`say "hi" \o/`), `say \"hi\" \\o/`},
		{"non-ascii untouched", wide("é\tü"), `é\tü`},
		{"high byte with control low byte", wide("Ċ"), "Ċ"},
		{"surrogate pair", wide("😀\n"), `😀\n`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := EncodeJSONUTF8(tt.input)
			require.NoError(t, err)
			assert.Equal(t, append([]byte(tt.want), 0), out)
		})
	}
}

func TestEncodeJSONUTF8NeverEmitsBareQuote(t *testing.T) {
	out, err := EncodeJSONUTF8(wide(`"\"`))
	require.NoError(t, err)

	body := TrimNull(out)
	for i, c := range body {
		if c == '"' {
			require.Greater(t, i, 0)
			assert.Equal(t, byte('\\'), body[i-1])
		}
	}
}

func TestEncodeJSONUTF8DecodesAsJSONString(t *testing.T) {
	for _, s := range []string{
		"plain",
		"multi\nline\r\nbody",
		`quotes "inside" and \backslashes\`,
		"tabs\tand\fform\bfeeds",
		"ünïcödé ΔΩ € 😀",
	} {
		out, err := EncodeJSONUTF8(wide(s))
		require.NoError(t, err)

		var decoded string
		literal := append(append([]byte{'"'}, TrimNull(out)...), '"')
		require.NoError(t, json.Unmarshal(literal, &decoded), string(literal))
		assert.Equal(t, s, decoded)
	}
}

func TestEncodeJSONUTF8Invalid(t *testing.T) {
	out, err := EncodeJSONUTF8(units(0xD800, 0x0041, 0))
	assert.Nil(t, out)
	assert.ErrorIs(t, err, ErrConversionFailed)
}
