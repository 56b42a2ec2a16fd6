package coding

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertRoundTrip(t *testing.T) {
	for _, s := range []string{
		"",
		"Hello",
		"héllo wörld",
		"ΔΩ 5€",
		"😀 emoji 🚀",
		"中文字符",
	} {
		t.Run(s, func(t *testing.T) {
			w := wide(s)

			u, err := UTF16BEToUTF8(w)
			require.NoError(t, err)
			assert.Equal(t, append([]byte(s), 0), u)

			back, err := UTF8ToUTF16BE(u)
			require.NoError(t, err)
			assert.Equal(t, w, back)
		})
	}
}

func TestConvertStopsAtTerminator(t *testing.T) {
	u, err := Convert(append(wide("ab"), 0x00, 0x63), WideToBytes)
	require.NoError(t, err)
	assert.Equal(t, []byte("ab\x00"), u)

	w, err := Convert([]byte("ab\x00cd"), BytesToWide)
	require.NoError(t, err)
	assert.Equal(t, wide("ab"), w)
}

func TestConvertRejectsUnpairedSurrogates(t *testing.T) {
	for _, input := range [][]byte{
		units(0xD800, 0),
		units(0xDC00, 0x0041, 0),
		units(0x0041, 0xD83D, 0x0042, 0),
	} {
		out, err := Convert(input, WideToBytes)
		assert.Nil(t, out)
		assert.ErrorIs(t, err, ErrConversionFailed)
		assert.ErrorIs(t, err, ErrInvalidInput)

		var seqErr *InvalidSequenceError
		assert.ErrorAs(t, err, &seqErr)
	}
}

func TestConvertRejectsInvalidUTF8(t *testing.T) {
	out, err := Convert([]byte{'a', 0xff, 0xfe, 0}, BytesToWide)
	assert.Nil(t, out)
	assert.ErrorIs(t, err, ErrConversionFailed)
}

func TestConvertTerminators(t *testing.T) {
	u, err := Convert(wide("x"), WideToBytes)
	require.NoError(t, err)
	assert.Equal(t, []byte{'x', 0}, u)

	w, err := Convert([]byte{'x', 0}, BytesToWide)
	require.NoError(t, err)
	assert.Equal(t, []byte{0, 'x', 0, 0}, w)
}

func TestDirection(t *testing.T) {
	assert.Equal(t, "UTF-16BE", WideToBytes.Source())
	assert.Equal(t, "UTF-8", WideToBytes.Target())
	assert.Equal(t, "UTF-8", BytesToWide.Source())
	assert.Equal(t, "UTF-16BE", BytesToWide.Target())
	assert.Equal(t, "UTF-16BE to UTF-8", WideToBytes.String())
}

func TestTrimNull(t *testing.T) {
	assert.Equal(t, []byte("ab"), TrimNull([]byte("ab\x00cd")))
	assert.Equal(t, []byte("ab"), TrimNull([]byte("ab")))
	assert.Empty(t, TrimNull([]byte{0}))
}

func TestTrimNull16(t *testing.T) {
	assert.Equal(t, units(0x0041, 0x0100), TrimNull16(units(0x0041, 0x0100, 0, 0x0042)))
	assert.Equal(t, units(0x0041), TrimNull16(units(0x0041)))
	assert.Empty(t, TrimNull16(units(0)))
}
