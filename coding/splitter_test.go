package coding

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitterLen(t *testing.T) {
	assert.Equal(t, 3, GSM7Splitter.Len("abc"))
	assert.Equal(t, 2, GSM7Splitter.Len("€"))
	assert.Equal(t, 4, UTF16Splitter.Len("ab"))
	assert.Equal(t, 4, UTF16Splitter.Len("😀"))
}

func TestSplitSMS(t *testing.T) {
	tests := []struct {
		name    string
		msg     string
		gsm     bool
		lengths []int
	}{
		{"short gsm", "hello", true, []int{5}},
		{"full single gsm", strings.Repeat("a", 160), true, []int{160}},
		{"multipart gsm", strings.Repeat("a", 161), true, []int{153, 8}},
		{"full single ucs2", strings.Repeat("é", 70), false, []int{70}},
		{"multipart ucs2", strings.Repeat("é", 71), false, []int{67, 4}},
		{"extension characters", strings.Repeat("€", 81), true, []int{76, 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			segments := SplitSMS(tt.msg, tt.gsm)
			require.Len(t, segments, len(tt.lengths))
			for i, n := range tt.lengths {
				assert.Len(t, []rune(segments[i]), n)
			}
			assert.Equal(t, tt.msg, strings.Join(segments, ""))
		})
	}
}

func TestPlanSegments(t *testing.T) {
	segments, gsm, err := PlanSegments(wide("hello"))
	require.NoError(t, err)
	assert.True(t, gsm)
	assert.Equal(t, []string{"hello"}, segments)

	segments, gsm, err = PlanSegments(wide("héllo 😀"))
	require.NoError(t, err)
	assert.False(t, gsm)
	assert.Equal(t, []string{"héllo 😀"}, segments)

	_, _, err = PlanSegments(units(0xDC00, 0))
	assert.ErrorIs(t, err, ErrConversionFailed)
}
