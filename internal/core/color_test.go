package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		in       string
		expected Color
	}{
		{"#EEE", RGB(0xee, 0xee, 0xee)},
		{"#eeeeee", RGB(0xee, 0xee, 0xee)},
		{"#ff0000", ColorRed},
		{"red", ColorRed},
		{" Red ", ColorRed},
		{"white", ColorWhite},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseColor(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestParseColorInvalid(t *testing.T) {
	for _, in := range []string{"", "#12", "#12345", "#gggggg", "notacolor"} {
		_, err := ParseColor(in)
		assert.Error(t, err, "input %q", in)
	}
}

func TestColorText(t *testing.T) {
	var c Color
	require.NoError(t, c.UnmarshalText([]byte("#EEE")))
	assert.Equal(t, ColorBackground, c)

	out, err := c.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "#eeeeee", string(out))

	r, g, b, a := ColorRed.RGBA()
	assert.Equal(t, [4]uint32{0xffff, 0, 0, 0xffff}, [4]uint32{r, g, b, a})
}
