package iconfont

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColor_ParseColor(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  color.NRGBA
	}{
		{name: "named", input: "black", want: color.NRGBA{A: 0xff}},
		{name: "named mixed case", input: "SteelBlue", want: color.NRGBA{R: 0x46, G: 0x82, B: 0xb4, A: 0xff}},
		{name: "hex", input: "#ff8000", want: color.NRGBA{R: 0xff, G: 0x80, A: 0xff}},
		{name: "hex without hash", input: "00ff00", want: color.NRGBA{G: 0xff, A: 0xff}},
		{name: "short hex", input: "#fa0", want: color.NRGBA{R: 0xff, G: 0xaa, A: 0xff}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c, err := ParseColor(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.want, c)
		})
	}
}

func TestColor_ShouldRejectInvalidColor(t *testing.T) {
	for _, input := range []string{"", "notacolor", "#12345", "#gggggg"} {
		_, err := ParseColor(input)
		assert.ErrorIs(t, err, ErrInvalidColor, "input %q", input)
	}
}
