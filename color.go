package iconfont

import (
	"image/color"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/image/colornames"
)

// ParseColor converts a color name (e.g. "black", "steelblue") or a hex value
// ("#rgb" or "#rrggbb", the leading hash being optional) into an opaque color.
func ParseColor(s string) (color.NRGBA, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if c, ok := colornames.Map[name]; ok {
		return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 0xff}, nil
	}

	hex := strings.TrimPrefix(name, "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return color.NRGBA{}, errors.Wrapf(ErrInvalidColor, "%q", s)
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, errors.Wrapf(ErrInvalidColor, "%q", s)
	}
	return color.NRGBA{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: 0xff,
	}, nil
}
