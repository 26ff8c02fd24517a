package iconfont

import (
	"bytes"
	"image"
	"log/slog"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/esimov/iconfont/imop"
	"github.com/esimov/iconfont/utils"
	"github.com/pkg/errors"
	webfont "github.com/tdewolff/font"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// maxScaleIterations bounds the auto scaling loop.
var maxScaleIterations = 1000

// newFace creates the font face a glyph is measured and drawn with.
var newFace = opentype.NewFace

// scaleDamping is applied on the resize ratio every two iterations of the auto scaling loop.
const scaleDamping = 0.99

// Scale defines the glyph size relative to the icon size.
// The zero value is Auto, otherwise it's a fraction in the (0, 1] range.
type Scale float64

// Auto scales the glyph to the largest size which still fits inside the icon.
const Auto Scale = 0

// ParseScale parses either the "auto" keyword or a fraction between 0 and 1.
func ParseScale(s string) (Scale, error) {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, "auto") {
		return Auto, nil
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil || !Scale(v).valid() || v == 0 {
		return 0, errors.Wrapf(ErrInvalidScale, "%q", s)
	}
	return Scale(v), nil
}

// String returns the textual representation of the scale.
func (s Scale) String() string {
	if s == Auto {
		return "auto"
	}
	return strconv.FormatFloat(float64(s), 'g', -1, 64)
}

func (s Scale) valid() bool {
	return s == Auto || (s > 0 && s <= 1)
}

// scaledGlyph is a glyph sized for a specific canvas.
type scaledGlyph struct {
	face      font.Face
	text      string
	pixelSize int
	ink       fixed.Rectangle26_6 // ink bounds relative to the dot

	// width and height are the measured ink extents in pixels.
	width  int
	height int

	// bbox encloses the visible pixels of the glyph drawn alone on the canvas.
	bbox image.Rectangle
}

// loadFont reads a TrueType or OpenType font file.
// WOFF and WOFF2 web fonts are converted to SFNT first.
func loadFont(path string) (*opentype.Font, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "could not read the font file")
	}

	if isWebFont(data) {
		if data, err = webfont.ToSFNT(data); err != nil {
			return nil, errors.Wrapf(err, "could not convert %s to sfnt", path)
		}
	}

	f, err := opentype.Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "could not parse the font file %s", path)
	}
	return f, nil
}

// isWebFont checks the WOFF and WOFF2 magic bytes.
func isWebFont(data []byte) bool {
	return bytes.HasPrefix(data, []byte("wOFF")) || bytes.HasPrefix(data, []byte("wOF2"))
}

// newScaledGlyph renders the character at the given pixel size and measures its ink.
func newScaledGlyph(f *opentype.Font, char rune, pixelSize int) (*scaledGlyph, error) {
	face, err := newFace(f, &opentype.FaceOptions{
		Size:    float64(pixelSize),
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "could not create font face of size %d", pixelSize)
	}

	g := &scaledGlyph{
		face:      face,
		text:      string(char),
		pixelSize: pixelSize,
	}
	g.ink, _ = font.BoundString(face, g.text)
	if !g.ink.Empty() {
		g.width = g.ink.Max.X.Ceil() - g.ink.Min.X.Floor()
		g.height = g.ink.Max.Y.Ceil() - g.ink.Min.Y.Floor()
	}
	return g, nil
}

// scaleGlyph sizes the character for a size x size canvas.
//
// With a fixed scale the glyph is rendered once at floor(size * scale) pixels.
// In auto mode the pixel size is adjusted until the larger of the measured
// dimensions fits inside the canvas. The measured values are rounded, so it
// might take a few iterations. The resize ratio is damped every two iterations
// to avoid oscillating around the target size.
func (f *IconFont) scaleGlyph(char rune, size int, scale Scale) (*scaledGlyph, error) {
	pixelSize := size
	if scale != Auto {
		pixelSize = int(math.Floor(float64(size) * float64(scale)))
	}

	g, err := newScaledGlyph(f.font, char, utils.Max(pixelSize, 1))
	if err != nil {
		return nil, err
	}

	if scale == Auto {
		factor := 1.0
		for iteration := 0; ; {
			dim := utils.Max(g.width, g.height)
			if dim <= size {
				break
			}
			if iteration >= maxScaleIterations {
				g.Close()
				return nil, errors.Wrapf(ErrScaleConvergence, "%U at size %d after %d iterations", char, size, iteration)
			}
			pixelSize = int(math.Floor(float64(size) * float64(size) / float64(dim) * factor))

			g.Close()
			if g, err = newScaledGlyph(f.font, char, utils.Max(pixelSize, 1)); err != nil {
				return nil, err
			}

			iteration++
			if iteration%2 == 0 {
				factor *= scaleDamping
			}
			f.logger.Debug("rescaling glyph",
				slog.String("char", strconv.QuoteRune(char)),
				slog.Int("iteration", iteration),
				slog.Int("measured", dim),
				slog.Int("pixelSize", g.pixelSize),
			)
		}
	}

	mask := image.NewAlpha(image.Rect(0, 0, size, size))
	g.draw(mask)
	g.bbox = imop.Bounds(mask)

	return g, nil
}

// draw renders the glyph at full coverage into the mask, centered by its measured size.
// The coverage already present in the mask is preserved where it's higher.
func (g *scaledGlyph) draw(mask *image.Alpha) {
	if g.ink.Empty() {
		return
	}
	b := mask.Bounds()
	x := b.Min.X + utils.FloorDiv(b.Dx()-g.width, 2)
	y := b.Min.Y + utils.FloorDiv(b.Dy()-g.height, 2)

	layer := image.NewAlpha(b)
	d := &font.Drawer{
		Dst:  layer,
		Src:  image.Opaque,
		Face: g.face,
		Dot: fixed.Point26_6{
			X: fixed.I(x - g.ink.Min.X.Floor()),
			Y: fixed.I(y - g.ink.Min.Y.Floor()),
		},
	}
	d.DrawString(g.text)

	imop.Lighten(mask, layer)
}

// Close releases the font face.
func (g *scaledGlyph) Close() error {
	return g.face.Close()
}
