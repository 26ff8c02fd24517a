package imop

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComposite_LightenShouldKeepMaxCoverage(t *testing.T) {
	dst := image.NewAlpha(image.Rect(0, 0, 4, 4))
	src := image.NewAlpha(image.Rect(0, 0, 4, 4))

	dst.SetAlpha(1, 1, color.Alpha{A: 200})
	src.SetAlpha(1, 1, color.Alpha{A: 100})
	dst.SetAlpha(2, 2, color.Alpha{A: 50})
	src.SetAlpha(2, 2, color.Alpha{A: 150})
	src.SetAlpha(3, 0, color.Alpha{A: 255})

	Lighten(dst, src)

	assert.Equal(t, uint8(200), dst.AlphaAt(1, 1).A)
	assert.Equal(t, uint8(150), dst.AlphaAt(2, 2).A)
	assert.Equal(t, uint8(255), dst.AlphaAt(3, 0).A)
	assert.Equal(t, uint8(0), dst.AlphaAt(0, 0).A)
}

func TestComposite_LightenShouldClipToOverlap(t *testing.T) {
	dst := image.NewAlpha(image.Rect(0, 0, 4, 4))
	src := image.NewAlpha(image.Rect(2, 2, 6, 6))
	for y := 2; y < 6; y++ {
		for x := 2; x < 6; x++ {
			src.SetAlpha(x, y, color.Alpha{A: 255})
		}
	}

	Lighten(dst, src)

	assert.Equal(t, image.Rect(2, 2, 4, 4), Bounds(dst))
}

func TestComposite_DstIn(t *testing.T) {
	dst := image.NewNRGBA(image.Rect(0, 0, 3, 1))
	for x := 0; x < 3; x++ {
		dst.SetNRGBA(x, 0, color.NRGBA{R: 10, G: 20, B: 30, A: 255})
	}
	mask := image.NewAlpha(image.Rect(0, 0, 2, 1))
	mask.SetAlpha(0, 0, color.Alpha{A: 128})
	mask.SetAlpha(1, 0, color.Alpha{A: 255})

	DstIn(dst, mask)

	assert.Equal(t, color.NRGBA{R: 10, G: 20, B: 30, A: 128}, dst.NRGBAAt(0, 0))
	assert.Equal(t, color.NRGBA{R: 10, G: 20, B: 30, A: 255}, dst.NRGBAAt(1, 0))
	// Outside of the mask.
	assert.Equal(t, uint8(0), dst.NRGBAAt(2, 0).A)
}

func TestComposite_Bounds(t *testing.T) {
	mask := image.NewAlpha(image.Rect(0, 0, 10, 10))
	assert.True(t, Bounds(mask).Empty())

	mask.SetAlpha(2, 3, color.Alpha{A: 1})
	mask.SetAlpha(7, 5, color.Alpha{A: 255})

	assert.Equal(t, image.Rect(2, 3, 8, 6), Bounds(mask))
}
