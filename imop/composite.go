// Package imop implements the Porter-Duff style operations used for combining
// glyph coverage masks and for applying them over a solid color layer.
// The image/draw core package composites with source-over only, which would
// accumulate coverage where two glyphs overlap instead of keeping the maximum.
package imop

import (
	"image"

	"github.com/esimov/iconfont/utils"
)

// Lighten merges the src coverage into dst, keeping the highest coverage of the two on every pixel.
// Only the overlapping area of the two masks is touched.
func Lighten(dst, src *image.Alpha) {
	r := dst.Bounds().Intersect(src.Bounds())

	for y := r.Min.Y; y < r.Max.Y; y++ {
		di := dst.PixOffset(r.Min.X, y)
		si := src.PixOffset(r.Min.X, y)
		for x := r.Min.X; x < r.Max.X; x++ {
			dst.Pix[di] = utils.Max(dst.Pix[di], src.Pix[si])
			di++
			si++
		}
	}
}

// DstIn keeps the destination only where the mask is covered:
// the destination alpha is multiplied by the mask alpha.
// Pixels outside the mask bounds become fully transparent.
func DstIn(dst *image.NRGBA, mask *image.Alpha) {
	b := dst.Bounds()

	for y := b.Min.Y; y < b.Max.Y; y++ {
		di := dst.PixOffset(b.Min.X, y)
		for x := b.Min.X; x < b.Max.X; x++ {
			var ma uint32
			if (image.Point{X: x, Y: y}).In(mask.Rect) {
				ma = uint32(mask.Pix[mask.PixOffset(x, y)])
			}
			da := uint32(dst.Pix[di+3])
			dst.Pix[di+3] = uint8((da*ma + 127) / 255)
			di += 4
		}
	}
}

// Bounds returns the smallest rectangle enclosing every non-transparent pixel of the mask.
// An empty rectangle is returned if the mask has no coverage at all.
func Bounds(img *image.Alpha) image.Rectangle {
	b := img.Bounds()
	minX, minY := b.Max.X, b.Max.Y
	maxX, maxY := b.Min.X, b.Min.Y

	for y := b.Min.Y; y < b.Max.Y; y++ {
		i := img.PixOffset(b.Min.X, y)
		for x := b.Min.X; x < b.Max.X; x++ {
			if img.Pix[i] != 0 {
				minX = utils.Min(minX, x)
				minY = utils.Min(minY, y)
				maxX = utils.Max(maxX, x+1)
				maxY = utils.Max(maxY, y+1)
			}
			i++
		}
	}

	if minX >= maxX || minY >= maxY {
		return image.Rectangle{}
	}
	return image.Rect(minX, minY, maxX, maxY)
}
