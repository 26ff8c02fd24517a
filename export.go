package iconfont

import (
	"image"
	"image/color"
	"log/slog"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/esimov/iconfont/imop"
	"github.com/esimov/iconfont/utils"
	"github.com/pkg/errors"
)

// minRenderSize is the smallest size an icon is rendered at. Smaller icons are
// rendered at this size and scaled down afterwards, since rasterizing a glyph
// directly at a small size is likely to crop its edges.
const minRenderSize = 150

// request is a validated export request.
type request struct {
	icon    rune
	wrapper rune
	size    int
	fill    color.NRGBA
	opts    Options
}

// ExportIcon renders the icon as a size x size PNG image and saves it into the export directory.
// If a wrapper icon is provided with the WithWrapper option the two icons get
// composed as ExportIconWithWrapper does.
func (f *IconFont) ExportIcon(icon string, size int, opts ...Option) error {
	o := newOptions(opts)

	img, err := f.render(icon, size, o)
	if err != nil {
		return err
	}
	return f.save(img, icon, o)
}

// ExportIconWithWrapper renders the icon drawn inside the wrapper icon and saves the result into the export directory.
// The icon is always scaled at half of the wrapper's scale.
func (f *IconFont) ExportIconWithWrapper(icon, wrapper string, size int, opts ...Option) error {
	if wrapper == "" {
		return errors.Wrap(ErrUnknownIcon, "empty wrapper name")
	}
	return f.ExportIcon(icon, size, append(opts[:len(opts):len(opts)], WithWrapper(wrapper))...)
}

// Render returns the icon image, as ExportIcon would save it.
func (f *IconFont) Render(icon string, size int, opts ...Option) (*image.NRGBA, error) {
	return f.render(icon, size, newOptions(opts))
}

// RenderWithWrapper returns the icon composed with the wrapper icon, as ExportIconWithWrapper would save it.
func (f *IconFont) RenderWithWrapper(icon, wrapper string, size int, opts ...Option) (*image.NRGBA, error) {
	if wrapper == "" {
		return nil, errors.Wrap(ErrUnknownIcon, "empty wrapper name")
	}
	return f.Render(icon, size, append(opts[:len(opts):len(opts)], WithWrapper(wrapper))...)
}

func (f *IconFont) render(icon string, size int, o Options) (*image.NRGBA, error) {
	req, err := f.newRequest(icon, size, o)
	if err != nil {
		return nil, err
	}
	if o.Wrapper != "" {
		return f.composeWithWrapper(req)
	}
	return f.compose(req)
}

// newRequest checks the export parameters before any rendering takes place.
func (f *IconFont) newRequest(icon string, size int, o Options) (*request, error) {
	if size <= 0 {
		return nil, errors.Wrapf(ErrInvalidSize, "got %d", size)
	}
	if !o.Scale.valid() {
		return nil, errors.Wrapf(ErrInvalidScale, "got %v", float64(o.Scale))
	}

	req := &request{size: size, opts: o}

	var ok bool
	if req.icon, ok = f.icons.Lookup(icon); !ok {
		return nil, errors.Wrapf(ErrUnknownIcon, "%q", icon)
	}
	if o.Wrapper != "" {
		if req.wrapper, ok = f.icons.Lookup(o.Wrapper); !ok {
			return nil, errors.Wrapf(ErrUnknownIcon, "wrapper %q", o.Wrapper)
		}
	}

	fill, err := ParseColor(o.Color)
	if err != nil {
		return nil, err
	}
	req.fill = fill

	return req, nil
}

// compose renders a single icon.
func (f *IconFont) compose(req *request) (*image.NRGBA, error) {
	size := utils.Max(minRenderSize, req.size)

	glyph, err := f.scaleGlyph(req.icon, size, req.opts.Scale)
	if err != nil {
		return nil, err
	}
	defer glyph.Close()

	if glyph.bbox.Empty() {
		return nil, errors.Wrapf(ErrEmptyGlyph, "%U", req.icon)
	}

	// Draw the icon on an alpha mask.
	mask := image.NewAlpha(image.Rect(0, 0, size, size))
	glyph.draw(mask)

	// Create a solid color image and apply the mask.
	iconImg := imaging.New(size, size, req.fill)
	imop.DstIn(iconImg, mask)

	out := center(iconImg, glyph.bbox, glyph.bbox, size)

	// Scale the image down to the requested size if needed.
	if req.size != size {
		out = imaging.Resize(out, req.size, req.size, imaging.Lanczos)
	}
	return out, nil
}

// composeWithWrapper renders the icon inside the wrapper icon. Both glyphs
// share the same mask and are rendered directly at the requested size.
// The image is cropped to the wrapper's bounding box, but it's positioned
// by the inner icon's bounding box.
func (f *IconFont) composeWithWrapper(req *request) (*image.NRGBA, error) {
	fullScale := 1.0
	if req.opts.Scale != Auto {
		fullScale = float64(req.opts.Scale)
	}

	inner, err := f.scaleGlyph(req.icon, req.size, Scale(fullScale/2))
	if err != nil {
		return nil, err
	}
	defer inner.Close()

	wrapper, err := f.scaleGlyph(req.wrapper, req.size, Scale(fullScale))
	if err != nil {
		return nil, err
	}
	defer wrapper.Close()

	if wrapper.bbox.Empty() {
		return nil, errors.Wrapf(ErrEmptyGlyph, "wrapper %U", req.wrapper)
	}
	if inner.bbox.Empty() {
		return nil, errors.Wrapf(ErrEmptyGlyph, "%U", req.icon)
	}

	mask := image.NewAlpha(image.Rect(0, 0, req.size, req.size))
	wrapper.draw(mask)
	inner.draw(mask)

	iconImg := imaging.New(req.size, req.size, req.fill)
	imop.DstIn(iconImg, mask)

	return center(iconImg, wrapper.bbox, inner.bbox, req.size), nil
}

// center crops the image to the crop rectangle and pastes the result on
// a transparent size x size canvas, bordered so that a box with the
// dimensions of the placement rectangle would be centered.
func center(img *image.NRGBA, crop, placement image.Rectangle, size int) *image.NRGBA {
	cropped := imaging.Crop(img, crop)

	borderW := (size - placement.Dx()) / 2
	borderH := (size - placement.Dy()) / 2

	out := imaging.New(size, size, color.NRGBA{})
	return imaging.Paste(out, cropped, image.Pt(borderW, borderH))
}

// save writes the image as PNG into the export directory.
func (f *IconFont) save(img *image.NRGBA, icon string, o Options) error {
	dir := o.ExportDir
	if dir == "" {
		dir = "."
	}
	filename := o.Filename
	if filename == "" {
		filename = icon + ".png"
	}
	path := filepath.Join(dir, filename)

	if err := writeImage(path, img); err != nil {
		return err
	}

	f.logger.Debug("icon exported",
		slog.String("icon", icon),
		slog.String("wrapper", o.Wrapper),
		slog.String("path", path),
		slog.Int("size", img.Bounds().Dx()),
	)
	return nil
}
