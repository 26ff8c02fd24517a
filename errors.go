package iconfont

import "github.com/pkg/errors"

var (
	// ErrStylesheetParse is returned when the stylesheet cannot be tokenized.
	ErrStylesheetParse = errors.New("malformed stylesheet")

	// ErrUnparseableContent is returned when the content declaration of an icon rule
	// is not a hexadecimal escape like "\f101". The whole table load fails.
	ErrUnparseableContent = errors.New("unparseable icon content value")

	// ErrUnknownIcon is returned when the requested icon or wrapper icon is missing from the icon table.
	ErrUnknownIcon = errors.New("unknown icon name")

	// ErrEmptyGlyph is returned when a glyph renders no visible pixels, so there is nothing to crop to.
	ErrEmptyGlyph = errors.New("glyph bounding box is empty")

	// ErrScaleConvergence is returned when the auto scaling loop exceeds maxScaleIterations.
	ErrScaleConvergence = errors.New("auto scale did not converge")

	// ErrInvalidSize is returned for a non positive icon size.
	ErrInvalidSize = errors.New("icon size should be a positive integer")

	// ErrInvalidScale is returned for a scale outside of the (0, 1] range.
	ErrInvalidScale = errors.New("scale should be 'auto' or a number between 0 and 1")

	// ErrInvalidColor is returned when the color is neither a known color name nor a hex value.
	ErrInvalidColor = errors.New("invalid color")
)
