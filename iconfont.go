package iconfont

import (
	"log/slog"

	"github.com/pkg/errors"
	"golang.org/x/image/font/opentype"
)

// IconFont is a web icon font: a font file and the stylesheet mapping the
// icon class names to the font's codepoints.
// The icon table is built once by New and never changes afterwards,
// so the exporting methods can be called concurrently.
type IconFont struct {
	cssFile    string
	fontFile   string
	keepPrefix bool

	icons  *Table
	prefix string
	font   *opentype.Font
	logger *slog.Logger
}

// FontOption customizes the IconFont created by New.
type FontOption func(*IconFont)

// WithLogger sets the logger used for reporting debug information. By default nothing is logged.
func WithLogger(logger *slog.Logger) FontOption {
	return func(f *IconFont) {
		if logger != nil {
			f.logger = logger
		}
	}
}

// New loads the icon table from the stylesheet and parses the font file.
// If keepPrefix is false the prefix shared by all the icon names is stripped off.
func New(cssFile, fontFile string, keepPrefix bool, opts ...FontOption) (*IconFont, error) {
	f := &IconFont{
		cssFile:    cssFile,
		fontFile:   fontFile,
		keepPrefix: keepPrefix,
		logger:     slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(f)
	}

	var err error
	if f.icons, f.prefix, err = LoadTable(cssFile, keepPrefix); err != nil {
		return nil, err
	}
	if f.font, err = loadFont(fontFile); err != nil {
		return nil, errors.Wrapf(err, "could not load the icon font")
	}

	f.logger.Debug("icon font loaded",
		slog.String("css", cssFile),
		slog.String("font", fontFile),
		slog.Int("icons", f.icons.Len()),
		slog.String("prefix", f.prefix),
	)
	return f, nil
}

// Icons returns the icon table.
func (f *IconFont) Icons() *Table {
	return f.icons
}

// CommonPrefix returns the prefix shared by the icon names found in the stylesheet.
func (f *IconFont) CommonPrefix() string {
	return f.prefix
}

// KeepPrefix reports whether the icon names kept the common prefix.
func (f *IconFont) KeepPrefix() bool {
	return f.keepPrefix
}

// CSSFile returns the path of the stylesheet.
func (f *IconFont) CSSFile() string {
	return f.cssFile
}

// FontFile returns the path of the font file.
func (f *IconFont) FontFile() string {
	return f.fontFile
}
