package iconfont

// Default export settings.
const (
	DefaultColor     = "black"
	DefaultExportDir = "exported"
)

// Options holds the settings of a single export.
type Options struct {
	// Color is a color name or a hex value.
	Color string
	// Scale is either Auto or a fraction between 0 and 1.
	Scale Scale
	// Filename defaults to the icon name with the .png extension.
	Filename string
	// ExportDir is created if it doesn't exist.
	ExportDir string
	// Wrapper is the name of the icon drawn around the exported icon.
	Wrapper string
}

// Option customizes an export.
type Option func(*Options)

// DefaultOptions returns the settings used when no option is provided.
func DefaultOptions() Options {
	return Options{
		Color:     DefaultColor,
		Scale:     Auto,
		ExportDir: DefaultExportDir,
	}
}

// WithColor sets the icon color, either a color name or a hex value.
func WithColor(color string) Option {
	return func(o *Options) { o.Color = color }
}

// WithScale sets the glyph size relative to the icon size.
func WithScale(scale Scale) Option {
	return func(o *Options) { o.Scale = scale }
}

// WithFilename overrides the name of the exported file.
func WithFilename(filename string) Option {
	return func(o *Options) { o.Filename = filename }
}

// WithExportDir sets the directory the icon is saved into.
func WithExportDir(dir string) Option {
	return func(o *Options) { o.ExportDir = dir }
}

// WithWrapper composes the icon with a wrapper icon drawn around it.
func WithWrapper(icon string) Option {
	return func(o *Options) { o.Wrapper = icon }
}

func newOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
