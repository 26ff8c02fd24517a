package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/esimov/iconfont"
	"github.com/esimov/iconfont/utils"
)

const HelpBanner = `
┬┌─┐┌─┐┌┐┌┌─┐┌─┐┌┐┌┌┬┐
││  │ ││││├┤ │ ││││ │
┴└─┘└─┘┘└┘└  └─┘┘└┘ ┴

Export web icon font glyphs as PNG images.
    Version: %s

`

// Version indicates the current build version.
var Version string

// config holds the defaults of the export flags, which can be overridden by environment variables.
type config struct {
	Size       int    `env:"ICONFONT_SIZE" envDefault:"16"`
	Color      string `env:"ICONFONT_COLOR" envDefault:"black"`
	Scale      string `env:"ICONFONT_SCALE" envDefault:"auto"`
	ExportDir  string `env:"ICONFONT_EXPORT_DIR" envDefault:"exported"`
	KeepPrefix bool   `env:"ICONFONT_KEEP_PREFIX" envDefault:"false"`
}

func main() {
	log.SetFlags(0)

	var cfg config
	if err := env.Parse(&cfg); err != nil {
		log.Fatalf(utils.DecorateText("Invalid environment configuration: %v", utils.ErrorMessage), err)
	}

	var (
		cssFile    = flag.String("css", "", "Path or URL of the icon font stylesheet")
		fontFile   = flag.String("ttf", "", "Path or URL of the icon font file (TTF, OTF, WOFF or WOFF2)")
		icons      = flag.String("icon", "", "Comma separated list of the icons to export")
		wrapper    = flag.String("wrapper", "", "Icon drawn around the exported icons")
		size       = flag.Int("size", cfg.Size, "Icon size in pixels")
		color      = flag.String("color", cfg.Color, "Color name or hex value")
		scale      = flag.String("scale", cfg.Scale, "Scaling factor between 0 and 1, or 'auto'")
		dst        = flag.String("out", cfg.ExportDir, "Export directory, or - for writing a single icon to stdout")
		filename   = flag.String("filename", "", "Output file name (only when exporting a single icon)")
		keepPrefix = flag.Bool("keep-prefix", cfg.KeepPrefix, "Keep the common prefix of the icon names")
		list       = flag.Bool("list", false, "List the available icons")
		verbose    = flag.Bool("v", false, "Verbose output")
	)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, HelpBanner, Version)
		flag.PrintDefaults()
	}
	flag.Parse()

	if *cssFile == "" || *fontFile == "" {
		flag.Usage()
		log.Fatal(utils.DecorateText("\nPlease provide the icon font stylesheet and font file!", utils.ErrorMessage))
	}

	logger := slog.New(slog.DiscardHandler)
	if *verbose {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	css, cleanCSS, err := resolvePath(*cssFile)
	if err != nil {
		fatal("Failed to download the stylesheet: ", err)
	}
	ttf, cleanTTF, err := resolvePath(*fontFile)
	if err != nil {
		cleanCSS()
		fatal("Failed to download the font file: ", err)
	}

	err = run(css, ttf, *keepPrefix, *list, logger, func(f *iconfont.IconFont) (*iconfont.Ops, error) {
		names := splitList(*icons)
		if len(names) == 0 {
			flag.Usage()
			return nil, fmt.Errorf("the -icon flag is empty")
		}
		if *filename != "" && len(names) > 1 {
			return nil, fmt.Errorf("-filename can be used only when exporting a single icon")
		}

		sc, err := iconfont.ParseScale(*scale)
		if err != nil {
			return nil, err
		}

		spinnerText := fmt.Sprintf("%s %s",
			utils.DecorateText("⚡ ICONFONT", utils.StatusMessage),
			utils.DecorateText("is exporting the icons...", utils.DefaultMessage))

		op := &iconfont.Ops{
			Icons: names,
			Size:  *size,
			Dst:   *dst,
			Options: iconfont.Options{
				Color:    *color,
				Scale:    sc,
				Filename: *filename,
				Wrapper:  *wrapper,
			},
		}
		if *dst != iconfont.PipeName && !*verbose {
			op.Spinner = utils.NewSpinner(spinnerText, time.Millisecond*100, true)
		}
		return op, nil
	})
	cleanCSS()
	cleanTTF()

	if err != nil {
		fatal("Error exporting the icons: ", err)
	}
}

// run loads the icon font, then either lists its icons or executes the operation built by newOps.
func run(css, ttf string, keepPrefix, list bool, logger *slog.Logger, newOps func(*iconfont.IconFont) (*iconfont.Ops, error)) error {
	f, err := iconfont.New(css, ttf, keepPrefix, iconfont.WithLogger(logger))
	if err != nil {
		return err
	}

	if list {
		for name, char := range f.Icons().All() {
			fmt.Printf("%s\t%U\n", name, char)
		}
		return nil
	}

	op, err := newOps(f)
	if err != nil {
		return err
	}
	return op.Execute(f)
}

// resolvePath downloads the file if the path is an URL. The returned function removes the downloaded copy.
func resolvePath(path string) (string, func(), error) {
	if !utils.IsValidUrl(path) {
		return path, func() {}, nil
	}

	file, err := utils.DownloadFile(path)
	if err != nil {
		return "", nil, err
	}
	file.Close()

	return file.Name(), func() { os.Remove(file.Name()) }, nil
}

// splitList splits a comma separated list, dropping the empty items.
func splitList(s string) []string {
	var items []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

func fatal(msg string, err error) {
	log.Fatalf("%s%s",
		utils.DecorateText(msg, utils.ErrorMessage),
		utils.DecorateText(err.Error(), utils.DefaultMessage),
	)
}
