package iconfont

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/esimov/iconfont/utils"
	"github.com/pkg/errors"
	"golang.org/x/term"
)

// PipeName is the destination name that indicates stdout is being used.
const PipeName = "-"

// Ops holds the icons to be exported by the command line tool and where to.
type Ops struct {
	Icons   []string
	Size    int
	Dst     string // export directory, or PipeName for writing a single icon to stdout
	Options Options
	Spinner *utils.Spinner
}

// Execute exports the requested icons one after the other.
func (op *Ops) Execute(f *IconFont) error {
	if len(op.Icons) == 0 {
		return errors.New("no icon to export")
	}

	if op.Dst == PipeName {
		if term.IsTerminal(int(os.Stdout.Fd())) {
			return errors.New("`-` should be used with a pipe for stdout")
		}
		return op.pipe(f, os.Stdout)
	}

	now := time.Now()
	if err := op.export(f, os.Stderr); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "\nExecution time: %s\n", utils.DecorateText(utils.FormatTime(time.Since(now)), utils.SuccessMessage))

	return nil
}

// pipe encodes the single requested icon to w.
func (op *Ops) pipe(f *IconFont, w io.Writer) error {
	if len(op.Icons) > 1 {
		return errors.Errorf("only one icon can be written to stdout, got %d", len(op.Icons))
	}

	img, err := f.render(op.Icons[0], op.Size, op.Options)
	if err != nil {
		return err
	}
	return Encode(w, img)
}

// export saves every icon into the destination directory and reports the progress on w.
// It stops at the first failing icon.
func (op *Ops) export(f *IconFont, w io.Writer) error {
	opts := op.Options
	opts.ExportDir = op.Dst

	for _, icon := range op.Icons {
		if op.Spinner != nil {
			op.Spinner.Start()
		}

		img, err := f.render(icon, op.Size, opts)
		if err == nil {
			err = f.save(img, icon, opts)
		}

		if op.Spinner != nil {
			op.Spinner.Stop()
		}
		op.printOpStatus(w, icon, opts, err)

		if err != nil {
			return err
		}
	}
	return nil
}

// printOpStatus displays the relevant information about the exported icon.
func (op *Ops) printOpStatus(w io.Writer, icon string, opts Options, err error) {
	if err != nil {
		fmt.Fprintf(w, "%s %s\n",
			utils.DecorateText(fmt.Sprintf("Error exporting %q:", icon), utils.ErrorMessage),
			utils.DecorateText(err.Error(), utils.DefaultMessage),
		)
		return
	}

	filename := opts.Filename
	if filename == "" {
		filename = icon + ".png"
	}
	fmt.Fprintf(w, "The icon has been saved as: %s\n",
		utils.DecorateText(filepath.Join(opts.ExportDir, filename), utils.SuccessMessage),
	)
}
