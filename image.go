package iconfont

import (
	"bytes"
	"image"
	"io"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/pkg/errors"
)

// Encode writes the image to w in PNG format.
func Encode(w io.Writer, img image.Image) error {
	if err := imaging.Encode(w, img, imaging.PNG); err != nil {
		return errors.Wrap(err, "could not encode the image")
	}
	return nil
}

// writeImage saves the image as PNG at path. The parent directory is created if missing.
// The image is written into a temporary file first, which is renamed once
// complete, so a failed write never leaves a truncated image behind.
func writeImage(path string, img image.Image) error {
	var buf bytes.Buffer
	if err := Encode(&buf, img); err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrapf(err, "could not create the export directory %s", dir)
	}

	f, err := os.CreateTemp(dir, filepath.Base(path)+".tmp.*")
	if err != nil {
		return errors.Wrapf(err, "unable to create the destination file %s", path)
	}
	tmpName := f.Name()

	var success bool
	defer func() {
		if !success {
			os.Remove(tmpName)
		}
	}()

	if _, err := f.Write(buf.Bytes()); err != nil {
		f.Close()
		return errors.Wrapf(err, "unable to write %s", path)
	}
	if err := f.Close(); err != nil {
		return errors.Wrapf(err, "unable to write %s", path)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return errors.Wrapf(err, "unable to write %s", path)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return errors.Wrapf(err, "unable to write %s", path)
	}
	success = true

	return nil
}
