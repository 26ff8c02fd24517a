package iconfont

import (
	"bytes"
	"image"
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExec_ShouldExportIcons(t *testing.T) {
	f := newTestFont(t, testCSS, false)
	dir := filepath.Join(t.TempDir(), "icons")

	op := &Ops{
		Icons:   []string{"home", "user"},
		Size:    32,
		Dst:     dir,
		Options: DefaultOptions(),
	}

	var status bytes.Buffer
	require.NoError(t, op.export(f, &status))

	for _, name := range []string{"home.png", "user.png"} {
		_, err := os.Stat(filepath.Join(dir, name))
		assert.NoError(t, err)
		assert.Contains(t, status.String(), name)
	}
}

func TestExec_ShouldStopAtFirstError(t *testing.T) {
	f := newTestFont(t, testCSS, false)
	dir := t.TempDir()

	op := &Ops{
		Icons:   []string{"home", "missing", "user"},
		Size:    32,
		Dst:     dir,
		Options: DefaultOptions(),
	}

	var status bytes.Buffer
	err := op.export(f, &status)
	assert.ErrorIs(t, err, ErrUnknownIcon)
	assert.Contains(t, status.String(), `Error exporting "missing"`)

	_, err = os.Stat(filepath.Join(dir, "home.png"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, "user.png"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestExec_Pipe(t *testing.T) {
	f := newTestFont(t, testCSS, false)

	op := &Ops{
		Icons:   []string{"home"},
		Size:    48,
		Dst:     PipeName,
		Options: DefaultOptions(),
	}

	var buf bytes.Buffer
	require.NoError(t, op.pipe(f, &buf))

	img, err := imaging.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 48, 48), img.Bounds())

	op.Icons = []string{"home", "user"}
	assert.Error(t, op.pipe(f, &buf))
}

func TestExec_NoIcons(t *testing.T) {
	f := newTestFont(t, testCSS, false)

	op := &Ops{Size: 16, Dst: t.TempDir(), Options: DefaultOptions()}
	assert.Error(t, op.Execute(f))
}
