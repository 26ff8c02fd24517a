package iconfont

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"
)

// testCSS maps a few icon names to glyphs of the Go Regular font.
const testCSS = `
@font-face {
	font-family: "icons";
	src: url("icons.ttf") format("truetype");
}
[class^="icon-"], [class*=" icon-"] {
	font-family: "icons";
	font-style: normal;
}
.icon-user:before { content: "\41"; }
.icon-home:before { content: "\4f"; }
.icon-at:before { content: '\40'; }
.icon-dot:before { content: "\2e"; }
.icon-space:before { content: "\20"; }
.icon-home:hover { color: red; }
.toolbar { color: red; }
`

// newTestFont creates an icon font out of the Go Regular font and the provided stylesheet.
func newTestFont(t *testing.T, css string, keepPrefix bool) *IconFont {
	t.Helper()

	dir := t.TempDir()
	cssFile := filepath.Join(dir, "icons.css")
	fontFile := filepath.Join(dir, "icons.ttf")
	require.NoError(t, os.WriteFile(cssFile, []byte(css), 0o644))
	require.NoError(t, os.WriteFile(fontFile, goregular.TTF, 0o644))

	f, err := New(cssFile, fontFile, keepPrefix)
	require.NoError(t, err)

	return f
}

func TestIconFont_New(t *testing.T) {
	f := newTestFont(t, testCSS, false)

	assert.Equal(t, "icon-", f.CommonPrefix())
	assert.False(t, f.KeepPrefix())
	assert.Equal(t, []string{"at", "dot", "home", "space", "user"}, f.Icons().Names())
	assert.Equal(t, "icons.css", filepath.Base(f.CSSFile()))
	assert.Equal(t, "icons.ttf", filepath.Base(f.FontFile()))

	r, ok := f.Icons().Lookup("home")
	assert.True(t, ok)
	assert.Equal(t, 'O', r)
}

func TestIconFont_KeepPrefix(t *testing.T) {
	f := newTestFont(t, testCSS, true)

	assert.True(t, f.KeepPrefix())
	assert.Equal(t, "icon-", f.CommonPrefix())

	_, ok := f.Icons().Lookup("icon-user")
	assert.True(t, ok)
	_, ok = f.Icons().Lookup("user")
	assert.False(t, ok)
}

func TestIconFont_ShouldFailOnInvalidFont(t *testing.T) {
	dir := t.TempDir()
	cssFile := filepath.Join(dir, "icons.css")
	fontFile := filepath.Join(dir, "icons.ttf")
	require.NoError(t, os.WriteFile(cssFile, []byte(testCSS), 0o644))
	require.NoError(t, os.WriteFile(fontFile, []byte("not a font"), 0o644))

	_, err := New(cssFile, fontFile, false)
	assert.Error(t, err)

	_, err = New(cssFile, filepath.Join(dir, "missing.ttf"), false)
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = New(filepath.Join(dir, "missing.css"), fontFile, false)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
