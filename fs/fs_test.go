package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fwojciec/readlog"
	"github.com/fwojciec/readlog/fs"
	"github.com/fwojciec/readlog/markdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestHTMLPath(t *testing.T) {
	t.Parallel()
	assert.Equal(t, filepath.Join("a", "dune.html"), fs.HTMLPath(filepath.Join("a", "dune.md")))
	assert.Equal(t, "notes.html", fs.HTMLPath("notes"))
}

func TestRenderGlob(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("renders matching files recursively", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, "reviews", "dune.md"), "**spice**")
		writeFile(t, filepath.Join(dir, "reviews", "2024", "piranesi.md"), "# Halls")
		writeFile(t, filepath.Join(dir, "reviews", "todo.txt"), "skip")

		written, err := fs.RenderGlob(ctx, dir, "reviews/**/*.md", markdown.Render)
		require.NoError(t, err)

		want := []string{
			filepath.Join(dir, "reviews", "2024", "piranesi.html"),
			filepath.Join(dir, "reviews", "dune.html"),
		}
		assert.Equal(t, want, written)

		data, err := os.ReadFile(want[1])
		require.NoError(t, err)
		assert.Equal(t, "<p><strong>spice</strong></p>", string(data))

		data, err = os.ReadFile(want[0])
		require.NoError(t, err)
		assert.Equal(t, "<h1>Halls</h1>", string(data))

		_, err = os.Stat(filepath.Join(dir, "reviews", "todo.html"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("never renders html outputs", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, "a.md"), "a")
		writeFile(t, filepath.Join(dir, "old.html"), "<p>old</p>")

		written, err := fs.RenderGlob(ctx, dir, "*", strings.ToUpper)
		require.NoError(t, err)
		assert.Equal(t, []string{filepath.Join(dir, "a.html")}, written)

		data, err := os.ReadFile(filepath.Join(dir, "old.html"))
		require.NoError(t, err)
		assert.Equal(t, "<p>old</p>", string(data))
	})

	t.Run("no matches writes nothing", func(t *testing.T) {
		t.Parallel()
		written, err := fs.RenderGlob(ctx, t.TempDir(), "**/*.md", markdown.Render)
		require.NoError(t, err)
		assert.Empty(t, written)
	})

	t.Run("invalid pattern", func(t *testing.T) {
		t.Parallel()
		_, err := fs.RenderGlob(ctx, t.TempDir(), "[", markdown.Render)
		assert.ErrorIs(t, err, readlog.ErrValidation)
	})

	t.Run("empty pattern", func(t *testing.T) {
		t.Parallel()
		_, err := fs.RenderGlob(ctx, t.TempDir(), "", markdown.Render)
		assert.ErrorIs(t, err, readlog.ErrValidation)
	})

	t.Run("root must be a directory", func(t *testing.T) {
		t.Parallel()
		file := filepath.Join(t.TempDir(), "f.md")
		writeFile(t, file, "x")
		_, err := fs.RenderGlob(ctx, file, "*.md", markdown.Render)
		assert.ErrorIs(t, err, readlog.ErrValidation)
	})

	t.Run("missing root", func(t *testing.T) {
		t.Parallel()
		_, err := fs.RenderGlob(ctx, filepath.Join(t.TempDir(), "missing"), "*.md", markdown.Render)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("cancelled context stops before rendering", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, "a.md"), "a")

		cctx, cancel := context.WithCancel(ctx)
		cancel()
		written, err := fs.RenderGlob(cctx, dir, "*.md", markdown.Render)
		assert.ErrorIs(t, err, context.Canceled)
		assert.Empty(t, written)
	})
}
