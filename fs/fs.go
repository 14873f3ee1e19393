// Package fs renders review files found on disk.
package fs

import (
	"context"
	"fmt"
	iofs "io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fwojciec/readlog"
)

// HTMLPath returns the output path for a review source file: the same name
// with its extension replaced by ".html".
func HTMLPath(path string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ".html"
}

// RenderGlob renders every file under root matching pattern (doublestar
// syntax, e.g. "reviews/**/*.md") and writes the HTML next to the source.
// Existing .html files are never treated as sources. It returns the written
// paths in sorted order. Cancellation is checked between files.
func RenderGlob(ctx context.Context, root, pattern string, render readlog.RenderFunc) ([]string, error) {
	if pattern == "" {
		return nil, fmt.Errorf("pattern is required: %w", readlog.ErrValidation)
	}
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid glob pattern %q: %w", pattern, readlog.ErrValidation)
	}
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("access root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("root %s is not a directory: %w", root, readlog.ErrValidation)
	}

	var sources []string
	err = doublestar.GlobWalk(os.DirFS(root), pattern, func(path string, d iofs.DirEntry) error {
		if d.IsDir() || strings.EqualFold(filepath.Ext(path), ".html") {
			return nil
		}
		sources = append(sources, filepath.Join(root, filepath.FromSlash(path)))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("match pattern: %w", err)
	}
	sort.Strings(sources)

	written := make([]string, 0, len(sources))
	for _, src := range sources {
		if err := ctx.Err(); err != nil {
			return written, err
		}
		data, err := os.ReadFile(src)
		if err != nil {
			return written, fmt.Errorf("read %s: %w", src, err)
		}
		dst := HTMLPath(src)
		if err := os.WriteFile(dst, []byte(render(string(data))), 0o644); err != nil {
			return written, fmt.Errorf("write %s: %w", dst, err)
		}
		written = append(written, dst)
	}
	return written, nil
}
