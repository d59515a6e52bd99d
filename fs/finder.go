package fs

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/pagefix"
)

// HTMLExtensions are the file suffixes treated as HTML pages.
// Matching is case-sensitive.
var HTMLExtensions = []string{".html", ".htm"}

// Ensure Finder implements pagefix.FileFinder at compile time.
var _ pagefix.FileFinder = (*Finder)(nil)

// Finder walks a directory tree looking for HTML pages.
type Finder struct {
	// OnError, if set, is called for every path the walk could not read.
	// Unreadable paths are skipped either way.
	OnError func(path string, err error)
}

// NewFinder creates a new Finder.
func NewFinder() *Finder {
	return &Finder{}
}

// FindHTML returns the paths of all HTML files under root in lexical order.
// A missing or unreadable root yields no files rather than an error.
// The walk stops with ctx's error once ctx is done.
func (f *Finder) FindHTML(ctx context.Context, root string) ([]string, error) {
	var paths []string

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if f.OnError != nil {
				f.OnError(path, err)
			}
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if err := ctx.Err(); err != nil {
			return err
		}

		if d.IsDir() || !IsHTML(d.Name()) {
			return nil
		}

		if isRegularFile(path, d) {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return paths, nil
}

// isRegularFile reports whether d is a regular file or a symlink to one.
// Links to directories are not followed, matching the walk itself.
func isRegularFile(path string, d fs.DirEntry) bool {
	if d.Type().IsRegular() {
		return true
	}
	if d.Type()&fs.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// IsHTML reports whether name has one of the HTMLExtensions.
func IsHTML(name string) bool {
	for _, ext := range HTMLExtensions {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}
