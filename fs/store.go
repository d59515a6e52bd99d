// Package fs provides file-based access to the HTML pages being rewritten.
package fs

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"unicode/utf8"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/pagefix"
	"github.com/google/uuid"
)

// Ensure Store implements pagefix.FileStore at compile time.
var _ pagefix.FileStore = (*Store)(nil)

// Store reads pages as UTF-8 text and overwrites them in place.
//
// Writes go to a temporary sibling file which is then renamed over the
// original, so a page is never left half-written. Store remembers a
// checksum of every file it reads and skips writes that would not change
// the content.
type Store struct {
	mu        sync.Mutex
	checksums map[string]uint64
}

// NewStore creates a new Store.
func NewStore() *Store {
	return &Store{checksums: make(map[string]uint64)}
}

// ReadFile returns the content of the file at path.
func (s *Store) ReadFile(ctx context.Context, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return "", pagefix.Errorf(pagefix.ENOTFOUND, "file %q not found", path)
	} else if err != nil {
		return "", pagefix.Errorf(pagefix.EREAD, "could not read %q: %v", path, err)
	}

	if !utf8.Valid(data) {
		return "", pagefix.Errorf(pagefix.EREAD, "file %q is not valid UTF-8", path)
	}

	s.mu.Lock()
	s.checksums[path] = xxhash.Sum64(data)
	s.mu.Unlock()

	return string(data), nil
}

// WriteFile replaces the content of the file at path.
// Symlinks are followed so the link itself survives the replace.
func (s *Store) WriteFile(ctx context.Context, path, content string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	sum := xxhash.Sum64String(content)

	s.mu.Lock()
	prev, ok := s.checksums[path]
	s.mu.Unlock()
	if ok && prev == sum {
		return nil
	}

	target := path
	if resolved, err := filepath.EvalSymlinks(path); err == nil {
		target = resolved
	}

	mode := os.FileMode(0644)
	if info, err := os.Stat(target); err == nil {
		mode = info.Mode().Perm()
	}

	if err := replaceFile(target, content, mode); err != nil {
		return pagefix.Errorf(pagefix.EWRITE, "could not write %q: %v", path, err)
	}

	s.mu.Lock()
	s.checksums[path] = sum
	s.mu.Unlock()

	return nil
}

// replaceFile writes content to a temporary file next to target and
// renames it into place.
func replaceFile(target, content string, mode os.FileMode) error {
	tmp := filepath.Join(filepath.Dir(target), "."+filepath.Base(target)+"."+uuid.NewString()+".tmp")

	if err := os.WriteFile(tmp, []byte(content), mode); err != nil {
		_ = os.Remove(tmp)
		return err
	}

	// WriteFile applies the umask; restore the original permissions.
	if err := os.Chmod(tmp, mode); err != nil {
		_ = os.Remove(tmp)
		return err
	}

	if err := os.Rename(tmp, target); err != nil {
		_ = os.Remove(tmp)
		return err
	}

	return nil
}
