package mock

import (
	"context"

	"github.com/fwojciec/pagefix"
)

// Compile-time interface verification.
var (
	_ pagefix.FileStore  = (*FileStore)(nil)
	_ pagefix.FileFinder = (*FileFinder)(nil)
)

// FileStore is a mock implementation of pagefix.FileStore.
type FileStore struct {
	ReadFileFn  func(ctx context.Context, path string) (string, error)
	WriteFileFn func(ctx context.Context, path, content string) error
}

func (s *FileStore) ReadFile(ctx context.Context, path string) (string, error) {
	return s.ReadFileFn(ctx, path)
}

func (s *FileStore) WriteFile(ctx context.Context, path, content string) error {
	return s.WriteFileFn(ctx, path, content)
}

// FileFinder is a mock implementation of pagefix.FileFinder.
type FileFinder struct {
	FindHTMLFn func(ctx context.Context, root string) ([]string, error)
}

func (f *FileFinder) FindHTML(ctx context.Context, root string) ([]string, error) {
	return f.FindHTMLFn(ctx, root)
}
