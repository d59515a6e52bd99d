package pagefix

import "context"

// FileStore reads and overwrites HTML files on disk.
type FileStore interface {
	// ReadFile returns the file content as text.
	// Returns ENOTFOUND if the file does not exist and EREAD if it cannot
	// be read or is not valid UTF-8.
	ReadFile(ctx context.Context, path string) (string, error)

	// WriteFile replaces the file content in a single full-buffer write.
	// Returns EWRITE on failure.
	WriteFile(ctx context.Context, path, content string) error
}

// FileFinder enumerates HTML files under a directory tree.
type FileFinder interface {
	FindHTML(ctx context.Context, root string) ([]string, error)
}
