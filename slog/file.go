package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/pagefix"
)

// Ensure the decorators implement their interfaces.
var (
	_ pagefix.FileStore  = (*LoggingFileStore)(nil)
	_ pagefix.FileFinder = (*LoggingFileFinder)(nil)
)

// LoggingFileStore wraps a FileStore with debug logging.
type LoggingFileStore struct {
	next   pagefix.FileStore
	logger *slog.Logger
}

// NewLoggingFileStore creates a new LoggingFileStore.
func NewLoggingFileStore(next pagefix.FileStore, logger *slog.Logger) *LoggingFileStore {
	return &LoggingFileStore{next: next, logger: logger}
}

// ReadFile delegates to the wrapped store and logs the read.
func (s *LoggingFileStore) ReadFile(ctx context.Context, path string) (content string, err error) {
	defer func(begin time.Time) {
		s.logger.Info("read file",
			"path", path,
			"bytes", len(content),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.ReadFile(ctx, path)
}

// WriteFile delegates to the wrapped store and logs the write.
func (s *LoggingFileStore) WriteFile(ctx context.Context, path, content string) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("write file",
			"path", path,
			"bytes", len(content),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.WriteFile(ctx, path, content)
}

// LoggingFileFinder wraps a FileFinder with debug logging.
type LoggingFileFinder struct {
	next   pagefix.FileFinder
	logger *slog.Logger
}

// NewLoggingFileFinder creates a new LoggingFileFinder.
func NewLoggingFileFinder(next pagefix.FileFinder, logger *slog.Logger) *LoggingFileFinder {
	return &LoggingFileFinder{next: next, logger: logger}
}

// FindHTML delegates to the wrapped finder and logs the walk.
func (f *LoggingFileFinder) FindHTML(ctx context.Context, root string) (paths []string, err error) {
	defer func(begin time.Time) {
		f.logger.Info("find html",
			"root", root,
			"count", len(paths),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.FindHTML(ctx, root)
}
