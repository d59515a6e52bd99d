package batch_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/pagefix"
	"github.com/fwojciec/pagefix/batch"
	"github.com/fwojciec/pagefix/fs"
	"github.com/fwojciec/pagefix/goquery"
	"github.com/fwojciec/pagefix/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripper_Run(t *testing.T) {
	t.Parallel()

	t.Run("strips matching files and skips the rest", func(t *testing.T) {
		t.Parallel()

		files := map[string]string{
			"/site/a.html": "match-2",
			"/site/b.html": "match-0",
			"/site/c.htm":  "match-1",
		}
		written := map[string]string{}

		s := &batch.Stripper{
			Finder: &mock.FileFinder{
				FindHTMLFn: func(ctx context.Context, root string) ([]string, error) {
					assert.Equal(t, "/site", root)
					return []string{"/site/a.html", "/site/b.html", "/site/c.htm"}, nil
				},
			},
			Files: &mock.FileStore{
				ReadFileFn: func(ctx context.Context, path string) (string, error) {
					return files[path], nil
				},
				WriteFileFn: func(ctx context.Context, path, content string) error {
					written[path] = content
					return nil
				},
			},
			Remover: &mock.DivRemover{
				RemoveDivsFn: func(html, class string) (string, int, error) {
					assert.Equal(t, "ad", class)
					switch html {
					case "match-2":
						return "clean-a", 2, nil
					case "match-1":
						return "clean-c", 1, nil
					}
					return html, 0, nil
				},
			},
		}

		summary, err := s.Run(context.Background(), "ad", "/site", nil)

		require.NoError(t, err)
		assert.Equal(t, pagefix.StripSummary{Files: 3, Removed: 3}, *summary)
		assert.Equal(t, map[string]string{
			"/site/a.html": "clean-a",
			"/site/c.htm":  "clean-c",
		}, written)
	})

	t.Run("continues after per-file failures", func(t *testing.T) {
		t.Parallel()

		s := &batch.Stripper{
			Finder: &mock.FileFinder{
				FindHTMLFn: func(ctx context.Context, root string) ([]string, error) {
					return []string{"read-fails.html", "write-fails.html", "ok.html"}, nil
				},
			},
			Files: &mock.FileStore{
				ReadFileFn: func(ctx context.Context, path string) (string, error) {
					if path == "read-fails.html" {
						return "", pagefix.Errorf(pagefix.EREAD, "could not read")
					}
					return "<div class=ad></div>", nil
				},
				WriteFileFn: func(ctx context.Context, path, content string) error {
					if path == "write-fails.html" {
						return pagefix.Errorf(pagefix.EWRITE, "could not write")
					}
					return nil
				},
			},
			Remover: &mock.DivRemover{
				RemoveDivsFn: func(html, class string) (string, int, error) {
					return "", 1, nil
				},
			},
		}

		var events []batch.ProgressEvent
		summary, err := s.Run(context.Background(), "ad", ".", func(e batch.ProgressEvent) {
			events = append(events, e)
		})

		require.NoError(t, err)
		assert.Equal(t, pagefix.StripSummary{Files: 3, Removed: 1, Failed: 2}, *summary)

		var failed []string
		for _, e := range events {
			if e.Type == batch.ProgressFailed {
				failed = append(failed, e.Path)
				assert.Error(t, e.Error)
			}
		}
		assert.Equal(t, []string{"read-fails.html", "write-fails.html"}, failed)
	})

	t.Run("reports progress in order", func(t *testing.T) {
		t.Parallel()

		s := &batch.Stripper{
			Finder: &mock.FileFinder{
				FindHTMLFn: func(ctx context.Context, root string) ([]string, error) {
					return []string{"a.html"}, nil
				},
			},
			Files: &mock.FileStore{
				ReadFileFn: func(ctx context.Context, path string) (string, error) {
					return "x", nil
				},
				WriteFileFn: func(ctx context.Context, path, content string) error {
					return nil
				},
			},
			Remover: &mock.DivRemover{
				RemoveDivsFn: func(html, class string) (string, int, error) {
					return "y", 4, nil
				},
			},
		}

		var types []batch.ProgressType
		var last batch.ProgressEvent
		_, err := s.Run(context.Background(), "ad", ".", func(e batch.ProgressEvent) {
			types = append(types, e.Type)
			last = e
		})

		require.NoError(t, err)
		assert.Equal(t, []batch.ProgressType{
			batch.ProgressStarted,
			batch.ProgressFile,
			batch.ProgressCompleted,
			batch.ProgressFinished,
		}, types)
		assert.Equal(t, 4, last.Removed)
		assert.Equal(t, 1, last.Total)
	})

	t.Run("rejects empty class before walking", func(t *testing.T) {
		t.Parallel()

		walked := false
		s := &batch.Stripper{
			Finder: &mock.FileFinder{
				FindHTMLFn: func(ctx context.Context, root string) ([]string, error) {
					walked = true
					return nil, nil
				},
			},
		}

		_, err := s.Run(context.Background(), "", ".", nil)

		require.Error(t, err)
		assert.Equal(t, pagefix.EINVALID, pagefix.ErrorCode(err))
		assert.False(t, walked)
	})

	t.Run("returns walk errors", func(t *testing.T) {
		t.Parallel()

		s := &batch.Stripper{
			Finder: &mock.FileFinder{
				FindHTMLFn: func(ctx context.Context, root string) ([]string, error) {
					return nil, errors.New("walk failed")
				},
			},
		}

		_, err := s.Run(context.Background(), "ad", ".", nil)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "walk failed")
	})
}

func TestStripper_Run_Files(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	untouched := "<html><body>\n  <div class=keep>stay</div>\n</body></html>\n"
	notHTML := `<div class="ad">not html</div>`
	writePage(t, root, "index.html", `<html><body><div class="ad banner">buy</div><p>hello</p></body></html>`)
	writePage(t, root, "plain.html", untouched)
	writePage(t, root, filepath.Join("q", "1.htm"), `<div class="ad"><div class="ad">nested</div></div><div class="ad">two</div>`)
	writePage(t, root, filepath.Join("q", "notes.md"), notHTML)

	s := &batch.Stripper{
		Finder:  fs.NewFinder(),
		Files:   fs.NewStore(),
		Remover: goquery.NewRemover(),
	}

	summary, err := s.Run(context.Background(), "ad", root, nil)

	require.NoError(t, err)
	assert.Equal(t, pagefix.StripSummary{Files: 3, Removed: 3}, *summary)

	index, err := os.ReadFile(filepath.Join(root, "index.html"))
	require.NoError(t, err)
	assert.NotContains(t, string(index), "buy")
	assert.Contains(t, string(index), "<p>hello</p>")

	plain, err := os.ReadFile(filepath.Join(root, "plain.html"))
	require.NoError(t, err)
	assert.Equal(t, untouched, string(plain))

	notes, err := os.ReadFile(filepath.Join(root, "q", "notes.md"))
	require.NoError(t, err)
	assert.Equal(t, notHTML, string(notes))

	// A second pass over the cleaned tree changes nothing.
	again, err := s.Run(context.Background(), "ad", root, nil)

	require.NoError(t, err)
	assert.Equal(t, pagefix.StripSummary{Files: 3}, *again)
}

// writePage writes content to name under root, creating parent directories.
func writePage(t *testing.T, root, name, content string) string {
	t.Helper()

	path := filepath.Join(root, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}
