package batch

import (
	"context"

	"github.com/fwojciec/pagefix"
)

// Wrapper rebuilds pages around their container element.
type Wrapper struct {
	Files     pagefix.FileStore
	Extractor pagefix.ContainerExtractor
	Renderer  pagefix.PageRenderer

	// DefaultTitle is used for pages without a <title> element.
	DefaultTitle string
}

// Run rewraps every file in paths, in order. A file that cannot be read,
// has no container, or cannot be written is counted as failed and left as
// it was; the remaining files are still processed.
func (w *Wrapper) Run(ctx context.Context, paths []string, progress ProgressFunc) (*pagefix.WrapSummary, error) {
	if len(paths) == 0 {
		return nil, pagefix.Errorf(pagefix.EINVALID, "at least one file required")
	}

	total := len(paths)
	progress.emit(ProgressEvent{Type: ProgressStarted, Total: total})

	results := make([]pagefix.WrapResult, 0, total)
	for i, path := range paths {
		progress.emit(ProgressEvent{Type: ProgressFile, Completed: i, Total: total, Path: path})

		err := w.wrapFile(ctx, path)
		results = append(results, pagefix.WrapResult{Path: path, Err: err})

		event := ProgressEvent{Type: ProgressCompleted, Completed: i + 1, Total: total, Path: path}
		if err != nil {
			event.Type = ProgressFailed
			event.Error = err
		}
		progress.emit(event)
	}

	summary := pagefix.SummarizeWrap(results)
	progress.emit(ProgressEvent{Type: ProgressFinished, Completed: total, Total: total})

	return &summary, nil
}

func (w *Wrapper) wrapFile(ctx context.Context, path string) error {
	content, err := w.Files.ReadFile(ctx, path)
	if err != nil {
		return err
	}

	ext, err := w.Extractor.Extract(content)
	if err != nil {
		return err
	}

	title := w.DefaultTitle
	if ext.HasTitle {
		title = ext.Title
	}

	return w.Files.WriteFile(ctx, path, w.Renderer.Render(title, ext.ContainerHTML))
}
