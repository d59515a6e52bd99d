package batch

import (
	"context"
	"fmt"

	"github.com/fwojciec/pagefix"
)

// Stripper removes class-filtered divs from every HTML file under a directory.
type Stripper struct {
	Finder  pagefix.FileFinder
	Files   pagefix.FileStore
	Remover pagefix.DivRemover
}

// Run strips divs carrying class from every HTML file under root.
// Files without a match are never rewritten. Per-file failures are
// reported through progress and counted in the summary; only an invalid
// class name or a failed walk abort the run.
func (s *Stripper) Run(ctx context.Context, class, root string, progress ProgressFunc) (*pagefix.StripSummary, error) {
	if err := pagefix.ValidateClassName(class); err != nil {
		return nil, err
	}

	paths, err := s.Finder.FindHTML(ctx, root)
	if err != nil {
		return nil, fmt.Errorf("find html files: %w", err)
	}

	total := len(paths)
	progress.emit(ProgressEvent{Type: ProgressStarted, Total: total})

	results := make([]pagefix.StripResult, 0, total)
	for i, path := range paths {
		progress.emit(ProgressEvent{Type: ProgressFile, Completed: i, Total: total, Path: path})

		result := s.stripFile(ctx, path, class)
		results = append(results, result)

		event := ProgressEvent{
			Type:      ProgressCompleted,
			Completed: i + 1,
			Total:     total,
			Path:      path,
			Removed:   result.Removed,
		}
		if result.Err != nil {
			event.Type = ProgressFailed
			event.Error = result.Err
		}
		progress.emit(event)
	}

	summary := pagefix.SummarizeStrip(results)
	progress.emit(ProgressEvent{Type: ProgressFinished, Completed: total, Total: total, Removed: summary.Removed})

	return &summary, nil
}

func (s *Stripper) stripFile(ctx context.Context, path, class string) pagefix.StripResult {
	content, err := s.Files.ReadFile(ctx, path)
	if err != nil {
		return pagefix.StripResult{Path: path, Err: err}
	}

	out, removed, err := s.Remover.RemoveDivs(content, class)
	if err != nil {
		return pagefix.StripResult{Path: path, Err: err}
	}

	if removed == 0 {
		return pagefix.StripResult{Path: path}
	}

	if err := s.Files.WriteFile(ctx, path, out); err != nil {
		return pagefix.StripResult{Path: path, Err: err}
	}

	return pagefix.StripResult{Path: path, Removed: removed}
}
