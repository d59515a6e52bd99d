package pagefix

// StripResult is the outcome of stripping divs from a single file.
type StripResult struct {
	Path    string
	Removed int
	Err     error
}

// Succeeded reports whether the file was processed without error.
func (r StripResult) Succeeded() bool {
	return r.Err == nil
}

// StripSummary holds run totals for a div-stripping batch.
type StripSummary struct {
	Files   int // HTML files found
	Removed int // top-level divs removed across all files
	Failed  int // files that could not be processed
}

// SummarizeStrip reduces per-file results into run totals.
// Failed files contribute zero removed divs.
func SummarizeStrip(results []StripResult) StripSummary {
	var s StripSummary
	for _, r := range results {
		s.Files++
		if !r.Succeeded() {
			s.Failed++
			continue
		}
		s.Removed += r.Removed
	}
	return s
}

// WrapResult is the outcome of re-wrapping a single file.
type WrapResult struct {
	Path string
	Err  error
}

// Succeeded reports whether the file was rewritten.
func (r WrapResult) Succeeded() bool {
	return r.Err == nil
}

// WrapSummary holds run totals for a re-wrapping batch.
type WrapSummary struct {
	Total     int
	Succeeded int
	Failed    int
}

// SummarizeWrap reduces per-file results into run totals.
func SummarizeWrap(results []WrapResult) WrapSummary {
	s := WrapSummary{Total: len(results)}
	for _, r := range results {
		if r.Succeeded() {
			s.Succeeded++
		} else {
			s.Failed++
		}
	}
	return s
}
