// Package slog provides logging decorators for pagefix services.
package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/pagefix"
)

// Ensure the decorators implement their interfaces.
var (
	_ pagefix.DivRemover         = (*LoggingRemover)(nil)
	_ pagefix.ContainerExtractor = (*LoggingExtractor)(nil)
)

// LoggingRemover wraps a DivRemover with debug logging.
type LoggingRemover struct {
	next   pagefix.DivRemover
	logger *slog.Logger
}

// NewLoggingRemover creates a new LoggingRemover.
func NewLoggingRemover(next pagefix.DivRemover, logger *slog.Logger) *LoggingRemover {
	return &LoggingRemover{next: next, logger: logger}
}

// RemoveDivs delegates to the wrapped remover and logs the outcome.
func (r *LoggingRemover) RemoveDivs(html, class string) (out string, removed int, err error) {
	defer func(begin time.Time) {
		r.logger.Info("remove divs",
			"class", class,
			"bytes_in", len(html),
			"bytes_out", len(out),
			"removed", removed,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return r.next.RemoveDivs(html, class)
}

// LoggingExtractor wraps a ContainerExtractor with debug logging.
type LoggingExtractor struct {
	next   pagefix.ContainerExtractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next pagefix.ContainerExtractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the outcome.
func (e *LoggingExtractor) Extract(html string) (ext *pagefix.Extraction, err error) {
	defer func(begin time.Time) {
		attrs := []any{
			"bytes_in", len(html),
			"duration", time.Since(begin),
			"err", err,
		}
		if ext != nil {
			attrs = append(attrs,
				"title", ext.Title,
				"has_title", ext.HasTitle,
				"container_bytes", len(ext.ContainerHTML),
			)
		}
		e.logger.Info("extract container", attrs...)
	}(time.Now())
	return e.next.Extract(html)
}
