// Package ingest builds interning pools from real path hierarchies:
// filesystem trees, git HEAD trees, and line-delimited path lists.
package ingest

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// Source yields hierarchical paths, one at a time, as segment sequences
// ordered root-first.
type Source interface {
	// Name labels the source in logs and metrics.
	Name() string

	// EachPath calls emit once per path until the source is exhausted, emit
	// returns an error, or ctx is canceled.
	EachPath(ctx context.Context, emit func(segments []string) error) error
}

// ReaderSource reads one path per line from an io.Reader, splitting each
// line on Separator. Empty lines and empty segments (leading or doubled
// separators) are dropped.
type ReaderSource struct {
	Reader    io.Reader
	Separator string
	Label     string
}

// Name returns the source label, defaulting to "reader".
func (s *ReaderSource) Name() string {
	if s.Label == "" {
		return "reader"
	}

	return s.Label
}

// EachPath scans lines from the reader and emits their segments.
func (s *ReaderSource) EachPath(ctx context.Context, emit func(segments []string) error) error {
	scanner := bufio.NewScanner(s.Reader)

	for scanner.Scan() {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return fmt.Errorf("scan %s: %w", s.Name(), ctxErr)
		}

		segments := SplitPath(scanner.Text(), s.Separator)
		if len(segments) == 0 {
			continue
		}

		emitErr := emit(segments)
		if emitErr != nil {
			return emitErr
		}
	}

	scanErr := scanner.Err()
	if scanErr != nil {
		return fmt.Errorf("scan %s: %w", s.Name(), scanErr)
	}

	return nil
}

// SplitPath splits raw on separator, dropping empty segments. A "/" default
// applies when separator is empty.
func SplitPath(raw, separator string) []string {
	if separator == "" {
		separator = "/"
	}

	var segments []string

	for segment := range strings.SplitSeq(raw, separator) {
		if segment != "" {
			segments = append(segments, segment)
		}
	}

	return segments
}
