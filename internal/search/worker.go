package search

import (
	"context"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"

	"grepgrip/internal/domain"
)

// Worker scans a directory tree for lines containing the search term.
// It runs entirely on its own goroutine and communicates only through
// the queue, never touching shared state. Matches are emitted as soon
// as they are found; the summary and done signal always follow, even
// after cancellation or an internal panic.
type Worker struct {
	queue *Queue
}

// NewWorker creates a worker producing into q.
func NewWorker(q *Queue) *Worker {
	return &Worker{queue: q}
}

// Run performs the search described by req. Cancellation is
// cooperative: the context is checked before descending into each
// directory, before scanning each file and between occurrences within
// a line. Per-file failures (unreadable, undecodable) skip the file
// silently.
func (w *Worker) Run(ctx context.Context, req domain.SearchRequest) {
	var filesScanned, totalMatches int

	defer func() {
		if r := recover(); r != nil {
			log.Printf("search worker panic: %v", r)
		}
		w.queue.Put(SummaryMsg{Summary: domain.Summary{Files: filesScanned, Matches: totalMatches}})
		w.queue.Put(DoneMsg{})
	}()

	glob := req.Glob
	if glob == "" {
		glob = "*"
	}

	needle := req.Term
	if !req.CaseSensitive {
		needle = strings.ToLower(needle)
	}

	rootPath := req.Root.Path
	err := filepath.WalkDir(rootPath, func(path string, d fs.DirEntry, err error) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if err != nil {
			// Unreadable entry: skip it, keep walking.
			return nil
		}

		name := d.Name()
		if path != rootPath && isIgnoredName(name) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		if !matchesGlob(glob, name) {
			return nil
		}

		lines, ok := readLines(path)
		if !ok {
			return nil
		}

		filesScanned++
		matched, err := w.scanLines(ctx, path, lines, needle, req.CaseSensitive)
		totalMatches += matched
		return err
	})

	if err != nil && err != context.Canceled {
		log.Printf("search worker: walk ended early: %v", err)
	}
}

// readLines loads and decodes one file. The bool is false when the
// file should be skipped.
func readLines(path string) ([]string, bool) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, false
	}
	text, ok := decodeText(content)
	if !ok {
		return nil, false
	}
	return splitLines(text), true
}

// scanLines finds all non-overlapping occurrences of needle in the
// file's lines, emitting each one immediately.
func (w *Worker) scanLines(ctx context.Context, path string, lines []string, needle string, caseSensitive bool) (int, error) {
	matched := 0

	select {
	case <-ctx.Done():
		return matched, ctx.Err()
	default:
	}

	for i, line := range lines {
		haystack := line
		if !caseSensitive {
			haystack = strings.ToLower(line)
		}

		start := 0
		for start <= len(haystack) {
			select {
			case <-ctx.Done():
				return matched, ctx.Err()
			default:
			}

			idx := strings.Index(haystack[start:], needle)
			if idx < 0 {
				break
			}
			col := start + idx

			matched++
			w.queue.Put(MatchMsg{Match: domain.SearchMatch{
				Path: path,
				Line: i + 1,
				Col:  col,
				Text: line,
			}})

			// Advance by at least one byte so a degenerate needle
			// cannot stall the scan.
			start = col + max(len(needle), 1)
		}
	}

	return matched, nil
}
