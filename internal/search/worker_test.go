package search

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"grepgrip/internal/domain"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func runSearch(t *testing.T, req domain.SearchRequest) ([]domain.SearchMatch, domain.Summary) {
	t.Helper()
	q := NewQueue()
	NewWorker(q).Run(context.Background(), req)

	var matches []domain.SearchMatch
	var summary domain.Summary
	gotSummary := false
	gotDone := false
	for _, m := range q.Drain() {
		switch msg := m.(type) {
		case MatchMsg:
			require.False(t, gotSummary, "match emitted after summary")
			matches = append(matches, msg.Match)
		case SummaryMsg:
			require.False(t, gotSummary, "summary emitted twice")
			summary = msg.Summary
			gotSummary = true
		case DoneMsg:
			require.True(t, gotSummary, "done emitted before summary")
			gotDone = true
		}
	}
	require.True(t, gotDone, "worker must always signal done")
	return matches, summary
}

func localRoot(path string) domain.RootOption {
	return domain.RootOption{Path: path, Label: path, Kind: domain.RootLocal, LocalFS: true}
}

func TestCaseInsensitiveMatchesBothFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.txt", "hello world\n")
	writeFile(t, dir, "b.txt", "HELLO\n")

	matches, summary := runSearch(t, domain.SearchRequest{
		Root: localRoot(dir),
		Glob: "*",
		Term: "hello",
	})

	assert.Len(t, matches, 2)
	assert.Equal(t, domain.Summary{Files: 2, Matches: 2}, summary)
}

func TestCaseSensitiveMatchesOnlyExact(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.txt", "hello world\n")
	writeFile(t, dir, "b.txt", "HELLO\n")

	matches, summary := runSearch(t, domain.SearchRequest{
		Root:          localRoot(dir),
		Glob:          "*",
		Term:          "hello",
		CaseSensitive: true,
	})

	require.Len(t, matches, 1)
	assert.Equal(t, filepath.Join(dir, "a.txt"), matches[0].Path)
	// Both files decode fine, so both count as scanned.
	assert.Equal(t, domain.Summary{Files: 2, Matches: 1}, summary)
}

func TestGlobWithNoCandidates(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.txt", "hello\n")

	matches, summary := runSearch(t, domain.SearchRequest{
		Root: localRoot(dir),
		Glob: "*.md",
		Term: "hello",
	})

	assert.Empty(t, matches)
	assert.Equal(t, domain.Summary{Files: 0, Matches: 0}, summary)
}

func TestIgnoredDirectoryIsNeverScanned(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "keep.txt", "needle\n")
	writeFile(t, dir, filepath.Join("__pycache__", "hidden.txt"), "needle\n")
	writeFile(t, dir, filepath.Join(".git", "config"), "needle\n")

	matches, summary := runSearch(t, domain.SearchRequest{
		Root: localRoot(dir),
		Glob: "*",
		Term: "needle",
	})

	require.Len(t, matches, 1)
	assert.Equal(t, filepath.Join(dir, "keep.txt"), matches[0].Path)
	assert.Equal(t, domain.Summary{Files: 1, Matches: 1}, summary)
}

func TestIgnoredFileNameIsSkipped(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ".DS_Store", "needle\n")

	matches, summary := runSearch(t, domain.SearchRequest{
		Root: localRoot(dir),
		Glob: "*",
		Term: "needle",
	})

	assert.Empty(t, matches)
	assert.Equal(t, 0, summary.Files)
}

func TestMatchPositions(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.txt", "first line\nab ab ab\nlast\n")

	matches, _ := runSearch(t, domain.SearchRequest{
		Root: localRoot(dir),
		Glob: "*",
		Term: "ab",
	})

	require.Len(t, matches, 3)
	for _, m := range matches {
		assert.Equal(t, 2, m.Line)
		assert.Equal(t, "ab ab ab", m.Text)
	}
	assert.Equal(t, 0, matches[0].Col)
	assert.Equal(t, 3, matches[1].Col)
	assert.Equal(t, 6, matches[2].Col)
}

func TestNonOverlappingOccurrences(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.txt", "aaaa\n")

	matches, _ := runSearch(t, domain.SearchRequest{
		Root: localRoot(dir),
		Glob: "*",
		Term: "aa",
	})

	// "aaaa" holds two non-overlapping "aa".
	require.Len(t, matches, 2)
	assert.Equal(t, 0, matches[0].Col)
	assert.Equal(t, 2, matches[1].Col)
}

func TestRootIsSingleFile(t *testing.T) {
	dir := t.TempDir()
	file := writeFile(t, dir, "only.go", "package main // needle\n")

	matches, summary := runSearch(t, domain.SearchRequest{
		Root: localRoot(file),
		Glob: "*.go",
		Term: "needle",
	})

	require.Len(t, matches, 1)
	assert.Equal(t, file, matches[0].Path)
	assert.Equal(t, domain.Summary{Files: 1, Matches: 1}, summary)
}

func TestRootFileNotMatchingGlob(t *testing.T) {
	dir := t.TempDir()
	file := writeFile(t, dir, "only.txt", "needle\n")

	matches, summary := runSearch(t, domain.SearchRequest{
		Root: localRoot(file),
		Glob: "*.go",
		Term: "needle",
	})

	assert.Empty(t, matches)
	assert.Equal(t, domain.Summary{Files: 0, Matches: 0}, summary)
}

func TestBinaryFileSkippedSilently(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "blob.bin"), []byte{0x00, 0x01, 'n', 'e', 'e', 'd', 'l', 'e'}, 0644))
	writeFile(t, dir, "ok.txt", "needle\n")

	matches, summary := runSearch(t, domain.SearchRequest{
		Root: localRoot(dir),
		Glob: "*",
		Term: "needle",
	})

	require.Len(t, matches, 1)
	assert.Equal(t, domain.Summary{Files: 1, Matches: 1}, summary)
}

func TestMatchTextPreservesRawLine(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.txt", "   indented needle   \r\n")

	matches, _ := runSearch(t, domain.SearchRequest{
		Root: localRoot(dir),
		Glob: "*",
		Term: "needle",
	})

	require.Len(t, matches, 1)
	assert.Equal(t, "   indented needle   ", matches[0].Text)
	assert.Equal(t, 12, matches[0].Col)
}

func TestIdempotentEmissionOrder(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.txt", "x needle\nneedle y\n")
	writeFile(t, dir, "sub/b.txt", "needle\n")

	req := domain.SearchRequest{Root: localRoot(dir), Glob: "*", Term: "needle"}

	first, firstSummary := runSearch(t, req)
	second, secondSummary := runSearch(t, req)

	assert.Equal(t, first, second)
	assert.Equal(t, firstSummary, secondSummary)
}

func TestCancelledContextStopsTraversal(t *testing.T) {
	dir := t.TempDir()
	for i := 0; i < 20; i++ {
		writeFile(t, dir, filepath.Join("sub", "f"+string(rune('a'+i))+".txt"), "needle\n")
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	q := NewQueue()
	NewWorker(q).Run(ctx, domain.SearchRequest{Root: localRoot(dir), Glob: "*", Term: "needle"})

	msgs := q.Drain()
	// Summary and done still arrive, reflecting zero progress.
	require.Len(t, msgs, 2)
	summary, ok := msgs[0].(SummaryMsg)
	require.True(t, ok)
	assert.Equal(t, domain.Summary{}, summary.Summary)
	_, ok = msgs[1].(DoneMsg)
	assert.True(t, ok)
}

func TestEmptyGlobDefaultsToEverything(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.txt", "needle\n")

	matches, _ := runSearch(t, domain.SearchRequest{Root: localRoot(dir), Glob: "", Term: "needle"})

	assert.Len(t, matches, 1)
}
