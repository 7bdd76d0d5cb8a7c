package pipeline

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/verte-zerg/wordcrunch/internal/model"
)

func writeList(t *testing.T, dir, name string, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

func runCollect(t *testing.T, p *Pipeline, paths []string) []string {
	t.Helper()
	var lines []string
	if err := p.Run(paths, func(line string) error {
		lines = append(lines, line)
		return nil
	}); err != nil {
		t.Fatalf("pipeline failed: %v", err)
	}
	return lines
}

func TestTrackerCaseInsensitiveFirstOccurrence(t *testing.T) {
	dir := t.TempDir()
	path := writeList(t, dir, "a.txt", "Pass123\npass123\nadmin\nPass123\n")

	p := &Pipeline{Tracker: NewTracker(true)}
	lines := runCollect(t, p, []string{path})
	if len(lines) != 2 || lines[0] != "Pass123" || lines[1] != "admin" {
		t.Fatalf("expected [Pass123 admin], got %v", lines)
	}
}

func TestTrackerAcrossSourcesPreservesOrder(t *testing.T) {
	dir := t.TempDir()
	a := writeList(t, dir, "a.txt", "one\ntwo\n")
	b := writeList(t, dir, "b.txt", "two\nthree\none\n")

	p := &Pipeline{Tracker: NewTracker(false)}
	lines := runCollect(t, p, []string{a, b})
	want := []string{"one", "two", "three"}
	if len(lines) != len(want) {
		t.Fatalf("expected %v, got %v", want, lines)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Fatalf("position %d: expected %q, got %q", i, want[i], lines[i])
		}
	}
}

func TestExclusionSubtractsSharedLines(t *testing.T) {
	dir := t.TempDir()
	a := writeList(t, dir, "a.txt", "alpha\nshared\nbravo\n")
	b := writeList(t, dir, "b.txt", "shared\ncharlie\n")

	exclude, err := BuildExclusionSet([]string{b}, Normalizer{}, false)
	if err != nil {
		t.Fatalf("failed to build exclusion set: %v", err)
	}
	p := &Pipeline{Exclude: exclude}
	aMinusB := runCollect(t, p, []string{a})
	if len(aMinusB) != 2 || aMinusB[0] != "alpha" || aMinusB[1] != "bravo" {
		t.Fatalf("expected [alpha bravo], got %v", aMinusB)
	}

	// The shared line must appear in neither direction of the subtraction.
	excludeA, err := BuildExclusionSet([]string{a}, Normalizer{}, false)
	if err != nil {
		t.Fatalf("failed to build exclusion set: %v", err)
	}
	bMinusA := runCollect(t, &Pipeline{Exclude: excludeA}, []string{b})
	if len(bMinusA) != 1 || bMinusA[0] != "charlie" {
		t.Fatalf("expected [charlie], got %v", bMinusA)
	}
}

func TestNormalizerStripAndRemoveEmpty(t *testing.T) {
	dir := t.TempDir()
	path := writeList(t, dir, "a.txt", "  padded  \n\n   \nword\n")

	p := &Pipeline{Normalizer: Normalizer{Strip: true, RemoveEmpty: true}}
	lines := runCollect(t, p, []string{path})
	if len(lines) != 2 || lines[0] != "padded" || lines[1] != "word" {
		t.Fatalf("expected [padded word], got %v", lines)
	}
}

func TestFiltersSeeOriginalCasingTransformAfter(t *testing.T) {
	dir := t.TempDir()
	path := writeList(t, dir, "a.txt", "Admin\nadmin\nroot\n")

	p := &Pipeline{
		Filter:    Contains("Admin", false),
		Transform: model.TransformUpper,
	}
	lines := runCollect(t, p, []string{path})
	if len(lines) != 1 || lines[0] != "ADMIN" {
		t.Fatalf("expected filter on original casing then transform, got %v", lines)
	}
}

func TestProgressCountsEveryInputLine(t *testing.T) {
	dir := t.TempDir()
	path := writeList(t, dir, "a.txt", "a\nbb\nccc\n")

	seen := 0
	length, err := LengthRange(2, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	p := &Pipeline{
		Filter:   length,
		Progress: func() { seen++ },
	}
	lines := runCollect(t, p, []string{path})
	if seen != 3 {
		t.Fatalf("expected 3 input lines observed, got %d", seen)
	}
	if len(lines) != 2 {
		t.Fatalf("expected 2 surviving lines, got %v", lines)
	}
}
