package source

import (
	"archive/zip"
	"compress/gzip"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func collectLines(t *testing.T, path string) []string {
	t.Helper()
	reader, err := Open(path)
	if err != nil {
		t.Fatalf("failed to open %s: %v", path, err)
	}
	defer func() {
		_ = reader.Close()
	}()
	var lines []string
	for reader.Scan() {
		lines = append(lines, reader.Text())
	}
	if err := reader.Err(); err != nil {
		t.Fatalf("read error: %v", err)
	}
	return lines
}

func TestOpenPlainFileNewlineVariants(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	if err := os.WriteFile(path, []byte("alpha\nbravo\r\ncharlie\rdelta"), 0o644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}
	lines := collectLines(t, path)
	want := []string{"alpha", "bravo", "charlie", "delta"}
	if len(lines) != len(want) {
		t.Fatalf("expected %d lines, got %d: %v", len(want), len(lines), lines)
	}
	for i, line := range want {
		if lines[i] != line {
			t.Fatalf("line %d: expected %q, got %q", i, line, lines[i])
		}
	}
}

func TestOpenReplacesInvalidUTF8(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	if err := os.WriteFile(path, []byte("caf\xff\nplain\n"), 0o644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}
	lines := collectLines(t, path)
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if lines[0] != "caf�" {
		t.Fatalf("expected replacement character, got %q", lines[0])
	}
}

func TestOpenGzip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt.gz")
	file, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create file: %v", err)
	}
	gz := gzip.NewWriter(file)
	if _, err := gz.Write([]byte("one\ntwo\n")); err != nil {
		t.Fatalf("failed to write gzip: %v", err)
	}
	if err := gz.Close(); err != nil {
		t.Fatalf("failed to close gzip: %v", err)
	}
	if err := file.Close(); err != nil {
		t.Fatalf("failed to close file: %v", err)
	}

	lines := collectLines(t, path)
	if len(lines) != 2 || lines[0] != "one" || lines[1] != "two" {
		t.Fatalf("unexpected gzip lines: %v", lines)
	}
}

func TestOpenZipConcatenatesTxtEntriesInOrder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.zip")
	file, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create file: %v", err)
	}
	archive := zip.NewWriter(file)
	entries := []struct {
		name string
		body string
	}{
		{"first.txt", "one\ntwo\n"},
		{"skip.bin", "binary\n"},
		{"second.txt", "three\n"},
	}
	for _, entry := range entries {
		w, err := archive.Create(entry.name)
		if err != nil {
			t.Fatalf("failed to create entry: %v", err)
		}
		if _, err := w.Write([]byte(entry.body)); err != nil {
			t.Fatalf("failed to write entry: %v", err)
		}
	}
	if err := archive.Close(); err != nil {
		t.Fatalf("failed to close archive: %v", err)
	}
	if err := file.Close(); err != nil {
		t.Fatalf("failed to close file: %v", err)
	}

	lines := collectLines(t, path)
	want := []string{"one", "two", "three"}
	if len(lines) != len(want) {
		t.Fatalf("expected %v, got %v", want, lines)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Fatalf("line %d: expected %q, got %q", i, want[i], lines[i])
		}
	}
}

func TestOpenMissingFile(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "absent.txt"))
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestOpenCorruptGzip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.gz")
	if err := os.WriteFile(path, []byte("not gzip data"), 0o644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}
	_, err := Open(path)
	if !errors.Is(err, ErrUnreadable) {
		t.Fatalf("expected ErrUnreadable, got %v", err)
	}
}

func TestDetectFormatBySniffing(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "noext")
	file, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create file: %v", err)
	}
	gz := gzip.NewWriter(file)
	if _, err := gz.Write([]byte("hidden\n")); err != nil {
		t.Fatalf("failed to write gzip: %v", err)
	}
	if err := gz.Close(); err != nil {
		t.Fatalf("failed to close gzip: %v", err)
	}
	if err := file.Close(); err != nil {
		t.Fatalf("failed to close file: %v", err)
	}

	lines := collectLines(t, path)
	if len(lines) != 1 || lines[0] != "hidden" {
		t.Fatalf("expected sniffed gzip content, got %v", lines)
	}
}

func TestCountLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	if err := os.WriteFile(path, []byte("a\nb\nc\n"), 0o644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}
	total, ok := CountLines(path)
	if !ok || total != 3 {
		t.Fatalf("expected (3, true), got (%d, %v)", total, ok)
	}
	if _, ok := CountLines(StdinPath); ok {
		t.Fatalf("expected stdin total to be unknowable")
	}
}
