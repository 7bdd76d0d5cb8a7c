// Package sink writes pipeline output to its destination.
//
// The sink decides whether the run stays streaming or buffers: sorting
// requires the full surviving sequence, everything else is written line by
// line. File output goes through a temp file renamed into place on success,
// so a failed run never leaves a partial output file.
package sink

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/verte-zerg/wordcrunch/internal/model"
)

// PreviewLimit is the number of lines emitted in preview mode.
const PreviewLimit = 10

// Sink is the terminal stage of the pipeline.
type Sink interface {
	// Emit accepts one surviving line.
	Emit(line string) error
	// Close finalizes the output (flush, sort, rename).
	Close() error
	// Discard releases resources without finalizing; it removes any temp
	// file and is a no-op after a successful Close.
	Discard()
	// Count reports how many lines were produced.
	Count() int
}

// New builds the sink for the given run configuration.
func New(cfg model.RunConfig) (Sink, error) {
	if cfg.DryRun {
		return &countSink{}, nil
	}
	target, err := newTarget(cfg.Output)
	if err != nil {
		return nil, err
	}
	limit := 0
	if cfg.Preview {
		limit = PreviewLimit
	}
	if cfg.Sort != model.SortNone || cfg.ReverseSort {
		return &bufferSink{cfg: cfg, target: target, limit: limit}, nil
	}
	return &streamSink{target: target, limit: limit}, nil
}

// countSink consumes the stream and only counts, for dry runs.
type countSink struct {
	count int
}

func (s *countSink) Emit(string) error { s.count++; return nil }
func (s *countSink) Close() error      { return nil }
func (s *countSink) Discard()          {}
func (s *countSink) Count() int        { return s.count }

// streamSink writes each line as soon as it is produced.
type streamSink struct {
	target *target
	limit  int
	count  int
}

func (s *streamSink) Emit(line string) error {
	s.count++
	if s.limit > 0 && s.count > s.limit {
		return nil
	}
	return s.target.writeLine(line)
}

func (s *streamSink) Close() error { return s.target.finalize() }
func (s *streamSink) Discard()     { s.target.discard() }
func (s *streamSink) Count() int   { return s.count }

// bufferSink materializes the surviving sequence, sorts, then writes.
type bufferSink struct {
	cfg    model.RunConfig
	target *target
	limit  int
	lines  []string
}

func (s *bufferSink) Emit(line string) error {
	s.lines = append(s.lines, line)
	return nil
}

func (s *bufferSink) Close() error {
	Order(s.lines, s.cfg.Sort, s.cfg.CaseInsensitive, s.cfg.ReverseSort)
	out := s.lines
	if s.limit > 0 && len(out) > s.limit {
		out = out[:s.limit]
	}
	for _, line := range out {
		if err := s.target.writeLine(line); err != nil {
			return err
		}
	}
	return s.target.finalize()
}

func (s *bufferSink) Discard()   { s.target.discard() }
func (s *bufferSink) Count() int { return len(s.lines) }

// target abstracts stdout versus an atomically written file.
type target struct {
	writer *bufio.Writer

	// File output only.
	tmpFile   *os.File
	tmpPath   string
	finalPath string
	done      bool
}

func newTarget(output string) (*target, error) {
	if output == "" {
		return &target{writer: bufio.NewWriter(os.Stdout)}, nil
	}
	dir := filepath.Dir(output)
	tmpFile, err := os.CreateTemp(dir, "wordcrunch-*.tmp")
	if err != nil {
		return nil, fmt.Errorf("failed to create output file: %w", err)
	}
	return &target{
		writer:    bufio.NewWriter(tmpFile),
		tmpFile:   tmpFile,
		tmpPath:   tmpFile.Name(),
		finalPath: output,
	}, nil
}

func (t *target) writeLine(line string) error {
	if _, err := io.WriteString(t.writer, line); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	if err := t.writer.WriteByte('\n'); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (t *target) finalize() error {
	if err := t.writer.Flush(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}
	if t.tmpFile == nil {
		return nil
	}
	if err := t.tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close output: %w", err)
	}
	if err := os.Rename(t.tmpPath, t.finalPath); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	t.done = true
	return nil
}

func (t *target) discard() {
	if t.tmpFile == nil || t.done {
		return
	}
	_ = t.tmpFile.Close()
	_ = os.Remove(t.tmpPath)
}
