// Package source opens wordlist files as lazy line sequences.
//
// A source is a plain text file, a gzip-compressed stream, or a zip archive
// whose .txt entries are concatenated in archive order. The special path "-"
// reads from standard input. Lines are decoded as UTF-8 with replacement of
// invalid byte sequences; LF, CRLF, and bare CR all terminate a line.
package source

import (
	"archive/zip"
	"bufio"
	"bytes"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// StdinPath is the path token that selects standard input.
const StdinPath = "-"

var (
	// ErrNotFound reports a source path that does not exist.
	ErrNotFound = errors.New("source not found")
	// ErrUnreadable reports a source that exists but cannot be read,
	// including corrupt gzip streams and malformed zip archives.
	ErrUnreadable = errors.New("source unreadable")
)

const (
	maxLineSize = 1 << 20
	sniffLen    = 4
)

// Reader produces decoded text lines from a single source path.
type Reader struct {
	scanner *bufio.Scanner
	closers []io.Closer

	// Remaining zip entries, opened lazily as the previous one drains.
	entries []*zip.File
	entry   io.ReadCloser

	text string
	err  error
}

// Open turns a path into a line sequence. The container format is chosen by
// file extension, falling back to magic-byte sniffing for unknown extensions.
func Open(path string) (*Reader, error) {
	if path == StdinPath {
		return &Reader{scanner: newScanner(os.Stdin)}, nil
	}

	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("%w: %v", ErrUnreadable, err)
	}

	switch detectFormat(path, file) {
	case formatGzip:
		gz, err := gzip.NewReader(file)
		if err != nil {
			_ = file.Close()
			return nil, fmt.Errorf("%w: invalid gzip stream in %s: %v", ErrUnreadable, path, err)
		}
		return &Reader{
			scanner: newScanner(gz),
			closers: []io.Closer{gz, file},
		}, nil
	case formatZip:
		info, err := file.Stat()
		if err != nil {
			_ = file.Close()
			return nil, fmt.Errorf("%w: %v", ErrUnreadable, err)
		}
		archive, err := zip.NewReader(file, info.Size())
		if err != nil {
			_ = file.Close()
			return nil, fmt.Errorf("%w: invalid zip archive %s: %v", ErrUnreadable, path, err)
		}
		var entries []*zip.File
		for _, entry := range archive.File {
			if strings.HasSuffix(entry.Name, ".txt") {
				entries = append(entries, entry)
			}
		}
		return &Reader{
			entries: entries,
			closers: []io.Closer{file},
		}, nil
	default:
		return &Reader{
			scanner: newScanner(file),
			closers: []io.Closer{file},
		}, nil
	}
}

// Scan advances to the next line, returning false at the end of the source
// or on error. For zip sources it moves across entries transparently.
func (r *Reader) Scan() bool {
	if r.err != nil {
		return false
	}
	for {
		if r.scanner != nil && r.scanner.Scan() {
			r.text = strings.ToValidUTF8(r.scanner.Text(), "�")
			return true
		}
		if r.scanner != nil {
			if err := r.scanner.Err(); err != nil {
				r.err = fmt.Errorf("%w: %v", ErrUnreadable, err)
				return false
			}
		}
		if !r.nextEntry() {
			return false
		}
	}
}

// Text returns the line read by the last successful Scan.
func (r *Reader) Text() string {
	return r.text
}

// Err returns the first error encountered while reading.
func (r *Reader) Err() error {
	return r.err
}

// Close releases the underlying file and decompression handles.
func (r *Reader) Close() error {
	var first error
	if r.entry != nil {
		if err := r.entry.Close(); err != nil && first == nil {
			first = err
		}
		r.entry = nil
	}
	for _, c := range r.closers {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	r.closers = nil
	return first
}

func (r *Reader) nextEntry() bool {
	if r.entry != nil {
		if err := r.entry.Close(); err != nil {
			r.err = fmt.Errorf("%w: %v", ErrUnreadable, err)
			return false
		}
		r.entry = nil
	}
	if len(r.entries) == 0 {
		r.scanner = nil
		return false
	}
	entry := r.entries[0]
	r.entries = r.entries[1:]
	rc, err := entry.Open()
	if err != nil {
		r.err = fmt.Errorf("%w: failed to open zip entry %s: %v", ErrUnreadable, entry.Name, err)
		return false
	}
	r.entry = rc
	r.scanner = newScanner(rc)
	return true
}

// CountLines counts the lines of a plain regular file for progress totals.
// The second return value is false when the total is not knowable up front
// (stdin, gzip, zip).
func CountLines(path string) (int, bool) {
	if path == StdinPath {
		return 0, false
	}
	file, err := os.Open(path)
	if err != nil {
		return 0, false
	}
	defer func() {
		_ = file.Close()
	}()
	if detectFormat(path, file) != formatPlain {
		return 0, false
	}
	total := 0
	scanner := newScanner(file)
	for scanner.Scan() {
		total++
	}
	if scanner.Err() != nil {
		return 0, false
	}
	return total, true
}

type format int

const (
	formatPlain format = iota
	formatGzip
	formatZip
)

var (
	gzipMagic = []byte{0x1f, 0x8b}
	zipMagic  = []byte{'P', 'K', 0x03, 0x04}
)

// detectFormat inspects the extension first and sniffs the header otherwise.
// The file offset is restored so the caller can read from the start.
func detectFormat(path string, file *os.File) format {
	lower := strings.ToLower(path)
	switch {
	case strings.HasSuffix(lower, ".gz"):
		return formatGzip
	case strings.HasSuffix(lower, ".zip"):
		return formatZip
	case strings.HasSuffix(lower, ".txt"):
		return formatPlain
	}

	header := make([]byte, sniffLen)
	n, err := io.ReadFull(file, header)
	if _, serr := file.Seek(0, io.SeekStart); serr != nil {
		return formatPlain
	}
	if err != nil && n < len(gzipMagic) {
		return formatPlain
	}
	header = header[:n]
	if bytes.HasPrefix(header, zipMagic) {
		return formatZip
	}
	if bytes.HasPrefix(header, gzipMagic) {
		return formatGzip
	}
	return formatPlain
}

func newScanner(r io.Reader) *bufio.Scanner {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	scanner.Split(splitLines)
	return scanner
}

// splitLines is a bufio.SplitFunc that terminates lines on LF, CRLF, or CR.
func splitLines(data []byte, atEOF bool) (int, []byte, error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
		if data[i] == '\n' {
			return i + 1, data[:i], nil
		}
		// Bare CR: look ahead one byte to fold a CRLF pair.
		if i+1 < len(data) {
			if data[i+1] == '\n' {
				return i + 2, data[:i], nil
			}
			return i + 1, data[:i], nil
		}
		if atEOF {
			return i + 1, data[:i], nil
		}
		return 0, nil, nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}
