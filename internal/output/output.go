// Package output writes generated holiday sets as tab-delimited text.
package output

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/zapponejosh/market-holidays/internal/holidays"
)

// Stdout is the path that selects standard output instead of a file.
const Stdout = "-"

// Writer emits one "<name>\t<YYYY-MM-DD>" line per holiday.
type Writer struct {
	bw    *bufio.Writer
	lines int
}

// NewWriter returns a Writer that buffers output to w. Call Flush when done.
func NewWriter(w io.Writer) *Writer {
	return &Writer{bw: bufio.NewWriter(w)}
}

// WriteSet writes the holidays of set in order.
func (w *Writer) WriteSet(set holidays.YearSet) error {
	for _, h := range set.Holidays {
		if _, err := fmt.Fprintf(w.bw, "%s\t%s\n", h.Name, h.Date); err != nil {
			return fmt.Errorf("write %d %q: %w", set.Year, h.Name, err)
		}
		w.lines++
	}
	return nil
}

// WriteSets writes each set in turn.
func (w *Writer) WriteSets(sets []holidays.YearSet) error {
	for _, set := range sets {
		if err := w.WriteSet(set); err != nil {
			return err
		}
	}
	return nil
}

// Flush writes any buffered data to the underlying writer.
func (w *Writer) Flush() error {
	return w.bw.Flush()
}

// Lines returns the number of lines written so far.
func (w *Writer) Lines() int { return w.lines }

// Open returns the destination named by path. Files are opened for
// appending and created with mode 0644 if absent. Stdout selects stdout,
// which Close leaves open; a nil stdout means os.Stdout.
func Open(path string, stdout io.Writer) (io.WriteCloser, error) {
	if path == Stdout {
		if stdout == nil {
			stdout = os.Stdout
		}
		return nopCloser{stdout}, nil
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open output: %w", err)
	}
	return f, nil
}

// AppendFile appends sets to the file at path, or to stdout when path is
// Stdout, and returns the number of lines written.
func AppendFile(path string, stdout io.Writer, sets []holidays.YearSet) (int, error) {
	dst, err := Open(path, stdout)
	if err != nil {
		return 0, err
	}

	w := NewWriter(dst)
	if err := w.WriteSets(sets); err != nil {
		dst.Close()
		return w.Lines(), err
	}
	if err := w.Flush(); err != nil {
		dst.Close()
		return w.Lines(), fmt.Errorf("flush output: %w", err)
	}
	if err := dst.Close(); err != nil {
		return w.Lines(), fmt.Errorf("close output: %w", err)
	}
	return w.Lines(), nil
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }
