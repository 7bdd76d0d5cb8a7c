package sink

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/bubbles/progress"
	"golang.org/x/term"
)

const renderEvery = 2000

// Meter reports pipeline progress on stderr without touching the data
// stream. With a known total it renders a percent bar; otherwise it shows a
// running line count. It stays silent when stderr is not a terminal.
type Meter struct {
	out       io.Writer
	bar       progress.Model
	total     int
	processed int
	enabled   bool
}

// NewMeter creates a progress meter. total <= 0 means the total is unknown.
func NewMeter(total int) *Meter {
	return newMeter(total, os.Stderr, term.IsTerminal(int(os.Stderr.Fd())))
}

func newMeter(total int, out io.Writer, enabled bool) *Meter {
	return &Meter{
		out:     out,
		bar:     progress.New(progress.WithDefaultGradient(), progress.WithWidth(30)),
		total:   total,
		enabled: enabled,
	}
}

// Increment records one processed input line.
func (m *Meter) Increment() {
	m.processed++
	if !m.enabled || m.processed%renderEvery != 0 {
		return
	}
	m.render()
}

// Finish draws the final state and moves to a fresh line.
func (m *Meter) Finish() {
	if !m.enabled {
		return
	}
	m.render()
	fmt.Fprintln(m.out)
}

func (m *Meter) render() {
	if m.total > 0 {
		pct := float64(m.processed) / float64(m.total)
		if pct > 1 {
			pct = 1
		}
		fmt.Fprintf(m.out, "\r%s %d/%d", m.bar.ViewAs(pct), m.processed, m.total)
		return
	}
	fmt.Fprintf(m.out, "\rprocessed %d lines", m.processed)
}

// Processed returns the number of input lines observed.
func (m *Meter) Processed() int {
	return m.processed
}
