// Package stats contains statistics calculations and reporting.
package stats

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#C89A3A"))

// RenderReport prints the statistics for one wordlist.
func RenderReport(w io.Writer, path string, res Result) error {
	if _, err := fmt.Fprintln(w, headerStyle.Render("Wordlist Statistics"), path); err != nil {
		return err
	}
	if res.Total == 0 {
		_, err := fmt.Fprintln(w, "No lines found.")
		return err
	}

	headers := []string{"Metric", "Value", "Example"}
	rows := [][]string{
		{"Total lines", fmt.Sprintf("%d", res.Total), ""},
		{"Unique lines", fmt.Sprintf("%d", res.Unique), ""},
		{"Duplicates", fmt.Sprintf("%d", res.Duplicates), ""},
		{"Min length", fmt.Sprintf("%d", res.MinLen), res.MinExample},
		{"Max length", fmt.Sprintf("%d", res.MaxLen), res.MaxExample},
		{"Mean length", fmt.Sprintf("%.2f", res.MeanLen), ""},
		{"Median length", fmt.Sprintf("%.1f", res.MedianLen), ""},
	}
	rightAlign := map[int]bool{1: true}
	for _, line := range formatTable(headers, rows, rightAlign) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
