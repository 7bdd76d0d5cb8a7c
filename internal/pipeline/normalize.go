package pipeline

import "strings"

// Normalizer applies the pre-filter per-line mapping.
type Normalizer struct {
	Strip       bool
	RemoveEmpty bool
}

// Apply normalizes a line. The second return value is false when the line
// should be dropped from the sequence entirely.
func (n Normalizer) Apply(line string) (string, bool) {
	if n.Strip {
		line = strings.TrimSpace(line)
	}
	if n.RemoveEmpty && line == "" {
		return "", false
	}
	return line, true
}
