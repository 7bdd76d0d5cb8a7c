// Package stats contains statistics calculations and reporting.
package stats

import (
	"sort"
	"strings"
	"unicode/utf8"
)

// Accumulator computes descriptive statistics over a wordlist in one pass.
// It consumes normalized but unfiltered lines. Uniqueness follows the fold
// flag, matching the case mode used for dedup elsewhere. The full length
// list is kept so the median is exact, which makes this the one stage with
// O(n) memory beyond the seen set.
type Accumulator struct {
	fold bool

	total   int
	seen    map[string]struct{}
	lengths []int

	minLen     int
	maxLen     int
	minExample string
	maxExample string
}

// NewAccumulator creates an empty accumulator.
func NewAccumulator(fold bool) *Accumulator {
	return &Accumulator{fold: fold, seen: make(map[string]struct{})}
}

// Observe feeds one line into the accumulator.
func (a *Accumulator) Observe(line string) {
	key := line
	if a.fold {
		key = strings.ToLower(line)
	}
	a.seen[key] = struct{}{}

	length := utf8.RuneCountInString(line)
	if a.total == 0 || length < a.minLen {
		a.minLen = length
		a.minExample = line
	}
	if a.total == 0 || length > a.maxLen {
		a.maxLen = length
		a.maxExample = line
	}
	a.total++
	a.lengths = append(a.lengths, length)
}

// Result summarizes the observed lines.
type Result struct {
	Total      int
	Unique     int
	Duplicates int
	MinLen     int
	MaxLen     int
	MinExample string
	MaxExample string
	MeanLen    float64
	MedianLen  float64
}

// Result computes the final statistics.
func (a *Accumulator) Result() Result {
	res := Result{
		Total:      a.total,
		Unique:     len(a.seen),
		Duplicates: a.total - len(a.seen),
		MinLen:     a.minLen,
		MaxLen:     a.maxLen,
		MinExample: a.minExample,
		MaxExample: a.maxExample,
	}
	if a.total == 0 {
		return res
	}

	sum := 0
	for _, n := range a.lengths {
		sum += n
	}
	res.MeanLen = float64(sum) / float64(a.total)

	sorted := make([]int, len(a.lengths))
	copy(sorted, a.lengths)
	sort.Ints(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		res.MedianLen = float64(sorted[mid-1]+sorted[mid]) / 2.0
	} else {
		res.MedianLen = float64(sorted[mid])
	}
	return res
}
