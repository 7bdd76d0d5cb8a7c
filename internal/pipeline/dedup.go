package pipeline

import "strings"

// Tracker records lines seen across sources for first-occurrence dedup.
// Memory grows with the number of unique lines observed.
type Tracker struct {
	fold bool
	seen map[string]struct{}
}

// NewTracker creates a dedup tracker. With fold set, lines are compared
// case-insensitively while the emitted line keeps its original casing.
func NewTracker(fold bool) *Tracker {
	return &Tracker{fold: fold, seen: make(map[string]struct{})}
}

// Observe reports whether the line is the first occurrence and records it.
func (t *Tracker) Observe(line string) bool {
	key := line
	if t.fold {
		key = strings.ToLower(line)
	}
	if _, ok := t.seen[key]; ok {
		return false
	}
	t.seen[key] = struct{}{}
	return true
}

// ExclusionSet is a fully materialized set of lines to subtract.
type ExclusionSet struct {
	fold bool
	set  map[string]struct{}
}

// NewExclusionSet creates an empty exclusion set.
func NewExclusionSet(fold bool) *ExclusionSet {
	return &ExclusionSet{fold: fold, set: make(map[string]struct{})}
}

// Add records a line in the set.
func (e *ExclusionSet) Add(line string) {
	if e.fold {
		line = strings.ToLower(line)
	}
	e.set[line] = struct{}{}
}

// Contains reports whether the line is in the set under the active case mode.
func (e *ExclusionSet) Contains(line string) bool {
	if e.fold {
		line = strings.ToLower(line)
	}
	_, ok := e.set[line]
	return ok
}

// Len returns the number of distinct entries.
func (e *ExclusionSet) Len() int {
	return len(e.set)
}
