package sink

import (
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/verte-zerg/wordcrunch/internal/model"
)

// Order sorts lines in place according to the sort mode. The fold flag makes
// comparisons case-insensitive; reverse produces the exact reverse of the
// forward ordering.
func Order(lines []string, mode model.SortMode, fold, reverse bool) {
	if mode == model.SortNone {
		if reverse {
			reverseLines(lines)
		}
		return
	}

	view := func(line string) string { return line }
	if fold {
		view = strings.ToLower
	}

	var less func(a, b string) bool
	switch mode {
	case model.SortAlpha:
		less = func(a, b string) bool { return view(a) < view(b) }
	case model.SortLength:
		less = func(a, b string) bool {
			la, lb := utf8.RuneCountInString(a), utf8.RuneCountInString(b)
			if la != lb {
				return la < lb
			}
			return view(a) < view(b)
		}
	case model.SortNumeric:
		less = func(a, b string) bool {
			na, aok := leadingNumber(a)
			nb, bok := leadingNumber(b)
			// Non-numeric tokens rank before every numeric token.
			if aok != bok {
				return !aok
			}
			if aok && na != nb {
				return na < nb
			}
			return view(a) < view(b)
		}
	}

	sort.SliceStable(lines, func(i, j int) bool { return less(lines[i], lines[j]) })
	if reverse {
		reverseLines(lines)
	}
}

func reverseLines(lines []string) {
	for i, j := 0, len(lines)-1; i < j; i, j = i+1, j-1 {
		lines[i], lines[j] = lines[j], lines[i]
	}
}

// leadingNumber parses the numeric value at the start of a line.
func leadingNumber(line string) (float64, bool) {
	end := 0
	seenDigit := false
	seenDot := false
	for end < len(line) {
		c := line[end]
		if c >= '0' && c <= '9' {
			seenDigit = true
			end++
			continue
		}
		if (c == '-' || c == '+') && end == 0 {
			end++
			continue
		}
		if c == '.' && !seenDot {
			seenDot = true
			end++
			continue
		}
		break
	}
	if !seenDigit {
		return 0, false
	}
	value, err := strconv.ParseFloat(strings.TrimSuffix(line[:end], "."), 64)
	if err != nil {
		return 0, false
	}
	return value, true
}
