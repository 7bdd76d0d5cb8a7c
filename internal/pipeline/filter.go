// Package pipeline implements the streaming line pipeline:
// normalize, filter, transform, dedup.
package pipeline

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/verte-zerg/wordcrunch/internal/model"
)

// FilterFunc returns true when a line should be kept.
type FilterFunc func(string) bool

// All combines filters by conjunction. With no filters every line survives.
func All(filters ...FilterFunc) FilterFunc {
	return func(line string) bool {
		for _, filter := range filters {
			if !filter(line) {
				return false
			}
		}
		return true
	}
}

// LengthRange keeps lines whose character count lies in [min, max].
func LengthRange(min, max int) (FilterFunc, error) {
	if min < 0 {
		return nil, fmt.Errorf("minimum length must be >= 0, got %d", min)
	}
	if min > max {
		return nil, fmt.Errorf("invalid length range: min %d > max %d", min, max)
	}
	return func(line string) bool {
		n := utf8.RuneCountInString(line)
		return n >= min && n <= max
	}, nil
}

// Contains keeps lines in which the needle occurs anywhere.
func Contains(needle string, fold bool) FilterFunc {
	if fold {
		needle = strings.ToLower(needle)
		return func(line string) bool {
			return strings.Contains(strings.ToLower(line), needle)
		}
	}
	return func(line string) bool {
		return strings.Contains(line, needle)
	}
}

// Matches keeps lines in which the pattern matches anywhere (unanchored).
// An invalid pattern fails here, before any line is read.
func Matches(pattern string, fold bool) (FilterFunc, error) {
	if fold {
		pattern = "(?i)" + pattern
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid pattern: %w", err)
	}
	return re.MatchString, nil
}

// Affix keeps lines carrying the given prefix and/or suffix.
// At least one of the two must be supplied.
func Affix(prefix, suffix string, fold bool) (FilterFunc, error) {
	if prefix == "" && suffix == "" {
		return nil, fmt.Errorf("at least one of --starts-with and --ends-with is required")
	}
	if fold {
		prefix = strings.ToLower(prefix)
		suffix = strings.ToLower(suffix)
	}
	return func(line string) bool {
		if fold {
			line = strings.ToLower(line)
		}
		if prefix != "" && !strings.HasPrefix(line, prefix) {
			return false
		}
		if suffix != "" && !strings.HasSuffix(line, suffix) {
			return false
		}
		return true
	}, nil
}

// UniqueChars keeps lines with at least min distinct characters.
func UniqueChars(min int, fold bool) (FilterFunc, error) {
	if min < 0 {
		return nil, fmt.Errorf("minimum unique characters must be >= 0, got %d", min)
	}
	return func(line string) bool {
		if fold {
			line = strings.ToLower(line)
		}
		distinct := make(map[rune]struct{})
		for _, r := range line {
			distinct[r] = struct{}{}
		}
		return len(distinct) >= min
	}, nil
}

// ForContentClass returns the predicate for a content class.
// ContentAny returns nil, meaning no filter.
func ForContentClass(class model.ContentClass) FilterFunc {
	switch class {
	case model.ContentDigitsOnly:
		return digitsOnly
	case model.ContentAlphaOnly:
		return alphaOnly
	case model.ContentHasNumber:
		return hasNumber
	case model.ContentHasSpecial:
		return hasSpecial
	default:
		return nil
	}
}

func digitsOnly(line string) bool {
	if line == "" {
		return false
	}
	for _, r := range line {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

func alphaOnly(line string) bool {
	if line == "" {
		return false
	}
	for _, r := range line {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

func hasNumber(line string) bool {
	for _, r := range line {
		if unicode.IsDigit(r) {
			return true
		}
	}
	return false
}

func hasSpecial(line string) bool {
	for _, r := range line {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return true
		}
	}
	return false
}
