// Package model defines shared data structures.
package model

import "fmt"

// SortMode selects the ordering applied to output lines.
type SortMode int

const (
	// SortNone leaves lines in pipeline order.
	SortNone SortMode = iota
	// SortAlpha orders lines lexicographically.
	SortAlpha
	// SortLength orders lines by character count, ties lexicographic.
	SortLength
	// SortNumeric orders lines by their leading numeric value.
	SortNumeric
)

// ParseSortMode maps a flag value to a SortMode.
func ParseSortMode(s string) (SortMode, error) {
	switch s {
	case "", "none":
		return SortNone, nil
	case "alpha":
		return SortAlpha, nil
	case "length":
		return SortLength, nil
	case "numeric":
		return SortNumeric, nil
	}
	return SortNone, fmt.Errorf("unknown sort mode %q (valid: none, alpha, length, numeric)", s)
}

// Transform selects the mutation applied to each surviving line.
type Transform int

const (
	// TransformNone is the identity transform.
	TransformNone Transform = iota
	// TransformLower lowercases the whole line.
	TransformLower
	// TransformUpper uppercases the whole line.
	TransformUpper
	// TransformCapitalize uppercases the first character and lowercases the rest.
	TransformCapitalize
	// TransformReverse reverses the character order.
	TransformReverse
)

// ParseTransform maps a flag value to a Transform.
func ParseTransform(s string) (Transform, error) {
	switch s {
	case "", "none":
		return TransformNone, nil
	case "lower":
		return TransformLower, nil
	case "upper":
		return TransformUpper, nil
	case "capitalize":
		return TransformCapitalize, nil
	case "reverse":
		return TransformReverse, nil
	}
	return TransformNone, fmt.Errorf("unknown transform %q (valid: none, lower, upper, capitalize, reverse)", s)
}

// ContentClass is a coarse predicate over a line's character composition.
type ContentClass int

const (
	// ContentAny accepts every line.
	ContentAny ContentClass = iota
	// ContentDigitsOnly accepts non-empty lines made of decimal digits.
	ContentDigitsOnly
	// ContentAlphaOnly accepts non-empty lines made of letters.
	ContentAlphaOnly
	// ContentHasNumber accepts lines containing at least one digit.
	ContentHasNumber
	// ContentHasSpecial accepts lines containing a non-letter, non-digit character.
	ContentHasSpecial
)

// ParseContentClass maps a flag value to a ContentClass.
func ParseContentClass(s string) (ContentClass, error) {
	switch s {
	case "":
		return ContentAny, nil
	case "digits-only":
		return ContentDigitsOnly, nil
	case "alpha-only":
		return ContentAlphaOnly, nil
	case "has-number":
		return ContentHasNumber, nil
	case "has-special":
		return ContentHasSpecial, nil
	}
	return ContentAny, fmt.Errorf("unknown content filter %q (valid: digits-only, alpha-only, has-number, has-special)", s)
}

// RunConfig holds the resolved global options for one invocation.
// Built once from flags and config, then shared read-only by every stage.
type RunConfig struct {
	CaseInsensitive bool
	Sort            SortMode
	ReverseSort     bool
	Strip           bool
	RemoveEmpty     bool
	Transform       Transform
	Content         ContentClass
	Preview         bool
	DryRun          bool
	Progress        bool
	Output          string
}
