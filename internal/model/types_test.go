package model

import "testing"

func TestParseSortMode(t *testing.T) {
	cases := map[string]SortMode{
		"":        SortNone,
		"none":    SortNone,
		"alpha":   SortAlpha,
		"length":  SortLength,
		"numeric": SortNumeric,
	}
	for in, want := range cases {
		got, err := ParseSortMode(in)
		if err != nil {
			t.Fatalf("unexpected error for %q: %v", in, err)
		}
		if got != want {
			t.Fatalf("ParseSortMode(%q): expected %d, got %d", in, want, got)
		}
	}
	if _, err := ParseSortMode("alphabetical"); err == nil {
		t.Fatalf("expected error for unknown sort mode")
	}
}

func TestParseTransform(t *testing.T) {
	if _, err := ParseTransform("rot13"); err == nil {
		t.Fatalf("expected error for unknown transform")
	}
	got, err := ParseTransform("capitalize")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != TransformCapitalize {
		t.Fatalf("expected TransformCapitalize, got %d", got)
	}
}

func TestParseContentClass(t *testing.T) {
	got, err := ParseContentClass("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != ContentAny {
		t.Fatalf("expected ContentAny for empty value, got %d", got)
	}
	if _, err := ParseContentClass("emoji-only"); err == nil {
		t.Fatalf("expected error for unknown content class")
	}
}
