package stats

import "testing"

func observeAll(a *Accumulator, lines []string) {
	for _, line := range lines {
		a.Observe(line)
	}
}

func TestDuplicatesAreTotalMinusUnique(t *testing.T) {
	a := NewAccumulator(false)
	observeAll(a, []string{"admin", "root", "admin", "toor", "admin"})
	res := a.Result()
	if res.Total != 5 {
		t.Fatalf("expected total 5, got %d", res.Total)
	}
	if res.Unique != 3 {
		t.Fatalf("expected 3 unique, got %d", res.Unique)
	}
	if res.Duplicates != 2 {
		t.Fatalf("expected 2 duplicates, got %d", res.Duplicates)
	}
}

func TestFoldedUniqueness(t *testing.T) {
	a := NewAccumulator(true)
	observeAll(a, []string{"Pass123", "pass123", "PASS123"})
	res := a.Result()
	if res.Unique != 1 {
		t.Fatalf("expected 1 folded-unique line, got %d", res.Unique)
	}
	if res.Duplicates != 2 {
		t.Fatalf("expected 2 duplicates, got %d", res.Duplicates)
	}
}

func TestMedianEvenCount(t *testing.T) {
	a := NewAccumulator(false)
	observeAll(a, []string{"abc", "abcde", "abcdefg", "abcdefghi"})
	res := a.Result()
	if res.MedianLen != 6.0 {
		t.Fatalf("expected median 6.0 for lengths [3 5 7 9], got %v", res.MedianLen)
	}
}

func TestMedianOddCount(t *testing.T) {
	a := NewAccumulator(false)
	observeAll(a, []string{"abc", "abcde", "abcdefg"})
	res := a.Result()
	if res.MedianLen != 5.0 {
		t.Fatalf("expected median 5.0 for lengths [3 5 7], got %v", res.MedianLen)
	}
	if res.MeanLen != 5.0 {
		t.Fatalf("expected mean 5.0, got %v", res.MeanLen)
	}
}

func TestMinMaxKeepFirstExample(t *testing.T) {
	a := NewAccumulator(false)
	observeAll(a, []string{"medium", "ab", "xy", "longestword", "other&&&&&&"})
	res := a.Result()
	if res.MinLen != 2 || res.MinExample != "ab" {
		t.Fatalf("expected first min example ab, got %q (len %d)", res.MinExample, res.MinLen)
	}
	if res.MaxLen != 11 || res.MaxExample != "longestword" {
		t.Fatalf("expected first max example longestword, got %q (len %d)", res.MaxExample, res.MaxLen)
	}
}

func TestEmptyInput(t *testing.T) {
	res := NewAccumulator(false).Result()
	if res.Total != 0 || res.Unique != 0 || res.Duplicates != 0 {
		t.Fatalf("expected zeroed result, got %+v", res)
	}
}
