package seating

import (
	"reflect"
	"testing"
)

func TestExpandRanges(t *testing.T) {
	got := ExpandRanges([]string{"C01 - C03", "D01"})
	want := []string{"C01", "C02", "C03", "D01"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestExpandCommaSeparatedEntry(t *testing.T) {
	got := ExpandRanges([]string{"C01 - C03, D01, D03 - D05"})
	want := []string{"C01", "C02", "C03", "D01", "D03", "D04", "D05"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestExpandNormalizesSingleDigit(t *testing.T) {
	got := ExpandRanges([]string{"C1"})
	if !reflect.DeepEqual(got, []string{"C01"}) {
		t.Fatalf("got %v, want [C01]", got)
	}
}

func TestExpandCrossRowFallsBackToSingles(t *testing.T) {
	// Ends on different rows are not a run; both endpoints come through as
	// standalone seats instead of aborting the record.
	got := ExpandRanges([]string{"C24 - D02"})
	want := []string{"C24", "D02"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestExpandSkipsGarbage(t *testing.T) {
	got := ExpandRanges([]string{"??", "C02", ""})
	if !reflect.DeepEqual(got, []string{"C02"}) {
		t.Fatalf("got %v, want [C02]", got)
	}
}

func TestCompactLabels(t *testing.T) {
	got := CompactLabels([]string{"C01", "C02", "C03", "D05"})
	want := []string{"C01 - C03", "D05"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestCompactSortsNumerically(t *testing.T) {
	// C10 must not sort before C02.
	got := CompactLabels([]string{"C10", "C02", "C09", "C11"})
	want := []string{"C02", "C09 - C11"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestCompactDeduplicates(t *testing.T) {
	got := CompactLabels([]string{"C01", "C01", "C02"})
	want := []string{"C01 - C02"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestCompactExpandRoundTrip(t *testing.T) {
	cases := [][]string{
		{"C01", "C02", "C03", "D05"},
		{"C25", "D01", "D02"},
		{"M01"},
		{"C07", "C08", "C10", "C11", "C12", "E19"},
	}
	for _, labels := range cases {
		once := CompactLabels(labels)
		again := CompactLabels(ExpandRanges(once))
		if !reflect.DeepEqual(once, again) {
			t.Fatalf("round trip of %v: %v != %v", labels, once, again)
		}
	}
}

func TestSortLabels(t *testing.T) {
	labels := []string{"D01", "C10", "C2", "C09"}
	SortLabels(labels)
	want := []string{"C2", "C09", "C10", "D01"}
	if !reflect.DeepEqual(labels, want) {
		t.Fatalf("got %v, want %v", labels, want)
	}
}
