package seating

import (
	"reflect"
	"testing"
)

func TestConflictReturnsOverlap(t *testing.T) {
	reserved := map[string]struct{}{"C01": {}}
	got := Conflict([]string{"C01", "C02"}, reserved)
	if !reflect.DeepEqual(got, []string{"C01"}) {
		t.Fatalf("got %v, want [C01]", got)
	}
}

func TestConflictEmptyWhenDisjoint(t *testing.T) {
	reserved := ReservedSet([][]string{{"C01 - C03"}})
	if got := Conflict([]string{"C04", "D01"}, reserved); got != nil {
		t.Fatalf("got %v, want nil", got)
	}
}

func TestConflictIsExactIntersection(t *testing.T) {
	reserved := ReservedSet([][]string{{"C01 - C10", "D05"}})
	got := Conflict([]string{"C10", "C11", "D05", "C02"}, reserved)
	want := []string{"C02", "C10", "D05"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestConflictDeduplicates(t *testing.T) {
	reserved := map[string]struct{}{"C01": {}}
	got := Conflict([]string{"C01", "C01"}, reserved)
	if !reflect.DeepEqual(got, []string{"C01"}) {
		t.Fatalf("got %v, want [C01]", got)
	}
}
