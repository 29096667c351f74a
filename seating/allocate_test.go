package seating

import (
	"reflect"
	"testing"
)

// threeRowLayout is rows C..E with five seats each and no gaps or VIP.
func threeRowLayout() *Layout {
	return NewLayout(3, 5, nil, nil, nil)
}

func TestAllocateNextAvailable(t *testing.T) {
	l := threeRowLayout()
	reserved := map[string]struct{}{"C01": {}, "C02": {}}
	got := Allocate(l, reserved, 3, "")
	want := []string{"C03", "C04", "C05"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestAllocateDeterministic(t *testing.T) {
	l := DefaultLayout()
	reserved := ReservedSet([][]string{{"C01 - C12"}, {"D03"}})
	first := Allocate(l, reserved, 8, LocationCTHub)
	second := Allocate(l, reserved, 8, LocationCTHub)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("allocation not deterministic: %v vs %v", first, second)
	}
}

func TestAllocateShortResult(t *testing.T) {
	l := threeRowLayout()
	reserved := ReservedSet([][]string{{"C01 - C05", "D01 - D05", "E01 - E03"}})
	got := Allocate(l, reserved, 5, "")
	want := []string{"E04", "E05"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestAllocateExactWhenSupplySuffices(t *testing.T) {
	l := DefaultLayout()
	for _, n := range []int{1, 5, 25, 50} {
		if got := Allocate(l, nil, n, LocationPasirRis); len(got) != n {
			t.Fatalf("asked %d seats with full supply, got %d", n, len(got))
		}
	}
	// Pasir Ris has 50 seats in total.
	if got := Allocate(l, nil, 51, LocationPasirRis); len(got) != 50 {
		t.Fatalf("asked 51 of 50, got %d", len(got))
	}
}

func TestAllocateLocationFilter(t *testing.T) {
	l := DefaultLayout()
	got := Allocate(l, nil, 30, LocationTampines)
	if len(got) != 30 {
		t.Fatalf("got %d seats, want 30", len(got))
	}
	for _, label := range got {
		row, _, err := l.DecodeSeat(label)
		if err != nil {
			t.Fatalf("decode %s: %v", label, err)
		}
		if l.LocationOfRow(row) != LocationTampines {
			t.Fatalf("seat %s allocated outside Tampines", label)
		}
	}
	// Tampines rows start at E, so the scan begins there.
	if got[0] != "E01" {
		t.Fatalf("first Tampines seat %s, want E01", got[0])
	}
}

func TestAllocateSkipsVIP(t *testing.T) {
	vip := func(row, col int) bool { return row == 0 && col >= 1 && col <= 3 }
	l := NewLayout(2, 5, nil, vip, nil)
	got := Allocate(l, nil, 4, "")
	want := []string{"C01", "C05", "D01", "D02"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestAllocateZeroCount(t *testing.T) {
	if got := Allocate(threeRowLayout(), nil, 0, ""); got != nil {
		t.Fatalf("got %v, want nil", got)
	}
}
