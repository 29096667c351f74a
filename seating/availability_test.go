package seating

import "testing"

func TestReservedSetUnionsAllRecords(t *testing.T) {
	reserved := ReservedSet([][]string{
		{"C01 - C03"},
		{"C03", "D01"},
	})
	for _, label := range []string{"C01", "C02", "C03", "D01"} {
		if _, ok := reserved[label]; !ok {
			t.Fatalf("expected %s reserved", label)
		}
	}
	if len(reserved) != 4 {
		t.Fatalf("got %d reserved seats, want 4", len(reserved))
	}
}

func TestAvailableExcludesReserved(t *testing.T) {
	l := DefaultLayout()
	reserved := ReservedSet([][]string{{"C01 - C25"}})
	available := Available(l, reserved)
	want := l.Rows*l.SeatsPerRow() - 25
	if len(available) != want {
		t.Fatalf("got %d available, want %d", len(available), want)
	}
	for _, label := range available {
		if label[0] == 'C' {
			t.Fatalf("row C fully reserved but %s still available", label)
		}
	}
}

func TestAvailableExcludesVIP(t *testing.T) {
	vip := func(row, col int) bool { return row == 0 }
	l := NewLayout(3, 5, nil, vip, nil)
	for _, label := range Available(l, nil) {
		if label[0] == 'C' {
			t.Fatalf("VIP seat %s offered as available", label)
		}
	}
	if got := len(Available(l, nil)); got != 10 {
		t.Fatalf("got %d available, want 10", got)
	}
}

func TestBreakdownSums(t *testing.T) {
	l := DefaultLayout()
	reserved := ReservedSet([][]string{{"C01 - C10"}, {"E05"}, {"G20 - G25"}})
	stats := Breakdown(l, reserved)

	totalAcross := 0
	for loc, s := range stats {
		if s.Available+s.Reserved != s.Total {
			t.Fatalf("%s: available %d + reserved %d != total %d", loc, s.Available, s.Reserved, s.Total)
		}
		totalAcross += s.Total
	}
	if want := len(l.AllSeatLabels()); totalAcross != want {
		t.Fatalf("totals sum to %d, want %d", totalAcross, want)
	}

	if got := stats[LocationCTHub]; got.Total != 125 || got.Reserved != 10 {
		t.Fatalf("CT Hub stats %+v, want total 125 reserved 10", got)
	}
	if got := stats[LocationTampines]; got.Total != 100 || got.Reserved != 1 {
		t.Fatalf("Tampines stats %+v, want total 100 reserved 1", got)
	}
	if got := stats[LocationPasirRis]; got.Total != 50 || got.Reserved != 6 {
		t.Fatalf("Pasir Ris stats %+v, want total 50 reserved 6", got)
	}
}

func TestBreakdownIgnoresUnknownLabels(t *testing.T) {
	l := DefaultLayout()
	reserved := ReservedSet([][]string{{"Z01"}})
	stats := Breakdown(l, reserved)
	for loc, s := range stats {
		if s.Reserved != 0 {
			t.Fatalf("%s counted a seat outside the layout: %+v", loc, s)
		}
	}
}
