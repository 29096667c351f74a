package seating

// LocationStats is the per-location availability breakdown.
type LocationStats struct {
	Total     int `json:"total"`
	Available int `json:"available"`
	Reserved  int `json:"reserved"`
}

// ReservedSet expands every record's seat ranges and unions the results.
// It is always recomputed from the full current record set; there is no
// incremental update, so it cannot drift after concurrent bookings.
func ReservedSet(rangeLists [][]string) map[string]struct{} {
	reserved := make(map[string]struct{})
	for _, ranges := range rangeLists {
		for _, label := range ExpandRanges(ranges) {
			reserved[label] = struct{}{}
		}
	}
	return reserved
}

// Available returns every non-VIP seat label of the layout that is not in
// the reserved set, in row-major order.
func Available(l *Layout, reserved map[string]struct{}) []string {
	var out []string
	for _, label := range l.AllSeatLabels() {
		if _, taken := reserved[label]; !taken {
			out = append(out, label)
		}
	}
	return out
}

// Breakdown partitions the layout's seats by location and counts totals,
// available and reserved per partition. Reserved labels that decode to no
// seat in the layout are ignored, so for every location
// available + reserved == total.
func Breakdown(l *Layout, reserved map[string]struct{}) map[Location]LocationStats {
	stats := make(map[Location]LocationStats, len(Locations()))
	for _, loc := range Locations() {
		stats[loc] = LocationStats{}
	}
	for _, label := range l.AllSeatLabels() {
		row, _, err := l.DecodeSeat(label)
		if err != nil {
			continue
		}
		loc := l.LocationOfRow(row)
		s := stats[loc]
		s.Total++
		if _, taken := reserved[label]; taken {
			s.Reserved++
		} else {
			s.Available++
		}
		stats[loc] = s
	}
	return stats
}
