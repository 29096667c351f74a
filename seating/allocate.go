package seating

// Allocate walks the layout row by row, then bookable column by column,
// and collects the first count seats that are neither VIP nor reserved.
// loc narrows the scan to rows of one location; the zero value scans the
// whole hall. The result can be shorter than count when supply runs out;
// that is not an error, callers compare the returned length against the
// request. The scan order is fixed, so identical inputs always yield
// identical output.
func Allocate(l *Layout, reserved map[string]struct{}, count int, loc Location) []string {
	if count <= 0 {
		return nil
	}
	var out []string
	for row := 0; row < l.Rows; row++ {
		if loc != "" && l.LocationOfRow(row) != loc {
			continue
		}
		for _, col := range l.seatCols {
			if l.IsVIP(row, col) {
				continue
			}
			label, err := l.EncodeSeat(row, col)
			if err != nil {
				continue
			}
			if _, taken := reserved[label]; taken {
				continue
			}
			out = append(out, label)
			if len(out) == count {
				return out
			}
		}
	}
	return out
}
