package seating

// Location is the physical venue a block of rows is assigned to. Stored
// records carry these names verbatim, so they form a closed set rather
// than free-form strings.
type Location string

const (
	LocationCTHub    Location = "CT Hub"
	LocationTampines Location = "Tampines"
	LocationPasirRis Location = "Pasir Ris West Wellness Centre"
)

// rowBase is the letter of row index 0. Rows A and B belong to the stage
// apron and are not part of the bookable grid.
const rowBase = 'C'

// Locations returns every known location in display order.
func Locations() []Location {
	return []Location{LocationCTHub, LocationTampines, LocationPasirRis}
}

// ParseLocation validates a free-form location string against the closed set.
func ParseLocation(s string) (Location, bool) {
	switch Location(s) {
	case LocationCTHub, LocationTampines, LocationPasirRis:
		return Location(s), true
	}
	return "", false
}

// Layout is the static description of the seating grid: how many rows and
// grid columns exist, which columns are aisle gaps, which seats are VIP,
// and which location each row belongs to. Aisle columns do not consume a
// seat number, so the visible numbering stays contiguous across gaps.
type Layout struct {
	Rows    int
	Columns int

	gaps     map[int]bool
	vip      func(row, col int) bool
	location func(row int) Location

	seatCols []int       // bookable column indices, ascending
	seatPos  map[int]int // column index -> 1-based seat number
}

// NewLayout builds a layout. gapColumns lists grid column indices that are
// aisles. vip may be nil (no VIP seats); rowLocation may be nil, in which
// case every row reports LocationCTHub.
func NewLayout(rows, columns int, gapColumns []int, vip func(row, col int) bool, rowLocation func(row int) Location) *Layout {
	l := &Layout{
		Rows:     rows,
		Columns:  columns,
		gaps:     make(map[int]bool, len(gapColumns)),
		vip:      vip,
		location: rowLocation,
		seatPos:  make(map[int]int),
	}
	for _, c := range gapColumns {
		l.gaps[c] = true
	}
	for c := 0; c < columns; c++ {
		if l.gaps[c] {
			continue
		}
		l.seatCols = append(l.seatCols, c)
		l.seatPos[c] = len(l.seatCols)
	}
	return l
}

// DefaultLayout models the hall used for the performance night: rows C
// through M, 25 seats per row, aisle gaps after seats 06 and 19. Rows are
// assigned to locations in fixed blocks: CT Hub gets C, D, I, J, M;
// Tampines gets E, F, K, L; Pasir Ris West Wellness Centre gets G and H.
func DefaultLayout() *Layout {
	return NewLayout(11, 27, []int{6, 20}, nil, func(row int) Location {
		switch rowBase + rune(row) {
		case 'E', 'F', 'K', 'L':
			return LocationTampines
		case 'G', 'H':
			return LocationPasirRis
		default:
			return LocationCTHub
		}
	})
}

// IsBookableColumn reports whether the grid column holds seats rather than
// an aisle gap.
func (l *Layout) IsBookableColumn(col int) bool {
	return col >= 0 && col < l.Columns && !l.gaps[col]
}

// IsVIP reports whether the seat exists but is permanently excluded from
// booking.
func (l *Layout) IsVIP(row, col int) bool {
	return l.vip != nil && l.vip(row, col)
}

// SeatNumber returns the 1-based visible number of a bookable column.
func (l *Layout) SeatNumber(col int) (int, bool) {
	n, ok := l.seatPos[col]
	return n, ok
}

// ColumnForSeat maps a visible seat number back to its grid column.
func (l *Layout) ColumnForSeat(n int) (int, bool) {
	if n < 1 || n > len(l.seatCols) {
		return 0, false
	}
	return l.seatCols[n-1], true
}

// SeatsPerRow is the number of bookable seats in each row.
func (l *Layout) SeatsPerRow() int {
	return len(l.seatCols)
}

// LocationOfRow reports the location of a row index.
func (l *Layout) LocationOfRow(row int) Location {
	if l.location == nil {
		return LocationCTHub
	}
	return l.location(row)
}

// RowLetter returns the display letter for a row index.
func (l *Layout) RowLetter(row int) string {
	return string(rowBase + rune(row))
}

// AllSeatLabels lists every bookable, non-VIP seat label in row-major,
// ascending-number order.
func (l *Layout) AllSeatLabels() []string {
	labels := make([]string, 0, l.Rows*len(l.seatCols))
	for row := 0; row < l.Rows; row++ {
		for _, col := range l.seatCols {
			if l.IsVIP(row, col) {
				continue
			}
			label, err := l.EncodeSeat(row, col)
			if err != nil {
				continue
			}
			labels = append(labels, label)
		}
	}
	return labels
}
