package seating

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	// ErrMalformedLabel means a seat string does not parse as a label at all.
	ErrMalformedLabel = errors.New("malformed seat label")
	// ErrInvalidCoordinate means a coordinate or label falls outside the layout.
	ErrInvalidCoordinate = errors.New("invalid seat coordinate")
)

var labelPattern = regexp.MustCompile(`^[A-Z]+[0-9]{1,2}$`)

// EncodeSeat converts a (row, column) grid coordinate into its label,
// e.g. row 0, column 0 -> "C01". The column must be a bookable column;
// aisle gaps have no label.
func (l *Layout) EncodeSeat(row, col int) (string, error) {
	if row < 0 || row >= l.Rows {
		return "", fmt.Errorf("row %d: %w", row, ErrInvalidCoordinate)
	}
	n, ok := l.seatPos[col]
	if !ok || col >= l.Columns {
		return "", fmt.Errorf("column %d: %w", col, ErrInvalidCoordinate)
	}
	return fmt.Sprintf("%c%02d", rowBase+rune(row), n), nil
}

// DecodeSeat converts a label back into its (row, column) grid coordinate.
// The numeric suffix is always read as base-10, so "C08" is seat 8.
func (l *Layout) DecodeSeat(label string) (row, col int, err error) {
	if !labelPattern.MatchString(label) {
		return 0, 0, fmt.Errorf("%q: %w", label, ErrMalformedLabel)
	}
	i := strings.IndexFunc(label, func(r rune) bool { return r >= '0' && r <= '9' })
	letters, digits := label[:i], label[i:]
	if len(letters) != 1 {
		return 0, 0, fmt.Errorf("%q: %w", label, ErrInvalidCoordinate)
	}
	row = int(letters[0] - rowBase)
	if row < 0 || row >= l.Rows {
		return 0, 0, fmt.Errorf("%q: %w", label, ErrInvalidCoordinate)
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0, 0, fmt.Errorf("%q: %w", label, ErrMalformedLabel)
	}
	col, ok := l.ColumnForSeat(n)
	if !ok {
		return 0, 0, fmt.Errorf("%q: %w", label, ErrInvalidCoordinate)
	}
	return row, col, nil
}
