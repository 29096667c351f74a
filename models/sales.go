package models

import (
	"errors"
	"fmt"
	"strings"

	"perfnight/seating"
)

// TicketSale is one persisted booking record. Seats are stored in range
// notation ("C01 - C03"); consumers must expand them through the seating
// package before treating them as individual seats. Records are written
// once and never edited or deleted.
type TicketSale struct {
	BookingNo          string   `json:"bookingNo" bson:"bookingNo"`
	Name               string   `json:"name" bson:"name"`
	StaffName          string   `json:"staffName,omitempty" bson:"staffName,omitempty"`
	Location           string   `json:"location" bson:"location"`
	Price              float64  `json:"price,omitempty" bson:"price,omitempty"`
	Time               string   `json:"time" bson:"time"`
	PaymentType        string   `json:"paymentType,omitempty" bson:"paymentType,omitempty"`
	PaymentRef         string   `json:"paymentRef,omitempty" bson:"paymentRef,omitempty"`
	SelectedSeatsCount int      `json:"selectedSeatsCount,omitempty" bson:"selectedSeatsCount,omitempty"`
	Seats              []string `json:"seats" bson:"seats"`
	CreatedAt          int64    `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
}

var (
	ErrNoSeats         = errors.New("record has no seats")
	ErrUnknownLocation = errors.New("unknown location")
)

// Normalize validates and canonicalizes a record at the store boundary:
// the location must be one of the known venues, seats must be present, and
// the seat list is rewritten as sorted maximal ranges. Records never reach
// the store in any other shape.
func (t *TicketSale) Normalize() error {
	t.Location = strings.TrimSpace(t.Location)
	if _, ok := seating.ParseLocation(t.Location); !ok {
		return fmt.Errorf("%q: %w", t.Location, ErrUnknownLocation)
	}
	expanded := seating.ExpandRanges(t.Seats)
	if len(expanded) == 0 {
		return ErrNoSeats
	}
	t.Seats = seating.CompactLabels(expanded)
	if t.SelectedSeatsCount == 0 {
		t.SelectedSeatsCount = len(expanded)
	}
	return nil
}

// GroupKey is the identity under which incoming per-seat rows are merged
// into one record.
func (t *TicketSale) GroupKey() string {
	return strings.Join([]string{
		t.Name, t.StaffName, t.Location,
		fmt.Sprintf("%.2f", t.Price), t.Time,
		t.PaymentType, t.PaymentRef, t.BookingNo,
	}, "|")
}

// ScannedTicket is one door check-in of a single seat.
type ScannedTicket struct {
	ScanID     string `json:"scanId" bson:"scanId"`
	SeatNumber string `json:"seatNumber" bson:"seatNumber"`
	ScannedAt  int64  `json:"scannedAt" bson:"scannedAt"`
}

// Notification is a stored announcement, also pushed as a banner.
type Notification struct {
	Type        string `json:"type" bson:"type"`
	Date        string `json:"date" bson:"date"`
	Description string `json:"description" bson:"description"`
	CreatedAt   int64  `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
}
