package tickets

import (
	"bytes"
	"testing"

	"perfnight/models"
)

func TestGenerateReceiptPDF(t *testing.T) {
	records := []models.TicketSale{
		{
			BookingNo: "ECSS/MC2025/001",
			Name:      "Tan Ah Kow",
			Location:  "CT Hub",
			Price:     10,
			Time:      "01/06/2025 19:00:00",
			Seats:     []string{"C01 - C03"},
		},
		{
			BookingNo: "ECSS/MC2025/002",
			Name:      "Lim Bee Hoon",
			Location:  "Tampines",
			Time:      "01/06/2025 19:05:00",
			Seats:     []string{"E05"},
		},
	}

	pdf, err := GenerateReceiptPDF(records)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF")) {
		t.Fatalf("output does not look like a PDF (starts %q)", pdf[:min(8, len(pdf))])
	}
}

func TestGenerateReceiptPDFEmpty(t *testing.T) {
	pdf, err := GenerateReceiptPDF(nil)
	if err != nil {
		t.Fatalf("generate empty: %v", err)
	}
	if len(pdf) == 0 {
		t.Fatal("empty output")
	}
}
