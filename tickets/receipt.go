package tickets

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/phpdave11/gofpdf"
	"github.com/skip2/go-qrcode"

	"perfnight/models"
)

// GenerateReceiptPDF renders the ticket sales receipt for one submission's
// grouped records: society header, invoice details, one table row per
// record, and a signed QR per booking for door scanning.
func GenerateReceiptPDF(records []models.TicketSale) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 22)
	pdf.CellFormat(0, 12, "INVOICE", "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Arial", "", 11)
	for _, line := range []string{
		"En Community Services Society",
		"UEN - T03SS0051L",
		"Mailing Address: 2 Kallang Avenue, CT Hub #06-14",
		"Singapore 339407",
		"Tel - 67886625",
		"Email : encom@ecss.org.sg",
	} {
		pdf.CellFormat(0, 6, line, "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	now := time.Now()
	pdf.CellFormat(0, 6, fmt.Sprintf("INVOICE DATE: %s", now.Format("02/01/2006")), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("INVOICE NO.: ECSS/SFC/%s/%d", now.Format("06"), int(now.Month())), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Arial", "B", 13)
	pdf.CellFormat(0, 8, "TICKET SALES RECEIPT", "", 1, "C", false, 0, "")
	pdf.Ln(2)

	colWidths := []float64{40, 40, 20, 45, 35}
	headers := []string{"Name", "Location", "Price", "Seats", "Time"}
	pdf.SetFont("Arial", "B", 10)
	for i, h := range headers {
		pdf.CellFormat(colWidths[i], 7, h, "B", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 10)
	for _, record := range records {
		price := ""
		if record.Price != 0 {
			price = fmt.Sprintf("$%.2f", record.Price)
		}
		cells := []string{
			record.Name,
			record.Location,
			price,
			strings.Join(record.Seats, ", "),
			record.Time,
		}
		for i, c := range cells {
			pdf.CellFormat(colWidths[i], 7, c, "", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}
	pdf.Ln(6)

	for _, record := range records {
		qrPNG, err := qrcode.Encode(GenerateQRPayload(record.BookingNo, record.Seats), qrcode.Medium, 256)
		if err != nil {
			return nil, fmt.Errorf("generate QR for %s: %w", record.BookingNo, err)
		}
		imgOpts := gofpdf.ImageOptions{ImageType: "PNG"}
		name := "qr-" + record.BookingNo
		pdf.RegisterImageOptionsReader(name, imgOpts, bytes.NewReader(qrPNG))
		y := pdf.GetY()
		pdf.ImageOptions(name, 15, y, 30, 30, false, imgOpts, 0, "")
		pdf.SetXY(50, y+10)
		pdf.CellFormat(0, 6, fmt.Sprintf("Booking No: %s", record.BookingNo), "", 1, "L", false, 0, "")
		pdf.SetY(y + 34)
	}
	pdf.Ln(4)

	pdf.SetFont("Arial", "", 9)
	pdf.CellFormat(0, 5, "NOTES:", "", 1, "L", false, 0, "")
	for _, note := range []string{
		"1. Please keep this receipt for your records.",
		"2. For any queries, contact us at encom@ecss.org.sg or 67886625.",
		"3. This is a computer generated receipt and requires no signature.",
	} {
		pdf.CellFormat(0, 5, "   "+note, "", 1, "L", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render receipt: %w", err)
	}
	return buf.Bytes(), nil
}
