package services

import (
	"bytes"
	"fmt"
	"strings"

	"busbook/internal/domain"
	"busbook/internal/domain/models"
	"busbook/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// DocsService renders the printable ticket for a confirmed booking.
type DocsService struct {
	RequestID string
}

func (s DocsService) GenerateTicketPDF(t models.Ticket) ([]byte, string, error) {
	if strings.TrimSpace(t.BookingID) == "" {
		return nil, "", domain.ValidationError{Field: "bookingId", Msg: "ticket has no booking id"}
	}
	utils.LogEvent(s.RequestID, "docs", "generate_ticket", "booking="+t.BookingID)
	return buildTicketPDF(t)
}

func buildTicketPDF(t models.Ticket) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Bus Ticket", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 20)
	pdf.Cell(0, 10, "BUS TICKET")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 6, "Valid for Travel - Non-Transferable")
	pdf.Ln(14)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Passenger Name : %s", safe(t.Name, "N/A")),
		fmt.Sprintf("Booking ID     : %s", t.BookingID),
		fmt.Sprintf("Route          : %s -> %s", safe(t.Source, "-"), safe(t.Destination, "-")),
		fmt.Sprintf("Date           : %s", safe(t.BookingDate, "-")),
		fmt.Sprintf("Time           : %s", safe(t.BookingTime, "-")),
		fmt.Sprintf("Seats          : %d", t.Qty),
	}
	for _, line := range lines {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "B", 14)
	pdf.Cell(0, 8, "Total Amount Paid: "+utils.FormatINR(t.Fare))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "I", 9)
	pdf.Cell(0, 6, "Issued "+utils.FormatDateTime(utils.NowUTC())+" UTC")
	pdf.Ln(8)
	pdf.MultiCell(0, 5, "Thank you for traveling with us! Support: support@busbook.com | +91 98765 43210", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("Ticket_%s.pdf", safeFilenamePart(t.BookingID))
	return buf.Bytes(), filename, nil
}

func safe(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}

func safeFilenamePart(s string) string {
	replacer := strings.NewReplacer(" ", "_", "/", "-", "\\", "-", "\"", "", "'", "")
	out := replacer.Replace(strings.TrimSpace(s))
	if out == "" {
		return "ticket"
	}
	return out
}
