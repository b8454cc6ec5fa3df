package services

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"travelsuggester/internal/domain/models"
	"travelsuggester/internal/repositories"
	"travelsuggester/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// DocsService renders printable trip itineraries.
type DocsService struct {
	Trips repositories.TripRepo
	Now   func() time.Time
}

// TripItinerary returns the itinerary PDF and a download filename for the
// trip with the given number.
func (s DocsService) TripItinerary(ctx context.Context, tripNumber string) ([]byte, string, error) {
	trip, err := TripService{Trips: s.Trips}.GetByNumber(ctx, tripNumber)
	if err != nil {
		return nil, "", err
	}
	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	utils.LogCtx(ctx, "docs", "generate_itinerary", "trip_number="+trip.TripNumber)
	return buildItineraryPDF(trip, now())
}

func buildItineraryPDF(t models.Trip, printedAt time.Time) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Trip Itinerary", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "TRIP ITINERARY")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Trip Number : %s", safe(t.TripNumber, "-")),
		fmt.Sprintf("Route       : %s -> %s", safe(t.Origin, "-"), safe(t.Destination, "-")),
		fmt.Sprintf("Departure   : %s", safe(t.DepartureTime, "-")),
		fmt.Sprintf("Mode        : %s", safe(t.Mode, "-")),
		fmt.Sprintf("Printed     : %s UTC", utils.FormatDateTime(printedAt)),
	}
	for _, s := range lines {
		pdf.Cell(0, 7, pdfText(s))
		pdf.Ln(7)
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Plan")
	pdf.Ln(8)
	pdf.SetFont("Courier", "", 10)
	pdf.MultiCell(0, 5, pdfText(safe(t.TravelPlan, "-")), "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("ITINERARY_%s.pdf", utils.SafeFilenamePart(t.TripNumber))
	return buf.Bytes(), filename, nil
}

// The core PDF fonts are cp1252; the rupee sign has no glyph there.
var pdfReplacer = strings.NewReplacer("₹", "Rs.", "→", "->")

func pdfText(s string) string {
	return pdfReplacer.Replace(s)
}

func safe(v, fallback string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return fallback
	}
	return v
}
