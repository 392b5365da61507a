package services

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/hiraniavnish-droid/TTE-Final-sub000/internal/itinerary"
	"github.com/hiraniavnish-droid/TTE-Final-sub000/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// Inclusions and Exclusions are the fixed policy lists printed on every export.
var (
	Inclusions = []string{
		"Accommodation on twin/quad sharing basis as per the itinerary",
		"Meals as per the meal plan mentioned for each hotel",
		"All transfers and sightseeing by the vehicle(s) listed",
		"Driver allowance, fuel, tolls and parking",
	}
	Exclusions = []string{
		"Airfare or train tickets",
		"Monument entry fees, camera fees and guide charges",
		"Personal expenses such as laundry, telephone and tips",
		"Anything not mentioned under inclusions",
	}
)

// DocsService renders the printable itinerary.
type DocsService struct {
	RequestID string
	Now       func() time.Time
}

func (s DocsService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// GenerateItineraryPDF renders the export from the same resolved days and pricing the
// editor shows.
func (s DocsService) GenerateItineraryPDF(in QuoteInput) ([]byte, string, error) {
	utils.LogEventf(s.RequestID, "docs", "generate_itinerary", "package=%s days=%d", in.Package.ID, len(in.Days))
	return buildItineraryPDF(in, s.now())
}

func buildItineraryPDF(in QuoteInput, generatedAt time.Time) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	title := safe(in.Package.Name, "Custom Trip")

	pdf.SetTitle(tr(title), false)
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, tr(title))
	pdf.Ln(10)
	pdf.SetFont("Helvetica", "", 9)
	pdf.Cell(0, 5, "Prepared on "+generatedAt.Format("02 Jan 2006 15:04"))
	pdf.Ln(9)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Trip Summary")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	summary := []string{
		fmt.Sprintf("Guest      : %s", in.guest()),
		fmt.Sprintf("Pax        : %d", in.Pax),
		fmt.Sprintf("Duration   : %d Nights / %d Days", in.nights(), in.Package.Days),
		fmt.Sprintf("Dates      : %s", in.dateRange()),
		fmt.Sprintf("Vehicle    : %s", in.vehicleSummary()),
	}
	for _, line := range summary {
		pdf.Cell(0, 6, tr(line))
		pdf.Ln(6)
	}
	pdf.Ln(4)

	for i, d := range in.Days {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 7, tr(fmt.Sprintf("Day %d: %s (%s)", i+1, d.City, in.dayDate(i))))
		pdf.Ln(7)

		pdf.SetFont("Helvetica", "", 10)
		pdf.Cell(0, 6, tr("Stay      : "+in.stayLine(d)))
		pdf.Ln(6)
		pdf.Cell(0, 6, tr("Meal Plan : "+d.MealPlan(itinerary.MealsNone)))
		pdf.Ln(6)
		if names := d.SightseeingNames(); len(names) > 0 {
			pdf.MultiCell(0, 6, tr("Visits    : "+strings.Join(names, ", ")), "", "", false)
		}
		pdf.Ln(3)
	}

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Cost")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, "Total Cost : "+pdfRupees(in.Pricing.FinalTotal))
	pdf.Ln(6)
	if in.Pricing.PerPerson > 0 {
		pdf.Cell(0, 6, "Per Person : "+pdfRupees(in.Pricing.PerPerson))
		pdf.Ln(6)
	}
	pdf.Ln(4)

	writeList(pdf, tr, "Inclusions", Inclusions)
	writeList(pdf, tr, "Exclusions", Exclusions)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("ITINERARY_%s_%s.pdf", safeFilenamePart(in.Package.ID), safeFilenamePart(in.GuestName))
	return buf.Bytes(), filename, nil
}

func writeList(pdf *gofpdf.Fpdf, tr func(string) string, title string, items []string) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, title)
	pdf.Ln(7)
	pdf.SetFont("Helvetica", "", 10)
	for _, it := range items {
		pdf.MultiCell(0, 5, tr("- "+it), "", "", false)
	}
	pdf.Ln(3)
}

// pdfRupees swaps the rupee sign for "Rs." since the core PDF fonts lack the glyph.
func pdfRupees(v int64) string {
	return strings.Replace(utils.FormatINR(v), "₹", "Rs. ", 1)
}

func safe(v, fallback string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return fallback
	}
	return v
}

func safeFilenamePart(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "NA"
	}
	replacer := strings.NewReplacer(" ", "_", "/", "_", "\\", "_", ":", "_", "*", "_", "?", "_", "\"", "_", "<", "_", ">", "_", "|", "_")
	s = replacer.Replace(s)
	if len(s) > 40 {
		s = s[:40]
	}
	return s
}
