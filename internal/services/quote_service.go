package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/hiraniavnish-droid/TTE-Final-sub000/internal/domain/models"
	"github.com/hiraniavnish-droid/TTE-Final-sub000/internal/itinerary"
	"github.com/hiraniavnish-droid/TTE-Final-sub000/internal/utils"
)

// QuoteInput is everything the text quotation and the PDF export render from. Both
// consumers read the same resolved days and pricing, never the raw overrides.
type QuoteInput struct {
	GuestName string
	Pax       int
	Package   models.Package
	Days      []itinerary.ResolvedDay
	Pricing   itinerary.PricingResult
	StartDate time.Time
	Fleet     []models.FleetItem
}

func (in QuoteInput) nights() int {
	if in.Package.Days <= 1 {
		return 0
	}
	return in.Package.Days - 1
}

func (in QuoteInput) dateRange() string {
	if in.StartDate.IsZero() {
		return "To be confirmed"
	}
	end := utils.TripDay(in.StartDate, in.Package.Days-1)
	return utils.DisplayDate(in.StartDate) + " - " + utils.DisplayDate(end)
}

func (in QuoteInput) dayDate(i int) string {
	if in.StartDate.IsZero() {
		return "TBD"
	}
	return utils.DisplayDate(utils.TripDay(in.StartDate, i))
}

func (in QuoteInput) vehicleSummary() string {
	if len(in.Fleet) == 0 {
		return "Not selected"
	}
	return itinerary.FleetSummary(in.Fleet)
}

func (in QuoteInput) guest() string {
	return utils.FirstNonEmpty(in.GuestName, "Guest")
}

func (in QuoteInput) stayLine(d itinerary.ResolvedDay) string {
	if d.Hotel == nil {
		return "No accommodation"
	}
	if d.RoomType == nil {
		return d.Hotel.Name
	}
	rooms := itinerary.RoomsNeeded(in.Pax, d.RoomType.Capacity)
	return fmt.Sprintf("%s - %s x%d", d.Hotel.Name, d.RoomType.Name, rooms)
}

// QuoteService renders the plain-text quotation. Section labels and field order are
// relied on by people who copy or diff the text, so keep them stable.
type QuoteService struct {
	RequestID string
}

func (s QuoteService) Text(in QuoteInput) string {
	var b strings.Builder

	fmt.Fprintf(&b, "*%s - Trip Quotation*\n\n", utils.FirstNonEmpty(in.Package.Name, "Custom Trip"))

	b.WriteString("*Trip Summary*\n")
	fmt.Fprintf(&b, "Guest: %s\n", in.guest())
	fmt.Fprintf(&b, "Pax: %d\n", in.Pax)
	fmt.Fprintf(&b, "Duration: %d Nights / %d Days\n", in.nights(), in.Package.Days)
	fmt.Fprintf(&b, "Dates: %s\n", in.dateRange())
	fmt.Fprintf(&b, "Vehicle: %s\n", in.vehicleSummary())

	for i, d := range in.Days {
		fmt.Fprintf(&b, "\n*Day %d: %s (%s)*\n", i+1, d.City, in.dayDate(i))
		fmt.Fprintf(&b, "Stay: %s\n", in.stayLine(d))
		fmt.Fprintf(&b, "Meal Plan: %s\n", d.MealPlan(itinerary.MealsPlanNotSpecified))
		if names := d.SightseeingNames(); len(names) > 0 {
			fmt.Fprintf(&b, "Visits: %s\n", strings.Join(names, ", "))
		}
	}

	b.WriteString("\n")
	if in.Pricing.PerPerson > 0 {
		fmt.Fprintf(&b, "*Total Cost: %s (%s per person)*\n",
			utils.FormatINR(in.Pricing.FinalTotal), utils.FormatINR(in.Pricing.PerPerson))
	} else {
		fmt.Fprintf(&b, "*Total Cost: %s*\n", utils.FormatINR(in.Pricing.FinalTotal))
	}

	utils.LogEventf(s.RequestID, "quote", "render_text", "package=%s days=%d", in.Package.ID, len(in.Days))
	return b.String()
}
