package itinerary

import (
	"math"
	"strings"

	"github.com/hiraniavnish-droid/TTE-Final-sub000/internal/catalog"
	"github.com/hiraniavnish-droid/TTE-Final-sub000/internal/domain/models"
)

type MarkupKind string

const (
	MarkupPercent MarkupKind = "percent"
	MarkupFixed   MarkupKind = "fixed"
)

// ParseMarkupKind accepts "percent"/"%" and "fixed"/"flat".
func ParseMarkupKind(s string) (MarkupKind, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "percent", "%", "pct":
		return MarkupPercent, true
	case "fixed", "flat":
		return MarkupFixed, true
	default:
		return "", false
	}
}

// MarkupRule is accepted as-is; range checks belong to the caller.
type MarkupRule struct {
	Kind  MarkupKind `json:"kind"`
	Value float64    `json:"value"`
}

// DayCost is the accommodation line for one night.
type DayCost struct {
	Day      int    `json:"day"`
	City     string `json:"city"`
	Hotel    string `json:"hotel,omitempty"`
	RoomType string `json:"roomType,omitempty"`
	Rooms    int    `json:"rooms"`
	Rate     int64  `json:"rate"`
	Cost     int64  `json:"cost"`
}

// TransportLine is the trip cost of one fleet entry.
type TransportLine struct {
	Vehicle string `json:"vehicle"`
	Count   int    `json:"count"`
	Rate    int64  `json:"rate"`
	Days    int    `json:"days"`
	Cost    int64  `json:"cost"`
}

// Breakdown is the net cost of a package before markup.
type Breakdown struct {
	TransportCost int64           `json:"transportCost"`
	HotelCost     int64           `json:"hotelCost"`
	NetTotal      int64           `json:"netTotal"`
	Transport     []TransportLine `json:"transport"`
	Nights        []DayCost       `json:"nights"`
}

// PricingResult is the full session pricing. Tax is carried through untouched.
type PricingResult struct {
	Breakdown
	Markup     MarkupRule `json:"markup"`
	FinalTotal int64      `json:"finalTotal"`
	PerPerson  int64      `json:"perPerson"`
	Pax        int        `json:"pax"`
	Tax        int64      `json:"tax"`
}

func roundMoney(x float64) int64 {
	return int64(math.Round(x))
}

// ComputePackagePrice is the authoritative session calculator. Vehicles are charged per
// unit per trip-day (pkg.Days); hotels once per route entry with rooms sized from the
// store's passenger count. Unknown vehicles and days without a room cost nothing.
func ComputePackagePrice(pkg models.Package, tier models.Tier, store *OverrideStore, fleet []models.FleetItem, cat *catalog.Catalog) Breakdown {
	pax := 0
	if store != nil {
		pax = store.Pax()
	}

	var out Breakdown
	for _, it := range fleet {
		line := TransportLine{Vehicle: it.Vehicle, Count: it.Count, Days: pkg.Days}
		if v, ok := cat.Vehicle(it.Vehicle); ok {
			line.Rate = v.Rate
			line.Cost = v.Rate * int64(it.Count) * int64(pkg.Days)
		}
		out.Transport = append(out.Transport, line)
		out.TransportCost += line.Cost
	}

	for _, day := range ResolveItinerary(pkg, tier, store, cat) {
		line := DayCost{Day: day.Day, City: day.City}
		if day.Hotel != nil {
			line.Hotel = day.Hotel.Name
		}
		if day.RoomType != nil {
			line.RoomType = day.RoomType.Name
			line.Rooms = RoomsNeeded(pax, day.RoomType.Capacity)
			line.Rate = day.RoomType.Rate
			line.Cost = line.Rate * int64(line.Rooms)
		}
		out.Nights = append(out.Nights, line)
		out.HotelCost += line.Cost
	}

	out.NetTotal = out.TransportCost + out.HotelCost
	return out
}

// ApplyMarkup adds a percentage or fixed markup to the net total. An unknown kind is
// treated as no markup.
func ApplyMarkup(net int64, rule MarkupRule) int64 {
	switch rule.Kind {
	case MarkupPercent:
		return roundMoney(float64(net) * (1 + rule.Value/100))
	case MarkupFixed:
		return roundMoney(float64(net) + rule.Value)
	default:
		return net
	}
}

// PerPerson is round(final/pax), or 0 when there are no passengers.
func PerPerson(final int64, pax int) int64 {
	if pax <= 0 {
		return 0
	}
	return roundMoney(float64(final) / float64(pax))
}

// Price runs the full session pricing over the store's own fleet.
func Price(pkg models.Package, tier models.Tier, store *OverrideStore, cat *catalog.Catalog, rule MarkupRule, tax int64) PricingResult {
	var fleet []models.FleetItem
	pax := 0
	if store != nil {
		fleet = store.Fleet()
		pax = store.Pax()
	}
	b := ComputePackagePrice(pkg, tier, store, fleet, cat)
	final := ApplyMarkup(b.NetTotal, rule)
	return PricingResult{
		Breakdown:  b,
		Markup:     rule,
		FinalTotal: final,
		PerPerson:  PerPerson(final, pax),
		Pax:        pax,
		Tax:        tax,
	}
}
