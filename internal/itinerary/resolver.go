package itinerary

import (
	"strings"

	"github.com/hiraniavnish-droid/TTE-Final-sub000/internal/catalog"
	"github.com/hiraniavnish-droid/TTE-Final-sub000/internal/domain/models"
)

// Meal plan labels.
const (
	MealsAll              = "All Meals Included"
	MealsBreakfastDinner  = "Breakfast & Dinner Included"
	MealsBreakfast        = "Breakfast Included"
	MealsNone             = "No Meals"
	MealsPlanNotSpecified = "Plan Not Specified"
)

// StaySource tells which resolution layer supplied a day's accommodation.
type StaySource string

const (
	StayOverride    StaySource = "override"
	StayTierDefault StaySource = "tier"
	StayFirstInCity StaySource = "first"
	StayNone        StaySource = "none"
)

// ResolvedDay is the fully determined content of one itinerary day. Editor, quotation
// text and PDF export all render from this value.
type ResolvedDay struct {
	Day                   int                  `json:"day"`
	City                  string               `json:"city"`
	Hotel                 *models.Hotel        `json:"hotel,omitempty"`
	RoomType              *models.RoomType     `json:"roomType,omitempty"`
	StaySource            StaySource           `json:"staySource"`
	MealPlanLabel         string               `json:"mealPlan"`
	Sightseeing           []models.Sightseeing `json:"sightseeing"`
	SightseeingOverridden bool                 `json:"sightseeingOverridden"`
}

// HasStay reports whether the day has accommodation.
func (d ResolvedDay) HasStay() bool { return d.Hotel != nil }

// MealPlan returns the label, or missing when the day has no hotel. Call sites differ on
// the wording for a night without accommodation.
func (d ResolvedDay) MealPlan(missing string) string {
	if d.Hotel == nil {
		return missing
	}
	return d.MealPlanLabel
}

// SightseeingNames flattens the resolved places to their names.
func (d ResolvedDay) SightseeingNames() []string {
	out := make([]string, 0, len(d.Sightseeing))
	for _, s := range d.Sightseeing {
		out = append(out, s.Name)
	}
	return out
}

// MealPlanLabel maps a hotel meal-plan code to its display label. MAP is checked before
// AP since every MAP code also contains AP.
func MealPlanLabel(code string) string {
	c := strings.ToUpper(strings.TrimSpace(code))
	switch {
	case c == "":
		return MealsPlanNotSpecified
	case strings.Contains(c, "MAP"):
		return MealsBreakfastDinner
	case strings.Contains(c, "AP"):
		return MealsAll
	case strings.Contains(c, "CP"):
		return MealsBreakfast
	default:
		return strings.TrimSpace(code)
	}
}

type dayQuery struct {
	day     int
	city    string
	tier    models.Tier
	store   *OverrideStore
	catalog *catalog.Catalog
}

type stay struct {
	hotel  models.Hotel
	room   *models.RoomType
	source StaySource
}

// stayLookup is one layer of the accommodation chain.
type stayLookup func(q dayQuery) (stay, bool)

// stayChain is tried in order; the first layer that answers wins.
var stayChain = []stayLookup{
	stayFromOverride,
	stayFromTier,
	stayFromFirstInCity,
}

// explicitChain serves stores that carry every choice themselves.
var explicitChain = []stayLookup{
	stayFromOverride,
}

func (q dayQuery) chain() []stayLookup {
	if q.store != nil && q.store.Explicit() {
		return explicitChain
	}
	return stayChain
}

func stayFromOverride(q dayQuery) (stay, bool) {
	if q.store == nil {
		return stay{}, false
	}
	o, ok := q.store.Hotel(q.day)
	if !ok {
		return stay{}, false
	}
	room := o.RoomType
	return stay{hotel: o.Hotel, room: &room, source: StayOverride}, true
}

func stayFromTier(q dayQuery) (stay, bool) {
	h, ok := tierDefaultHotel(q.catalog, q.city, q.tier)
	if !ok {
		return stay{}, false
	}
	return stay{hotel: h, room: firstRoom(h), source: StayTierDefault}, true
}

func stayFromFirstInCity(q dayQuery) (stay, bool) {
	hotels := q.catalog.HotelsIn(q.city)
	if len(hotels) == 0 {
		return stay{}, false
	}
	h := hotels[0].Clone()
	return stay{hotel: h, room: firstRoom(h), source: StayFirstInCity}, true
}

// tierDefaultHotel returns the first hotel in the city whose tier matches.
func tierDefaultHotel(c *catalog.Catalog, city string, tier models.Tier) (models.Hotel, bool) {
	for _, h := range c.HotelsIn(city) {
		if strings.EqualFold(string(h.Tier), string(tier)) {
			return h.Clone(), true
		}
	}
	return models.Hotel{}, false
}

func firstRoom(h models.Hotel) *models.RoomType {
	if len(h.RoomTypes) == 0 {
		return nil
	}
	rt := h.RoomTypes[0]
	return &rt
}

// ResolveDay applies override > tier default > first available for the stay, derives
// the meal-plan label, and selects sightseeing for one day. Explicit stores stop after
// the override.
func ResolveDay(day int, city string, tier models.Tier, store *OverrideStore, cat *catalog.Catalog) ResolvedDay {
	q := dayQuery{day: day, city: city, tier: tier, store: store, catalog: cat}
	out := ResolvedDay{
		Day:           day,
		City:          city,
		StaySource:    StayNone,
		MealPlanLabel: MealsNone,
	}

	for _, lookup := range q.chain() {
		st, ok := lookup(q)
		if !ok {
			continue
		}
		h := st.hotel
		out.Hotel = &h
		out.RoomType = st.room
		out.StaySource = st.source
		out.MealPlanLabel = MealPlanLabel(h.MealPlan)
		break
	}

	out.Sightseeing, out.SightseeingOverridden = resolveSightseeing(q)
	return out
}

func resolveSightseeing(q dayQuery) ([]models.Sightseeing, bool) {
	all := q.catalog.SightseeingIn(q.city)
	if q.store != nil {
		if picked, ok := q.store.Sightseeing(q.day); ok {
			out := []models.Sightseeing{}
			for _, s := range all {
				if contains(picked, s.Name) {
					out = append(out, s)
				}
			}
			return out, true
		}
	}
	return append([]models.Sightseeing{}, all...), false
}

// ResolveItinerary resolves every day of the package route.
func ResolveItinerary(pkg models.Package, tier models.Tier, store *OverrideStore, cat *catalog.Catalog) []ResolvedDay {
	out := make([]ResolvedDay, 0, len(pkg.Route))
	for i, city := range pkg.Route {
		out = append(out, ResolveDay(i, city, tier, store, cat))
	}
	return out
}
