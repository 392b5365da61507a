package itinerary

import (
	"strings"

	"github.com/hiraniavnish-droid/TTE-Final-sub000/internal/domain"
	"github.com/hiraniavnish-droid/TTE-Final-sub000/internal/domain/models"

	"github.com/google/uuid"
)

// DraftDay is one day of a from-scratch trip.
type DraftDay struct {
	ID          string           `json:"id"`
	City        string           `json:"city"`
	Hotel       *models.Hotel    `json:"hotel,omitempty"`
	RoomType    *models.RoomType `json:"roomType,omitempty"`
	Sightseeing []string         `json:"sightseeing"`
}

func (d DraftDay) clone() DraftDay {
	out := d
	if d.Hotel != nil {
		h := d.Hotel.Clone()
		out.Hotel = &h
	}
	if d.RoomType != nil {
		rt := *d.RoomType
		out.RoomType = &rt
	}
	out.Sightseeing = append([]string{}, d.Sightseeing...)
	return out
}

// Assembler builds a custom trip day by day. The pending selection is captured by
// AppendDay and then cleared for the next day.
type Assembler struct {
	days    []DraftDay
	pending DraftDay
}

func NewAssembler() *Assembler {
	return &Assembler{pending: DraftDay{Sightseeing: []string{}}}
}

// SelectCity sets the pending city. Changing city drops a hotel and sightseeing picked
// for the previous one.
func (a *Assembler) SelectCity(city string) {
	city = strings.TrimSpace(city)
	if city != a.pending.City {
		a.pending.Hotel = nil
		a.pending.RoomType = nil
		a.pending.Sightseeing = []string{}
	}
	a.pending.City = city
}

// SelectHotel snapshots hotel+room for the pending day. Empty roomName takes the first
// room type.
func (a *Assembler) SelectHotel(hotel models.Hotel, roomName string) error {
	if len(hotel.RoomTypes) == 0 {
		return domain.Invalid("hotel", "%s has no room types", hotel.Name)
	}
	room := hotel.RoomTypes[0]
	if strings.TrimSpace(roomName) != "" {
		rt, ok := hotel.RoomType(roomName)
		if !ok {
			return domain.Invalid("roomType", "%s is not offered by %s", roomName, hotel.Name)
		}
		room = rt
	}
	h := hotel.Clone()
	a.pending.Hotel = &h
	a.pending.RoomType = &room
	return nil
}

// ClearHotel removes the pending hotel choice.
func (a *Assembler) ClearHotel() {
	a.pending.Hotel = nil
	a.pending.RoomType = nil
}

// ToggleSightseeing adds or removes a place from the pending day.
func (a *Assembler) ToggleSightseeing(name string) {
	name = strings.TrimSpace(name)
	if name == "" {
		return
	}
	next := make([]string, 0, len(a.pending.Sightseeing)+1)
	removed := false
	for _, n := range a.pending.Sightseeing {
		if n == name {
			removed = true
			continue
		}
		next = append(next, n)
	}
	if !removed {
		next = append(next, name)
	}
	a.pending.Sightseeing = next
}

// Pending returns a copy of the in-progress selection.
func (a *Assembler) Pending() DraftDay {
	return a.pending.clone()
}

// AppendDay captures the pending selection as a new day and resets it.
func (a *Assembler) AppendDay() (DraftDay, error) {
	if a.pending.City == "" {
		return DraftDay{}, domain.Invalid("city", "select a city before adding a day")
	}
	day := a.pending.clone()
	day.ID = uuid.NewString()
	a.days = append(a.days, day)
	a.pending = DraftDay{Sightseeing: []string{}}
	return day.clone(), nil
}

// DuplicateDay inserts a copy of day i, with a fresh id, right after it.
func (a *Assembler) DuplicateDay(i int) (DraftDay, error) {
	if err := a.checkIndex(i); err != nil {
		return DraftDay{}, err
	}
	dup := a.days[i].clone()
	dup.ID = uuid.NewString()

	next := make([]DraftDay, 0, len(a.days)+1)
	next = append(next, a.days[:i+1]...)
	next = append(next, dup)
	next = append(next, a.days[i+1:]...)
	a.days = next
	return dup.clone(), nil
}

// RemoveDay deletes day i.
func (a *Assembler) RemoveDay(i int) error {
	if err := a.checkIndex(i); err != nil {
		return err
	}
	a.days = append(a.days[:i:i], a.days[i+1:]...)
	return nil
}

func (a *Assembler) checkIndex(i int) error {
	if i < 0 || i >= len(a.days) {
		return domain.Invalid("day", "index %d outside %d draft days", i, len(a.days))
	}
	return nil
}

// Days returns copies of the draft days in order.
func (a *Assembler) Days() []DraftDay {
	out := make([]DraftDay, 0, len(a.days))
	for _, d := range a.days {
		out = append(out, d.clone())
	}
	return out
}

// Finish turns the drafts into a package and a fully populated store: a hotel override
// for every day that chose one and a sightseeing override for every day, even when
// empty, so nothing falls back to tier defaults.
func (a *Assembler) Finish(name string, pax int) (models.Package, *OverrideStore, error) {
	if len(a.days) == 0 {
		return models.Package{}, nil, domain.Invalid("days", "a custom trip needs at least one day")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		name = "Custom Trip"
	}

	route := make([]string, 0, len(a.days))
	for _, d := range a.days {
		route = append(route, d.City)
	}
	pkg := models.Package{
		ID:    "custom-" + uuid.NewString(),
		Name:  name,
		Days:  len(a.days),
		Route: route,
	}

	hotels := map[int]HotelOverride{}
	sightseeing := make(map[int][]string, len(a.days))
	for i, d := range a.days {
		if d.Hotel != nil && d.RoomType != nil {
			hotels[i] = HotelOverride{Hotel: *d.Hotel, RoomType: *d.RoomType}
		}
		sightseeing[i] = d.Sightseeing
	}

	store := NewOverrideStore(pkg.Days, pax)
	if err := store.ReplaceDays(hotels, sightseeing); err != nil {
		return models.Package{}, nil, err
	}
	return pkg, store, nil
}
