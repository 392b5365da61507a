package itinerary

import (
	"sort"
	"strconv"
	"strings"

	"github.com/hiraniavnish-droid/TTE-Final-sub000/internal/domain"
	"github.com/hiraniavnish-droid/TTE-Final-sub000/internal/domain/models"

	"github.com/google/uuid"
)

// HotelOverride pins a hotel and room type for one day. Both are deep copies taken at
// selection time, so a later catalog refresh does not reprice them.
type HotelOverride struct {
	Hotel    models.Hotel    `json:"hotel"`
	RoomType models.RoomType `json:"roomType"`
}

// OverrideStore is the per-session edit state: day-indexed hotel and sightseeing
// overrides, the fleet and its manual latch, and the passenger count that drives
// auto-sizing. It is not safe for concurrent use.
//
// An explicit store (custom trips) answers every day itself: days without a hotel
// override have no accommodation instead of a catalog default.
type OverrideStore struct {
	days        int
	pax         int
	hotels      map[int]HotelOverride
	sightseeing map[int][]string
	fleet       []models.FleetItem
	mode        FleetMode
	explicit    bool
}

// NewOverrideStore starts a session store in auto fleet mode.
func NewOverrideStore(days, pax int) *OverrideStore {
	return &OverrideStore{
		days:        days,
		pax:         pax,
		hotels:      map[int]HotelOverride{},
		sightseeing: map[int][]string{},
		fleet:       AutoFleet(pax),
		mode:        FleetAuto,
	}
}

func (s *OverrideStore) Days() int       { return s.days }
func (s *OverrideStore) Pax() int        { return s.pax }
func (s *OverrideStore) Mode() FleetMode { return s.mode }
func (s *OverrideStore) Explicit() bool  { return s.explicit }

func (s *OverrideStore) checkDay(day int) error {
	if day < 0 || day >= s.days {
		return domain.Invalid("day", "day %d outside trip of %d days", day, s.days)
	}
	return nil
}

// SetHotel pins hotel+room for a day. An empty roomName picks the hotel's first room
// type; a name that is not one of the hotel's room types is rejected.
func (s *OverrideStore) SetHotel(day int, hotel models.Hotel, roomName string) error {
	if err := s.checkDay(day); err != nil {
		return err
	}
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
	s.hotels[day] = HotelOverride{Hotel: hotel.Clone(), RoomType: room}
	return nil
}

// ClearHotel drops the hotel override. The day falls back to the tier default unless
// the store is explicit.
func (s *OverrideStore) ClearHotel(day int) {
	delete(s.hotels, day)
}

// Hotel returns a copy of the day's hotel override.
func (s *OverrideStore) Hotel(day int) (HotelOverride, bool) {
	o, ok := s.hotels[day]
	if !ok {
		return HotelOverride{}, false
	}
	o.Hotel = o.Hotel.Clone()
	return o, true
}

// SetSightseeing replaces the day's list. An empty (or nil) list is an explicit
// "nothing selected" and is kept as a present key.
func (s *OverrideStore) SetSightseeing(day int, names []string) error {
	if err := s.checkDay(day); err != nil {
		return err
	}
	out := make([]string, 0, len(names))
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n == "" || contains(out, n) {
			continue
		}
		out = append(out, n)
	}
	s.sightseeing[day] = out
	return nil
}

// ToggleSightseeing flips one place on or off. When the day has no override yet the
// toggle starts from defaults (normally the catalog list for the city).
func (s *OverrideStore) ToggleSightseeing(day int, name string, defaults []string) error {
	if err := s.checkDay(day); err != nil {
		return err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Invalid("sightseeing", "name is required")
	}
	cur, ok := s.sightseeing[day]
	if !ok {
		cur = append([]string(nil), defaults...)
	}
	next := make([]string, 0, len(cur)+1)
	removed := false
	for _, n := range cur {
		if n == name {
			removed = true
			continue
		}
		next = append(next, n)
	}
	if !removed {
		next = append(next, name)
	}
	s.sightseeing[day] = next
	return nil
}

// ClearSightseeing removes the key so the day shows the full catalog list again.
func (s *OverrideStore) ClearSightseeing(day int) {
	delete(s.sightseeing, day)
}

// Sightseeing returns a copy of the day's override and whether the key is present.
func (s *OverrideStore) Sightseeing(day int) ([]string, bool) {
	names, ok := s.sightseeing[day]
	if !ok {
		return nil, false
	}
	return append([]string{}, names...), true
}

// OverriddenDays lists day indexes carrying any override, ascending.
func (s *OverrideStore) OverriddenDays() []int {
	seen := map[int]bool{}
	for d := range s.hotels {
		seen[d] = true
	}
	for d := range s.sightseeing {
		seen[d] = true
	}
	out := make([]int, 0, len(seen))
	for d := range seen {
		out = append(out, d)
	}
	sort.Ints(out)
	return out
}

// ReplaceDays swaps every day override at once and marks the store explicit. Nothing
// changes when any entry is out of range or carries a room the hotel does not offer.
// Overrides are kept exactly as given, room included.
func (s *OverrideStore) ReplaceDays(hotels map[int]HotelOverride, sightseeing map[int][]string) error {
	next := &OverrideStore{days: s.days, hotels: map[int]HotelOverride{}, sightseeing: map[int][]string{}}
	for day, o := range hotels {
		if err := next.checkDay(day); err != nil {
			return err
		}
		if !offersRoom(o.Hotel, o.RoomType) {
			return domain.Invalid("roomType", "%s is not offered by %s", o.RoomType.Name, o.Hotel.Name)
		}
		next.hotels[day] = HotelOverride{Hotel: o.Hotel.Clone(), RoomType: o.RoomType}
	}
	for day, names := range sightseeing {
		if err := next.SetSightseeing(day, names); err != nil {
			return err
		}
	}
	s.hotels = next.hotels
	s.sightseeing = next.sightseeing
	s.explicit = true
	return nil
}

func offersRoom(h models.Hotel, room models.RoomType) bool {
	for _, rt := range h.RoomTypes {
		if rt == room {
			return true
		}
	}
	return false
}

// ResetDays discards every day override and resizes the day range, as on a package
// swap. The fleet and its latch survive; catalog defaults apply again.
func (s *OverrideStore) ResetDays(days int) {
	s.days = days
	s.explicit = false
	s.hotels = map[int]HotelOverride{}
	s.sightseeing = map[int][]string{}
}

// SetPax records the passenger count and re-sizes the fleet while still in auto mode.
func (s *OverrideStore) SetPax(pax int) {
	s.pax = pax
	if s.mode == FleetAuto {
		s.fleet = AutoFleet(pax)
	}
}

// Fleet returns a copy of the current fleet.
func (s *OverrideStore) Fleet() []models.FleetItem {
	return append([]models.FleetItem{}, s.fleet...)
}

func (s *OverrideStore) latchManual() {
	s.mode = FleetManual
}

// AddVehicle appends a fleet entry and latches the fleet to manual.
func (s *OverrideStore) AddVehicle(vehicle string, count int) (models.FleetItem, error) {
	vehicle = strings.TrimSpace(vehicle)
	if vehicle == "" {
		return models.FleetItem{}, domain.Invalid("vehicle", "name is required")
	}
	if count < 1 {
		return models.FleetItem{}, domain.Invalid("count", "must be at least 1, got %d", count)
	}
	item := models.FleetItem{ID: uuid.NewString(), Vehicle: vehicle, Count: count}
	s.fleet = append(s.fleet, item)
	s.latchManual()
	return item, nil
}

// RemoveVehicle deletes a fleet entry by id and latches the fleet to manual.
func (s *OverrideStore) RemoveVehicle(id string) error {
	idx := s.fleetIndex(id)
	if idx < 0 {
		return domain.Missing("fleet item", id)
	}
	s.fleet = append(s.fleet[:idx:idx], s.fleet[idx+1:]...)
	s.latchManual()
	return nil
}

// UpdateVehicle edits a fleet entry. An empty vehicle keeps the current one.
func (s *OverrideStore) UpdateVehicle(id, vehicle string, count int) (models.FleetItem, error) {
	idx := s.fleetIndex(id)
	if idx < 0 {
		return models.FleetItem{}, domain.Missing("fleet item", id)
	}
	if count < 1 {
		return models.FleetItem{}, domain.Invalid("count", "must be at least 1, got %d", count)
	}
	item := s.fleet[idx]
	if v := strings.TrimSpace(vehicle); v != "" {
		item.Vehicle = v
	}
	item.Count = count
	s.fleet[idx] = item
	s.latchManual()
	return item, nil
}

// ReplaceFleet swaps the whole fleet list; counts below 1 are rejected.
func (s *OverrideStore) ReplaceFleet(items []models.FleetItem) error {
	next := make([]models.FleetItem, 0, len(items))
	for i, it := range items {
		if strings.TrimSpace(it.Vehicle) == "" {
			return domain.Invalid("fleet["+strconv.Itoa(i)+"].vehicle", "name is required")
		}
		if it.Count < 1 {
			return domain.Invalid("fleet["+strconv.Itoa(i)+"].count", "must be at least 1, got %d", it.Count)
		}
		if it.ID == "" {
			it.ID = uuid.NewString()
		}
		next = append(next, it)
	}
	s.fleet = next
	s.latchManual()
	return nil
}

func (s *OverrideStore) fleetIndex(id string) int {
	for i, it := range s.fleet {
		if it.ID == id {
			return i
		}
	}
	return -1
}

// Clone returns an independent copy of the store.
func (s *OverrideStore) Clone() *OverrideStore {
	out := &OverrideStore{
		days:        s.days,
		pax:         s.pax,
		hotels:      make(map[int]HotelOverride, len(s.hotels)),
		sightseeing: make(map[int][]string, len(s.sightseeing)),
		fleet:       s.Fleet(),
		mode:        s.mode,
		explicit:    s.explicit,
	}
	for d, o := range s.hotels {
		o.Hotel = o.Hotel.Clone()
		out.hotels[d] = o
	}
	for d, names := range s.sightseeing {
		out.sightseeing[d] = append([]string{}, names...)
	}
	return out
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
