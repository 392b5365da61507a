package services

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/hiraniavnish-droid/TTE-Final-sub000/internal/catalog"
	"github.com/hiraniavnish-droid/TTE-Final-sub000/internal/domain"
	"github.com/hiraniavnish-droid/TTE-Final-sub000/internal/domain/models"
	"github.com/hiraniavnish-droid/TTE-Final-sub000/internal/itinerary"
	"github.com/hiraniavnish-droid/TTE-Final-sub000/internal/utils"

	"github.com/google/uuid"
)

// CatalogReader hands out the current catalog snapshot.
type CatalogReader interface {
	Current() *catalog.Catalog
}

// Session is one guest's editing state.
type Session struct {
	ID        string
	Package   models.Package
	Tier      models.Tier
	Markup    itinerary.MarkupRule
	Tax       int64
	GuestName string
	StartDate time.Time
	Custom    bool
	CreatedAt time.Time

	store *itinerary.OverrideStore
}

// SessionView is the recomputed state returned after every read or mutation.
type SessionView struct {
	ID             string                  `json:"id"`
	Package        models.Package          `json:"package"`
	Tier           models.Tier             `json:"tier"`
	Pax            int                     `json:"pax"`
	GuestName      string                  `json:"guestName"`
	StartDate      string                  `json:"startDate,omitempty"`
	Custom         bool                    `json:"custom"`
	FleetMode      itinerary.FleetMode     `json:"fleetMode"`
	Fleet          []models.FleetItem      `json:"fleet"`
	OverriddenDays []int                   `json:"overriddenDays"`
	Days           []itinerary.ResolvedDay `json:"days"`
	Pricing        itinerary.PricingResult `json:"pricing"`
}

// SessionService keeps editing sessions in memory. Engine calls stay single-threaded per
// session; the mutex only serialises concurrent HTTP requests.
type SessionService struct {
	Catalog CatalogReader
	Now     func() time.Time

	mu       sync.Mutex
	sessions map[string]*Session
}

func NewSessionService(cat CatalogReader) *SessionService {
	return &SessionService{Catalog: cat, sessions: map[string]*Session{}}
}

func (s *SessionService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *SessionService) catalog() *catalog.Catalog {
	if s.Catalog == nil {
		return catalog.Empty()
	}
	if c := s.Catalog.Current(); c != nil {
		return c
	}
	return catalog.Empty()
}

func parseTier(raw string) (models.Tier, error) {
	if strings.TrimSpace(raw) == "" {
		return models.TierBudget, nil
	}
	t, ok := models.ParseTier(raw)
	if !ok {
		return "", domain.Invalid("tier", "unknown tier %q", raw)
	}
	return t, nil
}

func checkPax(pax int) error {
	if pax < 0 {
		return domain.Invalid("pax", "must not be negative, got %d", pax)
	}
	return nil
}

// Open starts a session on a catalog package.
func (s *SessionService) Open(requestID, packageID, tier string, pax int) (SessionView, error) {
	t, err := parseTier(tier)
	if err != nil {
		return SessionView{}, err
	}
	if err := checkPax(pax); err != nil {
		return SessionView{}, err
	}
	cat := s.catalog()
	pkg, ok := cat.Package(packageID)
	if !ok {
		return SessionView{}, domain.Missing("package", packageID)
	}

	sess := &Session{
		ID:        uuid.NewString(),
		Package:   pkg.Clone(),
		Tier:      t,
		CreatedAt: s.now(),
		store:     itinerary.NewOverrideStore(pkg.Days, pax),
	}
	s.put(sess)
	utils.LogEventf(requestID, "session", "open", "session=%s package=%s pax=%d", sess.ID, pkg.ID, pax)
	return buildView(sess, cat), nil
}

// OpenCustom starts a session on an assembled package and its populated store.
func (s *SessionService) OpenCustom(requestID string, pkg models.Package, store *itinerary.OverrideStore, tier string) (SessionView, error) {
	if store == nil {
		return SessionView{}, domain.Invalid("store", "custom trip has no overrides")
	}
	t, err := parseTier(tier)
	if err != nil {
		return SessionView{}, err
	}
	sess := &Session{
		ID:        uuid.NewString(),
		Package:   pkg.Clone(),
		Tier:      t,
		Custom:    true,
		CreatedAt: s.now(),
		store:     store.Clone(),
	}
	s.put(sess)
	utils.LogEventf(requestID, "session", "open_custom", "session=%s days=%d", sess.ID, pkg.Days)
	return buildView(sess, s.catalog()), nil
}

func (s *SessionService) put(sess *Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sessions == nil {
		s.sessions = map[string]*Session{}
	}
	s.sessions[sess.ID] = sess
}

// Get recomputes the view against the current catalog.
func (s *SessionService) Get(id string) (SessionView, error) {
	return s.mutate("", id, "", func(*Session, *catalog.Catalog) error { return nil })
}

// Close forgets a session.
func (s *SessionService) Close(requestID, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[id]; !ok {
		return domain.Missing("session", id)
	}
	delete(s.sessions, id)
	utils.LogEventf(requestID, "session", "close", "session=%s", id)
	return nil
}

// Len reports how many sessions are open.
func (s *SessionService) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Orphaned lists open sessions whose catalog package is no longer in c. They keep
// pricing from the package they were opened with. Custom sessions never orphan.
func (s *SessionService) Orphaned(c *catalog.Catalog) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []string
	for id, sess := range s.sessions {
		if sess.Custom {
			continue
		}
		if _, ok := c.Package(sess.Package.ID); !ok {
			out = append(out, id)
		}
	}
	sort.Strings(out)
	return out
}

// Follow reads catalog replacements until ctx is done or updates closes, logging
// sessions left on a withdrawn package.
func (s *SessionService) Follow(ctx context.Context, updates <-chan *catalog.Catalog) {
	for {
		select {
		case <-ctx.Done():
			return
		case c, ok := <-updates:
			if !ok {
				return
			}
			ids := s.Orphaned(c)
			utils.LogEventf("", "session", "catalog_refresh", "packages=%d orphaned=%d %s",
				len(c.Packages), len(ids), strings.Join(ids, ","))
		}
	}
}

// mutate runs fn under the lock and returns the recomputed view. An empty action skips
// the log line.
func (s *SessionService) mutate(requestID, id, action string, fn func(sess *Session, cat *catalog.Catalog) error) (SessionView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return SessionView{}, domain.Missing("session", id)
	}
	cat := s.catalog()
	if err := fn(sess, cat); err != nil {
		return SessionView{}, err
	}
	if action != "" {
		utils.LogEventf(requestID, "session", action, "session=%s", id)
	}
	return buildView(sess, cat), nil
}

func buildView(sess *Session, cat *catalog.Catalog) SessionView {
	v := SessionView{
		ID:             sess.ID,
		Package:        sess.Package.Clone(),
		Tier:           sess.Tier,
		Pax:            sess.store.Pax(),
		GuestName:      sess.GuestName,
		Custom:         sess.Custom,
		FleetMode:      sess.store.Mode(),
		Fleet:          sess.store.Fleet(),
		OverriddenDays: sess.store.OverriddenDays(),
		Days:           itinerary.ResolveItinerary(sess.Package, sess.Tier, sess.store, cat),
		Pricing:        itinerary.Price(sess.Package, sess.Tier, sess.store, cat, sess.Markup, sess.Tax),
	}
	if !sess.StartDate.IsZero() {
		v.StartDate = utils.FormatDate(sess.StartDate)
	}
	return v
}

// SelectPackage swaps the package. Day overrides are dropped; the fleet and its latch
// are kept.
func (s *SessionService) SelectPackage(requestID, id, packageID string) (SessionView, error) {
	return s.mutate(requestID, id, "select_package", func(sess *Session, cat *catalog.Catalog) error {
		pkg, ok := cat.Package(packageID)
		if !ok {
			return domain.Missing("package", packageID)
		}
		sess.Package = pkg.Clone()
		sess.Custom = false
		sess.store.ResetDays(pkg.Days)
		return nil
	})
}

func (s *SessionService) SetTier(requestID, id, tier string) (SessionView, error) {
	return s.mutate(requestID, id, "set_tier", func(sess *Session, _ *catalog.Catalog) error {
		t, ok := models.ParseTier(tier)
		if !ok {
			return domain.Invalid("tier", "unknown tier %q", tier)
		}
		sess.Tier = t
		return nil
	})
}

// SetPax re-sizes the fleet only while it is still automatic.
func (s *SessionService) SetPax(requestID, id string, pax int) (SessionView, error) {
	return s.mutate(requestID, id, "set_pax", func(sess *Session, _ *catalog.Catalog) error {
		if err := checkPax(pax); err != nil {
			return err
		}
		sess.store.SetPax(pax)
		return nil
	})
}

func (s *SessionService) SetMarkup(requestID, id, kind string, value float64) (SessionView, error) {
	return s.mutate(requestID, id, "set_markup", func(sess *Session, _ *catalog.Catalog) error {
		k, ok := itinerary.ParseMarkupKind(kind)
		if !ok {
			return domain.Invalid("markup.kind", "unknown markup kind %q", kind)
		}
		sess.Markup = itinerary.MarkupRule{Kind: k, Value: value}
		return nil
	})
}

func (s *SessionService) SetTax(requestID, id string, tax int64) (SessionView, error) {
	return s.mutate(requestID, id, "set_tax", func(sess *Session, _ *catalog.Catalog) error {
		sess.Tax = tax
		return nil
	})
}

func (s *SessionService) SetGuest(requestID, id, name string) (SessionView, error) {
	return s.mutate(requestID, id, "set_guest", func(sess *Session, _ *catalog.Catalog) error {
		sess.GuestName = utils.NormalizeSpace(name)
		return nil
	})
}

// SetStartDate takes YYYY-MM-DD; an empty value clears the date.
func (s *SessionService) SetStartDate(requestID, id, date string) (SessionView, error) {
	return s.mutate(requestID, id, "set_start_date", func(sess *Session, _ *catalog.Catalog) error {
		if strings.TrimSpace(date) == "" {
			sess.StartDate = time.Time{}
			return nil
		}
		t, err := utils.ParseDate(date)
		if err != nil {
			return domain.ValidationError{Field: "startDate", Msg: "expected YYYY-MM-DD", Err: err}
		}
		sess.StartDate = t
		return nil
	})
}

func dayCity(sess *Session, day int) (string, error) {
	if day < 0 || day >= len(sess.Package.Route) {
		return "", domain.Invalid("day", "day %d outside trip of %d days", day, len(sess.Package.Route))
	}
	return sess.Package.Route[day], nil
}

// SetHotel pins a hotel from the day's city. An empty roomType picks the first room.
func (s *SessionService) SetHotel(requestID, id string, day int, hotelName, roomType string) (SessionView, error) {
	return s.mutate(requestID, id, "set_hotel", func(sess *Session, cat *catalog.Catalog) error {
		city, err := dayCity(sess, day)
		if err != nil {
			return err
		}
		h, ok := cat.Hotel(city, hotelName)
		if !ok {
			return domain.Missing("hotel", city+"/"+hotelName)
		}
		return sess.store.SetHotel(day, h, roomType)
	})
}

func (s *SessionService) ClearHotel(requestID, id string, day int) (SessionView, error) {
	return s.mutate(requestID, id, "clear_hotel", func(sess *Session, _ *catalog.Catalog) error {
		if _, err := dayCity(sess, day); err != nil {
			return err
		}
		sess.store.ClearHotel(day)
		return nil
	})
}

func (s *SessionService) SetSightseeing(requestID, id string, day int, names []string) (SessionView, error) {
	return s.mutate(requestID, id, "set_sightseeing", func(sess *Session, _ *catalog.Catalog) error {
		if _, err := dayCity(sess, day); err != nil {
			return err
		}
		return sess.store.SetSightseeing(day, names)
	})
}

// ToggleSightseeing starts from the city's catalog list when the day has no override.
func (s *SessionService) ToggleSightseeing(requestID, id string, day int, name string) (SessionView, error) {
	return s.mutate(requestID, id, "toggle_sightseeing", func(sess *Session, cat *catalog.Catalog) error {
		city, err := dayCity(sess, day)
		if err != nil {
			return err
		}
		var defaults []string
		for _, sg := range cat.SightseeingIn(city) {
			defaults = append(defaults, sg.Name)
		}
		return sess.store.ToggleSightseeing(day, name, defaults)
	})
}

func (s *SessionService) ClearSightseeing(requestID, id string, day int) (SessionView, error) {
	return s.mutate(requestID, id, "clear_sightseeing", func(sess *Session, _ *catalog.Catalog) error {
		if _, err := dayCity(sess, day); err != nil {
			return err
		}
		sess.store.ClearSightseeing(day)
		return nil
	})
}

func (s *SessionService) AddVehicle(requestID, id, vehicle string, count int) (SessionView, error) {
	return s.mutate(requestID, id, "add_vehicle", func(sess *Session, _ *catalog.Catalog) error {
		_, err := sess.store.AddVehicle(vehicle, count)
		return err
	})
}

func (s *SessionService) UpdateVehicle(requestID, id, itemID, vehicle string, count int) (SessionView, error) {
	return s.mutate(requestID, id, "update_vehicle", func(sess *Session, _ *catalog.Catalog) error {
		_, err := sess.store.UpdateVehicle(itemID, vehicle, count)
		return err
	})
}

func (s *SessionService) RemoveVehicle(requestID, id, itemID string) (SessionView, error) {
	return s.mutate(requestID, id, "remove_vehicle", func(sess *Session, _ *catalog.Catalog) error {
		return sess.store.RemoveVehicle(itemID)
	})
}

// ReplaceFleet swaps the whole fleet list and latches it to manual.
func (s *SessionService) ReplaceFleet(requestID, id string, items []models.FleetItem) (SessionView, error) {
	return s.mutate(requestID, id, "replace_fleet", func(sess *Session, _ *catalog.Catalog) error {
		return sess.store.ReplaceFleet(items)
	})
}

// QuoteInput snapshots what the quotation text and PDF need.
func (s *SessionService) QuoteInput(id string) (QuoteInput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return QuoteInput{}, domain.Missing("session", id)
	}
	v := buildView(sess, s.catalog())
	return QuoteInput{
		GuestName: sess.GuestName,
		Pax:       v.Pax,
		Package:   v.Package,
		Days:      v.Days,
		Pricing:   v.Pricing,
		StartDate: sess.StartDate,
		Fleet:     v.Fleet,
	}, nil
}
