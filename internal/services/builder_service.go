package services

import (
	"sync"

	"github.com/hiraniavnish-droid/TTE-Final-sub000/internal/catalog"
	"github.com/hiraniavnish-droid/TTE-Final-sub000/internal/domain"
	"github.com/hiraniavnish-droid/TTE-Final-sub000/internal/itinerary"
	"github.com/hiraniavnish-droid/TTE-Final-sub000/internal/utils"

	"github.com/google/uuid"
)

// DraftView is a custom trip in progress.
type DraftView struct {
	ID      string               `json:"id"`
	Pending itinerary.DraftDay   `json:"pending"`
	Days    []itinerary.DraftDay `json:"days"`
}

// BuilderService holds custom trip drafts until they are finished into a session.
type BuilderService struct {
	Catalog  CatalogReader
	Sessions *SessionService

	mu     sync.Mutex
	drafts map[string]*itinerary.Assembler
}

func NewBuilderService(cat CatalogReader, sessions *SessionService) *BuilderService {
	return &BuilderService{Catalog: cat, Sessions: sessions, drafts: map[string]*itinerary.Assembler{}}
}

func (b *BuilderService) catalog() *catalog.Catalog {
	if b.Catalog == nil || b.Catalog.Current() == nil {
		return catalog.Empty()
	}
	return b.Catalog.Current()
}

func draftView(id string, a *itinerary.Assembler) DraftView {
	return DraftView{ID: id, Pending: a.Pending(), Days: a.Days()}
}

func (b *BuilderService) Create(requestID string) DraftView {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.drafts == nil {
		b.drafts = map[string]*itinerary.Assembler{}
	}
	id := uuid.NewString()
	a := itinerary.NewAssembler()
	b.drafts[id] = a
	utils.LogEventf(requestID, "builder", "create", "draft=%s", id)
	return draftView(id, a)
}

func (b *BuilderService) Get(id string) (DraftView, error) {
	return b.edit(id, func(*itinerary.Assembler, *catalog.Catalog) error { return nil })
}

func (b *BuilderService) edit(id string, fn func(a *itinerary.Assembler, cat *catalog.Catalog) error) (DraftView, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	a, ok := b.drafts[id]
	if !ok {
		return DraftView{}, domain.Missing("draft", id)
	}
	if err := fn(a, b.catalog()); err != nil {
		return DraftView{}, err
	}
	return draftView(id, a), nil
}

// SelectCity rejects cities the catalog knows nothing about.
func (b *BuilderService) SelectCity(id, city string) (DraftView, error) {
	return b.edit(id, func(a *itinerary.Assembler, cat *catalog.Catalog) error {
		city = utils.NormalizeSpace(city)
		if len(cat.HotelsIn(city)) == 0 && len(cat.SightseeingIn(city)) == 0 {
			return domain.Missing("city", city)
		}
		a.SelectCity(city)
		return nil
	})
}

func (b *BuilderService) SelectHotel(id, hotelName, roomType string) (DraftView, error) {
	return b.edit(id, func(a *itinerary.Assembler, cat *catalog.Catalog) error {
		city := a.Pending().City
		if city == "" {
			return domain.Invalid("city", "select a city before choosing a hotel")
		}
		h, ok := cat.Hotel(city, hotelName)
		if !ok {
			return domain.Missing("hotel", city+"/"+hotelName)
		}
		return a.SelectHotel(h, roomType)
	})
}

func (b *BuilderService) ClearHotel(id string) (DraftView, error) {
	return b.edit(id, func(a *itinerary.Assembler, _ *catalog.Catalog) error {
		a.ClearHotel()
		return nil
	})
}

func (b *BuilderService) ToggleSightseeing(id, name string) (DraftView, error) {
	return b.edit(id, func(a *itinerary.Assembler, _ *catalog.Catalog) error {
		if utils.NormalizeSpace(name) == "" {
			return domain.Invalid("sightseeing", "name is required")
		}
		a.ToggleSightseeing(name)
		return nil
	})
}

func (b *BuilderService) AppendDay(id string) (DraftView, error) {
	return b.edit(id, func(a *itinerary.Assembler, _ *catalog.Catalog) error {
		_, err := a.AppendDay()
		return err
	})
}

func (b *BuilderService) DuplicateDay(id string, i int) (DraftView, error) {
	return b.edit(id, func(a *itinerary.Assembler, _ *catalog.Catalog) error {
		_, err := a.DuplicateDay(i)
		return err
	})
}

func (b *BuilderService) RemoveDay(id string, i int) (DraftView, error) {
	return b.edit(id, func(a *itinerary.Assembler, _ *catalog.Catalog) error {
		return a.RemoveDay(i)
	})
}

// Finish turns the draft into a session and discards the draft.
func (b *BuilderService) Finish(requestID, id, name, tier string, pax int) (SessionView, error) {
	if b.Sessions == nil {
		return SessionView{}, domain.InternalError{Msg: "session service not configured"}
	}
	if err := checkPax(pax); err != nil {
		return SessionView{}, err
	}
	if _, err := parseTier(tier); err != nil {
		return SessionView{}, err
	}

	b.mu.Lock()
	a, ok := b.drafts[id]
	if !ok {
		b.mu.Unlock()
		return SessionView{}, domain.Missing("draft", id)
	}
	pkg, store, err := a.Finish(name, pax)
	if err == nil {
		delete(b.drafts, id)
	}
	b.mu.Unlock()
	if err != nil {
		return SessionView{}, err
	}

	utils.LogEventf(requestID, "builder", "finish", "draft=%s package=%s days=%d", id, pkg.ID, pkg.Days)
	return b.Sessions.OpenCustom(requestID, pkg, store, tier)
}
