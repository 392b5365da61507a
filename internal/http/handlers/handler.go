package handlers

import (
	"github.com/hiraniavnish-droid/TTE-Final-sub000/internal/catalog"
	"github.com/hiraniavnish-droid/TTE-Final-sub000/internal/services"
)

// Handler carries the services every endpoint works against.
type Handler struct {
	Catalog  *catalog.Store
	Sessions *services.SessionService
	Builder  *services.BuilderService
	Tokens   services.ShareTokens
	SeatRate int64
}

func New(store *catalog.Store, tokens services.ShareTokens, seatRate int64) *Handler {
	sessions := services.NewSessionService(store)
	return &Handler{
		Catalog:  store,
		Sessions: sessions,
		Builder:  services.NewBuilderService(store, sessions),
		Tokens:   tokens,
		SeatRate: seatRate,
	}
}
