package handlers

import (
	"net/http"

	"github.com/hiraniavnish-droid/TTE-Final-sub000/internal/http/middleware"
	"github.com/hiraniavnish-droid/TTE-Final-sub000/internal/services"

	"github.com/gin-gonic/gin"
)

type cityRequest struct {
	City string `json:"city" binding:"required"`
}

type finishRequest struct {
	Name string `json:"name"`
	Tier string `json:"tier"`
	Pax  int    `json:"pax"`
}

func respondDraft(c *gin.Context, view services.DraftView, err error) {
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *Handler) CreateDraft(c *gin.Context) {
	c.JSON(http.StatusCreated, h.Builder.Create(middleware.GetRequestID(c)))
}

func (h *Handler) GetDraft(c *gin.Context) {
	view, err := h.Builder.Get(c.Param("id"))
	respondDraft(c, view, err)
}

func (h *Handler) SelectDraftCity(c *gin.Context) {
	var req cityRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	view, err := h.Builder.SelectCity(c.Param("id"), req.City)
	respondDraft(c, view, err)
}

func (h *Handler) SelectDraftHotel(c *gin.Context) {
	var req hotelRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	view, err := h.Builder.SelectHotel(c.Param("id"), req.Hotel, req.RoomType)
	respondDraft(c, view, err)
}

func (h *Handler) ClearDraftHotel(c *gin.Context) {
	view, err := h.Builder.ClearHotel(c.Param("id"))
	respondDraft(c, view, err)
}

func (h *Handler) ToggleDraftSightseeing(c *gin.Context) {
	var req toggleRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	view, err := h.Builder.ToggleSightseeing(c.Param("id"), req.Name)
	respondDraft(c, view, err)
}

func (h *Handler) AppendDraftDay(c *gin.Context) {
	view, err := h.Builder.AppendDay(c.Param("id"))
	respondDraft(c, view, err)
}

func (h *Handler) DuplicateDraftDay(c *gin.Context) {
	i, ok := indexParam(c, "index", 1)
	if !ok {
		return
	}
	view, err := h.Builder.DuplicateDay(c.Param("id"), i)
	respondDraft(c, view, err)
}

func (h *Handler) RemoveDraftDay(c *gin.Context) {
	i, ok := indexParam(c, "index", 1)
	if !ok {
		return
	}
	view, err := h.Builder.RemoveDay(c.Param("id"), i)
	respondDraft(c, view, err)
}

func (h *Handler) FinishDraft(c *gin.Context) {
	var req finishRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	view, err := h.Builder.Finish(middleware.GetRequestID(c), c.Param("id"), req.Name, req.Tier, req.Pax)
	h.respondView(c, http.StatusCreated, view, err)
}
