package handlers

import (
	"net/http"

	"github.com/hiraniavnish-droid/TTE-Final-sub000/internal/domain/models"
	"github.com/hiraniavnish-droid/TTE-Final-sub000/internal/http/middleware"
	"github.com/hiraniavnish-droid/TTE-Final-sub000/internal/services"

	"github.com/gin-gonic/gin"
)

type openSessionRequest struct {
	PackageID string `json:"packageId" binding:"required"`
	Tier      string `json:"tier"`
	Pax       int    `json:"pax"`
}

type packageRequest struct {
	PackageID string `json:"packageId" binding:"required"`
}

type tierRequest struct {
	Tier string `json:"tier" binding:"required"`
}

type paxRequest struct {
	Pax *int `json:"pax" binding:"required"`
}

type markupRequest struct {
	Kind  string  `json:"kind" binding:"required"`
	Value float64 `json:"value"`
}

type taxRequest struct {
	Tax int64 `json:"tax"`
}

type guestRequest struct {
	Name string `json:"name"`
}

type startDateRequest struct {
	Date string `json:"date"`
}

type hotelRequest struct {
	Hotel    string `json:"hotel" binding:"required"`
	RoomType string `json:"roomType"`
}

type sightseeingRequest struct {
	Names []string `json:"names"`
}

type toggleRequest struct {
	Name string `json:"name" binding:"required"`
}

type fleetRequest struct {
	Items []models.FleetItem `json:"items"`
}

type vehicleRequest struct {
	Vehicle string `json:"vehicle"`
	Count   int    `json:"count"`
}

func (h *Handler) respondView(c *gin.Context, status int, view services.SessionView, err error) {
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(status, view)
}

func (h *Handler) OpenSession(c *gin.Context) {
	var req openSessionRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	view, err := h.Sessions.Open(middleware.GetRequestID(c), req.PackageID, req.Tier, req.Pax)
	h.respondView(c, http.StatusCreated, view, err)
}

func (h *Handler) GetSession(c *gin.Context) {
	view, err := h.Sessions.Get(c.Param("id"))
	h.respondView(c, http.StatusOK, view, err)
}

func (h *Handler) CloseSession(c *gin.Context) {
	if err := h.Sessions.Close(middleware.GetRequestID(c), c.Param("id")); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) SelectPackage(c *gin.Context) {
	var req packageRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	view, err := h.Sessions.SelectPackage(middleware.GetRequestID(c), c.Param("id"), req.PackageID)
	h.respondView(c, http.StatusOK, view, err)
}

func (h *Handler) SetTier(c *gin.Context) {
	var req tierRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	view, err := h.Sessions.SetTier(middleware.GetRequestID(c), c.Param("id"), req.Tier)
	h.respondView(c, http.StatusOK, view, err)
}

func (h *Handler) SetPax(c *gin.Context) {
	var req paxRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	view, err := h.Sessions.SetPax(middleware.GetRequestID(c), c.Param("id"), *req.Pax)
	h.respondView(c, http.StatusOK, view, err)
}

func (h *Handler) SetMarkup(c *gin.Context) {
	var req markupRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	view, err := h.Sessions.SetMarkup(middleware.GetRequestID(c), c.Param("id"), req.Kind, req.Value)
	h.respondView(c, http.StatusOK, view, err)
}

func (h *Handler) SetTax(c *gin.Context) {
	var req taxRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	view, err := h.Sessions.SetTax(middleware.GetRequestID(c), c.Param("id"), req.Tax)
	h.respondView(c, http.StatusOK, view, err)
}

func (h *Handler) SetGuest(c *gin.Context) {
	var req guestRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	view, err := h.Sessions.SetGuest(middleware.GetRequestID(c), c.Param("id"), req.Name)
	h.respondView(c, http.StatusOK, view, err)
}

func (h *Handler) SetStartDate(c *gin.Context) {
	var req startDateRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	view, err := h.Sessions.SetStartDate(middleware.GetRequestID(c), c.Param("id"), req.Date)
	h.respondView(c, http.StatusOK, view, err)
}

func (h *Handler) SetHotel(c *gin.Context) {
	day, ok := dayParam(c)
	if !ok {
		return
	}
	var req hotelRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	view, err := h.Sessions.SetHotel(middleware.GetRequestID(c), c.Param("id"), day, req.Hotel, req.RoomType)
	h.respondView(c, http.StatusOK, view, err)
}

func (h *Handler) ClearHotel(c *gin.Context) {
	day, ok := dayParam(c)
	if !ok {
		return
	}
	view, err := h.Sessions.ClearHotel(middleware.GetRequestID(c), c.Param("id"), day)
	h.respondView(c, http.StatusOK, view, err)
}

func (h *Handler) SetSightseeing(c *gin.Context) {
	day, ok := dayParam(c)
	if !ok {
		return
	}
	var req sightseeingRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	view, err := h.Sessions.SetSightseeing(middleware.GetRequestID(c), c.Param("id"), day, req.Names)
	h.respondView(c, http.StatusOK, view, err)
}

func (h *Handler) ToggleSightseeing(c *gin.Context) {
	day, ok := dayParam(c)
	if !ok {
		return
	}
	var req toggleRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	view, err := h.Sessions.ToggleSightseeing(middleware.GetRequestID(c), c.Param("id"), day, req.Name)
	h.respondView(c, http.StatusOK, view, err)
}

func (h *Handler) ClearSightseeing(c *gin.Context) {
	day, ok := dayParam(c)
	if !ok {
		return
	}
	view, err := h.Sessions.ClearSightseeing(middleware.GetRequestID(c), c.Param("id"), day)
	h.respondView(c, http.StatusOK, view, err)
}

func (h *Handler) AddVehicle(c *gin.Context) {
	var req vehicleRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	view, err := h.Sessions.AddVehicle(middleware.GetRequestID(c), c.Param("id"), req.Vehicle, req.Count)
	h.respondView(c, http.StatusOK, view, err)
}

func (h *Handler) UpdateVehicle(c *gin.Context) {
	var req vehicleRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	view, err := h.Sessions.UpdateVehicle(middleware.GetRequestID(c), c.Param("id"), c.Param("itemId"), req.Vehicle, req.Count)
	h.respondView(c, http.StatusOK, view, err)
}

func (h *Handler) RemoveVehicle(c *gin.Context) {
	view, err := h.Sessions.RemoveVehicle(middleware.GetRequestID(c), c.Param("id"), c.Param("itemId"))
	h.respondView(c, http.StatusOK, view, err)
}

func (h *Handler) ReplaceFleet(c *gin.Context) {
	var req fleetRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	view, err := h.Sessions.ReplaceFleet(middleware.GetRequestID(c), c.Param("id"), req.Items)
	h.respondView(c, http.StatusOK, view, err)
}
