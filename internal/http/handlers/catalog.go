package handlers

import (
	"net/http"
	"strconv"

	"github.com/hiraniavnish-droid/TTE-Final-sub000/internal/domain"
	"github.com/hiraniavnish-droid/TTE-Final-sub000/internal/domain/models"
	"github.com/hiraniavnish-droid/TTE-Final-sub000/internal/itinerary"

	"github.com/gin-gonic/gin"
)

// GetCatalog returns the current snapshot.
func (h *Handler) GetCatalog(c *gin.Context) {
	c.JSON(http.StatusOK, h.Catalog.Current())
}

type packageCard struct {
	models.Package
	Estimate itinerary.BrowseEstimate `json:"estimate"`
}

// ListPackages returns every package with its browse estimate for ?tier=&pax=&sharing=.
func (h *Handler) ListPackages(c *gin.Context) {
	tier := models.TierBudget
	if raw := c.Query("tier"); raw != "" {
		t, ok := models.ParseTier(raw)
		if !ok {
			RespondDomainError(c, domain.Invalid("tier", "unknown tier %q", raw))
			return
		}
		tier = t
	}

	pax := 2
	if raw := c.Query("pax"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			RespondDomainError(c, domain.Invalid("pax", "must be a non-negative number"))
			return
		}
		pax = n
	}
	sharing := itinerary.ParseSharingMode(c.Query("sharing"))

	cat := h.Catalog.Current()
	out := make([]packageCard, 0, len(cat.Packages))
	for _, p := range cat.Packages {
		out = append(out, packageCard{
			Package:  p,
			Estimate: itinerary.EstimateBrowsePrice(p, tier, pax, sharing, cat, h.SeatRate),
		})
	}
	c.JSON(http.StatusOK, gin.H{"packages": out, "tier": tier, "pax": pax, "sharing": sharing})
}
