package itinerary

import (
	"strings"

	"github.com/hiraniavnish-droid/TTE-Final-sub000/internal/catalog"
	"github.com/hiraniavnish-droid/TTE-Final-sub000/internal/domain/models"
)

// SharingMode is the room-sharing assumption used while browsing packages.
type SharingMode string

const (
	SharingDouble SharingMode = "Double"
	SharingQuad   SharingMode = "Quad"
)

// DefaultSeatRatePerDay is the flat per-seat daily transport rate for browse estimates.
const DefaultSeatRatePerDay int64 = 1500

// ParseSharingMode defaults to Double for anything other than quad.
func ParseSharingMode(s string) SharingMode {
	if strings.EqualFold(strings.TrimSpace(s), string(SharingQuad)) {
		return SharingQuad
	}
	return SharingDouble
}

func (m SharingMode) capacity() int {
	if m == SharingQuad {
		return 4
	}
	return 2
}

// BrowseEstimate is an approximate gallery price. It is never equal in precision to
// ComputePackagePrice and must not be quoted to a guest.
type BrowseEstimate struct {
	PackageID     string      `json:"packageId"`
	Tier          models.Tier `json:"tier"`
	Sharing       SharingMode `json:"sharing"`
	Pax           int         `json:"pax"`
	HotelCost     int64       `json:"hotelCost"`
	TransportCost int64       `json:"transportCost"`
	Total         int64       `json:"total"`
	PerPerson     int64       `json:"perPerson"`
	Approximate   bool        `json:"approximate"`
}

// EstimateBrowsePrice prices a package before any editing session exists.
//
// Approximations: overrides are ignored and each day takes the tier
// default hotel (else the first hotel in the city); the room is the first room type
// whose capacity equals the sharing mode (2 for Double, 4 for Quad), else the first room
// type; transport is pax × seatRate × days instead of a real fleet. No markup.
func EstimateBrowsePrice(pkg models.Package, tier models.Tier, pax int, sharing SharingMode, cat *catalog.Catalog, seatRate int64) BrowseEstimate {
	if seatRate <= 0 {
		seatRate = DefaultSeatRatePerDay
	}
	est := BrowseEstimate{
		PackageID:   pkg.ID,
		Tier:        tier,
		Sharing:     sharing,
		Pax:         pax,
		Approximate: true,
	}

	target := sharing.capacity()
	for _, city := range pkg.Route {
		h, ok := tierDefaultHotel(cat, city, tier)
		if !ok {
			hotels := cat.HotelsIn(city)
			if len(hotels) == 0 {
				continue
			}
			h = hotels[0]
		}
		if len(h.RoomTypes) == 0 {
			continue
		}
		room := h.RoomTypes[0]
		for _, rt := range h.RoomTypes {
			if rt.Capacity == target {
				room = rt
				break
			}
		}
		est.HotelCost += room.Rate * int64(RoomsNeeded(pax, room.Capacity))
	}

	if pax > 0 {
		est.TransportCost = int64(pax) * seatRate * int64(pkg.Days)
	}
	est.Total = est.HotelCost + est.TransportCost
	est.PerPerson = PerPerson(est.Total, pax)
	return est
}
