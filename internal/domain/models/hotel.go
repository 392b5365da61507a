package models

import "strings"

// Tier is the coarse accommodation quality bucket used for default hotel selection.
type Tier string

const (
	TierBudget  Tier = "Budget"
	TierPremium Tier = "Premium"
)

// ParseTier matches case-insensitively. ok=false for anything that is not a known tier.
func ParseTier(s string) (Tier, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "budget":
		return TierBudget, true
	case "premium":
		return TierPremium, true
	default:
		return TierBudget, false
	}
}

// Hotel mirrors a catalog hotel row together with its room types.
type Hotel struct {
	Name      string     `json:"name"`
	Tier      Tier       `json:"tier"`
	MealPlan  string     `json:"mealPlan"`
	Image     string     `json:"image,omitempty"`
	RoomTypes []RoomType `json:"roomTypes"`
}

// RoomType carries the per-room rate for one night.
type RoomType struct {
	Name     string `json:"name"`
	Capacity int    `json:"capacity"`
	Rate     int64  `json:"rate"`
}

// Clone returns a deep copy so callers can hold the hotel past a catalog refresh.
func (h Hotel) Clone() Hotel {
	out := h
	if h.RoomTypes != nil {
		out.RoomTypes = append([]RoomType(nil), h.RoomTypes...)
	}
	return out
}

// RoomType looks up a room type by name (case-insensitive).
func (h Hotel) RoomType(name string) (RoomType, bool) {
	key := strings.ToLower(strings.TrimSpace(name))
	for _, rt := range h.RoomTypes {
		if strings.ToLower(strings.TrimSpace(rt.Name)) == key {
			return rt, true
		}
	}
	return RoomType{}, false
}
