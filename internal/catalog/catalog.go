package catalog

import (
	"strings"

	"github.com/hiraniavnish-droid/TTE-Final-sub000/internal/domain/models"
	"github.com/hiraniavnish-droid/TTE-Final-sub000/internal/utils"
)

// Catalog is one immutable inventory snapshot. A refresh replaces the whole value;
// nothing mutates a published Catalog.
type Catalog struct {
	Hotels      map[string][]models.Hotel       `json:"hotels"`
	Sightseeing map[string][]models.Sightseeing `json:"sightseeing"`
	Vehicles    []models.Vehicle                `json:"vehicles"`
	Packages    []models.Package                `json:"packages"`
}

// Empty returns a catalog with non-nil maps.
func Empty() *Catalog {
	return &Catalog{
		Hotels:      map[string][]models.Hotel{},
		Sightseeing: map[string][]models.Sightseeing{},
		Vehicles:    []models.Vehicle{},
		Packages:    []models.Package{},
	}
}

// HotelsIn returns the hotels listed for a city. Nil catalog or unknown city yields nil.
func (c *Catalog) HotelsIn(city string) []models.Hotel {
	if c == nil {
		return nil
	}
	return c.Hotels[city]
}

// SightseeingIn returns the catalog order of sightseeing for a city.
func (c *Catalog) SightseeingIn(city string) []models.Sightseeing {
	if c == nil {
		return nil
	}
	return c.Sightseeing[city]
}

// Hotel finds a hotel by name within a city.
func (c *Catalog) Hotel(city, name string) (models.Hotel, bool) {
	key := strings.ToLower(strings.TrimSpace(name))
	for _, h := range c.HotelsIn(city) {
		if strings.ToLower(strings.TrimSpace(h.Name)) == key {
			return h, true
		}
	}
	return models.Hotel{}, false
}

// Vehicle finds a vehicle type by name (case-insensitive).
func (c *Catalog) Vehicle(name string) (models.Vehicle, bool) {
	if c == nil {
		return models.Vehicle{}, false
	}
	key := strings.ToLower(strings.TrimSpace(name))
	for _, v := range c.Vehicles {
		if strings.ToLower(strings.TrimSpace(v.Name)) == key {
			return v, true
		}
	}
	return models.Vehicle{}, false
}

// Package finds a package by id.
func (c *Catalog) Package(id string) (models.Package, bool) {
	if c == nil {
		return models.Package{}, false
	}
	for _, p := range c.Packages {
		if p.ID == id {
			return p, true
		}
	}
	return models.Package{}, false
}

// Cities lists every city that has hotels or sightseeing, in no particular order.
func (c *Catalog) Cities() []string {
	if c == nil {
		return nil
	}
	seen := map[string]bool{}
	out := []string{}
	for city := range c.Hotels {
		if !seen[city] {
			seen[city] = true
			out = append(out, city)
		}
	}
	for city := range c.Sightseeing {
		if !seen[city] {
			seen[city] = true
			out = append(out, city)
		}
	}
	return out
}

// normalize fills nil maps and forces each package's Days to its route length.
func (c *Catalog) normalize() *Catalog {
	if c.Hotels == nil {
		c.Hotels = map[string][]models.Hotel{}
	}
	if c.Sightseeing == nil {
		c.Sightseeing = map[string][]models.Sightseeing{}
	}
	if c.Vehicles == nil {
		c.Vehicles = []models.Vehicle{}
	}
	if c.Packages == nil {
		c.Packages = []models.Package{}
	}
	for i := range c.Packages {
		p := &c.Packages[i]
		if p.Days != len(p.Route) {
			if p.Days > 0 {
				utils.LogEventf("", "catalog", "normalize", "package=%s days=%d route_len=%d, using route length", p.ID, p.Days, len(p.Route))
			}
			p.Days = len(p.Route)
		}
	}
	return c
}

// Normalize is exported for sources outside this package.
func Normalize(c *Catalog) *Catalog {
	if c == nil {
		return Empty()
	}
	return c.normalize()
}
