package models

// Package is a predefined (or assembled) trip skeleton. Route has one city per day;
// consecutive repeats mean consecutive nights in the same city.
type Package struct {
	ID    string   `json:"id"`
	Name  string   `json:"name"`
	Image string   `json:"image,omitempty"`
	Days  int      `json:"days"`
	Route []string `json:"route"`
}

// Clone copies the route slice.
func (p Package) Clone() Package {
	out := p
	out.Route = append([]string(nil), p.Route...)
	return out
}

// Sightseeing is one visitable place in a city.
type Sightseeing struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Image       string `json:"image,omitempty"`
}
