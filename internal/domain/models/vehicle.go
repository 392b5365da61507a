package models

// Vehicle is a catalog vehicle type. Rate is charged per unit per trip-day.
type Vehicle struct {
	Name     string `json:"name"`
	Rate     int64  `json:"rate"`
	Capacity int    `json:"capacity"`
	Image    string `json:"image,omitempty"`
}

// FleetItem allocates Count units of a vehicle type for the whole trip.
type FleetItem struct {
	ID      string `json:"id"`
	Vehicle string `json:"vehicle"`
	Count   int    `json:"count"`
}
