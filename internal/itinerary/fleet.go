package itinerary

import (
	"fmt"
	"strings"

	"github.com/hiraniavnish-droid/TTE-Final-sub000/internal/domain/models"
)

// Default vehicle classes picked by AutoFleet. They must match catalog vehicle names
// for transport to be priced; an unknown name costs nothing.
const (
	VehicleSedan          = "Sedan"
	VehicleInnova         = "Innova"
	VehicleTempoTraveller = "Tempo Traveller"
)

// FleetMode is the manual-override latch. The only legal transition is Auto -> Manual.
type FleetMode string

const (
	FleetAuto   FleetMode = "auto"
	FleetManual FleetMode = "manual"
)

// AutoFleet sizes the default fleet for a passenger count.
func AutoFleet(pax int) []models.FleetItem {
	switch {
	case pax <= 4:
		return []models.FleetItem{autoItem(VehicleSedan, 1)}
	case pax <= 6:
		return []models.FleetItem{autoItem(VehicleInnova, 1)}
	case pax <= 12:
		return []models.FleetItem{autoItem(VehicleTempoTraveller, 1)}
	default:
		return []models.FleetItem{autoItem(VehicleTempoTraveller, (pax+11)/12)}
	}
}

func autoItem(vehicle string, count int) models.FleetItem {
	id := "auto-" + strings.ReplaceAll(strings.ToLower(vehicle), " ", "-")
	return models.FleetItem{ID: id, Vehicle: vehicle, Count: count}
}

// FleetSummary renders "{count}x {name}" entries joined by ", ".
func FleetSummary(fleet []models.FleetItem) string {
	parts := make([]string, 0, len(fleet))
	for _, it := range fleet {
		parts = append(parts, fmt.Sprintf("%dx %s", it.Count, it.Vehicle))
	}
	return strings.Join(parts, ", ")
}
