package services

import (
	"github.com/hiraniavnish-droid/TTE-Final-sub000/internal/catalog"
	"github.com/hiraniavnish-droid/TTE-Final-sub000/internal/domain/models"
)

func testCatalog() *catalog.Catalog {
	return &catalog.Catalog{
		Hotels: map[string][]models.Hotel{
			"Dhordo": {
				{
					Name: "Rann Utsav Tent City", Tier: models.TierPremium, MealPlan: "AP",
					RoomTypes: []models.RoomType{{Name: "Premium Tent", Capacity: 2, Rate: 9500}},
				},
				{
					Name: "Gateway to Rann", Tier: models.TierBudget, MealPlan: "MAP",
					RoomTypes: []models.RoomType{
						{Name: "Bhunga", Capacity: 2, Rate: 3400},
						{Name: "Family Bhunga", Capacity: 4, Rate: 6000},
					},
				},
			},
			"Bhuj": {
				{
					Name: "Hotel Ilark", Tier: models.TierBudget, MealPlan: "CP",
					RoomTypes: []models.RoomType{
						{Name: "Deluxe", Capacity: 2, Rate: 2800},
						{Name: "Quad Room", Capacity: 4, Rate: 5000},
					},
				},
			},
			"Mandvi": {
				{
					Name: "Beach Camp", Tier: models.TierPremium, MealPlan: "EP",
					RoomTypes: []models.RoomType{{Name: "Swiss Tent", Capacity: 2, Rate: 4100}},
				},
			},
		},
		Sightseeing: map[string][]models.Sightseeing{
			"Dhordo": {{Name: "White Rann"}, {Name: "Kalo Dungar"}},
			"Bhuj":   {{Name: "Aina Mahal"}, {Name: "Prag Mahal"}, {Name: "Bhujodi Village"}},
			"Mandvi": {{Name: "Vijay Vilas Palace"}, {Name: "Mandvi Beach"}},
		},
		Vehicles: []models.Vehicle{
			{Name: "Sedan", Rate: 3600, Capacity: 4},
			{Name: "Innova", Rate: 4800, Capacity: 6},
			{Name: "Tempo Traveller", Rate: 7500, Capacity: 12},
		},
		Packages: []models.Package{
			{ID: "kutch-3d", Name: "White Rann Escape", Days: 3, Route: []string{"Dhordo", "Bhuj", "Bhuj"}},
			{ID: "mandvi-2d", Name: "Mandvi Coast", Days: 2, Route: []string{"Mandvi", "Mandvi"}},
		},
	}
}

func newTestSessions() (*SessionService, *catalog.Store) {
	store := catalog.NewStore(testCatalog())
	return NewSessionService(store), store
}
