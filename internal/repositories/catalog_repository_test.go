package repositories

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/hiraniavnish-droid/TTE-Final-sub000/internal/domain/models"
)

func expectTable(mock sqlmock.Sqlmock, table string, present bool) {
	rows := sqlmock.NewRows([]string{"table_name"})
	if present {
		rows.AddRow(table)
	}
	mock.ExpectQuery("information_schema\\.tables").WithArgs(table).WillReturnRows(rows)
}

func expectColumn(mock sqlmock.Sqlmock, table, column string, present bool) {
	rows := sqlmock.NewRows([]string{"column_name"})
	if present {
		rows.AddRow(column)
	}
	mock.ExpectQuery("information_schema\\.columns").WithArgs(table, column).WillReturnRows(rows)
}

func TestCatalogRepositoryLoad(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()
	mock.MatchExpectationsInOrder(false)

	expectTable(mock, "hotels", true)
	expectColumn(mock, "hotels", "image", true)
	mock.ExpectQuery("FROM hotels").WillReturnRows(
		sqlmock.NewRows([]string{"id", "city", "name", "tier", "meal_plan", "image"}).
			AddRow(1, "Bhuj", "Hotel Ilark", "budget", "CP", "ilark.jpg").
			AddRow(2, "Bhuj", "Regenta Resort", "Premium", "MAP", "").
			AddRow(3, "Dhordo", "Gateway to Rann", "Budget", "MAP", ""))

	expectTable(mock, "room_types", true)
	mock.ExpectQuery("FROM room_types").WillReturnRows(
		sqlmock.NewRows([]string{"hotel_id", "name", "capacity", "rate"}).
			AddRow(1, "Deluxe", 2, 2800).
			AddRow(1, "Quad Room", 4, 5000).
			AddRow(3, "Bhunga", 2, 3400).
			AddRow(99, "Orphan", 2, 1))

	expectTable(mock, "sightseeing", true)
	expectColumn(mock, "sightseeing", "description", false)
	mock.ExpectQuery("FROM sightseeing").WillReturnRows(
		sqlmock.NewRows([]string{"city", "name", "description"}).
			AddRow("Bhuj", "Aina Mahal", "").
			AddRow("Bhuj", "Prag Mahal", ""))

	expectTable(mock, "vehicle_types", true)
	mock.ExpectQuery("FROM vehicle_types").WillReturnRows(
		sqlmock.NewRows([]string{"name", "rate", "capacity"}).
			AddRow("Sedan", 3600, 4))

	expectTable(mock, "packages", true)
	mock.ExpectQuery("FROM packages").WillReturnRows(
		sqlmock.NewRows([]string{"code", "name", "days", "route"}).
			AddRow("kutch-3d", "White Rann Escape", 3, "Dhordo,Bhuj,Bhuj").
			AddRow("broken", "Broken Days", 5, "Bhuj"))

	repo := CatalogRepository{DB: db}
	cat, err := repo.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	bhuj := cat.HotelsIn("Bhuj")
	if len(bhuj) != 2 || bhuj[0].Name != "Hotel Ilark" || bhuj[0].Tier != models.TierBudget {
		t.Fatalf("unexpected Bhuj hotels: %+v", bhuj)
	}
	if len(bhuj[0].RoomTypes) != 2 || bhuj[0].RoomTypes[1].Rate != 5000 {
		t.Fatalf("room types not attached in order: %+v", bhuj[0].RoomTypes)
	}
	if len(bhuj[1].RoomTypes) != 0 {
		t.Fatalf("hotel without rooms should have none: %+v", bhuj[1].RoomTypes)
	}
	if bhuj[0].Image != "ilark.jpg" {
		t.Fatalf("image not read: %q", bhuj[0].Image)
	}
	if len(cat.SightseeingIn("Bhuj")) != 2 {
		t.Fatalf("sightseeing not loaded")
	}
	if v, ok := cat.Vehicle("Sedan"); !ok || v.Rate != 3600 {
		t.Fatalf("vehicle not loaded: %+v", v)
	}
	pkg, ok := cat.Package("kutch-3d")
	if !ok || pkg.Days != 3 || len(pkg.Route) != 3 || pkg.Route[2] != "Bhuj" {
		t.Fatalf("package route not parsed: %+v", pkg)
	}
	if broken, _ := cat.Package("broken"); broken.Days != 1 {
		t.Fatalf("days should follow route length, got %d", broken.Days)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCatalogRepositoryMissingTables(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()
	mock.MatchExpectationsInOrder(false)

	for _, table := range []string{"hotels", "sightseeing", "vehicle_types", "packages"} {
		expectTable(mock, table, false)
	}

	cat, err := CatalogRepository{DB: db}.Load(context.Background())
	if err != nil {
		t.Fatalf("missing tables should not error: %v", err)
	}
	if len(cat.Hotels) != 0 || len(cat.Vehicles) != 0 || len(cat.Packages) != 0 {
		t.Fatalf("expected empty catalog, got %+v", cat)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
