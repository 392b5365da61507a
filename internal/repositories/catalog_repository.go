package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/hiraniavnish-droid/TTE-Final-sub000/internal/catalog"
	intconfig "github.com/hiraniavnish-droid/TTE-Final-sub000/internal/config"
	intdb "github.com/hiraniavnish-droid/TTE-Final-sub000/internal/db"
	"github.com/hiraniavnish-droid/TTE-Final-sub000/internal/domain/models"
	"github.com/hiraniavnish-droid/TTE-Final-sub000/internal/utils"
)

// CatalogRepository reads the inventory tables into a catalog snapshot. Missing tables
// degrade to empty sections.
type CatalogRepository struct {
	DB *sql.DB
}

func (r CatalogRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// Load implements catalog.Source.
func (r CatalogRepository) Load(ctx context.Context) (*catalog.Catalog, error) {
	db := r.db()
	if db == nil {
		return nil, fmt.Errorf("catalog: db not available")
	}

	out := catalog.Empty()
	var err error
	if out.Hotels, err = r.loadHotels(ctx, db); err != nil {
		return nil, fmt.Errorf("load hotels: %w", err)
	}
	if out.Sightseeing, err = r.loadSightseeing(ctx, db); err != nil {
		return nil, fmt.Errorf("load sightseeing: %w", err)
	}
	if out.Vehicles, err = r.loadVehicles(ctx, db); err != nil {
		return nil, fmt.Errorf("load vehicles: %w", err)
	}
	if out.Packages, err = r.loadPackages(ctx, db); err != nil {
		return nil, fmt.Errorf("load packages: %w", err)
	}
	return catalog.Normalize(out), nil
}

func (r CatalogRepository) loadHotels(ctx context.Context, db *sql.DB) (map[string][]models.Hotel, error) {
	out := map[string][]models.Hotel{}
	if !intdb.HasTable(ctx, db, "hotels") {
		return out, nil
	}

	imageCol := intdb.OptionalColumn(ctx, db, "hotels", "image")
	rows, err := db.QueryContext(ctx, fmt.Sprintf(`
		SELECT id, COALESCE(city,''), COALESCE(name,''), COALESCE(tier,''), COALESCE(meal_plan,''), %s
		FROM hotels
		ORDER BY id ASC`, imageCol))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	type hotelRef struct {
		city string
		idx  int
	}
	byID := map[int64]hotelRef{}
	for rows.Next() {
		var (
			id   int64
			city string
			tier string
			h    models.Hotel
		)
		if err := rows.Scan(&id, &city, &h.Name, &tier, &h.MealPlan, &h.Image); err != nil {
			return nil, err
		}
		city = utils.NormalizeSpace(city)
		if t, ok := models.ParseTier(tier); ok {
			h.Tier = t
		} else {
			h.Tier = models.Tier(tier)
		}
		h.RoomTypes = []models.RoomType{}
		byID[id] = hotelRef{city: city, idx: len(out[city])}
		out[city] = append(out[city], h)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(byID) == 0 || !intdb.HasTable(ctx, db, "room_types") {
		return out, nil
	}

	roomRows, err := db.QueryContext(ctx, `
		SELECT hotel_id, COALESCE(name,''), COALESCE(capacity,0), COALESCE(rate,0)
		FROM room_types
		ORDER BY hotel_id ASC, id ASC`)
	if err != nil {
		return nil, err
	}
	defer roomRows.Close()

	for roomRows.Next() {
		var (
			hotelID int64
			rt      models.RoomType
		)
		if err := roomRows.Scan(&hotelID, &rt.Name, &rt.Capacity, &rt.Rate); err != nil {
			return nil, err
		}
		ref, ok := byID[hotelID]
		if !ok {
			continue
		}
		h := &out[ref.city][ref.idx]
		h.RoomTypes = append(h.RoomTypes, rt)
	}
	return out, roomRows.Err()
}

func (r CatalogRepository) loadSightseeing(ctx context.Context, db *sql.DB) (map[string][]models.Sightseeing, error) {
	out := map[string][]models.Sightseeing{}
	if !intdb.HasTable(ctx, db, "sightseeing") {
		return out, nil
	}

	descCol := intdb.OptionalColumn(ctx, db, "sightseeing", "description")
	rows, err := db.QueryContext(ctx, fmt.Sprintf(`
		SELECT COALESCE(city,''), COALESCE(name,''), %s
		FROM sightseeing
		ORDER BY city ASC, id ASC`, descCol))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			city string
			s    models.Sightseeing
		)
		if err := rows.Scan(&city, &s.Name, &s.Description); err != nil {
			return nil, err
		}
		city = utils.NormalizeSpace(city)
		out[city] = append(out[city], s)
	}
	return out, rows.Err()
}

func (r CatalogRepository) loadVehicles(ctx context.Context, db *sql.DB) ([]models.Vehicle, error) {
	out := []models.Vehicle{}
	if !intdb.HasTable(ctx, db, "vehicle_types") {
		return out, nil
	}

	rows, err := db.QueryContext(ctx, `
		SELECT COALESCE(name,''), COALESCE(rate,0), COALESCE(capacity,0)
		FROM vehicle_types
		ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var v models.Vehicle
		if err := rows.Scan(&v.Name, &v.Rate, &v.Capacity); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

func (r CatalogRepository) loadPackages(ctx context.Context, db *sql.DB) ([]models.Package, error) {
	out := []models.Package{}
	if !intdb.HasTable(ctx, db, "packages") {
		return out, nil
	}

	rows, err := db.QueryContext(ctx, `
		SELECT COALESCE(code,''), COALESCE(name,''), COALESCE(days,0), COALESCE(route,'')
		FROM packages
		ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			p     models.Package
			route string
		)
		if err := rows.Scan(&p.ID, &p.Name, &p.Days, &route); err != nil {
			return nil, err
		}
		p.Route = utils.SplitList(route)
		if p.Days != len(p.Route) {
			utils.LogEventf("", "catalog", "load_packages", "package=%s days=%d route_len=%d, using route length", p.ID, p.Days, len(p.Route))
			p.Days = len(p.Route)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
