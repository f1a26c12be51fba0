package repositories

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	"github.com/bhoomikart/backend/internal/constants"
	"github.com/bhoomikart/backend/internal/models"
)

/* ------------------------------------------------------------------
   Public interface
------------------------------------------------------------------ */

type LocationRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.IndiaLocation, error)

	// GetOrCreate resolves the hierarchy tuple to exactly one persisted row.
	// Concurrent creators racing on the same tuple all end up with the
	// winner's row; the bool reports whether this call inserted it.
	GetOrCreate(ctx context.Context, loc *models.IndiaLocation) (*models.IndiaLocation, bool, error)

	UpdateCentroid(ctx context.Context, id uuid.UUID, lat, lon float64) error

	DistinctStates(ctx context.Context) ([]string, error)
	DistinctDistricts(ctx context.Context, state string) ([]string, error)
	DistinctSubDistricts(ctx context.Context, state, district string) ([]string, error)
	DistinctVillages(ctx context.Context, state, district, subDistrict string) ([]string, error)
	DistinctPinCodes(ctx context.Context, state, district, subDistrict, village string) ([]string, error)
}

/* ------------------------------------------------------------------
   Implementation
------------------------------------------------------------------ */

type locationRepo struct {
	db DB
}

func NewLocationRepository(db DB) LocationRepository {
	return &locationRepo{db: db}
}

func (r *locationRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.IndiaLocation, error) {
	row := r.db.QueryRow(ctx, baseSelectLocation()+" WHERE id=$1", id)
	return scanLocation(row)
}

func (r *locationRepo) getByTuple(ctx context.Context, state, district, subDistrict, village string) (*models.IndiaLocation, error) {
	row := r.db.QueryRow(ctx, baseSelectLocation()+`
        WHERE state=$1 AND district=$2 AND sub_district=$3 AND village=$4
    `, state, district, subDistrict, village)
	return scanLocation(row)
}

func (r *locationRepo) GetOrCreate(ctx context.Context, loc *models.IndiaLocation) (*models.IndiaLocation, bool, error) {
	for attempt := 0; attempt < constants.MaxLocationCreateRetries; attempt++ {
		existing, err := r.getByTuple(ctx, loc.State, loc.District, loc.SubDistrict, loc.Village)
		if err != nil {
			return nil, false, err
		}
		if existing != nil {
			return existing, false, nil
		}

		if loc.ID == uuid.Nil {
			loc.ID = uuid.New()
		}
		_, err = r.db.Exec(ctx, `
            INSERT INTO india_locations (
                id, state, district, sub_district, village, pin_code,
                latitude, longitude, census_code
            ) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
        `,
			loc.ID,
			loc.State,
			loc.District,
			loc.SubDistrict,
			loc.Village,
			loc.PinCode,
			loc.Latitude,
			loc.Longitude,
			loc.CensusCode,
		)
		if err == nil {
			return loc, true, nil
		}
		if !IsUniqueViolation(err) {
			return nil, false, err
		}
		// a concurrent creator won the insert – loop and re-read its row
	}
	return nil, false, fmt.Errorf("get-or-create location %q/%q: too much contention", loc.State, loc.Village)
}

func (r *locationRepo) UpdateCentroid(ctx context.Context, id uuid.UUID, lat, lon float64) error {
	_, err := r.db.Exec(ctx, `
        UPDATE india_locations SET latitude=$1, longitude=$2 WHERE id=$3
    `, lat, lon, id)
	return err
}

func (r *locationRepo) DistinctStates(ctx context.Context) ([]string, error) {
	return r.distinct(ctx, `SELECT DISTINCT state FROM india_locations ORDER BY state`)
}

func (r *locationRepo) DistinctDistricts(ctx context.Context, state string) ([]string, error) {
	return r.distinct(ctx, `
        SELECT DISTINCT district FROM india_locations WHERE state=$1 ORDER BY district
    `, state)
}

func (r *locationRepo) DistinctSubDistricts(ctx context.Context, state, district string) ([]string, error) {
	return r.distinct(ctx, `
        SELECT DISTINCT sub_district FROM india_locations
        WHERE state=$1 AND district=$2 ORDER BY sub_district
    `, state, district)
}

func (r *locationRepo) DistinctVillages(ctx context.Context, state, district, subDistrict string) ([]string, error) {
	return r.distinct(ctx, `
        SELECT DISTINCT village FROM india_locations
        WHERE state=$1 AND district=$2 AND sub_district=$3 ORDER BY village
    `, state, district, subDistrict)
}

func (r *locationRepo) DistinctPinCodes(ctx context.Context, state, district, subDistrict, village string) ([]string, error) {
	q := `SELECT DISTINCT pin_code FROM india_locations WHERE 1=1`
	args := []interface{}{}
	add := func(col, val string) {
		if val != "" {
			args = append(args, val)
			q += fmt.Sprintf(" AND %s=$%d", col, len(args))
		}
	}
	add("state", state)
	add("district", district)
	add("sub_district", subDistrict)
	add("village", village)
	q += " ORDER BY pin_code"
	return r.distinct(ctx, q, args...)
}

func (r *locationRepo) distinct(ctx context.Context, q string, args ...interface{}) ([]string, error) {
	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func baseSelectLocation() string {
	return `
        SELECT
            id, state, district, sub_district, village, pin_code,
            latitude, longitude, census_code
        FROM india_locations
    `
}

func scanLocation(row pgx.Row) (*models.IndiaLocation, error) {
	var l models.IndiaLocation
	err := row.Scan(
		&l.ID,
		&l.State,
		&l.District,
		&l.SubDistrict,
		&l.Village,
		&l.PinCode,
		&l.Latitude,
		&l.Longitude,
		&l.CensusCode,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &l, nil
}
