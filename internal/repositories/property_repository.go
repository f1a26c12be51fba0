package repositories

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"

	"github.com/bhoomikart/backend/internal/dtos"
	"github.com/bhoomikart/backend/internal/models"
)

/* ------------------------------------------------------------------
   Public interface
------------------------------------------------------------------ */

type PropertyRepository interface {
	Create(ctx context.Context, p *models.Property) error

	GetByID(ctx context.Context, id uuid.UUID) (*models.Property, error)

	// List applies the filter specification and returns one page plus the
	// total match count. Read-only; the filter never mutates stored data.
	List(ctx context.Context, f dtos.PropertyFilter) ([]*models.Property, int, error)

	Update(ctx context.Context, p *models.Property) error
	UpdateIfVersion(ctx context.Context, p *models.Property, expected int64) (pgconn.CommandTag, error)
	UpdateWithRetry(ctx context.Context, id uuid.UUID, mutate func(*models.Property) error) error
	Delete(ctx context.Context, id uuid.UUID) error
}

/* ------------------------------------------------------------------
   Implementation
------------------------------------------------------------------ */

type propertyRepo struct {
	*BaseVersionedRepo[*models.Property]
	db DB
}

func NewPropertyRepository(db DB) PropertyRepository {
	r := &propertyRepo{db: db}
	selectStmt := baseSelectProperty() + " WHERE p.id=$1"
	r.BaseVersionedRepo = NewBaseRepo(db, selectStmt, scanProperty)
	return r
}

func (r *propertyRepo) Create(ctx context.Context, p *models.Property) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO properties (
            id, seller_id, property_type, title, description, address,
            location_id, latitude, longitude, price, area, youtube_link,
            created_at, updated_at, row_version
        ) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12, NOW(), NOW(), 1)
    `,
		p.ID,
		p.SellerID,
		p.PropertyType,
		p.Title,
		p.Description,
		p.Address,
		p.LocationID,
		p.Latitude,
		p.Longitude,
		p.Price,
		p.Area,
		p.YoutubeLink,
	)
	return err
}

func (r *propertyRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Property, error) {
	return r.BaseVersionedRepo.GetByID(ctx, id.String())
}

func (r *propertyRepo) List(ctx context.Context, f dtos.PropertyFilter) ([]*models.Property, int, error) {
	where, args := buildPropertyPredicates(f)

	var total int
	countQ := `SELECT COUNT(*) FROM properties p JOIN india_locations l ON l.id=p.location_id` + where
	if err := r.db.QueryRow(ctx, countQ, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	q := baseSelectProperty() + where + propertyOrderClause(f.SortBy)
	q += fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, f.PageSize, (f.Page-1)*f.PageSize)

	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var out []*models.Property
	for rows.Next() {
		p, err := scanProperty(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, p)
	}
	return out, total, rows.Err()
}

func (r *propertyRepo) Update(ctx context.Context, p *models.Property) error {
	_, err := r.update(ctx, p, false, 0)
	return err
}

func (r *propertyRepo) UpdateIfVersion(ctx context.Context, p *models.Property, expected int64) (pgconn.CommandTag, error) {
	return r.update(ctx, p, true, expected)
}

func (r *propertyRepo) UpdateWithRetry(ctx context.Context, id uuid.UUID, mutate func(*models.Property) error) error {
	return r.BaseVersionedRepo.UpdateWithRetry(ctx, id.String(), mutate, r.UpdateIfVersion)
}

func (r *propertyRepo) update(ctx context.Context, p *models.Property, check bool, expected int64) (pgconn.CommandTag, error) {
	sql := `
        UPDATE properties SET
            property_type=$1, title=$2, description=$3, address=$4,
            location_id=$5, latitude=$6, longitude=$7,
            price=$8, area=$9, youtube_link=$10, updated_at=NOW()
    `
	args := []interface{}{
		p.PropertyType, p.Title, p.Description, p.Address,
		p.LocationID, p.Latitude, p.Longitude,
		p.Price, p.Area, p.YoutubeLink,
	}
	if check {
		sql += `, row_version=row_version+1 WHERE id=$11 AND row_version=$12`
		args = append(args, p.ID, expected)
	} else {
		sql += ` WHERE id=$11`
		args = append(args, p.ID)
	}

	return r.db.Exec(ctx, sql, args...)
}

func (r *propertyRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM properties WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

/* ------------------------------------------------------------------
   Filter composition
------------------------------------------------------------------ */

// buildPropertyPredicates turns the optional filter fields into a conjunctive
// WHERE clause. Absent fields contribute nothing; there is no OR/grouping.
func buildPropertyPredicates(f dtos.PropertyFilter) (string, []interface{}) {
	where := " WHERE 1=1"
	args := []interface{}{}

	add := func(cond string, val interface{}) {
		args = append(args, val)
		where += fmt.Sprintf(" AND "+cond, len(args))
	}

	if f.PropertyType != nil {
		add("p.property_type=$%d", *f.PropertyType)
	}
	if f.PriceGTE != nil {
		add("p.price>=$%d", *f.PriceGTE)
	}
	if f.PriceLTE != nil {
		add("p.price<=$%d", *f.PriceLTE)
	}
	if f.AreaGTE != nil {
		add("p.area>=$%d", *f.AreaGTE)
	}
	if f.AreaLTE != nil {
		add("p.area<=$%d", *f.AreaLTE)
	}
	if f.State != nil {
		add("l.state=$%d", *f.State)
	}
	if f.District != nil {
		add("l.district=$%d", *f.District)
	}
	if f.SubDistrict != nil {
		add("l.sub_district=$%d", *f.SubDistrict)
	}
	if f.Village != nil {
		add("l.village=$%d", *f.Village)
	}
	if f.PinCode != nil {
		add("l.pin_code=$%d", *f.PinCode)
	}
	if f.SellerID != nil {
		add("p.seller_id=$%d", *f.SellerID)
	}

	return where, args
}

func propertyOrderClause(s dtos.SortOrder) string {
	switch s {
	case dtos.SortPriceLow:
		return " ORDER BY p.price, p.created_at DESC"
	case dtos.SortPriceHigh:
		return " ORDER BY p.price DESC, p.created_at DESC"
	case dtos.SortAreaLow:
		return " ORDER BY p.area, p.created_at DESC"
	case dtos.SortAreaHigh:
		return " ORDER BY p.area DESC, p.created_at DESC"
	case dtos.SortOldest:
		return " ORDER BY p.created_at"
	default:
		return " ORDER BY p.created_at DESC"
	}
}

func baseSelectProperty() string {
	return `
        SELECT
            p.id, p.seller_id, p.property_type, p.title, p.description,
            p.address, p.location_id, p.latitude, p.longitude,
            p.price, p.area, p.youtube_link,
            p.created_at, p.updated_at, p.row_version
        FROM properties p
        JOIN india_locations l ON l.id=p.location_id
    `
}

func scanProperty(row pgx.Row) (*models.Property, error) {
	var p models.Property
	err := row.Scan(
		&p.ID,
		&p.SellerID,
		&p.PropertyType,
		&p.Title,
		&p.Description,
		&p.Address,
		&p.LocationID,
		&p.Latitude,
		&p.Longitude,
		&p.Price,
		&p.Area,
		&p.YoutubeLink,
		&p.CreatedAt,
		&p.UpdatedAt,
		&p.RowVersion,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}
