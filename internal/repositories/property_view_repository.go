package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/bhoomikart/backend/internal/models"
)

type PropertyViewRepository interface {
	Create(ctx context.Context, v *models.PropertyView) error
	CountByProperty(ctx context.Context, propertyID uuid.UUID) (int, error)
}

type propertyViewRepo struct {
	db DB
}

func NewPropertyViewRepository(db DB) PropertyViewRepository {
	return &propertyViewRepo{db: db}
}

func (r *propertyViewRepo) Create(ctx context.Context, v *models.PropertyView) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	_, err := r.db.Exec(ctx, `
        INSERT INTO property_views (id, property_id, user_id, created_at)
        VALUES ($1,$2,$3, NOW())
    `, v.ID, v.PropertyID, v.UserID)
	return err
}

func (r *propertyViewRepo) CountByProperty(ctx context.Context, propertyID uuid.UUID) (int, error) {
	var n int
	err := r.db.QueryRow(ctx, `
        SELECT COUNT(*) FROM property_views WHERE property_id=$1
    `, propertyID).Scan(&n)
	return n, err
}
