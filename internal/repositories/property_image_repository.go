package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/bhoomikart/backend/internal/models"
)

type PropertyImageRepository interface {
	Create(ctx context.Context, img *models.PropertyImage) error
	ListByPropertyID(ctx context.Context, propertyID uuid.UUID) ([]*models.PropertyImage, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type propertyImageRepo struct {
	db DB
}

func NewPropertyImageRepository(db DB) PropertyImageRepository {
	return &propertyImageRepo{db: db}
}

func (r *propertyImageRepo) Create(ctx context.Context, img *models.PropertyImage) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO property_images (id, property_id, image, is_primary)
        VALUES ($1,$2,$3,$4)
    `,
		img.ID,
		img.PropertyID,
		img.Image,
		img.IsPrimary,
	)
	return err
}

func (r *propertyImageRepo) ListByPropertyID(ctx context.Context, propertyID uuid.UUID) ([]*models.PropertyImage, error) {
	rows, err := r.db.Query(ctx, `
        SELECT id, property_id, image, is_primary
        FROM property_images
        WHERE property_id=$1
        ORDER BY is_primary DESC, id
    `, propertyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.PropertyImage
	for rows.Next() {
		var img models.PropertyImage
		if err := rows.Scan(&img.ID, &img.PropertyID, &img.Image, &img.IsPrimary); err != nil {
			return nil, err
		}
		out = append(out, &img)
	}
	return out, rows.Err()
}

func (r *propertyImageRepo) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx, `DELETE FROM property_images WHERE id=$1`, id)
	return err
}
