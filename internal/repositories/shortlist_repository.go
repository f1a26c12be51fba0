package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/bhoomikart/backend/internal/models"
)

type ShortlistRepository interface {
	// Add is idempotent: a second add of the same (buyer, property) pair is
	// a no-op. The pair uniqueness constraint is the only race guard.
	Add(ctx context.Context, buyerID, propertyID uuid.UUID) error

	// Remove is idempotent: removing an absent pair is a no-op.
	Remove(ctx context.Context, buyerID, propertyID uuid.UUID) error

	ListByBuyer(ctx context.Context, buyerID uuid.UUID, limit, offset int) ([]*models.Shortlist, error)
	CountByBuyer(ctx context.Context, buyerID uuid.UUID) (int, error)
	CountByProperty(ctx context.Context, propertyID uuid.UUID) (int, error)
}

type shortlistRepo struct {
	db DB
}

func NewShortlistRepository(db DB) ShortlistRepository {
	return &shortlistRepo{db: db}
}

func (r *shortlistRepo) Add(ctx context.Context, buyerID, propertyID uuid.UUID) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO shortlists (id, buyer_id, property_id, created_at)
        VALUES ($1,$2,$3, NOW())
        ON CONFLICT (buyer_id, property_id) DO NOTHING
    `, uuid.New(), buyerID, propertyID)
	return err
}

func (r *shortlistRepo) Remove(ctx context.Context, buyerID, propertyID uuid.UUID) error {
	_, err := r.db.Exec(ctx, `
        DELETE FROM shortlists WHERE buyer_id=$1 AND property_id=$2
    `, buyerID, propertyID)
	return err
}

func (r *shortlistRepo) ListByBuyer(ctx context.Context, buyerID uuid.UUID, limit, offset int) ([]*models.Shortlist, error) {
	rows, err := r.db.Query(ctx, `
        SELECT id, buyer_id, property_id, created_at
        FROM shortlists
        WHERE buyer_id=$1
        ORDER BY created_at DESC
        LIMIT $2 OFFSET $3
    `, buyerID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.Shortlist
	for rows.Next() {
		var s models.Shortlist
		if err := rows.Scan(&s.ID, &s.BuyerID, &s.PropertyID, &s.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, &s)
	}
	return out, rows.Err()
}

func (r *shortlistRepo) CountByBuyer(ctx context.Context, buyerID uuid.UUID) (int, error) {
	var n int
	err := r.db.QueryRow(ctx, `
        SELECT COUNT(*) FROM shortlists WHERE buyer_id=$1
    `, buyerID).Scan(&n)
	return n, err
}

func (r *shortlistRepo) CountByProperty(ctx context.Context, propertyID uuid.UUID) (int, error) {
	var n int
	err := r.db.QueryRow(ctx, `
        SELECT COUNT(*) FROM shortlists WHERE property_id=$1
    `, propertyID).Scan(&n)
	return n, err
}
