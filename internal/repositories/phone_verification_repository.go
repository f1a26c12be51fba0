package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	"github.com/bhoomikart/backend/internal/models"
)

type PhoneVerificationRepository interface {
	CreateCode(ctx context.Context, userID uuid.UUID, phone, code string, expiresAt time.Time) error
	GetCode(ctx context.Context, phone string) (*models.PhoneVerificationCode, error)
	DeleteCode(ctx context.Context, id uuid.UUID) error
	IncrementAttempts(ctx context.Context, id uuid.UUID) error
	CleanupExpired(ctx context.Context) error
}

type phoneVerificationRepo struct {
	db DB
}

func NewPhoneVerificationRepository(db DB) PhoneVerificationRepository {
	return &phoneVerificationRepo{db: db}
}

func (r *phoneVerificationRepo) CreateCode(
	ctx context.Context,
	userID uuid.UUID,
	phone, code string,
	expiresAt time.Time,
) error {
	q := `
        INSERT INTO phone_verification_codes
            (id, user_id, phone, verification_code, expires_at, created_at, attempts)
        VALUES ($1, $2, $3, $4, $5, NOW(), 0)
    `
	_, err := r.db.Exec(ctx, q, uuid.New(), userID, phone, code, expiresAt)
	return err
}

func (r *phoneVerificationRepo) GetCode(ctx context.Context, phone string) (*models.PhoneVerificationCode, error) {
	q := `
        SELECT id, user_id, phone, verification_code, expires_at, attempts, created_at
        FROM phone_verification_codes
        WHERE phone = $1
        ORDER BY created_at DESC
        LIMIT 1
    `
	row := r.db.QueryRow(ctx, q, phone)
	var rec models.PhoneVerificationCode
	err := row.Scan(
		&rec.ID,
		&rec.UserID,
		&rec.Phone,
		&rec.VerificationCode,
		&rec.ExpiresAt,
		&rec.Attempts,
		&rec.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (r *phoneVerificationRepo) DeleteCode(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx, `DELETE FROM phone_verification_codes WHERE id = $1`, id)
	return err
}

func (r *phoneVerificationRepo) IncrementAttempts(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx, `
        UPDATE phone_verification_codes SET attempts = attempts + 1 WHERE id = $1
    `, id)
	return err
}

func (r *phoneVerificationRepo) CleanupExpired(ctx context.Context) error {
	_, err := r.db.Exec(ctx, `
        DELETE FROM phone_verification_codes WHERE expires_at < NOW()
    `)
	return err
}
