package models

import (
	"time"

	"github.com/google/uuid"
)

// PhoneVerificationCode for the phone_verification_codes table.
// One live row per phone; issuing a new code replaces the old row.
type PhoneVerificationCode struct {
	ID               uuid.UUID
	UserID           uuid.UUID
	Phone            string
	VerificationCode string
	ExpiresAt        time.Time
	Attempts         int
	CreatedAt        time.Time
}
