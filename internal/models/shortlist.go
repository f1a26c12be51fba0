package models

import (
	"time"

	"github.com/google/uuid"
)

// Shortlist is one (buyer, property) pair; the pair is unique in the store.
type Shortlist struct {
	ID         uuid.UUID `json:"id"`
	BuyerID    uuid.UUID `json:"buyer_id"`
	PropertyID uuid.UUID `json:"property_id"`
	CreatedAt  time.Time `json:"created_at"`
}
