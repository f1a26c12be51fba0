package models

import (
	"time"

	"github.com/google/uuid"
)

type PropertyType string

const (
	PropertyTypeAgriculture PropertyType = "AGRICULTURE"
	PropertyTypeOpenPlot    PropertyType = "OPEN_PLOT"
	PropertyTypeFlat        PropertyType = "FLAT"
	PropertyTypeHouse       PropertyType = "HOUSE"
	PropertyTypeBuilding    PropertyType = "BUILDING"
	PropertyTypeCommercial  PropertyType = "COMMERCIAL"
)

func ValidPropertyType(t PropertyType) bool {
	switch t {
	case PropertyTypeAgriculture, PropertyTypeOpenPlot, PropertyTypeFlat,
		PropertyTypeHouse, PropertyTypeBuilding, PropertyTypeCommercial:
		return true
	}
	return false
}

type Property struct {
	Versioned

	ID           uuid.UUID    `json:"id"`
	SellerID     uuid.UUID    `json:"seller_id"`
	PropertyType PropertyType `json:"property_type"`
	Title        string       `json:"title"`
	Description  string       `json:"description"`
	Address      string       `json:"address"`
	LocationID   uuid.UUID    `json:"location_id"`
	Latitude     *float64     `json:"latitude,omitempty"`
	Longitude    *float64     `json:"longitude,omitempty"`
	Price        float64      `json:"price"`
	Area         float64      `json:"area"`
	YoutubeLink  *string      `json:"youtube_link,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (p *Property) GetID() string {
	return p.ID.String()
}

type PropertyImage struct {
	ID         uuid.UUID `json:"id"`
	PropertyID uuid.UUID `json:"property_id"`
	Image      string    `json:"image"`
	IsPrimary  bool      `json:"is_primary"`
}

// PropertyView records a detail-page hit; user is nil for anonymous views.
type PropertyView struct {
	ID         uuid.UUID  `json:"id"`
	PropertyID uuid.UUID  `json:"property_id"`
	UserID     *uuid.UUID `json:"user_id,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}
