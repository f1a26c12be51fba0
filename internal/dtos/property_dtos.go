package dtos

import (
	"time"

	"github.com/google/uuid"

	"github.com/bhoomikart/backend/internal/models"
)

type CreatePropertyRequest struct {
	PropertyType string `json:"property_type" validate:"required,oneof=AGRICULTURE OPEN_PLOT FLAT HOUSE BUILDING COMMERCIAL"`
	Title        string `json:"title" validate:"required,max=255"`
	Description  string `json:"description" validate:"required,max=2000"`
	Address      string `json:"address" validate:"required"`

	State       string `json:"state" validate:"required,max=100"`
	District    string `json:"district" validate:"required,max=100"`
	SubDistrict string `json:"sub_district" validate:"required,max=100"`
	Village     string `json:"village" validate:"required,max=100"`
	PinCode     string `json:"pin_code" validate:"required,len=6,numeric"`

	Latitude  *float64 `json:"latitude,omitempty" validate:"omitempty,gte=-90,lte=90"`
	Longitude *float64 `json:"longitude,omitempty" validate:"omitempty,gte=-180,lte=180"`

	Price       float64 `json:"price" validate:"required,gt=0"`
	Area        float64 `json:"area" validate:"required,gt=0"`
	YoutubeLink *string `json:"youtube_link,omitempty" validate:"omitempty,url"`
}

// UpdatePropertyRequest: every field optional; absent means "leave as is".
// Supplying any part of the location tuple requires the full tuple so the
// listing can be re-pointed at a directory entry.
type UpdatePropertyRequest struct {
	PropertyType *string `json:"property_type,omitempty" validate:"omitempty,oneof=AGRICULTURE OPEN_PLOT FLAT HOUSE BUILDING COMMERCIAL"`
	Title        *string `json:"title,omitempty" validate:"omitempty,max=255"`
	Description  *string `json:"description,omitempty" validate:"omitempty,max=2000"`
	Address      *string `json:"address,omitempty"`

	State       *string `json:"state,omitempty" validate:"omitempty,max=100"`
	District    *string `json:"district,omitempty" validate:"omitempty,max=100"`
	SubDistrict *string `json:"sub_district,omitempty" validate:"omitempty,max=100"`
	Village     *string `json:"village,omitempty" validate:"omitempty,max=100"`
	PinCode     *string `json:"pin_code,omitempty" validate:"omitempty,len=6,numeric"`

	Latitude  *float64 `json:"latitude,omitempty" validate:"omitempty,gte=-90,lte=90"`
	Longitude *float64 `json:"longitude,omitempty" validate:"omitempty,gte=-180,lte=180"`

	Price       *float64 `json:"price,omitempty" validate:"omitempty,gt=0"`
	Area        *float64 `json:"area,omitempty" validate:"omitempty,gt=0"`
	YoutubeLink *string  `json:"youtube_link,omitempty" validate:"omitempty,url"`
}

// HasLocationTuple reports whether the request carries a complete
// state/district/sub-district/village/pin tuple.
func (r *UpdatePropertyRequest) HasLocationTuple() bool {
	return r.State != nil && r.District != nil && r.SubDistrict != nil &&
		r.Village != nil && r.PinCode != nil
}

type LocationResponse struct {
	ID          uuid.UUID `json:"id"`
	State       string    `json:"state"`
	District    string    `json:"district"`
	SubDistrict string    `json:"sub_district"`
	Village     string    `json:"village"`
	PinCode     string    `json:"pin_code"`
}

func NewLocationResponse(l *models.IndiaLocation) LocationResponse {
	return LocationResponse{
		ID:          l.ID,
		State:       l.State,
		District:    l.District,
		SubDistrict: l.SubDistrict,
		Village:     l.Village,
		PinCode:     l.PinCode,
	}
}

type PropertyImageResponse struct {
	ID        uuid.UUID `json:"id"`
	Image     string    `json:"image"`
	IsPrimary bool      `json:"is_primary"`
}

// PropertyResponse is the full client-facing listing record, including the
// computed display strings. Derived fields degrade to null/zero rather than
// failing the whole record.
type PropertyResponse struct {
	ID           uuid.UUID           `json:"id"`
	PropertyType models.PropertyType `json:"property_type"`
	Title        string              `json:"title"`
	Description  string              `json:"description"`
	Address      string              `json:"address"`
	Location     *LocationResponse   `json:"location"`
	Price        float64             `json:"price"`
	Area         float64             `json:"area"`
	YoutubeLink  *string             `json:"youtube_link"`
	CreatedAt    time.Time           `json:"created_at"`
	UpdatedAt    time.Time           `json:"updated_at"`

	Seller *UserResponse           `json:"seller"`
	Images []PropertyImageResponse `json:"images"`

	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`

	PricePerUnitDisplay *string `json:"price_per_unit_display"`
	AreaDisplay         *string `json:"area_display"`
	ShortlistedCount    int     `json:"shortlisted_count"`
	ViewCount           int     `json:"view_count,omitempty"`
}

type PropertyListResponse struct {
	Count    int                `json:"count"`
	Page     int                `json:"page"`
	PageSize int                `json:"page_size"`
	Results  []PropertyResponse `json:"results"`
}

type ShortlistItemResponse struct {
	ID        uuid.UUID        `json:"id"`
	Property  PropertyResponse `json:"property"`
	CreatedAt time.Time        `json:"created_at"`
}

type ShortlistListResponse struct {
	Count    int                     `json:"count"`
	Page     int                     `json:"page"`
	PageSize int                     `json:"page_size"`
	Results  []ShortlistItemResponse `json:"results"`
}

type ShortlistStatusResponse struct {
	Status string `json:"status"`
}
