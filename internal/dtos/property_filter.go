package dtos

import (
	"net/url"
	"strconv"

	"github.com/google/uuid"

	"github.com/bhoomikart/backend/internal/constants"
	"github.com/bhoomikart/backend/internal/models"
)

type SortOrder string

const (
	SortNewest    SortOrder = "newest"
	SortOldest    SortOrder = "oldest"
	SortPriceLow  SortOrder = "price_low"
	SortPriceHigh SortOrder = "price_high"
	SortAreaLow   SortOrder = "area_low"
	SortAreaHigh  SortOrder = "area_high"
)

// ParseSortOrder maps the sort_by query value to a SortOrder. Anything
// unrecognized falls back to newest-first.
func ParseSortOrder(s string) SortOrder {
	switch SortOrder(s) {
	case SortOldest, SortPriceLow, SortPriceHigh, SortAreaLow, SortAreaHigh:
		return SortOrder(s)
	default:
		return SortNewest
	}
}

// PropertyFilter is the explicit filter specification composed from query
// parameters. Every field is optional: nil means "no constraint". Malformed
// or sentinel parameter values are dropped during parsing, never rejected.
type PropertyFilter struct {
	PropertyType *models.PropertyType

	PriceGTE *float64
	PriceLTE *float64
	AreaGTE  *float64
	AreaLTE  *float64

	State       *string
	District    *string
	SubDistrict *string
	Village     *string
	PinCode     *string

	// SellerID restricts to listings owned by the caller (my_properties).
	SellerID *uuid.UUID

	SortBy   SortOrder
	Page     int
	PageSize int
}

// ParsePropertyFilter builds a PropertyFilter from the request query.
// callerID is non-nil only for authenticated requests; my_properties is
// silently skipped for anonymous callers.
func ParsePropertyFilter(q url.Values, callerID *uuid.UUID) PropertyFilter {
	f := PropertyFilter{
		SortBy:   ParseSortOrder(q.Get("sort_by")),
		Page:     1,
		PageSize: constants.DefaultPageSize,
	}

	if t := models.PropertyType(q.Get("property_type")); models.ValidPropertyType(t) {
		f.PropertyType = &t
	}

	f.PriceGTE = parseBound(q.Get("price__gte"), 0)
	f.PriceLTE = parseBound(q.Get("price__lte"), constants.PriceFilterCeiling)
	f.AreaGTE = parseBound(q.Get("area__gte"), 0)
	f.AreaLTE = parseBound(q.Get("area__lte"), constants.AreaFilterCeiling)

	f.State = optString(q.Get("location__state"))
	f.District = optString(q.Get("location__district"))
	f.SubDistrict = optString(q.Get("location__sub_district"))
	f.Village = optString(q.Get("location__village"))
	f.PinCode = optString(q.Get("location__pin_code"))

	if q.Get("my_properties") == "true" && callerID != nil {
		f.SellerID = callerID
	}

	if page, err := strconv.Atoi(q.Get("page")); err == nil && page > 0 {
		f.Page = page
	}
	if size, err := strconv.Atoi(q.Get("page_size")); err == nil && size > 0 {
		if size > constants.MaxPageSize {
			size = constants.MaxPageSize
		}
		f.PageSize = size
	}

	return f
}

// parseBound returns nil for absent, malformed, non-positive, or
// at-or-beyond-ceiling values; those all mean "no bound".
func parseBound(raw string, ceiling float64) *float64 {
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v <= 0 {
		return nil
	}
	if ceiling > 0 && v >= ceiling {
		return nil
	}
	return &v
}

func optString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
