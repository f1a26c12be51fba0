package dtos

import (
	"net/url"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/bhoomikart/backend/internal/constants"
	"github.com/bhoomikart/backend/internal/models"
)

func TestParsePropertyFilterDefaults(t *testing.T) {
	f := ParsePropertyFilter(url.Values{}, nil)

	require.Nil(t, f.PropertyType)
	require.Nil(t, f.PriceGTE)
	require.Nil(t, f.PriceLTE)
	require.Nil(t, f.AreaGTE)
	require.Nil(t, f.AreaLTE)
	require.Nil(t, f.State)
	require.Nil(t, f.SellerID)
	require.Equal(t, SortNewest, f.SortBy)
	require.Equal(t, 1, f.Page)
	require.Equal(t, constants.DefaultPageSize, f.PageSize)
}

func TestParsePropertyFilterFullQuery(t *testing.T) {
	q := url.Values{
		"property_type":          {"AGRICULTURE"},
		"price__gte":             {"100000"},
		"price__lte":             {"5000000"},
		"area__gte":              {"2"},
		"area__lte":              {"50"},
		"location__state":        {"Telangana"},
		"location__district":     {"Rangareddy"},
		"location__sub_district": {"Chevella"},
		"location__village":      {"Aloor"},
		"location__pin_code":     {"501503"},
		"sort_by":                {"price_low"},
		"page":                   {"3"},
		"page_size":              {"10"},
	}

	f := ParsePropertyFilter(q, nil)

	require.Equal(t, models.PropertyTypeAgriculture, *f.PropertyType)
	require.Equal(t, 100000.0, *f.PriceGTE)
	require.Equal(t, 5000000.0, *f.PriceLTE)
	require.Equal(t, 2.0, *f.AreaGTE)
	require.Equal(t, 50.0, *f.AreaLTE)
	require.Equal(t, "Telangana", *f.State)
	require.Equal(t, "501503", *f.PinCode)
	require.Equal(t, SortPriceLow, f.SortBy)
	require.Equal(t, 3, f.Page)
	require.Equal(t, 10, f.PageSize)
}

func TestParsePropertyFilterSentinelBounds(t *testing.T) {
	q := url.Values{
		"price__gte": {"0"},
		"price__lte": {"999999999"},
		"area__gte":  {"-5"},
		"area__lte":  {"999999"},
	}

	f := ParsePropertyFilter(q, nil)

	require.Nil(t, f.PriceGTE, "zero lower bound means no bound")
	require.Nil(t, f.PriceLTE, "ceiling sentinel means no bound")
	require.Nil(t, f.AreaGTE, "negative bound means no bound")
	require.Nil(t, f.AreaLTE, "ceiling sentinel means no bound")
}

func TestParsePropertyFilterMalformedValuesDropped(t *testing.T) {
	q := url.Values{
		"property_type": {"CASTLE"},
		"price__gte":    {"abc"},
		"area__lte":     {"ten"},
		"sort_by":       {"cheapest"},
		"page":          {"zero"},
		"page_size":     {"-3"},
	}

	f := ParsePropertyFilter(q, nil)

	require.Nil(t, f.PropertyType)
	require.Nil(t, f.PriceGTE)
	require.Nil(t, f.AreaLTE)
	require.Equal(t, SortNewest, f.SortBy)
	require.Equal(t, 1, f.Page)
	require.Equal(t, constants.DefaultPageSize, f.PageSize)
}

func TestParsePropertyFilterPageSizeCapped(t *testing.T) {
	f := ParsePropertyFilter(url.Values{"page_size": {"5000"}}, nil)
	require.Equal(t, constants.MaxPageSize, f.PageSize)
}

func TestParsePropertyFilterMyProperties(t *testing.T) {
	callerID := uuid.New()

	f := ParsePropertyFilter(url.Values{"my_properties": {"true"}}, &callerID)
	require.NotNil(t, f.SellerID)
	require.Equal(t, callerID, *f.SellerID)

	// Anonymous callers get the unrestricted listing, not an error.
	f = ParsePropertyFilter(url.Values{"my_properties": {"true"}}, nil)
	require.Nil(t, f.SellerID)

	// Anything but "true" is ignored.
	f = ParsePropertyFilter(url.Values{"my_properties": {"1"}}, &callerID)
	require.Nil(t, f.SellerID)
}

func TestParseSortOrder(t *testing.T) {
	require.Equal(t, SortPriceHigh, ParseSortOrder("price_high"))
	require.Equal(t, SortOldest, ParseSortOrder("oldest"))
	require.Equal(t, SortNewest, ParseSortOrder(""))
	require.Equal(t, SortNewest, ParseSortOrder("bogus"))
}
