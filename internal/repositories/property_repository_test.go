package repositories

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/bhoomikart/backend/internal/dtos"
	"github.com/bhoomikart/backend/internal/models"
	"github.com/bhoomikart/backend/internal/utils"
)

func TestBuildPropertyPredicatesEmpty(t *testing.T) {
	where, args := buildPropertyPredicates(dtos.PropertyFilter{})
	require.Equal(t, " WHERE 1=1", where)
	require.Empty(t, args)
}

func TestBuildPropertyPredicatesAllFields(t *testing.T) {
	pt := models.PropertyTypeFlat
	sellerID := uuid.New()
	f := dtos.PropertyFilter{
		PropertyType: &pt,
		PriceGTE:     utils.Ptr(100000.0),
		PriceLTE:     utils.Ptr(900000.0),
		AreaGTE:      utils.Ptr(500.0),
		AreaLTE:      utils.Ptr(2000.0),
		State:        utils.StrPtr("Telangana"),
		District:     utils.StrPtr("Rangareddy"),
		SubDistrict:  utils.StrPtr("Chevella"),
		Village:      utils.StrPtr("Aloor"),
		PinCode:      utils.StrPtr("501503"),
		SellerID:     &sellerID,
	}

	where, args := buildPropertyPredicates(f)

	require.Equal(t,
		" WHERE 1=1"+
			" AND p.property_type=$1"+
			" AND p.price>=$2"+
			" AND p.price<=$3"+
			" AND p.area>=$4"+
			" AND p.area<=$5"+
			" AND l.state=$6"+
			" AND l.district=$7"+
			" AND l.sub_district=$8"+
			" AND l.village=$9"+
			" AND l.pin_code=$10"+
			" AND p.seller_id=$11",
		where,
	)
	require.Len(t, args, 11)
	require.Equal(t, pt, args[0])
	require.Equal(t, sellerID, args[10])
}

func TestBuildPropertyPredicatesPartial(t *testing.T) {
	f := dtos.PropertyFilter{
		State:    utils.StrPtr("Telangana"),
		PriceLTE: utils.Ptr(900000.0),
	}

	where, args := buildPropertyPredicates(f)

	require.Equal(t, " WHERE 1=1 AND p.price<=$1 AND l.state=$2", where)
	require.Equal(t, []interface{}{900000.0, "Telangana"}, args)
}

func TestPropertyOrderClause(t *testing.T) {
	cases := map[dtos.SortOrder]string{
		dtos.SortPriceLow:  " ORDER BY p.price, p.created_at DESC",
		dtos.SortPriceHigh: " ORDER BY p.price DESC, p.created_at DESC",
		dtos.SortAreaLow:   " ORDER BY p.area, p.created_at DESC",
		dtos.SortAreaHigh:  " ORDER BY p.area DESC, p.created_at DESC",
		dtos.SortOldest:    " ORDER BY p.created_at",
		dtos.SortNewest:    " ORDER BY p.created_at DESC",
	}
	for in, want := range cases {
		require.Equal(t, want, propertyOrderClause(in))
	}

	// Unknown values sort newest-first.
	require.Equal(t, " ORDER BY p.created_at DESC", propertyOrderClause("bogus"))
}
