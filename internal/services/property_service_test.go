package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/bhoomikart/backend/internal/config"
	"github.com/bhoomikart/backend/internal/dtos"
	"github.com/bhoomikart/backend/internal/models"
	"github.com/bhoomikart/backend/internal/utils"
)

type propertyTestEnv struct {
	svc          PropertyService
	userRepo     *fakeUserRepo
	locationRepo *fakeLocationRepo
	propertyRepo *fakePropertyRepo
	viewRepo     *fakeViewRepo
}

func newPropertyTestEnv(t *testing.T) *propertyTestEnv {
	t.Helper()

	env := &propertyTestEnv{
		userRepo:     newFakeUserRepo(),
		locationRepo: newFakeLocationRepo(),
		propertyRepo: newFakePropertyRepo(),
		viewRepo:     &fakeViewRepo{},
	}
	imageRepo := &fakeImageRepo{}
	shortlistRepo := &fakeShortlistRepo{}

	projector := NewPropertyProjector(env.locationRepo, env.userRepo, imageRepo, shortlistRepo, env.viewRepo)
	env.svc = NewPropertyService(
		&config.Config{MediaRoot: t.TempDir()},
		env.propertyRepo, env.locationRepo, imageRepo, env.viewRepo, projector,
	)
	return env
}

func (env *propertyTestEnv) seedSeller(t *testing.T) uuid.UUID {
	t.Helper()
	seller := &models.User{
		ID:       uuid.New(),
		Username: "seller-" + uuid.NewString()[:8],
		Phone:    "+919876543210",
		UserType: models.UserTypeSeller,
	}
	require.NoError(t, env.userRepo.Create(context.Background(), seller))
	return seller.ID
}

func createReq() dtos.CreatePropertyRequest {
	return dtos.CreatePropertyRequest{
		PropertyType: "AGRICULTURE",
		Title:        "5 acre farmland",
		Description:  "Fertile land near the canal",
		Address:      "Survey 12, Ring Road",
		State:        "Telangana",
		District:     "Rangareddy",
		SubDistrict:  "Chevella",
		Village:      "Aloor",
		PinCode:      "501503",
		Price:        5_000_000,
		Area:         5,
	}
}

func TestCreatePropertyResolvesLocation(t *testing.T) {
	env := newPropertyTestEnv(t)
	ctx := context.Background()
	sellerID := env.seedSeller(t)

	resp, err := env.svc.Create(ctx, sellerID, createReq(), nil)
	require.NoError(t, err)
	require.NotNil(t, resp.Location)
	require.Equal(t, "Telangana", resp.Location.State)
	require.Equal(t, "Aloor", resp.Location.Village)
	require.NotNil(t, resp.Seller)
	require.Equal(t, sellerID, resp.Seller.ID)
	require.NotNil(t, resp.PricePerUnitDisplay)
	require.Equal(t, "₹1,000,000.00/acre", *resp.PricePerUnitDisplay)

	// A second listing for the same tuple reuses the directory entry.
	resp2, err := env.svc.Create(ctx, sellerID, createReq(), nil)
	require.NoError(t, err)
	require.Equal(t, resp.Location.ID, resp2.Location.ID)
	require.Len(t, env.locationRepo.locations, 1)
}

func TestCreatePropertyRefreshesCentroid(t *testing.T) {
	env := newPropertyTestEnv(t)
	ctx := context.Background()
	sellerID := env.seedSeller(t)

	_, err := env.svc.Create(ctx, sellerID, createReq(), nil)
	require.NoError(t, err)

	req := createReq()
	req.Latitude = utils.Ptr(17.25)
	req.Longitude = utils.Ptr(78.13)
	resp, err := env.svc.Create(ctx, sellerID, req, nil)
	require.NoError(t, err)

	loc, err := env.locationRepo.GetByID(ctx, resp.Location.ID)
	require.NoError(t, err)
	require.Equal(t, 17.25, loc.Latitude)
	require.Equal(t, 78.13, loc.Longitude)
}

func TestGetPropertyRecordsView(t *testing.T) {
	env := newPropertyTestEnv(t)
	ctx := context.Background()
	sellerID := env.seedSeller(t)

	created, err := env.svc.Create(ctx, sellerID, createReq(), nil)
	require.NoError(t, err)

	_, err = env.svc.Get(ctx, created.ID, nil)
	require.NoError(t, err)

	got, err := env.svc.Get(ctx, created.ID, &sellerID)
	require.NoError(t, err)
	require.Equal(t, 2, got.ViewCount)
}

func TestGetPropertyNotFound(t *testing.T) {
	env := newPropertyTestEnv(t)

	_, err := env.svc.Get(context.Background(), uuid.New(), nil)
	require.ErrorIs(t, err, utils.ErrNotFound)
}

func TestUpdatePropertyOwnership(t *testing.T) {
	env := newPropertyTestEnv(t)
	ctx := context.Background()
	sellerID := env.seedSeller(t)

	created, err := env.svc.Create(ctx, sellerID, createReq(), nil)
	require.NoError(t, err)

	stranger := uuid.New()
	_, err = env.svc.Update(ctx, stranger, created.ID, dtos.UpdatePropertyRequest{
		Title: utils.StrPtr("hijacked"),
	})
	require.ErrorIs(t, err, utils.ErrForbidden)

	updated, err := env.svc.Update(ctx, sellerID, created.ID, dtos.UpdatePropertyRequest{
		Title: utils.StrPtr("6 acre farmland"),
		Price: utils.Ptr(6_000_000.0),
	})
	require.NoError(t, err)
	require.Equal(t, "6 acre farmland", updated.Title)
	require.Equal(t, 6_000_000.0, updated.Price)
}

func TestUpdatePropertyRepointsLocation(t *testing.T) {
	env := newPropertyTestEnv(t)
	ctx := context.Background()
	sellerID := env.seedSeller(t)

	created, err := env.svc.Create(ctx, sellerID, createReq(), nil)
	require.NoError(t, err)

	updated, err := env.svc.Update(ctx, sellerID, created.ID, dtos.UpdatePropertyRequest{
		State:       utils.StrPtr("Telangana"),
		District:    utils.StrPtr("Rangareddy"),
		SubDistrict: utils.StrPtr("Chevella"),
		Village:     utils.StrPtr("Kandwada"),
		PinCode:     utils.StrPtr("501504"),
	})
	require.NoError(t, err)
	require.NotEqual(t, created.Location.ID, updated.Location.ID)
	require.Equal(t, "Kandwada", updated.Location.Village)
}

func TestDeleteProperty(t *testing.T) {
	env := newPropertyTestEnv(t)
	ctx := context.Background()
	sellerID := env.seedSeller(t)

	created, err := env.svc.Create(ctx, sellerID, createReq(), nil)
	require.NoError(t, err)

	require.ErrorIs(t, env.svc.Delete(ctx, uuid.New(), created.ID), utils.ErrForbidden)
	require.NoError(t, env.svc.Delete(ctx, sellerID, created.ID))
	require.ErrorIs(t, env.svc.Delete(ctx, sellerID, created.ID), utils.ErrNotFound)
}

func TestListMyProperties(t *testing.T) {
	env := newPropertyTestEnv(t)
	ctx := context.Background()
	sellerID := env.seedSeller(t)
	otherID := env.seedSeller(t)

	_, err := env.svc.Create(ctx, sellerID, createReq(), nil)
	require.NoError(t, err)
	_, err = env.svc.Create(ctx, otherID, createReq(), nil)
	require.NoError(t, err)

	all, err := env.svc.List(ctx, dtos.PropertyFilter{Page: 1, PageSize: 20})
	require.NoError(t, err)
	require.Equal(t, 2, all.Count)

	mine, err := env.svc.List(ctx, dtos.PropertyFilter{Page: 1, PageSize: 20, SellerID: &sellerID})
	require.NoError(t, err)
	require.Equal(t, 1, mine.Count)
	require.Equal(t, sellerID, mine.Results[0].Seller.ID)
}
