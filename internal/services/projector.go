package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/bhoomikart/backend/internal/dtos"
	"github.com/bhoomikart/backend/internal/models"
	"github.com/bhoomikart/backend/internal/repositories"
	"github.com/bhoomikart/backend/internal/utils"
)

// PropertyProjector assembles the client-facing listing record: location,
// seller profile, images, shortlist count and the computed display strings.
// Any sub-lookup that fails degrades its own field and is logged; a listing
// is never dropped because one of its decorations could not be loaded.
type PropertyProjector struct {
	locationRepo  repositories.LocationRepository
	userRepo      repositories.UserRepository
	imageRepo     repositories.PropertyImageRepository
	shortlistRepo repositories.ShortlistRepository
	viewRepo      repositories.PropertyViewRepository
}

func NewPropertyProjector(
	locationRepo repositories.LocationRepository,
	userRepo repositories.UserRepository,
	imageRepo repositories.PropertyImageRepository,
	shortlistRepo repositories.ShortlistRepository,
	viewRepo repositories.PropertyViewRepository,
) *PropertyProjector {
	return &PropertyProjector{
		locationRepo:  locationRepo,
		userRepo:      userRepo,
		imageRepo:     imageRepo,
		shortlistRepo: shortlistRepo,
		viewRepo:      viewRepo,
	}
}

// Project renders one listing. includeViewCount is set on detail reads only;
// list pages skip the extra count query per row.
func (pj *PropertyProjector) Project(ctx context.Context, p *models.Property, includeViewCount bool) dtos.PropertyResponse {
	return pj.project(ctx, p, includeViewCount,
		map[uuid.UUID]*models.IndiaLocation{},
		map[uuid.UUID]*models.User{},
	)
}

// ProjectAll renders a page of listings, memoizing location and seller rows
// so a page full of one seller's properties costs one lookup each.
func (pj *PropertyProjector) ProjectAll(ctx context.Context, ps []*models.Property) []dtos.PropertyResponse {
	locCache := map[uuid.UUID]*models.IndiaLocation{}
	userCache := map[uuid.UUID]*models.User{}

	out := make([]dtos.PropertyResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, pj.project(ctx, p, false, locCache, userCache))
	}
	return out
}

func (pj *PropertyProjector) project(
	ctx context.Context,
	p *models.Property,
	includeViewCount bool,
	locCache map[uuid.UUID]*models.IndiaLocation,
	userCache map[uuid.UUID]*models.User,
) dtos.PropertyResponse {
	resp := dtos.PropertyResponse{
		ID:           p.ID,
		PropertyType: p.PropertyType,
		Title:        p.Title,
		Description:  p.Description,
		Address:      p.Address,
		Price:        p.Price,
		Area:         p.Area,
		YoutubeLink:  p.YoutubeLink,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
		Latitude:     p.Latitude,
		Longitude:    p.Longitude,
		Images:       []dtos.PropertyImageResponse{},
	}

	loc, ok := locCache[p.LocationID]
	if !ok {
		var err error
		loc, err = pj.locationRepo.GetByID(ctx, p.LocationID)
		if err != nil {
			utils.Logger.WithError(err).Warnf("Failed to load location %s for property %s", p.LocationID, p.ID)
		}
		locCache[p.LocationID] = loc
	}
	if loc != nil {
		lr := dtos.NewLocationResponse(loc)
		resp.Location = &lr
	}

	seller, ok := userCache[p.SellerID]
	if !ok {
		var err error
		seller, err = pj.userRepo.GetByID(ctx, p.SellerID)
		if err != nil {
			utils.Logger.WithError(err).Warnf("Failed to load seller %s for property %s", p.SellerID, p.ID)
		}
		userCache[p.SellerID] = seller
	}
	if seller != nil {
		ur := dtos.NewUserResponse(seller)
		resp.Seller = &ur
	}

	imgs, err := pj.imageRepo.ListByPropertyID(ctx, p.ID)
	if err != nil {
		utils.Logger.WithError(err).Warnf("Failed to load images for property %s", p.ID)
	}
	for _, img := range imgs {
		resp.Images = append(resp.Images, dtos.PropertyImageResponse{
			ID:        img.ID,
			Image:     img.Image,
			IsPrimary: img.IsPrimary,
		})
	}

	n, err := pj.shortlistRepo.CountByProperty(ctx, p.ID)
	if err != nil {
		utils.Logger.WithError(err).Warnf("Failed to count shortlists for property %s", p.ID)
	}
	resp.ShortlistedCount = n

	if includeViewCount {
		vc, err := pj.viewRepo.CountByProperty(ctx, p.ID)
		if err != nil {
			utils.Logger.WithError(err).Warnf("Failed to count views for property %s", p.ID)
		}
		resp.ViewCount = vc
	}

	if d := PricePerUnitDisplay(p); d.Degraded {
		utils.Logger.Warnf("Degraded price_per_unit_display for property %s: %s", p.ID, d.Reason)
	} else {
		resp.PricePerUnitDisplay = d.Value
	}
	if d := AreaDisplay(p); d.Degraded {
		utils.Logger.Warnf("Degraded area_display for property %s: %s", p.ID, d.Reason)
	} else {
		resp.AreaDisplay = d.Value
	}

	return resp
}
