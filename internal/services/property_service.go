package services

import (
	"context"
	"mime/multipart"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/bhoomikart/backend/internal/config"
	"github.com/bhoomikart/backend/internal/dtos"
	"github.com/bhoomikart/backend/internal/models"
	"github.com/bhoomikart/backend/internal/repositories"
	"github.com/bhoomikart/backend/internal/utils"
)

type PropertyService interface {
	// Create stores a new listing owned by sellerID. The location tuple is
	// resolved against the directory (get-or-create); images are optional.
	Create(ctx context.Context, sellerID uuid.UUID, req dtos.CreatePropertyRequest, images []*multipart.FileHeader) (*dtos.PropertyResponse, error)

	// Get returns the full detail record and logs a view hit.
	// viewerID is nil for anonymous reads.
	Get(ctx context.Context, id uuid.UUID, viewerID *uuid.UUID) (*dtos.PropertyResponse, error)

	List(ctx context.Context, f dtos.PropertyFilter) (*dtos.PropertyListResponse, error)

	Update(ctx context.Context, callerID, id uuid.UUID, req dtos.UpdatePropertyRequest) (*dtos.PropertyResponse, error)
	Delete(ctx context.Context, callerID, id uuid.UUID) error
}

type propertyService struct {
	cfg          *config.Config
	propertyRepo repositories.PropertyRepository
	locationRepo repositories.LocationRepository
	imageRepo    repositories.PropertyImageRepository
	viewRepo     repositories.PropertyViewRepository
	projector    *PropertyProjector
}

func NewPropertyService(
	cfg *config.Config,
	propertyRepo repositories.PropertyRepository,
	locationRepo repositories.LocationRepository,
	imageRepo repositories.PropertyImageRepository,
	viewRepo repositories.PropertyViewRepository,
	projector *PropertyProjector,
) PropertyService {
	return &propertyService{
		cfg:          cfg,
		propertyRepo: propertyRepo,
		locationRepo: locationRepo,
		imageRepo:    imageRepo,
		viewRepo:     viewRepo,
		projector:    projector,
	}
}

func (s *propertyService) Create(
	ctx context.Context,
	sellerID uuid.UUID,
	req dtos.CreatePropertyRequest,
	images []*multipart.FileHeader,
) (*dtos.PropertyResponse, error) {
	loc, err := s.resolveLocation(ctx,
		req.State, req.District, req.SubDistrict, req.Village, req.PinCode,
		req.Latitude, req.Longitude,
	)
	if err != nil {
		return nil, err
	}

	lat, lon := req.Latitude, req.Longitude
	if lat == nil || lon == nil {
		lat, lon = utils.Ptr(loc.Latitude), utils.Ptr(loc.Longitude)
	}

	p := &models.Property{
		ID:           uuid.New(),
		SellerID:     sellerID,
		PropertyType: models.PropertyType(req.PropertyType),
		Title:        req.Title,
		Description:  req.Description,
		Address:      req.Address,
		LocationID:   loc.ID,
		Latitude:     lat,
		Longitude:    lon,
		Price:        req.Price,
		Area:         req.Area,
		YoutubeLink:  req.YoutubeLink,
	}
	if err := s.propertyRepo.Create(ctx, p); err != nil {
		return nil, err
	}

	s.saveImages(ctx, p.ID, images)

	utils.Logger.Infof("Created property %s (%s) by seller %s", p.ID, p.PropertyType, sellerID)
	resp := s.projector.Project(ctx, p, false)
	return &resp, nil
}

func (s *propertyService) Get(ctx context.Context, id uuid.UUID, viewerID *uuid.UUID) (*dtos.PropertyResponse, error) {
	p, err := s.propertyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, utils.ErrNotFound
	}

	if err := s.viewRepo.Create(ctx, &models.PropertyView{PropertyID: p.ID, UserID: viewerID}); err != nil {
		utils.Logger.WithError(err).Warnf("Failed to record view for property %s", p.ID)
	}

	resp := s.projector.Project(ctx, p, true)
	return &resp, nil
}

func (s *propertyService) List(ctx context.Context, f dtos.PropertyFilter) (*dtos.PropertyListResponse, error) {
	ps, total, err := s.propertyRepo.List(ctx, f)
	if err != nil {
		return nil, err
	}

	return &dtos.PropertyListResponse{
		Count:    total,
		Page:     f.Page,
		PageSize: f.PageSize,
		Results:  s.projector.ProjectAll(ctx, ps),
	}, nil
}

func (s *propertyService) Update(ctx context.Context, callerID, id uuid.UUID, req dtos.UpdatePropertyRequest) (*dtos.PropertyResponse, error) {
	p, err := s.propertyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, utils.ErrNotFound
	}
	if p.SellerID != callerID {
		return nil, utils.ErrForbidden
	}

	// Re-pointing at a different directory entry needs the full tuple.
	var newLoc *models.IndiaLocation
	if req.HasLocationTuple() {
		newLoc, err = s.resolveLocation(ctx,
			*req.State, *req.District, *req.SubDistrict, *req.Village, *req.PinCode,
			req.Latitude, req.Longitude,
		)
		if err != nil {
			return nil, err
		}
	}

	err = s.propertyRepo.UpdateWithRetry(ctx, id, func(cur *models.Property) error {
		if req.PropertyType != nil {
			cur.PropertyType = models.PropertyType(*req.PropertyType)
		}
		if req.Title != nil {
			cur.Title = *req.Title
		}
		if req.Description != nil {
			cur.Description = *req.Description
		}
		if req.Address != nil {
			cur.Address = *req.Address
		}
		if newLoc != nil {
			cur.LocationID = newLoc.ID
		}
		if req.Latitude != nil && req.Longitude != nil {
			cur.Latitude, cur.Longitude = req.Latitude, req.Longitude
		}
		if req.Price != nil {
			cur.Price = *req.Price
		}
		if req.Area != nil {
			cur.Area = *req.Area
		}
		if req.YoutubeLink != nil {
			cur.YoutubeLink = req.YoutubeLink
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	updated, err := s.propertyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, utils.ErrNotFound
	}
	resp := s.projector.Project(ctx, updated, false)
	return &resp, nil
}

func (s *propertyService) Delete(ctx context.Context, callerID, id uuid.UUID) error {
	p, err := s.propertyRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if p == nil {
		return utils.ErrNotFound
	}
	if p.SellerID != callerID {
		return utils.ErrForbidden
	}

	if err := s.propertyRepo.Delete(ctx, id); err != nil {
		return err
	}
	utils.Logger.Infof("Deleted property %s by seller %s", id, callerID)
	return nil
}

// resolveLocation runs the directory get-or-create for the tuple. When the
// entry already exists and the caller supplied coordinates, the centroid is
// refreshed in place (last write wins).
func (s *propertyService) resolveLocation(
	ctx context.Context,
	state, district, subDistrict, village, pinCode string,
	lat, lon *float64,
) (*models.IndiaLocation, error) {
	candidate := &models.IndiaLocation{
		State:       state,
		District:    district,
		SubDistrict: subDistrict,
		Village:     village,
		PinCode:     pinCode,
		Latitude:    utils.Val(lat),
		Longitude:   utils.Val(lon),
		CensusCode:  models.DeriveCensusCode(state, district, subDistrict, village),
	}

	loc, created, err := s.locationRepo.GetOrCreate(ctx, candidate)
	if err != nil {
		return nil, err
	}

	if !created && lat != nil && lon != nil {
		if err := s.locationRepo.UpdateCentroid(ctx, loc.ID, *lat, *lon); err != nil {
			utils.Logger.WithError(err).Warnf("Failed to refresh centroid for location %s", loc.ID)
		} else {
			loc.Latitude, loc.Longitude = *lat, *lon
		}
	}
	return loc, nil
}

// saveImages stores the uploads under media/properties/<id>/images. The first
// file becomes the primary image. A failed save skips that file only.
func (s *propertyService) saveImages(ctx context.Context, propertyID uuid.UUID, images []*multipart.FileHeader) {
	for i, fh := range images {
		relDir := filepath.Join("properties", propertyID.String(), "images")
		relPath, err := utils.SaveUpload(s.cfg.MediaRoot, relDir, fh)
		if err != nil {
			utils.Logger.WithError(err).Warnf("Failed to save image %q for property %s", fh.Filename, propertyID)
			continue
		}
		img := &models.PropertyImage{
			ID:         uuid.New(),
			PropertyID: propertyID,
			Image:      relPath,
			IsPrimary:  i == 0,
		}
		if err := s.imageRepo.Create(ctx, img); err != nil {
			utils.Logger.WithError(err).Warnf("Failed to persist image record for property %s", propertyID)
		}
	}
}
