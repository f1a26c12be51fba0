package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/bhoomikart/backend/internal/dtos"
	"github.com/bhoomikart/backend/internal/repositories"
	"github.com/bhoomikart/backend/internal/utils"
)

type ShortlistService interface {
	// Add is idempotent: re-shortlisting an already shortlisted property
	// succeeds without effect.
	Add(ctx context.Context, buyerID, propertyID uuid.UUID) error

	// Remove is idempotent: removing a property that is not shortlisted
	// succeeds without effect.
	Remove(ctx context.Context, buyerID, propertyID uuid.UUID) error

	List(ctx context.Context, buyerID uuid.UUID, page, pageSize int) (*dtos.ShortlistListResponse, error)
}

type shortlistService struct {
	shortlistRepo repositories.ShortlistRepository
	propertyRepo  repositories.PropertyRepository
	projector     *PropertyProjector
}

func NewShortlistService(
	shortlistRepo repositories.ShortlistRepository,
	propertyRepo repositories.PropertyRepository,
	projector *PropertyProjector,
) ShortlistService {
	return &shortlistService{
		shortlistRepo: shortlistRepo,
		propertyRepo:  propertyRepo,
		projector:     projector,
	}
}

func (s *shortlistService) Add(ctx context.Context, buyerID, propertyID uuid.UUID) error {
	p, err := s.propertyRepo.GetByID(ctx, propertyID)
	if err != nil {
		return err
	}
	if p == nil {
		return utils.ErrNotFound
	}
	return s.shortlistRepo.Add(ctx, buyerID, propertyID)
}

func (s *shortlistService) Remove(ctx context.Context, buyerID, propertyID uuid.UUID) error {
	p, err := s.propertyRepo.GetByID(ctx, propertyID)
	if err != nil {
		return err
	}
	if p == nil {
		return utils.ErrNotFound
	}
	return s.shortlistRepo.Remove(ctx, buyerID, propertyID)
}

func (s *shortlistService) List(ctx context.Context, buyerID uuid.UUID, page, pageSize int) (*dtos.ShortlistListResponse, error) {
	total, err := s.shortlistRepo.CountByBuyer(ctx, buyerID)
	if err != nil {
		return nil, err
	}

	entries, err := s.shortlistRepo.ListByBuyer(ctx, buyerID, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, err
	}

	results := make([]dtos.ShortlistItemResponse, 0, len(entries))
	for _, e := range entries {
		p, err := s.propertyRepo.GetByID(ctx, e.PropertyID)
		if err != nil {
			return nil, err
		}
		if p == nil {
			// listing deleted since shortlisting; drop the stale entry
			utils.Logger.Warnf("Shortlist %s points at missing property %s", e.ID, e.PropertyID)
			continue
		}
		results = append(results, dtos.ShortlistItemResponse{
			ID:        e.ID,
			Property:  s.projector.Project(ctx, p, false),
			CreatedAt: e.CreatedAt,
		})
	}

	return &dtos.ShortlistListResponse{
		Count:    total,
		Page:     page,
		PageSize: pageSize,
		Results:  results,
	}, nil
}
