package services

import (
	"context"

	"github.com/robfig/cron/v3"

	"github.com/bhoomikart/backend/internal/constants"
	"github.com/bhoomikart/backend/internal/repositories"
	"github.com/bhoomikart/backend/internal/utils"
)

// VerificationCleanupService purges expired phone verification codes on a
// schedule so the table stays small and dead codes cannot be brute-forced.
type VerificationCleanupService interface {
	Cleanup(ctx context.Context) error
	Start() *cron.Cron
}

type verificationCleanupService struct {
	verificationRepo repositories.PhoneVerificationRepository
}

func NewVerificationCleanupService(verificationRepo repositories.PhoneVerificationRepository) VerificationCleanupService {
	return &verificationCleanupService{verificationRepo: verificationRepo}
}

func (s *verificationCleanupService) Cleanup(ctx context.Context) error {
	if err := s.verificationRepo.CleanupExpired(ctx); err != nil {
		utils.Logger.WithError(err).Error("Failed to purge expired verification codes")
		return err
	}
	utils.Logger.Debug("Purged expired verification codes")
	return nil
}

func (s *verificationCleanupService) Start() *cron.Cron {
	c := cron.New()
	_, err := c.AddFunc(constants.VerificationCleanupSpec, func() {
		_ = s.Cleanup(context.Background())
	})
	if err != nil {
		utils.Logger.WithError(err).Fatal("Failed to schedule verification cleanup")
	}
	c.Start()
	utils.Logger.Infof("Verification cleanup scheduled (%s)", constants.VerificationCleanupSpec)
	return c
}
