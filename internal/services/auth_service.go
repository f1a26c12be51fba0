package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/bhoomikart/backend/internal/constants"
	"github.com/bhoomikart/backend/internal/dtos"
	"github.com/bhoomikart/backend/internal/models"
	"github.com/bhoomikart/backend/internal/repositories"
	"github.com/bhoomikart/backend/internal/utils"
)

type AuthService interface {
	// Register creates an unverified account and issues its first OTP. The
	// returned code is for callers that are allowed to surface it (dev only).
	Register(ctx context.Context, req dtos.RegisterRequest) (*models.User, string, error)

	Login(ctx context.Context, phone, password string) (*models.User, string, error)
	VerifyOTP(ctx context.Context, phone, code string) (*models.User, string, error)
	ResendOTP(ctx context.Context, phone string) error

	GetProfile(ctx context.Context, userID uuid.UUID) (*models.User, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, req dtos.UpdateProfileRequest, profilePic *string) (*models.User, error)
}

type authService struct {
	userRepo         repositories.UserRepository
	verificationRepo repositories.PhoneVerificationRepository
	jwtService       JWTService
	notifier         NotificationService
}

func NewAuthService(
	userRepo repositories.UserRepository,
	verificationRepo repositories.PhoneVerificationRepository,
	jwtService JWTService,
	notifier NotificationService,
) AuthService {
	return &authService{
		userRepo:         userRepo,
		verificationRepo: verificationRepo,
		jwtService:       jwtService,
		notifier:         notifier,
	}
}

func (s *authService) Register(ctx context.Context, req dtos.RegisterRequest) (*models.User, string, error) {
	if !utils.ValidatePhoneNumber(req.Phone) {
		return nil, "", utils.ErrInvalidPhone
	}
	if !models.ValidUserType(models.UserType(req.UserType)) {
		return nil, "", fmt.Errorf("unknown user type %q", req.UserType)
	}

	existing, err := s.userRepo.GetByPhone(ctx, req.Phone)
	if err != nil {
		return nil, "", err
	}
	if existing != nil {
		return nil, "", utils.ErrPhoneExists
	}

	existing, err = s.userRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		return nil, "", err
	}
	if existing != nil {
		return nil, "", utils.ErrUsernameExists
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, "", err
	}

	user := &models.User{
		ID:           uuid.New(),
		Username:     req.Username,
		Email:        req.Email,
		Phone:        req.Phone,
		UserType:     models.UserType(req.UserType),
		PasswordHash: hash,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		IsVerified:   false,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		// lost an insert race with a concurrent registration
		switch cn := repositories.UniqueConstraintName(err); {
		case strings.Contains(cn, "username"):
			return nil, "", utils.ErrUsernameExists
		case cn != "":
			return nil, "", utils.ErrPhoneExists
		}
		return nil, "", err
	}

	code, err := s.issueOTP(ctx, user)
	if err != nil {
		return nil, "", err
	}

	utils.Logger.Infof("Registered user %s (%s), verification pending", user.Username, user.ID)
	return user, code, nil
}

func (s *authService) Login(ctx context.Context, phone, password string) (*models.User, string, error) {
	user, err := s.userRepo.GetByPhone(ctx, phone)
	if err != nil {
		return nil, "", err
	}
	if user == nil || !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, "", utils.ErrInvalidCredentials
	}
	if !user.IsVerified {
		return nil, "", utils.ErrPhoneNotVerified
	}

	token, err := s.jwtService.GenerateAccessToken(user.ID, constants.AccessTokenExpiry)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (s *authService) VerifyOTP(ctx context.Context, phone, code string) (*models.User, string, error) {
	user, err := s.userRepo.GetByPhone(ctx, phone)
	if err != nil {
		return nil, "", err
	}
	if user == nil {
		return nil, "", utils.ErrNotFound
	}

	rec, err := s.verificationRepo.GetCode(ctx, phone)
	if err != nil {
		return nil, "", err
	}
	if rec == nil {
		return nil, "", utils.ErrInvalidOTP
	}
	if rec.VerificationCode != code || time.Now().After(rec.ExpiresAt) {
		if incErr := s.verificationRepo.IncrementAttempts(ctx, rec.ID); incErr != nil {
			utils.Logger.WithError(incErr).Warnf("Failed to bump OTP attempts for %s", phone)
		}
		return nil, "", utils.ErrInvalidOTP
	}

	if err := s.userRepo.MarkVerified(ctx, user.ID); err != nil {
		return nil, "", err
	}
	if err := s.verificationRepo.DeleteCode(ctx, rec.ID); err != nil {
		utils.Logger.WithError(err).Warnf("Failed to delete consumed OTP for %s", phone)
	}
	user.IsVerified = true

	token, err := s.jwtService.GenerateAccessToken(user.ID, constants.AccessTokenExpiry)
	if err != nil {
		return nil, "", err
	}

	utils.Logger.Infof("Phone verified for user %s", user.ID)
	return user, token, nil
}

func (s *authService) ResendOTP(ctx context.Context, phone string) error {
	user, err := s.userRepo.GetByPhone(ctx, phone)
	if err != nil {
		return err
	}
	if user == nil {
		return utils.ErrNotFound
	}

	_, err = s.issueOTP(ctx, user)
	return err
}

func (s *authService) GetProfile(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, utils.ErrNotFound
	}
	return user, nil
}

func (s *authService) UpdateProfile(ctx context.Context, userID uuid.UUID, req dtos.UpdateProfileRequest, profilePic *string) (*models.User, error) {
	err := s.userRepo.UpdateWithRetry(ctx, userID, func(u *models.User) error {
		if req.FirstName != nil {
			u.FirstName = *req.FirstName
		}
		if req.LastName != nil {
			u.LastName = *req.LastName
		}
		if profilePic != nil {
			u.ProfilePic = profilePic
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.GetProfile(ctx, userID)
}

// issueOTP replaces any live code for the user's phone with a fresh one and
// kicks off delivery in the background.
func (s *authService) issueOTP(ctx context.Context, user *models.User) (string, error) {
	if rec, err := s.verificationRepo.GetCode(ctx, user.Phone); err != nil {
		return "", err
	} else if rec != nil {
		if err := s.verificationRepo.DeleteCode(ctx, rec.ID); err != nil {
			return "", err
		}
	}

	code := utils.RandomNumericString(constants.OTPLength)
	expiresAt := time.Now().Add(constants.OTPExpiry)
	if err := s.verificationRepo.CreateCode(ctx, user.ID, user.Phone, code, expiresAt); err != nil {
		return "", err
	}

	go s.notifier.SendOTP(user.Phone, user.Email, code)
	return code, nil
}
