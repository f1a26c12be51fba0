package dtos

import (
	"github.com/google/uuid"

	"github.com/bhoomikart/backend/internal/models"
)

type RegisterRequest struct {
	Username  string  `json:"username" validate:"required,min=3,max=150"`
	Password  string  `json:"password" validate:"required,min=8,max=128"`
	Email     *string `json:"email,omitempty" validate:"omitempty,email"`
	Phone     string  `json:"phone" validate:"required,min=10,max=15"`
	UserType  string  `json:"user_type" validate:"required,oneof=SELLER BUYER"`
	FirstName string  `json:"first_name" validate:"omitempty,max=150"`
	LastName  string  `json:"last_name" validate:"omitempty,max=150"`
}

type RegisterResponse struct {
	Message string `json:"message"`
	Phone   string `json:"phone"`
	// OTP is only populated when the expose_otp_in_registration flag is on
	// (development builds). Production responses never carry the code.
	OTP string `json:"otp,omitempty"`
}

type LoginRequest struct {
	Phone    string `json:"phone" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Phone string       `json:"phone"`
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

type VerifyOTPRequest struct {
	Phone string `json:"phone" validate:"required"`
	OTP   string `json:"otp" validate:"required,len=6,numeric"`
}

type VerifyOTPResponse struct {
	Message string       `json:"message"`
	Token   string       `json:"token"`
	User    UserResponse `json:"user"`
}

type ResendOTPRequest struct {
	Phone string `json:"phone" validate:"required"`
}

type ResendOTPResponse struct {
	Message string `json:"message"`
	Phone   string `json:"phone"`
}

// UpdateProfileRequest carries the only profile fields a user may change.
type UpdateProfileRequest struct {
	FirstName *string `json:"first_name,omitempty" validate:"omitempty,max=150"`
	LastName  *string `json:"last_name,omitempty" validate:"omitempty,max=150"`
}

// UserResponse is the public profile projection. Password hash and any live
// verification code never leave the service.
type UserResponse struct {
	ID         uuid.UUID       `json:"id"`
	Username   string          `json:"username"`
	Email      *string         `json:"email,omitempty"`
	Phone      string          `json:"phone"`
	UserType   models.UserType `json:"user_type"`
	FirstName  string          `json:"first_name"`
	LastName   string          `json:"last_name"`
	ProfilePic *string         `json:"profile_pic,omitempty"`
	IsVerified bool            `json:"is_verified"`
}

func NewUserResponse(u *models.User) UserResponse {
	return UserResponse{
		ID:         u.ID,
		Username:   u.Username,
		Email:      u.Email,
		Phone:      u.Phone,
		UserType:   u.UserType,
		FirstName:  u.FirstName,
		LastName:   u.LastName,
		ProfilePic: u.ProfilePic,
		IsVerified: u.IsVerified,
	}
}
