package models

import (
	"time"

	"github.com/google/uuid"
)

type UserType string

const (
	UserTypeSeller UserType = "SELLER"
	UserTypeBuyer  UserType = "BUYER"
)

func ValidUserType(t UserType) bool {
	return t == UserTypeSeller || t == UserTypeBuyer
}

type User struct {
	Versioned

	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	Email        *string   `json:"email,omitempty"`
	Phone        string    `json:"phone"`
	UserType     UserType  `json:"user_type"`
	PasswordHash string    `json:"-"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	ProfilePic   *string   `json:"profile_pic,omitempty"`
	IsVerified   bool      `json:"is_verified"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (u *User) GetID() string {
	return u.ID.String()
}
