package utils

import "errors"

// Domain-level errors used by the service layer to provide
// fine-grained failure reasons.
var (
	ErrInvalidPhone       = errors.New("invalid_phone")
	ErrInvalidCredentials = errors.New("invalid_credentials")
	ErrPhoneExists        = errors.New("phone_exists")
	ErrUsernameExists     = errors.New("username_exists")
	ErrPhoneNotVerified   = errors.New("phone_not_verified")
	ErrInvalidOTP         = errors.New("invalid_otp")
	ErrNotFound           = errors.New("not_found")
	ErrForbidden          = errors.New("forbidden")

	// For concurrency conflicts
	ErrRowVersionConflict = errors.New("row_version_conflict")
)
