package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"path/filepath"

	"github.com/go-playground/validator/v10"

	"github.com/bhoomikart/backend/internal/config"
	"github.com/bhoomikart/backend/internal/dtos"
	"github.com/bhoomikart/backend/internal/services"
	"github.com/bhoomikart/backend/internal/utils"
)

type AuthController struct {
	cfg         *config.Config
	authService services.AuthService
}

var authValidate = validator.New()

func NewAuthController(cfg *config.Config, authService services.AuthService) *AuthController {
	return &AuthController{cfg: cfg, authService: authService}
}

// POST /api/v1/auth/register
func (c *AuthController) RegisterHandler(w http.ResponseWriter, r *http.Request) {
	var req dtos.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid JSON payload", nil, err)
		return
	}
	if err := authValidate.Struct(req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeValidation, "Validation failed", validationDetails(err), err)
		return
	}

	_, otp, err := c.authService.Register(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, utils.ErrInvalidPhone):
			utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeValidation, "Invalid Indian phone number", nil, err)
		case errors.Is(err, utils.ErrPhoneExists):
			utils.RespondErrorWithCode(w, http.StatusConflict, utils.ErrCodeConflict, "Phone number already registered", nil, err)
		case errors.Is(err, utils.ErrUsernameExists):
			utils.RespondErrorWithCode(w, http.StatusConflict, utils.ErrCodeConflict, "Username already taken", nil, err)
		default:
			utils.RespondErrorWithCode(w, http.StatusInternalServerError, utils.ErrCodeInternal, "Failed to register user", nil, err)
		}
		return
	}

	resp := dtos.RegisterResponse{
		Message: "OTP sent to your phone number",
		Phone:   req.Phone,
	}
	if c.cfg.LDFlag_ExposeOTPInRegistration {
		resp.OTP = otp
	}
	utils.RespondWithJSON(w, http.StatusCreated, resp)
}

// POST /api/v1/auth/login
func (c *AuthController) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var req dtos.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid JSON payload", nil, err)
		return
	}
	if err := authValidate.Struct(req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeValidation, "Validation failed", validationDetails(err), err)
		return
	}

	user, token, err := c.authService.Login(r.Context(), req.Phone, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, utils.ErrInvalidCredentials):
			utils.RespondErrorWithCode(w, http.StatusUnauthorized, utils.ErrCodeInvalidCredentials, "Invalid phone number or password", nil, err)
		case errors.Is(err, utils.ErrPhoneNotVerified):
			utils.RespondErrorWithCode(w, http.StatusForbidden, utils.ErrCodePhoneNotVerified, "Phone number is not verified", nil, err)
		default:
			utils.RespondErrorWithCode(w, http.StatusInternalServerError, utils.ErrCodeInternal, "Failed to log in", nil, err)
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dtos.LoginResponse{
		Phone: user.Phone,
		Token: token,
		User:  dtos.NewUserResponse(user),
	})
}

// POST /api/v1/auth/verify-otp
func (c *AuthController) VerifyOTPHandler(w http.ResponseWriter, r *http.Request) {
	var req dtos.VerifyOTPRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid JSON payload", nil, err)
		return
	}
	if err := authValidate.Struct(req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeValidation, "Validation failed", validationDetails(err), err)
		return
	}

	user, token, err := c.authService.VerifyOTP(r.Context(), req.Phone, req.OTP)
	if err != nil {
		switch {
		case errors.Is(err, utils.ErrNotFound):
			utils.RespondErrorWithCode(w, http.StatusNotFound, utils.ErrCodeNotFound, "No user found for this phone number", nil, err)
		case errors.Is(err, utils.ErrInvalidOTP):
			utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidOTP, "Invalid or expired OTP", nil, err)
		default:
			utils.RespondErrorWithCode(w, http.StatusInternalServerError, utils.ErrCodeInternal, "Failed to verify OTP", nil, err)
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dtos.VerifyOTPResponse{
		Message: "Phone number verified",
		Token:   token,
		User:    dtos.NewUserResponse(user),
	})
}

// POST /api/v1/auth/resend-otp
func (c *AuthController) ResendOTPHandler(w http.ResponseWriter, r *http.Request) {
	var req dtos.ResendOTPRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid JSON payload", nil, err)
		return
	}
	if err := authValidate.Struct(req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeValidation, "Validation failed", validationDetails(err), err)
		return
	}

	if err := c.authService.ResendOTP(r.Context(), req.Phone); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			utils.RespondErrorWithCode(w, http.StatusNotFound, utils.ErrCodeNotFound, "No user found for this phone number", nil, err)
			return
		}
		utils.RespondErrorWithCode(w, http.StatusInternalServerError, utils.ErrCodeInternal, "Failed to resend OTP", nil, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dtos.ResendOTPResponse{
		Message: "OTP sent to your phone number",
		Phone:   req.Phone,
	})
}

// GET /api/v1/auth/user
func (c *AuthController) GetUserHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireCallerID(w, r)
	if !ok {
		return
	}

	user, err := c.authService.GetProfile(r.Context(), userID)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			utils.RespondErrorWithCode(w, http.StatusNotFound, utils.ErrCodeNotFound, "No user found", nil, err)
			return
		}
		utils.RespondErrorWithCode(w, http.StatusInternalServerError, utils.ErrCodeInternal, "Failed to load profile", nil, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dtos.NewUserResponse(user))
}

// PATCH /api/v1/auth/user
//
// Accepts either a JSON body or multipart form data; multipart is used when
// the client also uploads a new profile picture.
func (c *AuthController) UpdateUserHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireCallerID(w, r)
	if !ok {
		return
	}

	var req dtos.UpdateProfileRequest
	var profilePic *string

	if isMultipart(r) {
		if err := r.ParseMultipartForm(32 << 20); err != nil {
			utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid multipart payload", nil, err)
			return
		}
		if v := r.FormValue("first_name"); v != "" {
			req.FirstName = &v
		}
		if v := r.FormValue("last_name"); v != "" {
			req.LastName = &v
		}
		if files := r.MultipartForm.File["profile_pic"]; len(files) > 0 {
			relDir := filepath.Join("profiles", userID.String())
			relPath, err := utils.SaveUpload(c.cfg.MediaRoot, relDir, files[0])
			if err != nil {
				utils.RespondErrorWithCode(w, http.StatusInternalServerError, utils.ErrCodeInternal, "Failed to store profile picture", nil, err)
				return
			}
			profilePic = &relPath
		}
	} else {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid JSON payload", nil, err)
			return
		}
	}
	if err := authValidate.Struct(req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeValidation, "Validation failed", validationDetails(err), err)
		return
	}

	user, err := c.authService.UpdateProfile(r.Context(), userID, req, profilePic)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			utils.RespondErrorWithCode(w, http.StatusNotFound, utils.ErrCodeNotFound, "No user found", nil, err)
			return
		}
		utils.RespondErrorWithCode(w, http.StatusInternalServerError, utils.ErrCodeInternal, "Failed to update profile", nil, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dtos.NewUserResponse(user))
}
