package controllers

import (
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/bhoomikart/backend/internal/middleware"
	"github.com/bhoomikart/backend/internal/utils"
)

// callerID returns the authenticated user's ID, or nil when the request is
// anonymous (optional-auth routes).
func callerID(r *http.Request) *uuid.UUID {
	v := r.Context().Value(middleware.ContextKeyUserID)
	if v == nil {
		return nil
	}
	s, ok := v.(string)
	if !ok {
		return nil
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return nil
	}
	return &id
}

// requireCallerID is callerID for protected routes; it writes the 401 itself.
func requireCallerID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id := callerID(r)
	if id == nil {
		utils.RespondErrorWithCode(w, http.StatusUnauthorized, utils.ErrCodeUnauthorized, "Missing userID in context", nil)
		return uuid.Nil, false
	}
	return *id, true
}

func isMultipart(r *http.Request) bool {
	return strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data")
}

// validationDetails flattens validator errors into a field -> message map for
// the error response details.
func validationDetails(err error) map[string]string {
	out := map[string]string{}
	if vErrs, ok := err.(validator.ValidationErrors); ok {
		for _, fe := range vErrs {
			out[fe.Field()] = "failed on '" + fe.Tag() + "' validation"
		}
	}
	return out
}
