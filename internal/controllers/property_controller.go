package controllers

import (
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/bhoomikart/backend/internal/constants"
	"github.com/bhoomikart/backend/internal/dtos"
	"github.com/bhoomikart/backend/internal/services"
	"github.com/bhoomikart/backend/internal/utils"
)

type PropertyController struct {
	propertyService  services.PropertyService
	shortlistService services.ShortlistService
}

var propertyValidate = validator.New()

func NewPropertyController(propertyService services.PropertyService, shortlistService services.ShortlistService) *PropertyController {
	return &PropertyController{
		propertyService:  propertyService,
		shortlistService: shortlistService,
	}
}

// GET /api/v1/properties
func (c *PropertyController) ListHandler(w http.ResponseWriter, r *http.Request) {
	f := dtos.ParsePropertyFilter(r.URL.Query(), callerID(r))

	resp, err := c.propertyService.List(r.Context(), f)
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusInternalServerError, utils.ErrCodeInternal, "Failed to list properties", nil, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// POST /api/v1/properties
//
// Accepts multipart form data (listing fields plus "images" files) or a plain
// JSON body when there is nothing to upload.
func (c *PropertyController) CreateHandler(w http.ResponseWriter, r *http.Request) {
	sellerID, ok := requireCallerID(w, r)
	if !ok {
		return
	}

	var req dtos.CreatePropertyRequest
	var images []*multipart.FileHeader

	if isMultipart(r) {
		if err := r.ParseMultipartForm(64 << 20); err != nil {
			utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid multipart payload", nil, err)
			return
		}
		parsed, err := parseCreateForm(r)
		if err != nil {
			utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, err.Error(), nil, err)
			return
		}
		req = *parsed
		images = r.MultipartForm.File["images"]
	} else {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid JSON payload", nil, err)
			return
		}
	}
	if err := propertyValidate.Struct(req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeValidation, "Validation failed", validationDetails(err), err)
		return
	}
	if !utils.ValidatePinCode(req.PinCode) {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeValidation, "Invalid PIN code", nil)
		return
	}

	resp, err := c.propertyService.Create(r.Context(), sellerID, req, images)
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusInternalServerError, utils.ErrCodeInternal, "Failed to create property", nil, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, resp)
}

// GET /api/v1/properties/{id}
func (c *PropertyController) GetHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	resp, err := c.propertyService.Get(r.Context(), id, callerID(r))
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			utils.RespondErrorWithCode(w, http.StatusNotFound, utils.ErrCodeNotFound, "Property not found", nil, err)
			return
		}
		utils.RespondErrorWithCode(w, http.StatusInternalServerError, utils.ErrCodeInternal, "Failed to load property", nil, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// PATCH /api/v1/properties/{id}
func (c *PropertyController) UpdateHandler(w http.ResponseWriter, r *http.Request) {
	callerUID, ok := requireCallerID(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req dtos.UpdatePropertyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid JSON payload", nil, err)
		return
	}
	if err := propertyValidate.Struct(req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeValidation, "Validation failed", validationDetails(err), err)
		return
	}
	if hasPartialLocationTuple(&req) {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeValidation,
			"Changing the location requires state, district, sub_district, village and pin_code together", nil)
		return
	}
	if req.PinCode != nil && !utils.ValidatePinCode(*req.PinCode) {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeValidation, "Invalid PIN code", nil)
		return
	}

	resp, err := c.propertyService.Update(r.Context(), callerUID, id, req)
	if err != nil {
		c.respondPropertyError(w, err, "Failed to update property")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// DELETE /api/v1/properties/{id}
func (c *PropertyController) DeleteHandler(w http.ResponseWriter, r *http.Request) {
	callerUID, ok := requireCallerID(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := c.propertyService.Delete(r.Context(), callerUID, id); err != nil {
		c.respondPropertyError(w, err, "Failed to delete property")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// POST /api/v1/properties/{id}/shortlist
func (c *PropertyController) ShortlistHandler(w http.ResponseWriter, r *http.Request) {
	buyerID, ok := requireCallerID(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := c.shortlistService.Add(r.Context(), buyerID, id); err != nil {
		c.respondPropertyError(w, err, "Failed to shortlist property")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dtos.ShortlistStatusResponse{Status: "property shortlisted"})
}

// DELETE /api/v1/properties/{id}/remove_shortlist
func (c *PropertyController) RemoveShortlistHandler(w http.ResponseWriter, r *http.Request) {
	buyerID, ok := requireCallerID(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := c.shortlistService.Remove(r.Context(), buyerID, id); err != nil {
		c.respondPropertyError(w, err, "Failed to remove property from shortlist")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GET /api/v1/properties/shortlisted
func (c *PropertyController) ShortlistedHandler(w http.ResponseWriter, r *http.Request) {
	buyerID, ok := requireCallerID(w, r)
	if !ok {
		return
	}

	page, pageSize := 1, constants.DefaultPageSize
	if v, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil && v > 0 {
		page = v
	}
	if v, err := strconv.Atoi(r.URL.Query().Get("page_size")); err == nil && v > 0 {
		if v > constants.MaxPageSize {
			v = constants.MaxPageSize
		}
		pageSize = v
	}

	resp, err := c.shortlistService.List(r.Context(), buyerID, page, pageSize)
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusInternalServerError, utils.ErrCodeInternal, "Failed to list shortlisted properties", nil, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

func (c *PropertyController) respondPropertyError(w http.ResponseWriter, err error, internalMsg string) {
	switch {
	case errors.Is(err, utils.ErrNotFound):
		utils.RespondErrorWithCode(w, http.StatusNotFound, utils.ErrCodeNotFound, "Property not found", nil, err)
	case errors.Is(err, utils.ErrForbidden):
		utils.RespondErrorWithCode(w, http.StatusForbidden, utils.ErrCodeForbidden, "You do not own this property", nil, err)
	case errors.Is(err, utils.ErrRowVersionConflict):
		utils.RespondErrorWithCode(w, http.StatusConflict, utils.ErrCodeRowVersionConflict, "Property was modified concurrently, please retry", nil, err)
	default:
		utils.RespondErrorWithCode(w, http.StatusInternalServerError, utils.ErrCodeInternal, internalMsg, nil, err)
	}
}

func pathID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid property id", nil, err)
		return uuid.Nil, false
	}
	return id, true
}

// parseCreateForm maps multipart form fields onto the create request.
func parseCreateForm(r *http.Request) (*dtos.CreatePropertyRequest, error) {
	req := &dtos.CreatePropertyRequest{
		PropertyType: r.FormValue("property_type"),
		Title:        r.FormValue("title"),
		Description:  r.FormValue("description"),
		Address:      r.FormValue("address"),
		State:        r.FormValue("state"),
		District:     r.FormValue("district"),
		SubDistrict:  r.FormValue("sub_district"),
		Village:      r.FormValue("village"),
		PinCode:      r.FormValue("pin_code"),
	}

	var err error
	if req.Price, err = formFloat(r, "price"); err != nil {
		return nil, errors.New("price must be a number")
	}
	if req.Area, err = formFloat(r, "area"); err != nil {
		return nil, errors.New("area must be a number")
	}

	if v := r.FormValue("latitude"); v != "" {
		lat, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, errors.New("latitude must be a number")
		}
		req.Latitude = &lat
	}
	if v := r.FormValue("longitude"); v != "" {
		lon, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, errors.New("longitude must be a number")
		}
		req.Longitude = &lon
	}
	if v := r.FormValue("youtube_link"); v != "" {
		req.YoutubeLink = &v
	}
	return req, nil
}

func formFloat(r *http.Request, field string) (float64, error) {
	return strconv.ParseFloat(r.FormValue(field), 64)
}

// hasPartialLocationTuple flags updates that supply some but not all of the
// location hierarchy fields.
func hasPartialLocationTuple(req *dtos.UpdatePropertyRequest) bool {
	anySet := req.State != nil || req.District != nil || req.SubDistrict != nil ||
		req.Village != nil || req.PinCode != nil
	return anySet && !req.HasLocationTuple()
}
