package controllers

import (
	"net/http"

	"github.com/bhoomikart/backend/internal/dtos"
	"github.com/bhoomikart/backend/internal/services"
	"github.com/bhoomikart/backend/internal/utils"
)

type LocationController struct {
	locationService services.LocationService
}

func NewLocationController(locationService services.LocationService) *LocationController {
	return &LocationController{locationService: locationService}
}

// GET /api/v1/locations/states
func (c *LocationController) StatesHandler(w http.ResponseWriter, r *http.Request) {
	out, err := c.locationService.States(r.Context())
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusInternalServerError, utils.ErrCodeInternal, "Failed to load states", nil, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.StatesResponse{States: out})
}

// GET /api/v1/locations/districts?state=
func (c *LocationController) DistrictsHandler(w http.ResponseWriter, r *http.Request) {
	state, ok := requireParam(w, r, "state")
	if !ok {
		return
	}

	out, err := c.locationService.Districts(r.Context(), state)
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusInternalServerError, utils.ErrCodeInternal, "Failed to load districts", nil, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.DistrictsResponse{Districts: out})
}

// GET /api/v1/locations/sub_districts?state=&district=
func (c *LocationController) SubDistrictsHandler(w http.ResponseWriter, r *http.Request) {
	state, ok := requireParam(w, r, "state")
	if !ok {
		return
	}
	district, ok := requireParam(w, r, "district")
	if !ok {
		return
	}

	out, err := c.locationService.SubDistricts(r.Context(), state, district)
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusInternalServerError, utils.ErrCodeInternal, "Failed to load sub-districts", nil, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.SubDistrictsResponse{SubDistricts: out})
}

// GET /api/v1/locations/villages?state=&district=&sub_district=
func (c *LocationController) VillagesHandler(w http.ResponseWriter, r *http.Request) {
	state, ok := requireParam(w, r, "state")
	if !ok {
		return
	}
	district, ok := requireParam(w, r, "district")
	if !ok {
		return
	}
	subDistrict, ok := requireParam(w, r, "sub_district")
	if !ok {
		return
	}

	out, err := c.locationService.Villages(r.Context(), state, district, subDistrict)
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusInternalServerError, utils.ErrCodeInternal, "Failed to load villages", nil, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.VillagesResponse{Villages: out})
}

// GET /api/v1/locations/pin_codes?state=&district=&sub_district=&village=
// All parameters optional; each one supplied narrows the result.
func (c *LocationController) PinCodesHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	out, err := c.locationService.PinCodes(r.Context(),
		q.Get("state"), q.Get("district"), q.Get("sub_district"), q.Get("village"))
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusInternalServerError, utils.ErrCodeInternal, "Failed to load pin codes", nil, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.PinCodesResponse{PinCodes: out})
}

func requireParam(w http.ResponseWriter, r *http.Request, name string) (string, bool) {
	v := r.URL.Query().Get(name)
	if v == "" {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeValidation,
			"Missing required query parameter: "+name, nil)
		return "", false
	}
	return v, true
}
