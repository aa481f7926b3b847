package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"localserve.backend/internal/domain/entities"
	domainerrors "localserve.backend/internal/domain/errors"
	"localserve.backend/internal/interfaces/http/response"
	"localserve.backend/internal/usecases"
)

// LocationHandler handles mock geocoding endpoints
type LocationHandler struct {
	locationUsecase *usecases.LocationUsecase
}

// NewLocationHandler creates a new location handler
func NewLocationHandler(locationUsecase *usecases.LocationUsecase) *LocationHandler {
	return &LocationHandler{locationUsecase: locationUsecase}
}

// Geocode resolves an address to coordinates
// POST /api/v1/locations/geocode
func (h *LocationHandler) Geocode(c *gin.Context) {
	var input entities.GeocodeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	response.Success(c, http.StatusOK, h.locationUsecase.Geocode(c.Request.Context(), &input))
}

// ReverseGeocode resolves coordinates to an address
// POST /api/v1/locations/reverse-geocode
func (h *LocationHandler) ReverseGeocode(c *gin.Context) {
	var input entities.ReverseGeocodeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	response.Success(c, http.StatusOK, h.locationUsecase.ReverseGeocode(c.Request.Context(), &input))
}
