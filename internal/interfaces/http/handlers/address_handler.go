package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"localserve.backend/internal/domain/entities"
	domainerrors "localserve.backend/internal/domain/errors"
	"localserve.backend/internal/interfaces/http/middleware"
	"localserve.backend/internal/interfaces/http/response"
	"localserve.backend/internal/usecases"
)

// AddressHandler handles address book endpoints
type AddressHandler struct {
	addressUsecase *usecases.AddressUsecase
}

// NewAddressHandler creates a new address handler
func NewAddressHandler(addressUsecase *usecases.AddressUsecase) *AddressHandler {
	return &AddressHandler{addressUsecase: addressUsecase}
}

// Create saves a new address
// POST /api/v1/addresses
func (h *AddressHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	var input entities.CreateAddressInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	address, err := h.addressUsecase.Create(c.Request.Context(), userID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, address)
}

// List returns the user's saved addresses
// GET /api/v1/addresses
func (h *AddressHandler) List(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	addresses, err := h.addressUsecase.List(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"addresses": addresses})
}

// Delete removes an address
// DELETE /api/v1/addresses/:id
func (h *AddressHandler) Delete(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	addressID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid address id"))
		return
	}

	if err := h.addressUsecase.Delete(c.Request.Context(), userID, addressID); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Address deleted"})
}
