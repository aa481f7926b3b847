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

// ServiceHandler handles catalog and discovery endpoints
type ServiceHandler struct {
	serviceUsecase *usecases.ServiceUsecase
}

// NewServiceHandler creates a new service handler
func NewServiceHandler(serviceUsecase *usecases.ServiceUsecase) *ServiceHandler {
	return &ServiceHandler{serviceUsecase: serviceUsecase}
}

// Create adds a listing for the calling provider
// POST /api/v1/providers/services
func (h *ServiceHandler) Create(c *gin.Context) {
	providerID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	var input entities.CreateServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	service, err := h.serviceUsecase.Create(c.Request.Context(), providerID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, service)
}

// ListOwn lists the calling provider's listings
// GET /api/v1/providers/services
func (h *ServiceHandler) ListOwn(c *gin.Context) {
	providerID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	services, err := h.serviceUsecase.ListOwn(c.Request.Context(), providerID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"services": services})
}

// Update applies a partial update to an owned listing
// PUT /api/v1/providers/services/:id
func (h *ServiceHandler) Update(c *gin.Context) {
	providerID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	serviceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid service id"))
		return
	}

	var input entities.UpdateServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	service, err := h.serviceUsecase.Update(c.Request.Context(), providerID, serviceID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, service)
}

// Delete removes an owned listing
// DELETE /api/v1/providers/services/:id
func (h *ServiceHandler) Delete(c *gin.Context) {
	providerID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	serviceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid service id"))
		return
	}

	if err := h.serviceUsecase.Delete(c.Request.Context(), providerID, serviceID); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Service deleted"})
}

// List runs public discovery with filters
// GET /api/v1/services
func (h *ServiceHandler) List(c *gin.Context) {
	var filter entities.ServiceFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	result, err := h.serviceUsecase.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, result)
}

// Get returns one listing
// GET /api/v1/services/:id
func (h *ServiceHandler) Get(c *gin.Context) {
	serviceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid service id"))
		return
	}

	service, err := h.serviceUsecase.Get(c.Request.Context(), serviceID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, service)
}
