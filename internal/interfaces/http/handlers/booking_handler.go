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

// BookingHandler handles booking lifecycle endpoints
type BookingHandler struct {
	bookingUsecase *usecases.BookingUsecase
}

// NewBookingHandler creates a new booking handler
func NewBookingHandler(bookingUsecase *usecases.BookingUsecase) *BookingHandler {
	return &BookingHandler{bookingUsecase: bookingUsecase}
}

// Create books a service for the authenticated user
// POST /api/v1/bookings
func (h *BookingHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	var input entities.CreateBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	resp, err := h.bookingUsecase.Create(c.Request.Context(), userID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp)
}

// List returns bookings scoped by the caller's role
// GET /api/v1/bookings
func (h *BookingHandler) List(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}
	role, _ := middleware.GetUserRole(c)

	bookings, err := h.bookingUsecase.List(c.Request.Context(), userID, entities.UserRole(role))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"bookings": bookings})
}

// Get returns one booking
// GET /api/v1/bookings/:id
func (h *BookingHandler) Get(c *gin.Context) {
	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid booking id"))
		return
	}

	booking, err := h.bookingUsecase.Get(c.Request.Context(), bookingID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, booking)
}

// UpdateStatus moves a booking to a new status
// PUT /api/v1/bookings/:id/status
func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid booking id"))
		return
	}

	var input entities.UpdateBookingStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	if err := h.bookingUsecase.UpdateStatus(c.Request.Context(), bookingID, entities.BookingStatus(input.Status)); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Booking status updated"})
}
