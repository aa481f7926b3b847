package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"localserve.backend/internal/domain/entities"
	domainerrors "localserve.backend/internal/domain/errors"
	"localserve.backend/internal/interfaces/http/middleware"
	"localserve.backend/internal/interfaces/http/response"
	"localserve.backend/internal/usecases"
)

// PaymentHandler handles mock payment endpoints
type PaymentHandler struct {
	paymentUsecase *usecases.PaymentUsecase
}

// NewPaymentHandler creates a new payment handler
func NewPaymentHandler(paymentUsecase *usecases.PaymentUsecase) *PaymentHandler {
	return &PaymentHandler{paymentUsecase: paymentUsecase}
}

// CreateOrder records a pending payment order
// POST /api/v1/payments/create-order
func (h *PaymentHandler) CreateOrder(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	var input entities.CreatePaymentOrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	resp, err := h.paymentUsecase.CreateOrder(c.Request.Context(), userID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp)
}

// Verify settles a payment and its booking
// POST /api/v1/payments/verify
func (h *PaymentHandler) Verify(c *gin.Context) {
	var input entities.VerifyPaymentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	if err := h.paymentUsecase.Verify(c.Request.Context(), &input); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message": "Payment verified",
		"status":  entities.PaymentStatusCompleted,
	})
}
