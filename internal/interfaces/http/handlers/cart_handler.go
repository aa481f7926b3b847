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

// CartHandler handles cart endpoints
type CartHandler struct {
	cartUsecase *usecases.CartUsecase
}

// NewCartHandler creates a new cart handler
func NewCartHandler(cartUsecase *usecases.CartUsecase) *CartHandler {
	return &CartHandler{cartUsecase: cartUsecase}
}

// Add puts a service in the user's cart
// POST /api/v1/cart
func (h *CartHandler) Add(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	var input entities.AddCartItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	item, err := h.cartUsecase.Add(c.Request.Context(), userID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, item)
}

// List returns the user's cart
// GET /api/v1/cart
func (h *CartHandler) List(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	items, err := h.cartUsecase.List(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"items": items})
}

// Remove deletes a cart entry
// DELETE /api/v1/cart/:id
func (h *CartHandler) Remove(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid cart item id"))
		return
	}

	if err := h.cartUsecase.Remove(c.Request.Context(), userID, itemID); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Cart item removed"})
}
