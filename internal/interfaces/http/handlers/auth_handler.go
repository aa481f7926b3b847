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

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	authUsecase *usecases.AuthUsecase
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authUsecase *usecases.AuthUsecase) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
	}
}

// Register handles user registration
// POST /api/v1/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var input entities.RegisterInput

	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	user, otpCode, err := h.authUsecase.Register(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	// The code goes straight back to the caller: SMS and email delivery
	// are out of scope and clients display it in non-production builds.
	response.Success(c, http.StatusCreated, gin.H{
		"message": "Registration successful. Verify with the OTP to activate your account.",
		"otp":     otpCode,
		"user": gin.H{
			"id":    user.ID,
			"email": user.Email,
			"phone": user.Phone,
			"name":  user.Name,
			"role":  user.Role,
		},
	})
}

// VerifyOTP handles account verification
// POST /api/v1/auth/verify-otp
func (h *AuthHandler) VerifyOTP(c *gin.Context) {
	var input entities.OTPVerifyInput

	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	if err := h.authUsecase.VerifyOTP(c.Request.Context(), &input); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message": "Verification successful",
	})
}

// Login handles dual-mode login
// POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var input entities.LoginInput

	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	authResponse, err := h.authUsecase.Login(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, authResponse)
}

// RequestChangePin issues an OTP for the PIN change flow
// POST /api/v1/auth/request-change-pin
func (h *AuthHandler) RequestChangePin(c *gin.Context) {
	var input struct {
		EmailOrPhone string `json:"emailOrPhone" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	otpCode, err := h.authUsecase.RequestChangePin(c.Request.Context(), input.EmailOrPhone)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message": "OTP issued",
		"otp":     otpCode,
	})
}

// ChangePin replaces the login PIN after OTP validation
// POST /api/v1/auth/change-pin
func (h *AuthHandler) ChangePin(c *gin.Context) {
	var input entities.ChangePinInput

	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	if err := h.authUsecase.ChangePin(c.Request.Context(), &input); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message": "PIN updated successfully",
	})
}

// GetProfile returns the authenticated user's profile
// GET /api/v1/auth/me
func (h *AuthHandler) GetProfile(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	user, err := h.authUsecase.GetProfile(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, user)
}

// UpdatePaymentDetails updates a provider's payout details
// PUT /api/v1/providers/payment-details
func (h *AuthHandler) UpdatePaymentDetails(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	var input entities.ProviderDetailsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	if err := h.authUsecase.UpdateProviderDetails(c.Request.Context(), userID, &input); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message": "Payment details updated",
	})
}
