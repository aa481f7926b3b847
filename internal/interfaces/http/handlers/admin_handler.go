package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"localserve.backend/internal/domain/entities"
	domainerrors "localserve.backend/internal/domain/errors"
	"localserve.backend/internal/interfaces/http/response"
	"localserve.backend/internal/usecases"
)

// AdminHandler handles admin-managed site settings
type AdminHandler struct {
	settingsUsecase *usecases.SettingsUsecase
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(settingsUsecase *usecases.SettingsUsecase) *AdminHandler {
	return &AdminHandler{settingsUsecase: settingsUsecase}
}

// GetSocialMedia returns the public social media links
// GET /api/v1/admin/social-media
func (h *AdminHandler) GetSocialMedia(c *gin.Context) {
	links, err := h.settingsUsecase.GetSocialMediaLinks(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, links)
}

// RequestOTP issues a code for a pending link change
// POST /api/v1/admin/request-otp
func (h *AdminHandler) RequestOTP(c *gin.Context) {
	var input struct {
		Platform string `json:"platform" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	otpCode, err := h.settingsUsecase.RequestUpdateOTP(c.Request.Context(), input.Platform)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message": "OTP issued",
		"otp":     otpCode,
	})
}

// UpdateSocialMedia upserts a link after OTP validation
// POST /api/v1/admin/social-media
func (h *AdminHandler) UpdateSocialMedia(c *gin.Context) {
	var input entities.UpdateSocialMediaInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	if err := h.settingsUsecase.UpdateSocialMediaLink(c.Request.Context(), &input); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message": "Social media link updated successfully",
	})
}
