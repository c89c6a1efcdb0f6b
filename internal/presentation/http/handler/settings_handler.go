package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/sangkips/blisspos/internal/application/service"
	"github.com/sangkips/blisspos/internal/presentation/http/dto/request"
	"github.com/sangkips/blisspos/internal/presentation/http/dto/response"
)

// SettingsHandler handles store profile HTTP requests.
type SettingsHandler struct {
	settingsService *service.SettingsService
}

// NewSettingsHandler creates a new settings handler.
func NewSettingsHandler(settingsService *service.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

// Get handles retrieving the store profile.
func (h *SettingsHandler) Get(c *gin.Context) {
	profile, err := h.settingsService.GetProfile(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Settings retrieved successfully", profile)
}

// Update handles replacing the store profile.
func (h *SettingsHandler) Update(c *gin.Context) {
	var req request.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	profile, err := h.settingsService.UpdateProfile(c.Request.Context(), &service.UpdateProfileInput{
		Name:    req.Name,
		Address: req.Address,
		Phone:   req.Phone,
		Cashier: req.Cashier,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Settings updated successfully", profile)
}
