package handlers

import (
	"net/http"

	"github.com/M-odou/forumassirou-sub000/internal/services"

	"github.com/gin-gonic/gin"
)

type SettingsHandler struct {
	settings *services.SettingsService
}

func NewSettingsHandler(settings *services.SettingsService) *SettingsHandler {
	return &SettingsHandler{settings: settings}
}

type SettingsResponse struct {
	RegistrationActive bool `json:"registration_active"`
	ScanSystemActive   bool `json:"scan_system_active"`
}

type UpdateSettingsRequest struct {
	RegistrationActive *bool `json:"registration_active"`
	ScanSystemActive   *bool `json:"scan_system_active"`
}

// GetSettings godoc
// @Summary      Get feature gates
// @Description  Current state of the registration and scan switches
// @Tags         settings
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} SettingsResponse
// @Router       /api/v1/settings [get]
func (h *SettingsHandler) GetSettings(c *gin.Context) {
	c.JSON(http.StatusOK, SettingsResponse{
		RegistrationActive: h.settings.RegistrationActive(),
		ScanSystemActive:   h.settings.ScanSystemActive(),
	})
}

// UpdateSettings godoc
// @Summary      Update feature gates
// @Description  Toggle the registration and scan switches; omitted fields are left unchanged
// @Tags         settings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body UpdateSettingsRequest true "Gates to change"
// @Success      200 {object} SettingsResponse
// @Failure      400 {object} ErrorResponse
// @Router       /api/v1/settings [put]
func (h *SettingsHandler) UpdateSettings(c *gin.Context) {
	var req UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	if req.RegistrationActive != nil {
		if err := h.settings.SetRegistrationActive(*req.RegistrationActive); err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
	}
	if req.ScanSystemActive != nil {
		if err := h.settings.SetScanSystemActive(*req.ScanSystemActive); err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
	}

	c.JSON(http.StatusOK, SettingsResponse{
		RegistrationActive: h.settings.RegistrationActive(),
		ScanSystemActive:   h.settings.ScanSystemActive(),
	})
}
