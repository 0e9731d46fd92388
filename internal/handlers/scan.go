package handlers

import (
	"net/http"

	"github.com/M-odou/forumassirou-sub000/internal/services"

	"github.com/gin-gonic/gin"
)

type ScanHandler struct {
	validation *services.ValidationService
}

func NewScanHandler(validation *services.ValidationService) *ScanHandler {
	return &ScanHandler{validation: validation}
}

type ScanRequest struct {
	Credential string `json:"credential" binding:"required" example:"FORUM-SEC-2026-0001"`
	Mode       string `json:"mode" binding:"omitempty,oneof=scan manual" example:"scan"`
}

// Scan godoc
// @Summary      Validate a presented credential
// @Description  Resolves a QR token or ticket number and applies the single-use check. Always returns 200; the outcome field carries the result.
// @Tags         scan
// @Accept       json
// @Produce      json
// @Param        X-Scan-API-Key header string true "Scan device key"
// @Param        request body ScanRequest true "Presented credential"
// @Success      200 {object} services.ScanResult
// @Failure      400 {object} ErrorResponse
// @Router       /api/v1/scan [post]
func (h *ScanHandler) Scan(c *gin.Context) {
	var req ScanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	mode := req.Mode
	if mode == "" {
		mode = services.ModeScan
	}

	c.JSON(http.StatusOK, h.validation.Validate(req.Credential, mode))
}
