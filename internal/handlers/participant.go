package handlers

import (
	"net/http"
	"strings"

	"github.com/M-odou/forumassirou-sub000/internal/models"
	"github.com/M-odou/forumassirou-sub000/internal/services"
	"github.com/M-odou/forumassirou-sub000/internal/store"

	"github.com/gin-gonic/gin"
)

type ParticipantHandler struct {
	store      store.Store
	validation *services.ValidationService
}

func NewParticipantHandler(st store.Store, validation *services.ValidationService) *ParticipantHandler {
	return &ParticipantHandler{store: st, validation: validation}
}

// List godoc
// @Summary      List participants
// @Description  Newest registration first; optional q filters on name, email, organisation and ticket number
// @Tags         participants
// @Produce      json
// @Security     BearerAuth
// @Param        q query string false "Search term"
// @Success      200 {array} models.Participant
// @Router       /api/v1/participants [get]
func (h *ParticipantHandler) List(c *gin.Context) {
	participants, err := h.store.ListParticipants()
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	if q := strings.TrimSpace(c.Query("q")); q != "" {
		participants = filterParticipants(participants, q)
	}

	c.JSON(http.StatusOK, participants)
}

func filterParticipants(participants []models.Participant, q string) []models.Participant {
	q = strings.ToLower(q)
	matched := make([]models.Participant, 0, len(participants))
	for _, p := range participants {
		haystack := strings.ToLower(strings.Join([]string{
			p.Prenom, p.Nom, p.Email, p.Organisation, p.NumeroTicket,
		}, " "))
		if strings.Contains(haystack, q) {
			matched = append(matched, p)
		}
	}
	return matched
}

// Delete godoc
// @Summary      Delete a participant
// @Description  Hard delete by id, administrative action only
// @Tags         participants
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Participant ID"
// @Success      200 {object} MessageResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/participants/{id} [delete]
func (h *ParticipantHandler) Delete(c *gin.Context) {
	if err := h.store.DeleteParticipant(c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "participant deleted"})
}

// Validate godoc
// @Summary      Validate a participant from the dashboard
// @Description  Administrative validation by id; keeps the single-use check but bypasses the scan gate
// @Tags         participants
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Participant ID"
// @Success      200 {object} services.ScanResult
// @Router       /api/v1/participants/{id}/validate [post]
func (h *ParticipantHandler) Validate(c *gin.Context) {
	c.JSON(http.StatusOK, h.validation.ValidateByID(c.Param("id")))
}
