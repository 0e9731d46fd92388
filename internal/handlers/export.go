package handlers

import (
	"encoding/csv"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Export godoc
// @Summary      Export participants as CSV
// @Description  Full registrant list for the admin dashboard
// @Tags         participants
// @Produce      text/csv
// @Security     BearerAuth
// @Success      200 {string} string "CSV content"
// @Router       /api/v1/participants/export [get]
func (h *ParticipantHandler) Export(c *gin.Context) {
	participants, err := h.store.ListParticipants()
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", `attachment; filename="participants.csv"`)

	w := csv.NewWriter(c.Writer)
	defer w.Flush()

	w.Write([]string{
		"numero_ticket", "prenom", "nom", "email", "telephone",
		"organisation", "fonction", "secteur_activite", "attentes_forum",
		"scan_valide", "date_validation", "statut_email", "created_at",
	})

	for _, p := range participants {
		validatedAt := ""
		if p.DateValidation != nil {
			validatedAt = p.DateValidation.Format(time.RFC3339)
		}
		scanValide := "non"
		if p.ScanValide {
			scanValide = "oui"
		}
		w.Write([]string{
			p.NumeroTicket, p.Prenom, p.Nom, p.Email, p.Telephone,
			p.Organisation, p.Fonction, p.SecteurActivite, p.AttentesForum,
			scanValide, validatedAt, p.StatutEmail,
			p.CreatedAt.Format(time.RFC3339),
		})
	}
}
