package handlers

import (
	"net/http"

	"github.com/M-odou/forumassirou-sub000/internal/store"

	"github.com/gin-gonic/gin"
)

type TicketHandler struct {
	store store.Store
}

func NewTicketHandler(st store.Store) *TicketHandler {
	return &TicketHandler{store: st}
}

// TicketView is the public badge payload. The scan token is deliberately
// absent: the ticket page renders it into the QR code from the registration
// response, not from this endpoint.
type TicketView struct {
	NumeroTicket string `json:"numero_ticket"`
	Prenom       string `json:"prenom"`
	Nom          string `json:"nom"`
	Organisation string `json:"organisation,omitempty"`
	ScanValide   bool   `json:"scan_valide"`
}

// Get godoc
// @Summary      Badge view data
// @Description  Public data for rendering a badge from its ticket number
// @Tags         tickets
// @Produce      json
// @Param        numero path string true "Ticket number"
// @Success      200 {object} TicketView
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/tickets/{numero} [get]
func (h *TicketHandler) Get(c *gin.Context) {
	participant, err := h.store.FindByTicket(c.Param("numero"))
	if err != nil || participant == nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "billet introuvable"})
		return
	}

	c.JSON(http.StatusOK, TicketView{
		NumeroTicket: participant.NumeroTicket,
		Prenom:       participant.Prenom,
		Nom:          participant.Nom,
		Organisation: participant.Organisation,
		ScanValide:   participant.ScanValide,
	})
}
