package handlers

import (
	"errors"
	"net/http"

	"github.com/M-odou/forumassirou-sub000/internal/services"

	"github.com/gin-gonic/gin"
)

type RegistrationHandler struct {
	registration *services.RegistrationService
	settings     *services.SettingsService
}

func NewRegistrationHandler(registration *services.RegistrationService, settings *services.SettingsService) *RegistrationHandler {
	return &RegistrationHandler{registration: registration, settings: settings}
}

type CreateRegistrationRequest struct {
	Prenom          string `json:"prenom" binding:"required,min=1,max=100" example:"Aïssatou"`
	Nom             string `json:"nom" binding:"required,min=1,max=100" example:"Diop"`
	Email           string `json:"email" binding:"required,email" example:"aissatou.diop@example.sn"`
	Telephone       string `json:"telephone" binding:"max=30" example:"+221771234567"`
	Organisation    string `json:"organisation" binding:"max=255" example:"Ministère du Numérique"`
	Fonction        string `json:"fonction" binding:"max=255" example:"RSSI"`
	SecteurActivite string `json:"secteur_activite" binding:"max=100" example:"Administration publique"`
	AttentesForum   string `json:"attentes_forum" example:"Échanger sur la cybersécurité"`
}

// Register godoc
// @Summary      Register a participant
// @Description  Public registration; assigns the ticket number and scan token
// @Tags         registrations
// @Accept       json
// @Produce      json
// @Param        request body CreateRegistrationRequest true "Registration data"
// @Success      201 {object} models.Participant
// @Failure      400 {object} ErrorResponse
// @Failure      403 {object} ErrorResponse
// @Router       /api/v1/registrations [post]
func (h *RegistrationHandler) Register(c *gin.Context) {
	var req CreateRegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	participant, err := h.registration.Register(services.RegistrationInput{
		Prenom:          req.Prenom,
		Nom:             req.Nom,
		Email:           req.Email,
		Telephone:       req.Telephone,
		Organisation:    req.Organisation,
		Fonction:        req.Fonction,
		SecteurActivite: req.SecteurActivite,
		AttentesForum:   req.AttentesForum,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrRegistrationClosed):
			c.JSON(http.StatusForbidden, ErrorResponse{Error: err.Error()})
		case errors.Is(err, services.ErrInvalidInput):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, participant)
}

// RegistrationOpen godoc
// @Summary      Registration gate state
// @Description  Tells the public form whether submissions are accepted
// @Tags         registrations
// @Produce      json
// @Success      200 {object} map[string]bool
// @Router       /api/v1/registrations/open [get]
func (h *RegistrationHandler) RegistrationOpen(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"open": h.settings.RegistrationActive()})
}
