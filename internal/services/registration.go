package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/M-odou/forumassirou-sub000/internal/mail"
	"github.com/M-odou/forumassirou-sub000/internal/models"
	"github.com/M-odou/forumassirou-sub000/internal/store"

	"github.com/google/uuid"
)

// ErrRegistrationClosed is returned when the registration gate is off; no
// store write is attempted past this point.
var ErrRegistrationClosed = errors.New("les inscriptions sont fermées")

// ErrInvalidInput marks a malformed submission, caught before any store
// interaction.
var ErrInvalidInput = errors.New("invalid registration input")

type RegistrationInput struct {
	Prenom          string
	Nom             string
	Email           string
	Telephone       string
	Organisation    string
	Fonction        string
	SecteurActivite string
	AttentesForum   string
}

func (in *RegistrationInput) validate() error {
	if strings.TrimSpace(in.Prenom) == "" {
		return fmt.Errorf("%w: le prénom est requis", ErrInvalidInput)
	}
	if strings.TrimSpace(in.Nom) == "" {
		return fmt.Errorf("%w: le nom est requis", ErrInvalidInput)
	}
	email := strings.TrimSpace(in.Email)
	if email == "" || !strings.Contains(email, "@") {
		return fmt.Errorf("%w: adresse email invalide", ErrInvalidInput)
	}
	return nil
}

// RegistrationService creates participant records: gate check, identifier
// assignment, persistence, then the confirmation email.
type RegistrationService struct {
	store    store.Store
	tickets  *TicketService
	settings *SettingsService
	notifier *mail.Notifier
}

func NewRegistrationService(st store.Store, tickets *TicketService, settings *SettingsService, notifier *mail.Notifier) *RegistrationService {
	return &RegistrationService{
		store:    st,
		tickets:  tickets,
		settings: settings,
		notifier: notifier,
	}
}

func (s *RegistrationService) Register(input RegistrationInput) (*models.Participant, error) {
	if !s.settings.RegistrationActive() {
		return nil, ErrRegistrationClosed
	}
	if err := input.validate(); err != nil {
		return nil, err
	}

	participant := &models.Participant{
		ID:              uuid.NewString(),
		NumeroTicket:    s.tickets.NextTicketNumber(),
		Token:           s.tickets.NewScanToken(),
		Prenom:          strings.TrimSpace(input.Prenom),
		Nom:             strings.TrimSpace(input.Nom),
		Email:           strings.TrimSpace(input.Email),
		Telephone:       strings.TrimSpace(input.Telephone),
		Organisation:    strings.TrimSpace(input.Organisation),
		Fonction:        strings.TrimSpace(input.Fonction),
		SecteurActivite: strings.TrimSpace(input.SecteurActivite),
		AttentesForum:   strings.TrimSpace(input.AttentesForum),
		StatutEmail:     models.EmailStatusPending,
		CreatedAt:       time.Now(),
	}

	if err := s.store.InsertParticipant(participant); err != nil {
		return nil, fmt.Errorf("échec de l'enregistrement: %w", err)
	}

	s.notifier.ConfirmAsync(participant)

	return participant, nil
}
