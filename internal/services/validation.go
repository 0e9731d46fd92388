package services

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/M-odou/forumassirou-sub000/internal/models"
	"github.com/M-odou/forumassirou-sub000/internal/store"
)

// ScanOutcome is the terminal state of one validation attempt. Every attempt
// ends in exactly one outcome with a distinct message, so gate staff can tell
// apart "let in", "already used", "turn away" and "retry".
type ScanOutcome string

const (
	OutcomeValidated        ScanOutcome = "validated"
	OutcomeAlreadyValidated ScanOutcome = "already_validated"
	OutcomeNotFound         ScanOutcome = "not_found"
	OutcomeSystemDisabled   ScanOutcome = "system_disabled"
	OutcomeError            ScanOutcome = "error"
)

// Entry modes only change the not-found wording; resolution is identical.
const (
	ModeScan   = "scan"
	ModeManual = "manual"
)

type ScanResult struct {
	Outcome     ScanOutcome         `json:"outcome"`
	Message     string              `json:"message"`
	Participant *models.Participant `json:"participant,omitempty"`
	ValidatedAt *time.Time          `json:"validated_at,omitempty"`
}

type resolver func(credential string) (*models.Participant, error)

// ValidationService resolves a presented credential to one participant and
// applies the single-use check.
type ValidationService struct {
	store     store.Store
	settings  *SettingsService
	resolvers []resolver
}

func NewValidationService(st store.Store, settings *SettingsService) *ValidationService {
	return &ValidationService{
		store:    st,
		settings: settings,
		// Token lookup always runs first: a token is never printed on the
		// badge, so a match is stronger proof than a readable ticket number.
		resolvers: []resolver{st.FindByToken, st.FindByTicket},
	}
}

// Validate runs one best-effort validation attempt. It never returns an
// error; connectivity problems surface as OutcomeError and the caller offers
// a manual retry.
func (s *ValidationService) Validate(credential, mode string) ScanResult {
	credential = strings.TrimSpace(credential)
	if credential == "" {
		return s.notFound(mode)
	}

	var participant *models.Participant
	for _, resolve := range s.resolvers {
		found, err := resolve(credential)
		if err != nil {
			log.Printf("validation: lookup failed: %v", err)
			continue
		}
		if found != nil {
			participant = found
			break
		}
	}
	if participant == nil {
		return s.notFound(mode)
	}

	if participant.ScanValide {
		return alreadyValidated(participant)
	}

	if !s.settings.ScanSystemActive() {
		return ScanResult{
			Outcome:     OutcomeSystemDisabled,
			Message:     "Système de validation désactivé",
			Participant: participant,
		}
	}

	return s.commit(participant)
}

// ValidateByID is the administrative validation from the dashboard. It skips
// the scan gate (an admin override is deliberate) but keeps the single-use
// check.
func (s *ValidationService) ValidateByID(id string) ScanResult {
	participant, err := s.store.FindByID(id)
	if err != nil {
		log.Printf("validation: lookup by id failed: %v", err)
		return ScanResult{
			Outcome: OutcomeError,
			Message: "Erreur technique lors de la validation",
		}
	}
	if participant == nil {
		return ScanResult{Outcome: OutcomeNotFound, Message: "Participant introuvable"}
	}
	if participant.ScanValide {
		return alreadyValidated(participant)
	}
	return s.commit(participant)
}

func (s *ValidationService) commit(participant *models.Participant) ScanResult {
	now := time.Now()
	if err := s.store.UpdateValidation(participant.ID, now); err != nil {
		if errors.Is(err, store.ErrNotApplied) {
			// Another device won the race between our read and the commit.
			if current, ferr := s.store.FindByID(participant.ID); ferr == nil && current != nil && current.ScanValide {
				return alreadyValidated(current)
			}
		}
		log.Printf("validation: commit failed for %s: %v", participant.NumeroTicket, err)
		return ScanResult{
			Outcome: OutcomeError,
			Message: "Erreur technique lors de la validation",
		}
	}

	participant.ScanValide = true
	participant.DateValidation = &now
	return ScanResult{
		Outcome:     OutcomeValidated,
		Message:     "Badge validé, accès autorisé",
		Participant: participant,
		ValidatedAt: &now,
	}
}

func (s *ValidationService) notFound(mode string) ScanResult {
	message := "Badge non reconnu"
	if mode == ModeManual {
		message = "Aucun badge avec ce numéro"
	}
	return ScanResult{Outcome: OutcomeNotFound, Message: message}
}

func alreadyValidated(participant *models.Participant) ScanResult {
	return ScanResult{
		Outcome:     OutcomeAlreadyValidated,
		Message:     "Badge déjà validé",
		Participant: participant,
		ValidatedAt: participant.DateValidation,
	}
}
