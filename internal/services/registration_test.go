package services

import (
	"testing"
	"time"

	"github.com/M-odou/forumassirou-sub000/internal/models"
	"github.com/M-odou/forumassirou-sub000/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRegistrationService(st store.Store) (*RegistrationService, *SettingsService) {
	settings := NewSettingsService(st)
	return NewRegistrationService(st, NewTicketService(st), settings, nil), settings
}

func TestRegisterAssignsIdentifiers(t *testing.T) {
	st := newTestStore(t)
	registration, _ := newRegistrationService(st)

	p, err := registration.Register(RegistrationInput{
		Prenom:       "Aïssatou",
		Nom:          "Diop",
		Email:        "aissatou.diop@example.sn",
		Organisation: "Ministère du Numérique",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, p.ID)
	assert.NotEmpty(t, p.NumeroTicket)
	assert.Len(t, p.Token, 64)
	assert.False(t, p.ScanValide)
	assert.Nil(t, p.DateValidation)
	assert.Equal(t, models.EmailStatusPending, p.StatutEmail)
	assert.WithinDuration(t, time.Now(), p.CreatedAt, time.Minute)

	stored, err := st.FindByTicket(p.NumeroTicket)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, p.ID, stored.ID)
}

func TestRegisterBlockedWhenGateClosed(t *testing.T) {
	st := newTestStore(t)
	registration, settings := newRegistrationService(st)

	require.NoError(t, settings.SetRegistrationActive(false))

	_, err := registration.Register(RegistrationInput{
		Prenom: "Aïssatou",
		Nom:    "Diop",
		Email:  "aissatou.diop@example.sn",
	})
	assert.ErrorIs(t, err, ErrRegistrationClosed)

	// The gate is checked before any write.
	count, cerr := st.CountParticipants()
	require.NoError(t, cerr)
	assert.Zero(t, count)
}

func TestRegisterRejectsInvalidInput(t *testing.T) {
	st := newTestStore(t)
	registration, _ := newRegistrationService(st)

	cases := []RegistrationInput{
		{Prenom: "", Nom: "Diop", Email: "a@b.sn"},
		{Prenom: "Aïssatou", Nom: "   ", Email: "a@b.sn"},
		{Prenom: "Aïssatou", Nom: "Diop", Email: ""},
		{Prenom: "Aïssatou", Nom: "Diop", Email: "not-an-email"},
	}
	for _, input := range cases {
		_, err := registration.Register(input)
		assert.ErrorIs(t, err, ErrInvalidInput)
	}

	count, err := st.CountParticipants()
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestRegisterStillWorksOnLocalFallback(t *testing.T) {
	// Primary down from the start: the two-tier store routes the insert to
	// the fallback and registration reports success.
	fallback := newTestStore(t)
	tt := store.NewTwoTier(brokenPrimary{}, fallback)
	registration, _ := newRegistrationService(tt)

	p, err := registration.Register(RegistrationInput{
		Prenom: "Aïssatou",
		Nom:    "Diop",
		Email:  "aissatou.diop@example.sn",
	})
	require.NoError(t, err)

	stored, err := fallback.FindByTicket(p.NumeroTicket)
	require.NoError(t, err)
	require.NotNil(t, stored)
}
