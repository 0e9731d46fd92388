package services

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/M-odou/forumassirou-sub000/internal/models"
	"github.com/M-odou/forumassirou-sub000/internal/store"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestStore(t *testing.T) store.Store {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Participant{}, &models.Setting{}))

	return store.NewGormStore(db)
}

var errStoreDown = errors.New("store unreachable")

// countFailingStore simulates a store whose participant count is unavailable.
type countFailingStore struct {
	store.Store
}

func (countFailingStore) CountParticipants() (int64, error) { return 0, errStoreDown }

// commitFailingStore simulates a store that reads fine but cannot commit a
// validation.
type commitFailingStore struct {
	store.Store
}

func (commitFailingStore) UpdateValidation(string, time.Time) error { return errStoreDown }

// idLookupFailingStore simulates an outage during the admin lookup by id.
type idLookupFailingStore struct {
	store.Store
}

func (idLookupFailingStore) FindByID(string) (*models.Participant, error) {
	return nil, errStoreDown
}

// brokenSettingsStore simulates unreachable settings.
type brokenSettingsStore struct {
	store.Store
}

func (brokenSettingsStore) GetSetting(string) (string, error) { return "", errStoreDown }

// racingStore makes another device win the commit race: just before the
// engine's conditional update runs, the participant gets validated.
type racingStore struct {
	store.Store
	id string
}

func (s racingStore) UpdateValidation(id string, at time.Time) error {
	_ = s.Store.UpdateValidation(s.id, at.Add(-time.Second))
	return s.Store.UpdateValidation(id, at)
}

// brokenPrimary simulates a remote store whose every call fails, for
// two-tier degradation tests.
type brokenPrimary struct{}

func (brokenPrimary) ListParticipants() ([]models.Participant, error) { return nil, errStoreDown }
func (brokenPrimary) CountParticipants() (int64, error)               { return 0, errStoreDown }
func (brokenPrimary) InsertParticipant(*models.Participant) error     { return errStoreDown }
func (brokenPrimary) DeleteParticipant(string) error                  { return errStoreDown }
func (brokenPrimary) UpdateValidation(string, time.Time) error        { return errStoreDown }
func (brokenPrimary) UpdateEmailStatus(string, string) error          { return errStoreDown }
func (brokenPrimary) FindByID(string) (*models.Participant, error)    { return nil, errStoreDown }
func (brokenPrimary) FindByToken(string) (*models.Participant, error) { return nil, errStoreDown }
func (brokenPrimary) FindByTicket(string) (*models.Participant, error) {
	return nil, errStoreDown
}
func (brokenPrimary) GetSetting(string) (string, error) { return "", errStoreDown }
func (brokenPrimary) SetSetting(string, string) error   { return errStoreDown }
