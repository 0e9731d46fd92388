package services

import (
	"strconv"

	"github.com/M-odou/forumassirou-sub000/internal/models"
	"github.com/M-odou/forumassirou-sub000/internal/store"
)

// SettingsService reads and writes the two feature gates. Reads go to the
// store every time so an admin toggle takes effect on the next request, and
// default to true (permissive) when the entry is absent or unreadable.
type SettingsService struct {
	store store.Store
}

func NewSettingsService(st store.Store) *SettingsService {
	return &SettingsService{store: st}
}

func (s *SettingsService) RegistrationActive() bool {
	return s.boolSetting(models.SettingRegistrationActive)
}

func (s *SettingsService) ScanSystemActive() bool {
	return s.boolSetting(models.SettingScanSystemActive)
}

func (s *SettingsService) SetRegistrationActive(active bool) error {
	return s.store.SetSetting(models.SettingRegistrationActive, strconv.FormatBool(active))
}

func (s *SettingsService) SetScanSystemActive(active bool) error {
	return s.store.SetSetting(models.SettingScanSystemActive, strconv.FormatBool(active))
}

func (s *SettingsService) boolSetting(key string) bool {
	value, err := s.store.GetSetting(key)
	if err != nil || value == "" {
		return true
	}
	active, err := strconv.ParseBool(value)
	if err != nil {
		return true
	}
	return active
}
