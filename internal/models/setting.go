package models

import "time"

// Setting is one persisted key/value entry. The two recognized keys are the
// feature gates below; both default to true when the entry is absent.
type Setting struct {
	Key       string    `gorm:"primaryKey;size:50" json:"key"`
	Value     string    `gorm:"size:255;not null" json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

const (
	SettingRegistrationActive = "registration_active"
	SettingScanSystemActive   = "scan_system_active"
)
