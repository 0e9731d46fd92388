package models

import "time"

// Participant is one registration. NumeroTicket is the human-facing badge
// reference; Token is the opaque credential embedded in the QR payload and is
// never shown as the primary reference. Both are assigned once at creation.
type Participant struct {
	ID              string     `gorm:"primaryKey;size:36" json:"id"`
	NumeroTicket    string     `gorm:"size:30;uniqueIndex;not null" json:"numero_ticket"`
	Token           string     `gorm:"size:64;uniqueIndex;not null" json:"token"`
	Prenom          string     `gorm:"size:100;not null" json:"prenom"`
	Nom             string     `gorm:"size:100;not null" json:"nom"`
	Email           string     `gorm:"size:255;not null" json:"email"`
	Telephone       string     `gorm:"size:30" json:"telephone,omitempty"`
	Organisation    string     `gorm:"size:255" json:"organisation,omitempty"`
	Fonction        string     `gorm:"size:255" json:"fonction,omitempty"`
	SecteurActivite string     `gorm:"size:100" json:"secteur_activite,omitempty"`
	AttentesForum   string     `gorm:"type:text" json:"attentes_forum,omitempty"`
	ScanValide      bool       `gorm:"not null;default:false" json:"scan_valide"`
	DateValidation  *time.Time `json:"date_validation,omitempty"`
	StatutEmail     string     `gorm:"size:10;not null;default:'pending'" json:"statut_email"`
	CreatedAt       time.Time  `json:"created_at"`
}

const (
	EmailStatusPending = "pending"
	EmailStatusSent    = "sent"
	EmailStatusFailed  = "failed"
)
