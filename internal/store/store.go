package store

import (
	"errors"
	"time"

	"github.com/M-odou/forumassirou-sub000/internal/models"

	"gorm.io/gorm"
)

// ErrNotApplied is returned by UpdateValidation when the conditional update
// matched no row: either the id is unknown or the participant was validated
// by a concurrent scan in the meantime. Callers re-read to tell the two apart.
var ErrNotApplied = errors.New("validation not applied")

// Store is the uniform persistence contract shared by the primary and the
// local fallback. FindByToken and FindByTicket return (nil, nil) when no
// record matches; an error means the store itself failed.
type Store interface {
	ListParticipants() ([]models.Participant, error)
	CountParticipants() (int64, error)
	InsertParticipant(p *models.Participant) error
	DeleteParticipant(id string) error
	UpdateValidation(id string, validatedAt time.Time) error
	UpdateEmailStatus(id, status string) error
	FindByID(id string) (*models.Participant, error)
	FindByToken(token string) (*models.Participant, error)
	FindByTicket(numeroTicket string) (*models.Participant, error)
	GetSetting(key string) (string, error)
	SetSetting(key, value string) error
}

type gormStore struct {
	db *gorm.DB
}

// NewGormStore wraps a gorm connection (postgres or sqlite) in the Store
// contract.
func NewGormStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

func (s *gormStore) ListParticipants() ([]models.Participant, error) {
	var participants []models.Participant
	if err := s.db.Order("created_at DESC").Find(&participants).Error; err != nil {
		return nil, err
	}
	return participants, nil
}

func (s *gormStore) CountParticipants() (int64, error) {
	var count int64
	if err := s.db.Model(&models.Participant{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (s *gormStore) InsertParticipant(p *models.Participant) error {
	return s.db.Create(p).Error
}

func (s *gormStore) DeleteParticipant(id string) error {
	res := s.db.Delete(&models.Participant{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return errors.New("participant not found")
	}
	return nil
}

// UpdateValidation flips scan_valide exactly once. The WHERE guard makes the
// commit conditional so a concurrent scan cannot overwrite the first
// validation timestamp.
func (s *gormStore) UpdateValidation(id string, validatedAt time.Time) error {
	res := s.db.Model(&models.Participant{}).
		Where("id = ? AND scan_valide = ?", id, false).
		Updates(map[string]interface{}{
			"scan_valide":     true,
			"date_validation": validatedAt,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotApplied
	}
	return nil
}

func (s *gormStore) UpdateEmailStatus(id, status string) error {
	res := s.db.Model(&models.Participant{}).
		Where("id = ?", id).
		Update("statut_email", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return errors.New("participant not found")
	}
	return nil
}

func (s *gormStore) FindByID(id string) (*models.Participant, error) {
	return s.findOne("id = ?", id)
}

func (s *gormStore) FindByToken(token string) (*models.Participant, error) {
	return s.findOne("token = ?", token)
}

func (s *gormStore) FindByTicket(numeroTicket string) (*models.Participant, error) {
	return s.findOne("numero_ticket = ?", numeroTicket)
}

func (s *gormStore) findOne(query string, arg interface{}) (*models.Participant, error) {
	var p models.Participant
	err := s.db.Where(query, arg).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *gormStore) GetSetting(key string) (string, error) {
	var setting models.Setting
	err := s.db.Where("key = ?", key).First(&setting).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return setting.Value, nil
}

func (s *gormStore) SetSetting(key, value string) error {
	res := s.db.Model(&models.Setting{}).Where("key = ?", key).Update("value", value)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return s.db.Create(&models.Setting{Key: key, Value: value}).Error
	}
	return nil
}
