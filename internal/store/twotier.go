package store

import (
	"log"
	"sync"
	"time"

	"github.com/M-odou/forumassirou-sub000/internal/models"
)

// TwoTier layers the primary store over the local fallback. Policy: try the
// primary first; on primary failure serve reads and non-critical writes from
// the fallback. The validation commit never falls back: the primary is the
// single source of truth for entry control, so its failure is surfaced.
//
// Fallback writes are never reconciled back to the primary once it recovers;
// that data stays local.
type TwoTier struct {
	primary  Store // nil when no remote store is configured
	fallback Store

	mu      sync.Mutex
	subs    map[int]func()
	nextSub int
}

func NewTwoTier(primary, fallback Store) *TwoTier {
	return &TwoTier{
		primary:  primary,
		fallback: fallback,
		subs:     make(map[int]func()),
	}
}

// Subscribe registers a callback fired after every successful mutation.
// The returned function cancels the subscription.
func (t *TwoTier) Subscribe(fn func()) func() {
	t.mu.Lock()
	defer t.mu.Unlock()

	id := t.nextSub
	t.nextSub++
	t.subs[id] = fn

	return func() {
		t.mu.Lock()
		defer t.mu.Unlock()
		delete(t.subs, id)
	}
}

func (t *TwoTier) notify() {
	t.mu.Lock()
	fns := make([]func(), 0, len(t.subs))
	for _, fn := range t.subs {
		fns = append(fns, fn)
	}
	t.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

func (t *TwoTier) ListParticipants() ([]models.Participant, error) {
	if t.primary != nil {
		participants, err := t.primary.ListParticipants()
		if err == nil {
			return participants, nil
		}
		log.Printf("store: primary list failed, using fallback: %v", err)
	}
	participants, err := t.fallback.ListParticipants()
	if err != nil {
		log.Printf("store: fallback list failed: %v", err)
		return []models.Participant{}, nil
	}
	return participants, nil
}

func (t *TwoTier) CountParticipants() (int64, error) {
	if t.primary != nil {
		count, err := t.primary.CountParticipants()
		if err == nil {
			return count, nil
		}
		log.Printf("store: primary count failed, using fallback: %v", err)
	}
	return t.fallback.CountParticipants()
}

func (t *TwoTier) InsertParticipant(p *models.Participant) error {
	if t.primary != nil {
		err := t.primary.InsertParticipant(p)
		if err == nil {
			t.notify()
			return nil
		}
		log.Printf("store: primary insert failed, writing to fallback: %v", err)
	}
	if err := t.fallback.InsertParticipant(p); err != nil {
		return err
	}
	t.notify()
	return nil
}

func (t *TwoTier) DeleteParticipant(id string) error {
	if t.primary != nil {
		err := t.primary.DeleteParticipant(id)
		if err == nil {
			t.notify()
			return nil
		}
		log.Printf("store: primary delete failed, trying fallback: %v", err)
	}
	if err := t.fallback.DeleteParticipant(id); err != nil {
		return err
	}
	t.notify()
	return nil
}

// UpdateValidation is the one operation that never degrades to the fallback.
func (t *TwoTier) UpdateValidation(id string, validatedAt time.Time) error {
	target := t.primary
	if target == nil {
		target = t.fallback
	}
	if err := target.UpdateValidation(id, validatedAt); err != nil {
		return err
	}
	t.notify()
	return nil
}

func (t *TwoTier) UpdateEmailStatus(id, status string) error {
	if t.primary != nil {
		err := t.primary.UpdateEmailStatus(id, status)
		if err == nil {
			t.notify()
			return nil
		}
		log.Printf("store: primary email-status update failed, trying fallback: %v", err)
	}
	if err := t.fallback.UpdateEmailStatus(id, status); err != nil {
		return err
	}
	t.notify()
	return nil
}

func (t *TwoTier) FindByID(id string) (*models.Participant, error) {
	return t.findOne(func(s Store) (*models.Participant, error) { return s.FindByID(id) })
}

func (t *TwoTier) FindByToken(token string) (*models.Participant, error) {
	return t.findOne(func(s Store) (*models.Participant, error) { return s.FindByToken(token) })
}

func (t *TwoTier) FindByTicket(numeroTicket string) (*models.Participant, error) {
	return t.findOne(func(s Store) (*models.Participant, error) { return s.FindByTicket(numeroTicket) })
}

func (t *TwoTier) findOne(lookup func(Store) (*models.Participant, error)) (*models.Participant, error) {
	if t.primary != nil {
		p, err := lookup(t.primary)
		if err == nil {
			return p, nil
		}
		log.Printf("store: primary lookup failed, using fallback: %v", err)
	}
	p, err := lookup(t.fallback)
	if err != nil {
		log.Printf("store: fallback lookup failed: %v", err)
		return nil, nil
	}
	return p, nil
}

func (t *TwoTier) GetSetting(key string) (string, error) {
	if t.primary != nil {
		value, err := t.primary.GetSetting(key)
		if err == nil {
			return value, nil
		}
		log.Printf("store: primary setting read failed, using fallback: %v", err)
	}
	value, err := t.fallback.GetSetting(key)
	if err != nil {
		log.Printf("store: fallback setting read failed: %v", err)
		return "", nil
	}
	return value, nil
}

func (t *TwoTier) SetSetting(key, value string) error {
	if t.primary != nil {
		err := t.primary.SetSetting(key, value)
		if err == nil {
			t.notify()
			return nil
		}
		log.Printf("store: primary setting write failed, writing to fallback: %v", err)
	}
	if err := t.fallback.SetSetting(key, value); err != nil {
		return err
	}
	t.notify()
	return nil
}

var _ Store = (*TwoTier)(nil)
