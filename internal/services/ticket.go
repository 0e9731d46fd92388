package services

import (
	crand "crypto/rand"
	"encoding/hex"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/M-odou/forumassirou-sub000/internal/store"
)

const ticketPrefix = "FORUM-SEC"

// TicketService produces the two badge identifiers: the sequential
// human-facing ticket number and the opaque scan token.
type TicketService struct {
	store store.Store
}

func NewTicketService(st store.Store) *TicketService {
	return &TicketService{store: st}
}

// NextTicketNumber derives the next sequence number from the current
// participant count. Two concurrent registrations can read the same count and
// compute the same number; the unique index on numero_ticket then rejects the
// second insert. When the count itself is unavailable, a timestamp-suffixed
// variant keeps registration working.
func (s *TicketService) NextTicketNumber() string {
	year := time.Now().Year()

	count, err := s.store.CountParticipants()
	if err != nil {
		log.Printf("ticket: count unavailable, using timestamp variant: %v", err)
		return fmt.Sprintf("%s-%d-%d", ticketPrefix, year, time.Now().UnixMilli())
	}

	return fmt.Sprintf("%s-%d-%04d", ticketPrefix, year, count+1)
}

// NewScanToken returns a 64-char hex token from a cryptographic source, with
// a timestamp-mixed pseudo-random fallback if that source is unavailable.
func (s *TicketService) NewScanToken() string {
	buf := make([]byte, 32)
	if _, err := crand.Read(buf); err != nil {
		log.Printf("ticket: crypto source unavailable, using pseudo-random token: %v", err)
		return fmt.Sprintf("%016x%016x", rand.Uint64(), uint64(time.Now().UnixNano()))
	}
	return hex.EncodeToString(buf)
}
