package services

import (
	"fmt"
	"time"

	"github.com/yeremiapane/foodtruck-order-app/models"
)

// Sequencer derives the next human-readable order number for a venue/day,
// format "MMDD-CODE-SEQ" ("MMDD-SEQ" when no venue code is derivable). The
// counter lives in the ledger; Next is only correct inside the coordinator's
// critical section.
type Sequencer struct {
	ledger Ledger
}

func NewSequencer(ledger Ledger) *Sequencer {
	return &Sequencer{ledger: ledger}
}

func (s *Sequencer) Next(venueCode string, now time.Time) (string, error) {
	dateKey := now.Format("0102")
	seq, err := s.ledger.NextSequence(venueCode, dateKey)
	if err != nil {
		return "", err
	}
	if code := models.ShortCode(venueCode); code != "" {
		return fmt.Sprintf("%s-%s-%03d", dateKey, code, seq), nil
	}
	return fmt.Sprintf("%s-%03d", dateKey, seq), nil
}
