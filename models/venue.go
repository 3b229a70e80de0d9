package models

import (
	"strings"
	"time"
)

const (
	VenueStatusOpen   = "營業中"
	VenueStatusPaused = "暫停"
)

// Venue is an independent sales location with its own stock and order log.
type Venue struct {
	ID        uint      `gorm:"primaryKey" json:"-"`
	Code      string    `gorm:"type:varchar(32);not null;uniqueIndex" json:"code"`
	Name      string    `gorm:"type:varchar(100);not null" json:"name"`
	Status    string    `gorm:"type:varchar(20);not null;default:'營業中'" json:"status"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// ShortCode derives the order-number code from a venue code,
// e.g. "venue_a" -> "A".
func ShortCode(venueCode string) string {
	return strings.ToUpper(strings.TrimPrefix(venueCode, "venue_"))
}
