package models

import "time"

// OrderCounter is the per-(venue, calendar day) order number sequence. Rows
// are only read and bumped inside the coordinator's critical section.
type OrderCounter struct {
	ID        uint      `gorm:"primaryKey"`
	VenueCode string    `gorm:"type:varchar(32);not null;uniqueIndex:idx_venue_date"`
	DateKey   string    `gorm:"type:varchar(4);not null;uniqueIndex:idx_venue_date"`
	Seq       int       `gorm:"not null;default:0"`
	UpdatedAt time.Time `gorm:"not null"`
}
