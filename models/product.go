package models

import "time"

const (
	ProductTypeMain = "main"
	ProductTypeSide = "side"
)

// Product is one stock row of a venue. CurrentStock is the only field the
// order transaction mutates; InitialStock is the reset target used by the
// staff reset tooling.
type Product struct {
	ID               uint      `gorm:"primaryKey"`
	VenueCode        string    `gorm:"type:varchar(32);not null;uniqueIndex:idx_venue_product"`
	Name             string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_venue_product"`
	Type             string    `gorm:"type:varchar(10);not null;default:'main'"`
	CurrentStock     int       `gorm:"not null;default:0"`
	InitialStock     int       `gorm:"not null;default:0"`
	Status           string    `gorm:"type:varchar(20);not null;default:'正常'"`
	Category         string    `gorm:"type:varchar(50);default:'其他'"`
	ImageURL         string    `gorm:"type:varchar(500)"`
	BasePrice        int       `gorm:"not null;default:0"`
	PriceRuleText    string    `gorm:"type:varchar(500)"`
	SaleLabel        string    `gorm:"type:varchar(100)"`
	SortOrder        int       `gorm:"not null;default:999"`
	RecommendTag     string    `gorm:"type:varchar(50)"`
	PriceDescription string    `gorm:"type:varchar(255)"`
	DailyLimit       int       `gorm:"not null;default:0"`
	ComboGroupID     string    `gorm:"type:varchar(50)"`
	CreatedAt        time.Time `gorm:"not null"`
	UpdatedAt        time.Time `gorm:"not null"`
}
