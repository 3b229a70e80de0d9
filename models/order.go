package models

import "time"

const (
	OrderStatusPending = "待處理"
	OrderStatusAmended = "已修改"
)

// Order mirrors one row of a venue's order log. An amendment overwrites every
// field except OrderNo and HandoffProgress.
type Order struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	OrderNo         string    `gorm:"type:varchar(20);not null;uniqueIndex:idx_venue_orderno" json:"orderNo"`
	VenueCode       string    `gorm:"type:varchar(32);not null;uniqueIndex:idx_venue_orderno" json:"venueCode"`
	CustomerName    string    `gorm:"type:varchar(100)" json:"customerName"`
	Phone           string    `gorm:"type:varchar(30)" json:"phone"`
	Method          string    `gorm:"type:varchar(30)" json:"method"`
	Eta             string    `gorm:"type:varchar(30)" json:"eta"`
	ItemsDetail     string    `gorm:"type:text" json:"itemsDetail"`
	Total           string    `gorm:"type:varchar(20)" json:"total"`
	Taste           string    `gorm:"type:varchar(100)" json:"taste"`
	Cut             string    `gorm:"type:varchar(100)" json:"cut"`
	Note            string    `gorm:"type:text" json:"note"`
	HandoffProgress string    `gorm:"type:varchar(100)" json:"handoffProgress"`
	Status          string    `gorm:"type:varchar(20);not null;default:'待處理'" json:"status"`
	Source          string    `gorm:"type:varchar(30);default:'web'" json:"source"`
	Summary         string    `gorm:"type:text" json:"summary"`
	VenueName       string    `gorm:"type:varchar(100)" json:"venueName"`
	CreatedAt       time.Time `gorm:"not null" json:"createdAt"`
}

// OrderLineItem is one "name x qty" entry parsed from the itemsDetail wire
// field. It never touches storage directly.
type OrderLineItem struct {
	Name string `json:"name"`
	Qty  int    `json:"qty"`
}
