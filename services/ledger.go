package services

import "github.com/yeremiapane/foodtruck-order-app/models"

// Ledger is the narrow read/write surface over the persistent store. The core
// never addresses rows or columns directly; one adapter exists per storage
// technology (see GormLedger).
//
// Ledger holds no concurrency control of its own. CheckAvailability, Deduct,
// NextSequence and the order writes are only safe when the coordinator runs
// them inside its critical section; LoadSnapshot and the directory reads are
// unlocked display reads and may observe in-flight values.
type Ledger interface {
	// LoadSnapshot returns the full stock table of a venue keyed by product
	// name. Advisory read for display, never part of the write path.
	LoadSnapshot(venueCode string) (map[string]models.Product, error)

	// CheckAvailability fails fast with *InsufficientStockError on the first
	// item whose stock cannot cover the request. Items without a stock row
	// pass unchecked (observed behavior, see DESIGN.md).
	CheckAvailability(venueCode string, items []models.OrderLineItem) error

	// Deduct subtracts every requested quantity. It does not re-validate;
	// callers must have run CheckAvailability in the same critical section.
	Deduct(venueCode string, items []models.OrderLineItem) error

	// Reset restores every product of the venue to its initial stock.
	Reset(venueCode string) error

	AppendOrder(order *models.Order) error
	FindOrder(venueCode, orderNo string) (*models.Order, error)
	UpdateOrder(order *models.Order) error
	OrdersForVenue(venueCode string) ([]models.Order, error)

	// NextSequence bumps and returns the per-(venue, MMDD) order counter,
	// seeding it from existing order rows the first time a key appears.
	NextSequence(venueCode, dateKey string) (int, error)

	Venues() ([]models.Venue, error)
	VenueByCode(code string) (*models.Venue, error)
	Settings() (map[string]string, error)
}
