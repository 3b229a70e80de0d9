package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/yeremiapane/foodtruck-order-app/models"
)

// GormLedger is the gorm-backed Ledger adapter. The same code serves sqlite
// and mysql; the driver is chosen when the *gorm.DB is opened.
type GormLedger struct {
	DB *gorm.DB
}

func NewGormLedger(db *gorm.DB) *GormLedger {
	return &GormLedger{DB: db}
}

func (l *GormLedger) requireVenue(code string) error {
	if code == "" {
		return ErrVenueNotFound
	}
	var count int64
	if err := l.DB.Model(&models.Venue{}).Where("code = ?", code).Count(&count).Error; err != nil {
		return fmt.Errorf("venue lookup: %w", err)
	}
	if count == 0 {
		return ErrVenueNotFound
	}
	return nil
}

func (l *GormLedger) LoadSnapshot(venueCode string) (map[string]models.Product, error) {
	if err := l.requireVenue(venueCode); err != nil {
		return nil, err
	}
	var products []models.Product
	if err := l.DB.Where("venue_code = ?", venueCode).Find(&products).Error; err != nil {
		return nil, fmt.Errorf("load snapshot: %w", err)
	}
	snapshot := make(map[string]models.Product, len(products))
	for _, p := range products {
		snapshot[p.Name] = p
	}
	return snapshot, nil
}

func (l *GormLedger) CheckAvailability(venueCode string, items []models.OrderLineItem) error {
	if err := l.requireVenue(venueCode); err != nil {
		return err
	}

	var products []models.Product
	if err := l.DB.Select("name", "current_stock").Where("venue_code = ?", venueCode).Find(&products).Error; err != nil {
		return fmt.Errorf("check availability: %w", err)
	}
	stock := make(map[string]int, len(products))
	for _, p := range products {
		stock[p.Name] = p.CurrentStock
	}

	for _, item := range items {
		remaining, tracked := stock[item.Name]
		if !tracked {
			// No stock row means the item is unconstrained. Kept as
			// observed; typos therefore bypass stock control.
			continue
		}
		if remaining < item.Qty {
			return &InsufficientStockError{Name: item.Name, Remaining: remaining, Requested: item.Qty}
		}
	}
	return nil
}

func (l *GormLedger) Deduct(venueCode string, items []models.OrderLineItem) error {
	for _, item := range items {
		res := l.DB.Model(&models.Product{}).
			Where("venue_code = ? AND name = ?", venueCode, item.Name).
			UpdateColumn("current_stock", gorm.Expr("current_stock - ?", item.Qty))
		if res.Error != nil {
			return fmt.Errorf("deduct %s: %w", item.Name, res.Error)
		}
	}
	return nil
}

func (l *GormLedger) Reset(venueCode string) error {
	if err := l.requireVenue(venueCode); err != nil {
		return err
	}
	res := l.DB.Model(&models.Product{}).
		Where("venue_code = ?", venueCode).
		UpdateColumn("current_stock", gorm.Expr("initial_stock"))
	if res.Error != nil {
		return fmt.Errorf("reset %s: %w", venueCode, res.Error)
	}
	return nil
}

func (l *GormLedger) AppendOrder(order *models.Order) error {
	if err := l.DB.Create(order).Error; err != nil {
		return fmt.Errorf("append order: %w", err)
	}
	return nil
}

func (l *GormLedger) FindOrder(venueCode, orderNo string) (*models.Order, error) {
	var order models.Order
	err := l.DB.Where("venue_code = ? AND order_no = ?", venueCode, orderNo).First(&order).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find order: %w", err)
	}
	return &order, nil
}

func (l *GormLedger) UpdateOrder(order *models.Order) error {
	if err := l.DB.Save(order).Error; err != nil {
		return fmt.Errorf("update order: %w", err)
	}
	return nil
}

func (l *GormLedger) OrdersForVenue(venueCode string) ([]models.Order, error) {
	if err := l.requireVenue(venueCode); err != nil {
		return nil, err
	}
	var orders []models.Order
	if err := l.DB.Where("venue_code = ?", venueCode).Order("id").Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("orders for venue: %w", err)
	}
	return orders, nil
}

// NextSequence runs in its own transaction; exclusivity across submissions is
// the coordinator's lock, not a row lock.
func (l *GormLedger) NextSequence(venueCode, dateKey string) (int, error) {
	var seq int
	err := l.DB.Transaction(func(tx *gorm.DB) error {
		var counter models.OrderCounter
		err := tx.Where("venue_code = ? AND date_key = ?", venueCode, dateKey).First(&counter).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// First number of the day: continue after whatever order rows
			// already carry today's prefix (pre-counter deployments).
			var existing int64
			if err := tx.Model(&models.Order{}).
				Where("venue_code = ? AND order_no LIKE ?", venueCode, dateKey+"%").
				Count(&existing).Error; err != nil {
				return err
			}
			counter = models.OrderCounter{VenueCode: venueCode, DateKey: dateKey, Seq: int(existing)}
			if err := tx.Create(&counter).Error; err != nil {
				return err
			}
		} else if err != nil {
			return err
		}

		counter.Seq++
		if err := tx.Save(&counter).Error; err != nil {
			return err
		}
		seq = counter.Seq
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("next sequence: %w", err)
	}
	return seq, nil
}

func (l *GormLedger) Venues() ([]models.Venue, error) {
	var venues []models.Venue
	if err := l.DB.Order("code").Find(&venues).Error; err != nil {
		return nil, fmt.Errorf("venues: %w", err)
	}
	return venues, nil
}

func (l *GormLedger) VenueByCode(code string) (*models.Venue, error) {
	var venue models.Venue
	err := l.DB.Where("code = ?", code).First(&venue).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrVenueNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("venue by code: %w", err)
	}
	return &venue, nil
}

func (l *GormLedger) Settings() (map[string]string, error) {
	var settings []models.Setting
	if err := l.DB.Find(&settings).Error; err != nil {
		return nil, fmt.Errorf("settings: %w", err)
	}
	out := make(map[string]string, len(settings))
	for _, s := range settings {
		out[s.Key] = s.Value
	}
	return out, nil
}
