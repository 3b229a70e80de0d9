package database

import (
	"errors"

	"gorm.io/gorm"

	"github.com/yeremiapane/foodtruck-order-app/models"
)

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Venue{},
		&models.Product{},
		&models.Order{},
		&models.Setting{},
		&models.OrderCounter{},
	)
}

// EnsureDefaultSettings inserts the key-value rows the config endpoint reads,
// without overwriting values operators have already changed.
func EnsureDefaultSettings(db *gorm.DB) error {
	defaults := map[string]string{
		models.SettingPickupHourStart: "14",
		models.SettingPickupHourEnd:   "20",
		models.SettingPickupInterval:  "5",
		models.SettingPickupMethods:   "現場自取,託人代取",
		models.SettingMinOrderAmount:  "0",
		models.SettingPauseOrders:     "否",
	}

	for key, value := range defaults {
		var existing models.Setting
		err := db.Where("key = ?", key).First(&existing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			if err := db.Create(&models.Setting{Key: key, Value: value}).Error; err != nil {
				return err
			}
			continue
		}
		if err != nil {
			return err
		}
	}
	return nil
}
