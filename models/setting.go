package models

import "time"

// Setting keys match the original deployment's key-value configuration rows,
// so existing operator data carries over unchanged.
const (
	SettingPickupHourStart = "取餐時間_開始"
	SettingPickupHourEnd   = "取餐時間_結束"
	SettingPickupInterval  = "取餐時間_間隔"
	SettingPickupMethods   = "取餐方式"
	SettingMinOrderAmount  = "最低消費金額"
	SettingPauseOrders     = "暫停接單"
)

type Setting struct {
	ID        uint      `gorm:"primaryKey"`
	Key       string    `gorm:"type:varchar(100);not null;uniqueIndex"`
	Value     string    `gorm:"type:varchar(255)"`
	UpdatedAt time.Time `gorm:"not null"`
}
