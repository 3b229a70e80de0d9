package controllers

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yeremiapane/foodtruck-order-app/models"
	"github.com/yeremiapane/foodtruck-order-app/services"
	"github.com/yeremiapane/foodtruck-order-app/utils"
)

type ConfigController struct {
	Ledger services.Ledger
}

func NewConfigController(ledger services.Ledger) *ConfigController {
	return &ConfigController{Ledger: ledger}
}

// GetConfig answers action=getConfig: the raw settings plus the derived
// pickup time options, pickup methods, venue list and minimum order amount.
func (cc *ConfigController) GetConfig(c *gin.Context) {
	settings, err := cc.Ledger.Settings()
	if err != nil {
		utils.ErrorLogger.Printf("load settings: %v", err)
		utils.RespondFail(c, "無法取得設定")
		return
	}

	hourStart := settingInt(settings, models.SettingPickupHourStart, 14)
	hourEnd := settingInt(settings, models.SettingPickupHourEnd, 20)
	interval := settingInt(settings, models.SettingPickupInterval, 5)
	if interval <= 0 {
		interval = 5
	}

	hours := []int{}
	for h := hourStart; h <= hourEnd; h++ {
		hours = append(hours, h)
	}
	minutes := []string{}
	for m := 0; m < 60; m += interval {
		minutes = append(minutes, fmt.Sprintf("%02d", m))
	}

	methodsCSV := settings[models.SettingPickupMethods]
	if methodsCSV == "" {
		methodsCSV = "現場自取,託人代取"
	}
	var methods []string
	for _, m := range strings.Split(methodsCSV, ",") {
		if m = strings.TrimSpace(m); m != "" {
			methods = append(methods, m)
		}
	}

	venues, err := cc.Ledger.Venues()
	if err != nil {
		utils.ErrorLogger.Printf("load venues: %v", err)
		utils.RespondFail(c, "無法取得設定")
		return
	}
	if venues == nil {
		venues = []models.Venue{}
	}

	utils.RespondOK(c, gin.H{
		"config":         settings,
		"timeOptions":    gin.H{"hours": hours, "minutes": minutes},
		"methodOptions":  methods,
		"venueOptions":   venues,
		"minOrderAmount": settingInt(settings, models.SettingMinOrderAmount, 0),
	})
}

// GetVenues answers action=getVenues.
func (cc *ConfigController) GetVenues(c *gin.Context) {
	venues, err := cc.Ledger.Venues()
	if err != nil {
		utils.ErrorLogger.Printf("load venues: %v", err)
		utils.RespondFail(c, "無法取得場地清單")
		return
	}
	if venues == nil {
		venues = []models.Venue{}
	}
	utils.RespondOK(c, gin.H{"venues": venues})
}

func settingInt(settings map[string]string, key string, fallback int) int {
	if v, err := strconv.Atoi(strings.TrimSpace(settings[key])); err == nil {
		return v
	}
	return fallback
}
