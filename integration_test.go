package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/yeremiapane/foodtruck-order-app/config"
	"github.com/yeremiapane/foodtruck-order-app/database"
	"github.com/yeremiapane/foodtruck-order-app/models"
	"github.com/yeremiapane/foodtruck-order-app/router"
	"github.com/yeremiapane/foodtruck-order-app/services"
	"github.com/yeremiapane/foodtruck-order-app/utils"
)

// Full-stack walk through the intake flow: two successful orders drain the
// stock, the third bounces with the exact shortage, and no order number is
// consumed by the failure.
func TestOrderIntakeEndToEnd(t *testing.T) {
	utils.InitLogger()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open("file:integration?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))
	require.NoError(t, database.EnsureDefaultSettings(db))

	db.Create(&models.Venue{Code: "venue_a", Name: "中山店", Status: models.VenueStatusOpen})
	db.Create(&models.Product{
		VenueCode: "venue_a", Name: "六蒜包", Type: models.ProductTypeMain,
		CurrentStock: 5, InitialStock: 5, BasePrice: 90, PriceRuleText: "1:90,2:170,3:250",
	})

	cfg := &config.Config{
		Location:    time.UTC,
		LockTimeout: time.Second,
		JWTSecret:   "integration-secret",
		LicenseKey:  "integration-license",
		CORSOrigin:  "*",
	}
	ledger := services.NewGormLedger(db)
	coordinator := services.NewCoordinator(ledger, cfg.Location, cfg.LockTimeout)
	r := router.SetupRouter(cfg, ledger, coordinator, services.EnvLicense{Key: cfg.LicenseKey})

	submit := func(qtyDetail string) map[string]interface{} {
		form := url.Values{
			"venue":       {"venue_a"},
			"name":        {"integration"},
			"method":      {"現場自取"},
			"eta":         {"15:30"},
			"itemsDetail": {qtyDetail},
			"total":       {"170"},
		}
		req := httptest.NewRequest(http.MethodPost, "/api", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)
		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		return body
	}

	stock := func() int {
		var p models.Product
		require.NoError(t, db.Where("venue_code = ? AND name = ?", "venue_a", "六蒜包").First(&p).Error)
		return p.CurrentStock
	}

	dateKey := time.Now().UTC().Format("0102")

	body := submit("六蒜包 x2")
	require.Equal(t, true, body["ok"])
	assert.Equal(t, dateKey+"-A-001", body["orderNo"])
	assert.Equal(t, 3, stock())

	body = submit("六蒜包 x2")
	require.Equal(t, true, body["ok"])
	assert.Equal(t, dateKey+"-A-002", body["orderNo"])
	assert.Equal(t, 1, stock())

	body = submit("六蒜包 x2")
	require.Equal(t, false, body["ok"])
	assert.Equal(t, "【六蒜包】庫存不足（剩餘 1 份，您訂購 2 份）", body["msg"])
	assert.Equal(t, 1, stock())

	body = submit("六蒜包 x1")
	require.Equal(t, true, body["ok"])
	assert.Equal(t, dateKey+"-A-003", body["orderNo"])
	assert.Equal(t, 0, stock())
}
