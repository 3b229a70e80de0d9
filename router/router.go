package router

import (
	"github.com/gin-gonic/gin"

	"github.com/yeremiapane/foodtruck-order-app/config"
	"github.com/yeremiapane/foodtruck-order-app/controllers"
	"github.com/yeremiapane/foodtruck-order-app/middlewares"
	"github.com/yeremiapane/foodtruck-order-app/services"
	"github.com/yeremiapane/foodtruck-order-app/utils"
)

// SetupRouter wires the public ordering API and the staff surface.
//
// The ordering clients speak the original action-dispatch protocol: one
// endpoint, the verb chosen by the "action" query parameter on GET and a form
// POST for submissions.
func SetupRouter(cfg *config.Config, ledger services.Ledger, coordinator *services.Coordinator, license services.LicenseChecker) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.LoggerMiddleware())
	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares(cfg.CORSOrigin))
	r.Use(middlewares.NewRateLimiter(50, 1).RateLimit())

	inventoryCtrl := controllers.NewInventoryController(ledger)
	configCtrl := controllers.NewConfigController(ledger)
	orderCtrl := controllers.NewOrderController(coordinator, ledger)
	staffCtrl := controllers.NewStaffController(ledger, cfg)

	api := r.Group("/api")
	api.Use(middlewares.LicenseGate(license))
	api.GET("", func(c *gin.Context) {
		switch c.Query("action") {
		case "getInventory":
			inventoryCtrl.GetInventory(c)
		case "getConfig":
			configCtrl.GetConfig(c)
		case "getVenues":
			configCtrl.GetVenues(c)
		default:
			utils.RespondFail(c, "未知的請求")
		}
	})
	api.POST("", orderCtrl.SubmitOrder)

	staff := r.Group("/staff")
	staff.POST("/login", middlewares.NewStrictRateLimiter(), staffCtrl.Login)

	authed := staff.Group("")
	authed.Use(middlewares.AuthMiddleware(cfg.JWTSecret))
	authed.POST("/reset", staffCtrl.Reset)
	authed.GET("/orders", staffCtrl.Orders)
	authed.GET("/feed", staffCtrl.Feed)

	return r
}
