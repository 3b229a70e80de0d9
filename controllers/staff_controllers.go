package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"golang.org/x/crypto/bcrypt"

	"github.com/yeremiapane/foodtruck-order-app/config"
	"github.com/yeremiapane/foodtruck-order-app/feed"
	"github.com/yeremiapane/foodtruck-order-app/services"
	"github.com/yeremiapane/foodtruck-order-app/utils"
)

// StaffController covers the maintenance surface: login, stock reset, order
// log reads and the live order feed.
type StaffController struct {
	Ledger services.Ledger
	Cfg    *config.Config
}

func NewStaffController(ledger services.Ledger, cfg *config.Config) *StaffController {
	return &StaffController{Ledger: ledger, Cfg: cfg}
}

var feedUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Login exchanges the shared staff passcode for a JWT.
func (sc *StaffController) Login(c *gin.Context) {
	passcode := c.PostForm("passcode")
	if passcode == "" || sc.Cfg.StaffPasscodeHash == "" {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("invalid passcode"))
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(sc.Cfg.StaffPasscodeHash), []byte(passcode)); err != nil {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("invalid passcode"))
		return
	}

	token, err := utils.GenerateToken(sc.Cfg.JWTSecret, "staff")
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "token": token})
}

// Reset restores one venue's stock to its initial values, or every venue's
// when no venue is given.
func (sc *StaffController) Reset(c *gin.Context) {
	venue := c.Query("venue")
	if venue != "" {
		if err := sc.Ledger.Reset(venue); err != nil {
			sc.respondResetError(c, err)
			return
		}
		feed.BroadcastStockReset(venue)
		c.JSON(http.StatusOK, gin.H{"ok": true, "msg": "庫存已重置", "venues": 1})
		return
	}

	venues, err := sc.Ledger.Venues()
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	for _, v := range venues {
		if err := sc.Ledger.Reset(v.Code); err != nil {
			sc.respondResetError(c, err)
			return
		}
		feed.BroadcastStockReset(v.Code)
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "msg": "庫存已重置", "venues": len(venues)})
}

func (sc *StaffController) respondResetError(c *gin.Context, err error) {
	if errors.Is(err, services.ErrVenueNotFound) {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}
	utils.ErrorLogger.Printf("stock reset failed: %v", err)
	utils.RespondError(c, http.StatusInternalServerError, err)
}

// Orders returns a venue's order log for the staff dashboard.
func (sc *StaffController) Orders(c *gin.Context) {
	venue := c.Query("venue")
	if venue == "" {
		utils.RespondError(c, http.StatusBadRequest, errors.New("venue is required"))
		return
	}
	orders, err := sc.Ledger.OrdersForVenue(venue)
	if err != nil {
		if errors.Is(err, services.ErrVenueNotFound) {
			utils.RespondError(c, http.StatusNotFound, err)
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "orders": orders})
}

// Feed upgrades to a websocket and streams order events, optionally filtered
// to one venue.
func (sc *StaffController) Feed(c *gin.Context) {
	conn, err := feedUpgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		utils.ErrorLogger.Printf("feed upgrade failed: %v", err)
		return
	}

	feed.RegisterClient(conn, c.Query("venue"))
	go func() {
		defer feed.UnregisterClient(conn)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
