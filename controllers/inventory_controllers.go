package controllers

import (
	"errors"
	"sort"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yeremiapane/foodtruck-order-app/models"
	"github.com/yeremiapane/foodtruck-order-app/services"
	"github.com/yeremiapane/foodtruck-order-app/utils"
)

const fallbackImageURL = "https://images.unsplash.com/photo-1598103442097-8b74394b95c6?w=400&h=400&fit=crop&q=80"

type InventoryController struct {
	Ledger services.Ledger
}

func NewInventoryController(ledger services.Ledger) *InventoryController {
	return &InventoryController{Ledger: ledger}
}

// itemView is the per-product payload of action=getInventory. Price rules are
// re-parsed from the stored rule text on every read.
type itemView struct {
	Name             string             `json:"name,omitempty"`
	Type             string             `json:"type,omitempty"`
	Stock            int                `json:"stock"`
	InitialStock     int                `json:"initialStock,omitempty"`
	Available        bool               `json:"available"`
	Status           string             `json:"status,omitempty"`
	Category         string             `json:"category,omitempty"`
	ImageURL         string             `json:"imageUrl,omitempty"`
	BasePrice        int                `json:"basePrice"`
	PriceRules       []models.PriceRule `json:"priceRules"`
	PriceRuleText    string             `json:"priceRuleText"`
	SaleLabel        string             `json:"saleLabel"`
	HasDiscount      bool               `json:"hasDiscount"`
	SortOrder        int                `json:"sortOrder"`
	RecommendTag     string             `json:"recommendTag"`
	PriceDescription string             `json:"priceDescription"`
	DailyLimit       int                `json:"dailyLimit"`
	ComboGroupID     string             `json:"comboGroupId"`
}

// GetInventory answers action=getInventory&venue=<code>.
func (ic *InventoryController) GetInventory(c *gin.Context) {
	venue := c.Query("venue")
	if venue == "" {
		utils.RespondFail(c, "請指定場地")
		return
	}

	snapshot, err := ic.Ledger.LoadSnapshot(venue)
	if err != nil {
		if errors.Is(err, services.ErrVenueNotFound) {
			utils.RespondFail(c, err.Error())
			return
		}
		utils.ErrorLogger.Printf("load snapshot for %s: %v", venue, err)
		utils.RespondFail(c, "無法取得庫存")
		return
	}

	inventory := make(map[string]itemView, len(snapshot))
	categories := make(map[string][]itemView)
	var mainItems []itemView

	for name, p := range snapshot {
		rules := services.ParsePriceRules(p.PriceRuleText)
		if rules == nil {
			rules = []models.PriceRule{}
		}
		view := itemView{
			Type:             p.Type,
			Stock:            p.CurrentStock,
			InitialStock:     p.InitialStock,
			Available:        p.CurrentStock > 0,
			Status:           p.Status,
			Category:         p.Category,
			ImageURL:         p.ImageURL,
			BasePrice:        p.BasePrice,
			PriceRules:       rules,
			PriceRuleText:    p.PriceRuleText,
			SaleLabel:        p.SaleLabel,
			HasDiscount:      len(rules) > 0,
			SortOrder:        p.SortOrder,
			RecommendTag:     p.RecommendTag,
			PriceDescription: p.PriceDescription,
			DailyLimit:       p.DailyLimit,
			ComboGroupID:     p.ComboGroupID,
		}
		inventory[name] = view

		listed := view
		listed.Name = name

		switch p.Type {
		case models.ProductTypeSide:
			categories[p.Category] = append(categories[p.Category], listed)
		case models.ProductTypeMain:
			if listed.ImageURL == "" {
				listed.ImageURL = fallbackImageURL
			}
			mainItems = append(mainItems, listed)
		}
	}

	sort.Slice(mainItems, func(i, j int) bool {
		if mainItems[i].SortOrder != mainItems[j].SortOrder {
			return mainItems[i].SortOrder < mainItems[j].SortOrder
		}
		return mainItems[i].Name < mainItems[j].Name
	})
	for cat := range categories {
		items := categories[cat]
		sort.Slice(items, func(i, j int) bool { return items[i].Name < items[j].Name })
		categories[cat] = items
	}
	if mainItems == nil {
		mainItems = []itemView{}
	}

	utils.RespondOK(c, gin.H{
		"inventory":  inventory,
		"categories": categories,
		"mainItems":  mainItems,
		"products":   mainItems,
		"timestamp":  time.Now().UTC().Format(time.RFC3339),
	})
}
