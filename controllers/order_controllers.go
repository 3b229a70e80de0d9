package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/yeremiapane/foodtruck-order-app/feed"
	"github.com/yeremiapane/foodtruck-order-app/services"
	"github.com/yeremiapane/foodtruck-order-app/utils"
)

type OrderController struct {
	Coordinator *services.Coordinator
	Ledger      services.Ledger
}

func NewOrderController(co *services.Coordinator, ledger services.Ledger) *OrderController {
	return &OrderController{Coordinator: co, Ledger: ledger}
}

// SubmitOrder handles the POST form submission. All outcomes are HTTP 200
// with an ok flag; the msg carries the user-facing reason on failure.
func (oc *OrderController) SubmitOrder(c *gin.Context) {
	req := services.OrderRequest{
		Venue:       c.PostForm("venue"),
		Name:        c.PostForm("name"),
		Phone:       c.PostForm("phone"),
		Method:      c.PostForm("method"),
		Eta:         c.PostForm("eta"),
		ItemsDetail: c.PostForm("itemsDetail"),
		Total:       c.PostForm("total"),
		Taste:       c.PostForm("taste"),
		Cut:         c.PostForm("cut"),
		Note:        c.PostForm("note"),
		Summary:     c.PostForm("orderSummary"),
		Source:      c.PostForm("source"),
	}

	result, err := oc.Coordinator.Submit(req)
	if err != nil {
		var validation *services.ValidationError
		var stock *services.InsufficientStockError
		switch {
		case errors.As(err, &validation),
			errors.As(err, &stock),
			errors.Is(err, services.ErrVenueNotFound),
			errors.Is(err, services.ErrOrdersPaused),
			errors.Is(err, services.ErrLockTimeout):
			utils.RespondFail(c, err.Error())
		default:
			utils.ErrorLogger.Printf("order submission failed: %v", err)
			utils.RespondFail(c, "系統錯誤: "+err.Error())
		}
		return
	}

	msg := "訂單成功"
	if result.Amended {
		msg = "訂單已更新"
	}

	if order, err := oc.Ledger.FindOrder(req.Venue, result.OrderNo); err == nil {
		if result.Amended {
			feed.BroadcastOrderAmended(*order)
		} else {
			feed.BroadcastOrderCreated(*order)
		}
	}

	utils.RespondOK(c, gin.H{"orderNo": result.OrderNo, "msg": msg})
}
