package services

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/yeremiapane/foodtruck-order-app/models"
	"github.com/yeremiapane/foodtruck-order-app/utils"
)

// amendMarkerRe matches the marker the order form embeds in the note when a
// customer edits a previously placed order, e.g. "[修改訂單 1019-A-001]".
var amendMarkerRe = regexp.MustCompile(`\[修改訂單 (\d{4}-[A-Z]+-\d{3})\]`)

// OrderRequest carries one inbound submission, field-for-field the POST form.
type OrderRequest struct {
	Venue       string
	Name        string
	Phone       string
	Method      string
	Eta         string
	ItemsDetail string
	Total       string
	Taste       string
	Cut         string
	Note        string
	Summary     string
	Source      string
}

// OrderResult reports the assigned (or preserved) order number.
type OrderResult struct {
	OrderNo string
	Amended bool
}

// Coordinator runs the order intake transaction: validate, lock, check
// availability, deduct stock, number the order, persist. One instance owns
// the lock; construct it once at startup.
type Coordinator struct {
	ledger      Ledger
	sequencer   *Sequencer
	lock        *TimedLock
	lockTimeout time.Duration
	loc         *time.Location
	now         func() time.Time
}

func NewCoordinator(ledger Ledger, loc *time.Location, lockTimeout time.Duration) *Coordinator {
	return &Coordinator{
		ledger:      ledger,
		sequencer:   NewSequencer(ledger),
		lock:        NewTimedLock(),
		lockTimeout: lockTimeout,
		loc:         loc,
		now:         time.Now,
	}
}

// Submit processes one submission. Validation and stock failures come back as
// typed errors with user-facing messages; no stock is touched on any failure
// path.
func (co *Coordinator) Submit(req OrderRequest) (OrderResult, error) {
	if req.Venue == "" {
		return OrderResult{}, &ValidationError{Msg: "⚠️ 請選擇取餐場地"}
	}
	if req.Method == "" {
		return OrderResult{}, &ValidationError{Msg: "⚠️ 請選擇取餐方式"}
	}
	if req.Eta == "" {
		return OrderResult{}, &ValidationError{Msg: "⚠️ 請選擇取餐時間"}
	}
	items := ParseItems(req.ItemsDetail)
	if len(items) == 0 {
		return OrderResult{}, &ValidationError{Msg: "⚠️ 請選擇訂購商品"}
	}

	if m := amendMarkerRe.FindStringSubmatch(req.Note); m != nil {
		result, err := co.amend(m[1], req)
		if err == nil {
			return result, nil
		}
		if !errors.Is(err, ErrOrderNotFound) {
			return OrderResult{}, err
		}
		// Original order is gone: degrade to a brand-new order.
		utils.InfoLogger.Printf("amend target %s not found in %s, treating as new order", m[1], req.Venue)
	}

	if paused, err := co.paused(); err != nil {
		return OrderResult{}, err
	} else if paused {
		return OrderResult{}, ErrOrdersPaused
	}

	if !co.lock.Acquire(co.lockTimeout) {
		return OrderResult{}, ErrLockTimeout
	}
	defer co.lock.Release()

	if err := co.ledger.CheckAvailability(req.Venue, items); err != nil {
		return OrderResult{}, err
	}
	if err := co.ledger.Deduct(req.Venue, items); err != nil {
		return OrderResult{}, err
	}

	now := co.now().In(co.loc)
	orderNo, err := co.sequencer.Next(req.Venue, now)
	if err != nil {
		return OrderResult{}, err
	}

	order := &models.Order{
		OrderNo:      orderNo,
		VenueCode:    req.Venue,
		CustomerName: req.Name,
		Phone:        req.Phone,
		Method:       req.Method,
		Eta:          req.Eta,
		ItemsDetail:  req.ItemsDetail,
		Total:        req.Total,
		Taste:        req.Taste,
		Cut:          req.Cut,
		Note:         req.Note,
		Status:       models.OrderStatusPending,
		Source:       sourceOrDefault(req.Source),
		Summary:      req.Summary,
		VenueName:    co.venueName(req.Venue),
		CreatedAt:    now,
	}
	if err := co.ledger.AppendOrder(order); err != nil {
		return OrderResult{}, err
	}

	utils.InfoLogger.Printf("order %s saved for %s (%d items)", orderNo, req.Venue, len(items))
	return OrderResult{OrderNo: orderNo}, nil
}

// amend overwrites an existing order in place. The order number and the
// staff-only handoff progress survive; everything else is replaced and the
// status flips to 已修改. Stock is NOT re-checked or re-deducted for quantity
// changes — observed behavior, flagged in DESIGN.md.
func (co *Coordinator) amend(orderNo string, req OrderRequest) (OrderResult, error) {
	existing, err := co.ledger.FindOrder(req.Venue, orderNo)
	if err != nil {
		return OrderResult{}, err
	}

	cleanNote := amendMarkerRe.ReplaceAllString(req.Note, "")
	existing.CustomerName = req.Name
	existing.Phone = req.Phone
	existing.Method = req.Method
	existing.Eta = req.Eta
	existing.ItemsDetail = req.ItemsDetail
	existing.Total = req.Total
	existing.Taste = req.Taste
	existing.Cut = req.Cut
	existing.Note = strings.TrimSpace(cleanNote)
	existing.Status = models.OrderStatusAmended
	existing.Source = sourceOrDefault(req.Source)
	existing.Summary = req.Summary
	existing.VenueName = co.venueName(req.Venue)
	existing.CreatedAt = co.now().In(co.loc)

	if err := co.ledger.UpdateOrder(existing); err != nil {
		return OrderResult{}, err
	}

	utils.InfoLogger.Printf("order %s amended for %s", orderNo, req.Venue)
	return OrderResult{OrderNo: orderNo, Amended: true}, nil
}

func (co *Coordinator) paused() (bool, error) {
	settings, err := co.ledger.Settings()
	if err != nil {
		return false, err
	}
	switch settings[models.SettingPauseOrders] {
	case "是", "YES", "true":
		return true, nil
	}
	return false, nil
}

// venueName is display-only; a missing directory entry never blocks an order.
func (co *Coordinator) venueName(code string) string {
	venue, err := co.ledger.VenueByCode(code)
	if err != nil {
		return ""
	}
	return venue.Name
}

func sourceOrDefault(source string) string {
	if source == "" {
		return "web"
	}
	return source
}
