package services

import (
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yeremiapane/foodtruck-order-app/models"
	"github.com/yeremiapane/foodtruck-order-app/utils"
)

func TestMain(m *testing.M) {
	utils.InitLogger()
	os.Exit(m.Run())
}

func newTestCoordinator(t *testing.T) (*Coordinator, *GormLedger) {
	t.Helper()
	ledger := setupTestLedger(t)
	co := NewCoordinator(ledger, time.UTC, time.Second)
	co.now = func() time.Time {
		return time.Date(2025, 10, 19, 15, 0, 0, 0, time.UTC)
	}
	return co, ledger
}

func validRequest(itemsDetail string) OrderRequest {
	return OrderRequest{
		Venue:       "venue_a",
		Name:        "王小明",
		Phone:       "0912345678",
		Method:      "現場自取",
		Eta:         "15:30",
		ItemsDetail: itemsDetail,
		Total:       "180",
		Summary:     "六蒜包 x2，金額：180元",
	}
}

func TestSubmitValidation(t *testing.T) {
	co, _ := newTestCoordinator(t)

	cases := []struct {
		name string
		mut  func(*OrderRequest)
	}{
		{"missing venue", func(r *OrderRequest) { r.Venue = "" }},
		{"missing method", func(r *OrderRequest) { r.Method = "" }},
		{"missing eta", func(r *OrderRequest) { r.Eta = "" }},
		{"no items", func(r *OrderRequest) { r.ItemsDetail = "" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validRequest("六蒜包 x2")
			tc.mut(&req)
			_, err := co.Submit(req)
			var validation *ValidationError
			assert.ErrorAs(t, err, &validation)
		})
	}
}

func TestSubmitEndToEnd(t *testing.T) {
	co, ledger := newTestCoordinator(t)

	// Stock starts at 5. Two orders of 2 succeed, the third fails with the
	// exact remaining/requested quantities and mutates nothing.
	res, err := co.Submit(validRequest("六蒜包 x2"))
	require.NoError(t, err)
	assert.Equal(t, "1019-A-001", res.OrderNo)
	assert.Equal(t, 3, stockOf(t, ledger, "venue_a", "六蒜包"))

	res, err = co.Submit(validRequest("六蒜包 x2"))
	require.NoError(t, err)
	assert.Equal(t, "1019-A-002", res.OrderNo)
	assert.Equal(t, 1, stockOf(t, ledger, "venue_a", "六蒜包"))

	_, err = co.Submit(validRequest("六蒜包 x2"))
	var stockErr *InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, 1, stockErr.Remaining)
	assert.Equal(t, 2, stockErr.Requested)
	assert.Equal(t, 1, stockOf(t, ledger, "venue_a", "六蒜包"))

	// The failed submission consumed no order number.
	res, err = co.Submit(validRequest("六蒜包 x1"))
	require.NoError(t, err)
	assert.Equal(t, "1019-A-003", res.OrderNo)
}

func TestSubmitAllOrNothing(t *testing.T) {
	co, ledger := newTestCoordinator(t)

	// 鹽水雞腿 only has 1 left, so the whole batch is rejected and the
	// plentiful item keeps its stock too.
	_, err := co.Submit(validRequest("六蒜包 x2/鹽水雞腿 x2"))
	var stockErr *InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, "鹽水雞腿", stockErr.Name)

	assert.Equal(t, 5, stockOf(t, ledger, "venue_a", "六蒜包"))
	assert.Equal(t, 1, stockOf(t, ledger, "venue_a", "鹽水雞腿"))
}

func TestSubmitUntrackedItemPassesThrough(t *testing.T) {
	co, _ := newTestCoordinator(t)

	res, err := co.Submit(validRequest("神秘商品 x50"))
	require.NoError(t, err)
	assert.Equal(t, "1019-A-001", res.OrderNo)
}

func TestSubmitPersistsOrder(t *testing.T) {
	co, ledger := newTestCoordinator(t)

	res, err := co.Submit(validRequest("六蒜包 x2"))
	require.NoError(t, err)

	order, err := ledger.FindOrder("venue_a", res.OrderNo)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.Equal(t, "王小明", order.CustomerName)
	assert.Equal(t, "中山店", order.VenueName)
	assert.Equal(t, "web", order.Source)
}

func TestSubmitPaused(t *testing.T) {
	co, ledger := newTestCoordinator(t)
	ledger.DB.Create(&models.Setting{Key: models.SettingPauseOrders, Value: "是"})

	_, err := co.Submit(validRequest("六蒜包 x2"))
	assert.ErrorIs(t, err, ErrOrdersPaused)
}

func TestSubmitUnknownVenue(t *testing.T) {
	co, _ := newTestCoordinator(t)
	req := validRequest("六蒜包 x2")
	req.Venue = "venue_x"
	_, err := co.Submit(req)
	assert.ErrorIs(t, err, ErrVenueNotFound)
}

func TestAmendPreservesNumberAndHandoff(t *testing.T) {
	co, ledger := newTestCoordinator(t)

	res, err := co.Submit(validRequest("六蒜包 x2"))
	require.NoError(t, err)
	stockAfterOrder := stockOf(t, ledger, "venue_a", "六蒜包")

	// Staff mark their handoff progress on the row; amendment must keep it.
	order, err := ledger.FindOrder("venue_a", res.OrderNo)
	require.NoError(t, err)
	order.HandoffProgress = "已備 1 份"
	require.NoError(t, ledger.UpdateOrder(order))

	amend := validRequest("六蒜包 x3")
	amend.Name = "王大明"
	amend.Note = "[修改訂單 " + res.OrderNo + "] 改約 16:00"

	amendRes, err := co.Submit(amend)
	require.NoError(t, err)
	assert.True(t, amendRes.Amended)
	assert.Equal(t, res.OrderNo, amendRes.OrderNo)

	updated, err := ledger.FindOrder("venue_a", res.OrderNo)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusAmended, updated.Status)
	assert.Equal(t, "王大明", updated.CustomerName)
	assert.Equal(t, "六蒜包 x3", updated.ItemsDetail)
	assert.Equal(t, "已備 1 份", updated.HandoffProgress)
	assert.Equal(t, "改約 16:00", updated.Note)

	// Amendment applies no stock delta, even though the quantity changed.
	assert.Equal(t, stockAfterOrder, stockOf(t, ledger, "venue_a", "六蒜包"))
}

func TestAmendMissingOrderFallsBackToNewOrder(t *testing.T) {
	co, ledger := newTestCoordinator(t)

	req := validRequest("六蒜包 x2")
	req.Note = "[修改訂單 1019-A-099] 順便加辣"

	res, err := co.Submit(req)
	require.NoError(t, err)
	assert.False(t, res.Amended)
	assert.Equal(t, "1019-A-001", res.OrderNo)
	assert.Equal(t, 3, stockOf(t, ledger, "venue_a", "六蒜包"))
}

// slowLedger delays availability checks so a second submission contends on
// the coordinator lock.
type slowLedger struct {
	*GormLedger
	delay time.Duration
}

func (l *slowLedger) CheckAvailability(venueCode string, items []models.OrderLineItem) error {
	time.Sleep(l.delay)
	return l.GormLedger.CheckAvailability(venueCode, items)
}

func TestSubmitLockTimeout(t *testing.T) {
	gormLedger := setupTestLedger(t)
	ledger := &slowLedger{GormLedger: gormLedger, delay: 300 * time.Millisecond}
	co := NewCoordinator(ledger, time.UTC, 50*time.Millisecond)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, err := co.Submit(validRequest("六蒜包 x1"))
		assert.NoError(t, err)
	}()

	time.Sleep(50 * time.Millisecond) // let the first submission take the lock
	_, err := co.Submit(validRequest("六蒜包 x1"))
	assert.ErrorIs(t, err, ErrLockTimeout)

	wg.Wait()
}
