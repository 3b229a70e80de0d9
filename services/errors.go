package services

import (
	"errors"
	"fmt"
)

// Error messages are user-facing and go out verbatim in the ok:false payload.
var (
	ErrLockTimeout   = errors.New("系統忙碌中，請稍後再試")
	ErrVenueNotFound = errors.New("無效的場地代碼")
	ErrOrderNotFound = errors.New("找不到原訂單")
	ErrOrdersPaused  = errors.New("目前暫停接單，請稍後再試")
)

// ValidationError reports a missing required field before any lock is taken.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// InsufficientStockError names the first item whose remaining stock cannot
// cover the requested quantity.
type InsufficientStockError struct {
	Name      string
	Remaining int
	Requested int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("【%s】庫存不足（剩餘 %d 份，您訂購 %d 份）", e.Name, e.Remaining, e.Requested)
}
