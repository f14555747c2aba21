package domain

import (
	"time"

	"orchid/internal/errors"
)

type DiscountStatus string

const (
	DiscountInactive DiscountStatus = "INACTIVE"
	DiscountActive   DiscountStatus = "ACTIVE"
	DiscountExpired  DiscountStatus = "EXPIRED"
)

// DiscountCode carries no persisted status; validity is always derived
// from the window and the clock given to StatusOf.
type DiscountCode struct {
	ID              uint
	Code            string
	Description     string
	DiscountPercent *int
	DiscountAmount  *int64
	StartDate       time.Time
	EndDate         time.Time
}

func (c DiscountCode) StatusOf(now time.Time) DiscountStatus {
	if now.Before(c.StartDate) {
		return DiscountInactive
	}
	if now.After(c.EndDate) {
		return DiscountExpired
	}
	return DiscountActive
}

// ComputeDiscount returns the reduction for the given subtotal, clamped
// to [0, subtotal].
func (c DiscountCode) ComputeDiscount(subtotal int64) int64 {
	var discount int64
	if c.DiscountPercent != nil {
		discount = subtotal * int64(*c.DiscountPercent) / 100
	} else if c.DiscountAmount != nil {
		discount = *c.DiscountAmount
	}
	if discount < 0 {
		return 0
	}
	if discount > subtotal {
		return subtotal
	}
	return discount
}

// ValidateForCheckout rejects the code unless it is Active at the given
// instant, then returns the computed discount. Callers must invoke it
// again at order submission even if the code was already checked when
// displayed; the two calls can straddle the expiry boundary.
func (c DiscountCode) ValidateForCheckout(now time.Time, subtotal int64) (int64, error) {
	switch c.StatusOf(now) {
	case DiscountInactive:
		return 0, errors.NewExpiredError("discount code is not active yet")
	case DiscountExpired:
		return 0, errors.NewExpiredError("discount code has expired")
	}
	return c.ComputeDiscount(subtotal), nil
}
