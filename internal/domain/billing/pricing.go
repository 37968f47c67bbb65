// Package billing models seat-based pricing, the seat upgrade workflow, and
// the append-only billing ledger.
package billing

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidPrice        = errors.New("seat price must be greater than zero")
	ErrNegativePrice       = errors.New("seat price cannot be negative")
	ErrUnsupportedCurrency = errors.New("unsupported currency")
	ErrPendingExists       = errors.New("a pending seat upgrade request already exists")
	ErrRequestDecided      = errors.New("seat upgrade request already decided")
	ErrRequestNotFound     = errors.New("seat upgrade request not found")
)

// SupportedCurrencies is the closed set of currencies global pricing accepts.
var SupportedCurrencies = map[string]bool{
	"USD": true,
	"EUR": true,
	"MXN": true,
}

// GlobalPricing is the single platform-wide pricing record. Prices are in
// cents of the configured currency.
type GlobalPricing struct {
	SeatPriceCents int64
	Currency       string
}

// Validate rejects out-of-range prices and unknown currencies before
// anything reaches storage.
func (g GlobalPricing) Validate() error {
	if g.SeatPriceCents <= 0 {
		return ErrInvalidPrice
	}
	if !SupportedCurrencies[g.Currency] {
		return fmt.Errorf("%w: %s", ErrUnsupportedCurrency, g.Currency)
	}
	return nil
}

// ResolveSeatPrice applies the two-level pricing rule in one place: a
// positive per-tenant override wins; otherwise the global default applies.
// Overrides are stored as nil once cleared, so a nil override always means
// "follow the global price".
func ResolveSeatPrice(override *int64, global GlobalPricing) int64 {
	if override != nil && *override > 0 {
		return *override
	}
	return global.SeatPriceCents
}

// Preview is the computed billing snapshot for one tenant.
type Preview struct {
	CondominiumUUID string `json:"condominium_id"`
	SeatsUsed       int64  `json:"seats_used"`
	SeatCount       int    `json:"seat_count"`
	SeatPriceCents  int64  `json:"seat_price"`
	TotalDueCents   int64  `json:"total_due"`
	BalanceCents    int64  `json:"balance"`
	Currency        string `json:"currency"`
	OverrideApplied bool   `json:"override_applied"`
}
