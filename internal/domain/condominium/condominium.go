package condominium

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// BillingStatus tracks where a tenant stands in the billing cycle.
type BillingStatus string

const (
	BillingActive         BillingStatus = "active"
	BillingPaymentPending BillingStatus = "payment_pending"
	BillingSuspended      BillingStatus = "suspended"
)

func (s BillingStatus) IsValid() bool {
	switch s {
	case BillingActive, BillingPaymentPending, BillingSuspended:
		return true
	}
	return false
}

// ModuleName identifies a gateable functional area.
type ModuleName string

const (
	ModuleSecurity ModuleName = "security"
	ModuleHR       ModuleName = "hr"
	ModuleBilling  ModuleName = "billing"
	ModuleVisitors ModuleName = "visitors"
)

// KnownModules lists every gateable module. The module map of a condominium
// always carries an entry for each of these.
func KnownModules() []ModuleName {
	return []ModuleName{ModuleSecurity, ModuleHR, ModuleBilling, ModuleVisitors}
}

func (m ModuleName) IsValid() bool {
	for _, known := range KnownModules() {
		if m == known {
			return true
		}
	}
	return false
}

// Condominium is the tenant aggregate. Almost every other record in the
// system is scoped by its id.
type Condominium struct {
	id                uint
	uuid              string
	name              string
	billingStatus     BillingStatus
	seatCount         int
	currency          string
	modules           map[ModuleName]bool
	seatPriceOverride *int64 // cents; nil means global default applies
	createdAt         time.Time
	updatedAt         time.Time
}

// NewCondominium creates a tenant with every module enabled and defaults the
// billing status to active.
func NewCondominium(name string, seatCount int, currency string) (*Condominium, error) {
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if seatCount < 1 {
		return nil, fmt.Errorf("seat count must be at least 1")
	}

	modules := make(map[ModuleName]bool, len(KnownModules()))
	for _, m := range KnownModules() {
		modules[m] = true
	}

	now := time.Now()
	return &Condominium{
		uuid:          uuid.NewString(),
		name:          name,
		billingStatus: BillingActive,
		seatCount:     seatCount,
		currency:      currency,
		modules:       modules,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

// Reconstruct rebuilds a condominium from persistence.
func Reconstruct(
	id uint,
	uid string,
	name string,
	billingStatus BillingStatus,
	seatCount int,
	currency string,
	modules map[ModuleName]bool,
	seatPriceOverride *int64,
	createdAt, updatedAt time.Time,
) (*Condominium, error) {
	if id == 0 {
		return nil, fmt.Errorf("condominium ID cannot be zero")
	}
	if !billingStatus.IsValid() {
		return nil, fmt.Errorf("invalid billing status: %s", billingStatus)
	}
	if modules == nil {
		modules = make(map[ModuleName]bool)
	}
	// Backfill entries for modules introduced after this row was written.
	for _, m := range KnownModules() {
		if _, ok := modules[m]; !ok {
			modules[m] = true
		}
	}

	return &Condominium{
		id:                id,
		uuid:              uid,
		name:              name,
		billingStatus:     billingStatus,
		seatCount:         seatCount,
		currency:          currency,
		modules:           modules,
		seatPriceOverride: seatPriceOverride,
		createdAt:         createdAt,
		updatedAt:         updatedAt,
	}, nil
}

func (c *Condominium) ID() uint              { return c.id }
func (c *Condominium) UUID() string          { return c.uuid }
func (c *Condominium) Name() string          { return c.name }
func (c *Condominium) SeatCount() int        { return c.seatCount }
func (c *Condominium) Currency() string      { return c.currency }
func (c *Condominium) CreatedAt() time.Time  { return c.createdAt }
func (c *Condominium) UpdatedAt() time.Time  { return c.updatedAt }
func (c *Condominium) BillingStatus() BillingStatus {
	return c.billingStatus
}

// SeatPriceOverride returns the per-tenant seat price in cents, or nil when
// the global default applies.
func (c *Condominium) SeatPriceOverride() *int64 {
	if c.seatPriceOverride == nil {
		return nil
	}
	v := *c.seatPriceOverride
	return &v
}

// Modules returns a copy of the module map.
func (c *Condominium) Modules() map[ModuleName]bool {
	out := make(map[ModuleName]bool, len(c.modules))
	for k, v := range c.modules {
		out[k] = v
	}
	return out
}

// IsModuleEnabled reports whether a module is enabled. Absent entries default
// to enabled.
func (c *Condominium) IsModuleEnabled(m ModuleName) bool {
	enabled, ok := c.modules[m]
	if !ok {
		return true
	}
	return enabled
}

// SetModule toggles a module on or off.
func (c *Condominium) SetModule(m ModuleName, enabled bool) error {
	if !m.IsValid() {
		return fmt.Errorf("unknown module: %s", m)
	}
	c.modules[m] = enabled
	c.updatedAt = time.Now()
	return nil
}

// SetSeatCount replaces the seat allowance, used when a seat upgrade request
// is approved.
func (c *Condominium) SetSeatCount(seats int) error {
	if seats < 1 {
		return fmt.Errorf("seat count must be at least 1")
	}
	c.seatCount = seats
	c.updatedAt = time.Now()
	return nil
}

// SetPriceOverride sets the per-tenant seat price in cents. A price of zero
// clears the override so the global default applies again; negative prices
// are rejected before anything is persisted.
func (c *Condominium) SetPriceOverride(priceCents int64) error {
	switch {
	case priceCents < 0:
		return fmt.Errorf("seat price override cannot be negative")
	case priceCents == 0:
		c.seatPriceOverride = nil
	default:
		c.seatPriceOverride = &priceCents
	}
	c.updatedAt = time.Now()
	return nil
}

// SetBillingStatus transitions the billing status.
func (c *Condominium) SetBillingStatus(status BillingStatus) error {
	if !status.IsValid() {
		return fmt.Errorf("invalid billing status: %s", status)
	}
	c.billingStatus = status
	c.updatedAt = time.Now()
	return nil
}

// SetID assigns the persistence-generated id after the first save.
func (c *Condominium) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("condominium ID already set")
	}
	if id == 0 {
		return fmt.Errorf("condominium ID cannot be zero")
	}
	c.id = id
	return nil
}
