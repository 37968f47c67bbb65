// Package audit models the append-only audit log. Entries are immutable once
// written; they are consumed by export and reporting, never mutated.
package audit

import (
	"time"

	"github.com/google/uuid"
)

// EventType tags audit entries for filtering.
type EventType string

const (
	EventLogin              EventType = "login"
	EventLoginFailed        EventType = "login_failed"
	EventUserCreated        EventType = "user_created"
	EventUserDeactivated    EventType = "user_deactivated"
	EventAuthorizationMade  EventType = "authorization_created"
	EventAuthorizationGone  EventType = "authorization_deleted"
	EventVisitorCheckIn     EventType = "visitor_checkin"
	EventVisitorCheckOut    EventType = "visitor_checkout"
	EventPanicTriggered     EventType = "panic_triggered"
	EventPanicResolved      EventType = "panic_resolved"
	EventModuleToggled      EventType = "module_toggled"
	EventPricingChanged     EventType = "pricing_changed"
	EventPaymentConfirmed   EventType = "payment_confirmed"
	EventSeatUpgradeDecided EventType = "seat_upgrade_decided"
	EventShiftCancelled     EventType = "shift_cancelled"
)

// Entry is one immutable audit record.
type Entry struct {
	ID            uint
	UUID          string
	EventType     EventType
	UserUUID      string
	CondominiumID *uint // nil for platform-level events
	Resource      string
	Details       string
	IPAddress     string
	UserAgent     string
	CreatedAt     time.Time
}

// NewEntry builds an audit record.
func NewEntry(eventType EventType, userUUID string, condominiumID *uint, resource, details, ip, userAgent string) *Entry {
	return &Entry{
		UUID:          uuid.NewString(),
		EventType:     eventType,
		UserUUID:      userUUID,
		CondominiumID: condominiumID,
		Resource:      resource,
		Details:       details,
		IPAddress:     ip,
		UserAgent:     userAgent,
		CreatedAt:     time.Now(),
	}
}
