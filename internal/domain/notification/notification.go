// Package notification models guard-facing in-app notifications.
package notification

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("notification not found")

// Type tags the notification payload shape.
type Type string

const (
	TypeVisitorPreregistration Type = "visitor_preregistration"
	TypePanicAlert             Type = "panic_alert"
)

// Notification is one unread/read item in a user's notification list.
type Notification struct {
	id            uint
	uuid          string
	condominiumID uint
	recipientID   uint
	notifType     Type
	title         string
	body          string
	data          map[string]string
	read          bool
	createdAt     time.Time
}

func New(condominiumID, recipientID uint, notifType Type, title, body string, data map[string]string) (*Notification, error) {
	if condominiumID == 0 {
		return nil, fmt.Errorf("condominium ID is required")
	}
	if recipientID == 0 {
		return nil, fmt.Errorf("recipient ID is required")
	}
	if data == nil {
		data = map[string]string{}
	}
	return &Notification{
		uuid:          uuid.NewString(),
		condominiumID: condominiumID,
		recipientID:   recipientID,
		notifType:     notifType,
		title:         title,
		body:          body,
		data:          data,
		read:          false,
		createdAt:     time.Now(),
	}, nil
}

// Reconstruct rebuilds a notification from persistence.
func Reconstruct(
	id uint,
	uid string,
	condominiumID uint,
	recipientID uint,
	notifType Type,
	title, body string,
	data map[string]string,
	read bool,
	createdAt time.Time,
) (*Notification, error) {
	if id == 0 {
		return nil, fmt.Errorf("notification ID cannot be zero")
	}
	if data == nil {
		data = map[string]string{}
	}
	return &Notification{
		id:            id,
		uuid:          uid,
		condominiumID: condominiumID,
		recipientID:   recipientID,
		notifType:     notifType,
		title:         title,
		body:          body,
		data:          data,
		read:          read,
		createdAt:     createdAt,
	}, nil
}

func (n *Notification) ID() uint             { return n.id }
func (n *Notification) UUID() string         { return n.uuid }
func (n *Notification) CondominiumID() uint  { return n.condominiumID }
func (n *Notification) RecipientID() uint    { return n.recipientID }
func (n *Notification) Type() Type           { return n.notifType }
func (n *Notification) Title() string        { return n.title }
func (n *Notification) Body() string         { return n.body }
func (n *Notification) Read() bool           { return n.read }
func (n *Notification) CreatedAt() time.Time { return n.createdAt }

func (n *Notification) Data() map[string]string {
	out := make(map[string]string, len(n.data))
	for k, v := range n.data {
		out[k] = v
	}
	return out
}

// MarkRead flags the notification as read.
func (n *Notification) MarkRead() {
	n.read = true
}

// SetID assigns the persistence-generated id after the first save.
func (n *Notification) SetID(id uint) error {
	if n.id != 0 {
		return fmt.Errorf("notification ID already set")
	}
	if id == 0 {
		return fmt.Errorf("notification ID cannot be zero")
	}
	n.id = id
	return nil
}
