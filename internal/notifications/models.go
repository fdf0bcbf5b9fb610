package notifications

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// EventType identifies a reservation lifecycle event
type EventType string

const (
	EventReservationCreated       EventType = "reservation.created"
	EventReservationStatusChanged EventType = "reservation.status_changed"
	EventReservationDeleted       EventType = "reservation.deleted"
)

// Event is the message published for each reservation lifecycle change.
// Downstream consumers (mail, webhooks) subscribe to these.
type Event struct {
	ID                string    `json:"id"`
	Type              EventType `json:"type"`
	ReservationNumber string    `json:"reservationNumber"`
	Date              string    `json:"date,omitempty"`
	Units             []string  `json:"units,omitempty"`
	Email             string    `json:"email,omitempty"`
	PreviousStatus    string    `json:"previousStatus,omitempty"`
	NewStatus         string    `json:"newStatus,omitempty"`
	OccurredAt        time.Time `json:"occurredAt"`
}

// NewEvent builds an event with identity and timestamp filled in
func NewEvent(eventType EventType, reservationNumber string) *Event {
	return &Event{
		ID:                uuid.New().String(),
		Type:              eventType,
		ReservationNumber: reservationNumber,
		OccurredAt:        time.Now().UTC(),
	}
}

// ToJSON serializes the event for the wire
func (e *Event) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

// PartitionKey routes all events for one reservation to the same partition
func (e *Event) PartitionKey() string {
	return e.ReservationNumber
}
