package models

import "time"

// Booking status options.
const (
	BookingStatusScheduled  = "Scheduled"
	BookingStatusInProgress = "In Progress"
	BookingStatusCompleted  = "Completed"
	BookingStatusCancelled  = "Cancelled"
)

// BookingRecord is the ledger row for a confirmed booking. It references a
// customer and the backing calendar event; a booking with no calendar event
// must never be persisted.
type BookingRecord struct {
	ID              string    `bson:"id" json:"id"`
	CustomerID      string    `bson:"customerId" json:"customerId"`
	StartDate       string    `bson:"startDate" json:"startDate"` // YYYY-MM-DD
	Status          string    `bson:"status" json:"status"`
	CalendarEventID string    `bson:"calendarEventId" json:"calendarEventId"`
	Notes           string    `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt       time.Time `bson:"createdAt" json:"createdAt"`
}

// BookingRequest is the inbound payload for creating a booking.
type BookingRequest struct {
	StartTime string `json:"start_time"`
	Name      string `json:"name"`
	Contact   string `json:"contact"`
	Address   string `json:"address,omitempty"`
}

// BookingResult is returned after a successful booking saga.
type BookingResult struct {
	BookingID       string    `json:"booking_id"`
	CalendarEventID string    `json:"calendar_event_id"`
	CustomerID      string    `json:"customer_id"`
	Start           time.Time `json:"start"`
	End             time.Time `json:"end"`
}
