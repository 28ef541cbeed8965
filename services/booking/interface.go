package booking

import (
	"context"
	"time"

	"storabook/config"
	ledgerRepo "storabook/database/repository/bookingledger"
	customerRepo "storabook/database/repository/customer"
	"storabook/models"
	"storabook/services/calendar"

	"github.com/go-redis/redis/v8"
)

// AvailableSlotsResult carries the slot list for a day. Degraded is set
// when the calendar could not be reached and the fixed hourly fallback was
// served instead of the computed schedule.
type AvailableSlotsResult struct {
	Slots    []models.TimeSlot `json:"slots"`
	Degraded bool              `json:"degraded,omitempty"`
}

// BookingService exposes availability queries and the booking saga.
type BookingService interface {
	GetAvailableSlots(ctx context.Context, date string) (*AvailableSlotsResult, error)
	CreateBooking(ctx context.Context, req models.BookingRequest) (*models.BookingResult, error)
}

// DefaultBookingService implements BookingService over the calendar port
// and the record-store repositories.
type DefaultBookingService struct {
	Calendar  calendar.CalendarAPI
	Customers customerRepo.CustomerRepository
	Ledger    ledgerRepo.BookingLedgerRepository
	Policy    config.WorkingHoursPolicy
	Location  *time.Location

	// Cache is optional; when set, per-day slot computations are cached
	// briefly to absorb repeated queries.
	Cache *redis.Client

	// Now is a test seam; defaults to time.Now.
	Now func() time.Time
}

func (s *DefaultBookingService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *DefaultBookingService) location() *time.Location {
	if s.Location != nil {
		return s.Location
	}
	return time.Local
}
