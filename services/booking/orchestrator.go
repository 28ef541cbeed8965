package booking

import (
	"context"
	"fmt"
	"strings"
	"time"

	"storabook/models"
	"storabook/utils"

	"go.uber.org/zap"
)

// CreateBooking runs the booking saga: validate, resolve the customer,
// reserve the calendar slot, persist the ledger record. A ledger failure
// triggers one best-effort deletion of the just-created calendar event so
// no orphaned reservation survives an unconfirmed booking.
func (s *DefaultBookingService) CreateBooking(ctx context.Context, req models.BookingRequest) (*models.BookingResult, error) {
	logger := utils.GetLogger()

	// Validation happens before any external call.
	if strings.TrimSpace(req.Name) == "" {
		return nil, NewValidationError("name is required")
	}
	if strings.TrimSpace(req.Contact) == "" {
		return nil, NewValidationError("contact is required")
	}
	start, err := time.Parse(time.RFC3339, req.StartTime)
	if err != nil {
		return nil, NewValidationError(fmt.Sprintf("invalid start_time: %v", err))
	}
	start = start.In(s.location())
	end := start.Add(time.Duration(s.Policy.BookingDuration) * time.Minute)

	// Resolve or create the customer.
	email, phone := models.ClassifyContact(req.Contact)
	customer, err := s.Customers.Upsert(ctx, models.CustomerInput{
		Name:    req.Name,
		Email:   email,
		Phone:   phone,
		Address: req.Address,
	})
	if err != nil {
		logger.Error("booking: customer resolution failed", zap.Error(err))
		return nil, NewDependencyError("failed to resolve customer", err)
	}

	// Reserve the calendar slot.
	address := req.Address
	if address == "" {
		address = "No address provided"
	}
	summary := fmt.Sprintf("Storage Collection - %s", req.Name)
	description := fmt.Sprintf("Collection service booking\nContact: %s\nAddress: %s", req.Contact, address)

	event, err := s.Calendar.CreateEvent(ctx, start, end, summary, description)
	if err != nil {
		logger.Error("booking: calendar reservation failed", zap.Error(err))
		return nil, NewDependencyError("failed to create calendar event", err)
	}
	logger.Info("booking: calendar event reserved",
		zap.String("eventId", event.ID), zap.Time("start", start))

	// Persist the ledger record referencing the calendar event.
	record := models.BookingRecord{
		CustomerID:      customer.ID,
		StartDate:       start.Format("2006-01-02"),
		Status:          models.BookingStatusScheduled,
		CalendarEventID: event.ID,
		Notes: fmt.Sprintf("Time: %s\nAddress: %s\nContact: %s",
			start.Format("03:04 PM"), address, req.Contact),
	}
	bookingID, err := s.Ledger.Create(ctx, record)
	if err != nil {
		// Compensate: remove the reservation so calendar and ledger do not
		// diverge. Attempted exactly once; its outcome is informational.
		compErr := s.Calendar.DeleteEvent(ctx, event.ID)
		if compErr != nil {
			logger.Error("booking: compensation failed, calendar event orphaned",
				zap.String("eventId", event.ID), zap.Error(compErr))
		} else {
			logger.Warn("booking: ledger write failed, calendar event rolled back",
				zap.String("eventId", event.ID))
		}
		return nil, &BookingError{
			Code:                  CodeDependency,
			Message:               "failed to persist booking record",
			Err:                   err,
			CompensationAttempted: true,
			CompensationFailed:    compErr != nil,
		}
	}

	logger.Info("booking: created",
		zap.String("bookingId", bookingID),
		zap.String("customerId", customer.ID),
		zap.String("eventId", event.ID))

	return &models.BookingResult{
		BookingID:       bookingID,
		CalendarEventID: event.ID,
		CustomerID:      customer.ID,
		Start:           start,
		End:             end,
	}, nil
}
