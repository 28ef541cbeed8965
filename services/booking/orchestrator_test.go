package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"storabook/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCalendar struct {
	events []models.CalendarEvent

	listCalls   int
	createCalls int
	deleteCalls int
	deletedIDs  []string

	listErr   error
	createErr error
	deleteErr error
}

func (f *fakeCalendar) ListEvents(ctx context.Context, start, end time.Time) ([]models.CalendarEvent, error) {
	f.listCalls++
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.events, nil
}

func (f *fakeCalendar) CreateEvent(ctx context.Context, start, end time.Time, summary, description string) (*models.CalendarEvent, error) {
	f.createCalls++
	if f.createErr != nil {
		return nil, f.createErr
	}
	return &models.CalendarEvent{ID: "ev-42", Summary: summary, Start: start, End: end}, nil
}

func (f *fakeCalendar) DeleteEvent(ctx context.Context, id string) error {
	f.deleteCalls++
	f.deletedIDs = append(f.deletedIDs, id)
	return f.deleteErr
}

type fakeCustomers struct {
	upsertCalls int
	upsertIn    models.CustomerInput
	upsertErr   error
}

func (f *fakeCustomers) FindByContact(ctx context.Context, contact string) (*models.Customer, error) {
	return nil, nil
}

func (f *fakeCustomers) Upsert(ctx context.Context, in models.CustomerInput) (*models.Customer, error) {
	f.upsertCalls++
	f.upsertIn = in
	if f.upsertErr != nil {
		return nil, f.upsertErr
	}
	return &models.Customer{ID: "cust-1", Name: in.Name, Email: in.Email, Phone: in.Phone}, nil
}

func (f *fakeCustomers) GetByID(ctx context.Context, id string) (*models.Customer, error) {
	return nil, nil
}

type fakeLedger struct {
	createCalls int
	lastRecord  models.BookingRecord
	createErr   error
}

func (f *fakeLedger) Create(ctx context.Context, rec models.BookingRecord) (string, error) {
	f.createCalls++
	f.lastRecord = rec
	if f.createErr != nil {
		return "", f.createErr
	}
	return "bk-1", nil
}

func (f *fakeLedger) GetByID(ctx context.Context, id string) (*models.BookingRecord, error) {
	return nil, nil
}

func (f *fakeLedger) GetByCustomer(ctx context.Context, customerID string) ([]models.BookingRecord, error) {
	return nil, nil
}

func newTestService(cal *fakeCalendar, cust *fakeCustomers, led *fakeLedger) *DefaultBookingService {
	return &DefaultBookingService{
		Calendar:  cal,
		Customers: cust,
		Ledger:    led,
		Policy:    testPolicy(),
		Location:  time.UTC,
		Now:       func() time.Time { return monday(8, 0).AddDate(0, 0, -3) },
	}
}

func validRequest() models.BookingRequest {
	return models.BookingRequest{
		StartTime: monday(10, 0).Format(time.RFC3339),
		Name:      "Jordan Mills",
		Contact:   "jordan@example.com",
		Address:   "14 Quay Street",
	}
}

func TestCreateBookingHappyPath(t *testing.T) {
	cal := &fakeCalendar{}
	cust := &fakeCustomers{}
	led := &fakeLedger{}
	svc := newTestService(cal, cust, led)

	result, err := svc.CreateBooking(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, "bk-1", result.BookingID)
	assert.Equal(t, "ev-42", result.CalendarEventID)
	assert.Equal(t, "cust-1", result.CustomerID)
	assert.Equal(t, monday(10, 0), result.Start)
	assert.Equal(t, monday(11, 0), result.End)

	assert.Equal(t, 1, cust.upsertCalls)
	assert.Equal(t, "jordan@example.com", cust.upsertIn.Email)
	assert.Equal(t, 1, cal.createCalls)
	assert.Equal(t, 1, led.createCalls)
	assert.Zero(t, cal.deleteCalls)

	assert.Equal(t, "ev-42", led.lastRecord.CalendarEventID)
	assert.Equal(t, models.BookingStatusScheduled, led.lastRecord.Status)
	assert.Equal(t, "2026-09-07", led.lastRecord.StartDate)
	assert.Contains(t, led.lastRecord.Notes, "Time: 10:00 AM")
	assert.Contains(t, led.lastRecord.Notes, "Address: 14 Quay Street")
}

func TestCreateBookingValidationTouchesNoPorts(t *testing.T) {
	cases := []struct {
		name string
		req  models.BookingRequest
	}{
		{"missing name", models.BookingRequest{StartTime: monday(10, 0).Format(time.RFC3339), Contact: "a@b.com"}},
		{"missing contact", models.BookingRequest{StartTime: monday(10, 0).Format(time.RFC3339), Name: "Jordan"}},
		{"bad start time", models.BookingRequest{StartTime: "next tuesday", Name: "Jordan", Contact: "a@b.com"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cal := &fakeCalendar{}
			cust := &fakeCustomers{}
			led := &fakeLedger{}
			svc := newTestService(cal, cust, led)

			_, err := svc.CreateBooking(context.Background(), tc.req)
			require.Error(t, err)
			assert.True(t, IsValidation(err))
			assert.Zero(t, cust.upsertCalls)
			assert.Zero(t, cal.createCalls)
			assert.Zero(t, led.createCalls)
		})
	}
}

func TestCreateBookingCalendarFailureSkipsLedger(t *testing.T) {
	cal := &fakeCalendar{createErr: errors.New("calendar down")}
	cust := &fakeCustomers{}
	led := &fakeLedger{}
	svc := newTestService(cal, cust, led)

	_, err := svc.CreateBooking(context.Background(), validRequest())
	require.Error(t, err)

	be, ok := AsBookingError(err)
	require.True(t, ok)
	assert.Equal(t, CodeDependency, be.Code)
	assert.False(t, be.CompensationAttempted)
	assert.Zero(t, led.createCalls)
	assert.Zero(t, cal.deleteCalls)
}

func TestCreateBookingLedgerFailureCompensatesOnce(t *testing.T) {
	cal := &fakeCalendar{}
	cust := &fakeCustomers{}
	led := &fakeLedger{createErr: errors.New("record store down")}
	svc := newTestService(cal, cust, led)

	_, err := svc.CreateBooking(context.Background(), validRequest())
	require.Error(t, err)

	be, ok := AsBookingError(err)
	require.True(t, ok)
	assert.Equal(t, CodeDependency, be.Code)
	assert.True(t, be.CompensationAttempted)
	assert.False(t, be.CompensationFailed)

	assert.Equal(t, 1, cal.deleteCalls, "compensation runs exactly once")
	assert.Equal(t, []string{"ev-42"}, cal.deletedIDs)
}

func TestCreateBookingCompensationFailureReported(t *testing.T) {
	cal := &fakeCalendar{deleteErr: errors.New("still down")}
	cust := &fakeCustomers{}
	led := &fakeLedger{createErr: errors.New("record store down")}
	svc := newTestService(cal, cust, led)

	_, err := svc.CreateBooking(context.Background(), validRequest())
	require.Error(t, err)

	be, ok := AsBookingError(err)
	require.True(t, ok)
	assert.True(t, be.CompensationAttempted)
	assert.True(t, be.CompensationFailed)
	assert.Equal(t, 1, cal.deleteCalls)
}

func TestCreateBookingCustomerFailureStopsEarly(t *testing.T) {
	cal := &fakeCalendar{}
	cust := &fakeCustomers{upsertErr: errors.New("record store down")}
	led := &fakeLedger{}
	svc := newTestService(cal, cust, led)

	_, err := svc.CreateBooking(context.Background(), validRequest())
	require.Error(t, err)
	assert.False(t, IsValidation(err))
	assert.Zero(t, cal.createCalls)
	assert.Zero(t, led.createCalls)
}

func TestCreateBookingPhoneContact(t *testing.T) {
	cal := &fakeCalendar{}
	cust := &fakeCustomers{}
	led := &fakeLedger{}
	svc := newTestService(cal, cust, led)

	req := validRequest()
	req.Contact = "+64 21 555 0123"

	_, err := svc.CreateBooking(context.Background(), req)
	require.NoError(t, err)
	assert.Empty(t, cust.upsertIn.Email)
	assert.Equal(t, "+64 21 555 0123", cust.upsertIn.Phone)
}
