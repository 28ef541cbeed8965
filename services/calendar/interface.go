package calendar

import (
	"context"
	"time"

	"storabook/models"
)

// CalendarAPI is the port to the external calendar system. Implementations
// own transport and auth; callers only see event views.
type CalendarAPI interface {
	// ListEvents returns events overlapping [start, end).
	ListEvents(ctx context.Context, start, end time.Time) ([]models.CalendarEvent, error)
	// CreateEvent reserves [start, end) on the calendar.
	CreateEvent(ctx context.Context, start, end time.Time, summary, description string) (*models.CalendarEvent, error)
	// DeleteEvent removes an event. Best-effort: callers must treat failure
	// as informational, never as a reason to fail a larger operation.
	DeleteEvent(ctx context.Context, id string) error
}
