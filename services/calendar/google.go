package calendar

import (
	"context"
	"fmt"
	"time"

	"storabook/config"
	"storabook/models"
	"storabook/utils"

	"go.uber.org/zap"
	"golang.org/x/oauth2"
	googleoauth "golang.org/x/oauth2/google"
	gcal "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

// listRetryDelay spaces the single retry on the idempotent list call.
// Writes are never retried to avoid duplicate events.
const listRetryDelay = 500 * time.Millisecond

// GoogleCalendarService implements CalendarAPI against the Google Calendar
// v3 API using OAuth2 refresh-token credentials.
type GoogleCalendarService struct {
	svc        *gcal.Service
	calendarID string
	timezone   string
}

// NewGoogleCalendarService builds the calendar client from the loaded config.
func NewGoogleCalendarService(ctx context.Context, cfg config.Config) (*GoogleCalendarService, error) {
	oauthCfg := &oauth2.Config{
		ClientID:     cfg.GoogleClientID,
		ClientSecret: cfg.GoogleClientSecret,
		Endpoint:     googleoauth.Endpoint,
		Scopes:       []string{gcal.CalendarScope},
	}
	ts := oauthCfg.TokenSource(ctx, &oauth2.Token{RefreshToken: cfg.GoogleRefreshToken})

	svc, err := gcal.NewService(ctx, option.WithTokenSource(ts))
	if err != nil {
		return nil, fmt.Errorf("failed to build calendar service: %w", err)
	}
	return &GoogleCalendarService{
		svc:        svc,
		calendarID: cfg.GoogleCalendarID,
		timezone:   cfg.Timezone,
	}, nil
}

// ListEvents returns single events overlapping [start, end) in start order.
// The read is idempotent, so one transient failure is retried.
func (g *GoogleCalendarService) ListEvents(ctx context.Context, start, end time.Time) ([]models.CalendarEvent, error) {
	logger := utils.GetLogger()

	var result *gcal.Events
	var err error
	for attempt := 0; attempt < 2; attempt++ {
		result, err = g.svc.Events.List(g.calendarID).
			TimeMin(start.Format(time.RFC3339)).
			TimeMax(end.Format(time.RFC3339)).
			SingleEvents(true).
			OrderBy("startTime").
			Context(ctx).
			Do()
		if err == nil {
			break
		}
		logger.Warn("calendar list failed", zap.Int("attempt", attempt+1), zap.Error(err))
		if attempt == 0 {
			select {
			case <-time.After(listRetryDelay):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}
	}
	if err != nil {
		return nil, fmt.Errorf("calendar unavailable: %w", err)
	}

	events := make([]models.CalendarEvent, 0, len(result.Items))
	for _, item := range result.Items {
		// All-day events carry only a date; timed events carry dateTime.
		if item.Start == nil || item.End == nil || item.Start.DateTime == "" || item.End.DateTime == "" {
			continue
		}
		evStart, errS := time.Parse(time.RFC3339, item.Start.DateTime)
		evEnd, errE := time.Parse(time.RFC3339, item.End.DateTime)
		if errS != nil || errE != nil {
			logger.Warn("skipping event with unparseable time", zap.String("eventId", item.Id))
			continue
		}
		events = append(events, models.CalendarEvent{
			ID:      item.Id,
			Summary: item.Summary,
			Start:   evStart,
			End:     evEnd,
		})
	}
	return events, nil
}

// CreateEvent reserves [start, end) on the calendar. Never retried.
func (g *GoogleCalendarService) CreateEvent(ctx context.Context, start, end time.Time, summary, description string) (*models.CalendarEvent, error) {
	event := &gcal.Event{
		Summary:     summary,
		Description: description,
		Start: &gcal.EventDateTime{
			DateTime: start.Format(time.RFC3339),
			TimeZone: g.timezone,
		},
		End: &gcal.EventDateTime{
			DateTime: end.Format(time.RFC3339),
			TimeZone: g.timezone,
		},
	}

	created, err := g.svc.Events.Insert(g.calendarID, event).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("calendar unavailable: %w", err)
	}
	return &models.CalendarEvent{
		ID:      created.Id,
		Summary: created.Summary,
		Start:   start,
		End:     end,
	}, nil
}

// DeleteEvent removes an event by id.
func (g *GoogleCalendarService) DeleteEvent(ctx context.Context, id string) error {
	if err := g.svc.Events.Delete(g.calendarID, id).Context(ctx).Do(); err != nil {
		return fmt.Errorf("failed to delete calendar event %s: %w", id, err)
	}
	return nil
}
