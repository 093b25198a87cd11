package calendar

import (
	"context"
	"errors"
	"log"
	"time"

	"doorway_ops/internal/usecase/interfaces"

	gcal "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

var ErrCalendarNotConfigured = errors.New("google calendar not configured")

const eventDuration = time.Hour

// GoogleCalendarService writes scheduled jobs into a Google Calendar
// via a service account. Events get a fixed one hour duration; crews
// adjust them by hand when a job runs longer.
type GoogleCalendarService struct {
	svc        *gcal.Service
	calendarID string
}

var _ interfaces.ICalendarService = (*GoogleCalendarService)(nil)

func NewGoogleCalendarService(ctx context.Context, credentialsJSON, calendarID string) (*GoogleCalendarService, error) {
	if credentialsJSON == "" || calendarID == "" {
		return nil, ErrCalendarNotConfigured
	}

	svc, err := gcal.NewService(ctx,
		option.WithCredentialsJSON([]byte(credentialsJSON)),
		option.WithScopes(gcal.CalendarEventsScope),
	)
	if err != nil {
		log.Printf("[calendar][google] service init failed err=%v", err)
		return nil, err
	}
	log.Printf("[calendar][google] client initialized calendar_id=%s", calendarID)

	return &GoogleCalendarService{svc: svc, calendarID: calendarID}, nil
}

func (s *GoogleCalendarService) CreateEvent(ctx context.Context, ev interfaces.CalendarEvent) error {
	start := ev.Start.UTC()
	event := &gcal.Event{
		Summary:     ev.Title,
		Description: ev.Description,
		Location:    ev.Location,
		Start:       &gcal.EventDateTime{DateTime: start.Format(time.RFC3339)},
		End:         &gcal.EventDateTime{DateTime: start.Add(eventDuration).Format(time.RFC3339)},
	}

	created, err := s.svc.Events.Insert(s.calendarID, event).Context(ctx).Do()
	if err != nil {
		log.Printf("[calendar][google] event insert failed title=%q err=%v", ev.Title, err)
		return err
	}
	log.Printf("[calendar][google] event created event_id=%s start=%s", created.Id, start.Format(time.RFC3339))
	return nil
}
