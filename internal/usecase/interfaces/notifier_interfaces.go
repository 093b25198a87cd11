package interfaces

import (
	"context"
	"time"

	"doorway_ops/internal/domain/entities"
)

// CalendarEvent describes one calendar entry. Duration is fixed at one
// hour by the calendar adapter.
type CalendarEvent struct {
	Title       string
	Description string
	Location    string
	Start       time.Time
}

// ICalendarService abstracts the calendar vendor (Google Calendar).
// Injected as an optional dependency: when the credentials are absent
// the usecase holds nil and skips the sync.
type ICalendarService interface {
	CreateEvent(ctx context.Context, ev CalendarEvent) error
}

// ISMSSender abstracts the SMS vendor (Twilio).
type ISMSSender interface {
	Send(ctx context.Context, to, body string) error
}

// IInvoiceMailer abstracts the invoice email delivery (SMTP).
type IInvoiceMailer interface {
	SendInvoice(ctx context.Context, job entities.Job, inv entities.Invoice) error
}

// IEventPublisher broadcasts job-change events to live dashboard
// subscribers. Delivery is best-effort; slow subscribers drop events.
type IEventPublisher interface {
	Publish(event string)
}
