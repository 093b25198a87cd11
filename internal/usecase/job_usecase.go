package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"doorway_ops/internal/domain/entities"
	"doorway_ops/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrJobNotFound       = errors.New("job not found")
	ErrClientNotFound    = errors.New("client not found")
	ErrInvalidJobID      = errors.New("invalid job id")
	ErrInvalidClientID   = errors.New("invalid client id")
	ErrUnknownStatus     = errors.New("unknown status label")
	ErrInvalidTransition = errors.New("status transition not allowed")
	ErrMissingDate       = errors.New("missing schedule date")
	ErrSMSUnavailable    = errors.New("sms sender not configured")
)

// IJobUseCase exposes the admin job operations.
//
// Status writes are guarded: a transition the workflow table rejects
// aborts with ErrInvalidTransition before anything is persisted.

type IJobUseCase interface {
	CreateFromClient(ctx context.Context, clientID string) (entities.Job, error)
	GetByID(ctx context.Context, id string) (entities.Job, error)
	List(ctx context.Context) ([]entities.Job, error)
	ListByClientID(ctx context.Context, clientID string) ([]entities.Job, error)
	UpdateStatus(ctx context.Context, id string, status entities.JobStatus) (entities.Job, error)
	UpdateBilling(ctx context.Context, id string, price, discount, taxRate float64, notes string) (entities.Job, error)
	Schedule(ctx context.Context, id string, date time.Time) (entities.Job, error)
	OnMyWay(ctx context.Context, id string) (entities.Job, error)
	Delete(ctx context.Context, id string) error
}

type JobUseCase struct {
	jobs      interfaces.IJobRepository
	clients   interfaces.IClientRepository
	calendar  interfaces.ICalendarService
	sms       interfaces.ISMSSender
	publisher interfaces.IEventPublisher
}

var _ IJobUseCase = (*JobUseCase)(nil)

// NewJobUseCase wires the job operations. calendar and sms are optional
// dependencies: pass nil when the vendor is not configured and the
// corresponding side effect is skipped (Schedule) or refused (OnMyWay).
func NewJobUseCase(jobs interfaces.IJobRepository, clients interfaces.IClientRepository, calendar interfaces.ICalendarService, sms interfaces.ISMSSender, publisher interfaces.IEventPublisher) *JobUseCase {
	return &JobUseCase{jobs: jobs, clients: clients, calendar: calendar, sms: sms, publisher: publisher}
}

func (u *JobUseCase) CreateFromClient(ctx context.Context, clientID string) (entities.Job, error) {
	clientID = strings.TrimSpace(clientID)
	if clientID == "" {
		return entities.Job{}, ErrInvalidClientID
	}

	client, err := u.clients.GetByID(ctx, clientID)
	if err != nil {
		return entities.Job{}, err
	}
	if client.ID == "" {
		return entities.Job{}, ErrClientNotFound
	}

	now := time.Now().UTC()
	job := entities.Job{
		ID:        uuid.NewString(),
		ClientID:  client.ID,
		Name:      client.Name,
		Email:     client.Email,
		Phone:     client.Phone,
		Address:   client.Address,
		Service:   defaultServiceType,
		Status:    entities.JobStatusLeadReceived,
		CreatedAt: now,
		UpdatedAt: now,
	}
	created, err := u.jobs.Create(ctx, job)
	if err != nil {
		return entities.Job{}, err
	}
	log.Printf("[job][usecase] created from client client_id=%s job_id=%s", client.ID, created.ID)

	if err := u.clients.IncrementJobCount(ctx, client.ID); err != nil {
		log.Printf("[job][usecase] job count bump failed client_id=%s err=%v", client.ID, err)
	}

	u.publish("job.created", created)
	return created, nil
}

func (u *JobUseCase) GetByID(ctx context.Context, id string) (entities.Job, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Job{}, ErrInvalidJobID
	}
	job, err := u.jobs.GetByID(ctx, id)
	if err != nil {
		return entities.Job{}, err
	}
	if job.ID == "" {
		return entities.Job{}, ErrJobNotFound
	}
	return job, nil
}

func (u *JobUseCase) List(ctx context.Context) ([]entities.Job, error) {
	return u.jobs.List(ctx)
}

func (u *JobUseCase) ListByClientID(ctx context.Context, clientID string) ([]entities.Job, error) {
	clientID = strings.TrimSpace(clientID)
	if clientID == "" {
		return nil, ErrInvalidClientID
	}
	return u.jobs.ListByClientID(ctx, clientID)
}

// UpdateStatus applies one guarded transition.
func (u *JobUseCase) UpdateStatus(ctx context.Context, id string, status entities.JobStatus) (entities.Job, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Job{}, ErrInvalidJobID
	}
	if !entities.KnownJobStatus(status) {
		return entities.Job{}, ErrUnknownStatus
	}

	job, err := u.jobs.GetByID(ctx, id)
	if err != nil {
		return entities.Job{}, err
	}
	if job.ID == "" {
		return entities.Job{}, ErrJobNotFound
	}
	if !entities.IsValidTransition(job.Status, status) {
		log.Printf("[job][usecase] transition rejected job_id=%s current=%s requested=%s", id, job.Status, status)
		return entities.Job{}, ErrInvalidTransition
	}

	updated, err := u.jobs.UpdateStatus(ctx, id, status)
	if err != nil {
		return entities.Job{}, err
	}
	if updated.ID == "" {
		return entities.Job{}, ErrJobNotFound
	}
	log.Printf("[job][usecase] status updated job_id=%s status=%s", id, status)
	u.publish("job.status_changed", updated)
	return updated, nil
}

func (u *JobUseCase) UpdateBilling(ctx context.Context, id string, price, discount, taxRate float64, notes string) (entities.Job, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Job{}, ErrInvalidJobID
	}

	// Billing fields are clamped, never rejected: the admin form sends
	// whatever was typed and zero is the documented default.
	inv := entities.ComputeInvoice(price, discount, taxRate)

	updated, err := u.jobs.UpdateBilling(ctx, id, inv.Price, inv.Discount, inv.TaxRate, strings.TrimSpace(notes))
	if err != nil {
		return entities.Job{}, err
	}
	if updated.ID == "" {
		return entities.Job{}, ErrJobNotFound
	}
	return updated, nil
}

// Schedule moves a job to SCHEDULED (always permitted by the workflow
// override) and then fires the calendar and SMS side effects. Both are
// secondary: their failures are logged and never unwind the committed
// status write.
func (u *JobUseCase) Schedule(ctx context.Context, id string, date time.Time) (entities.Job, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Job{}, ErrInvalidJobID
	}
	if date.IsZero() {
		return entities.Job{}, ErrMissingDate
	}

	job, err := u.jobs.GetByID(ctx, id)
	if err != nil {
		return entities.Job{}, err
	}
	if job.ID == "" {
		return entities.Job{}, ErrJobNotFound
	}

	updated, err := u.jobs.UpdateSchedule(ctx, id, date.UTC())
	if err != nil {
		return entities.Job{}, err
	}
	if updated.ID == "" {
		return entities.Job{}, ErrJobNotFound
	}
	log.Printf("[job][usecase] scheduled job_id=%s date=%s", id, date.UTC().Format(time.RFC3339))

	if u.calendar != nil {
		ev := interfaces.CalendarEvent{
			Title:       fmt.Sprintf("Service: %s", updated.Name),
			Description: fmt.Sprintf("Service: %s\nPhone: %s\nEmail: %s\nAddress: %s", updated.Service, updated.Phone, updated.Email, updated.Address),
			Location:    updated.Address,
			Start:       date.UTC(),
		}
		if err := u.calendar.CreateEvent(ctx, ev); err != nil {
			log.Printf("[job][usecase] calendar sync failed job_id=%s err=%v", id, err)
		}
	} else {
		log.Printf("[job][usecase] calendar not configured; skipping sync job_id=%s", id)
	}

	if u.sms != nil && updated.Phone != "" {
		body := fmt.Sprintf("Hi %s, your %s is booked for %s. Reply to this number with any questions.", updated.Name, updated.Service, date.Local().Format("Mon Jan 2 3:04 PM"))
		if err := u.sms.Send(ctx, updated.Phone, body); err != nil {
			log.Printf("[job][usecase] confirmation sms failed job_id=%s err=%v", id, err)
		}
	}

	u.publish("job.status_changed", updated)
	return updated, nil
}

// OnMyWay sends the heads-up SMS. Unlike Schedule's notifications the
// SMS is the whole point here, so a send failure is the operation's
// failure.
func (u *JobUseCase) OnMyWay(ctx context.Context, id string) (entities.Job, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Job{}, ErrInvalidJobID
	}
	if u.sms == nil {
		return entities.Job{}, ErrSMSUnavailable
	}

	job, err := u.jobs.GetByID(ctx, id)
	if err != nil {
		return entities.Job{}, err
	}
	if job.ID == "" {
		return entities.Job{}, ErrJobNotFound
	}

	body := fmt.Sprintf("Hi %s, we're on our way to %s for your %s.", job.Name, job.Address, job.Service)
	if err := u.sms.Send(ctx, job.Phone, body); err != nil {
		log.Printf("[job][usecase] on-my-way sms failed job_id=%s err=%v", id, err)
		return entities.Job{}, err
	}
	log.Printf("[job][usecase] on-my-way sms sent job_id=%s", id)
	return job, nil
}

func (u *JobUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidJobID
	}
	if err := u.jobs.Delete(ctx, id); err != nil {
		return err
	}
	log.Printf("[job][usecase] deleted job_id=%s", id)
	u.publish("job.deleted", entities.Job{ID: id})
	return nil
}

func (u *JobUseCase) publish(typ string, job entities.Job) {
	if u.publisher != nil {
		u.publisher.Publish(makeJobEvent(typ, job))
	}
}
