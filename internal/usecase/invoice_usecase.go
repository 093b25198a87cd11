package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"doorway_ops/internal/domain/entities"
	"doorway_ops/internal/usecase/interfaces"
)

var (
	ErrMailerUnavailable = errors.New("invoice mailer not configured")
	ErrMissingJobEmail   = errors.New("job has no client email")
)

// IInvoiceUseCase computes and delivers invoices.
//
// Send is the one operation whose entire purpose is an integration, so
// a mail failure aborts it: the job only advances to INVOICED after the
// email went out.

type IInvoiceUseCase interface {
	Preview(ctx context.Context, jobID string) (entities.Job, entities.Invoice, error)
	Send(ctx context.Context, jobID string) (entities.Job, error)
}

type InvoiceUseCase struct {
	jobs      interfaces.IJobRepository
	mailer    interfaces.IInvoiceMailer
	publisher interfaces.IEventPublisher
}

var _ IInvoiceUseCase = (*InvoiceUseCase)(nil)

func NewInvoiceUseCase(jobs interfaces.IJobRepository, mailer interfaces.IInvoiceMailer, publisher interfaces.IEventPublisher) *InvoiceUseCase {
	return &InvoiceUseCase{jobs: jobs, mailer: mailer, publisher: publisher}
}

func (u *InvoiceUseCase) Preview(ctx context.Context, jobID string) (entities.Job, entities.Invoice, error) {
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return entities.Job{}, entities.Invoice{}, ErrInvalidJobID
	}
	job, err := u.jobs.GetByID(ctx, jobID)
	if err != nil {
		return entities.Job{}, entities.Invoice{}, err
	}
	if job.ID == "" {
		return entities.Job{}, entities.Invoice{}, ErrJobNotFound
	}
	return job, entities.ComputeInvoice(job.Price, job.Discount, job.TaxRate), nil
}

func (u *InvoiceUseCase) Send(ctx context.Context, jobID string) (entities.Job, error) {
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return entities.Job{}, ErrInvalidJobID
	}
	if u.mailer == nil {
		return entities.Job{}, ErrMailerUnavailable
	}

	job, err := u.jobs.GetByID(ctx, jobID)
	if err != nil {
		return entities.Job{}, err
	}
	if job.ID == "" {
		return entities.Job{}, ErrJobNotFound
	}
	if job.Email == "" {
		return entities.Job{}, ErrMissingJobEmail
	}
	if !entities.IsValidTransition(job.Status, entities.JobStatusInvoiced) {
		log.Printf("[invoice][usecase] transition rejected job_id=%s current=%s", jobID, job.Status)
		return entities.Job{}, ErrInvalidTransition
	}

	inv := entities.ComputeInvoice(job.Price, job.Discount, job.TaxRate)

	if err := u.mailer.SendInvoice(ctx, job, inv); err != nil {
		log.Printf("[invoice][usecase] send failed job_id=%s err=%v", jobID, err)
		return entities.Job{}, err
	}
	log.Printf("[invoice][usecase] invoice emailed job_id=%s to=%s total=%.2f", jobID, job.Email, entities.RoundCents(inv.Total))

	updated, err := u.jobs.UpdateStatus(ctx, jobID, entities.JobStatusInvoiced)
	if err != nil {
		// The email is already out; the status write failing leaves the
		// job pre-INVOICED, which the admin can retry.
		return entities.Job{}, err
	}
	if updated.ID == "" {
		return entities.Job{}, ErrJobNotFound
	}
	u.publishInvoiced(updated)
	return updated, nil
}

func (u *InvoiceUseCase) publishInvoiced(job entities.Job) {
	if u.publisher != nil {
		u.publisher.Publish(makeJobEvent("job.status_changed", job))
	}
}
