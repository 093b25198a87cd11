package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"doorway_ops/internal/domain/entities"
	"doorway_ops/internal/usecase/interfaces"
)

var (
	ErrGatewayUnavailable = errors.New("payment gateway not configured")
	ErrInvalidPaymentID   = errors.New("invalid payment id")
)

// IPaymentWebhookUseCase settles jobs from verified payment
// notifications. Signature verification happens in the handler, before
// this usecase runs; by the time HandleNotification is called the
// notification is authentic.

type IPaymentWebhookUseCase interface {
	// HandleNotification resolves the provider payment and, when it is
	// approved and references a job, marks that job PAID. Notifications
	// for non-approved payments or without a job reference are
	// acknowledged as no-ops (zero Job, nil error): the provider
	// retries on non-2xx and there is nothing to retry.
	HandleNotification(ctx context.Context, providerPaymentID string) (entities.Job, error)
}

type PaymentWebhookUseCase struct {
	jobs      interfaces.IJobRepository
	clients   interfaces.IClientRepository
	gateway   interfaces.IPaymentGateway
	publisher interfaces.IEventPublisher
}

var _ IPaymentWebhookUseCase = (*PaymentWebhookUseCase)(nil)

func NewPaymentWebhookUseCase(jobs interfaces.IJobRepository, clients interfaces.IClientRepository, gateway interfaces.IPaymentGateway, publisher interfaces.IEventPublisher) *PaymentWebhookUseCase {
	return &PaymentWebhookUseCase{jobs: jobs, clients: clients, gateway: gateway, publisher: publisher}
}

func (u *PaymentWebhookUseCase) HandleNotification(ctx context.Context, providerPaymentID string) (entities.Job, error) {
	providerPaymentID = strings.TrimSpace(providerPaymentID)
	if providerPaymentID == "" {
		return entities.Job{}, ErrInvalidPaymentID
	}
	if u.gateway == nil {
		return entities.Job{}, ErrGatewayUnavailable
	}

	log.Printf("[webhook][usecase] resolving payment provider_payment_id=%s", providerPaymentID)
	info, err := u.gateway.GetPayment(ctx, providerPaymentID)
	if err != nil {
		log.Printf("[webhook][usecase] gateway lookup failed provider_payment_id=%s err=%v", providerPaymentID, err)
		return entities.Job{}, err
	}

	if info.Status != interfaces.PaymentStatusApproved {
		log.Printf("[webhook][usecase] ignoring non-approved payment provider_payment_id=%s status=%s", providerPaymentID, info.Status)
		return entities.Job{}, nil
	}
	if info.JobReference == "" {
		log.Printf("[webhook][usecase] payment has no job reference provider_payment_id=%s", providerPaymentID)
		return entities.Job{}, nil
	}

	job, err := u.jobs.GetByID(ctx, info.JobReference)
	if err != nil {
		return entities.Job{}, err
	}
	if job.ID == "" {
		return entities.Job{}, ErrJobNotFound
	}
	if job.Status == entities.JobStatusPaid {
		// Provider retries deliver the same notification more than once.
		log.Printf("[webhook][usecase] job already paid job_id=%s", job.ID)
		return job, nil
	}
	if !entities.IsValidTransition(job.Status, entities.JobStatusPaid) {
		log.Printf("[webhook][usecase] transition rejected job_id=%s current=%s", job.ID, job.Status)
		return entities.Job{}, ErrInvalidTransition
	}

	updated, err := u.jobs.MarkPaid(ctx, job.ID, info.ID, info.Amount, time.Now().UTC())
	if err != nil {
		return entities.Job{}, err
	}
	if updated.ID == "" {
		return entities.Job{}, ErrJobNotFound
	}
	log.Printf("[webhook][usecase] job paid job_id=%s payment_id=%s amount=%.2f", updated.ID, info.ID, info.Amount)

	// Spend counter is a dashboard convenience; its failure never undoes
	// the committed PAID write.
	if updated.ClientID != "" {
		if _, err := u.clients.AddSpend(ctx, updated.ClientID, info.Amount); err != nil {
			log.Printf("[webhook][usecase] spend counter update failed client_id=%s err=%v", updated.ClientID, err)
		}
	}

	if u.publisher != nil {
		u.publisher.Publish(makeJobEvent("job.paid", updated))
	}
	return updated, nil
}
