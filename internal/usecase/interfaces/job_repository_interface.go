package interfaces

import (
	"context"
	"time"

	"doorway_ops/internal/domain/entities"
)

// IJobRepository abstracts DynamoDB persistence for Job.
//
// The lifecycle operations are deliberately narrow (one update method
// per admin action) so each maps to a single UpdateItem expression.

type IJobRepository interface {
	Create(ctx context.Context, j entities.Job) (entities.Job, error)
	GetByID(ctx context.Context, id string) (entities.Job, error)
	// List returns all jobs, newest first.
	List(ctx context.Context) ([]entities.Job, error)
	ListByClientID(ctx context.Context, clientID string) ([]entities.Job, error)
	// LatestByEmailSince returns the most recent job for the lowercased
	// email created at or after since, or a zero-value Job when none
	// exists. Backs the quote intake idempotency window.
	LatestByEmailSince(ctx context.Context, email string, since time.Time) (entities.Job, error)
	UpdateStatus(ctx context.Context, id string, status entities.JobStatus) (entities.Job, error)
	UpdateBilling(ctx context.Context, id string, price, discount, taxRate float64, notes string) (entities.Job, error)
	UpdateSchedule(ctx context.Context, id string, date time.Time) (entities.Job, error)
	MarkPaid(ctx context.Context, id, paymentID string, amount float64, paidAt time.Time) (entities.Job, error)
	Delete(ctx context.Context, id string) error
}
