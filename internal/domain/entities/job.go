package entities

import "time"

// JobStatus represents the lifecycle stage of a service job.
//
// Domain notes:
//   - doorway_ops is the source of truth for job lifecycle state.
//   - Every status write goes through IsValidTransition first; there is
//     no warn-and-proceed path.

type JobStatus string

const (
	JobStatusLeadReceived JobStatus = "LEAD_RECEIVED"
	JobStatusScheduled    JobStatus = "SCHEDULED"
	JobStatusCompleted    JobStatus = "COMPLETED"
	JobStatusInvoiced     JobStatus = "INVOICED"
	JobStatusPaid         JobStatus = "PAID"
	JobStatusUnpaid       JobStatus = "UNPAID"
	JobStatusLost         JobStatus = "LOST"
	JobStatusCancelled    JobStatus = "CANCELLED"
)

// KnownJobStatus reports whether s is one of the closed status set.
func KnownJobStatus(s JobStatus) bool {
	switch s {
	case JobStatusLeadReceived, JobStatusScheduled, JobStatusCompleted,
		JobStatusInvoiced, JobStatusPaid, JobStatusUnpaid,
		JobStatusLost, JobStatusCancelled:
		return true
	}
	return false
}

// Job is one service engagement persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (client_id-index): client_id
//   - GSI2 (email-index): email (PK), created_at (SK) — used by the
//     quote intake dedup window.
//
// Contact fields are a snapshot of the client at creation time so the
// invoice keeps the details the work was booked under even if the
// client record is edited later.
type Job struct {
	ID       string    `json:"id"`
	ClientID string    `json:"client_id"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	Phone    string    `json:"phone"`
	Address  string    `json:"address"`
	Service  string    `json:"service"`
	Status   JobStatus `json:"status"`

	Price        float64 `json:"price"`
	Discount     float64 `json:"discount"`
	TaxRate      float64 `json:"tax_rate"`
	InvoiceNotes string  `json:"invoice_notes,omitempty"`

	ScheduledDate time.Time `json:"scheduled_date,omitempty"`

	PaymentID  string    `json:"payment_id,omitempty"`
	AmountPaid float64   `json:"amount_paid,omitempty"`
	PaidAt     time.Time `json:"paid_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
