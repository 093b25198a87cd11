package response

import (
	"time"

	"doorway_ops/internal/domain/entities"
)

type JobResponse struct {
	ID       string `json:"id"`
	ClientID string `json:"client_id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	Service  string `json:"service"`
	Status   string `json:"status"`

	Price        float64 `json:"price"`
	Discount     float64 `json:"discount"`
	TaxRate      float64 `json:"tax_rate"`
	InvoiceNotes string  `json:"invoice_notes,omitempty"`

	ScheduledDate *time.Time `json:"scheduled_date,omitempty"`

	PaymentID  string     `json:"payment_id,omitempty"`
	AmountPaid float64    `json:"amount_paid,omitempty"`
	PaidAt     *time.Time `json:"paid_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromJob(j entities.Job) JobResponse {
	return JobResponse{
		ID:            j.ID,
		ClientID:      j.ClientID,
		Name:          j.Name,
		Email:         j.Email,
		Phone:         j.Phone,
		Address:       j.Address,
		Service:       j.Service,
		Status:        string(j.Status),
		Price:         entities.RoundCents(j.Price),
		Discount:      entities.RoundCents(j.Discount),
		TaxRate:       j.TaxRate,
		InvoiceNotes:  j.InvoiceNotes,
		ScheduledDate: optionalTime(j.ScheduledDate),
		PaymentID:     j.PaymentID,
		AmountPaid:    entities.RoundCents(j.AmountPaid),
		PaidAt:        optionalTime(j.PaidAt),
		CreatedAt:     j.CreatedAt,
		UpdatedAt:     j.UpdatedAt,
	}
}

func FromJobs(jobs []entities.Job) []JobResponse {
	out := make([]JobResponse, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, FromJob(j))
	}
	return out
}

func optionalTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
