package response

import "doorway_ops/internal/domain/entities"

// InvoiceResponse carries the computed invoice amounts, rounded to
// cents at this display edge only.
type InvoiceResponse struct {
	JobID     string  `json:"job_id"`
	Service   string  `json:"service"`
	Price     float64 `json:"price"`
	Discount  float64 `json:"discount"`
	TaxRate   float64 `json:"tax_rate"`
	Subtotal  float64 `json:"subtotal"`
	TaxAmount float64 `json:"tax_amount"`
	Total     float64 `json:"total"`
	Notes     string  `json:"notes,omitempty"`
}

func FromInvoice(job entities.Job, inv entities.Invoice) InvoiceResponse {
	return InvoiceResponse{
		JobID:     job.ID,
		Service:   job.Service,
		Price:     entities.RoundCents(inv.Price),
		Discount:  entities.RoundCents(inv.Discount),
		TaxRate:   inv.TaxRate,
		Subtotal:  entities.RoundCents(inv.Subtotal),
		TaxAmount: entities.RoundCents(inv.TaxAmount),
		Total:     entities.RoundCents(inv.Total),
		Notes:     job.InvoiceNotes,
	}
}
