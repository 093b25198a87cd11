package request

import (
	"errors"
	"strings"
	"time"
)

var ErrInvalidDate = errors.New("invalid schedule date")

type CreateJobRequest struct {
	ClientID string `json:"client_id" binding:"required"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// BillingRequest carries the invoice inputs for a job. Amounts accept
// both JSON numbers and numeric strings.
type BillingRequest struct {
	Price    Numeric `json:"price"`
	Discount Numeric `json:"discount"`
	TaxRate  Numeric `json:"tax_rate"`
	Notes    string  `json:"notes"`
}

type ScheduleRequest struct {
	Date string `json:"date" binding:"required"`
}

// ResolveDate parses the schedule date. RFC3339 is canonical; a bare
// date is accepted and pinned to 09:00 UTC, the default morning slot.
func (r ScheduleRequest) ResolveDate() (time.Time, error) {
	v := strings.TrimSpace(r.Date)
	if v == "" {
		return time.Time{}, ErrInvalidDate
	}
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return t, nil
	}
	if t, err := time.Parse("2006-01-02", v); err == nil {
		return t.Add(9 * time.Hour), nil
	}
	return time.Time{}, ErrInvalidDate
}
