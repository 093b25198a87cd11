package response

import (
	"time"

	"doorway_ops/internal/domain/entities"
)

type ClientResponse struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Email          string  `json:"email"`
	Phone          string  `json:"phone"`
	Address        string  `json:"address"`
	PropertyNotes  string  `json:"property_notes,omitempty"`
	GateCode       string  `json:"gate_code,omitempty"`
	ReferralSource string  `json:"referral_source,omitempty"`
	Status         string  `json:"status"`
	Latitude       float64 `json:"latitude,omitempty"`
	Longitude      float64 `json:"longitude,omitempty"`
	TotalSpent     float64 `json:"total_spent"`
	JobCount       int     `json:"job_count"`

	CreatedAt     time.Time  `json:"created_at"`
	LastContactAt *time.Time `json:"last_contact_at,omitempty"`
}

func FromClient(c entities.Client) ClientResponse {
	return ClientResponse{
		ID:             c.ID,
		Name:           c.Name,
		Email:          c.Email,
		Phone:          c.Phone,
		Address:        c.Address,
		PropertyNotes:  c.PropertyNotes,
		GateCode:       c.GateCode,
		ReferralSource: c.ReferralSource,
		Status:         string(c.Status),
		Latitude:       c.Latitude,
		Longitude:      c.Longitude,
		TotalSpent:     entities.RoundCents(c.TotalSpent),
		JobCount:       c.JobCount,
		CreatedAt:      c.CreatedAt,
		LastContactAt:  optionalTime(c.LastContactAt),
	}
}

func FromClients(clients []entities.Client) []ClientResponse {
	out := make([]ClientResponse, 0, len(clients))
	for _, c := range clients {
		out = append(out, FromClient(c))
	}
	return out
}
