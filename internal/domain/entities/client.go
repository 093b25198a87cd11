package entities

import "time"

// ClientStatus is the lifecycle label of a customer relationship.

type ClientStatus string

const (
	ClientStatusLead     ClientStatus = "LEAD"
	ClientStatusActive   ClientStatus = "ACTIVE"
	ClientStatusInactive ClientStatus = "INACTIVE"
)

// Client is a customer relationship, independent of any single job.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (email-index): email — email is the natural dedup key, so it
//     is lowercased before every lookup and write.
//
// TotalSpent and JobCount are stored counters bumped opportunistically
// (job creation, payment webhook); they are conveniences for the
// dashboard, not invariants.
type Client struct {
	ID             string       `json:"id"`
	Name           string       `json:"name"`
	Email          string       `json:"email"`
	Phone          string       `json:"phone"`
	Address        string       `json:"address"`
	PropertyNotes  string       `json:"property_notes,omitempty"`
	GateCode       string       `json:"gate_code,omitempty"`
	ReferralSource string       `json:"referral_source,omitempty"`
	Status         ClientStatus `json:"status"`

	// Approximate geocoordinate for the service address. Filled by the
	// mock geocoder when it is enabled; never authoritative.
	Latitude  float64 `json:"latitude,omitempty"`
	Longitude float64 `json:"longitude,omitempty"`

	TotalSpent float64 `json:"total_spent"`
	JobCount   int     `json:"job_count"`

	CreatedAt     time.Time `json:"created_at"`
	LastContactAt time.Time `json:"last_contact_at"`
}
