package interfaces

import (
	"context"

	"doorway_ops/internal/domain/entities"
)

// IClientRepository abstracts DynamoDB persistence for Client.
//
// Callers rely on the empty-ID convention: lookups return a zero-value
// Client (ID == "") instead of an error when nothing matches.

type IClientRepository interface {
	Create(ctx context.Context, c entities.Client) (entities.Client, error)
	GetByID(ctx context.Context, id string) (entities.Client, error)
	// GetByEmail resolves a client by the lowercased email dedup key.
	GetByEmail(ctx context.Context, email string) (entities.Client, error)
	List(ctx context.Context) ([]entities.Client, error)
	Update(ctx context.Context, c entities.Client) (entities.Client, error)
	// UpdateContact refreshes the mutable contact fields and bumps
	// last_contact_at; used by repeat quote submissions.
	UpdateContact(ctx context.Context, id, name, phone, address string) (entities.Client, error)
	// AddSpend atomically adds amount to total_spent.
	AddSpend(ctx context.Context, id string, amount float64) (entities.Client, error)
	// IncrementJobCount atomically bumps job_count; called whenever a
	// job is created for the client.
	IncrementJobCount(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}
