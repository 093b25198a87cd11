package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"doorway_ops/internal/domain/entities"
	"doorway_ops/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrMissingClientFields = errors.New("missing required client fields")
	ErrClientAlreadyExists = errors.New("client already exists for this email")
)

// ClientInput carries the admin-editable client fields.
type ClientInput struct {
	Name           string
	Email          string
	Phone          string
	Address        string
	PropertyNotes  string
	GateCode       string
	ReferralSource string
	Status         entities.ClientStatus
}

// IClientUseCase exposes the admin client operations.

type IClientUseCase interface {
	Create(ctx context.Context, in ClientInput) (entities.Client, error)
	GetByID(ctx context.Context, id string) (entities.Client, error)
	List(ctx context.Context) ([]entities.Client, error)
	Update(ctx context.Context, id string, in ClientInput) (entities.Client, error)
	// Delete removes the client record only; its jobs are kept (no
	// cascade).
	Delete(ctx context.Context, id string) error
}

type ClientUseCase struct {
	clients interfaces.IClientRepository
}

var _ IClientUseCase = (*ClientUseCase)(nil)

func NewClientUseCase(clients interfaces.IClientRepository) *ClientUseCase {
	return &ClientUseCase{clients: clients}
}

func (u *ClientUseCase) Create(ctx context.Context, in ClientInput) (entities.Client, error) {
	name := strings.TrimSpace(in.Name)
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if name == "" || email == "" {
		return entities.Client{}, ErrMissingClientFields
	}

	existing, err := u.clients.GetByEmail(ctx, email)
	if err != nil {
		return entities.Client{}, err
	}
	if existing.ID != "" {
		return entities.Client{}, ErrClientAlreadyExists
	}

	status := in.Status
	if status == "" {
		status = entities.ClientStatusLead
	}

	now := time.Now().UTC()
	c := entities.Client{
		ID:             uuid.NewString(),
		Name:           name,
		Email:          email,
		Phone:          strings.TrimSpace(in.Phone),
		Address:        strings.TrimSpace(in.Address),
		PropertyNotes:  strings.TrimSpace(in.PropertyNotes),
		GateCode:       strings.TrimSpace(in.GateCode),
		ReferralSource: strings.TrimSpace(in.ReferralSource),
		Status:         status,
		CreatedAt:      now,
		LastContactAt:  now,
	}
	created, err := u.clients.Create(ctx, c)
	if err != nil {
		return entities.Client{}, err
	}
	log.Printf("[client][usecase] created client_id=%s email=%s", created.ID, email)
	return created, nil
}

func (u *ClientUseCase) GetByID(ctx context.Context, id string) (entities.Client, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Client{}, ErrInvalidClientID
	}
	c, err := u.clients.GetByID(ctx, id)
	if err != nil {
		return entities.Client{}, err
	}
	if c.ID == "" {
		return entities.Client{}, ErrClientNotFound
	}
	return c, nil
}

func (u *ClientUseCase) List(ctx context.Context) ([]entities.Client, error) {
	return u.clients.List(ctx)
}

func (u *ClientUseCase) Update(ctx context.Context, id string, in ClientInput) (entities.Client, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Client{}, ErrInvalidClientID
	}

	current, err := u.clients.GetByID(ctx, id)
	if err != nil {
		return entities.Client{}, err
	}
	if current.ID == "" {
		return entities.Client{}, ErrClientNotFound
	}

	if v := strings.TrimSpace(in.Name); v != "" {
		current.Name = v
	}
	if v := strings.ToLower(strings.TrimSpace(in.Email)); v != "" && v != current.Email {
		other, err := u.clients.GetByEmail(ctx, v)
		if err != nil {
			return entities.Client{}, err
		}
		if other.ID != "" && other.ID != id {
			return entities.Client{}, ErrClientAlreadyExists
		}
		current.Email = v
	}
	if v := strings.TrimSpace(in.Phone); v != "" {
		current.Phone = v
	}
	if v := strings.TrimSpace(in.Address); v != "" {
		current.Address = v
	}
	current.PropertyNotes = strings.TrimSpace(in.PropertyNotes)
	current.GateCode = strings.TrimSpace(in.GateCode)
	current.ReferralSource = strings.TrimSpace(in.ReferralSource)
	if in.Status != "" {
		current.Status = in.Status
	}

	updated, err := u.clients.Update(ctx, current)
	if err != nil {
		return entities.Client{}, err
	}
	log.Printf("[client][usecase] updated client_id=%s", id)
	return updated, nil
}

func (u *ClientUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidClientID
	}
	if err := u.clients.Delete(ctx, id); err != nil {
		return err
	}
	log.Printf("[client][usecase] deleted client_id=%s", id)
	return nil
}
