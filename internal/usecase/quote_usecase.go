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
	ErrMissingQuoteFields = errors.New("missing required quote fields")
)

// quoteDedupWindow is the idempotency window for repeat submissions:
// a second quote from the same email inside it is treated as a
// duplicate of the first, not a new lead. Keyed on email only, so two
// genuinely different requests from one address within the window
// collapse into one; a known, accepted limitation.
const quoteDedupWindow = 10 * time.Minute

const defaultServiceType = "General Service"

// QuoteSubmission is an unauthenticated quote-form submission.
type QuoteSubmission struct {
	Name    string
	Email   string
	Phone   string
	Address string
	Service string
}

// QuoteResult reports the resolved client and job. Duplicate is set
// when the submission was absorbed by the idempotency window and JobID
// names the pre-existing job.
type QuoteResult struct {
	ClientID  string
	JobID     string
	Duplicate bool
}

// IQuoteUseCase accepts public quote submissions and turns them into a
// Client + Job pair without creating duplicates on rapid resubmission.

type IQuoteUseCase interface {
	Submit(ctx context.Context, sub QuoteSubmission) (QuoteResult, error)
}

// QuoteConfig is the explicit configuration for quote intake.
type QuoteConfig struct {
	// MockGeocoding stamps new clients with a fixed placeholder
	// coordinate instead of calling a geocoder.
	MockGeocoding bool
}

type QuoteUseCase struct {
	clients   interfaces.IClientRepository
	jobs      interfaces.IJobRepository
	publisher interfaces.IEventPublisher
	cfg       QuoteConfig
	now       func() time.Time
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(clients interfaces.IClientRepository, jobs interfaces.IJobRepository, publisher interfaces.IEventPublisher, cfg QuoteConfig) *QuoteUseCase {
	return &QuoteUseCase{
		clients:   clients,
		jobs:      jobs,
		publisher: publisher,
		cfg:       cfg,
		now:       time.Now,
	}
}

// Submit implements the intake flow:
//  1. duplicate check against the dedup window (email-keyed),
//  2. client resolution by email (update contact fields in place, or
//     create a new LEAD client),
//  3. job creation in LEAD_RECEIVED.
//
// Client and job writes are independent round trips; a failure between
// them leaves a client without a job, which the admin dashboard
// tolerates.
func (u *QuoteUseCase) Submit(ctx context.Context, sub QuoteSubmission) (QuoteResult, error) {
	name := strings.TrimSpace(sub.Name)
	email := strings.ToLower(strings.TrimSpace(sub.Email))
	phone := strings.TrimSpace(sub.Phone)
	address := strings.TrimSpace(sub.Address)
	service := strings.TrimSpace(sub.Service)

	if name == "" || email == "" || phone == "" || address == "" {
		return QuoteResult{}, ErrMissingQuoteFields
	}
	if service == "" {
		service = defaultServiceType
	}

	now := u.now().UTC()

	recent, err := u.jobs.LatestByEmailSince(ctx, email, now.Add(-quoteDedupWindow))
	if err != nil {
		return QuoteResult{}, err
	}
	if recent.ID != "" {
		log.Printf("[quote][usecase] duplicate suppressed email=%s job_id=%s", email, recent.ID)
		return QuoteResult{ClientID: recent.ClientID, JobID: recent.ID, Duplicate: true}, nil
	}

	client, err := u.clients.GetByEmail(ctx, email)
	if err != nil {
		return QuoteResult{}, err
	}
	if client.ID != "" {
		client, err = u.clients.UpdateContact(ctx, client.ID, name, phone, address)
		if err != nil {
			return QuoteResult{}, err
		}
	} else {
		c := entities.Client{
			ID:            uuid.NewString(),
			Name:          name,
			Email:         email,
			Phone:         phone,
			Address:       address,
			Status:        entities.ClientStatusLead,
			CreatedAt:     now,
			LastContactAt: now,
		}
		if u.cfg.MockGeocoding {
			c.Latitude, c.Longitude = mockGeocode(address)
		}
		client, err = u.clients.Create(ctx, c)
		if err != nil {
			return QuoteResult{}, err
		}
	}

	job := entities.Job{
		ID:        uuid.NewString(),
		ClientID:  client.ID,
		Name:      name,
		Email:     email,
		Phone:     phone,
		Address:   address,
		Service:   service,
		Status:    entities.JobStatusLeadReceived,
		CreatedAt: now,
		UpdatedAt: now,
	}
	created, err := u.jobs.Create(ctx, job)
	if err != nil {
		return QuoteResult{}, err
	}
	log.Printf("[quote][usecase] lead created email=%s client_id=%s job_id=%s", email, client.ID, created.ID)

	// Stored counter only; a failed bump is not worth failing the lead.
	if err := u.clients.IncrementJobCount(ctx, client.ID); err != nil {
		log.Printf("[quote][usecase] job count bump failed client_id=%s err=%v", client.ID, err)
	}

	if u.publisher != nil {
		u.publisher.Publish(makeJobEvent("job.created", created))
	}

	return QuoteResult{ClientID: client.ID, JobID: created.ID}, nil
}

// mockGeocode returns a stable placeholder coordinate. A real geocoder
// never shipped; the dashboard only needs something plottable.
func mockGeocode(address string) (lat, lng float64) {
	var h uint32
	for _, r := range address {
		h = h*31 + uint32(r)
	}
	return 43.65 + float64(h%1000)/100000, -79.38 - float64(h%1000)/100000
}
