package usecase

import (
	"context"
	"errors"
	"testing"

	"doorway_ops/internal/domain/entities"
	mock_interfaces "doorway_ops/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestInvoiceUseCase_Preview(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	jobs := mock_interfaces.NewMockIJobRepository(ctrl)
	uc := NewInvoiceUseCase(jobs, nil, nil)

	jobs.EXPECT().GetByID(gomock.Any(), "job-1").
		Return(entities.Job{ID: "job-1", Price: 100, Discount: 10, TaxRate: 13}, nil)

	_, inv, err := uc.Preview(context.Background(), "job-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if inv.Subtotal != 90 {
		t.Fatalf("expected subtotal 90, got %v", inv.Subtotal)
	}
	if entities.RoundCents(inv.Total) != 101.70 {
		t.Fatalf("expected total 101.70, got %v", inv.Total)
	}
}

func TestInvoiceUseCase_Send(t *testing.T) {
	base := entities.Job{
		ID: "job-1", Email: "jordan.lee@example.com", Name: "Jordan",
		Status: entities.JobStatusCompleted, Price: 100, Discount: 10, TaxRate: 13,
	}

	t.Run("mailer not configured", func(t *testing.T) {
		uc := NewInvoiceUseCase(nil, nil, nil)
		_, err := uc.Send(context.Background(), "job-1")
		if !errors.Is(err, ErrMailerUnavailable) {
			t.Fatalf("expected ErrMailerUnavailable, got %v", err)
		}
	})

	t.Run("job without email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		jobs := mock_interfaces.NewMockIJobRepository(ctrl)
		mailer := mock_interfaces.NewMockIInvoiceMailer(ctrl)
		uc := NewInvoiceUseCase(jobs, mailer, nil)

		j := base
		j.Email = ""
		jobs.EXPECT().GetByID(gomock.Any(), "job-1").Return(j, nil)

		_, err := uc.Send(context.Background(), "job-1")
		if !errors.Is(err, ErrMissingJobEmail) {
			t.Fatalf("expected ErrMissingJobEmail, got %v", err)
		}
	})

	t.Run("transition to INVOICED rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		jobs := mock_interfaces.NewMockIJobRepository(ctrl)
		mailer := mock_interfaces.NewMockIInvoiceMailer(ctrl)
		uc := NewInvoiceUseCase(jobs, mailer, nil)

		j := base
		j.Status = entities.JobStatusPaid
		jobs.EXPECT().GetByID(gomock.Any(), "job-1").Return(j, nil)

		_, err := uc.Send(context.Background(), "job-1")
		if !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})

	t.Run("mail failure leaves status untouched", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		jobs := mock_interfaces.NewMockIJobRepository(ctrl)
		mailer := mock_interfaces.NewMockIInvoiceMailer(ctrl)
		uc := NewInvoiceUseCase(jobs, mailer, nil)

		jobs.EXPECT().GetByID(gomock.Any(), "job-1").Return(base, nil)
		mailer.EXPECT().SendInvoice(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("smtp down"))
		// No UpdateStatus expectation: the write must not happen.

		if _, err := uc.Send(context.Background(), "job-1"); err == nil {
			t.Fatalf("expected send failure to surface")
		}
	})

	t.Run("success advances to INVOICED", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		jobs := mock_interfaces.NewMockIJobRepository(ctrl)
		mailer := mock_interfaces.NewMockIInvoiceMailer(ctrl)
		publisher := mock_interfaces.NewMockIEventPublisher(ctrl)
		uc := NewInvoiceUseCase(jobs, mailer, publisher)

		jobs.EXPECT().GetByID(gomock.Any(), "job-1").Return(base, nil)
		mailer.EXPECT().SendInvoice(gomock.Any(), gomock.Any(), gomock.AssignableToTypeOf(entities.Invoice{})).DoAndReturn(
			func(_ context.Context, _ entities.Job, inv entities.Invoice) error {
				if inv.Subtotal != 90 {
					t.Fatalf("expected computed invoice, got %+v", inv)
				}
				return nil
			},
		)
		jobs.EXPECT().UpdateStatus(gomock.Any(), "job-1", entities.JobStatusInvoiced).
			Return(entities.Job{ID: "job-1", Status: entities.JobStatusInvoiced}, nil)
		publisher.EXPECT().Publish(gomock.Any())

		res, err := uc.Send(context.Background(), "job-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.JobStatusInvoiced {
			t.Fatalf("expected INVOICED, got %s", res.Status)
		}
	})
}
