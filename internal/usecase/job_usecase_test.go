package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"doorway_ops/internal/domain/entities"
	mock_interfaces "doorway_ops/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestJobUseCase_UpdateStatus(t *testing.T) {
	t.Run("invalid job id", func(t *testing.T) {
		uc := NewJobUseCase(nil, nil, nil, nil, nil)
		_, err := uc.UpdateStatus(context.Background(), "  ", entities.JobStatusScheduled)
		if !errors.Is(err, ErrInvalidJobID) {
			t.Fatalf("expected ErrInvalidJobID, got %v", err)
		}
	})

	t.Run("unknown status label", func(t *testing.T) {
		uc := NewJobUseCase(nil, nil, nil, nil, nil)
		_, err := uc.UpdateStatus(context.Background(), "job-1", "DONE")
		if !errors.Is(err, ErrUnknownStatus) {
			t.Fatalf("expected ErrUnknownStatus, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		jobs := mock_interfaces.NewMockIJobRepository(ctrl)
		uc := NewJobUseCase(jobs, nil, nil, nil, nil)

		jobs.EXPECT().GetByID(gomock.Any(), "job-1").Return(entities.Job{}, nil)

		_, err := uc.UpdateStatus(context.Background(), "job-1", entities.JobStatusLost)
		if !errors.Is(err, ErrJobNotFound) {
			t.Fatalf("expected ErrJobNotFound, got %v", err)
		}
	})

	t.Run("rejected transition does not write", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		jobs := mock_interfaces.NewMockIJobRepository(ctrl)
		uc := NewJobUseCase(jobs, nil, nil, nil, nil)

		jobs.EXPECT().GetByID(gomock.Any(), "job-1").
			Return(entities.Job{ID: "job-1", Status: entities.JobStatusLeadReceived}, nil)

		_, err := uc.UpdateStatus(context.Background(), "job-1", entities.JobStatusPaid)
		if !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})

	t.Run("terminal status rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		jobs := mock_interfaces.NewMockIJobRepository(ctrl)
		uc := NewJobUseCase(jobs, nil, nil, nil, nil)

		jobs.EXPECT().GetByID(gomock.Any(), "job-1").
			Return(entities.Job{ID: "job-1", Status: entities.JobStatusPaid}, nil)

		_, err := uc.UpdateStatus(context.Background(), "job-1", entities.JobStatusInvoiced)
		if !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})

	t.Run("success publishes event", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		jobs := mock_interfaces.NewMockIJobRepository(ctrl)
		publisher := mock_interfaces.NewMockIEventPublisher(ctrl)
		uc := NewJobUseCase(jobs, nil, nil, nil, publisher)

		jobs.EXPECT().GetByID(gomock.Any(), "job-1").
			Return(entities.Job{ID: "job-1", Status: entities.JobStatusInvoiced}, nil)
		jobs.EXPECT().UpdateStatus(gomock.Any(), "job-1", entities.JobStatusUnpaid).
			Return(entities.Job{ID: "job-1", Status: entities.JobStatusUnpaid}, nil)
		publisher.EXPECT().Publish(gomock.Cond(func(s string) bool {
			return strings.Contains(s, "job.status_changed") && strings.Contains(s, "UNPAID")
		}))

		res, err := uc.UpdateStatus(context.Background(), " job-1 ", entities.JobStatusUnpaid)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.JobStatusUnpaid {
			t.Fatalf("expected UNPAID, got %s", res.Status)
		}
	})
}

func TestJobUseCase_CreateFromClient(t *testing.T) {
	t.Run("client not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		clients := mock_interfaces.NewMockIClientRepository(ctrl)
		uc := NewJobUseCase(nil, clients, nil, nil, nil)

		clients.EXPECT().GetByID(gomock.Any(), "client-1").Return(entities.Client{}, nil)

		_, err := uc.CreateFromClient(context.Background(), "client-1")
		if !errors.Is(err, ErrClientNotFound) {
			t.Fatalf("expected ErrClientNotFound, got %v", err)
		}
	})

	t.Run("snapshot copied", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		clients := mock_interfaces.NewMockIClientRepository(ctrl)
		jobs := mock_interfaces.NewMockIJobRepository(ctrl)
		uc := NewJobUseCase(jobs, clients, nil, nil, nil)

		clients.EXPECT().GetByID(gomock.Any(), "client-1").Return(entities.Client{
			ID: "client-1", Name: "Jordan", Email: "j@example.com", Phone: "555", Address: "12 King St W",
		}, nil)
		jobs.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, j entities.Job) (entities.Job, error) {
				if j.ClientID != "client-1" || j.Name != "Jordan" || j.Email != "j@example.com" {
					t.Fatalf("expected client snapshot, got %+v", j)
				}
				if j.Status != entities.JobStatusLeadReceived {
					t.Fatalf("expected LEAD_RECEIVED, got %s", j.Status)
				}
				return j, nil
			},
		)
		clients.EXPECT().IncrementJobCount(gomock.Any(), "client-1").Return(nil)

		if _, err := uc.CreateFromClient(context.Background(), "client-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestJobUseCase_Schedule(t *testing.T) {
	date := time.Date(2025, 7, 4, 15, 0, 0, 0, time.UTC)

	t.Run("missing date", func(t *testing.T) {
		uc := NewJobUseCase(nil, nil, nil, nil, nil)
		_, err := uc.Schedule(context.Background(), "job-1", time.Time{})
		if !errors.Is(err, ErrMissingDate) {
			t.Fatalf("expected ErrMissingDate, got %v", err)
		}
	})

	t.Run("calendar and sms failures do not block", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		jobs := mock_interfaces.NewMockIJobRepository(ctrl)
		calendar := mock_interfaces.NewMockICalendarService(ctrl)
		sms := mock_interfaces.NewMockISMSSender(ctrl)
		uc := NewJobUseCase(jobs, nil, calendar, sms, nil)

		jobs.EXPECT().GetByID(gomock.Any(), "job-1").
			Return(entities.Job{ID: "job-1", Status: entities.JobStatusLeadReceived, Phone: "555"}, nil)
		jobs.EXPECT().UpdateSchedule(gomock.Any(), "job-1", date).
			Return(entities.Job{ID: "job-1", Status: entities.JobStatusScheduled, Name: "Jordan", Phone: "555", Service: "Window Cleaning", Address: "12 King St W"}, nil)
		calendar.EXPECT().CreateEvent(gomock.Any(), gomock.Any()).Return(errors.New("calendar down"))
		sms.EXPECT().Send(gomock.Any(), "555", gomock.Any()).Return(errors.New("twilio down"))

		res, err := uc.Schedule(context.Background(), "job-1", date)
		if err != nil {
			t.Fatalf("expected success despite side-effect failures, got %v", err)
		}
		if res.Status != entities.JobStatusScheduled {
			t.Fatalf("expected SCHEDULED, got %s", res.Status)
		}
	})

	t.Run("nil vendors are skipped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		jobs := mock_interfaces.NewMockIJobRepository(ctrl)
		uc := NewJobUseCase(jobs, nil, nil, nil, nil)

		jobs.EXPECT().GetByID(gomock.Any(), "job-1").
			Return(entities.Job{ID: "job-1", Status: entities.JobStatusCancelled}, nil)
		jobs.EXPECT().UpdateSchedule(gomock.Any(), "job-1", date).
			Return(entities.Job{ID: "job-1", Status: entities.JobStatusScheduled}, nil)

		// Rescheduling a CANCELLED job is allowed by the override.
		if _, err := uc.Schedule(context.Background(), "job-1", date); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestJobUseCase_OnMyWay(t *testing.T) {
	t.Run("sms not configured", func(t *testing.T) {
		uc := NewJobUseCase(nil, nil, nil, nil, nil)
		_, err := uc.OnMyWay(context.Background(), "job-1")
		if !errors.Is(err, ErrSMSUnavailable) {
			t.Fatalf("expected ErrSMSUnavailable, got %v", err)
		}
	})

	t.Run("sms failure aborts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		jobs := mock_interfaces.NewMockIJobRepository(ctrl)
		sms := mock_interfaces.NewMockISMSSender(ctrl)
		uc := NewJobUseCase(jobs, nil, nil, sms, nil)

		jobs.EXPECT().GetByID(gomock.Any(), "job-1").
			Return(entities.Job{ID: "job-1", Phone: "555", Name: "Jordan"}, nil)
		sms.EXPECT().Send(gomock.Any(), "555", gomock.Any()).Return(errors.New("twilio down"))

		if _, err := uc.OnMyWay(context.Background(), "job-1"); err == nil {
			t.Fatalf("expected failure when the sms is the point")
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		jobs := mock_interfaces.NewMockIJobRepository(ctrl)
		sms := mock_interfaces.NewMockISMSSender(ctrl)
		uc := NewJobUseCase(jobs, nil, nil, sms, nil)

		jobs.EXPECT().GetByID(gomock.Any(), "job-1").
			Return(entities.Job{ID: "job-1", Phone: "555", Name: "Jordan", Address: "12 King St W", Service: "Window Cleaning"}, nil)
		sms.EXPECT().Send(gomock.Any(), "555", gomock.Cond(func(s string) bool {
			return strings.Contains(s, "Jordan") && strings.Contains(s, "on our way")
		})).Return(nil)

		if _, err := uc.OnMyWay(context.Background(), "job-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestJobUseCase_UpdateBilling(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	jobs := mock_interfaces.NewMockIJobRepository(ctrl)
	uc := NewJobUseCase(jobs, nil, nil, nil, nil)

	// Negative inputs are clamped to zero before the write.
	jobs.EXPECT().UpdateBilling(gomock.Any(), "job-1", 250.0, 0.0, 13.0, "net 30").
		Return(entities.Job{ID: "job-1", Price: 250, TaxRate: 13}, nil)

	res, err := uc.UpdateBilling(context.Background(), "job-1", 250, -10, 13, " net 30 ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Price != 250 {
		t.Fatalf("unexpected job: %+v", res)
	}
}
