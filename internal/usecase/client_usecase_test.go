package usecase

import (
	"context"
	"errors"
	"testing"

	"doorway_ops/internal/domain/entities"
	mock_interfaces "doorway_ops/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestClientUseCase_Create(t *testing.T) {
	t.Run("missing required fields", func(t *testing.T) {
		uc := NewClientUseCase(nil)

		for _, in := range []ClientInput{
			{},
			{Name: "Jordan Lee"},
			{Email: "jordan@example.com"},
			{Name: "  ", Email: "jordan@example.com"},
		} {
			if _, err := uc.Create(context.Background(), in); !errors.Is(err, ErrMissingClientFields) {
				t.Fatalf("expected ErrMissingClientFields for %+v, got %v", in, err)
			}
		}
	})

	t.Run("duplicate email rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		clients := mock_interfaces.NewMockIClientRepository(ctrl)
		uc := NewClientUseCase(clients)

		clients.EXPECT().GetByEmail(gomock.Any(), "jordan@example.com").
			Return(entities.Client{ID: "client-1"}, nil)

		_, err := uc.Create(context.Background(), ClientInput{Name: "Jordan Lee", Email: "Jordan@Example.com"})
		if !errors.Is(err, ErrClientAlreadyExists) {
			t.Fatalf("expected ErrClientAlreadyExists, got %v", err)
		}
	})

	t.Run("success normalizes email and defaults status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		clients := mock_interfaces.NewMockIClientRepository(ctrl)
		uc := NewClientUseCase(clients)

		clients.EXPECT().GetByEmail(gomock.Any(), "jordan@example.com").Return(entities.Client{}, nil)
		clients.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Client{})).DoAndReturn(
			func(_ context.Context, c entities.Client) (entities.Client, error) {
				if c.ID == "" || c.Email != "jordan@example.com" {
					t.Fatalf("unexpected client: %+v", c)
				}
				if c.Status != entities.ClientStatusLead {
					t.Fatalf("expected LEAD default, got %s", c.Status)
				}
				if c.CreatedAt.IsZero() || c.LastContactAt.IsZero() {
					t.Fatalf("expected timestamps, got %+v", c)
				}
				return c, nil
			},
		)

		created, err := uc.Create(context.Background(), ClientInput{
			Name:  " Jordan Lee ",
			Email: " Jordan@Example.COM ",
			Phone: "+14165550100",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.Name != "Jordan Lee" || created.Phone != "+14165550100" {
			t.Fatalf("expected trimmed fields, got %+v", created)
		}
	})
}

func TestClientUseCase_GetByID(t *testing.T) {
	t.Run("blank id", func(t *testing.T) {
		uc := NewClientUseCase(nil)
		if _, err := uc.GetByID(context.Background(), "  "); !errors.Is(err, ErrInvalidClientID) {
			t.Fatalf("expected ErrInvalidClientID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		clients := mock_interfaces.NewMockIClientRepository(ctrl)
		uc := NewClientUseCase(clients)

		clients.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Client{}, nil)

		if _, err := uc.GetByID(context.Background(), "missing"); !errors.Is(err, ErrClientNotFound) {
			t.Fatalf("expected ErrClientNotFound, got %v", err)
		}
	})

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		clients := mock_interfaces.NewMockIClientRepository(ctrl)
		uc := NewClientUseCase(clients)

		clients.EXPECT().GetByID(gomock.Any(), "client-1").
			Return(entities.Client{ID: "client-1", Name: "Jordan Lee"}, nil)

		c, err := uc.GetByID(context.Background(), "client-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if c.Name != "Jordan Lee" {
			t.Fatalf("unexpected client: %+v", c)
		}
	})
}

func TestClientUseCase_Update(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		clients := mock_interfaces.NewMockIClientRepository(ctrl)
		uc := NewClientUseCase(clients)

		clients.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Client{}, nil)

		if _, err := uc.Update(context.Background(), "missing", ClientInput{Name: "x"}); !errors.Is(err, ErrClientNotFound) {
			t.Fatalf("expected ErrClientNotFound, got %v", err)
		}
	})

	t.Run("email change collides with another client", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		clients := mock_interfaces.NewMockIClientRepository(ctrl)
		uc := NewClientUseCase(clients)

		clients.EXPECT().GetByID(gomock.Any(), "client-1").
			Return(entities.Client{ID: "client-1", Email: "old@example.com"}, nil)
		clients.EXPECT().GetByEmail(gomock.Any(), "taken@example.com").
			Return(entities.Client{ID: "client-2"}, nil)

		_, err := uc.Update(context.Background(), "client-1", ClientInput{Email: "taken@example.com"})
		if !errors.Is(err, ErrClientAlreadyExists) {
			t.Fatalf("expected ErrClientAlreadyExists, got %v", err)
		}
	})

	t.Run("blank fields keep current values", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		clients := mock_interfaces.NewMockIClientRepository(ctrl)
		uc := NewClientUseCase(clients)

		clients.EXPECT().GetByID(gomock.Any(), "client-1").
			Return(entities.Client{ID: "client-1", Name: "Jordan Lee", Email: "jordan@example.com", Phone: "+14165550100"}, nil)
		clients.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, c entities.Client) (entities.Client, error) {
				if c.Name != "Jordan Lee" || c.Phone != "+14165550100" {
					t.Fatalf("expected untouched contact fields, got %+v", c)
				}
				if c.GateCode != "1234" {
					t.Fatalf("expected updated gate code, got %+v", c)
				}
				return c, nil
			},
		)

		if _, err := uc.Update(context.Background(), "client-1", ClientInput{GateCode: "1234"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestClientUseCase_Delete(t *testing.T) {
	t.Run("blank id", func(t *testing.T) {
		uc := NewClientUseCase(nil)
		if err := uc.Delete(context.Background(), ""); !errors.Is(err, ErrInvalidClientID) {
			t.Fatalf("expected ErrInvalidClientID, got %v", err)
		}
	})

	t.Run("repository error surfaces", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		clients := mock_interfaces.NewMockIClientRepository(ctrl)
		uc := NewClientUseCase(clients)

		clients.EXPECT().Delete(gomock.Any(), "client-1").Return(errors.New("db"))

		if err := uc.Delete(context.Background(), "client-1"); err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}
