package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"doorway_ops/internal/adapter/http/handlers/mocks"
	"doorway_ops/internal/domain/entities"
	"doorway_ops/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestJobHandler_UpdateStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("unknown status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIJobUseCase(ctrl)
		h := NewJobHandler(uc)

		r := gin.New()
		r.PATCH("/v1/admin/jobs/:id/status", h.UpdateStatus)

		uc.EXPECT().UpdateStatus(gomock.Any(), "job-1", entities.JobStatus("DONE")).
			Return(entities.Job{}, usecase.ErrUnknownStatus)

		req := httptest.NewRequest(http.MethodPatch, "/v1/admin/jobs/job-1/status", bytes.NewBufferString(`{"status":"DONE"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("rejected transition", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIJobUseCase(ctrl)
		h := NewJobHandler(uc)

		r := gin.New()
		r.PATCH("/v1/admin/jobs/:id/status", h.UpdateStatus)

		uc.EXPECT().UpdateStatus(gomock.Any(), "job-1", entities.JobStatusPaid).
			Return(entities.Job{}, usecase.ErrInvalidTransition)

		req := httptest.NewRequest(http.MethodPatch, "/v1/admin/jobs/job-1/status", bytes.NewBufferString(`{"status":"PAID"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIJobUseCase(ctrl)
		h := NewJobHandler(uc)

		r := gin.New()
		r.PATCH("/v1/admin/jobs/:id/status", h.UpdateStatus)

		uc.EXPECT().UpdateStatus(gomock.Any(), "job-1", entities.JobStatusLost).
			Return(entities.Job{ID: "job-1", Status: entities.JobStatusLost}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/admin/jobs/job-1/status", bytes.NewBufferString(`{"status":"LOST"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestJobHandler_ListJobs(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("all jobs", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIJobUseCase(ctrl)
		h := NewJobHandler(uc)

		r := gin.New()
		r.GET("/v1/admin/jobs", h.ListJobs)

		uc.EXPECT().List(gomock.Any()).Return([]entities.Job{{ID: "job-1"}, {ID: "job-2"}}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/admin/jobs", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("filtered by client", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIJobUseCase(ctrl)
		h := NewJobHandler(uc)

		r := gin.New()
		r.GET("/v1/admin/jobs", h.ListJobs)

		uc.EXPECT().ListByClientID(gomock.Any(), "client-1").Return([]entities.Job{{ID: "job-1", ClientID: "client-1"}}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/admin/jobs?client_id=client-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestJobHandler_ScheduleJob(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIJobUseCase(ctrl)
		h := NewJobHandler(uc)

		r := gin.New()
		r.POST("/v1/admin/jobs/:id/schedule", h.ScheduleJob)

		req := httptest.NewRequest(http.MethodPost, "/v1/admin/jobs/job-1/schedule", bytes.NewBufferString(`{"date":"next tuesday"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIJobUseCase(ctrl)
		h := NewJobHandler(uc)

		r := gin.New()
		r.POST("/v1/admin/jobs/:id/schedule", h.ScheduleJob)

		date := time.Date(2026, 9, 2, 14, 30, 0, 0, time.UTC)
		uc.EXPECT().Schedule(gomock.Any(), "job-1", date).
			Return(entities.Job{ID: "job-1", Status: entities.JobStatusScheduled, ScheduledDate: date}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/admin/jobs/job-1/schedule", bytes.NewBufferString(`{"date":"2026-09-02T14:30:00Z"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestJobHandler_UpdateBilling(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("string amounts accepted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIJobUseCase(ctrl)
		h := NewJobHandler(uc)

		r := gin.New()
		r.PATCH("/v1/admin/jobs/:id/billing", h.UpdateBilling)

		uc.EXPECT().UpdateBilling(gomock.Any(), "job-1", 110.0, 10.0, 13.0, "fall special").
			Return(entities.Job{ID: "job-1", Price: 110, Discount: 10, TaxRate: 13}, nil)

		payload := `{"price":"110.00","discount":10,"tax_rate":"13","notes":"fall special"}`
		req := httptest.NewRequest(http.MethodPatch, "/v1/admin/jobs/job-1/billing", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestJobHandler_OnMyWay(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("sms unavailable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIJobUseCase(ctrl)
		h := NewJobHandler(uc)

		r := gin.New()
		r.POST("/v1/admin/jobs/:id/on-my-way", h.OnMyWay)

		uc.EXPECT().OnMyWay(gomock.Any(), "job-1").Return(entities.Job{}, usecase.ErrSMSUnavailable)

		req := httptest.NewRequest(http.MethodPost, "/v1/admin/jobs/job-1/on-my-way", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
	})
}
