package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"doorway_ops/internal/adapter/http/handlers/mocks"
	"doorway_ops/internal/domain/entities"
	"doorway_ops/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestClientHandler_CreateClient(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("duplicate email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIClientUseCase(ctrl)
		h := NewClientHandler(uc)

		r := gin.New()
		r.POST("/v1/admin/clients", h.CreateClient)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Client{}, usecase.ErrClientAlreadyExists)

		payload := `{"name":"Dana","email":"dana@example.com"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/admin/clients", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIClientUseCase(ctrl)
		h := NewClientHandler(uc)

		r := gin.New()
		r.POST("/v1/admin/clients", h.CreateClient)

		uc.EXPECT().Create(gomock.Any(), usecase.ClientInput{
			Name: "Dana", Email: "dana@example.com", Phone: "555-0100", GateCode: "4321",
		}).Return(entities.Client{ID: "client-1", Name: "Dana", Status: entities.ClientStatusLead}, nil)

		payload := `{"name":"Dana","email":"dana@example.com","phone":"555-0100","gate_code":"4321"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/admin/clients", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})
}

func TestClientHandler_GetClient(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIClientUseCase(ctrl)
		h := NewClientHandler(uc)

		r := gin.New()
		r.GET("/v1/admin/clients/:id", h.GetClient)

		uc.EXPECT().GetByID(gomock.Any(), "client-9").Return(entities.Client{}, usecase.ErrClientNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/admin/clients/client-9", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestClientHandler_DeleteClient(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIClientUseCase(ctrl)
		h := NewClientHandler(uc)

		r := gin.New()
		r.DELETE("/v1/admin/clients/:id", h.DeleteClient)

		uc.EXPECT().Delete(gomock.Any(), "client-1").Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/v1/admin/clients/client-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})
}
