package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"rateio_pix/internal/adapter/http/handlers/mocks"
	"rateio_pix/internal/domain/entities"
	"rateio_pix/internal/domain/pix"
	"rateio_pix/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newParticipantRouter(t *testing.T) (*gin.Engine, *mocks.MockIParticipantUseCase) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	uc := mocks.NewMockIParticipantUseCase(ctrl)
	h := NewParticipantHandler(uc)

	r := gin.New()
	r.POST("/v1/rateios/:rateio_id/participants", h.CreateParticipant)
	r.GET("/v1/rateios/:rateio_id/participants", h.ListParticipants)
	r.GET("/v1/participants/:participant_id", h.GetParticipant)
	return r, uc
}

func TestParticipantHandler_CreateParticipant(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid pix key", func(t *testing.T) {
		r, uc := newParticipantRouter(t)
		uc.EXPECT().Create(gomock.Any(), "r-1", "not-a-key", false).Return(entities.Participant{}, usecase.ErrInvalidPixKey)

		req := httptest.NewRequest(http.MethodPost, "/v1/rateios/r-1/participants", bytes.NewBufferString(`{"pix_key":"not-a-key"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("settled rateio conflicts", func(t *testing.T) {
		r, uc := newParticipantRouter(t)
		uc.EXPECT().Create(gomock.Any(), "r-1", "11144477735", false).Return(entities.Participant{}, usecase.ErrRateioNotActive)

		req := httptest.NewRequest(http.MethodPost, "/v1/rateios/r-1/participants", bytes.NewBufferString(`{"pix_key":"11144477735"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("joiner gets their raw key back", func(t *testing.T) {
		r, uc := newParticipantRouter(t)
		created := entities.Participant{
			ID:         "p-1",
			RateioID:   "r-1",
			PixKey:     "11144477735",
			PixKeyType: pix.KeyTypeCPF,
			Status:     entities.ParticipantStatusPendente,
		}
		uc.EXPECT().Create(gomock.Any(), "r-1", "11144477735", true).Return(created, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/rateios/r-1/participants", bytes.NewBufferString(`{"pix_key":"11144477735","auto_refund":true}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["pix_key"] != "11144477735" || body["pix_key_type"] != "CPF" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestParticipantHandler_GetParticipant(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		r, uc := newParticipantRouter(t)
		uc.EXPECT().GetByID(gomock.Any(), "p-x").Return(entities.Participant{}, usecase.ErrParticipantNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/participants/p-x", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success returns own raw key", func(t *testing.T) {
		r, uc := newParticipantRouter(t)
		p := entities.Participant{
			ID:         "p-1",
			RateioID:   "r-1",
			PixKey:     "maria@example.com",
			PixKeyType: pix.KeyTypeEmail,
			Status:     entities.ParticipantStatusPago,
			PaidAmount: 4000,
		}
		uc.EXPECT().GetByID(gomock.Any(), "p-1").Return(p, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/participants/p-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["pix_key"] != "maria@example.com" || body["paid_amount"] != float64(4000) {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestParticipantHandler_ListParticipants(t *testing.T) {
	gin.SetMode(gin.TestMode)

	rateio := entities.Rateio{ID: "r-1", CreatorID: 42, PrivacyMode: entities.PrivacyModeParcial, Status: entities.RateioStatusAtivo}
	participants := []entities.Participant{
		{ID: "p-1", RateioID: "r-1", PixKey: "11144477735", PixKeyType: pix.KeyTypeCPF, Status: entities.ParticipantStatusPendente},
	}

	t.Run("creator sees raw keys", func(t *testing.T) {
		r, uc := newParticipantRouter(t)
		uc.EXPECT().ListByRateio(gomock.Any(), "r-1").Return(rateio, participants, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/rateios/r-1/participants", nil)
		req.Header.Set("X-User-ID", "42")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if len(body) != 1 || body[0]["pix_key"] != "11144477735" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("other viewers get masked keys", func(t *testing.T) {
		r, uc := newParticipantRouter(t)
		uc.EXPECT().ListByRateio(gomock.Any(), "r-1").Return(rateio, participants, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/rateios/r-1/participants", nil)
		req.Header.Set("X-User-ID", "7")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if len(body) != 1 || body[0]["pix_key"] != "111***35" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("not found", func(t *testing.T) {
		r, uc := newParticipantRouter(t)
		uc.EXPECT().ListByRateio(gomock.Any(), "r-x").Return(entities.Rateio{}, nil, usecase.ErrRateioNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/rateios/r-x/participants", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}
