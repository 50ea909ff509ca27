package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"rateio_pix/internal/domain/entities"
	"rateio_pix/internal/usecase/interfaces"
	mock_interfaces "rateio_pix/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func newPaymentUseCaseForTest(t *testing.T) (*PaymentUseCase, *mock_interfaces.MockIPaymentIntentRepository, *mock_interfaces.MockIParticipantRepository, *mock_interfaces.MockIRateioRepository, *mock_interfaces.MockIChargeGateway) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	intentRepo := mock_interfaces.NewMockIPaymentIntentRepository(ctrl)
	participantRepo := mock_interfaces.NewMockIParticipantRepository(ctrl)
	rateioRepo := mock_interfaces.NewMockIRateioRepository(ctrl)
	gateway := mock_interfaces.NewMockIChargeGateway(ctrl)
	return NewPaymentUseCase(intentRepo, participantRepo, rateioRepo, gateway), intentRepo, participantRepo, rateioRepo, gateway
}

func TestPaymentUseCase_CreateIntent(t *testing.T) {
	participant := entities.Participant{ID: "p-1", RateioID: "r-1", Status: entities.ParticipantStatusPendente}
	rateio := entities.Rateio{ID: "r-1", Name: "Churrasco", TotalAmount: 10000, Status: entities.RateioStatusAtivo}

	t.Run("participant not found", func(t *testing.T) {
		uc, _, participantRepo, _, _ := newPaymentUseCaseForTest(t)
		participantRepo.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Participant{}, nil)

		_, err := uc.CreateIntent(context.Background(), "p-1")
		if !errors.Is(err, ErrParticipantNotFound) {
			t.Fatalf("expected ErrParticipantNotFound, got %v", err)
		}
	})

	t.Run("missing gateway fails instead of panicking", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		t.Cleanup(ctrl.Finish)
		uc := NewPaymentUseCase(
			mock_interfaces.NewMockIPaymentIntentRepository(ctrl),
			mock_interfaces.NewMockIParticipantRepository(ctrl),
			mock_interfaces.NewMockIRateioRepository(ctrl),
			nil,
		)

		_, err := uc.CreateIntent(context.Background(), "p-1")
		if !errors.Is(err, ErrGatewayNotConfigured) {
			t.Fatalf("expected ErrGatewayNotConfigured, got %v", err)
		}
	})

	t.Run("rateio not active", func(t *testing.T) {
		uc, _, participantRepo, rateioRepo, _ := newPaymentUseCaseForTest(t)
		done := rateio
		done.Status = entities.RateioStatusConcluido
		participantRepo.EXPECT().GetByID(gomock.Any(), "p-1").Return(participant, nil)
		rateioRepo.EXPECT().GetByID(gomock.Any(), "r-1").Return(done, nil)

		_, err := uc.CreateIntent(context.Background(), "p-1")
		if !errors.Is(err, ErrRateioNotActive) {
			t.Fatalf("expected ErrRateioNotActive, got %v", err)
		}
	})

	t.Run("open intent blocks a second charge", func(t *testing.T) {
		uc, intentRepo, participantRepo, rateioRepo, _ := newPaymentUseCaseForTest(t)
		participantRepo.EXPECT().GetByID(gomock.Any(), "p-1").Return(participant, nil)
		rateioRepo.EXPECT().GetByID(gomock.Any(), "r-1").Return(rateio, nil)
		intentRepo.EXPECT().GetLatestByParticipant(gomock.Any(), "p-1").Return(entities.PaymentIntent{
			ID:        "ch_1",
			Status:    entities.IntentStatusCriado,
			ExpiresAt: time.Now().UTC().Add(10 * time.Minute),
		}, nil)

		_, err := uc.CreateIntent(context.Background(), "p-1")
		if !errors.Is(err, ErrIntentStillOpen) {
			t.Fatalf("expected ErrIntentStillOpen, got %v", err)
		}
	})

	t.Run("expired intent allows a new charge", func(t *testing.T) {
		uc, intentRepo, participantRepo, rateioRepo, gateway := newPaymentUseCaseForTest(t)
		participantRepo.EXPECT().GetByID(gomock.Any(), "p-1").Return(participant, nil)
		rateioRepo.EXPECT().GetByID(gomock.Any(), "r-1").Return(rateio, nil)
		intentRepo.EXPECT().GetLatestByParticipant(gomock.Any(), "p-1").Return(entities.PaymentIntent{
			ID:        "ch_old",
			Status:    entities.IntentStatusCriado,
			ExpiresAt: time.Now().UTC().Add(-time.Minute),
		}, nil)
		gateway.EXPECT().CreateCharge(gomock.Any(), int64(10000), "Rateio: Churrasco").Return(entities.Charge{
			ID:        "ch_new",
			Status:    "pending",
			QRCode:    "qr",
			CopyPaste: "copy",
		}, nil)
		intentRepo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.PaymentIntent{})).DoAndReturn(
			func(_ context.Context, i entities.PaymentIntent) (entities.PaymentIntent, error) {
				if i.ID != "ch_new" || i.Status != entities.IntentStatusCriado {
					t.Fatalf("unexpected intent: %+v", i)
				}
				if i.ExpiresAt.Before(i.CreatedAt.Add(14 * time.Minute)) {
					t.Fatalf("expected 15 minute lifetime, got %v", i.ExpiresAt.Sub(i.CreatedAt))
				}
				return i, nil
			},
		)

		created, err := uc.CreateIntent(context.Background(), "p-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.ID != "ch_new" {
			t.Fatalf("unexpected intent id: %s", created.ID)
		}
	})

	t.Run("gateway failure leaves no intent", func(t *testing.T) {
		uc, intentRepo, participantRepo, rateioRepo, gateway := newPaymentUseCaseForTest(t)
		participantRepo.EXPECT().GetByID(gomock.Any(), "p-1").Return(participant, nil)
		rateioRepo.EXPECT().GetByID(gomock.Any(), "r-1").Return(rateio, nil)
		intentRepo.EXPECT().GetLatestByParticipant(gomock.Any(), "p-1").Return(entities.PaymentIntent{}, nil)
		gwErr := &interfaces.GatewayError{StatusCode: 500, Body: "internal"}
		gateway.EXPECT().CreateCharge(gomock.Any(), int64(10000), gomock.Any()).Return(entities.Charge{}, gwErr)

		_, err := uc.CreateIntent(context.Background(), "p-1")
		var got *interfaces.GatewayError
		if !errors.As(err, &got) {
			t.Fatalf("expected GatewayError, got %v", err)
		}
	})
}

func TestPaymentUseCase_GetStatus(t *testing.T) {
	participant := entities.Participant{ID: "p-1", RateioID: "r-1", Status: entities.ParticipantStatusPago, PaidAmount: 10000}

	t.Run("no intent", func(t *testing.T) {
		uc, intentRepo, participantRepo, _, _ := newPaymentUseCaseForTest(t)
		participantRepo.EXPECT().GetByID(gomock.Any(), "p-1").Return(participant, nil)
		intentRepo.EXPECT().GetLatestByParticipant(gomock.Any(), "p-1").Return(entities.PaymentIntent{}, nil)

		_, err := uc.GetStatus(context.Background(), "p-1")
		if !errors.Is(err, ErrIntentNotFound) {
			t.Fatalf("expected ErrIntentNotFound, got %v", err)
		}
	})

	t.Run("gateway failure degrades to stored state", func(t *testing.T) {
		uc, intentRepo, participantRepo, _, gateway := newPaymentUseCaseForTest(t)
		intent := entities.PaymentIntent{ID: "ch_1", Status: entities.IntentStatusPago, ExpiresAt: time.Now().UTC()}
		participantRepo.EXPECT().GetByID(gomock.Any(), "p-1").Return(participant, nil)
		intentRepo.EXPECT().GetLatestByParticipant(gomock.Any(), "p-1").Return(intent, nil)
		gateway.EXPECT().GetCharge(gomock.Any(), "ch_1").Return(entities.Charge{}, &interfaces.GatewayError{Err: errors.New("timeout")})

		view, err := uc.GetStatus(context.Background(), "p-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if view.ParticipantStatus != entities.ParticipantStatusPago || view.GatewayIssue == "" {
			t.Fatalf("unexpected view: %+v", view)
		}
		if view.ChargeStatus != "" {
			t.Fatalf("charge status must be empty on gateway failure")
		}
	})

	t.Run("missing gateway degrades to stored state", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		t.Cleanup(ctrl.Finish)
		intentRepo := mock_interfaces.NewMockIPaymentIntentRepository(ctrl)
		participantRepo := mock_interfaces.NewMockIParticipantRepository(ctrl)
		uc := NewPaymentUseCase(intentRepo, participantRepo, mock_interfaces.NewMockIRateioRepository(ctrl), nil)

		intent := entities.PaymentIntent{ID: "ch_1", Status: entities.IntentStatusPago, ExpiresAt: time.Now().UTC()}
		participantRepo.EXPECT().GetByID(gomock.Any(), "p-1").Return(participant, nil)
		intentRepo.EXPECT().GetLatestByParticipant(gomock.Any(), "p-1").Return(intent, nil)

		view, err := uc.GetStatus(context.Background(), "p-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if view.GatewayIssue == "" || view.ChargeStatus != "" {
			t.Fatalf("unexpected view: %+v", view)
		}
	})

	t.Run("live charge status included", func(t *testing.T) {
		uc, intentRepo, participantRepo, _, gateway := newPaymentUseCaseForTest(t)
		intent := entities.PaymentIntent{ID: "ch_1", Status: entities.IntentStatusCriado, ExpiresAt: time.Now().UTC().Add(5 * time.Minute)}
		participantRepo.EXPECT().GetByID(gomock.Any(), "p-1").Return(participant, nil)
		intentRepo.EXPECT().GetLatestByParticipant(gomock.Any(), "p-1").Return(intent, nil)
		gateway.EXPECT().GetCharge(gomock.Any(), "ch_1").Return(entities.Charge{ID: "ch_1", Status: "paid"}, nil)

		view, err := uc.GetStatus(context.Background(), "p-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if view.ChargeStatus != "paid" || view.IntentStatus != entities.IntentStatusCriado {
			t.Fatalf("unexpected view: %+v", view)
		}
	})
}

func TestPaymentUseCase_Refund(t *testing.T) {
	paid := entities.Participant{ID: "p-1", RateioID: "r-1", Status: entities.ParticipantStatusPago, PaidAmount: 10000}
	rateio := entities.Rateio{ID: "r-1", CreatorID: 7, Status: entities.RateioStatusAtivo}

	t.Run("not creator", func(t *testing.T) {
		uc, _, participantRepo, rateioRepo, _ := newPaymentUseCaseForTest(t)
		participantRepo.EXPECT().GetByID(gomock.Any(), "p-1").Return(paid, nil)
		rateioRepo.EXPECT().GetByID(gomock.Any(), "r-1").Return(rateio, nil)

		_, err := uc.Refund(context.Background(), 99, "p-1", 0)
		if !errors.Is(err, ErrNotCreator) {
			t.Fatalf("expected ErrNotCreator, got %v", err)
		}
	})

	t.Run("participant not paid", func(t *testing.T) {
		uc, _, participantRepo, rateioRepo, _ := newPaymentUseCaseForTest(t)
		pending := paid
		pending.Status = entities.ParticipantStatusPendente
		participantRepo.EXPECT().GetByID(gomock.Any(), "p-1").Return(pending, nil)
		rateioRepo.EXPECT().GetByID(gomock.Any(), "r-1").Return(rateio, nil)

		_, err := uc.Refund(context.Background(), 7, "p-1", 0)
		if !errors.Is(err, ErrParticipantNotPaid) {
			t.Fatalf("expected ErrParticipantNotPaid, got %v", err)
		}
	})

	t.Run("missing gateway fails instead of panicking", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		t.Cleanup(ctrl.Finish)
		uc := NewPaymentUseCase(
			mock_interfaces.NewMockIPaymentIntentRepository(ctrl),
			mock_interfaces.NewMockIParticipantRepository(ctrl),
			mock_interfaces.NewMockIRateioRepository(ctrl),
			nil,
		)

		_, err := uc.Refund(context.Background(), 7, "p-1", 0)
		if !errors.Is(err, ErrGatewayNotConfigured) {
			t.Fatalf("expected ErrGatewayNotConfigured, got %v", err)
		}
	})

	t.Run("gateway failure keeps participant PAGO", func(t *testing.T) {
		uc, intentRepo, participantRepo, rateioRepo, gateway := newPaymentUseCaseForTest(t)
		intent := entities.PaymentIntent{ID: "ch_1", ParticipantID: "p-1"}
		participantRepo.EXPECT().GetByID(gomock.Any(), "p-1").Return(paid, nil)
		rateioRepo.EXPECT().GetByID(gomock.Any(), "r-1").Return(rateio, nil)
		intentRepo.EXPECT().GetLatestByParticipant(gomock.Any(), "p-1").Return(intent, nil)
		gateway.EXPECT().RefundCharge(gomock.Any(), "ch_1", int64(0)).Return(entities.RefundResult{}, &interfaces.GatewayError{StatusCode: 502})

		_, err := uc.Refund(context.Background(), 7, "p-1", 0)
		var gwErr *interfaces.GatewayError
		if !errors.As(err, &gwErr) {
			t.Fatalf("expected GatewayError, got %v", err)
		}
	})

	t.Run("refund accepted marks participant", func(t *testing.T) {
		uc, intentRepo, participantRepo, rateioRepo, gateway := newPaymentUseCaseForTest(t)
		intent := entities.PaymentIntent{ID: "ch_1", ParticipantID: "p-1"}
		participantRepo.EXPECT().GetByID(gomock.Any(), "p-1").Return(paid, nil)
		rateioRepo.EXPECT().GetByID(gomock.Any(), "r-1").Return(rateio, nil)
		intentRepo.EXPECT().GetLatestByParticipant(gomock.Any(), "p-1").Return(intent, nil)
		gateway.EXPECT().RefundCharge(gomock.Any(), "ch_1", int64(0)).Return(entities.RefundResult{ID: "re_1", Status: "pending"}, nil)
		refunded := paid
		refunded.Status = entities.ParticipantStatusReembolsado
		participantRepo.EXPECT().MarkRefunded(gomock.Any(), "p-1").Return(refunded, nil)

		result, err := uc.Refund(context.Background(), 7, "p-1", 0)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.ID != "re_1" {
			t.Fatalf("unexpected refund result: %+v", result)
		}
	})
}
