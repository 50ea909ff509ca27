package usecase

import (
	"context"
	"errors"
	"testing"

	"rateio_pix/internal/domain/entities"
	mock_interfaces "rateio_pix/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type webhookMocks struct {
	intentRepo      *mock_interfaces.MockIPaymentIntentRepository
	participantRepo *mock_interfaces.MockIParticipantRepository
	rateioRepo      *mock_interfaces.MockIRateioRepository
	txRepo          *mock_interfaces.MockITransactionRepository
	ledger          *mock_interfaces.MockISettlementLedger
}

func newWebhookUseCaseForTest(t *testing.T) (*WebhookUseCase, webhookMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	m := webhookMocks{
		intentRepo:      mock_interfaces.NewMockIPaymentIntentRepository(ctrl),
		participantRepo: mock_interfaces.NewMockIParticipantRepository(ctrl),
		rateioRepo:      mock_interfaces.NewMockIRateioRepository(ctrl),
		txRepo:          mock_interfaces.NewMockITransactionRepository(ctrl),
		ledger:          mock_interfaces.NewMockISettlementLedger(ctrl),
	}
	uc := NewWebhookUseCase(m.intentRepo, m.participantRepo, m.rateioRepo, m.txRepo, m.ledger, NewProgressCalculator(m.txRepo))
	return uc, m
}

var (
	whIntent      = entities.PaymentIntent{ID: "ch_1", ParticipantID: "p-1"}
	whParticipant = entities.Participant{ID: "p-1", RateioID: "r-1", Status: entities.ParticipantStatusPendente}
	whRateio      = entities.Rateio{ID: "r-1", TotalAmount: 10000, Status: entities.RateioStatusAtivo}
)

func (m webhookMocks) expectResolution() {
	m.intentRepo.EXPECT().GetByID(gomock.Any(), "ch_1").Return(whIntent, nil)
	m.participantRepo.EXPECT().GetByID(gomock.Any(), "p-1").Return(whParticipant, nil)
	m.rateioRepo.EXPECT().GetByID(gomock.Any(), "r-1").Return(whRateio, nil)
}

func TestWebhookUseCase_HandleNotification(t *testing.T) {
	t.Run("unknown event type ignored before lookup", func(t *testing.T) {
		uc, _ := newWebhookUseCaseForTest(t)

		result, err := uc.HandleNotification(context.Background(), Notification{Type: "charge.created", ChargeID: "ch_1"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result != NotificationIgnored {
			t.Fatalf("expected ignored, got %s", result)
		}
	})

	t.Run("unknown charge", func(t *testing.T) {
		uc, m := newWebhookUseCaseForTest(t)
		m.intentRepo.EXPECT().GetByID(gomock.Any(), "ch_x").Return(entities.PaymentIntent{}, nil)

		_, err := uc.HandleNotification(context.Background(), Notification{Type: EventChargePaid, ChargeID: "ch_x"})
		if !errors.Is(err, ErrUnknownCharge) {
			t.Fatalf("expected ErrUnknownCharge, got %v", err)
		}
	})
}

func TestWebhookUseCase_SettlePaid(t *testing.T) {
	paidNotification := Notification{Type: EventChargePaid, ChargeID: "ch_1", TransactionID: "tran_1", Amount: 4000}

	t.Run("applied below target", func(t *testing.T) {
		uc, m := newWebhookUseCaseForTest(t)
		m.expectResolution()
		m.ledger.EXPECT().RecordPayment(gomock.Any(), gomock.AssignableToTypeOf(entities.Transaction{}), "ch_1", gomock.Any()).DoAndReturn(
			func(_ context.Context, tx entities.Transaction, _ string, event entities.RateioEvent) (bool, error) {
				if tx.ID != "tran_1" || tx.Amount != 4000 || tx.Status != entities.TransactionStatusPago {
					t.Fatalf("unexpected transaction: %+v", tx)
				}
				if event.EventType != entities.EventTypePagamentoConfirmado {
					t.Fatalf("unexpected event: %+v", event)
				}
				return true, nil
			},
		)
		m.txRepo.EXPECT().ListByRateio(gomock.Any(), "r-1").Return([]entities.Transaction{
			{ID: "tran_1", Amount: 4000, Status: entities.TransactionStatusPago},
		}, nil)

		result, err := uc.HandleNotification(context.Background(), paidNotification)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result != NotificationApplied {
			t.Fatalf("expected applied, got %s", result)
		}
	})

	t.Run("target reached completes the rateio", func(t *testing.T) {
		uc, m := newWebhookUseCaseForTest(t)
		full := paidNotification
		full.Amount = 10000

		m.expectResolution()
		m.ledger.EXPECT().RecordPayment(gomock.Any(), gomock.Any(), "ch_1", gomock.Any()).Return(true, nil)
		m.txRepo.EXPECT().ListByRateio(gomock.Any(), "r-1").Return([]entities.Transaction{
			{ID: "tran_1", Amount: 10000, Status: entities.TransactionStatusPago},
		}, nil)
		m.ledger.EXPECT().CompleteRateio(gomock.Any(), "r-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, event entities.RateioEvent) (bool, error) {
				if event.EventType != entities.EventTypeConcluido {
					t.Fatalf("expected CONCLUIDO event, got %s", event.EventType)
				}
				return true, nil
			},
		)

		result, err := uc.HandleNotification(context.Background(), full)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result != NotificationApplied {
			t.Fatalf("expected applied, got %s", result)
		}
	})

	t.Run("final payment completes despite a stale index read", func(t *testing.T) {
		uc, m := newWebhookUseCaseForTest(t)
		full := paidNotification
		full.Amount = 10000

		m.expectResolution()
		m.ledger.EXPECT().RecordPayment(gomock.Any(), gomock.Any(), "ch_1", gomock.Any()).Return(true, nil)
		// The rateio_id-index has not replicated the write committed above.
		m.txRepo.EXPECT().ListByRateio(gomock.Any(), "r-1").Return(nil, nil)
		m.ledger.EXPECT().CompleteRateio(gomock.Any(), "r-1", gomock.Any()).Return(true, nil)

		result, err := uc.HandleNotification(context.Background(), full)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result != NotificationApplied {
			t.Fatalf("expected applied, got %s", result)
		}
	})

	t.Run("duplicate delivery is a no-op", func(t *testing.T) {
		uc, m := newWebhookUseCaseForTest(t)
		m.expectResolution()
		m.ledger.EXPECT().RecordPayment(gomock.Any(), gomock.Any(), "ch_1", gomock.Any()).Return(false, nil)

		result, err := uc.HandleNotification(context.Background(), paidNotification)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result != NotificationDuplicate {
			t.Fatalf("expected duplicate, got %s", result)
		}
	})

	t.Run("completion race lost stays applied", func(t *testing.T) {
		uc, m := newWebhookUseCaseForTest(t)
		full := paidNotification
		full.Amount = 10000

		m.expectResolution()
		m.ledger.EXPECT().RecordPayment(gomock.Any(), gomock.Any(), "ch_1", gomock.Any()).Return(true, nil)
		m.txRepo.EXPECT().ListByRateio(gomock.Any(), "r-1").Return([]entities.Transaction{
			{ID: "tran_1", Amount: 10000, Status: entities.TransactionStatusPago},
		}, nil)
		// Another notification completed the rateio first.
		m.ledger.EXPECT().CompleteRateio(gomock.Any(), "r-1", gomock.Any()).Return(false, nil)

		result, err := uc.HandleNotification(context.Background(), full)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result != NotificationApplied {
			t.Fatalf("expected applied, got %s", result)
		}
	})

	t.Run("missing transaction id falls back to charge id", func(t *testing.T) {
		uc, m := newWebhookUseCaseForTest(t)
		n := Notification{Type: EventChargePaid, ChargeID: "ch_1", Amount: 4000}

		m.expectResolution()
		m.ledger.EXPECT().RecordPayment(gomock.Any(), gomock.Any(), "ch_1", gomock.Any()).DoAndReturn(
			func(_ context.Context, tx entities.Transaction, _ string, _ entities.RateioEvent) (bool, error) {
				if tx.ID != "ch_1" {
					t.Fatalf("expected charge id as ledger key, got %s", tx.ID)
				}
				return true, nil
			},
		)
		m.txRepo.EXPECT().ListByRateio(gomock.Any(), "r-1").Return(nil, nil)

		if _, err := uc.HandleNotification(context.Background(), n); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestWebhookUseCase_SettleRefunded(t *testing.T) {
	refundNotification := Notification{Type: EventChargeRefunded, ChargeID: "ch_1", TransactionID: "tran_1", Amount: 4000}

	t.Run("applied", func(t *testing.T) {
		uc, m := newWebhookUseCaseForTest(t)
		m.expectResolution()
		m.txRepo.EXPECT().GetByID(gomock.Any(), "tran_1").Return(entities.Transaction{ID: "tran_1", ParticipantID: "p-1", Status: entities.TransactionStatusPago}, nil)
		m.ledger.EXPECT().RecordRefund(gomock.Any(), "tran_1", "p-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _, _ string, event entities.RateioEvent) (bool, error) {
				if event.EventType != entities.EventTypeReembolsoSolicitado {
					t.Fatalf("expected REEMBOLSO_SOLICITADO, got %s", event.EventType)
				}
				return true, nil
			},
		)

		result, err := uc.HandleNotification(context.Background(), refundNotification)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result != NotificationApplied {
			t.Fatalf("expected applied, got %s", result)
		}
	})

	t.Run("duplicate refund is a no-op", func(t *testing.T) {
		uc, m := newWebhookUseCaseForTest(t)
		m.expectResolution()
		m.txRepo.EXPECT().GetByID(gomock.Any(), "tran_1").Return(entities.Transaction{ID: "tran_1", Status: entities.TransactionStatusReembolsado}, nil)
		m.ledger.EXPECT().RecordRefund(gomock.Any(), "tran_1", "p-1", gomock.Any()).Return(false, nil)

		result, err := uc.HandleNotification(context.Background(), refundNotification)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result != NotificationDuplicate {
			t.Fatalf("expected duplicate, got %s", result)
		}
	})

	t.Run("resolves by participant when provider omits the tx id", func(t *testing.T) {
		uc, m := newWebhookUseCaseForTest(t)
		n := Notification{Type: EventChargeRefunded, ChargeID: "ch_1", Amount: 4000}

		m.expectResolution()
		m.txRepo.EXPECT().GetByID(gomock.Any(), "ch_1").Return(entities.Transaction{}, nil)
		m.txRepo.EXPECT().ListByRateio(gomock.Any(), "r-1").Return([]entities.Transaction{
			{ID: "tran_other", ParticipantID: "p-2", Status: entities.TransactionStatusPago},
			{ID: "tran_mine", ParticipantID: "p-1", Status: entities.TransactionStatusPago},
		}, nil)
		m.ledger.EXPECT().RecordRefund(gomock.Any(), "tran_mine", "p-1", gomock.Any()).Return(true, nil)

		if _, err := uc.HandleNotification(context.Background(), n); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestWebhookUseCase_SettleFailed(t *testing.T) {
	failedNotification := Notification{Type: EventChargeFailed, ChargeID: "ch_1", TransactionID: "tran_1"}

	t.Run("pending transaction moves to FALHOU", func(t *testing.T) {
		uc, m := newWebhookUseCaseForTest(t)
		m.expectResolution()
		m.txRepo.EXPECT().GetByID(gomock.Any(), "tran_1").Return(entities.Transaction{ID: "tran_1", Status: entities.TransactionStatusPendente}, nil)
		m.ledger.EXPECT().RecordFailure(gomock.Any(), "tran_1", gomock.Any()).Return(true, nil)

		result, err := uc.HandleNotification(context.Background(), failedNotification)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result != NotificationApplied {
			t.Fatalf("expected applied, got %s", result)
		}
	})

	t.Run("no pending transaction still records the event", func(t *testing.T) {
		uc, m := newWebhookUseCaseForTest(t)
		m.expectResolution()
		m.txRepo.EXPECT().GetByID(gomock.Any(), "tran_1").Return(entities.Transaction{}, nil)
		m.ledger.EXPECT().RecordFailure(gomock.Any(), "", gomock.Any()).Return(true, nil)

		if _, err := uc.HandleNotification(context.Background(), failedNotification); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
