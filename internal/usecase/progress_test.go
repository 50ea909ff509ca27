package usecase

import (
	"context"
	"errors"
	"testing"

	"rateio_pix/internal/domain/entities"
	mock_interfaces "rateio_pix/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestProgressCalculator_ForRateio(t *testing.T) {
	rateio := entities.Rateio{ID: "r-1", TotalAmount: 10000}

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		txRepo := mock_interfaces.NewMockITransactionRepository(ctrl)
		txRepo.EXPECT().ListByRateio(gomock.Any(), "r-1").Return(nil, errors.New("db"))

		_, err := NewProgressCalculator(txRepo).ForRateio(context.Background(), rateio)
		if err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("sums only PAGO transactions", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		txRepo := mock_interfaces.NewMockITransactionRepository(ctrl)
		txRepo.EXPECT().ListByRateio(gomock.Any(), "r-1").Return([]entities.Transaction{
			{ID: "t-1", Amount: 4000, Status: entities.TransactionStatusPago},
			{ID: "t-2", Amount: 3000, Status: entities.TransactionStatusFalhou},
			{ID: "t-3", Amount: 2000, Status: entities.TransactionStatusReembolsado},
			{ID: "t-4", Amount: 1000, Status: entities.TransactionStatusPago},
		}, nil)

		p, err := NewProgressCalculator(txRepo).ForRateio(context.Background(), rateio)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.PaidAmount != 5000 || p.TargetAmount != 10000 || p.Percent != 50 || p.IsPaid {
			t.Fatalf("unexpected progress: %+v", p)
		}
	})

	t.Run("explicit target below total", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		txRepo := mock_interfaces.NewMockITransactionRepository(ctrl)
		txRepo.EXPECT().ListByRateio(gomock.Any(), "r-1").Return([]entities.Transaction{
			{ID: "t-1", Amount: 6000, Status: entities.TransactionStatusPago},
		}, nil)

		r := entities.Rateio{ID: "r-1", TotalAmount: 10000, TargetAmount: 6000}
		p, err := NewProgressCalculator(txRepo).ForRateio(context.Background(), r)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !p.IsPaid || p.Percent != 100 {
			t.Fatalf("expected complete at explicit target, got %+v", p)
		}
	})

	t.Run("counts a committed transaction the index has not caught up with", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		txRepo := mock_interfaces.NewMockITransactionRepository(ctrl)
		txRepo.EXPECT().ListByRateio(gomock.Any(), "r-1").Return([]entities.Transaction{
			{ID: "t-1", Amount: 4000, Status: entities.TransactionStatusPago},
		}, nil)

		committed := entities.Transaction{ID: "t-2", Amount: 6000, Status: entities.TransactionStatusPago}
		p, err := NewProgressCalculator(txRepo).ForRateioWith(context.Background(), rateio, committed)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.PaidAmount != 10000 || !p.IsPaid {
			t.Fatalf("unexpected progress: %+v", p)
		}
	})

	t.Run("does not double-count a committed transaction the index returned", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		txRepo := mock_interfaces.NewMockITransactionRepository(ctrl)
		txRepo.EXPECT().ListByRateio(gomock.Any(), "r-1").Return([]entities.Transaction{
			{ID: "t-1", Amount: 4000, Status: entities.TransactionStatusPago},
			{ID: "t-2", Amount: 6000, Status: entities.TransactionStatusPago},
		}, nil)

		committed := entities.Transaction{ID: "t-2", Amount: 6000, Status: entities.TransactionStatusPago}
		p, err := NewProgressCalculator(txRepo).ForRateioWith(context.Background(), rateio, committed)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.PaidAmount != 10000 {
			t.Fatalf("expected 10000 without double counting, got %+v", p)
		}
	})

	t.Run("overpayment caps percent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		txRepo := mock_interfaces.NewMockITransactionRepository(ctrl)
		txRepo.EXPECT().ListByRateio(gomock.Any(), "r-1").Return([]entities.Transaction{
			{ID: "t-1", Amount: 10000, Status: entities.TransactionStatusPago},
			{ID: "t-2", Amount: 10000, Status: entities.TransactionStatusPago},
		}, nil)

		p, err := NewProgressCalculator(txRepo).ForRateio(context.Background(), rateio)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.PaidAmount != 20000 || p.Percent != 100 || !p.IsPaid {
			t.Fatalf("unexpected progress: %+v", p)
		}
	})
}
