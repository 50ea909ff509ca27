package interfaces

import (
	"context"

	"rateio_pix/internal/domain/entities"
)

// ITransactionRepository reads the transaction ledger. Writes go through
// ISettlementLedger so a notification's effects land atomically.

type ITransactionRepository interface {
	GetByID(ctx context.Context, id string) (entities.Transaction, error)
	ListByRateio(ctx context.Context, rateioID string) ([]entities.Transaction, error)
}
