package usecase

import (
	"context"

	"rateio_pix/internal/domain/entities"
	"rateio_pix/internal/usecase/interfaces"
)

// Progress is the derived funding state of a rateio.

type Progress struct {
	PaidAmount   int64   `json:"paid_amount"`
	TargetAmount int64   `json:"target_amount"`
	Percent      float64 `json:"percent"`
	IsPaid       bool    `json:"is_paid"`
}

// ProgressCalculator derives progress from the transaction ledger.
//
// It recomputes on every call; nothing is cached. Transactions are listed
// through the rateio_id-index GSI, which is eventually consistent, so callers
// that just committed a transaction must pass it to ForRateioWith to not miss
// their own write. Refunded transactions left the PAGO status, so summing
// PAGO already nets out refunds.

type ProgressCalculator struct {
	txRepo interfaces.ITransactionRepository
}

func NewProgressCalculator(txRepo interfaces.ITransactionRepository) *ProgressCalculator {
	return &ProgressCalculator{txRepo: txRepo}
}

func (c *ProgressCalculator) ForRateio(ctx context.Context, r entities.Rateio) (Progress, error) {
	return c.ForRateioWith(ctx, r, entities.Transaction{})
}

// ForRateioWith derives progress counting committed as PAGO even when the
// index has not caught up with it yet. A zero committed value degrades to the
// plain index read.
func (c *ProgressCalculator) ForRateioWith(ctx context.Context, r entities.Rateio, committed entities.Transaction) (Progress, error) {
	txs, err := c.txRepo.ListByRateio(ctx, r.ID)
	if err != nil {
		return Progress{}, err
	}

	var paid int64
	seenCommitted := committed.ID == ""
	for _, tx := range txs {
		if tx.ID == committed.ID {
			seenCommitted = true
		}
		if tx.Status == entities.TransactionStatusPago {
			paid += tx.Amount
		}
	}
	if !seenCommitted {
		paid += committed.Amount
	}

	target := r.Target()
	percent := 0.0
	if target > 0 {
		percent = float64(paid) / float64(target) * 100
		if percent > 100 {
			percent = 100
		}
	}

	return Progress{
		PaidAmount:   paid,
		TargetAmount: target,
		Percent:      percent,
		IsPaid:       paid >= target,
	}, nil
}
