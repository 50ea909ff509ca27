package interfaces

import (
	"context"

	"rateio_pix/internal/domain/entities"
)

// ISettlementLedger groups the multi-row writes triggered by one provider
// notification. Each method is a single DynamoDB TransactWriteItems call:
// either every row applies or none does, and the conditional checks double as
// idempotency guards: a replayed notification reports applied=false instead
// of double-counting.

type ISettlementLedger interface {
	// RecordPayment appends a PAGO transaction (PK = provider tx id, must not
	// exist), moves the participant PENDENTE -> PAGO with the notified
	// amount, marks the intent PAGO and appends the confirmation event.
	RecordPayment(ctx context.Context, tx entities.Transaction, intentID string, event entities.RateioEvent) (applied bool, err error)

	// RecordRefund moves the transaction and participant PAGO -> REEMBOLSADO
	// and appends the refund event.
	RecordRefund(ctx context.Context, txID, participantID string, event entities.RateioEvent) (applied bool, err error)

	// RecordFailure moves a PENDENTE transaction to FALHOU (when txID is
	// non-empty) and appends the informational event. The participant stays
	// PENDENTE so a new intent can be issued.
	RecordFailure(ctx context.Context, txID string, event entities.RateioEvent) (applied bool, err error)

	// CompleteRateio transitions ATIVO -> CONCLUIDO and appends the
	// completion event. The status condition makes the transition and the
	// event happen exactly once under concurrent notifications.
	CompleteRateio(ctx context.Context, rateioID string, event entities.RateioEvent) (applied bool, err error)
}
