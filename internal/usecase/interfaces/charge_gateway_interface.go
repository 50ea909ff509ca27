package interfaces

import (
	"context"
	"fmt"

	"rateio_pix/internal/domain/entities"
)

// IChargeGateway abstracts the Pix payment provider (Pagar.me).
//
// The adapter is a stateless translator: it never persists anything and never
// retries. Any failure means "charge state unknown"; callers must not assume
// the provider applied the operation.

type IChargeGateway interface {
	CreateCharge(ctx context.Context, amountCents int64, description string) (entities.Charge, error)
	GetCharge(ctx context.Context, chargeID string) (entities.Charge, error)
	// RefundCharge refunds a charge, fully when amountCents is zero.
	RefundCharge(ctx context.Context, chargeID string, amountCents int64) (entities.RefundResult, error)
}

// GatewayError wraps transport failures and provider 4xx/5xx responses.
// Body carries provider detail for logs; it is never shown to end users.

type GatewayError struct {
	StatusCode int
	Body       string
	Err        error
}

func (e *GatewayError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("pagarme gateway: %v", e.Err)
	}
	return fmt.Sprintf("pagarme gateway: status=%d body=%s", e.StatusCode, e.Body)
}

func (e *GatewayError) Unwrap() error {
	return e.Err
}
