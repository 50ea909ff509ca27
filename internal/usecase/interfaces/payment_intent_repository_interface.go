package interfaces

import (
	"context"

	"rateio_pix/internal/domain/entities"
)

// IPaymentIntentRepository abstracts DynamoDB persistence for PaymentIntent.
//
// The intent PK is the Pagar.me charge id, so webhook resolution is GetByID.

type IPaymentIntentRepository interface {
	Create(ctx context.Context, i entities.PaymentIntent) (entities.PaymentIntent, error)
	GetByID(ctx context.Context, id string) (entities.PaymentIntent, error)
	// GetLatestByParticipant returns the most recently created intent for a
	// participant, zero value when none exists.
	GetLatestByParticipant(ctx context.Context, participantID string) (entities.PaymentIntent, error)
}
