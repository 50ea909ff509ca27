package interfaces

import (
	"context"

	"rateio_pix/internal/domain/entities"
)

// IParticipantRepository abstracts DynamoDB persistence for Participant.
//
// ListByRateio must return participants in creation order: the privacy
// projection assigns positional labels from that order and they may never
// shuffle between reads.

type IParticipantRepository interface {
	Create(ctx context.Context, p entities.Participant) (entities.Participant, error)
	GetByID(ctx context.Context, id string) (entities.Participant, error)
	ListByRateio(ctx context.Context, rateioID string) ([]entities.Participant, error)
	// MarkRefunded applies PAGO -> REEMBOLSADO. Zero value when the stored
	// status is not PAGO (already refunded, or never paid).
	MarkRefunded(ctx context.Context, id string) (entities.Participant, error)
}
