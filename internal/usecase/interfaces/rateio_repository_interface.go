package interfaces

import (
	"context"

	"rateio_pix/internal/domain/entities"
)

// IRateioRepository abstracts DynamoDB persistence for Rateio.
//
// Status and privacy updates are compare-and-swap writes: they only apply
// when the stored row still matches the expected prior state, and return a
// zero-value Rateio when the condition fails. The usecase layer decides
// whether that means "not found", "already transitioned" or "conflict".

type IRateioRepository interface {
	Create(ctx context.Context, r entities.Rateio) (entities.Rateio, error)
	GetByID(ctx context.Context, id string) (entities.Rateio, error)
	ListByCreator(ctx context.Context, creatorID int64) ([]entities.Rateio, error)
	// UpdateStatusIfActive transitions ATIVO -> status. Zero value when the
	// rateio is missing or no longer ATIVO.
	UpdateStatusIfActive(ctx context.Context, id string, status entities.RateioStatus) (entities.Rateio, error)
	// TightenPrivacy applies PARCIAL -> TOTAL while ATIVO. Zero value when
	// the stored mode/status does not allow it.
	TightenPrivacy(ctx context.Context, id string) (entities.Rateio, error)
}
