package interfaces

import (
	"context"

	"rateio_pix/internal/domain/entities"
)

// IRateioEventRepository abstracts the append-only audit log.

type IRateioEventRepository interface {
	Append(ctx context.Context, e entities.RateioEvent) (entities.RateioEvent, error)
	// ListByRateio returns events newest-first.
	ListByRateio(ctx context.Context, rateioID string) ([]entities.RateioEvent, error)
}
