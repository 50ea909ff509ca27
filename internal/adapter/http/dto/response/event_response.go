package response

import (
	"time"

	"rateio_pix/internal/domain/entities"
)

// EventResponse exposes the audit history. Messages were written privacy-safe
// at append time, so events need no per-viewer projection.

type EventResponse struct {
	ID        string    `json:"id"`
	EventType string    `json:"event_type"`
	Message   string    `json:"message,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func FromEvents(list []entities.RateioEvent) []EventResponse {
	out := make([]EventResponse, 0, len(list))
	for _, e := range list {
		out = append(out, EventResponse{
			ID:        e.ID,
			EventType: string(e.EventType),
			Message:   e.Message,
			CreatedAt: e.CreatedAt,
		})
	}
	return out
}
