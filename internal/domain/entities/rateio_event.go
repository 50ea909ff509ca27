package entities

import "time"

// EventType enumerates the audit history entries of a rateio.

type EventType string

const (
	EventTypeCriado                  EventType = "CRIADO"
	EventTypeParticipanteAdicionado  EventType = "PARTICIPANTE_ADICIONADO"
	EventTypePagamentoConfirmado     EventType = "PAGAMENTO_CONFIRMADO"
	EventTypeConcluido               EventType = "CONCLUIDO"
	EventTypeCancelado               EventType = "CANCELADO"
	EventTypeReembolsoSolicitado     EventType = "REEMBOLSO_SOLICITADO"
)

// RateioEvent is an append-only audit entry. Messages are written for end
// users and must never contain raw Pix keys or other participant identity.
//
// Storage model (DynamoDB):
//   - PK: rateio_id, SK: sort (created_at#id), queried newest-first.

type RateioEvent struct {
	ID            string    `json:"id"`
	RateioID      string    `json:"rateio_id"`
	ParticipantID string    `json:"participant_id,omitempty"`
	EventType     EventType `json:"event_type"`
	Message       string    `json:"message,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}
