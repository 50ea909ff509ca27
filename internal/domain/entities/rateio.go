package entities

import (
	"time"

	"rateio_pix/internal/domain/pix"
)

// RateioStatus is the collection lifecycle. ATIVO is the only non-terminal state.
//
// Transitions are owned by the usecase layer; repositories only apply them
// through conditional writes so a rateio is completed exactly once.

type RateioStatus string

const (
	RateioStatusAtivo     RateioStatus = "ATIVO"
	RateioStatusConcluido RateioStatus = "CONCLUIDO"
	RateioStatusCancelado RateioStatus = "CANCELADO"
)

// PrivacyMode controls how participants are shown in read projections.
//
// The mode is monotonic: it may only be tightened (PARCIAL -> TOTAL), never
// relaxed. ABERTO exists for legacy rows and cannot be set through the API.

type PrivacyMode string

const (
	PrivacyModeTotal   PrivacyMode = "TOTAL"
	PrivacyModeParcial PrivacyMode = "PARCIAL"
	PrivacyModeAberto  PrivacyMode = "ABERTO"
)

// Rateio is a bounded group collection: many participants pay Pix charges
// until the target amount is reached.
//
// Storage model (DynamoDB):
//   - PK: id (UUID string)
//   - GSI1 (creator_id-index): creator_id
//
// Monetary representation: integer cents (minor currency units).

type Rateio struct {
	ID           string       `json:"id"`
	CreatorID    int64        `json:"creator_id"`
	Name         string       `json:"name"`
	Description  string       `json:"description,omitempty"`
	ImageURL     string       `json:"image_url,omitempty"`
	TotalAmount  int64        `json:"total_amount"`
	TargetAmount int64        `json:"target_amount,omitempty"`
	PrivacyMode  PrivacyMode  `json:"privacy_mode"`
	Status       RateioStatus `json:"status"`
	ExpiresAt    time.Time    `json:"expires_at,omitempty"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

// Target returns the amount that closes the rateio: the explicit target when
// set, the full total otherwise.
func (r Rateio) Target() int64 {
	if r.TargetAmount > 0 {
		return r.TargetAmount
	}
	return r.TotalAmount
}

// ParticipantStatus follows PENDENTE -> PAGO -> REEMBOLSADO. A failed charge
// keeps the participant PENDENTE so a new intent can be issued.

type ParticipantStatus string

const (
	ParticipantStatusPendente    ParticipantStatus = "PENDENTE"
	ParticipantStatusPago        ParticipantStatus = "PAGO"
	ParticipantStatusReembolsado ParticipantStatus = "REEMBOLSADO"
)

// Participant is one contributor to a rateio, identified by a Pix key.
//
// Storage model (DynamoDB):
//   - PK: id (UUID string)
//   - GSI1 (rateio_id-index): rateio_id, range created_at
//
// The created_at range key gives the stable creation order that positional
// privacy labels (P#01, P#02, ...) depend on.

type Participant struct {
	ID         string            `json:"id"`
	RateioID   string            `json:"rateio_id"`
	UserID     int64             `json:"user_id,omitempty"`
	PixKey     string            `json:"pix_key"`
	PixKeyType pix.KeyType       `json:"pix_key_type"`
	AutoRefund bool              `json:"auto_refund"`
	Status     ParticipantStatus `json:"status"`
	PaidAmount int64             `json:"paid_amount"`
	CreatedAt  time.Time         `json:"created_at"`
	UpdatedAt  time.Time         `json:"updated_at"`
}
