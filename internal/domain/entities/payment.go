package entities

import "time"

// IntentStatus follows CRIADO -> EXPIRADO | PAGO, both terminal.
//
// Expiry is evaluated lazily on read (now > expires_at); nothing sweeps
// intents in the background.

type IntentStatus string

const (
	IntentStatusCriado   IntentStatus = "CRIADO"
	IntentStatusExpirado IntentStatus = "EXPIRADO"
	IntentStatusPago     IntentStatus = "PAGO"
)

// PaymentIntent is one outstanding Pix charge for a participant.
//
// Storage model (DynamoDB):
//   - PK: id = the Pagar.me charge id. Using the provider id as PK guarantees
//     one intent per charge and makes webhook lookups a direct key read.
//   - GSI1 (participant_id-index): participant_id, range created_at

type PaymentIntent struct {
	ID            string       `json:"id"`
	ParticipantID string       `json:"participant_id"`
	QRCode        string       `json:"qr_code,omitempty"`
	CopyPaste     string       `json:"copy_paste,omitempty"`
	Status        IntentStatus `json:"status"`
	ExpiresAt     time.Time    `json:"expires_at"`
	CreatedAt     time.Time    `json:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at"`
}

// EffectiveStatus applies lazy expiry: a CRIADO intent past its deadline is
// reported EXPIRADO without a write.
func (i PaymentIntent) EffectiveStatus(now time.Time) IntentStatus {
	if i.Status == IntentStatusCriado && now.After(i.ExpiresAt) {
		return IntentStatusExpirado
	}
	return i.Status
}

// TransactionStatus follows PENDENTE -> PAGO | FALHOU and PAGO -> REEMBOLSADO.

type TransactionStatus string

const (
	TransactionStatusPendente    TransactionStatus = "PENDENTE"
	TransactionStatusPago        TransactionStatus = "PAGO"
	TransactionStatusFalhou      TransactionStatus = "FALHOU"
	TransactionStatusReembolsado TransactionStatus = "REEMBOLSADO"
)

// Transaction is an immutable ledger entry of money movement.
//
// Storage model (DynamoDB):
//   - PK: id = the provider transaction id. A conditional put on this PK is
//     the idempotency guard: the same provider event can never be recorded
//     twice, even under concurrent duplicate delivery.
//   - GSI1 (rateio_id-index): rateio_id

type Transaction struct {
	ID            string            `json:"id"`
	ParticipantID string            `json:"participant_id"`
	RateioID      string            `json:"rateio_id"`
	Amount        int64             `json:"amount"`
	Status        TransactionStatus `json:"status"`
	PaidAt        time.Time         `json:"paid_at,omitempty"`
	RefundedAt    time.Time         `json:"refunded_at,omitempty"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
}
