package response

import (
	"time"

	"rateio_pix/internal/domain/entities"
	"rateio_pix/internal/usecase"
)

type PaymentIntentResponse struct {
	ID            string    `json:"id"`
	ParticipantID string    `json:"participant_id"`
	QRCode        string    `json:"qr_code,omitempty"`
	CopyPaste     string    `json:"copy_paste,omitempty"`
	Status        string    `json:"status"`
	ExpiresAt     time.Time `json:"expires_at"`
}

func FromPaymentIntent(i entities.PaymentIntent) PaymentIntentResponse {
	return PaymentIntentResponse{
		ID:            i.ID,
		ParticipantID: i.ParticipantID,
		QRCode:        i.QRCode,
		CopyPaste:     i.CopyPaste,
		Status:        string(i.Status),
		ExpiresAt:     i.ExpiresAt,
	}
}

type PaymentStatusResponse struct {
	ParticipantStatus string     `json:"participant_status"`
	PaidAmount        int64      `json:"paid_amount"`
	IntentStatus      string     `json:"intent_status"`
	ChargeStatus      string     `json:"charge_status,omitempty"`
	ExpiresAt         *time.Time `json:"expires_at,omitempty"`
	GatewayIssue      string     `json:"gateway_issue,omitempty"`
}

func FromPaymentStatus(v usecase.PaymentStatusView) PaymentStatusResponse {
	out := PaymentStatusResponse{
		ParticipantStatus: string(v.ParticipantStatus),
		PaidAmount:        v.PaidAmount,
		IntentStatus:      string(v.IntentStatus),
		ChargeStatus:      v.ChargeStatus,
		GatewayIssue:      v.GatewayIssue,
	}
	if !v.ExpiresAt.IsZero() {
		t := v.ExpiresAt
		out.ExpiresAt = &t
	}
	return out
}

type RefundResponse struct {
	RefundID string `json:"refund_id"`
	Status   string `json:"status"`
}
