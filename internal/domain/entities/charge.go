package entities

import "time"

// Charge is the internal view of a provider Pix charge, translated from the
// Pagar.me wire format by the gateway adapter. It is never persisted as-is;
// the relevant fields land on PaymentIntent.

type Charge struct {
	ID        string    `json:"id"`
	Status    string    `json:"status"`
	Amount    int64     `json:"amount"`
	QRCode    string    `json:"qr_code,omitempty"`
	CopyPaste string    `json:"copy_paste,omitempty"`
	ExpiresAt time.Time `json:"expires_at,omitempty"`
}

// RefundResult is the provider acknowledgment of a refund request. The final
// outcome still arrives asynchronously through the webhook.

type RefundResult struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}
