package request

// ParticipantCreateRequest joins a Pix key to a rateio. The key type is
// detected server-side; clients never send it.

type ParticipantCreateRequest struct {
	PixKey     string `json:"pix_key" binding:"required"`
	AutoRefund bool   `json:"auto_refund"`
}

// RefundRequest asks for a participant refund. A zero or absent amount means
// a full refund of the confirmed payment.

type RefundRequest struct {
	Amount int64 `json:"amount"`
}
