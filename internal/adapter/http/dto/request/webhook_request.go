package request

import (
	"errors"

	"rateio_pix/internal/usecase"
)

var (
	ErrMissingWebhookType = errors.New("missing webhook type")
	ErrMissingWebhookData = errors.New("missing webhook data")
	ErrMissingChargeID    = errors.New("missing charge id")
)

// PagarmeWebhookRequest is the Pagar.me notification envelope:
//
//	{
//	  "id": "evt_xxx",
//	  "type": "charge.paid" | "charge.refunded" | "charge.failed",
//	  "data": { "id": "ch_xxx", "status": "paid", "amount": 10000,
//	            "last_transaction": { "id": "tran_xxx" } }
//	}
//
// Unknown envelope fields are ignored; missing required ones fail Validate.

type PagarmeWebhookRequest struct {
	EventID string              `json:"id"`
	Type    string              `json:"type"`
	Data    *PagarmeWebhookData `json:"data"`
}

type PagarmeWebhookData struct {
	ID              string                     `json:"id"`
	Status          string                     `json:"status"`
	Amount          int64                      `json:"amount"`
	LastTransaction *PagarmeWebhookTransaction `json:"last_transaction"`
}

type PagarmeWebhookTransaction struct {
	ID     string `json:"id"`
	Amount int64  `json:"amount"`
}

func (r PagarmeWebhookRequest) Validate() error {
	if r.Type == "" {
		return ErrMissingWebhookType
	}
	if r.Data == nil {
		return ErrMissingWebhookData
	}
	if r.Data.ID == "" {
		return ErrMissingChargeID
	}
	return nil
}

func (r PagarmeWebhookRequest) ToNotification() usecase.Notification {
	n := usecase.Notification{
		Type:     r.Type,
		ChargeID: r.Data.ID,
		Amount:   r.Data.Amount,
	}
	if r.Data.LastTransaction != nil {
		n.TransactionID = r.Data.LastTransaction.ID
		if n.Amount == 0 {
			n.Amount = r.Data.LastTransaction.Amount
		}
	}
	return n
}
