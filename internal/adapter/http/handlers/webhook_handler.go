package handlers

import (
	"errors"
	"log"
	"net/http"

	"rateio_pix/internal/adapter/http/dto/request"
	"rateio_pix/internal/usecase"
	"rateio_pix/pkg"

	"github.com/gin-gonic/gin"
)

// WebhookHandler receives Pagar.me notifications.
//
// Status codes drive provider retry behavior: anything non-5xx stops retries,
// so malformed payloads, unknown charges, duplicates and unhandled event types
// all answer below 500. Only unknown failures return 500 for redelivery.

type WebhookHandler struct {
	usecase usecase.IWebhookUseCase
}

func NewWebhookHandler(uc usecase.IWebhookUseCase) *WebhookHandler {
	return &WebhookHandler{usecase: uc}
}

// HandlePagarme processes one notification envelope.
func (h *WebhookHandler) HandlePagarme(c *gin.Context) {
	var req request.PagarmeWebhookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[webhook][handler] malformed body err=%v", err)
		appErr := pkg.NewDomainErrorSimple("MALFORMED_PAYLOAD", "Invalid webhook body", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if err := req.Validate(); err != nil {
		log.Printf("[webhook][handler] missing fields event_id=%s err=%v", req.EventID, err)
		appErr := pkg.NewDomainError("MALFORMED_PAYLOAD", err.Error(), err, http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	n := req.ToNotification()
	log.Printf("[webhook][handler] received type=%s charge_id=%s event_id=%s", n.Type, n.ChargeID, req.EventID)

	result, err := h.usecase.HandleNotification(c.Request.Context(), n)
	if err != nil {
		if errors.Is(err, usecase.ErrUnknownCharge) ||
			errors.Is(err, usecase.ErrParticipantNotFound) ||
			errors.Is(err, usecase.ErrRateioNotFound) {
			log.Printf("[webhook][handler] unknown reference type=%s charge_id=%s err=%v", n.Type, n.ChargeID, err)
			appErr := pkg.NewDomainError("UNKNOWN_CHARGE", "No record for this charge", err, http.StatusNotFound)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		// Unknown failure: 500 makes the provider redeliver.
		log.Printf("[webhook][handler] processing failed type=%s charge_id=%s err=%v", n.Type, n.ChargeID, err)
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "Internal server error", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	log.Printf("[webhook][handler] acknowledged type=%s charge_id=%s result=%s", n.Type, n.ChargeID, result)
	c.JSON(http.StatusOK, gin.H{"success": true, "result": string(result)})
}
