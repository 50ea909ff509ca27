package handlers

import (
	"errors"
	"log"
	"net/http"

	"rateio_pix/internal/adapter/http/dto/request"
	"rateio_pix/internal/adapter/http/dto/response"
	"rateio_pix/internal/usecase"
	"rateio_pix/internal/usecase/interfaces"
	"rateio_pix/pkg"

	"github.com/gin-gonic/gin"
)

// PaymentHandler handles charge issuance, polling and refunds.

type PaymentHandler struct {
	usecase usecase.IPaymentUseCase
}

func NewPaymentHandler(uc usecase.IPaymentUseCase) *PaymentHandler {
	return &PaymentHandler{usecase: uc}
}

// CreateIntent issues a Pix charge for the participant.
func (h *PaymentHandler) CreateIntent(c *gin.Context) {
	participantID := c.Param("participant_id")
	log.Printf("[payment][handler] create intent start participant_id=%s", participantID)

	intent, err := h.usecase.CreateIntent(c.Request.Context(), participantID)
	if err != nil {
		log.Printf("[payment][handler] create intent failed participant_id=%s err=%v", participantID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] create intent success participant_id=%s charge_id=%s", participantID, intent.ID)

	c.JSON(http.StatusCreated, response.FromPaymentIntent(intent))
}

// GetPaymentStatus returns the polled payment state for a participant.
func (h *PaymentHandler) GetPaymentStatus(c *gin.Context) {
	participantID := c.Param("participant_id")

	view, err := h.usecase.GetStatus(c.Request.Context(), participantID)
	if err != nil {
		log.Printf("[payment][handler] get status failed participant_id=%s err=%v", participantID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPaymentStatus(view))
}

// RefundParticipant asks the provider to return a confirmed payment. Creator
// only.
func (h *PaymentHandler) RefundParticipant(c *gin.Context) {
	participantID := c.Param("participant_id")
	actorID, ok := currentUserID(c)
	if !ok {
		return
	}

	// An empty body means a full refund.
	var req request.RefundRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			appErr := pkg.NewDomainErrorSimple("INVALID_INPUT", "Invalid request body", http.StatusBadRequest)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
	}

	result, err := h.usecase.Refund(c.Request.Context(), actorID, participantID, req.Amount)
	if err != nil {
		log.Printf("[payment][handler] refund failed participant_id=%s actor_id=%d err=%v", participantID, actorID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] refund accepted participant_id=%s refund_id=%s", participantID, result.ID)

	c.JSON(http.StatusOK, response.RefundResponse{RefundID: result.ID, Status: result.Status})
}

func mapPaymentError(err error) *pkg.AppError {
	var gwErr *interfaces.GatewayError
	switch {
	case errors.Is(err, usecase.ErrInvalidParticipantID):
		return pkg.NewDomainError("INVALID_INPUT", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrParticipantNotFound):
		return pkg.NewDomainErrorSimple("NOT_FOUND", "Participant not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrRateioNotFound):
		return pkg.NewDomainErrorSimple("NOT_FOUND", "Rateio not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrIntentNotFound):
		return pkg.NewDomainErrorSimple("NOT_FOUND", "Payment intent not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrNotCreator):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "Only the rateio creator can refund participants", http.StatusForbidden)
	case errors.Is(err, usecase.ErrRateioNotActive),
		errors.Is(err, usecase.ErrIntentStillOpen),
		errors.Is(err, usecase.ErrParticipantNotPaid):
		return pkg.NewDomainError("CONFLICT", err.Error(), err, http.StatusConflict)
	case errors.Is(err, usecase.ErrGatewayNotConfigured):
		return pkg.NewDomainError("GATEWAY_ERROR", "Falha ao comunicar com o provedor de pagamento", err, http.StatusBadGateway)
	case errors.As(err, &gwErr):
		// Provider detail stays in logs; callers get a generic message.
		return pkg.NewDomainError("GATEWAY_ERROR", "Falha ao comunicar com o provedor de pagamento", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
