package routes

import (
	"rateio_pix/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathRateios      = "/rateios"
	PathParticipants = "/participants"
)

func addRateioRoutes(
	rg *gin.RouterGroup,
	rateioHandler *handlers.RateioHandler,
	participantHandler *handlers.ParticipantHandler,
	paymentHandler *handlers.PaymentHandler,
) {
	rateios := rg.Group(PathRateios)
	{
		rateios.POST("", rateioHandler.CreateRateio)
		rateios.GET("", rateioHandler.ListRateios)
		rateios.GET("/:rateio_id", rateioHandler.GetRateio)
		rateios.PATCH("/:rateio_id/status", rateioHandler.UpdateRateioStatus)
		rateios.PATCH("/:rateio_id/privacy", rateioHandler.UpdateRateioPrivacy)

		rateios.POST("/:rateio_id/participants", participantHandler.CreateParticipant)
		rateios.GET("/:rateio_id/participants", participantHandler.ListParticipants)
	}

	participants := rg.Group(PathParticipants)
	{
		participants.GET("/:participant_id", participantHandler.GetParticipant)
		participants.POST("/:participant_id/payment-intents", paymentHandler.CreateIntent)
		participants.GET("/:participant_id/payment-status", paymentHandler.GetPaymentStatus)
		participants.POST("/:participant_id/refund", paymentHandler.RefundParticipant)
	}
}

func addWebhookRoutes(rg *gin.RouterGroup, webhookHandler *handlers.WebhookHandler) {
	rg.POST("/pagarme", webhookHandler.HandlePagarme)
}
