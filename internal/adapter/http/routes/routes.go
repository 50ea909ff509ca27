package routes

import (
	"context"
	"log"
	"os"
	"strconv"

	_ "rateio_pix/docs" // This will be auto-generated
	"rateio_pix/internal/adapter/http/handlers"
	repository2 "rateio_pix/internal/adapter/persistence/repository"
	"rateio_pix/internal/infrastructure/database"
	"rateio_pix/internal/infrastructure/payments"
	"rateio_pix/internal/usecase"
	"rateio_pix/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB(context.Background())

	rateioRepo := repository2.NewRateioDynamoRepository(ddb)
	participantRepo := repository2.NewParticipantDynamoRepository(ddb)
	intentRepo := repository2.NewPaymentIntentDynamoRepository(ddb)
	txRepo := repository2.NewTransactionDynamoRepository(ddb)
	eventRepo := repository2.NewRateioEventDynamoRepository(ddb)
	ledger := repository2.NewSettlementDynamoLedger(ddb)

	var chargeGateway interfaces.IChargeGateway
	pagarmeGateway, err := payments.NewPagarmeGateway(os.Getenv("PAGARME_API_KEY"))
	if err != nil {
		log.Printf("Pagar.me gateway not configured: %v", err)
	} else {
		chargeGateway = pagarmeGateway
	}

	progress := usecase.NewProgressCalculator(txRepo)
	rateioUseCase := usecase.NewRateioUseCase(rateioRepo, participantRepo, eventRepo, progress)
	participantUseCase := usecase.NewParticipantUseCase(participantRepo, rateioRepo, eventRepo)
	paymentUseCase := usecase.NewPaymentUseCase(intentRepo, participantRepo, rateioRepo, chargeGateway)
	webhookUseCase := usecase.NewWebhookUseCase(intentRepo, participantRepo, rateioRepo, txRepo, ledger, progress)

	rateioHandler := handlers.NewRateioHandler(rateioUseCase)
	participantHandler := handlers.NewParticipantHandler(participantUseCase)
	paymentHandler := handlers.NewPaymentHandler(paymentUseCase)
	webhookHandler := handlers.NewWebhookHandler(webhookUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addRateioRoutes(v1, rateioHandler, participantHandler, paymentHandler)

	// O provedor chama o webhook fora do versionamento da API.
	addWebhookRoutes(router.Group("/webhook"), webhookHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
