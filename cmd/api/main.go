package main

import (
	_ "rateio_pix/docs"
	"rateio_pix/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Rateio Pix API
// @version         1.0
// @description     Group collection (rateio) settlement service with Pix charges via Pagar.me, backed by DynamoDB.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey UserID
// @in header
// @name X-User-ID
// @description Authenticated user id forwarded by the upstream gateway.

func main() {
	routes.Run()
}
