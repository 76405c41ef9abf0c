package main

import (
	_ "mecanica_workflow/docs"
	"mecanica_workflow/internal/adapter/http/routes"
	"mecanica_workflow/internal/infrastructure/config"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Workshop Workflow API
// @version         1.0
// @description     Workshop workflow service: work orders, assignments, quotations, invoices and the work log.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	routes.Run(config.Load())
}
