package main

import (
	"gestao_obras/internal/adapter/http/routes"
	"gestao_obras/internal/infrastructure/config"
	"gestao_obras/internal/infrastructure/logging"

	_ "github.com/joho/godotenv/autoload"
	"github.com/sirupsen/logrus"
)

// @title           Gestao Obras LPU API
// @version         1.0
// @description     Quotation workflow for LPUs (price lists): drafts, supplier quotations, revisions and approval, backed by DynamoDB.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the identity token.

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("invalid configuration: %v", err)
	}
	logging.Setup(cfg.Environment, cfg.Log.Level)

	if err := routes.Run(cfg); err != nil {
		logrus.Fatalf("Failed to startup the application: %v", err)
	}
}
