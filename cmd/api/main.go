package main

import (
	_ "webux_bd/docs" // This will be auto-generated
	"webux_bd/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           WebUX BD Order API
// @version         1.0
// @description     Order workflow backend for a web-design agency: checkout sessions, order lifecycle, admin console and domain suggestions.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:8080
// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	routes.Run()
}
