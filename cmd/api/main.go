package main

import (
	_ "laporan_zakat/docs"
	"laporan_zakat/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Laporan Zakat API
// @version         1.0
// @description     Conversational zakat reporting: operators record donation reports by chatting with a bot.
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
// @description Type "Bearer" followed by a space and the session token returned by /auth/login.

func main() {
	routes.Run()
}
