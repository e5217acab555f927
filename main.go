package main

import (
	_ "github.com/joho/godotenv/autoload" // Autoload .env file.

	"github.com/farmstead/farmstead-api/cmd/app"
)

// @contact.name   Farmstead Support
// @contact.email  support@farmstead.dev
//
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT
func main() {
	if err := app.Start(); err != nil {
		panic(err)
	}
}
