package main

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/denitsadraganowa/hackathon-orchestrate/internal/api"
	"github.com/denitsadraganowa/hackathon-orchestrate/internal/api/handlers"
	"github.com/denitsadraganowa/hackathon-orchestrate/internal/core"
)

func main() {
	// Read once at startup, immutable thereafter. An absent key is sent
	// as-is and rejected by IAM through the ordinary failure path.
	apiKey := os.Getenv("IBMCLOUD_API_KEY")

	exchanger := core.NewIAMExchanger(nil, core.DefaultEndpoint, apiKey)

	app := fiber.New(fiber.Config{
		AppName: "IAM Token Relay",
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New())

	api.SetupRoutes(app, handlers.NewToken(exchanger), handlers.NewHealth(apiKey != ""))

	// TODO: implement TLS
	log.Fatal(app.Listen(":3000"))
}
