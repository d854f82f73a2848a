package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/denitsadraganowa/hackathon-orchestrate/internal/api/handlers"
)

const (
	tokenEndpoint     = "/api/getToken"
	livenessEndpoint  = "/livez"
	readinessEndpoint = "/readyz"
)

func SetupRoutes(app *fiber.App, token *handlers.Token, health *handlers.Health) {
	app.Get(livenessEndpoint, health.Liveness)
	app.Get(readinessEndpoint, health.Readiness)

	app.Get(tokenEndpoint, token.Get)
}
