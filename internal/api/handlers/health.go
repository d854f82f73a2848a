package handlers

import "github.com/gofiber/fiber/v2"

// Health reports process liveness and readiness.
type Health struct {
	configured bool
}

func NewHealth(configured bool) *Health {
	return &Health{configured: configured}
}

func (h *Health) Liveness(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "ok",
	})
}

// Readiness reports whether a credential is configured. It makes no
// outbound call; the exchange itself is the only real check.
func (h *Health) Readiness(c *fiber.Ctx) error {
	if !h.configured {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"status": "not ready",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "ready",
	})
}
