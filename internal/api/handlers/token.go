package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/denitsadraganowa/hackathon-orchestrate/internal/core"
)

/*
	Driving Adapter
*/

// Token relays IAM access tokens to callers.
type Token struct {
	exchanger core.TokenExchanger
}

func NewToken(exchanger core.TokenExchanger) *Token {
	return &Token{exchanger: exchanger}
}

// Get performs one credential exchange per request. Success forwards only
// the access token; any failure is terminal and reported to the caller.
func (h *Token) Get(c *fiber.Ctx) error {
	token, err := h.exchanger.Exchange(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"access_token": token.AccessToken,
	})
}
