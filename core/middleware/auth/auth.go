package auth

import "github.com/gofiber/fiber/v2"

// HeaderName carries the client's API key.
const HeaderName = "X-Api-Key"

// Config holds settings for the auth middleware.
type Config struct {
	// ApiKey is the expected key. When empty, auth is disabled.
	ApiKey string
}

// New returns middleware that rejects requests lacking the configured
// API key with 401. An empty configured key disables the check, which is
// the expected mode for local development.
func New(cfg Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if cfg.ApiKey == "" || c.Get(HeaderName) == cfg.ApiKey {
			return c.Next()
		}
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "invalid or missing API key",
		})
	}
}
