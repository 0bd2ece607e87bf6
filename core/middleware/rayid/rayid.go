package rayid

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// HeaderName carries the request's RayID back to the client.
const HeaderName = "X-Ray-ID"

// New returns middleware that assigns every request a unique RayID,
// stores it in context locals, and echoes it in the response header.
// A RayID supplied by the client is kept so traces can span services.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rid := c.Get(HeaderName)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Locals("ray_id", rid)
		c.Set(HeaderName, rid)
		return c.Next()
	}
}
