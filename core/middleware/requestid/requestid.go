// Package requestid assigns a unique id to every request.
package requestid

import (
	"config-diff/core/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Header is the response header carrying the request id.
const Header = "X-Request-ID"

// New returns a middleware that reuses an incoming X-Request-ID or generates one,
// stores it in locals and echoes it in the response.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(Header)
		if id == "" {
			id = uuid.NewString()
		}
		c.Locals(logger.RequestIDKey, id)
		c.Set(Header, id)
		return c.Next()
	}
}
