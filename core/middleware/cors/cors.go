package cors

import "github.com/gofiber/fiber/v2"

const (
	allowMethods = "GET,POST,PUT,PATCH,DELETE,OPTIONS"
	allowHeaders = "Origin,Content-Type,Accept,Authorization,X-API-Key,X-Ray-ID,Prefer,apikey"
)

// New returns a permissive CORS middleware. Preflight requests are answered with a bare 200.
// An empty origin means "*".
func New(origin string) fiber.Handler {
	if origin == "" {
		origin = "*"
	}
	return func(c *fiber.Ctx) error {
		c.Set(fiber.HeaderAccessControlAllowOrigin, origin)
		c.Set(fiber.HeaderAccessControlAllowMethods, allowMethods)
		c.Set(fiber.HeaderAccessControlAllowHeaders, allowHeaders)

		if c.Method() == fiber.MethodOptions {
			c.Status(fiber.StatusOK)
			return nil
		}
		return c.Next()
	}
}
