package auth

import (
	"github.com/gofiber/fiber/v2"
)

// RequireAdminRight returns a middleware that rejects the request unless the
// principal passes CheckAdminRight for the named right. The error is left to
// the app error handler to map onto a status code.
func RequireAdminRight(rights *RightService, rightName string, opts ...AdminCheckOption) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := rights.CheckAdminRight(PrincipalFromContext(c), rightName, opts...); err != nil {
			return err
		}

		return c.Next()
	}
}

// RequireRootAccess returns a middleware that only lets trusted
// service-level tokens through.
func RequireRootAccess(rights *RightService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := rights.CheckRootAccess(PrincipalFromContext(c)); err != nil {
			return err
		}

		return c.Next()
	}
}
