package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// principalKey is the fiber.Locals key holding the request principal.
const principalKey = "auth.principal"

// TokenMiddleware extracts the caller's principal from a bearer token in the
// Authorization header (or the access_token query parameter, kept for
// legacy clients). Requests without a token continue unauthenticated; the
// per-route right checks reject them later. Presenting an invalid token
// fails immediately.
func TokenMiddleware(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := bearerToken(c)
		if token == "" {
			return c.Next()
		}

		principal, err := ParseToken(secret, token)
		if err != nil {
			return err
		}

		c.Locals(principalKey, principal)

		return c.Next()
	}
}

func bearerToken(c *fiber.Ctx) string {
	header := c.Get(fiber.HeaderAuthorization)
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}

	return c.Query("access_token")
}

// PrincipalFromContext returns the request principal, zero-valued when the
// request carried no token.
func PrincipalFromContext(c *fiber.Ctx) Principal {
	principal, _ := c.Locals(principalKey).(Principal)
	return principal
}

// SetPrincipal stores a principal on the context. Exposed for handler tests.
func SetPrincipal(c *fiber.Ctx, principal Principal) {
	c.Locals(principalKey, principal)
}
