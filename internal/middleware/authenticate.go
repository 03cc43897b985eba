package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/slangstash/slang-service/internal/token"
	"github.com/slangstash/slang-service/pkg/constant"
)

// Authenticate requires a valid session token in the auth cookie and attaches
// the decoded identity to the request. A missing cookie is unauthenticated; a
// token that fails signature or expiry checks is forbidden.
func Authenticate(tokens token.Generator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		cookie := c.Cookies(constant.SessionCookieName)
		if cookie == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"msg": "please login first",
			})
		}

		claims, err := tokens.VerifySessionToken(cookie)
		if err != nil {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"msg": "invalid or expired session",
			})
		}

		c.Locals(identityKey, Identity{
			Username: claims.Username,
			ID:       claims.UserID,
			Role:     claims.Role,
		})

		return c.Next()
	}
}

// RequireRole rejects callers whose identity does not carry the given role.
// It must run after Authenticate.
func RequireRole(role string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := IdentityFromCtx(c)
		if !ok || id.Role != role {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"msg": "insufficient privileges",
			})
		}
		return c.Next()
	}
}
