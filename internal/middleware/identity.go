package middleware

import (
	"github.com/gofiber/fiber/v2"
)

// identityKey is the locals key under which Authenticate stores the caller.
const identityKey = "identity"

// Identity is the authenticated caller, populated once by Authenticate and
// read-only downstream.
type Identity struct {
	Username string
	ID       string
	Role     string
}

// IdentityFromCtx returns the identity attached by Authenticate, if any.
func IdentityFromCtx(c *fiber.Ctx) (Identity, bool) {
	id, ok := c.Locals(identityKey).(Identity)
	return id, ok
}
