package auth

import (
	"strings"

	"github.com/gofiber/fiber/v3"
)

const identityLocalsKey = "identity"

// RequireToken resolves the Authorization header against the token store and
// stores the identity in the request locals. Missing or unrecognized
// credentials end the request with 401.
func RequireToken(store *TokenStore) fiber.Handler {
	return func(c fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok {
			return ErrUnauthorized
		}
		token = strings.TrimSpace(token)
		if token == "" {
			return ErrUnauthorized
		}

		identity, err := store.Resolve(token)
		if err != nil {
			return err
		}

		c.Locals(identityLocalsKey, identity)
		return c.Next()
	}
}

// IdentityFromCtx returns the identity stored by RequireToken.
func IdentityFromCtx(c fiber.Ctx) (Identity, bool) {
	identity, ok := c.Locals(identityLocalsKey).(Identity)
	return identity, ok
}
