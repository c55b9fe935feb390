package fiber

import (
	"strings"

	"github.com/gofiber/fiber/v3"

	"github.com/nbarth/gatehouse/core"
)

// subjectKey is the locals key under which the gate stores the verified
// user identifier for downstream handlers.
const subjectKey = "subject"

// RequireAuth is the authorization gate. A request with no credential is
// rejected with 401; a credential that fails verification is rejected
// with 403; otherwise the token's subject becomes the trusted identity
// for the rest of the request.
func RequireAuth(verifier core.TokenVerifier) fiber.Handler {
	return func(c fiber.Ctx) error {
		token := extractToken(c)
		if token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": core.ErrMissingCredential.Error(),
			})
		}

		subject, err := verifier.Verify(token)
		if err != nil {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": core.ErrInvalidToken.Error(),
			})
		}

		c.Locals(subjectKey, subject)
		return c.Next()
	}
}

// extractToken pulls the credential from the request. The Authorization
// header is expected as "<scheme> <token>"; only the token segment is
// used, the scheme is not validated. Falls back to the signin cookie.
func extractToken(c fiber.Ctx) string {
	if header := c.Get(fiber.HeaderAuthorization); header != "" {
		parts := strings.Fields(header)
		if len(parts) >= 2 {
			return parts[1]
		}
		return ""
	}

	return c.Cookies(cookieName)
}

// subject returns the gate-attached identity for the current request.
func subject(c fiber.Ctx) string {
	s, _ := c.Locals(subjectKey).(string)
	return s
}
