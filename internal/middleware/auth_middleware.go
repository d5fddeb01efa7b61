package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"ecomm-api/internal/auth"
)

// Auth guards routes behind token verification.
type Auth struct {
	Tokens *auth.TokenService
}

func NewAuth(tokens *auth.TokenService) *Auth {
	return &Auth{Tokens: tokens}
}

// RequireAuth rejects requests without a valid token and stores the decoded
// identity in the request locals for downstream handlers.
//
// The header may carry either "Bearer <token>" or a raw token; the last
// whitespace-delimited segment is taken as the token.
func (m *Auth) RequireAuth(c *fiber.Ctx) error {
	header := c.Get("Authorization")
	if header == "" {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"result": "Token required"})
	}

	parts := strings.Fields(header)
	if len(parts) == 0 {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"result": "Invalid token"})
	}
	tokenString := parts[len(parts)-1]

	claims, err := m.Tokens.Verify(tokenString)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"result": "Invalid token"})
	}

	c.Locals("user_id", claims.UserID)
	c.Locals("is_admin", claims.IsAdmin)

	return c.Next()
}
