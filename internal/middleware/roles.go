package middleware

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/lifeline-connect/lifeline-backend/internal/authctx"
	"github.com/lifeline-connect/lifeline-backend/internal/dto"
)

// RoleResolver looks up the stored role for a verified identity. An
// unknown identity resolves to the plain user role.
type RoleResolver interface {
	ResolveRole(ctx context.Context, email string) string
}

// RoleRequired allows the request only when the caller's stored role is
// in the given set. The role is re-resolved from the verified email on
// every evaluation; role claims carried in the token or the request are
// never trusted. Unknown roles fail closed.
func RoleRequired(resolver RoleResolver, roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		email, err := authctx.Email(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: "Unauthorized",
			})
		}

		role := resolver.ResolveRole(c.UserContext(), email)
		for _, allowed := range roles {
			if role == allowed {
				return c.Next()
			}
		}

		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
			Error: true, Message: "Forbidden",
		})
	}
}
