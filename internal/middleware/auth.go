package middleware

import (
	"errors"

	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/lifeline-connect/lifeline-backend/internal/config"
	"github.com/lifeline-connect/lifeline-backend/internal/dto"
)

// Protected verifies the bearer token and attaches the parsed claims to
// the request. A missing or malformed Authorization header is rejected
// as unauthenticated before any verification happens; every verification
// failure (expired, bad signature, garbage) collapses to one invalid-
// token outcome.
func Protected(cfg *config.Config) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey: jwtware.SigningKey{Key: []byte(cfg.JWTSecret)},
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if errors.Is(err, jwtware.ErrJWTMissingOrMalformed) {
				return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
					Error: true, Message: "Unauthorized access: no token",
				})
			}
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Error: true, Message: "Invalid token",
			})
		},
	})
}
