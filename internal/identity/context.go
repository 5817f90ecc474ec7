package identity

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Caller is the resolved identity of the authenticated request.
type Caller struct {
	ID    uuid.UUID
	Email string
}

// FromContext extracts the caller from JWT claims set by the auth middleware.
func FromContext(c *fiber.Ctx) (Caller, error) {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok {
		return Caller{}, errors.New("invalid token in context")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Caller{}, errors.New("invalid claims")
	}

	sub, ok := claims["sub"].(string)
	if !ok {
		return Caller{}, errors.New("missing sub claim")
	}

	id, err := uuid.Parse(sub)
	if err != nil {
		return Caller{}, err
	}

	email, _ := claims["email"].(string)
	return Caller{ID: id, Email: email}, nil
}
