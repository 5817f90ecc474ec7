package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/naijamingles/safety-backend/internal/config"
	"github.com/naijamingles/safety-backend/internal/dto"
	"github.com/naijamingles/safety-backend/internal/identity"
)

// AdminPredicate decides whether a caller may use privileged endpoints.
type AdminPredicate func(caller identity.Caller) bool

// AllowListPredicate builds a predicate from the configured CSV allow-lists.
// Email comparison is case-insensitive. No role is persisted in the store;
// swapping in a role lookup only requires a different predicate.
func AllowListPredicate(cfg *config.Config) AdminPredicate {
	emails := parseCSV(cfg.AdminEmails)
	for i, e := range emails {
		emails[i] = strings.ToLower(e)
	}
	userIDs := parseCSV(cfg.AdminUserIDs)

	return func(caller identity.Caller) bool {
		return contains(emails, strings.ToLower(caller.Email)) ||
			contains(userIDs, caller.ID.String())
	}
}

// AdminRequired gates a route group on the injected predicate. Failures are
// a generic 401 regardless of whether a token was present, so a rejected
// caller learns nothing about admin records.
func AdminRequired(isAdmin AdminPredicate) fiber.Handler {
	return func(c *fiber.Ctx) error {
		caller, err := identity.FromContext(c)
		if err != nil || !isAdmin(caller) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: "Unauthorized",
			})
		}
		return c.Next()
	}
}

func parseCSV(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		trimmed := strings.TrimSpace(p)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

func contains(list []string, val string) bool {
	for _, item := range list {
		if item == val {
			return true
		}
	}
	return false
}
