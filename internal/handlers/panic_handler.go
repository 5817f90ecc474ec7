package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/naijamingles/safety-backend/internal/dto"
	"github.com/naijamingles/safety-backend/internal/identity"
	"github.com/naijamingles/safety-backend/internal/services"
)

type PanicHandler struct {
	panics *services.PanicService
}

func NewPanicHandler(panics *services.PanicService) *PanicHandler {
	return &PanicHandler{panics: panics}
}

// Trigger accepts a panic with an empty body: every field is optional and a
// bare button press must still raise the alert.
func (h *PanicHandler) Trigger(c *fiber.Ctx) error {
	caller, err := identity.FromContext(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.PanicRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}
	}

	resp, err := h.panics.Trigger(c.UserContext(), caller.ID, caller.Email, &req)
	if err != nil {
		return storageError(c, err)
	}

	return c.JSON(resp)
}
