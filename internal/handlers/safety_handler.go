package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/naijamingles/safety-backend/internal/dto"
	"github.com/naijamingles/safety-backend/internal/identity"
	"github.com/naijamingles/safety-backend/internal/services"
)

// SafetyHandler covers the participant-facing safety endpoints: meeting
// plans, check-ins, trusted contacts and post-meeting reviews.
type SafetyHandler struct {
	plans    *services.PlanService
	checkIns *services.CheckInService
	contacts *services.ContactService
	reviews  *services.ReviewService
}

func NewSafetyHandler(plans *services.PlanService, checkIns *services.CheckInService, contacts *services.ContactService, reviews *services.ReviewService) *SafetyHandler {
	return &SafetyHandler{plans: plans, checkIns: checkIns, contacts: contacts, reviews: reviews}
}

func (h *SafetyHandler) CreatePlan(c *fiber.Ctx) error {
	caller, err := identity.FromContext(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.CreatePlanRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	plan, err := h.plans.Create(caller.ID, &req)
	if err != nil {
		if errors.Is(err, services.ErrSelfPartner) || errors.Is(err, services.ErrInvalidStartTime) {
			return badRequest(c, err.Error())
		}
		return storageError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(dto.CreatePlanResponse{ID: plan.ID})
}

func (h *SafetyHandler) ListPlans(c *fiber.Ctx) error {
	caller, err := identity.FromContext(c)
	if err != nil {
		return unauthorized(c)
	}

	plans, err := h.plans.List(caller.ID)
	if err != nil {
		return storageError(c, err)
	}

	return c.JSON(fiber.Map{"plans": plans})
}

func (h *SafetyHandler) RecordCheckIn(c *fiber.Ctx) error {
	caller, err := identity.FromContext(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.CheckInRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	if _, err := h.checkIns.Record(caller.ID, &req); err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidCheckInKind):
			return badRequest(c, err.Error())
		case errors.Is(err, services.ErrPlanNotFound):
			return notFound(c, err.Error())
		case errors.Is(err, services.ErrNotParticipant):
			return forbidden(c, err.Error())
		default:
			return storageError(c, err)
		}
	}

	return c.JSON(fiber.Map{"ok": true})
}

func (h *SafetyHandler) AddContact(c *fiber.Ctx) error {
	caller, err := identity.FromContext(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.AddContactRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	contact, err := h.contacts.Add(caller.ID, &req)
	if err != nil {
		if errors.Is(err, services.ErrContactNameRequired) {
			return badRequest(c, err.Error())
		}
		return storageError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(dto.AddContactResponse{ID: contact.ID})
}

func (h *SafetyHandler) ListContacts(c *fiber.Ctx) error {
	caller, err := identity.FromContext(c)
	if err != nil {
		return unauthorized(c)
	}

	contacts, err := h.contacts.List(caller.ID, c.QueryInt("limit", 20))
	if err != nil {
		return storageError(c, err)
	}

	return c.JSON(fiber.Map{"contacts": contacts})
}

func (h *SafetyHandler) CreateReview(c *fiber.Ctx) error {
	caller, err := identity.FromContext(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.ReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	if _, err := h.reviews.Create(caller.ID, &req); err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidRating):
			return badRequest(c, err.Error())
		case errors.Is(err, services.ErrPlanNotFound):
			return notFound(c, err.Error())
		case errors.Is(err, services.ErrNotParticipant):
			return forbidden(c, err.Error())
		default:
			return storageError(c, err)
		}
	}

	return c.JSON(fiber.Map{"ok": true})
}
