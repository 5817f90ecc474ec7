package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/naijamingles/safety-backend/internal/dto"
	"github.com/naijamingles/safety-backend/internal/identity"
	"github.com/naijamingles/safety-backend/internal/services"
)

type ModerationHandler struct {
	moderationService *services.ModerationService
}

func NewModerationHandler(moderationService *services.ModerationService) *ModerationHandler {
	return &ModerationHandler{moderationService: moderationService}
}

func (h *ModerationHandler) CreateReport(c *fiber.Ctx) error {
	caller, err := identity.FromContext(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.CreateReportRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	report, err := h.moderationService.FileReport(caller.ID, &req)
	if err != nil {
		if errors.Is(err, services.ErrSelfReport) || errors.Is(err, services.ErrReasonRequired) {
			return badRequest(c, err.Error())
		}
		return storageError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(dto.CreateReportResponse{ID: report.ID})
}

func (h *ModerationHandler) BlockUser(c *fiber.Ctx) error {
	caller, err := identity.FromContext(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.BlockUserRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	if err := h.moderationService.Block(caller.ID, req.BlockedUserID); err != nil {
		if errors.Is(err, services.ErrSelfBlock) {
			return badRequest(c, err.Error())
		}
		return storageError(c, err)
	}

	return c.JSON(fiber.Map{"ok": true})
}

func (h *ModerationHandler) UnblockUser(c *fiber.Ctx) error {
	caller, err := identity.FromContext(c)
	if err != nil {
		return unauthorized(c)
	}

	blockedID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid user ID")
	}

	if err := h.moderationService.Unblock(caller.ID, blockedID); err != nil {
		return storageError(c, err)
	}

	return c.JSON(fiber.Map{"ok": true})
}

func (h *ModerationHandler) BlockStatus(c *fiber.Ctx) error {
	caller, err := identity.FromContext(c)
	if err != nil {
		return unauthorized(c)
	}

	blockedID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid user ID")
	}

	blocked, err := h.moderationService.IsBlocked(caller.ID, blockedID)
	if err != nil {
		return storageError(c, err)
	}

	return c.JSON(dto.BlockStatusResponse{Blocked: blocked})
}
