package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/naijamingles/safety-backend/internal/dto"
	"github.com/naijamingles/safety-backend/internal/identity"
	"github.com/naijamingles/safety-backend/internal/models"
	"github.com/naijamingles/safety-backend/internal/services"
)

// AdminHandler is the triage surface over panic events, abuse reports and
// check-ins. Routes using it sit behind the admin allow-list middleware.
type AdminHandler struct {
	admin      *services.AdminService
	moderation *services.ModerationService
	checkIns   *services.CheckInService
}

func NewAdminHandler(admin *services.AdminService, moderation *services.ModerationService, checkIns *services.CheckInService) *AdminHandler {
	return &AdminHandler{admin: admin, moderation: moderation, checkIns: checkIns}
}

func (h *AdminHandler) ResolvePanic(c *fiber.Ctx) error {
	caller, err := identity.FromContext(c)
	if err != nil {
		return unauthorized(c)
	}

	panicID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid panic ID")
	}

	if err := h.admin.ResolvePanic(caller.ID, panicID); err != nil {
		if errors.Is(err, services.ErrPanicNotFound) {
			return notFound(c, err.Error())
		}
		return storageError(c, err)
	}

	return c.JSON(fiber.Map{"ok": true})
}

func (h *AdminHandler) SetReportStatus(c *fiber.Ctx) error {
	reportID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid report ID")
	}

	var req dto.SetReportStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	if err := h.moderation.SetReportStatus(reportID, req.Status); err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidReportStatus):
			return badRequest(c, err.Error())
		case errors.Is(err, services.ErrReportNotFound):
			return notFound(c, err.Error())
		default:
			return storageError(c, err)
		}
	}

	return c.JSON(fiber.Map{"ok": true})
}

func (h *AdminHandler) ListPanics(c *fiber.Ctx) error {
	status := models.PanicStatus(c.Query("status", ""))
	page, size := pageParams(c)

	panics, err := h.admin.ListPanics(status, page, size)
	if err != nil {
		return storageError(c, err)
	}

	return c.JSON(dto.PanicListResponse{
		Panics:  panics,
		Page:    page,
		Size:    size,
		HasNext: len(panics) == size,
	})
}

func (h *AdminHandler) ListReports(c *fiber.Ctx) error {
	status := models.ReportStatus(c.Query("status", ""))
	page, size := pageParams(c)

	reports, err := h.moderation.ListReports(status, page, size)
	if err != nil {
		return storageError(c, err)
	}

	return c.JSON(dto.ReportListResponse{
		Reports: reports,
		Page:    page,
		Size:    size,
		HasNext: len(reports) == size,
	})
}

func (h *AdminHandler) ListCheckIns(c *fiber.Ctx) error {
	kind := models.CheckInKind(c.Query("kind", ""))
	page, size := pageParams(c)

	var planID *uuid.UUID
	if raw := c.Query("plan_id", ""); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return badRequest(c, "Invalid plan ID")
		}
		planID = &id
	}

	checkIns, err := h.checkIns.List(planID, kind, page, size)
	if err != nil {
		return storageError(c, err)
	}

	return c.JSON(dto.CheckInListResponse{
		CheckIns: checkIns,
		Page:     page,
		Size:     size,
		HasNext:  len(checkIns) == size,
	})
}

func pageParams(c *fiber.Ctx) (page, size int) {
	page = c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}
	size = c.QueryInt("size", 10)
	if size < 1 {
		size = 10
	}
	if size > 100 {
		size = 100
	}
	return page, size
}
