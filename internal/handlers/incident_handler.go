package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/yaswanth810/safety-beacon/internal/dto"
	"github.com/yaswanth810/safety-beacon/internal/services"
)

type IncidentHandler struct {
	incidentService *services.IncidentService
	roleService     *services.RoleService
}

func NewIncidentHandler(incidentService *services.IncidentService, roleService *services.RoleService) *IncidentHandler {
	return &IncidentHandler{incidentService: incidentService, roleService: roleService}
}

func (h *IncidentHandler) Create(c *fiber.Ctx) error {
	actor, err := resolveActor(c, h.roleService)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.CreateIncidentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	incident, err := h.incidentService.Create(actor, &req)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(incident)
}

func (h *IncidentHandler) List(c *fiber.Ctx) error {
	actor, err := resolveActor(c, h.roleService)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	limit := c.QueryInt("limit", 50)
	offset := c.QueryInt("offset", 0)

	incidents, total, err := h.incidentService.List(actor, limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}

	return c.JSON(fiber.Map{"incidents": incidents, "total": total})
}

func (h *IncidentHandler) Get(c *fiber.Ctx) error {
	actor, err := resolveActor(c, h.roleService)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	incidentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid incident id",
		})
	}

	incident, err := h.incidentService.Get(actor, incidentID)
	if err != nil {
		return incidentError(c, err)
	}

	return c.JSON(incident)
}

func (h *IncidentHandler) Update(c *fiber.Ctx) error {
	actor, err := resolveActor(c, h.roleService)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	incidentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid incident id",
		})
	}

	var req dto.UpdateIncidentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	incident, err := h.incidentService.UpdateNarrative(actor, incidentID, &req)
	if err != nil {
		return incidentError(c, err)
	}

	return c.JSON(incident)
}

func (h *IncidentHandler) SetStatus(c *fiber.Ctx) error {
	actor, err := resolveActor(c, h.roleService)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	incidentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid incident id",
		})
	}

	var req dto.UpdateIncidentStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	incident, err := h.incidentService.SetStatus(actor, incidentID, req.Status)
	if err != nil {
		if errors.Is(err, services.ErrInvalidStatus) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return incidentError(c, err)
	}

	return c.JSON(incident)
}

func incidentError(c *fiber.Ctx, err error) error {
	if errors.Is(err, services.ErrIncidentNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}
	if errors.Is(err, services.ErrForbidden) {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
		Error: true, Message: err.Error(),
	})
}
