package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/yaswanth810/safety-beacon/internal/dto"
	"github.com/yaswanth810/safety-beacon/internal/services"
)

type LegalHandler struct {
	legalService *services.LegalService
	roleService  *services.RoleService
}

func NewLegalHandler(legalService *services.LegalService, roleService *services.RoleService) *LegalHandler {
	return &LegalHandler{legalService: legalService, roleService: roleService}
}

// Search is public: the catalog is readable without an account.
func (h *LegalHandler) Search(c *fiber.Ctx) error {
	term := c.Query("q")
	category := c.Query("category")

	resources, err := h.legalService.Search(term, category)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}

	return c.JSON(fiber.Map{"resources": resources})
}

func (h *LegalHandler) Create(c *fiber.Ctx) error {
	actor, err := resolveActor(c, h.roleService)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.UpsertLegalResourceRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	resource, err := h.legalService.Create(actor, &req)
	if err != nil {
		return legalError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(resource)
}

func (h *LegalHandler) Update(c *fiber.Ctx) error {
	actor, err := resolveActor(c, h.roleService)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	resourceID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid resource id",
		})
	}

	var req dto.UpsertLegalResourceRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	resource, err := h.legalService.Update(actor, resourceID, &req)
	if err != nil {
		return legalError(c, err)
	}

	return c.JSON(resource)
}

func (h *LegalHandler) Delete(c *fiber.Ctx) error {
	actor, err := resolveActor(c, h.roleService)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	resourceID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid resource id",
		})
	}

	if err := h.legalService.Delete(actor, resourceID); err != nil {
		return legalError(c, err)
	}

	return c.JSON(fiber.Map{"success": true})
}

func legalError(c *fiber.Ctx, err error) error {
	if errors.Is(err, services.ErrResourceNotFound) {
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
