package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/yaswanth810/safety-beacon/internal/dto"
	"github.com/yaswanth810/safety-beacon/internal/notify"
	"github.com/yaswanth810/safety-beacon/internal/services"
)

// NotifyHandler exposes the email dispatcher over HTTP. The dispatcher
// re-checks authorization itself, so these endpoints only authenticate the
// caller and translate dispatcher errors to status codes.
type NotifyHandler struct {
	dispatcher  *notify.Dispatcher
	roleService *services.RoleService
}

func NewNotifyHandler(dispatcher *notify.Dispatcher, roleService *services.RoleService) *NotifyHandler {
	return &NotifyHandler{dispatcher: dispatcher, roleService: roleService}
}

func (h *NotifyHandler) NotifyIncident(c *fiber.Ctx) error {
	actor, err := resolveActor(c, h.roleService)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.NotifyIncidentRequest
	if err := c.BodyParser(&req); err != nil || req.IncidentID == uuid.Nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "incident_id is required",
		})
	}

	skipped, err := h.dispatcher.DispatchIncident(actor, req.IncidentID)
	if err != nil {
		return dispatchError(c, err)
	}

	return c.JSON(dto.NotifyResponse{Success: true, Skipped: skipped})
}

func (h *NotifyHandler) NotifySOS(c *fiber.Ctx) error {
	actor, err := resolveActor(c, h.roleService)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.NotifySOSRequest
	if err := c.BodyParser(&req); err != nil || req.SOSID == uuid.Nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "sos_id is required",
		})
	}

	skipped, err := h.dispatcher.DispatchSOS(actor, req.SOSID)
	if err != nil {
		return dispatchError(c, err)
	}

	return c.JSON(dto.NotifyResponse{Success: true, Skipped: skipped})
}

// MethodNotAllowed rejects anything other than POST on the notify routes.
func (h *NotifyHandler) MethodNotAllowed(c *fiber.Ctx) error {
	return c.Status(fiber.StatusMethodNotAllowed).JSON(dto.ErrorResponse{
		Error: true, Message: "Method not allowed",
	})
}

func dispatchError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, notify.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	case errors.Is(err, notify.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	case errors.Is(err, notify.ErrNoRecipient):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	case errors.Is(err, notify.ErrProviderRejected):
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}
}
