package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/yaswanth810/safety-beacon/internal/authctx"
	"github.com/yaswanth810/safety-beacon/internal/authz"
	"github.com/yaswanth810/safety-beacon/internal/services"
)

// resolveActor turns the verified JWT into an authz.Actor with its role
// assignments loaded.
func resolveActor(c *fiber.Ctx, roles *services.RoleService) (authz.Actor, error) {
	userID, err := authctx.GetUserID(c)
	if err != nil {
		return authz.Actor{}, err
	}
	return roles.ActorFor(userID)
}
