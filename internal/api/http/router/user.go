package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/caretide/caretide_backend/internal/api/http/handler"
	"github.com/caretide/caretide_backend/pkg/authorize"
)

func (r *Router) registerUserRoutes(
	app fiber.Router,
	uh *handler.UserHandler,
	authRequired fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	users := app.Group("/users", authRequired)

	users.Post("/create", requirePerm(authorize.ResourceUser, authorize.ActionCreate), uh.Create)
	users.Post("/list", requirePerm(authorize.ResourceUser, authorize.ActionList), uh.List)

	users.Get("/:id", requirePerm(authorize.ResourceUser, authorize.ActionRead), uh.Get)
	users.Patch("/:id", requirePerm(authorize.ResourceUser, authorize.ActionUpdate), uh.Update)
	users.Delete("/:id", requirePerm(authorize.ResourceUser, authorize.ActionDelete), uh.Deactivate)
}
