package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/caretide/caretide_backend/internal/api/http/handler"
	"github.com/caretide/caretide_backend/pkg/authorize"
)

func (r *Router) registerEncounterRoutes(
	app fiber.Router,
	eh *handler.EncounterHandler,
	authRequired fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	encounters := app.Group("/encounters", authRequired)

	encounters.Get("/", requirePerm(authorize.ResourceEncounter, authorize.ActionList), eh.List)
	encounters.Post("/", requirePerm(authorize.ResourceEncounter, authorize.ActionCreate), eh.Create)

	encounters.Get("/:id", requirePerm(authorize.ResourceEncounter, authorize.ActionRead), eh.Get)
	encounters.Patch("/:id", requirePerm(authorize.ResourceEncounter, authorize.ActionUpdate), eh.Update)
	encounters.Delete("/:id", requirePerm(authorize.ResourceEncounter, authorize.ActionDelete), eh.Remove)
}
