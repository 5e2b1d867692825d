package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/caretide/caretide_backend/internal/api/http/handler"
	"github.com/caretide/caretide_backend/pkg/authorize"
)

func (r *Router) registerPatientRoutes(
	app fiber.Router,
	ph *handler.PatientHandler,
	authRequired fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	patients := app.Group("/patients", authRequired)

	patients.Get("/list", requirePerm(authorize.ResourcePatient, authorize.ActionList), ph.List)
	patients.Post("/", requirePerm(authorize.ResourcePatient, authorize.ActionCreate), ph.Create)

	patients.Get("/:id", requirePerm(authorize.ResourcePatient, authorize.ActionRead), ph.Get)
	patients.Patch("/:id", requirePerm(authorize.ResourcePatient, authorize.ActionUpdate), ph.Update)
	patients.Delete("/:id", requirePerm(authorize.ResourcePatient, authorize.ActionDelete), ph.Deactivate)
}
