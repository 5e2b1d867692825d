package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/caretide/caretide_backend/internal/api/http/handler"
	"github.com/caretide/caretide_backend/pkg/authorize"
)

func (r *Router) registerAppointmentRoutes(
	app fiber.Router,
	ah *handler.AppointmentHandler,
	authRequired fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	appointments := app.Group("/appointments", authRequired)

	appointments.Get("/", requirePerm(authorize.ResourceAppointment, authorize.ActionList), ah.List)
	appointments.Post("/", requirePerm(authorize.ResourceAppointment, authorize.ActionCreate), ah.Create)

	appointments.Get("/:id", requirePerm(authorize.ResourceAppointment, authorize.ActionRead), ah.Get)
	appointments.Patch("/:id", requirePerm(authorize.ResourceAppointment, authorize.ActionUpdate), ah.Update)
	appointments.Delete("/:id", requirePerm(authorize.ResourceAppointment, authorize.ActionDelete), ah.Remove)

	appointments.Patch("/:id/check-in", requirePerm(authorize.ResourceAppointment, authorize.ActionUpdate), ah.CheckIn)
	appointments.Patch("/:id/link-encounter", requirePerm(authorize.ResourceAppointment, authorize.ActionUpdate), ah.LinkEncounter)
}
