package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/caretide/caretide_backend/internal/api/http/handler"
	"github.com/caretide/caretide_backend/pkg/authorize"
)

func (r *Router) registerMedicationRoutes(
	app fiber.Router,
	mh *handler.MedicationHandler,
	authRequired fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	medications := app.Group("/medications", authRequired)

	master := medications.Group("/master")
	master.Get("/", requirePerm(authorize.ResourceMedicationMaster, authorize.ActionList), mh.ListMaster)
	master.Post("/", requirePerm(authorize.ResourceMedicationMaster, authorize.ActionCreate), mh.CreateMaster)
	master.Get("/:id", requirePerm(authorize.ResourceMedicationMaster, authorize.ActionRead), mh.GetMaster)

	patientMeds := medications.Group("/patient")
	patientMeds.Post("/", requirePerm(authorize.ResourcePatientMedication, authorize.ActionCreate), mh.Prescribe)
	patientMeds.Get("/:patientId", requirePerm(authorize.ResourcePatientMedication, authorize.ActionList), mh.ListByPatient)
	patientMeds.Patch("/:id", requirePerm(authorize.ResourcePatientMedication, authorize.ActionUpdate), mh.UpdatePrescription)
	patientMeds.Patch("/:id/discontinue", requirePerm(authorize.ResourcePatientMedication, authorize.ActionUpdate), mh.Discontinue)
}
