package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/caretide/caretide_backend/internal/service/appointment"
)

type AppointmentHandler struct {
	svc appointment.Service
}

func NewAppointmentHandler(svc appointment.Service) *AppointmentHandler {
	return &AppointmentHandler{svc: svc}
}

func mapAppointmentError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, appointment.ErrAppointmentNotFound),
		errors.Is(err, appointment.ErrPatientNotFound),
		errors.Is(err, appointment.ErrProviderNotFound),
		errors.Is(err, appointment.ErrEncounterNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, appointment.ErrInvalidDate), errors.Is(err, appointment.ErrInvalidTime):
		return badRequest(c, err.Error())
	case errors.Is(err, appointment.ErrIDConflict):
		return conflict(c, err.Error())
	default:
		return internalError(c)
	}
}

// POST /appointments
func (h *AppointmentHandler) Create(c fiber.Ctx) error {
	var body struct {
		PatientID       string  `json:"patient_id"`
		ProviderID      string  `json:"provider_id"`
		AppointmentDate string  `json:"appointment_date"`
		AppointmentTime string  `json:"appointment_time"`
		Duration        *int    `json:"duration"`
		AppointmentType string  `json:"appointment_type"`
		Reason          *string `json:"reason"`
		Notes           *string `json:"notes"`
	}
	if err := c.Bind().Body(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	patientID, err := uuid.Parse(body.PatientID)
	if err != nil {
		return badRequest(c, "invalid patient_id")
	}
	providerID, err := uuid.Parse(body.ProviderID)
	if err != nil {
		return badRequest(c, "invalid provider_id")
	}
	if body.AppointmentDate == "" || body.AppointmentTime == "" || body.AppointmentType == "" {
		return badRequest(c, "appointment_date, appointment_time and appointment_type are required")
	}

	apt, err := h.svc.Create(c.Context(), appointment.CreateAppointmentRequest{
		PatientID:       patientID,
		ProviderID:      providerID,
		AppointmentDate: body.AppointmentDate,
		AppointmentTime: body.AppointmentTime,
		Duration:        body.Duration,
		AppointmentType: body.AppointmentType,
		Reason:          body.Reason,
		Notes:           body.Notes,
	})
	if err != nil {
		return mapAppointmentError(c, err)
	}

	return created(c, "appointment created", apt)
}

// GET /appointments
func (h *AppointmentHandler) List(c fiber.Ctx) error {
	var q struct {
		Page       int    `query:"page"`
		Limit      int    `query:"limit"`
		PatientID  string `query:"patient_id"`
		ProviderID string `query:"provider_id"`
		Status     string `query:"status"`
		Date       string `query:"date"`
	}
	_ = c.Bind().Query(&q)

	req := appointment.ListAppointmentsRequest{
		Page:  q.Page,
		Limit: q.Limit,
	}
	if q.PatientID != "" {
		id, err := uuid.Parse(q.PatientID)
		if err != nil {
			return badRequest(c, "invalid patient_id")
		}
		req.PatientID = &id
	}
	if q.ProviderID != "" {
		id, err := uuid.Parse(q.ProviderID)
		if err != nil {
			return badRequest(c, "invalid provider_id")
		}
		req.ProviderID = &id
	}
	if q.Status != "" {
		req.Status = &q.Status
	}
	if q.Date != "" {
		req.Date = &q.Date
	}

	result, err := h.svc.List(c.Context(), req)
	if err != nil {
		return mapAppointmentError(c, err)
	}

	return ok(c, "appointments retrieved", result)
}

// GET /appointments/:id
func (h *AppointmentHandler) Get(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid appointment id")
	}

	apt, err := h.svc.GetByID(c.Context(), id)
	if err != nil {
		return mapAppointmentError(c, err)
	}

	return ok(c, "appointment retrieved", apt)
}

// PATCH /appointments/:id
func (h *AppointmentHandler) Update(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid appointment id")
	}

	var body struct {
		AppointmentDate *string `json:"appointment_date"`
		AppointmentTime *string `json:"appointment_time"`
		Duration        *int    `json:"duration"`
		AppointmentType *string `json:"appointment_type"`
		Reason          *string `json:"reason"`
		Notes           *string `json:"notes"`
		Status          *string `json:"status"`
	}
	if err := c.Bind().Body(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	apt, err := h.svc.Update(c.Context(), id, appointment.UpdateAppointmentRequest{
		AppointmentDate: body.AppointmentDate,
		AppointmentTime: body.AppointmentTime,
		Duration:        body.Duration,
		AppointmentType: body.AppointmentType,
		Reason:          body.Reason,
		Notes:           body.Notes,
		Status:          body.Status,
	})
	if err != nil {
		return mapAppointmentError(c, err)
	}

	return ok(c, "appointment updated", apt)
}

// DELETE /appointments/:id
func (h *AppointmentHandler) Remove(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid appointment id")
	}

	if err := h.svc.Remove(c.Context(), id); err != nil {
		return mapAppointmentError(c, err)
	}

	return ok(c, "appointment deleted", nil)
}

// PATCH /appointments/:id/check-in
func (h *AppointmentHandler) CheckIn(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid appointment id")
	}

	apt, err := h.svc.CheckIn(c.Context(), id)
	if err != nil {
		return mapAppointmentError(c, err)
	}

	return ok(c, "appointment checked in", apt)
}

// PATCH /appointments/:id/link-encounter
func (h *AppointmentHandler) LinkEncounter(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid appointment id")
	}

	var body struct {
		EncounterID string `json:"encounter_id"`
	}
	if err := c.Bind().Body(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	encounterID, err := uuid.Parse(body.EncounterID)
	if err != nil {
		return badRequest(c, "invalid encounter_id")
	}

	apt, err := h.svc.LinkEncounter(c.Context(), id, encounterID)
	if err != nil {
		return mapAppointmentError(c, err)
	}

	return ok(c, "encounter linked", apt)
}
