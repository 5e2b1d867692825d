package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/caretide/caretide_backend/internal/service/encounter"
)

type EncounterHandler struct {
	svc encounter.Service
}

func NewEncounterHandler(svc encounter.Service) *EncounterHandler {
	return &EncounterHandler{svc: svc}
}

func mapEncounterError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, encounter.ErrEncounterNotFound),
		errors.Is(err, encounter.ErrPatientNotFound),
		errors.Is(err, encounter.ErrProviderNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, encounter.ErrInvalidDate):
		return badRequest(c, err.Error())
	case errors.Is(err, encounter.ErrIDConflict):
		return conflict(c, err.Error())
	default:
		return internalError(c)
	}
}

// POST /encounters
func (h *EncounterHandler) Create(c fiber.Ctx) error {
	var body struct {
		PatientID               string  `json:"patient_id"`
		ProviderID              string  `json:"provider_id"`
		AppointmentID           *string `json:"appointment_id"`
		EncounterType           string  `json:"encounter_type"`
		EncounterDate           string  `json:"encounter_date"`
		ChiefComplaint          *string `json:"chief_complaint"`
		HistoryOfPresentIllness *string `json:"history_of_present_illness"`
		PhysicalExamination     *string `json:"physical_examination"`
		Assessment              *string `json:"assessment"`
		Plan                    *string `json:"plan"`
		Notes                   *string `json:"notes"`
		Duration                *int    `json:"duration"`
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
	if body.EncounterType == "" || body.EncounterDate == "" {
		return badRequest(c, "encounter_type and encounter_date are required")
	}

	req := encounter.CreateEncounterRequest{
		PatientID:               patientID,
		ProviderID:              providerID,
		EncounterType:           body.EncounterType,
		EncounterDate:           body.EncounterDate,
		ChiefComplaint:          body.ChiefComplaint,
		HistoryOfPresentIllness: body.HistoryOfPresentIllness,
		PhysicalExamination:     body.PhysicalExamination,
		Assessment:              body.Assessment,
		Plan:                    body.Plan,
		Notes:                   body.Notes,
		Duration:                body.Duration,
	}
	if body.AppointmentID != nil && *body.AppointmentID != "" {
		aptID, err := uuid.Parse(*body.AppointmentID)
		if err != nil {
			return badRequest(c, "invalid appointment_id")
		}
		req.AppointmentID = &aptID
	}

	enc, err := h.svc.Create(c.Context(), req)
	if err != nil {
		return mapEncounterError(c, err)
	}

	return created(c, "encounter created", enc)
}

// GET /encounters
func (h *EncounterHandler) List(c fiber.Ctx) error {
	var q struct {
		Page       int    `query:"page"`
		Limit      int    `query:"limit"`
		PatientID  string `query:"patient_id"`
		ProviderID string `query:"provider_id"`
		Status     string `query:"status"`
	}
	_ = c.Bind().Query(&q)

	req := encounter.ListEncountersRequest{
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

	result, err := h.svc.List(c.Context(), req)
	if err != nil {
		return mapEncounterError(c, err)
	}

	return ok(c, "encounters retrieved", result)
}

// GET /encounters/:id
func (h *EncounterHandler) Get(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid encounter id")
	}

	enc, err := h.svc.GetByID(c.Context(), id)
	if err != nil {
		return mapEncounterError(c, err)
	}

	return ok(c, "encounter retrieved", enc)
}

// PATCH /encounters/:id
func (h *EncounterHandler) Update(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid encounter id")
	}

	var body struct {
		EncounterType           *string `json:"encounter_type"`
		EncounterDate           *string `json:"encounter_date"`
		ChiefComplaint          *string `json:"chief_complaint"`
		HistoryOfPresentIllness *string `json:"history_of_present_illness"`
		PhysicalExamination     *string `json:"physical_examination"`
		Assessment              *string `json:"assessment"`
		Plan                    *string `json:"plan"`
		Notes                   *string `json:"notes"`
		Status                  *string `json:"status"`
		Duration                *int    `json:"duration"`
	}
	if err := c.Bind().Body(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	enc, err := h.svc.Update(c.Context(), id, encounter.UpdateEncounterRequest{
		EncounterType:           body.EncounterType,
		EncounterDate:           body.EncounterDate,
		ChiefComplaint:          body.ChiefComplaint,
		HistoryOfPresentIllness: body.HistoryOfPresentIllness,
		PhysicalExamination:     body.PhysicalExamination,
		Assessment:              body.Assessment,
		Plan:                    body.Plan,
		Notes:                   body.Notes,
		Status:                  body.Status,
		Duration:                body.Duration,
	})
	if err != nil {
		return mapEncounterError(c, err)
	}

	return ok(c, "encounter updated", enc)
}

// DELETE /encounters/:id
func (h *EncounterHandler) Remove(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid encounter id")
	}

	if err := h.svc.Remove(c.Context(), id); err != nil {
		return mapEncounterError(c, err)
	}

	return ok(c, "encounter cancelled", nil)
}
