package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/caretide/caretide_backend/internal/service/patient"
)

type PatientHandler struct {
	svc patient.Service
}

func NewPatientHandler(svc patient.Service) *PatientHandler {
	return &PatientHandler{svc: svc}
}

func mapPatientError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, patient.ErrPatientNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, patient.ErrInvalidDateOfBirth), errors.Is(err, patient.ErrInvalidPhone):
		return badRequest(c, err.Error())
	case errors.Is(err, patient.ErrPatientIDExhausted):
		return conflict(c, err.Error())
	default:
		return internalError(c)
	}
}

// POST /patients
func (h *PatientHandler) Create(c fiber.Ctx) error {
	var body struct {
		FirstName        string  `json:"first_name"`
		LastName         string  `json:"last_name"`
		DateOfBirth      string  `json:"date_of_birth"`
		Gender           string  `json:"gender"`
		Phone            string  `json:"phone"`
		Email            *string `json:"email"`
		Address          *string `json:"address"`
		EmergencyContact *string `json:"emergency_contact"`
		EmergencyPhone   *string `json:"emergency_phone"`
		BloodType        *string `json:"blood_type"`
		Allergies        *string `json:"allergies"`
		MedicalHistory   *string `json:"medical_history"`
	}
	if err := c.Bind().Body(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.FirstName == "" || body.LastName == "" || body.DateOfBirth == "" ||
		body.Gender == "" || body.Phone == "" {
		return badRequest(c, "first_name, last_name, date_of_birth, gender and phone are required")
	}

	p, err := h.svc.Create(c.Context(), patient.CreatePatientRequest{
		FirstName:        body.FirstName,
		LastName:         body.LastName,
		DateOfBirth:      body.DateOfBirth,
		Gender:           body.Gender,
		Phone:            body.Phone,
		Email:            body.Email,
		Address:          body.Address,
		EmergencyContact: body.EmergencyContact,
		EmergencyPhone:   body.EmergencyPhone,
		BloodType:        body.BloodType,
		Allergies:        body.Allergies,
		MedicalHistory:   body.MedicalHistory,
	})
	if err != nil {
		return mapPatientError(c, err)
	}

	return created(c, "patient created", p)
}

// GET /patients/list
func (h *PatientHandler) List(c fiber.Ctx) error {
	var q struct {
		Page            int    `query:"page"`
		Limit           int    `query:"limit"`
		Search          string `query:"search"`
		IncludeInactive bool   `query:"include_inactive"`
	}
	_ = c.Bind().Query(&q)

	req := patient.ListPatientsRequest{
		Page:            q.Page,
		Limit:           q.Limit,
		IncludeInactive: q.IncludeInactive,
	}
	if q.Search != "" {
		req.Search = &q.Search
	}

	result, err := h.svc.List(c.Context(), req)
	if err != nil {
		return mapPatientError(c, err)
	}

	return ok(c, "patients retrieved", result)
}

// GET /patients/:id
func (h *PatientHandler) Get(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid patient id")
	}

	p, err := h.svc.GetByID(c.Context(), id)
	if err != nil {
		return mapPatientError(c, err)
	}

	return ok(c, "patient retrieved", p)
}

// PATCH /patients/:id
func (h *PatientHandler) Update(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid patient id")
	}

	var body struct {
		FirstName        *string `json:"first_name"`
		LastName         *string `json:"last_name"`
		DateOfBirth      *string `json:"date_of_birth"`
		Gender           *string `json:"gender"`
		Phone            *string `json:"phone"`
		Email            *string `json:"email"`
		Address          *string `json:"address"`
		EmergencyContact *string `json:"emergency_contact"`
		EmergencyPhone   *string `json:"emergency_phone"`
		BloodType        *string `json:"blood_type"`
		Allergies        *string `json:"allergies"`
		MedicalHistory   *string `json:"medical_history"`
	}
	if err := c.Bind().Body(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	p, err := h.svc.Update(c.Context(), id, patient.UpdatePatientRequest{
		FirstName:        body.FirstName,
		LastName:         body.LastName,
		DateOfBirth:      body.DateOfBirth,
		Gender:           body.Gender,
		Phone:            body.Phone,
		Email:            body.Email,
		Address:          body.Address,
		EmergencyContact: body.EmergencyContact,
		EmergencyPhone:   body.EmergencyPhone,
		BloodType:        body.BloodType,
		Allergies:        body.Allergies,
		MedicalHistory:   body.MedicalHistory,
	})
	if err != nil {
		return mapPatientError(c, err)
	}

	return ok(c, "patient updated", p)
}

// DELETE /patients/:id
func (h *PatientHandler) Deactivate(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid patient id")
	}

	if err := h.svc.Deactivate(c.Context(), id); err != nil {
		return mapPatientError(c, err)
	}

	return ok(c, "patient deactivated", nil)
}
