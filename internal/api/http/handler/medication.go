package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/caretide/caretide_backend/internal/service/medication"
)

type MedicationHandler struct {
	svc medication.Service
}

func NewMedicationHandler(svc medication.Service) *MedicationHandler {
	return &MedicationHandler{svc: svc}
}

func mapMedicationError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, medication.ErrMedicationNotFound),
		errors.Is(err, medication.ErrPrescriptionNotFound),
		errors.Is(err, medication.ErrPatientNotFound),
		errors.Is(err, medication.ErrProviderNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, medication.ErrGenericNameRequired),
		errors.Is(err, medication.ErrInvalidDate):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}

// ---------------------------------------------------------------------------
// Formulary
// ---------------------------------------------------------------------------

// POST /medications/master
func (h *MedicationHandler) CreateMaster(c fiber.Ctx) error {
	var body struct {
		GenericName    string  `json:"generic_name"`
		BrandName      *string `json:"brand_name"`
		DosageForm     string  `json:"dosage_form"`
		Strength       string  `json:"strength"`
		Manufacturer   *string `json:"manufacturer"`
		Classification *string `json:"classification"`
		Description    *string `json:"description"`
	}
	if err := c.Bind().Body(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.DosageForm == "" || body.Strength == "" {
		return badRequest(c, "dosage_form and strength are required")
	}

	m, err := h.svc.CreateMaster(c.Context(), medication.CreateMasterRequest{
		GenericName:    body.GenericName,
		BrandName:      body.BrandName,
		DosageForm:     body.DosageForm,
		Strength:       body.Strength,
		Manufacturer:   body.Manufacturer,
		Classification: body.Classification,
		Description:    body.Description,
	})
	if err != nil {
		return mapMedicationError(c, err)
	}

	return created(c, "medication created", m)
}

// GET /medications/master
func (h *MedicationHandler) ListMaster(c fiber.Ctx) error {
	var q struct {
		Page            int    `query:"page"`
		Limit           int    `query:"limit"`
		Search          string `query:"search"`
		Classification  string `query:"classification"`
		IncludeInactive bool   `query:"include_inactive"`
	}
	_ = c.Bind().Query(&q)

	req := medication.ListMasterRequest{
		Page:            q.Page,
		Limit:           q.Limit,
		IncludeInactive: q.IncludeInactive,
	}
	if q.Search != "" {
		req.Search = &q.Search
	}
	if q.Classification != "" {
		req.Classification = &q.Classification
	}

	result, err := h.svc.ListMaster(c.Context(), req)
	if err != nil {
		return mapMedicationError(c, err)
	}

	return ok(c, "medications retrieved", result)
}

// GET /medications/master/:id
func (h *MedicationHandler) GetMaster(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid medication id")
	}

	m, err := h.svc.GetMasterByID(c.Context(), id)
	if err != nil {
		return mapMedicationError(c, err)
	}

	return ok(c, "medication retrieved", m)
}

// ---------------------------------------------------------------------------
// Prescriptions
// ---------------------------------------------------------------------------

// POST /medications/patient
func (h *MedicationHandler) Prescribe(c fiber.Ctx) error {
	var body struct {
		PatientID    string  `json:"patient_id"`
		MedicationID string  `json:"medication_id"`
		ProviderID   string  `json:"provider_id"`
		Dosage       string  `json:"dosage"`
		Frequency    string  `json:"frequency"`
		Route        *string `json:"route"`
		StartDate    string  `json:"start_date"`
		EndDate      *string `json:"end_date"`
		Reason       *string `json:"reason"`
		Instructions *string `json:"instructions"`
		EncounterID  *string `json:"encounter_id"`
	}
	if err := c.Bind().Body(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	patientID, err := uuid.Parse(body.PatientID)
	if err != nil {
		return badRequest(c, "invalid patient_id")
	}
	medicationID, err := uuid.Parse(body.MedicationID)
	if err != nil {
		return badRequest(c, "invalid medication_id")
	}
	providerID, err := uuid.Parse(body.ProviderID)
	if err != nil {
		return badRequest(c, "invalid provider_id")
	}
	if body.Dosage == "" || body.Frequency == "" || body.StartDate == "" {
		return badRequest(c, "dosage, frequency and start_date are required")
	}

	req := medication.PrescribeRequest{
		PatientID:    patientID,
		MedicationID: medicationID,
		ProviderID:   providerID,
		Dosage:       body.Dosage,
		Frequency:    body.Frequency,
		Route:        body.Route,
		StartDate:    body.StartDate,
		EndDate:      body.EndDate,
		Reason:       body.Reason,
		Instructions: body.Instructions,
	}
	if body.EncounterID != nil && *body.EncounterID != "" {
		encID, err := uuid.Parse(*body.EncounterID)
		if err != nil {
			return badRequest(c, "invalid encounter_id")
		}
		req.EncounterID = &encID
	}

	pm, err := h.svc.Prescribe(c.Context(), req)
	if err != nil {
		return mapMedicationError(c, err)
	}

	return created(c, "prescription created", pm)
}

// GET /medications/patient/:patientId
func (h *MedicationHandler) ListByPatient(c fiber.Ctx) error {
	patientID, err := uuid.Parse(c.Params("patientId"))
	if err != nil {
		return badRequest(c, "invalid patient id")
	}

	var q struct {
		Page  int `query:"page"`
		Limit int `query:"limit"`
	}
	_ = c.Bind().Query(&q)

	result, err := h.svc.ListByPatient(c.Context(), patientID, q.Page, q.Limit)
	if err != nil {
		return mapMedicationError(c, err)
	}

	return ok(c, "prescriptions retrieved", result)
}

// PATCH /medications/patient/:id
func (h *MedicationHandler) UpdatePrescription(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid prescription id")
	}

	var body struct {
		Dosage           *string `json:"dosage"`
		Frequency        *string `json:"frequency"`
		Route            *string `json:"route"`
		StartDate        *string `json:"start_date"`
		EndDate          *string `json:"end_date"`
		Status           *string `json:"status"`
		Reason           *string `json:"reason"`
		Instructions     *string `json:"instructions"`
		AdverseReactions *string `json:"adverse_reactions"`
	}
	if err := c.Bind().Body(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	pm, err := h.svc.UpdatePrescription(c.Context(), id, medication.UpdatePrescriptionRequest{
		Dosage:           body.Dosage,
		Frequency:        body.Frequency,
		Route:            body.Route,
		StartDate:        body.StartDate,
		EndDate:          body.EndDate,
		Status:           body.Status,
		Reason:           body.Reason,
		Instructions:     body.Instructions,
		AdverseReactions: body.AdverseReactions,
	})
	if err != nil {
		return mapMedicationError(c, err)
	}

	return ok(c, "prescription updated", pm)
}

// PATCH /medications/patient/:id/discontinue
func (h *MedicationHandler) Discontinue(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid prescription id")
	}

	var body struct {
		Reason *string `json:"reason"`
	}
	_ = c.Bind().Body(&body)

	pm, err := h.svc.Discontinue(c.Context(), id, body.Reason)
	if err != nil {
		return mapMedicationError(c, err)
	}

	return ok(c, "prescription discontinued", pm)
}
