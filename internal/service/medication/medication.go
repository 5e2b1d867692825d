// Package medication covers both the formulary (medication master list)
// and per-patient prescriptions.
package medication

import (
	"context"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/caretide/caretide_backend/internal/repo"
	entmaster "github.com/caretide/caretide_backend/internal/repo/medicationmaster"
	entpatient "github.com/caretide/caretide_backend/internal/repo/patient"
	entpatientmed "github.com/caretide/caretide_backend/internal/repo/patientmedication"
	entuser "github.com/caretide/caretide_backend/internal/repo/user"
	"github.com/caretide/caretide_backend/pkg/util/dates"
	"github.com/caretide/caretide_backend/pkg/util/paging"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type CreateMasterRequest struct {
	GenericName    string
	BrandName      *string
	DosageForm     string
	Strength       string
	Manufacturer   *string
	Classification *string // defaults to other
	Description    *string
}

type ListMasterRequest struct {
	Page            int
	Limit           int
	Search          *string // matches generic or brand name
	Classification  *string
	IncludeInactive bool
}

type PrescribeRequest struct {
	PatientID    uuid.UUID
	MedicationID uuid.UUID
	ProviderID   uuid.UUID
	Dosage       string
	Frequency    string
	Route        *string
	StartDate    string // YYYY-MM-DD or RFC 3339
	EndDate      *string
	Reason       *string
	Instructions *string
	EncounterID  *uuid.UUID
}

type UpdatePrescriptionRequest struct {
	Dosage           *string
	Frequency        *string
	Route            *string
	StartDate        *string
	EndDate          *string
	Status           *string
	Reason           *string
	Instructions     *string
	AdverseReactions *string
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	// Formulary
	CreateMaster(ctx context.Context, req CreateMasterRequest) (*repo.MedicationMaster, error)
	ListMaster(ctx context.Context, req ListMasterRequest) (*paging.Result[*repo.MedicationMaster], error)
	GetMasterByID(ctx context.Context, id uuid.UUID) (*repo.MedicationMaster, error)
	DeactivateMaster(ctx context.Context, id uuid.UUID) error

	// Prescriptions
	Prescribe(ctx context.Context, req PrescribeRequest) (*repo.PatientMedication, error)
	ListByPatient(ctx context.Context, patientID uuid.UUID, page, limit int) (*paging.Result[*repo.PatientMedication], error)
	UpdatePrescription(ctx context.Context, id uuid.UUID, req UpdatePrescriptionRequest) (*repo.PatientMedication, error)
	Discontinue(ctx context.Context, id uuid.UUID, reason *string) (*repo.PatientMedication, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type medicationService struct {
	db *repo.Client
}

func New(db *repo.Client) Service {
	return &medicationService{db: db}
}

// ---------------------------------------------------------------------------
// Formulary
// ---------------------------------------------------------------------------

func (s *medicationService) CreateMaster(ctx context.Context, req CreateMasterRequest) (*repo.MedicationMaster, error) {
	name := strings.TrimSpace(req.GenericName)
	if name == "" {
		return nil, ErrGenericNameRequired
	}

	create := s.db.MedicationMaster.Create().
		SetGenericName(name).
		SetNillableBrandName(req.BrandName).
		SetDosageForm(entmaster.DosageForm(req.DosageForm)).
		SetStrength(strings.TrimSpace(req.Strength)).
		SetNillableManufacturer(req.Manufacturer).
		SetNillableDescription(req.Description)

	if req.Classification != nil {
		create = create.SetClassification(entmaster.Classification(*req.Classification))
	}

	m, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create medication: %w", err)
	}
	return m, nil
}

func (s *medicationService) ListMaster(ctx context.Context, req ListMasterRequest) (*paging.Result[*repo.MedicationMaster], error) {
	p := paging.Clamp(req.Page, req.Limit)

	q := s.db.MedicationMaster.Query()

	if !req.IncludeInactive {
		q = q.Where(entmaster.IsActive(true))
	}
	if req.Classification != nil && *req.Classification != "" {
		q = q.Where(entmaster.ClassificationEQ(entmaster.Classification(*req.Classification)))
	}
	if req.Search != nil && *req.Search != "" {
		term := strings.TrimSpace(*req.Search)
		q = q.Where(entmaster.Or(
			entmaster.GenericNameContainsFold(term),
			entmaster.BrandNameContainsFold(term),
		))
	}

	total, err := q.Clone().Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count medications: %w", err)
	}

	items, err := q.
		Order(entmaster.ByGenericName(sql.OrderAsc())).
		Offset(p.Offset()).
		Limit(p.Limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list medications: %w", err)
	}

	res := paging.NewResult(items, total, p)
	return &res, nil
}

func (s *medicationService) GetMasterByID(ctx context.Context, id uuid.UUID) (*repo.MedicationMaster, error) {
	m, err := s.db.MedicationMaster.Get(ctx, id)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrMedicationNotFound
		}
		return nil, fmt.Errorf("get medication: %w", err)
	}
	return m, nil
}

func (s *medicationService) DeactivateMaster(ctx context.Context, id uuid.UUID) error {
	m, err := s.GetMasterByID(ctx, id)
	if err != nil {
		return err
	}
	if !m.IsActive {
		return nil
	}

	if _, err := s.db.MedicationMaster.UpdateOne(m).SetIsActive(false).Save(ctx); err != nil {
		return fmt.Errorf("deactivate medication: %w", err)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Prescriptions
// ---------------------------------------------------------------------------

func (s *medicationService) Prescribe(ctx context.Context, req PrescribeRequest) (*repo.PatientMedication, error) {
	start, err := dates.Parse(req.StartDate)
	if err != nil {
		return nil, ErrInvalidDate
	}
	end, err := dates.ParseOptional(req.EndDate)
	if err != nil {
		return nil, ErrInvalidDate
	}

	if err := s.checkReferences(ctx, req.PatientID, req.MedicationID, req.ProviderID); err != nil {
		return nil, err
	}

	pm, err := s.db.PatientMedication.Create().
		SetPatientID(req.PatientID).
		SetMedicationID(req.MedicationID).
		SetProviderID(req.ProviderID).
		SetDosage(strings.TrimSpace(req.Dosage)).
		SetFrequency(strings.TrimSpace(req.Frequency)).
		SetNillableRoute(req.Route).
		SetStartDate(start).
		SetNillableEndDate(end).
		SetNillableReason(req.Reason).
		SetNillableInstructions(req.Instructions).
		SetNillableEncounterID(req.EncounterID).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create prescription: %w", err)
	}
	return s.getPrescription(ctx, pm.ID)
}

func (s *medicationService) ListByPatient(ctx context.Context, patientID uuid.UUID, page, limit int) (*paging.Result[*repo.PatientMedication], error) {
	p := paging.Clamp(page, limit)

	exists, err := s.db.Patient.Query().Where(entpatient.ID(patientID)).Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check patient: %w", err)
	}
	if !exists {
		return nil, ErrPatientNotFound
	}

	q := s.db.PatientMedication.Query().
		Where(entpatientmed.PatientID(patientID))

	total, err := q.Clone().Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count prescriptions: %w", err)
	}

	items, err := q.
		WithMedication().
		WithProvider().
		Order(entpatientmed.ByStartDate(sql.OrderDesc())).
		Offset(p.Offset()).
		Limit(p.Limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list prescriptions: %w", err)
	}

	res := paging.NewResult(items, total, p)
	return &res, nil
}

func (s *medicationService) UpdatePrescription(ctx context.Context, id uuid.UUID, req UpdatePrescriptionRequest) (*repo.PatientMedication, error) {
	pm, err := s.getPrescription(ctx, id)
	if err != nil {
		return nil, err
	}

	upd := s.db.PatientMedication.UpdateOne(pm)

	if req.Dosage != nil {
		upd = upd.SetDosage(strings.TrimSpace(*req.Dosage))
	}
	if req.Frequency != nil {
		upd = upd.SetFrequency(strings.TrimSpace(*req.Frequency))
	}
	if req.Route != nil {
		upd = upd.SetRoute(*req.Route)
	}
	if req.StartDate != nil {
		start, err := dates.Parse(*req.StartDate)
		if err != nil {
			return nil, ErrInvalidDate
		}
		upd = upd.SetStartDate(start)
	}
	if req.EndDate != nil {
		end, err := dates.Parse(*req.EndDate)
		if err != nil {
			return nil, ErrInvalidDate
		}
		upd = upd.SetEndDate(end)
	}
	if req.Status != nil {
		upd = upd.SetStatus(entpatientmed.Status(*req.Status))
	}
	if req.Reason != nil {
		upd = upd.SetReason(*req.Reason)
	}
	if req.Instructions != nil {
		upd = upd.SetInstructions(*req.Instructions)
	}
	if req.AdverseReactions != nil {
		upd = upd.SetAdverseReactions(*req.AdverseReactions)
	}

	if _, err := upd.Save(ctx); err != nil {
		return nil, fmt.Errorf("update prescription: %w", err)
	}
	return s.getPrescription(ctx, id)
}

// Discontinue stops the prescription, stamping end_date with the current
// time. Discontinuing twice is a no-op; the optional reason overwrites the
// stored one when provided.
func (s *medicationService) Discontinue(ctx context.Context, id uuid.UUID, reason *string) (*repo.PatientMedication, error) {
	pm, err := s.getPrescription(ctx, id)
	if err != nil {
		return nil, err
	}
	if pm.Status == entpatientmed.StatusDiscontinued {
		return pm, nil
	}

	upd := s.db.PatientMedication.UpdateOne(pm).
		SetStatus(entpatientmed.StatusDiscontinued).
		SetEndDate(time.Now().UTC())
	if reason != nil && *reason != "" {
		upd = upd.SetReason(*reason)
	}

	if _, err := upd.Save(ctx); err != nil {
		return nil, fmt.Errorf("discontinue prescription: %w", err)
	}
	return s.getPrescription(ctx, id)
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func (s *medicationService) getPrescription(ctx context.Context, id uuid.UUID) (*repo.PatientMedication, error) {
	pm, err := s.db.PatientMedication.Query().
		Where(entpatientmed.ID(id)).
		WithMedication().
		WithProvider().
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrPrescriptionNotFound
		}
		return nil, fmt.Errorf("get prescription: %w", err)
	}
	return pm, nil
}

func (s *medicationService) checkReferences(ctx context.Context, patientID, medicationID, providerID uuid.UUID) error {
	ok, err := s.db.Patient.Query().Where(entpatient.ID(patientID)).Exist(ctx)
	if err != nil {
		return fmt.Errorf("check patient: %w", err)
	}
	if !ok {
		return ErrPatientNotFound
	}

	ok, err = s.db.MedicationMaster.Query().
		Where(entmaster.ID(medicationID), entmaster.IsActive(true)).
		Exist(ctx)
	if err != nil {
		return fmt.Errorf("check medication: %w", err)
	}
	if !ok {
		return ErrMedicationNotFound
	}

	ok, err = s.db.User.Query().Where(entuser.ID(providerID)).Exist(ctx)
	if err != nil {
		return fmt.Errorf("check provider: %w", err)
	}
	if !ok {
		return ErrProviderNotFound
	}
	return nil
}
