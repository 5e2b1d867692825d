package encounter

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/caretide/caretide_backend/internal/repo"
	entencounter "github.com/caretide/caretide_backend/internal/repo/encounter"
	entpatient "github.com/caretide/caretide_backend/internal/repo/patient"
	entuser "github.com/caretide/caretide_backend/internal/repo/user"
	"github.com/caretide/caretide_backend/pkg/util/dates"
	"github.com/caretide/caretide_backend/pkg/util/paging"
	"github.com/caretide/caretide_backend/pkg/util/recordid"
)

// idRetries bounds the retry loop when two same-day creations race for the
// same daily sequence number.
const idRetries = 3

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type CreateEncounterRequest struct {
	PatientID                uuid.UUID
	ProviderID               uuid.UUID
	AppointmentID            *uuid.UUID
	EncounterType            string
	EncounterDate            string // YYYY-MM-DD or RFC 3339
	ChiefComplaint           *string
	HistoryOfPresentIllness  *string
	PhysicalExamination      *string
	Assessment               *string
	Plan                     *string
	Notes                    *string
	Duration                 *int
}

type UpdateEncounterRequest struct {
	EncounterType            *string
	EncounterDate            *string
	ChiefComplaint           *string
	HistoryOfPresentIllness  *string
	PhysicalExamination      *string
	Assessment               *string
	Plan                     *string
	Notes                    *string
	Status                   *string
	Duration                 *int
}

type ListEncountersRequest struct {
	Page       int
	Limit      int
	PatientID  *uuid.UUID
	ProviderID *uuid.UUID
	Status     *string
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	Create(ctx context.Context, req CreateEncounterRequest) (*repo.Encounter, error)
	List(ctx context.Context, req ListEncountersRequest) (*paging.Result[*repo.Encounter], error)
	GetByID(ctx context.Context, id uuid.UUID) (*repo.Encounter, error)
	Update(ctx context.Context, id uuid.UUID, req UpdateEncounterRequest) (*repo.Encounter, error)
	Remove(ctx context.Context, id uuid.UUID) error
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type encounterService struct {
	db *repo.Client
}

func New(db *repo.Client) Service {
	return &encounterService{db: db}
}

// ---------------------------------------------------------------------------
// Create
// ---------------------------------------------------------------------------

func (s *encounterService) Create(ctx context.Context, req CreateEncounterRequest) (*repo.Encounter, error) {
	date, err := dates.Parse(req.EncounterDate)
	if err != nil {
		return nil, ErrInvalidDate
	}

	if err := s.checkParticipants(ctx, req.PatientID, req.ProviderID); err != nil {
		return nil, err
	}

	day := dates.Day(date)
	prefix := recordid.EncounterDayPrefix(day)

	// Same read-then-insert race as appointments, resolved by the unique
	// index on encounter_id plus a bounded re-read.
	for attempt := 0; attempt < idRetries; attempt++ {
		lastID, err := s.lastIDForDay(ctx, prefix)
		if err != nil {
			return nil, err
		}
		seq, err := recordid.NextSeq(lastID, prefix)
		if err != nil {
			return nil, fmt.Errorf("compute encounter sequence: %w", err)
		}

		created, err := s.db.Encounter.Create().
			SetEncounterID(recordid.FormatEncounterID(prefix, seq)).
			SetPatientID(req.PatientID).
			SetProviderID(req.ProviderID).
			SetNillableAppointmentID(req.AppointmentID).
			SetEncounterType(entencounter.EncounterType(req.EncounterType)).
			SetEncounterDate(date).
			SetNillableChiefComplaint(req.ChiefComplaint).
			SetNillableHistoryOfPresentIllness(req.HistoryOfPresentIllness).
			SetNillablePhysicalExamination(req.PhysicalExamination).
			SetNillableAssessment(req.Assessment).
			SetNillablePlan(req.Plan).
			SetNillableNotes(req.Notes).
			SetNillableDuration(req.Duration).
			Save(ctx)
		if err == nil {
			return s.GetByID(ctx, created.ID)
		}
		if !repo.IsConstraintError(err) {
			return nil, fmt.Errorf("create encounter: %w", err)
		}
	}
	return nil, ErrIDConflict
}

// ---------------------------------------------------------------------------
// List
// ---------------------------------------------------------------------------

func (s *encounterService) List(ctx context.Context, req ListEncountersRequest) (*paging.Result[*repo.Encounter], error) {
	p := paging.Clamp(req.Page, req.Limit)

	q := s.db.Encounter.Query()

	if req.PatientID != nil {
		q = q.Where(entencounter.PatientID(*req.PatientID))
	}
	if req.ProviderID != nil {
		q = q.Where(entencounter.ProviderID(*req.ProviderID))
	}
	if req.Status != nil && *req.Status != "" {
		q = q.Where(entencounter.StatusEQ(entencounter.Status(*req.Status)))
	}

	total, err := q.Clone().Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count encounters: %w", err)
	}

	items, err := q.
		WithPatient().
		WithProvider().
		Order(entencounter.ByEncounterDate(sql.OrderDesc())).
		Offset(p.Offset()).
		Limit(p.Limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list encounters: %w", err)
	}

	res := paging.NewResult(items, total, p)
	return &res, nil
}

// ---------------------------------------------------------------------------
// GetByID
// ---------------------------------------------------------------------------

func (s *encounterService) GetByID(ctx context.Context, id uuid.UUID) (*repo.Encounter, error) {
	enc, err := s.db.Encounter.Query().
		Where(entencounter.ID(id)).
		WithPatient().
		WithProvider().
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrEncounterNotFound
		}
		return nil, fmt.Errorf("get encounter: %w", err)
	}
	return enc, nil
}

// ---------------------------------------------------------------------------
// Update
// ---------------------------------------------------------------------------

func (s *encounterService) Update(ctx context.Context, id uuid.UUID, req UpdateEncounterRequest) (*repo.Encounter, error) {
	enc, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	upd := s.db.Encounter.UpdateOne(enc)

	if req.EncounterType != nil {
		upd = upd.SetEncounterType(entencounter.EncounterType(*req.EncounterType))
	}
	if req.EncounterDate != nil {
		date, err := dates.Parse(*req.EncounterDate)
		if err != nil {
			return nil, ErrInvalidDate
		}
		upd = upd.SetEncounterDate(date)
	}
	if req.ChiefComplaint != nil {
		upd = upd.SetChiefComplaint(*req.ChiefComplaint)
	}
	if req.HistoryOfPresentIllness != nil {
		upd = upd.SetHistoryOfPresentIllness(*req.HistoryOfPresentIllness)
	}
	if req.PhysicalExamination != nil {
		upd = upd.SetPhysicalExamination(*req.PhysicalExamination)
	}
	if req.Assessment != nil {
		upd = upd.SetAssessment(*req.Assessment)
	}
	if req.Plan != nil {
		upd = upd.SetPlan(*req.Plan)
	}
	if req.Notes != nil {
		upd = upd.SetNotes(*req.Notes)
	}
	if req.Status != nil {
		upd = upd.SetStatus(entencounter.Status(*req.Status))
	}
	if req.Duration != nil {
		upd = upd.SetDuration(*req.Duration)
	}

	if _, err := upd.Save(ctx); err != nil {
		return nil, fmt.Errorf("update encounter: %w", err)
	}
	return s.GetByID(ctx, id)
}

// ---------------------------------------------------------------------------
// Remove
// ---------------------------------------------------------------------------

// Remove cancels the encounter. The row stays visible in listings; a second
// cancellation is a no-op.
func (s *encounterService) Remove(ctx context.Context, id uuid.UUID) error {
	enc, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if enc.Status == entencounter.StatusCancelled {
		return nil
	}

	if _, err := s.db.Encounter.UpdateOne(enc).
		SetStatus(entencounter.StatusCancelled).
		Save(ctx); err != nil {
		return fmt.Errorf("cancel encounter: %w", err)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func (s *encounterService) checkParticipants(ctx context.Context, patientID, providerID uuid.UUID) error {
	ok, err := s.db.Patient.Query().Where(entpatient.ID(patientID)).Exist(ctx)
	if err != nil {
		return fmt.Errorf("check patient: %w", err)
	}
	if !ok {
		return ErrPatientNotFound
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

// lastIDForDay returns the highest encounter_id carrying the day prefix, or
// "" when none exists yet.
func (s *encounterService) lastIDForDay(ctx context.Context, prefix string) (string, error) {
	last, err := s.db.Encounter.Query().
		Where(entencounter.EncounterIDHasPrefix(prefix)).
		Order(entencounter.ByEncounterID(sql.OrderDesc())).
		First(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return "", nil
		}
		return "", fmt.Errorf("read last encounter id: %w", err)
	}
	return last.EncounterID, nil
}
