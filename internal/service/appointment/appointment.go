package appointment

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/caretide/caretide_backend/internal/repo"
	entappointment "github.com/caretide/caretide_backend/internal/repo/appointment"
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

type CreateAppointmentRequest struct {
	PatientID       uuid.UUID
	ProviderID      uuid.UUID
	AppointmentDate string // YYYY-MM-DD or RFC 3339
	AppointmentTime string // HH:MM
	Duration        *int
	AppointmentType string
	Reason          *string
	Notes           *string
}

type UpdateAppointmentRequest struct {
	AppointmentDate *string
	AppointmentTime *string
	Duration        *int
	AppointmentType *string
	Reason          *string
	Notes           *string
	Status          *string
}

type ListAppointmentsRequest struct {
	Page       int
	Limit      int
	PatientID  *uuid.UUID
	ProviderID *uuid.UUID
	Status     *string
	Date       *string // single calendar day
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	Create(ctx context.Context, req CreateAppointmentRequest) (*repo.Appointment, error)
	List(ctx context.Context, req ListAppointmentsRequest) (*paging.Result[*repo.Appointment], error)
	GetByID(ctx context.Context, id uuid.UUID) (*repo.Appointment, error)
	Update(ctx context.Context, id uuid.UUID, req UpdateAppointmentRequest) (*repo.Appointment, error)
	Remove(ctx context.Context, id uuid.UUID) error
	CheckIn(ctx context.Context, id uuid.UUID) (*repo.Appointment, error)
	LinkEncounter(ctx context.Context, id, encounterID uuid.UUID) (*repo.Appointment, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type appointmentService struct {
	db *repo.Client
}

func New(db *repo.Client) Service {
	return &appointmentService{db: db}
}

// ---------------------------------------------------------------------------
// Create
// ---------------------------------------------------------------------------

func (s *appointmentService) Create(ctx context.Context, req CreateAppointmentRequest) (*repo.Appointment, error) {
	date, err := dates.Parse(req.AppointmentDate)
	if err != nil {
		return nil, ErrInvalidDate
	}
	if err := validateWallClock(req.AppointmentTime); err != nil {
		return nil, ErrInvalidTime
	}

	if err := s.checkParticipants(ctx, req.PatientID, req.ProviderID); err != nil {
		return nil, err
	}

	day := dates.Day(date)
	prefix := recordid.AppointmentDayPrefix(day)

	// The daily sequence is read-then-insert, so a concurrent creation can
	// claim the same number. The unique index on appointment_id turns that
	// into a constraint error and the loop re-reads.
	for attempt := 0; attempt < idRetries; attempt++ {
		lastID, err := s.lastIDForDay(ctx, prefix)
		if err != nil {
			return nil, err
		}
		seq, err := recordid.NextSeq(lastID, prefix)
		if err != nil {
			return nil, fmt.Errorf("compute appointment sequence: %w", err)
		}

		created, err := s.db.Appointment.Create().
			SetAppointmentID(recordid.FormatAppointmentID(prefix, seq)).
			SetPatientID(req.PatientID).
			SetProviderID(req.ProviderID).
			SetAppointmentDate(day).
			SetAppointmentTime(req.AppointmentTime).
			SetNillableDuration(req.Duration).
			SetAppointmentType(entappointment.AppointmentType(req.AppointmentType)).
			SetNillableReason(req.Reason).
			SetNillableNotes(req.Notes).
			Save(ctx)
		if err == nil {
			return s.GetByID(ctx, created.ID)
		}
		if !repo.IsConstraintError(err) {
			return nil, fmt.Errorf("create appointment: %w", err)
		}
	}
	return nil, ErrIDConflict
}

// ---------------------------------------------------------------------------
// List
// ---------------------------------------------------------------------------

func (s *appointmentService) List(ctx context.Context, req ListAppointmentsRequest) (*paging.Result[*repo.Appointment], error) {
	p := paging.Clamp(req.Page, req.Limit)

	q := s.db.Appointment.Query()

	if req.PatientID != nil {
		q = q.Where(entappointment.PatientID(*req.PatientID))
	}
	if req.ProviderID != nil {
		q = q.Where(entappointment.ProviderID(*req.ProviderID))
	}
	if req.Status != nil && *req.Status != "" {
		q = q.Where(entappointment.StatusEQ(entappointment.Status(*req.Status)))
	}
	if req.Date != nil && *req.Date != "" {
		date, err := dates.Parse(*req.Date)
		if err != nil {
			return nil, ErrInvalidDate
		}
		day := dates.Day(date)
		q = q.Where(
			entappointment.AppointmentDateGTE(day),
			entappointment.AppointmentDateLT(day.AddDate(0, 0, 1)),
		)
	}

	total, err := q.Clone().Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count appointments: %w", err)
	}

	items, err := q.
		WithPatient().
		WithProvider().
		Order(entappointment.ByAppointmentDate(sql.OrderDesc())).
		Offset(p.Offset()).
		Limit(p.Limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}

	res := paging.NewResult(items, total, p)
	return &res, nil
}

// ---------------------------------------------------------------------------
// GetByID
// ---------------------------------------------------------------------------

func (s *appointmentService) GetByID(ctx context.Context, id uuid.UUID) (*repo.Appointment, error) {
	apt, err := s.db.Appointment.Query().
		Where(entappointment.ID(id)).
		WithPatient().
		WithProvider().
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrAppointmentNotFound
		}
		return nil, fmt.Errorf("get appointment: %w", err)
	}
	return apt, nil
}

// ---------------------------------------------------------------------------
// Update
// ---------------------------------------------------------------------------

func (s *appointmentService) Update(ctx context.Context, id uuid.UUID, req UpdateAppointmentRequest) (*repo.Appointment, error) {
	apt, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	upd := s.db.Appointment.UpdateOne(apt)

	if req.AppointmentDate != nil {
		date, err := dates.Parse(*req.AppointmentDate)
		if err != nil {
			return nil, ErrInvalidDate
		}
		upd = upd.SetAppointmentDate(dates.Day(date))
	}
	if req.AppointmentTime != nil {
		if err := validateWallClock(*req.AppointmentTime); err != nil {
			return nil, ErrInvalidTime
		}
		upd = upd.SetAppointmentTime(*req.AppointmentTime)
	}
	if req.Duration != nil {
		upd = upd.SetDuration(*req.Duration)
	}
	if req.AppointmentType != nil {
		upd = upd.SetAppointmentType(entappointment.AppointmentType(*req.AppointmentType))
	}
	if req.Reason != nil {
		upd = upd.SetReason(*req.Reason)
	}
	if req.Notes != nil {
		upd = upd.SetNotes(*req.Notes)
	}
	if req.Status != nil {
		upd = upd.SetStatus(entappointment.Status(*req.Status))
	}

	if _, err := upd.Save(ctx); err != nil {
		return nil, fmt.Errorf("update appointment: %w", err)
	}
	return s.GetByID(ctx, id)
}

// ---------------------------------------------------------------------------
// Remove
// ---------------------------------------------------------------------------

// Remove hard-deletes the appointment row.
func (s *appointmentService) Remove(ctx context.Context, id uuid.UUID) error {
	if err := s.db.Appointment.DeleteOneID(id).Exec(ctx); err != nil {
		if repo.IsNotFound(err) {
			return ErrAppointmentNotFound
		}
		return fmt.Errorf("delete appointment: %w", err)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Status helpers
// ---------------------------------------------------------------------------

// CheckIn marks the appointment as checked-in. Checking in twice is a no-op.
func (s *appointmentService) CheckIn(ctx context.Context, id uuid.UUID) (*repo.Appointment, error) {
	apt, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if apt.Status == entappointment.StatusCheckedIn {
		return apt, nil
	}

	if _, err := s.db.Appointment.UpdateOne(apt).
		SetStatus(entappointment.StatusCheckedIn).
		Save(ctx); err != nil {
		return nil, fmt.Errorf("check in appointment: %w", err)
	}
	return s.GetByID(ctx, id)
}

// LinkEncounter records the encounter documenting this visit and marks the
// appointment completed.
func (s *appointmentService) LinkEncounter(ctx context.Context, id, encounterID uuid.UUID) (*repo.Appointment, error) {
	apt, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	exists, err := s.db.Encounter.Query().
		Where(entencounter.ID(encounterID)).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check encounter: %w", err)
	}
	if !exists {
		return nil, ErrEncounterNotFound
	}

	if _, err := s.db.Appointment.UpdateOne(apt).
		SetEncounterID(encounterID).
		SetStatus(entappointment.StatusCompleted).
		Save(ctx); err != nil {
		return nil, fmt.Errorf("link encounter: %w", err)
	}
	return s.GetByID(ctx, id)
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func (s *appointmentService) checkParticipants(ctx context.Context, patientID, providerID uuid.UUID) error {
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

// lastIDForDay returns the highest appointment_id carrying the day prefix,
// or "" when none exists yet.
func (s *appointmentService) lastIDForDay(ctx context.Context, prefix string) (string, error) {
	last, err := s.db.Appointment.Query().
		Where(entappointment.AppointmentIDHasPrefix(prefix)).
		Order(entappointment.ByAppointmentID(sql.OrderDesc())).
		First(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return "", nil
		}
		return "", fmt.Errorf("read last appointment id: %w", err)
	}
	return last.AppointmentID, nil
}

// validateWallClock checks an HH:MM string.
func validateWallClock(v string) error {
	if len(v) != 5 {
		return fmt.Errorf("invalid time %q", v)
	}
	if _, err := time.Parse("15:04", v); err != nil {
		return fmt.Errorf("invalid time %q: %w", v, err)
	}
	return nil
}
