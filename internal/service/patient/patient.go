package patient

import (
	"context"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/nyaruka/phonenumbers"

	"github.com/caretide/caretide_backend/internal/repo"
	entpatient "github.com/caretide/caretide_backend/internal/repo/patient"
	"github.com/caretide/caretide_backend/pkg/util/dates"
	"github.com/caretide/caretide_backend/pkg/util/paging"
	"github.com/caretide/caretide_backend/pkg/util/recordid"
)

// defaultPhoneRegion is assumed when a phone number arrives without a
// country prefix.
const defaultPhoneRegion = "US"

// idRetries bounds the retry loop when a generated patient_id collides
// with an existing row.
const idRetries = 3

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type CreatePatientRequest struct {
	FirstName        string
	LastName         string
	DateOfBirth      string // YYYY-MM-DD or RFC 3339
	Gender           string
	Phone            string
	Email            *string
	Address          *string
	EmergencyContact *string
	EmergencyPhone   *string
	BloodType        *string
	Allergies        *string
	MedicalHistory   *string
}

type UpdatePatientRequest struct {
	FirstName        *string
	LastName         *string
	DateOfBirth      *string
	Gender           *string
	Phone            *string
	Email            *string
	Address          *string
	EmergencyContact *string
	EmergencyPhone   *string
	BloodType        *string
	Allergies        *string
	MedicalHistory   *string
}

type ListPatientsRequest struct {
	Page            int
	Limit           int
	Search          *string // matches first name, last name or patient_id
	IncludeInactive bool
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	Create(ctx context.Context, req CreatePatientRequest) (*repo.Patient, error)
	List(ctx context.Context, req ListPatientsRequest) (*paging.Result[*repo.Patient], error)
	GetByID(ctx context.Context, id uuid.UUID) (*repo.Patient, error)
	Update(ctx context.Context, id uuid.UUID, req UpdatePatientRequest) (*repo.Patient, error)
	Deactivate(ctx context.Context, id uuid.UUID) error
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type patientService struct {
	db *repo.Client
}

func New(db *repo.Client) Service {
	return &patientService{db: db}
}

// ---------------------------------------------------------------------------
// Create
// ---------------------------------------------------------------------------

func (s *patientService) Create(ctx context.Context, req CreatePatientRequest) (*repo.Patient, error) {
	dob, err := dates.Parse(req.DateOfBirth)
	if err != nil {
		return nil, ErrInvalidDateOfBirth
	}
	if dob.After(time.Now()) {
		return nil, ErrInvalidDateOfBirth
	}

	phone, err := normalizePhone(req.Phone)
	if err != nil {
		return nil, ErrInvalidPhone
	}

	emergencyPhone := req.EmergencyPhone
	if emergencyPhone != nil && *emergencyPhone != "" {
		normalized, err := normalizePhone(*emergencyPhone)
		if err != nil {
			return nil, ErrInvalidPhone
		}
		emergencyPhone = &normalized
	}

	// The generated patient_id carries a random tail, so a unique-index
	// conflict is resolved by generating a fresh one.
	var created *repo.Patient
	for attempt := 0; attempt < idRetries; attempt++ {
		patientID, err := recordid.NewPatientID(time.Now())
		if err != nil {
			return nil, fmt.Errorf("generate patient id: %w", err)
		}

		created, err = s.db.Patient.Create().
			SetPatientID(patientID).
			SetFirstName(strings.TrimSpace(req.FirstName)).
			SetLastName(strings.TrimSpace(req.LastName)).
			SetDateOfBirth(dob).
			SetGender(entpatient.Gender(req.Gender)).
			SetPhone(phone).
			SetNillableEmail(req.Email).
			SetNillableAddress(req.Address).
			SetNillableEmergencyContact(req.EmergencyContact).
			SetNillableEmergencyPhone(emergencyPhone).
			SetNillableBloodType((*entpatient.BloodType)(req.BloodType)).
			SetNillableAllergies(req.Allergies).
			SetNillableMedicalHistory(req.MedicalHistory).
			Save(ctx)
		if err == nil {
			return created, nil
		}
		if !repo.IsConstraintError(err) {
			return nil, fmt.Errorf("create patient: %w", err)
		}
	}
	return nil, ErrPatientIDExhausted
}

// ---------------------------------------------------------------------------
// List
// ---------------------------------------------------------------------------

func (s *patientService) List(ctx context.Context, req ListPatientsRequest) (*paging.Result[*repo.Patient], error) {
	p := paging.Clamp(req.Page, req.Limit)

	q := s.db.Patient.Query()

	if !req.IncludeInactive {
		q = q.Where(entpatient.IsActive(true))
	}
	if req.Search != nil && *req.Search != "" {
		term := strings.TrimSpace(*req.Search)
		q = q.Where(entpatient.Or(
			entpatient.FirstNameContainsFold(term),
			entpatient.LastNameContainsFold(term),
			entpatient.PatientIDContainsFold(term),
		))
	}

	total, err := q.Clone().Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count patients: %w", err)
	}

	items, err := q.
		Order(entpatient.ByCreatedAt(sql.OrderDesc())).
		Offset(p.Offset()).
		Limit(p.Limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list patients: %w", err)
	}

	res := paging.NewResult(items, total, p)
	return &res, nil
}

// ---------------------------------------------------------------------------
// GetByID
// ---------------------------------------------------------------------------

func (s *patientService) GetByID(ctx context.Context, id uuid.UUID) (*repo.Patient, error) {
	pt, err := s.db.Patient.Get(ctx, id)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrPatientNotFound
		}
		return nil, fmt.Errorf("get patient: %w", err)
	}
	return pt, nil
}

// ---------------------------------------------------------------------------
// Update
// ---------------------------------------------------------------------------

func (s *patientService) Update(ctx context.Context, id uuid.UUID, req UpdatePatientRequest) (*repo.Patient, error) {
	pt, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	upd := s.db.Patient.UpdateOne(pt)

	if req.FirstName != nil {
		upd = upd.SetFirstName(strings.TrimSpace(*req.FirstName))
	}
	if req.LastName != nil {
		upd = upd.SetLastName(strings.TrimSpace(*req.LastName))
	}
	if req.DateOfBirth != nil {
		dob, err := dates.Parse(*req.DateOfBirth)
		if err != nil || dob.After(time.Now()) {
			return nil, ErrInvalidDateOfBirth
		}
		upd = upd.SetDateOfBirth(dob)
	}
	if req.Gender != nil {
		upd = upd.SetGender(entpatient.Gender(*req.Gender))
	}
	if req.Phone != nil {
		phone, err := normalizePhone(*req.Phone)
		if err != nil {
			return nil, ErrInvalidPhone
		}
		upd = upd.SetPhone(phone)
	}
	if req.Email != nil {
		upd = upd.SetEmail(*req.Email)
	}
	if req.Address != nil {
		upd = upd.SetAddress(*req.Address)
	}
	if req.EmergencyContact != nil {
		upd = upd.SetEmergencyContact(*req.EmergencyContact)
	}
	if req.EmergencyPhone != nil {
		phone, err := normalizePhone(*req.EmergencyPhone)
		if err != nil {
			return nil, ErrInvalidPhone
		}
		upd = upd.SetEmergencyPhone(phone)
	}
	if req.BloodType != nil {
		upd = upd.SetBloodType(entpatient.BloodType(*req.BloodType))
	}
	if req.Allergies != nil {
		upd = upd.SetAllergies(*req.Allergies)
	}
	if req.MedicalHistory != nil {
		upd = upd.SetMedicalHistory(*req.MedicalHistory)
	}

	updated, err := upd.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update patient: %w", err)
	}
	return updated, nil
}

// ---------------------------------------------------------------------------
// Deactivate
// ---------------------------------------------------------------------------

func (s *patientService) Deactivate(ctx context.Context, id uuid.UUID) error {
	pt, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !pt.IsActive {
		return nil
	}

	if _, err := s.db.Patient.UpdateOne(pt).SetIsActive(false).Save(ctx); err != nil {
		return fmt.Errorf("deactivate patient: %w", err)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

// normalizePhone validates the input and renders it in E.164 form.
func normalizePhone(raw string) (string, error) {
	num, err := phonenumbers.Parse(strings.TrimSpace(raw), defaultPhoneRegion)
	if err != nil {
		return "", err
	}
	if !phonenumbers.IsValidNumber(num) {
		return "", fmt.Errorf("phone number %q is not valid", raw)
	}
	return phonenumbers.Format(num, phonenumbers.E164), nil
}
