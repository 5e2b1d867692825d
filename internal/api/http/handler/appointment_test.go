package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/caretide/caretide_backend/internal/repo"
	"github.com/caretide/caretide_backend/internal/service/appointment"
	"github.com/caretide/caretide_backend/pkg/util/paging"
)

type mockAppointmentService struct {
	create        func(ctx context.Context, req appointment.CreateAppointmentRequest) (*repo.Appointment, error)
	list          func(ctx context.Context, req appointment.ListAppointmentsRequest) (*paging.Result[*repo.Appointment], error)
	getByID       func(ctx context.Context, id uuid.UUID) (*repo.Appointment, error)
	update        func(ctx context.Context, id uuid.UUID, req appointment.UpdateAppointmentRequest) (*repo.Appointment, error)
	remove        func(ctx context.Context, id uuid.UUID) error
	checkIn       func(ctx context.Context, id uuid.UUID) (*repo.Appointment, error)
	linkEncounter func(ctx context.Context, id, encounterID uuid.UUID) (*repo.Appointment, error)
}

func (m *mockAppointmentService) Create(ctx context.Context, req appointment.CreateAppointmentRequest) (*repo.Appointment, error) {
	return m.create(ctx, req)
}

func (m *mockAppointmentService) List(ctx context.Context, req appointment.ListAppointmentsRequest) (*paging.Result[*repo.Appointment], error) {
	return m.list(ctx, req)
}

func (m *mockAppointmentService) GetByID(ctx context.Context, id uuid.UUID) (*repo.Appointment, error) {
	return m.getByID(ctx, id)
}

func (m *mockAppointmentService) Update(ctx context.Context, id uuid.UUID, req appointment.UpdateAppointmentRequest) (*repo.Appointment, error) {
	return m.update(ctx, id, req)
}

func (m *mockAppointmentService) Remove(ctx context.Context, id uuid.UUID) error {
	return m.remove(ctx, id)
}

func (m *mockAppointmentService) CheckIn(ctx context.Context, id uuid.UUID) (*repo.Appointment, error) {
	return m.checkIn(ctx, id)
}

func (m *mockAppointmentService) LinkEncounter(ctx context.Context, id, encounterID uuid.UUID) (*repo.Appointment, error) {
	return m.linkEncounter(ctx, id, encounterID)
}

func newAppointmentApp(svc appointment.Service) *fiber.App {
	h := NewAppointmentHandler(svc)
	app := fiber.New()
	app.Post("/appointments", h.Create)
	app.Get("/appointments", h.List)
	app.Get("/appointments/:id", h.Get)
	app.Patch("/appointments/:id", h.Update)
	app.Delete("/appointments/:id", h.Remove)
	app.Patch("/appointments/:id/check-in", h.CheckIn)
	app.Patch("/appointments/:id/link-encounter", h.LinkEncounter)
	return app
}

func TestAppointmentCreate(t *testing.T) {
	patientID := uuid.Must(uuid.NewV7())
	providerID := uuid.Must(uuid.NewV7())
	want := &repo.Appointment{
		ID:            uuid.Must(uuid.NewV7()),
		AppointmentID: "APT2508300001",
	}
	svc := &mockAppointmentService{
		create: func(_ context.Context, req appointment.CreateAppointmentRequest) (*repo.Appointment, error) {
			if req.PatientID != patientID || req.ProviderID != providerID {
				t.Errorf("unexpected participants: %+v", req)
			}
			if req.AppointmentTime != "09:30" {
				t.Errorf("appointment_time = %q, want 09:30", req.AppointmentTime)
			}
			return want, nil
		},
	}
	app := newAppointmentApp(svc)

	body := `{"patient_id":"` + patientID.String() + `","provider_id":"` + providerID.String() +
		`","appointment_date":"2026-09-01","appointment_time":"09:30","appointment_type":"consultation"}`
	resp, env := doRequest(t, app, jsonRequest(http.MethodPost, "/appointments", body))

	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("status = %d, want 201", resp.StatusCode)
	}
	var got struct {
		AppointmentID string `json:"appointment_id"`
	}
	if err := json.Unmarshal(env.Data, &got); err != nil {
		t.Fatalf("decoding data: %v", err)
	}
	if got.AppointmentID != want.AppointmentID {
		t.Errorf("appointment_id = %q, want %q", got.AppointmentID, want.AppointmentID)
	}
}

func TestAppointmentCreateBadParticipant(t *testing.T) {
	app := newAppointmentApp(&mockAppointmentService{})

	resp, _ := doRequest(t, app, jsonRequest(http.MethodPost, "/appointments",
		`{"patient_id":"nope","provider_id":"`+uuid.Must(uuid.NewV7()).String()+`"}`))

	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}

func TestAppointmentCreateUnknownPatient(t *testing.T) {
	svc := &mockAppointmentService{
		create: func(context.Context, appointment.CreateAppointmentRequest) (*repo.Appointment, error) {
			return nil, appointment.ErrPatientNotFound
		},
	}
	app := newAppointmentApp(svc)

	body := `{"patient_id":"` + uuid.Must(uuid.NewV7()).String() + `","provider_id":"` +
		uuid.Must(uuid.NewV7()).String() +
		`","appointment_date":"2026-09-01","appointment_time":"09:30","appointment_type":"consultation"}`
	resp, _ := doRequest(t, app, jsonRequest(http.MethodPost, "/appointments", body))

	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want 404", resp.StatusCode)
	}
}

func TestAppointmentCreateIDConflict(t *testing.T) {
	svc := &mockAppointmentService{
		create: func(context.Context, appointment.CreateAppointmentRequest) (*repo.Appointment, error) {
			return nil, appointment.ErrIDConflict
		},
	}
	app := newAppointmentApp(svc)

	body := `{"patient_id":"` + uuid.Must(uuid.NewV7()).String() + `","provider_id":"` +
		uuid.Must(uuid.NewV7()).String() +
		`","appointment_date":"2026-09-01","appointment_time":"09:30","appointment_type":"consultation"}`
	resp, _ := doRequest(t, app, jsonRequest(http.MethodPost, "/appointments", body))

	if resp.StatusCode != http.StatusConflict {
		t.Errorf("status = %d, want 409", resp.StatusCode)
	}
}

func TestAppointmentListFilters(t *testing.T) {
	patientID := uuid.Must(uuid.NewV7())
	svc := &mockAppointmentService{
		list: func(_ context.Context, req appointment.ListAppointmentsRequest) (*paging.Result[*repo.Appointment], error) {
			if req.PatientID == nil || *req.PatientID != patientID {
				t.Errorf("patient filter = %v, want %s", req.PatientID, patientID)
			}
			if req.Status == nil || *req.Status != "scheduled" {
				t.Errorf("status filter = %v, want scheduled", req.Status)
			}
			if req.Date == nil || *req.Date != "2026-09-01" {
				t.Errorf("date filter = %v, want 2026-09-01", req.Date)
			}
			result := paging.NewResult([]*repo.Appointment{}, 0, paging.Clamp(1, 10))
			return &result, nil
		},
	}
	app := newAppointmentApp(svc)

	resp, _ := doRequest(t, app, httptest.NewRequest(http.MethodGet,
		"/appointments?patient_id="+patientID.String()+"&status=scheduled&date=2026-09-01", nil))

	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
}

func TestAppointmentCheckIn(t *testing.T) {
	id := uuid.Must(uuid.NewV7())
	svc := &mockAppointmentService{
		checkIn: func(_ context.Context, gotID uuid.UUID) (*repo.Appointment, error) {
			if gotID != id {
				t.Errorf("checked in %s, want %s", gotID, id)
			}
			return &repo.Appointment{ID: id, AppointmentID: "APT2508300001"}, nil
		},
	}
	app := newAppointmentApp(svc)

	resp, _ := doRequest(t, app,
		httptest.NewRequest(http.MethodPatch, "/appointments/"+id.String()+"/check-in", nil))

	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
}

func TestAppointmentLinkEncounter(t *testing.T) {
	id := uuid.Must(uuid.NewV7())
	encounterID := uuid.Must(uuid.NewV7())
	svc := &mockAppointmentService{
		linkEncounter: func(_ context.Context, gotID, gotEnc uuid.UUID) (*repo.Appointment, error) {
			if gotID != id || gotEnc != encounterID {
				t.Errorf("linked %s/%s, want %s/%s", gotID, gotEnc, id, encounterID)
			}
			return &repo.Appointment{ID: id}, nil
		},
	}
	app := newAppointmentApp(svc)

	resp, _ := doRequest(t, app, jsonRequest(http.MethodPatch,
		"/appointments/"+id.String()+"/link-encounter",
		`{"encounter_id":"`+encounterID.String()+`"}`))

	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
}

func TestAppointmentLinkEncounterMissingEncounter(t *testing.T) {
	svc := &mockAppointmentService{
		linkEncounter: func(context.Context, uuid.UUID, uuid.UUID) (*repo.Appointment, error) {
			return nil, appointment.ErrEncounterNotFound
		},
	}
	app := newAppointmentApp(svc)

	resp, _ := doRequest(t, app, jsonRequest(http.MethodPatch,
		"/appointments/"+uuid.Must(uuid.NewV7()).String()+"/link-encounter",
		`{"encounter_id":"`+uuid.Must(uuid.NewV7()).String()+`"}`))

	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want 404", resp.StatusCode)
	}
}

func TestAppointmentRemove(t *testing.T) {
	id := uuid.Must(uuid.NewV7())
	var removed uuid.UUID
	svc := &mockAppointmentService{
		remove: func(_ context.Context, id uuid.UUID) error {
			removed = id
			return nil
		},
	}
	app := newAppointmentApp(svc)

	resp, _ := doRequest(t, app,
		httptest.NewRequest(http.MethodDelete, "/appointments/"+id.String(), nil))

	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
	if removed != id {
		t.Errorf("removed %s, want %s", removed, id)
	}
}
