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
	"github.com/caretide/caretide_backend/internal/service/patient"
	"github.com/caretide/caretide_backend/pkg/util/paging"
)

type mockPatientService struct {
	create     func(ctx context.Context, req patient.CreatePatientRequest) (*repo.Patient, error)
	list       func(ctx context.Context, req patient.ListPatientsRequest) (*paging.Result[*repo.Patient], error)
	getByID    func(ctx context.Context, id uuid.UUID) (*repo.Patient, error)
	update     func(ctx context.Context, id uuid.UUID, req patient.UpdatePatientRequest) (*repo.Patient, error)
	deactivate func(ctx context.Context, id uuid.UUID) error
}

func (m *mockPatientService) Create(ctx context.Context, req patient.CreatePatientRequest) (*repo.Patient, error) {
	return m.create(ctx, req)
}

func (m *mockPatientService) List(ctx context.Context, req patient.ListPatientsRequest) (*paging.Result[*repo.Patient], error) {
	return m.list(ctx, req)
}

func (m *mockPatientService) GetByID(ctx context.Context, id uuid.UUID) (*repo.Patient, error) {
	return m.getByID(ctx, id)
}

func (m *mockPatientService) Update(ctx context.Context, id uuid.UUID, req patient.UpdatePatientRequest) (*repo.Patient, error) {
	return m.update(ctx, id, req)
}

func (m *mockPatientService) Deactivate(ctx context.Context, id uuid.UUID) error {
	return m.deactivate(ctx, id)
}

func newPatientApp(svc patient.Service) *fiber.App {
	h := NewPatientHandler(svc)
	app := fiber.New()
	app.Post("/patients", h.Create)
	app.Get("/patients/list", h.List)
	app.Get("/patients/:id", h.Get)
	app.Patch("/patients/:id", h.Update)
	app.Delete("/patients/:id", h.Deactivate)
	return app
}

func TestPatientCreate(t *testing.T) {
	want := &repo.Patient{
		ID:        uuid.Must(uuid.NewV7()),
		PatientID: "P250830123",
		FirstName: "Jane",
		LastName:  "Doe",
	}
	svc := &mockPatientService{
		create: func(_ context.Context, req patient.CreatePatientRequest) (*repo.Patient, error) {
			if req.FirstName != "Jane" || req.DateOfBirth != "1990-04-12" {
				t.Errorf("unexpected request: %+v", req)
			}
			return want, nil
		},
	}
	app := newPatientApp(svc)

	resp, env := doRequest(t, app, jsonRequest(http.MethodPost, "/patients",
		`{"first_name":"Jane","last_name":"Doe","date_of_birth":"1990-04-12","gender":"female","phone":"+12025550123"}`))

	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("status = %d, want 201", resp.StatusCode)
	}
	var got struct {
		PatientID string `json:"patient_id"`
	}
	if err := json.Unmarshal(env.Data, &got); err != nil {
		t.Fatalf("decoding data: %v", err)
	}
	if got.PatientID != want.PatientID {
		t.Errorf("patient_id = %q, want %q", got.PatientID, want.PatientID)
	}
}

func TestPatientCreateMissingFields(t *testing.T) {
	app := newPatientApp(&mockPatientService{})

	resp, _ := doRequest(t, app, jsonRequest(http.MethodPost, "/patients",
		`{"first_name":"Jane"}`))

	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}

func TestPatientCreateInvalidDOB(t *testing.T) {
	svc := &mockPatientService{
		create: func(context.Context, patient.CreatePatientRequest) (*repo.Patient, error) {
			return nil, patient.ErrInvalidDateOfBirth
		},
	}
	app := newPatientApp(svc)

	resp, _ := doRequest(t, app, jsonRequest(http.MethodPost, "/patients",
		`{"first_name":"Jane","last_name":"Doe","date_of_birth":"not-a-date","gender":"female","phone":"+12025550123"}`))

	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}

func TestPatientList(t *testing.T) {
	svc := &mockPatientService{
		list: func(_ context.Context, req patient.ListPatientsRequest) (*paging.Result[*repo.Patient], error) {
			if req.Page != 2 || req.Limit != 5 {
				t.Errorf("page/limit = %d/%d, want 2/5", req.Page, req.Limit)
			}
			if req.Search == nil || *req.Search != "doe" {
				t.Errorf("search = %v, want doe", req.Search)
			}
			result := paging.NewResult(
				[]*repo.Patient{{ID: uuid.Must(uuid.NewV7()), PatientID: "P250830001"}},
				11, paging.Clamp(req.Page, req.Limit),
			)
			return &result, nil
		},
	}
	app := newPatientApp(svc)

	resp, env := doRequest(t, app,
		httptest.NewRequest(http.MethodGet, "/patients/list?page=2&limit=5&search=doe", nil))

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	var got struct {
		Total      int `json:"total"`
		TotalPages int `json:"totalPages"`
	}
	if err := json.Unmarshal(env.Data, &got); err != nil {
		t.Fatalf("decoding data: %v", err)
	}
	if got.Total != 11 || got.TotalPages != 3 {
		t.Errorf("total/totalPages = %d/%d, want 11/3", got.Total, got.TotalPages)
	}
}

func TestPatientGetNotFound(t *testing.T) {
	svc := &mockPatientService{
		getByID: func(context.Context, uuid.UUID) (*repo.Patient, error) {
			return nil, patient.ErrPatientNotFound
		},
	}
	app := newPatientApp(svc)

	resp, _ := doRequest(t, app,
		httptest.NewRequest(http.MethodGet, "/patients/"+uuid.Must(uuid.NewV7()).String(), nil))

	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want 404", resp.StatusCode)
	}
}

func TestPatientGetInvalidID(t *testing.T) {
	app := newPatientApp(&mockPatientService{})

	resp, _ := doRequest(t, app,
		httptest.NewRequest(http.MethodGet, "/patients/not-a-uuid", nil))

	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}

func TestPatientUpdateInvalidPhone(t *testing.T) {
	svc := &mockPatientService{
		update: func(context.Context, uuid.UUID, patient.UpdatePatientRequest) (*repo.Patient, error) {
			return nil, patient.ErrInvalidPhone
		},
	}
	app := newPatientApp(svc)

	resp, _ := doRequest(t, app, jsonRequest(http.MethodPatch,
		"/patients/"+uuid.Must(uuid.NewV7()).String(), `{"phone":"banana"}`))

	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}

func TestPatientDeactivate(t *testing.T) {
	id := uuid.Must(uuid.NewV7())
	var gotID uuid.UUID
	svc := &mockPatientService{
		deactivate: func(_ context.Context, id uuid.UUID) error {
			gotID = id
			return nil
		},
	}
	app := newPatientApp(svc)

	resp, _ := doRequest(t, app,
		httptest.NewRequest(http.MethodDelete, "/patients/"+id.String(), nil))

	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
	if gotID != id {
		t.Errorf("deactivated %s, want %s", gotID, id)
	}
}
