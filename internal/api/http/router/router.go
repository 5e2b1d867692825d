package router

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gofiber/fiber/v3/middleware/healthcheck"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/caretide/caretide_backend/config"
	"github.com/caretide/caretide_backend/internal/api/http/handler"
	"github.com/caretide/caretide_backend/internal/api/http/middleware"
	"github.com/caretide/caretide_backend/internal/service/appointment"
	"github.com/caretide/caretide_backend/internal/service/auth"
	"github.com/caretide/caretide_backend/internal/service/encounter"
	"github.com/caretide/caretide_backend/internal/service/medication"
	"github.com/caretide/caretide_backend/internal/service/patient"
	"github.com/caretide/caretide_backend/internal/service/user"
	"github.com/caretide/caretide_backend/pkg/authorize"
	pasetotoken "github.com/caretide/caretide_backend/pkg/paseto"
)

// Module provides the Router to the fx graph.
var Module = fx.Module("router", fx.Provide(NewRouter))

type Params struct {
	fx.In

	Cfg            *config.Config
	Redis          *redis.Client
	Auth           authorize.IAuthorization
	UserSvc        user.Service
	AuthSvc        auth.Service
	PatientSvc     patient.Service
	AppointmentSvc appointment.Service
	EncounterSvc   encounter.Service
	MedicationSvc  medication.Service
	PasetoMgr      *pasetotoken.Manager
}

type Router struct {
	p Params
}

func NewRouter(p Params) *Router {
	return &Router{p: p}
}

func (r *Router) Register(app *fiber.App) {
	r.registerSystemRoutes(app)

	authRequired := middleware.AuthRequired(r.p.PasetoMgr, r.p.Redis)
	requirePerm := func(res authorize.Resource, act authorize.Action) fiber.Handler {
		return middleware.RequirePermission(r.p.Auth, res, act)
	}

	authH := handler.NewAuthHandler(r.p.AuthSvc)
	userH := handler.NewUserHandler(r.p.UserSvc)
	patientH := handler.NewPatientHandler(r.p.PatientSvc)
	appointmentH := handler.NewAppointmentHandler(r.p.AppointmentSvc)
	encounterH := handler.NewEncounterHandler(r.p.EncounterSvc)
	medicationH := handler.NewMedicationHandler(r.p.MedicationSvc)

	r.registerAuthRoutes(app, authH, authRequired)
	r.registerUserRoutes(app, userH, authRequired, requirePerm)
	r.registerPatientRoutes(app, patientH, authRequired, requirePerm)
	r.registerAppointmentRoutes(app, appointmentH, authRequired, requirePerm)
	r.registerEncounterRoutes(app, encounterH, authRequired, requirePerm)
	r.registerMedicationRoutes(app, medicationH, authRequired, requirePerm)
}

func (r *Router) registerSystemRoutes(app *fiber.App) {
	app.Get(healthcheck.LivenessEndpoint, healthcheck.New())
	if r.p.Cfg.Authorization.HealthCheckEnabled {
		app.Get(healthcheck.ReadinessEndpoint, healthcheck.New(healthcheck.Config{
			Probe: func(c fiber.Ctx) bool { return authorize.IsPolicyHealthy() },
		}))
	} else {
		app.Get(healthcheck.ReadinessEndpoint, healthcheck.New())
	}
	app.Get(healthcheck.StartupEndpoint, healthcheck.New())

	if r.p.Cfg.Observability.Enabled && r.p.Cfg.Observability.Metrics.Enabled {
		path := r.p.Cfg.Observability.Metrics.Path
		if path == "" {
			path = "/metrics"
		}
		app.Get(path, adaptor.HTTPHandler(promhttp.Handler()))
	}
}
