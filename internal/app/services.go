package app

import (
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/caretide/caretide_backend/config"
	"github.com/caretide/caretide_backend/internal/repo"
	"github.com/caretide/caretide_backend/internal/service/appointment"
	"github.com/caretide/caretide_backend/internal/service/auth"
	"github.com/caretide/caretide_backend/internal/service/encounter"
	"github.com/caretide/caretide_backend/internal/service/medication"
	"github.com/caretide/caretide_backend/internal/service/patient"
	"github.com/caretide/caretide_backend/internal/service/user"
	"github.com/caretide/caretide_backend/pkg/authorize"
	"github.com/caretide/caretide_backend/pkg/email"
	pasetotoken "github.com/caretide/caretide_backend/pkg/paseto"
)

// ServiceModule provides all application service dependencies.
var ServiceModule = fx.Module("services",
	fx.Provide(
		ProvideUserService,
		ProvideAuthService,
		ProvidePatientService,
		ProvideAppointmentService,
		ProvideEncounterService,
		ProvideMedicationService,
		ProvidePasetoManager,
	),
)

func ProvideUserService(client *repo.Client, emailClient *email.Client, authz authorize.IAuthorization, cfg *config.Config) user.Service {
	return user.New(client, emailClient, authz, cfg)
}

func ProvideAuthService(
	db *repo.Client,
	rdb *redis.Client,
	paseto *pasetotoken.Manager,
	cfg *config.Config,
) auth.Service {
	return auth.New(db, rdb, paseto, cfg)
}

func ProvidePatientService(db *repo.Client) patient.Service {
	return patient.New(db)
}

func ProvideAppointmentService(db *repo.Client) appointment.Service {
	return appointment.New(db)
}

func ProvideEncounterService(db *repo.Client) encounter.Service {
	return encounter.New(db)
}

func ProvideMedicationService(db *repo.Client) medication.Service {
	return medication.New(db)
}

func ProvidePasetoManager(cfg *config.Config) (*pasetotoken.Manager, error) {
	return pasetotoken.NewPasetoManager(cfg)
}
