package http

import (
	"time"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/fx"

	"github.com/caretide/caretide_backend/config"
	"github.com/caretide/caretide_backend/internal/api/http/router"
	"github.com/caretide/caretide_backend/internal/app"
)

// Start assembles the fx graph and blocks until shutdown. Invoking *fiber.App
// is what instantiates the server and fires its OnStart hook.
func Start(cfg *config.Config, timeout time.Duration) {
	fx.New(
		fx.Supply(cfg),
		app.InfraModule,
		app.ServiceModule,
		router.Module,
		Module,

		fx.Invoke(func(*fiber.App) {}),

		fx.StopTimeout(timeout),
	).Run()
}
