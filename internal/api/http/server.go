package http

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/gofiber/fiber/v3/middleware/helmet"
	"github.com/gofiber/fiber/v3/middleware/logger"
	recoverer "github.com/gofiber/fiber/v3/middleware/recover"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/caretide/caretide_backend/config"
	"github.com/caretide/caretide_backend/internal/api/http/middleware"
	"github.com/caretide/caretide_backend/internal/api/http/router"
	"github.com/caretide/caretide_backend/pkg/observability"
)

// Module provides the HTTP server to the fx graph.
var Module = fx.Module("http", fx.Provide(NewServer))

type Params struct {
	fx.In

	Lifecycle fx.Lifecycle
	Cfg       *config.Config
	Redis     *redis.Client
	Router    *router.Router
	OTel      *observability.Provider `optional:"true"`
}

// NewServer assembles the Fiber app with its middleware chain and binds its
// lifetime to the fx lifecycle.
func NewServer(p Params) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:     p.Cfg.Observability.ServiceName,
		ReadTimeout: time.Duration(p.Cfg.Server.TimeoutSeconds) * time.Second,
	})

	// Tracing runs outermost so every later middleware is inside the span.
	if p.OTel != nil && p.Cfg.Observability.Tracing.Enabled {
		app.Use(observability.FiberMiddleware(p.Cfg.Observability.ServiceName))
	}

	registerGlobalMiddleware(app, p.Cfg, p.Redis)
	p.Router.Register(app)

	p.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			addr := fmt.Sprintf(":%d", p.Cfg.Server.Port)
			go func() {
				if err := app.Listen(addr); err != nil {
					slog.Error("HTTP server error", "error", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return app.ShutdownWithContext(ctx)
		},
	})

	return app
}

func registerGlobalMiddleware(app *fiber.App, cfg *config.Config, rdb *redis.Client) {
	app.Use(middleware.RequestID())
	app.Use(recoverer.New())

	if cfg.Server.Environment == "production" {
		app.Use(helmet.New())
		if cfg.Server.CORS.Enabled {
			app.Use(cors.New(corsConfig(cfg.Server.CORS)))
		}
		app.Use(middleware.NewLimiterWithRedis(rdb))
	}

	app.Use(logger.New(logger.Config{
		Format: "${ip} - [${time}] [req_id=${requestId}] ${method} ${url} ${status}\n",
	}))
}

func corsConfig(c config.CORSConfig) cors.Config {
	out := cors.Config{
		AllowOrigins:     c.AllowOrigins,
		AllowCredentials: c.AllowCredentials,
	}
	if len(c.AllowMethods) > 0 {
		out.AllowMethods = c.AllowMethods
	}
	if len(c.AllowHeaders) > 0 {
		out.AllowHeaders = c.AllowHeaders
	}
	if len(c.ExposeHeaders) > 0 {
		out.ExposeHeaders = c.ExposeHeaders
	}
	if c.MaxAgeSeconds > 0 {
		out.MaxAge = c.MaxAgeSeconds
	}
	return out
}
