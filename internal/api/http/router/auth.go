package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/caretide/caretide_backend/internal/api/http/handler"
	"github.com/caretide/caretide_backend/internal/api/http/middleware"
	"github.com/caretide/caretide_backend/pkg/authorize"
)

func (r *Router) registerAuthRoutes(
	app fiber.Router,
	ah *handler.AuthHandler,
	authRequired fiber.Handler,
) {
	authGroup := app.Group("/auth")

	// Logout tears down the caller's own session, so the check runs in the
	// per-user domain rather than the system domain.
	ownSession := middleware.RequireSelfPermission(r.p.Auth, authorize.ResourceAuthSession, authorize.ActionDelete)

	authGroup.Post("/login", ah.Login)
	authGroup.Post("/refresh", ah.Refresh)
	authGroup.Post("/logout", authRequired, ownSession, ah.Logout)
}
