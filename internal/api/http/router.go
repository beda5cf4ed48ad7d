package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/employee-portal/internal/api/http/handlers"
	"github.com/spec-kit/employee-portal/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Profiles       *handlers.ProfileHandler
	Leaves         *handlers.LeavesHandler
	Timesheets     *handlers.TimesheetsHandler
	Admin          *handlers.AdminHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	authGroup := app.Group("/auth")
	authGroup.Post("/register", cfg.Auth.Register)
	authGroup.Post("/login", cfg.Auth.Login)
	authGroup.Post("/logout", cfg.AuthMiddleware.Handle, cfg.Auth.Logout)

	protected := app.Group("", cfg.AuthMiddleware.Handle)
	protected.Get("/me", cfg.Profiles.Me)
	protected.Patch("/me", cfg.Profiles.UpdateMe)
	protected.Get("/dashboard/stats", cfg.Timesheets.DashboardStats)

	protected.Post("/leaves", cfg.Leaves.Submit)
	protected.Get("/leaves", cfg.Leaves.ListOwn)
	protected.Get("/leaves/stats", cfg.Leaves.Stats)

	protected.Put("/timesheets", cfg.Timesheets.Record)
	protected.Get("/timesheets", cfg.Timesheets.ListOwn)

	// Admin routes authenticate like any other; the role gate lives in the
	// services so a non-admin gets FORBIDDEN from a single authorization
	// lookup per call.
	admin := protected.Group("/admin")
	admin.Get("/overview", cfg.Admin.Overview)
	admin.Get("/employees", cfg.Admin.ListEmployees)
	admin.Get("/leaves", cfg.Admin.ListLeaves)
	admin.Post("/leaves/:id/decision", cfg.Admin.DecideLeave)
	admin.Get("/timesheets", cfg.Admin.ListTimesheets)
}
