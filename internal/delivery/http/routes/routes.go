package routes

import (
	"job-board/internal/delivery/http/handler"
	"job-board/internal/delivery/http/middleware"

	"github.com/gofiber/fiber/v3"
)

// Registry holds every HTTP entry point. Nil handlers are skipped.
type Registry struct {
	Health        *handler.HealthHandler
	Auth          *handler.AuthHandler
	Jobs          *handler.JobHandler
	Applications  *handler.ApplicationHandler
	Interviews    *handler.InterviewHandler
	Profiles      *handler.ProfileHandler
	Notifications fiber.Handler

	AuthMiddleware *middleware.AuthMiddleware
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil || r == nil {
		return
	}

	if r.Health != nil {
		r.Health.RegisterRoutes(app)
	}
	api := app.Group("/api")
	r.RegisterV1(api.Group("/v1"))
}
