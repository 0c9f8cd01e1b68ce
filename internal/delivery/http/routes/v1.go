package routes

import (
	"github.com/gofiber/fiber/v3"
)

// RegisterV1 mounts /api/v1. Authentication is attached per group so public
// reads under the same prefix stay open.
func (r *Registry) RegisterV1(v1 fiber.Router) {
	if v1 == nil {
		return
	}

	auth := r.AuthMiddleware.Middleware()

	if r.Auth != nil {
		r.Auth.RegisterRoutes(v1.Group("/auth"))
	}
	if r.Jobs != nil {
		r.Jobs.RegisterRoutes(v1.Group("/jobs"), auth)
	}
	if r.Applications != nil {
		r.Applications.RegisterRoutes(v1.Group("/applications", auth))
	}
	if r.Interviews != nil {
		r.Interviews.RegisterRoutes(v1.Group("/interviews", auth))
	}
	if r.Profiles != nil {
		r.Profiles.RegisterRoutes(v1.Group("/me", auth))
		r.Profiles.RegisterCompanyRoutes(v1.Group("/companies"))
	}
	if r.Notifications != nil {
		v1.Get("/ws", r.Notifications)
	}
}
