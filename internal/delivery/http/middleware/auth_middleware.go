package middleware

import (
	"errors"
	"strings"

	"job-board/internal/domain/access"
	"job-board/internal/pkg/jwt"
	"job-board/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

const (
	CtxUserIDKey = "user_id"
	CtxActorKey  = "actor"
)

// AuthMiddleware accepts access tokens only and resolves the actor from the
// store on every request, so role and profiles are never taken from claims.
type AuthMiddleware struct {
	jwt    jwt.Service
	actors usecase.ActorResolver
}

func NewAuthMiddleware(jwtSvc jwt.Service, actors usecase.ActorResolver) *AuthMiddleware {
	return &AuthMiddleware{jwt: jwtSvc, actors: actors}
}

func (m *AuthMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		token, ok := BearerToken(c.Get("Authorization"))
		if !ok {
			return NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
		}

		claims, err := m.jwt.ValidateAccessToken(token)
		if err != nil {
			if errors.Is(err, jwt.ErrTokenExpired) {
				return NewAppError(fiber.StatusUnauthorized, "Token expired", nil, err)
			}
			return NewAppError(fiber.StatusUnauthorized, "Invalid token", nil, err)
		}

		actor, err := m.actors.Resolve(c.Context(), claims.UserID)
		if err != nil {
			if errors.Is(err, usecase.ErrUnauthorized) {
				return NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, err)
			}
			return NewAppError(fiber.StatusInternalServerError, "", nil, err)
		}

		c.Locals(CtxUserIDKey, claims.UserID)
		c.Locals(CtxActorKey, actor)

		return c.Next()
	}
}

// ActorFrom returns the actor stored by AuthMiddleware.
func ActorFrom(c fiber.Ctx) (access.Actor, bool) {
	a, ok := c.Locals(CtxActorKey).(access.Actor)
	return a, ok
}

func BearerToken(authHeader string) (string, bool) {
	authHeader = strings.TrimSpace(authHeader)
	if authHeader == "" {
		return "", false
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 {
		return "", false
	}
	if !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}

	token := strings.TrimSpace(parts[1])
	if token == "" {
		return "", false
	}

	return token, true
}
