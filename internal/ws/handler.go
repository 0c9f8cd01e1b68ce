package ws

import (
	"log"
	"net/http"
	"strings"

	"job-board/internal/domain/event"
	"job-board/internal/pkg/jwt"
	"job-board/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gorilla/websocket"
)

type Handler struct {
	hub    *Hub
	jwt    jwt.Service
	actors usecase.ActorResolver
	logger *log.Logger
}

func NewHandler(hub *Hub, jwtSvc jwt.Service, actors usecase.ActorResolver, logger *log.Logger) *Handler {
	return &Handler{hub: hub, jwt: jwtSvc, actors: actors, logger: logger}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// HandleNotifications authenticates with the access token in the "token"
// query parameter (browsers cannot set headers on websocket requests) or
// the Authorization header, then subscribes the connection to the user's
// topic and, for employers, to the company topic.
func (h *Handler) HandleNotifications(c fiber.Ctx) error {
	if h == nil || h.hub == nil {
		return fiber.ErrServiceUnavailable
	}

	token := strings.TrimSpace(c.Query("token"))
	if token == "" {
		if parts := strings.SplitN(c.Get("Authorization"), " ", 2); len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			token = strings.TrimSpace(parts[1])
		}
	}
	if token == "" {
		return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
	}

	claims, err := h.jwt.ValidateAccessToken(token)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "Invalid token")
	}
	actor, err := h.actors.Resolve(c.Context(), claims.UserID)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
	}

	topics := []string{event.UserTopic(actor.UserID)}
	if companyID, ok := actor.CompanyID(); ok {
		topics = append(topics, event.CompanyTopic(companyID))
	}

	fiberHandler := adaptor.HTTPHandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			if h.logger != nil {
				h.logger.Printf("[WS] upgrade error user_id=%s err=%v", actor.UserID, err)
			}
			return
		}

		client := NewClient(h.hub, conn, topics)
		h.hub.Register(client)
		go client.WritePump()
		go client.ReadPump()
	})

	return fiberHandler(c)
}
