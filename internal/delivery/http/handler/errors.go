package handler

import (
	"errors"

	"job-board/internal/delivery/http/middleware"
	"job-board/internal/domain/access"
	"job-board/internal/pkg/response"
	"job-board/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

// mapUsecaseError translates the usecase taxonomy into HTTP errors.
// notFound is the message used for ErrNotFound.
func mapUsecaseError(err error, notFound string) error {
	if err == nil {
		return nil
	}

	var verr *usecase.ValidationError
	var denied *access.DeniedError
	switch {
	case errors.As(err, &verr):
		return middleware.NewAppError(fiber.StatusBadRequest, "Validation failed", fieldErrors(verr), err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	case errors.As(err, &denied):
		return middleware.NewAppError(fiber.StatusForbidden, denied.Reason, nil, err)
	case errors.Is(err, usecase.ErrForbidden):
		return middleware.NewAppError(fiber.StatusForbidden, response.MessageForbidden, nil, err)
	case errors.Is(err, usecase.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, notFound, nil, err)
	case errors.Is(err, usecase.ErrUnauthorized):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}

func fieldErrors(verr *usecase.ValidationError) map[string]string {
	out := make(map[string]string, len(verr.Fields))
	for k, v := range verr.Fields {
		out[k] = v.Error()
	}
	return out
}

func requireActor(c fiber.Ctx) (access.Actor, error) {
	a, ok := middleware.ActorFrom(c)
	if !ok {
		return access.Actor{}, middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}
	return a, nil
}

// pathID parses the :id parameter. A malformed id cannot name an existing
// record, so it is reported as not found.
func pathID(c fiber.Ctx, notFound string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return uuid.Nil, middleware.NewAppError(fiber.StatusNotFound, notFound, nil, err)
	}
	return id, nil
}

func bindBody(c fiber.Ctx, out any) error {
	if err := c.Bind().Body(out); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}
	return nil
}
