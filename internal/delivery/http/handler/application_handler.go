package handler

import (
	"errors"

	"job-board/internal/delivery/http/dto"
	"job-board/internal/delivery/http/middleware"
	"job-board/internal/pkg/response"
	"job-board/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

const applicationNotFound = "Application not found"

type ApplicationHandler struct {
	uc usecase.ApplicationUsecase
}

type createApplicationRequest struct {
	Job string `json:"job"`
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

func NewApplicationHandler(uc usecase.ApplicationUsecase) *ApplicationHandler {
	return &ApplicationHandler{uc: uc}
}

func (h *ApplicationHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Put("/:id/status", h.UpdateStatus)
}

func (h *ApplicationHandler) List(c fiber.Ctx) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}
	items, err := h.uc.ListApplications(c.Context(), actor)
	if err != nil {
		return mapUsecaseError(err, applicationNotFound)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewApplicationResponses(items))
}

func (h *ApplicationHandler) Create(c fiber.Ctx) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}
	if err := h.uc.AuthorizeCreate(actor); err != nil {
		return mapUsecaseError(err, applicationNotFound)
	}
	var req createApplicationRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	a, err := h.uc.CreateApplication(c.Context(), actor, req.Job)
	if err != nil {
		if errors.Is(err, usecase.ErrConflict) {
			return middleware.NewAppError(fiber.StatusBadRequest, "Already applied", nil, err)
		}
		return mapUsecaseError(err, applicationNotFound)
	}
	return response.Created(c, "Application submitted", dto.NewApplicationResponse(a))
}

func (h *ApplicationHandler) UpdateStatus(c fiber.Ctx) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, applicationNotFound)
	if err != nil {
		return err
	}
	if err := h.uc.AuthorizeStatusUpdate(c.Context(), actor, id); err != nil {
		return mapUsecaseError(err, applicationNotFound)
	}
	var req updateStatusRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	a, err := h.uc.UpdateApplicationStatus(c.Context(), actor, id, req.Status)
	if err != nil {
		return mapUsecaseError(err, applicationNotFound)
	}
	return response.Success(c, fiber.StatusOK, "Status updated", dto.NewApplicationResponse(a))
}
