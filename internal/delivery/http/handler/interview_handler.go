package handler

import (
	"job-board/internal/delivery/http/dto"
	"job-board/internal/pkg/response"
	"job-board/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type InterviewHandler struct {
	uc usecase.InterviewUsecase
}

func NewInterviewHandler(uc usecase.InterviewUsecase) *InterviewHandler {
	return &InterviewHandler{uc: uc}
}

func (h *InterviewHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/", h.List)
	r.Post("/", h.Create)
}

func (h *InterviewHandler) List(c fiber.Ctx) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}
	items, err := h.uc.ListInterviews(c.Context(), actor)
	if err != nil {
		return mapUsecaseError(err, "Interview not found")
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewInterviewResponses(items))
}

// Create ignores any interviewer in the body; InterviewInput has no such field.
func (h *InterviewHandler) Create(c fiber.Ctx) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}
	if err := h.uc.AuthorizeCreate(actor); err != nil {
		return mapUsecaseError(err, "Interview not found")
	}
	var in usecase.InterviewInput
	if err := bindBody(c, &in); err != nil {
		return err
	}

	iv, err := h.uc.CreateInterview(c.Context(), actor, in)
	if err != nil {
		return mapUsecaseError(err, "Interview not found")
	}
	return response.Created(c, "Interview scheduled", dto.NewInterviewResponse(iv))
}
