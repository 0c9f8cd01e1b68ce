package handler

import (
	"job-board/internal/delivery/http/dto"
	"job-board/internal/pkg/response"
	"job-board/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

const jobNotFound = "Job not found"

type JobHandler struct {
	uc usecase.JobUsecase
}

func NewJobHandler(uc usecase.JobUsecase) *JobHandler {
	return &JobHandler{uc: uc}
}

// RegisterRoutes mounts the public reads on r and the writes behind auth.
func (h *JobHandler) RegisterRoutes(r fiber.Router, auth fiber.Handler) {
	if r == nil {
		return
	}

	r.Get("/", h.List)
	r.Get("/:id", h.Get)
	r.Post("/", auth, h.Create)
	r.Put("/:id", auth, h.Update)
	r.Delete("/:id", auth, h.Deactivate)
}

func (h *JobHandler) List(c fiber.Ctx) error {
	items, err := h.uc.ListJobs(c.Context(), usecase.JobListParams{
		Location:        c.Query("location"),
		JobType:         c.Query("job_type"),
		ExperienceLevel: c.Query("experience_level"),
		Skills:          c.Query("skills"),
	})
	if err != nil {
		return mapUsecaseError(err, jobNotFound)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewJobResponses(items))
}

func (h *JobHandler) Get(c fiber.Ctx) error {
	id, err := pathID(c, jobNotFound)
	if err != nil {
		return err
	}
	j, err := h.uc.GetJob(c.Context(), id)
	if err != nil {
		return mapUsecaseError(err, jobNotFound)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewJobResponse(j))
}

func (h *JobHandler) Create(c fiber.Ctx) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}
	if err := h.uc.AuthorizeCreate(actor); err != nil {
		return mapUsecaseError(err, jobNotFound)
	}
	var in usecase.JobInput
	if err := bindBody(c, &in); err != nil {
		return err
	}

	j, err := h.uc.CreateJob(c.Context(), actor, in)
	if err != nil {
		return mapUsecaseError(err, jobNotFound)
	}
	return response.Created(c, "Job created", dto.NewJobResponse(j))
}

func (h *JobHandler) Update(c fiber.Ctx) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, jobNotFound)
	if err != nil {
		return err
	}
	if err := h.uc.AuthorizeUpdate(c.Context(), actor, id); err != nil {
		return mapUsecaseError(err, jobNotFound)
	}
	var in usecase.JobPatchInput
	if err := bindBody(c, &in); err != nil {
		return err
	}

	j, err := h.uc.UpdateJob(c.Context(), actor, id, in)
	if err != nil {
		return mapUsecaseError(err, jobNotFound)
	}
	return response.Success(c, fiber.StatusOK, "Job updated", dto.NewJobResponse(j))
}

func (h *JobHandler) Deactivate(c fiber.Ctx) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, jobNotFound)
	if err != nil {
		return err
	}

	if err := h.uc.DeactivateJob(c.Context(), actor, id); err != nil {
		return mapUsecaseError(err, jobNotFound)
	}
	return response.Success(c, fiber.StatusOK, "Job deactivated", nil)
}
