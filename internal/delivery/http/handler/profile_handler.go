package handler

import (
	"job-board/internal/delivery/http/dto"
	"job-board/internal/pkg/response"
	"job-board/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

const companyNotFound = "Company not found"

type ProfileHandler struct {
	uc usecase.ProfileUsecase
}

func NewProfileHandler(uc usecase.ProfileUsecase) *ProfileHandler {
	return &ProfileHandler{uc: uc}
}

func (h *ProfileHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/", h.GetMe)
	r.Put("/seeker-profile", h.UpdateSeekerProfile)
	r.Put("/employer-profile", h.UpdateEmployerProfile)
}

func (h *ProfileHandler) RegisterCompanyRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/", h.ListCompanies)
	r.Get("/:id", h.GetCompany)
}

func (h *ProfileHandler) GetMe(c fiber.Ctx) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}
	me, err := h.uc.GetMe(c.Context(), actor)
	if err != nil {
		return mapUsecaseError(err, "User not found")
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewMeResponse(me))
}

func (h *ProfileHandler) UpdateSeekerProfile(c fiber.Ctx) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}
	if err := h.uc.AuthorizeSeekerUpdate(actor); err != nil {
		return mapUsecaseError(err, "Profile not found")
	}
	var in usecase.SeekerProfileInput
	if err := bindBody(c, &in); err != nil {
		return err
	}

	p, err := h.uc.UpdateSeekerProfile(c.Context(), actor, in)
	if err != nil {
		return mapUsecaseError(err, "Profile not found")
	}
	return response.Success(c, fiber.StatusOK, "Profile updated", dto.NewSeekerProfileResponse(p))
}

func (h *ProfileHandler) UpdateEmployerProfile(c fiber.Ctx) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}
	if err := h.uc.AuthorizeEmployerUpdate(actor); err != nil {
		return mapUsecaseError(err, "Profile not found")
	}
	var in usecase.EmployerProfileInput
	if err := bindBody(c, &in); err != nil {
		return err
	}

	p, err := h.uc.UpdateEmployerProfile(c.Context(), actor, in)
	if err != nil {
		return mapUsecaseError(err, "Profile not found")
	}
	return response.Success(c, fiber.StatusOK, "Profile updated", dto.NewEmployerProfileResponse(p))
}

func (h *ProfileHandler) ListCompanies(c fiber.Ctx) error {
	items, err := h.uc.ListCompanies(c.Context())
	if err != nil {
		return mapUsecaseError(err, companyNotFound)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewCompanyResponses(items))
}

func (h *ProfileHandler) GetCompany(c fiber.Ctx) error {
	id, err := pathID(c, companyNotFound)
	if err != nil {
		return err
	}
	co, err := h.uc.GetCompany(c.Context(), id)
	if err != nil {
		return mapUsecaseError(err, companyNotFound)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewCompanyResponse(co))
}
