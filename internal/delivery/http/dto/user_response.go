package dto

import (
	"time"

	"job-board/internal/domain/user"
	"job-board/internal/usecase"

	"github.com/google/uuid"
)

type UserResponse struct {
	ID               uuid.UUID `json:"id"`
	Email            string    `json:"email"`
	Role             string    `json:"role"`
	ProfileCompleted bool      `json:"profile_completed"`
	CreatedAt        time.Time `json:"created_at"`
}

type CompanyResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Industry  string    `json:"industry"`
	Size      string    `json:"size"`
	Verified  bool      `json:"verified"`
	CreatedAt time.Time `json:"created_at"`
}

type SeekerProfileResponse struct {
	ID              uuid.UUID `json:"id"`
	ExperienceLevel string    `json:"experience_level"`
	ResumeURL       *string   `json:"resume_url"`
	Skills          string    `json:"skills"`
	Education       string    `json:"education"`
	Projects        string    `json:"projects"`
	Certifications  string    `json:"certifications"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type EmployerProfileResponse struct {
	ID        uuid.UUID       `json:"id"`
	Company   CompanyResponse `json:"company"`
	Position  string          `json:"position"`
	UpdatedAt time.Time       `json:"updated_at"`
}

type MeResponse struct {
	UserResponse
	SeekerProfile   *SeekerProfileResponse   `json:"seeker_profile,omitempty"`
	EmployerProfile *EmployerProfileResponse `json:"employer_profile,omitempty"`
}

type AuthResponse struct {
	User         UserResponse `json:"user"`
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
}

type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

func NewUserResponse(u user.User) UserResponse {
	return UserResponse{
		ID:               u.ID,
		Email:            u.Email,
		Role:             string(u.Role),
		ProfileCompleted: u.ProfileCompleted,
		CreatedAt:        u.CreatedAt,
	}
}

func NewCompanyResponse(c user.Company) CompanyResponse {
	return CompanyResponse{
		ID:        c.ID,
		Name:      c.Name,
		Industry:  c.Industry,
		Size:      c.Size,
		Verified:  c.Verified,
		CreatedAt: c.CreatedAt,
	}
}

func NewCompanyResponses(items []user.Company) []CompanyResponse {
	out := make([]CompanyResponse, 0, len(items))
	for _, c := range items {
		out = append(out, NewCompanyResponse(c))
	}
	return out
}

func NewSeekerProfileResponse(p user.SeekerProfile) SeekerProfileResponse {
	return SeekerProfileResponse{
		ID:              p.ID,
		ExperienceLevel: string(p.ExperienceLevel),
		ResumeURL:       p.ResumeURL,
		Skills:          p.Skills,
		Education:       p.Education,
		Projects:        p.Projects,
		Certifications:  p.Certifications,
		UpdatedAt:       p.UpdatedAt,
	}
}

func NewEmployerProfileResponse(p user.EmployerProfile) EmployerProfileResponse {
	return EmployerProfileResponse{
		ID:        p.ID,
		Company:   NewCompanyResponse(p.Company),
		Position:  p.Position,
		UpdatedAt: p.UpdatedAt,
	}
}

func NewMeResponse(me usecase.Me) MeResponse {
	out := MeResponse{UserResponse: NewUserResponse(me.User)}
	if me.Seeker != nil {
		p := NewSeekerProfileResponse(*me.Seeker)
		out.SeekerProfile = &p
	}
	if me.Employer != nil {
		p := NewEmployerProfileResponse(*me.Employer)
		out.EmployerProfile = &p
	}
	return out
}
