package dto

import (
	"time"

	"job-board/internal/domain/application"
	"job-board/internal/domain/interview"
	"job-board/internal/domain/job"

	"github.com/google/uuid"
)

type JobResponse struct {
	ID                  uuid.UUID       `json:"id"`
	Company             CompanyResponse `json:"company"`
	PostedBy            uuid.UUID       `json:"posted_by"`
	Title               string          `json:"title"`
	Description         string          `json:"description"`
	Requirements        string          `json:"requirements"`
	Location            string          `json:"location"`
	LocationType        string          `json:"location_type"`
	SalaryMin           *int            `json:"salary_min"`
	SalaryMax           *int            `json:"salary_max"`
	ExperienceRequired  string          `json:"experience_required"`
	JobType             string          `json:"job_type"`
	IsActive            bool            `json:"is_active"`
	PostedAt            time.Time       `json:"posted_at"`
	ApplicationDeadline *string         `json:"application_deadline"`
	Expired             bool            `json:"expired"`
	SkillsRequired      string          `json:"skills_required"`
}

type ApplicationResponse struct {
	ID          uuid.UUID   `json:"id"`
	Job         JobResponse `json:"job"`
	SeekerID    uuid.UUID   `json:"seeker_id"`
	SeekerEmail string      `json:"seeker_email"`
	Status      string      `json:"status"`
	AppliedDate time.Time   `json:"applied_date"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

type InterviewResponse struct {
	ID            uuid.UUID           `json:"id"`
	Application   ApplicationResponse `json:"application"`
	InterviewerID uuid.UUID           `json:"interviewer_id"`
	Schedule      time.Time           `json:"schedule"`
	Feedback      string              `json:"feedback"`
	CreatedAt     time.Time           `json:"created_at"`
}

func NewJobResponse(j job.Job) JobResponse {
	out := JobResponse{
		ID:                 j.ID,
		Company:            NewCompanyResponse(j.Company),
		PostedBy:           j.PostedBy,
		Title:              j.Title,
		Description:        j.Description,
		Requirements:       j.Requirements,
		Location:           j.Location,
		LocationType:       string(j.LocationType),
		SalaryMin:          j.SalaryMin,
		SalaryMax:          j.SalaryMax,
		ExperienceRequired: j.ExperienceRequired,
		JobType:            string(j.JobType),
		IsActive:           j.IsActive,
		PostedAt:           j.PostedAt,
		SkillsRequired:     j.SkillsRequired,
		Expired:            j.ExpiredAt(time.Now()),
	}
	if j.ApplicationDeadline != nil {
		d := j.ApplicationDeadline.Format(job.DeadlineLayout)
		out.ApplicationDeadline = &d
	}
	return out
}

func NewJobResponses(items []job.Job) []JobResponse {
	out := make([]JobResponse, 0, len(items))
	for _, j := range items {
		out = append(out, NewJobResponse(j))
	}
	return out
}

func NewApplicationResponse(a application.Application) ApplicationResponse {
	return ApplicationResponse{
		ID:          a.ID,
		Job:         NewJobResponse(a.Job),
		SeekerID:    a.SeekerID,
		SeekerEmail: a.SeekerEmail,
		Status:      string(a.Status),
		AppliedDate: a.AppliedDate,
		UpdatedAt:   a.UpdatedAt,
	}
}

func NewApplicationResponses(items []application.Application) []ApplicationResponse {
	out := make([]ApplicationResponse, 0, len(items))
	for _, a := range items {
		out = append(out, NewApplicationResponse(a))
	}
	return out
}

func NewInterviewResponse(iv interview.Interview) InterviewResponse {
	return InterviewResponse{
		ID:            iv.ID,
		Application:   NewApplicationResponse(iv.Application),
		InterviewerID: iv.InterviewerID,
		Schedule:      iv.Schedule,
		Feedback:      iv.Feedback,
		CreatedAt:     iv.CreatedAt,
	}
}

func NewInterviewResponses(items []interview.Interview) []InterviewResponse {
	out := make([]InterviewResponse, 0, len(items))
	for _, iv := range items {
		out = append(out, NewInterviewResponse(iv))
	}
	return out
}
