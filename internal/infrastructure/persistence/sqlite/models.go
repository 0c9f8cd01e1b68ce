package sqlite

import (
	"time"

	"job-board/internal/domain/application"
	"job-board/internal/domain/interview"
	"job-board/internal/domain/job"
	"job-board/internal/domain/user"

	"github.com/google/uuid"
)

type userModel struct {
	ID               uuid.UUID `gorm:"type:text;primaryKey"`
	Email            string    `gorm:"not null;uniqueIndex"`
	PasswordHash     string    `gorm:"not null"`
	Role             string    `gorm:"not null"`
	ProfileCompleted bool      `gorm:"not null"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (userModel) TableName() string { return "users" }

type companyModel struct {
	ID        uuid.UUID `gorm:"type:text;primaryKey"`
	Name      string    `gorm:"not null;uniqueIndex"`
	Industry  string    `gorm:"not null"`
	Size      string    `gorm:"not null"`
	Verified  bool      `gorm:"not null"`
	CreatedAt time.Time
}

func (companyModel) TableName() string { return "companies" }

type seekerProfileModel struct {
	ID              uuid.UUID `gorm:"type:text;primaryKey"`
	UserID          uuid.UUID `gorm:"type:text;not null;uniqueIndex"`
	User            userModel
	ExperienceLevel string `gorm:"not null"`
	ResumeURL       *string
	Skills          string `gorm:"not null"`
	Education       string `gorm:"not null"`
	Projects        string `gorm:"not null"`
	Certifications  string `gorm:"not null"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (seekerProfileModel) TableName() string { return "job_seeker_profiles" }

type employerProfileModel struct {
	ID        uuid.UUID `gorm:"type:text;primaryKey"`
	UserID    uuid.UUID `gorm:"type:text;not null;uniqueIndex"`
	CompanyID uuid.UUID `gorm:"type:text;not null;index"`
	Company   companyModel
	Position  string `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (employerProfileModel) TableName() string { return "employer_profiles" }

type jobModel struct {
	ID                  uuid.UUID `gorm:"type:text;primaryKey"`
	CompanyID           uuid.UUID `gorm:"type:text;not null;index"`
	Company             companyModel
	PostedBy            uuid.UUID `gorm:"type:text;not null"`
	Title               string    `gorm:"not null"`
	Description         string    `gorm:"not null"`
	Requirements        string    `gorm:"not null"`
	Location            string    `gorm:"not null"`
	LocationType        string    `gorm:"not null"`
	SalaryMin           *int
	SalaryMax           *int
	ExperienceRequired  string    `gorm:"not null"`
	JobType             string    `gorm:"not null"`
	IsActive            bool      `gorm:"not null;index:idx_jobs_active_posted,priority:1"`
	PostedAt            time.Time `gorm:"not null;index:idx_jobs_active_posted,priority:2"`
	ApplicationDeadline *time.Time
	SkillsRequired      string `gorm:"not null"`
	UpdatedAt           time.Time
}

func (jobModel) TableName() string { return "jobs" }

type applicationModel struct {
	ID          uuid.UUID `gorm:"type:text;primaryKey"`
	JobID       uuid.UUID `gorm:"type:text;not null;uniqueIndex:idx_applications_job_seeker,priority:1"`
	Job         jobModel
	SeekerID    uuid.UUID `gorm:"type:text;not null;uniqueIndex:idx_applications_job_seeker,priority:2"`
	Seeker      seekerProfileModel
	Status      string    `gorm:"not null"`
	AppliedDate time.Time `gorm:"not null"`
	UpdatedAt   time.Time
}

func (applicationModel) TableName() string { return "applications" }

type interviewModel struct {
	ID            uuid.UUID `gorm:"type:text;primaryKey"`
	ApplicationID uuid.UUID `gorm:"type:text;not null;index"`
	Application   applicationModel
	InterviewerID uuid.UUID `gorm:"type:text;not null"`
	Schedule      time.Time `gorm:"not null"`
	Feedback      string    `gorm:"not null"`
	CreatedAt     time.Time
}

func (interviewModel) TableName() string { return "interviews" }

func allModels() []any {
	return []any{
		&userModel{}, &companyModel{}, &seekerProfileModel{}, &employerProfileModel{},
		&jobModel{}, &applicationModel{}, &interviewModel{},
	}
}

func (m userModel) toDomain() user.User {
	return user.User{
		ID:               m.ID,
		Email:            m.Email,
		PasswordHash:     m.PasswordHash,
		Role:             user.Role(m.Role),
		ProfileCompleted: m.ProfileCompleted,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

func (m companyModel) toDomain() user.Company {
	return user.Company{
		ID:        m.ID,
		Name:      m.Name,
		Industry:  m.Industry,
		Size:      m.Size,
		Verified:  m.Verified,
		CreatedAt: m.CreatedAt,
	}
}

func (m seekerProfileModel) toDomain() user.SeekerProfile {
	return user.SeekerProfile{
		ID:              m.ID,
		UserID:          m.UserID,
		ExperienceLevel: user.ExperienceLevel(m.ExperienceLevel),
		ResumeURL:       m.ResumeURL,
		Skills:          m.Skills,
		Education:       m.Education,
		Projects:        m.Projects,
		Certifications:  m.Certifications,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

func (m employerProfileModel) toDomain() user.EmployerProfile {
	return user.EmployerProfile{
		ID:        m.ID,
		UserID:    m.UserID,
		CompanyID: m.CompanyID,
		Company:   m.Company.toDomain(),
		Position:  m.Position,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func toJobModel(j job.Job) jobModel {
	m := jobModel{
		ID:                 j.ID,
		CompanyID:          j.CompanyID,
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
		PostedAt:           j.PostedAt.UTC(),
		SkillsRequired:     j.SkillsRequired,
		UpdatedAt:          j.UpdatedAt.UTC(),
	}
	if j.ApplicationDeadline != nil {
		d := job.Day(*j.ApplicationDeadline)
		m.ApplicationDeadline = &d
	}
	return m
}

func (m jobModel) toDomain() job.Job {
	return job.Job{
		ID:                  m.ID,
		CompanyID:           m.CompanyID,
		Company:             m.Company.toDomain(),
		PostedBy:            m.PostedBy,
		Title:               m.Title,
		Description:         m.Description,
		Requirements:        m.Requirements,
		Location:            m.Location,
		LocationType:        job.LocationType(m.LocationType),
		SalaryMin:           m.SalaryMin,
		SalaryMax:           m.SalaryMax,
		ExperienceRequired:  m.ExperienceRequired,
		JobType:             job.Type(m.JobType),
		IsActive:            m.IsActive,
		PostedAt:            m.PostedAt,
		ApplicationDeadline: m.ApplicationDeadline,
		SkillsRequired:      m.SkillsRequired,
		UpdatedAt:           m.UpdatedAt,
	}
}

func (m applicationModel) toDomain() application.Application {
	return application.Application{
		ID:           m.ID,
		JobID:        m.JobID,
		SeekerID:     m.SeekerID,
		Status:       application.Status(m.Status),
		AppliedDate:  m.AppliedDate,
		UpdatedAt:    m.UpdatedAt,
		Job:          m.Job.toDomain(),
		SeekerUserID: m.Seeker.UserID,
		SeekerEmail:  m.Seeker.User.Email,
	}
}

func (m interviewModel) toDomain() interview.Interview {
	return interview.Interview{
		ID:            m.ID,
		ApplicationID: m.ApplicationID,
		InterviewerID: m.InterviewerID,
		Schedule:      m.Schedule,
		Feedback:      m.Feedback,
		CreatedAt:     m.CreatedAt,
		Application:   m.Application.toDomain(),
	}
}
