package user

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleJobSeeker Role = "job_seeker"
	RoleEmployer  Role = "employer"
)

func ParseRole(s string) (Role, error) {
	switch Role(strings.TrimSpace(s)) {
	case RoleJobSeeker:
		return RoleJobSeeker, nil
	case RoleEmployer:
		return RoleEmployer, nil
	}
	return "", fmt.Errorf("unknown role %q", s)
}

type ExperienceLevel string

const (
	ExperienceFresher     ExperienceLevel = "fresher"
	ExperienceExperienced ExperienceLevel = "experienced"
)

func ParseExperienceLevel(s string) (ExperienceLevel, error) {
	switch ExperienceLevel(strings.TrimSpace(s)) {
	case ExperienceFresher:
		return ExperienceFresher, nil
	case ExperienceExperienced:
		return ExperienceExperienced, nil
	}
	return "", fmt.Errorf("unknown experience level %q", s)
}

// User is an account. Role is fixed at registration.
type User struct {
	ID               uuid.UUID
	Email            string
	PasswordHash     string
	Role             Role
	ProfileCompleted bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

type Company struct {
	ID        uuid.UUID
	Name      string
	Industry  string
	Size      string
	Verified  bool
	CreatedAt time.Time
}

type SeekerProfile struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	ExperienceLevel ExperienceLevel
	ResumeURL       *string
	Skills          string
	Education       string
	Projects        string
	Certifications  string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// EmployerProfile links a user to exactly one company. Company is populated on reads.
type EmployerProfile struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	CompanyID uuid.UUID
	Company   Company
	Position  string
	CreatedAt time.Time
	UpdatedAt time.Time
}
