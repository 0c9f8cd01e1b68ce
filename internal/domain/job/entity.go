package job

import (
	"fmt"
	"strings"
	"time"

	"job-board/internal/domain/user"

	"github.com/google/uuid"
)

type LocationType string

const (
	LocationRemote LocationType = "remote"
	LocationOnsite LocationType = "onsite"
	LocationHybrid LocationType = "hybrid"
)

func ParseLocationType(s string) (LocationType, error) {
	switch LocationType(strings.TrimSpace(s)) {
	case LocationRemote:
		return LocationRemote, nil
	case LocationOnsite:
		return LocationOnsite, nil
	case LocationHybrid:
		return LocationHybrid, nil
	}
	return "", fmt.Errorf("unknown location type %q", s)
}

type Type string

const (
	TypeFullTime   Type = "full-time"
	TypePartTime   Type = "part-time"
	TypeInternship Type = "internship"
)

func ParseType(s string) (Type, error) {
	switch Type(strings.TrimSpace(s)) {
	case TypeFullTime:
		return TypeFullTime, nil
	case TypePartTime:
		return TypePartTime, nil
	case TypeInternship:
		return TypeInternship, nil
	}
	return "", fmt.Errorf("unknown job type %q", s)
}

const DeadlineLayout = "2006-01-02"

// Job is a posting owned by one company. PostedBy is the employer user that
// created it; only that user may modify or deactivate it.
type Job struct {
	ID                  uuid.UUID
	CompanyID           uuid.UUID
	Company             user.Company
	PostedBy            uuid.UUID
	Title               string
	Description         string
	Requirements        string
	Location            string
	LocationType        LocationType
	SalaryMin           *int
	SalaryMax           *int
	ExperienceRequired  string
	JobType             Type
	IsActive            bool
	PostedAt            time.Time
	ApplicationDeadline *time.Time
	SkillsRequired      string
	UpdatedAt           time.Time
}

// Patch carries the mutable fields of a job. Nil fields are left untouched.
type Patch struct {
	Title               *string
	Description         *string
	Requirements        *string
	Location            *string
	LocationType        *LocationType
	SalaryMin           *int
	SalaryMax           *int
	ExperienceRequired  *string
	JobType             *Type
	ApplicationDeadline *time.Time
	SkillsRequired      *string
}

func (j *Job) Apply(p Patch) {
	if p.Title != nil {
		j.Title = *p.Title
	}
	if p.Description != nil {
		j.Description = *p.Description
	}
	if p.Requirements != nil {
		j.Requirements = *p.Requirements
	}
	if p.Location != nil {
		j.Location = *p.Location
	}
	if p.LocationType != nil {
		j.LocationType = *p.LocationType
	}
	if p.SalaryMin != nil {
		v := *p.SalaryMin
		j.SalaryMin = &v
	}
	if p.SalaryMax != nil {
		v := *p.SalaryMax
		j.SalaryMax = &v
	}
	if p.ExperienceRequired != nil {
		j.ExperienceRequired = *p.ExperienceRequired
	}
	if p.JobType != nil {
		j.JobType = *p.JobType
	}
	if p.ApplicationDeadline != nil {
		d := *p.ApplicationDeadline
		j.ApplicationDeadline = &d
	}
	if p.SkillsRequired != nil {
		j.SkillsRequired = *p.SkillsRequired
	}
}

// ExpiredAt reports whether the deadline day lies strictly before the day of now.
func (j Job) ExpiredAt(now time.Time) bool {
	if j.ApplicationDeadline == nil {
		return false
	}
	return j.ApplicationDeadline.Before(Day(now))
}

// Day truncates t to midnight UTC of its calendar date.
func Day(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
