package application

import (
	"fmt"
	"time"

	"job-board/internal/domain/job"

	"github.com/google/uuid"
)

type Status string

const (
	StatusApplied     Status = "applied"
	StatusShortlisted Status = "shortlisted"
	StatusRejected    Status = "rejected"
	StatusHired       Status = "hired"
)

func Statuses() []Status {
	return []Status{StatusApplied, StatusShortlisted, StatusRejected, StatusHired}
}

func ParseStatus(s string) (Status, error) {
	v := Status(s)
	for _, st := range Statuses() {
		if v == st {
			return st, nil
		}
	}
	return "", fmt.Errorf("unknown application status %q", s)
}

// Application is a seeker's application to a job. At most one exists per
// (JobID, SeekerID). Job, SeekerUserID and SeekerEmail are populated on reads.
type Application struct {
	ID           uuid.UUID
	JobID        uuid.UUID
	SeekerID     uuid.UUID
	Status       Status
	AppliedDate  time.Time
	UpdatedAt    time.Time
	Job          job.Job
	SeekerUserID uuid.UUID
	SeekerEmail  string
}
