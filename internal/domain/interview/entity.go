package interview

import (
	"context"
	"errors"
	"time"

	"job-board/internal/domain/application"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("interview not found")

// Interview is a scheduled interview for one application, set up by an
// employer of the hiring company. Application is populated on reads.
type Interview struct {
	ID            uuid.UUID
	ApplicationID uuid.UUID
	InterviewerID uuid.UUID
	Schedule      time.Time
	Feedback      string
	CreatedAt     time.Time
	Application   application.Application
}

type Repository interface {
	CreateInterview(ctx context.Context, iv Interview) error
	GetInterviewByID(ctx context.Context, id uuid.UUID) (Interview, error)
	ListInterviewsBySeeker(ctx context.Context, seekerID uuid.UUID) ([]Interview, error)
	ListInterviewsByCompany(ctx context.Context, companyID uuid.UUID) ([]Interview, error)
}
