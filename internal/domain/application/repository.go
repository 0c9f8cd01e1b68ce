package application

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var (
	ErrNotFound  = errors.New("application not found")
	ErrDuplicate = errors.New("application already exists")
)

type Repository interface {
	// CreateApplication returns ErrDuplicate when the seeker already applied to the job.
	CreateApplication(ctx context.Context, a Application) error
	ExistsForJobAndSeeker(ctx context.Context, jobID, seekerID uuid.UUID) (bool, error)
	GetApplicationByID(ctx context.Context, id uuid.UUID) (Application, error)
	ListApplicationsBySeeker(ctx context.Context, seekerID uuid.UUID) ([]Application, error)
	ListApplicationsByCompany(ctx context.Context, companyID uuid.UUID) ([]Application, error)
	UpdateApplicationStatus(ctx context.Context, id uuid.UUID, status Status) error
}
