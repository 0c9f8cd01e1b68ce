package job

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("job not found")

type Repository interface {
	CreateJob(ctx context.Context, j Job) error
	GetJobByID(ctx context.Context, id uuid.UUID) (Job, error)
	// UpdateJob persists the mutable fields of j.
	UpdateJob(ctx context.Context, j Job) error
	SetJobActive(ctx context.Context, id uuid.UUID, active bool) error
	// ListActiveJobs returns active jobs matching f, newest first.
	ListActiveJobs(ctx context.Context, f ListFilter) ([]Job, error)
	// DeactivateExpired deactivates active jobs whose deadline is before day.
	DeactivateExpired(ctx context.Context, day time.Time) (int64, error)
}
