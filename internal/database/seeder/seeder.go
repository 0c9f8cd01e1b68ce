package seeder

import (
	"context"

	"job-board/internal/domain/job"
	"job-board/internal/domain/user"
)

// Store is what seeders write through. Both the Postgres repositories and the
// sqlite store satisfy it, so demo data does not depend on the driver.
type Store struct {
	Users user.Repository
	Jobs  job.Repository
}

type Seeder interface {
	Name() string
	Run(ctx context.Context, s Store) error
}
