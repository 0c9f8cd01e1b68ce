package app

import (
	"context"
	"fmt"
	"log"

	"job-board/internal/config"
	"job-board/internal/database/migration"
	dbpostgres "job-board/internal/database/postgres"
	"job-board/internal/database/seeder"
	"job-board/internal/domain/application"
	"job-board/internal/domain/interview"
	"job-board/internal/domain/job"
	"job-board/internal/domain/user"
	"job-board/internal/infrastructure/persistence/sqlite"
	"job-board/internal/repository"
	"job-board/migrations"
)

// Store bundles the repositories of the configured driver.
type Store struct {
	Driver       string
	Users        user.Repository
	Profiles     user.ProfileRepository
	Companies    user.CompanyRepository
	Jobs         job.Repository
	Applications application.Repository
	Interviews   interview.Repository

	ping  func(ctx context.Context) error
	close func() error
}

func (s *Store) Ping(ctx context.Context) error {
	return s.ping(ctx)
}

func (s *Store) Close() error {
	if s == nil || s.close == nil {
		return nil
	}
	return s.close()
}

// OpenStore connects the configured backend and brings its schema up to
// date. Postgres applies the versioned migrations; sqlite auto-migrates.
func OpenStore(ctx context.Context, cfg config.DatabaseConfig, logger *log.Logger) (*Store, error) {
	switch cfg.Driver {
	case config.StoreDriverPostgres:
		db, err := dbpostgres.Connect(ctx, cfg)
		if err != nil {
			return nil, err
		}
		runner := migration.Runner{Dir: cfg.MigrationsDir, FS: migrations.FS, Logger: logger}
		if err := runner.Run(ctx, db.SQLDB()); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("migrate: %w", err)
		}
		return &Store{
			Driver:       cfg.Driver,
			Users:        repository.NewPostgresUserRepository(db),
			Profiles:     repository.NewPostgresProfileRepository(db),
			Companies:    repository.NewPostgresCompanyRepository(db),
			Jobs:         repository.NewPostgresJobRepository(db),
			Applications: repository.NewPostgresApplicationRepository(db),
			Interviews:   repository.NewPostgresInterviewRepository(db),
			ping:         db.Ping,
			close:        db.Close,
		}, nil

	case config.StoreDriverSQLite:
		st, err := sqlite.NewStore(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		return &Store{
			Driver:       cfg.Driver,
			Users:        st,
			Profiles:     st,
			Companies:    st,
			Jobs:         st,
			Applications: st,
			Interviews:   st,
			ping:         st.Ping,
			close:        st.Close,
		}, nil
	}
	return nil, fmt.Errorf("unsupported store driver %q", cfg.Driver)
}

// Seed loads the demo accounts and jobs. Existing accounts are kept.
func (s *Store) Seed(ctx context.Context, logger *log.Logger) error {
	r := seeder.Runner{Seeders: seeder.Defaults(), Logger: logger}
	return r.Run(ctx, seeder.Store{Users: s.Users, Jobs: s.Jobs})
}
