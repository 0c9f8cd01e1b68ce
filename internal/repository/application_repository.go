package repository

import (
	"context"

	"job-board/internal/database"
	"job-board/internal/database/postgres"
	"job-board/internal/domain/application"

	"github.com/google/uuid"
)

type PostgresApplicationRepository struct {
	db database.DB
}

func NewPostgresApplicationRepository(db database.DB) *PostgresApplicationRepository {
	return &PostgresApplicationRepository{db: db}
}

func (r *PostgresApplicationRepository) CreateApplication(ctx context.Context, a application.Application) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO applications (id, job_id, seeker_id, status, applied_date, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $5)`,
		a.ID, a.JobID, a.SeekerID, string(a.Status), a.AppliedDate,
	)
	if postgres.IsUniqueViolation(err, "applications_job_seeker_key") {
		return application.ErrDuplicate
	}
	return err
}

func (r *PostgresApplicationRepository) ExistsForJobAndSeeker(ctx context.Context, jobID, seekerID uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM applications WHERE job_id = $1 AND seeker_id = $2)`,
		jobID, seekerID,
	).Scan(&exists)
	return exists, err
}

func (r *PostgresApplicationRepository) GetApplicationByID(ctx context.Context, id uuid.UUID) (application.Application, error) {
	var s applicationScan
	err := r.db.QueryRow(ctx, `SELECT `+applicationColumns+` `+applicationFrom+` WHERE a.id = $1`, id).Scan(s.dest()...)
	if err != nil {
		if postgres.IsNoRows(err) {
			return application.Application{}, application.ErrNotFound
		}
		return application.Application{}, err
	}
	return s.result(), nil
}

func (r *PostgresApplicationRepository) ListApplicationsBySeeker(ctx context.Context, seekerID uuid.UUID) ([]application.Application, error) {
	return r.list(ctx, `WHERE a.seeker_id = $1`, seekerID)
}

func (r *PostgresApplicationRepository) ListApplicationsByCompany(ctx context.Context, companyID uuid.UUID) ([]application.Application, error) {
	return r.list(ctx, `WHERE j.company_id = $1`, companyID)
}

func (r *PostgresApplicationRepository) list(ctx context.Context, where string, arg any) ([]application.Application, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+applicationColumns+` `+applicationFrom+` `+where+` ORDER BY a.applied_date DESC, a.id`,
		arg,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]application.Application, 0)
	for rows.Next() {
		var s applicationScan
		if err := rows.Scan(s.dest()...); err != nil {
			return nil, err
		}
		out = append(out, s.result())
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresApplicationRepository) UpdateApplicationStatus(ctx context.Context, id uuid.UUID, status application.Status) error {
	n, err := r.db.Exec(ctx,
		`UPDATE applications SET status = $2, updated_at = now() WHERE id = $1`,
		id, string(status),
	)
	if err != nil {
		return err
	}
	if n == 0 {
		return application.ErrNotFound
	}
	return nil
}
