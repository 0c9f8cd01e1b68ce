package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"job-board/internal/database"
	"job-board/internal/database/postgres"
	"job-board/internal/domain/job"

	"github.com/google/uuid"
)

type PostgresJobRepository struct {
	db database.DB
}

func NewPostgresJobRepository(db database.DB) *PostgresJobRepository {
	return &PostgresJobRepository{db: db}
}

func (r *PostgresJobRepository) CreateJob(ctx context.Context, j job.Job) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO jobs (id, company_id, posted_by, title, description, requirements, location, location_type,
		                   salary_min, salary_max, experience_required, job_type, is_active, posted_at,
		                   application_deadline, skills_required, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`,
		j.ID, j.CompanyID, j.PostedBy, j.Title, j.Description, j.Requirements, j.Location, string(j.LocationType),
		j.SalaryMin, j.SalaryMax, j.ExperienceRequired, string(j.JobType), j.IsActive, j.PostedAt,
		j.ApplicationDeadline, j.SkillsRequired, j.UpdatedAt,
	)
	return err
}

func (r *PostgresJobRepository) GetJobByID(ctx context.Context, id uuid.UUID) (job.Job, error) {
	var s jobScan
	err := r.db.QueryRow(ctx, `SELECT `+jobColumns+` `+jobFrom+` WHERE j.id = $1`, id).Scan(s.dest()...)
	if err != nil {
		if postgres.IsNoRows(err) {
			return job.Job{}, job.ErrNotFound
		}
		return job.Job{}, err
	}
	return s.result(), nil
}

func (r *PostgresJobRepository) UpdateJob(ctx context.Context, j job.Job) error {
	n, err := r.db.Exec(ctx,
		`UPDATE jobs
		 SET title = $2, description = $3, requirements = $4, location = $5, location_type = $6,
		     salary_min = $7, salary_max = $8, experience_required = $9, job_type = $10,
		     application_deadline = $11, skills_required = $12, updated_at = $13
		 WHERE id = $1`,
		j.ID, j.Title, j.Description, j.Requirements, j.Location, string(j.LocationType),
		j.SalaryMin, j.SalaryMax, j.ExperienceRequired, string(j.JobType),
		j.ApplicationDeadline, j.SkillsRequired, j.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if n == 0 {
		return job.ErrNotFound
	}
	return nil
}

func (r *PostgresJobRepository) SetJobActive(ctx context.Context, id uuid.UUID, active bool) error {
	n, err := r.db.Exec(ctx, `UPDATE jobs SET is_active = $2, updated_at = now() WHERE id = $1`, id, active)
	if err != nil {
		return err
	}
	if n == 0 {
		return job.ErrNotFound
	}
	return nil
}

func (r *PostgresJobRepository) ListActiveJobs(ctx context.Context, f job.ListFilter) ([]job.Job, error) {
	where := []string{"j.is_active = true"}
	args := make([]any, 0, 3+len(f.Skills))
	add := func(cond string, v any) {
		args = append(args, v)
		where = append(where, fmt.Sprintf(cond, len(args)))
	}

	if f.Location != "" {
		add("strpos(lower(j.location), lower($%d)) > 0", f.Location)
	}
	if f.JobType != "" {
		add("j.job_type = $%d", f.JobType)
	}
	if f.ExperienceLevel != "" {
		add("j.experience_required = $%d", f.ExperienceLevel)
	}
	for _, s := range f.Skills {
		add("strpos(lower(j.skills_required), lower($%d)) > 0", s)
	}

	rows, err := r.db.Query(ctx,
		`SELECT `+jobColumns+` `+jobFrom+`
		 WHERE `+strings.Join(where, " AND ")+`
		 ORDER BY j.posted_at DESC, j.id`,
		args...,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]job.Job, 0)
	for rows.Next() {
		var s jobScan
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

func (r *PostgresJobRepository) DeactivateExpired(ctx context.Context, day time.Time) (int64, error) {
	return r.db.Exec(ctx,
		`UPDATE jobs SET is_active = false, updated_at = now()
		 WHERE is_active = true AND application_deadline IS NOT NULL AND application_deadline < $1::date`,
		job.Day(day),
	)
}
