package repository

import (
	"context"

	"job-board/internal/database"
	"job-board/internal/database/postgres"
	"job-board/internal/domain/user"

	"github.com/google/uuid"
)

type PostgresProfileRepository struct {
	db database.DB
}

func NewPostgresProfileRepository(db database.DB) *PostgresProfileRepository {
	return &PostgresProfileRepository{db: db}
}

func (r *PostgresProfileRepository) GetSeekerProfileByUserID(ctx context.Context, userID uuid.UUID) (user.SeekerProfile, error) {
	var p user.SeekerProfile
	var level string
	err := r.db.QueryRow(ctx,
		`SELECT id, user_id, experience_level, resume_url, skills, education, projects, certifications, created_at, updated_at
		 FROM job_seeker_profiles WHERE user_id = $1`,
		userID,
	).Scan(&p.ID, &p.UserID, &level, &p.ResumeURL, &p.Skills, &p.Education, &p.Projects, &p.Certifications, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if postgres.IsNoRows(err) {
			return user.SeekerProfile{}, user.ErrProfileNotFound
		}
		return user.SeekerProfile{}, err
	}
	p.ExperienceLevel = user.ExperienceLevel(level)
	return p, nil
}

func (r *PostgresProfileRepository) GetEmployerProfileByUserID(ctx context.Context, userID uuid.UUID) (user.EmployerProfile, error) {
	var p user.EmployerProfile
	c := &p.Company
	err := r.db.QueryRow(ctx,
		`SELECT ep.id, ep.user_id, ep.company_id, ep.position, ep.created_at, ep.updated_at,
		        c.id, c.name, c.industry, c.size, c.verified, c.created_at
		 FROM employer_profiles ep JOIN companies c ON c.id = ep.company_id
		 WHERE ep.user_id = $1`,
		userID,
	).Scan(&p.ID, &p.UserID, &p.CompanyID, &p.Position, &p.CreatedAt, &p.UpdatedAt,
		&c.ID, &c.Name, &c.Industry, &c.Size, &c.Verified, &c.CreatedAt)
	if err != nil {
		if postgres.IsNoRows(err) {
			return user.EmployerProfile{}, user.ErrProfileNotFound
		}
		return user.EmployerProfile{}, err
	}
	return p, nil
}

func (r *PostgresProfileRepository) UpdateSeekerProfile(ctx context.Context, p user.SeekerProfile) error {
	n, err := r.db.Exec(ctx,
		`UPDATE job_seeker_profiles
		 SET experience_level = $2, resume_url = $3, skills = $4, education = $5, projects = $6, certifications = $7, updated_at = $8
		 WHERE id = $1`,
		p.ID, string(p.ExperienceLevel), p.ResumeURL, p.Skills, p.Education, p.Projects, p.Certifications, p.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if n == 0 {
		return user.ErrProfileNotFound
	}
	return nil
}

func (r *PostgresProfileRepository) UpdateEmployerProfile(ctx context.Context, p user.EmployerProfile) error {
	n, err := r.db.Exec(ctx,
		`UPDATE employer_profiles SET position = $2, updated_at = $3 WHERE id = $1`,
		p.ID, p.Position, p.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if n == 0 {
		return user.ErrProfileNotFound
	}
	return nil
}
