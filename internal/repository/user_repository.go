package repository

import (
	"context"
	"fmt"
	"strings"

	"job-board/internal/database"
	"job-board/internal/database/postgres"
	"job-board/internal/domain/user"

	"github.com/google/uuid"
)

const userColumns = `id, email, password_hash, role, profile_completed, created_at, updated_at`

type PostgresUserRepository struct {
	db database.DB
}

func NewPostgresUserRepository(db database.DB) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

func (r *PostgresUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	row := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`, email)
	if err := row.Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *PostgresUserRepository) GetUserByID(ctx context.Context, id uuid.UUID) (user.User, error) {
	u, err := scanUser(r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id))
	if postgres.IsNoRows(err) {
		return user.User{}, user.ErrNotFound
	}
	return u, err
}

func (r *PostgresUserRepository) GetUserByEmail(ctx context.Context, email string) (user.User, error) {
	u, err := scanUser(r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email))
	if postgres.IsNoRows(err) {
		return user.User{}, user.ErrNotFound
	}
	return u, err
}

func (r *PostgresUserRepository) CreateJobSeeker(ctx context.Context, u user.User, p user.SeekerProfile) error {
	return database.RunInTx(ctx, r.db, func(tx database.Tx) error {
		if err := insertUser(ctx, tx, u); err != nil {
			return err
		}
		_, err := tx.Exec(ctx,
			`INSERT INTO job_seeker_profiles (id, user_id, experience_level, resume_url, skills, education, projects, certifications, created_at, updated_at)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $9)`,
			p.ID, u.ID, string(p.ExperienceLevel), p.ResumeURL, p.Skills, p.Education, p.Projects, p.Certifications, p.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("insert seeker profile: %w", err)
		}
		return nil
	})
}

func (r *PostgresUserRepository) CreateEmployer(ctx context.Context, u user.User, companyName string, p user.EmployerProfile) (user.EmployerProfile, error) {
	companyName = strings.TrimSpace(companyName)
	err := database.RunInTx(ctx, r.db, func(tx database.Tx) error {
		if err := insertUser(ctx, tx, u); err != nil {
			return err
		}

		// Get-or-create by name; the unique constraint makes concurrent
		// registrations for the same company converge on one row.
		if _, err := tx.Exec(ctx,
			`INSERT INTO companies (id, name, created_at) VALUES ($1, $2, $3) ON CONFLICT (name) DO NOTHING`,
			uuid.New(), companyName, p.CreatedAt,
		); err != nil {
			return fmt.Errorf("insert company: %w", err)
		}
		c, err := scanCompany(tx.QueryRow(ctx,
			`SELECT id, name, industry, size, verified, created_at FROM companies WHERE name = $1`, companyName))
		if err != nil {
			return fmt.Errorf("load company: %w", err)
		}

		p.UserID = u.ID
		p.CompanyID = c.ID
		p.Company = c
		if _, err := tx.Exec(ctx,
			`INSERT INTO employer_profiles (id, user_id, company_id, position, created_at, updated_at)
			 VALUES ($1, $2, $3, $4, $5, $5)`,
			p.ID, p.UserID, p.CompanyID, p.Position, p.CreatedAt,
		); err != nil {
			return fmt.Errorf("insert employer profile: %w", err)
		}
		return nil
	})
	if err != nil {
		return user.EmployerProfile{}, err
	}
	p.UpdatedAt = p.CreatedAt
	return p, nil
}

func insertUser(ctx context.Context, q database.Querier, u user.User) error {
	_, err := q.Exec(ctx,
		`INSERT INTO users (id, email, password_hash, role, profile_completed, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $6)`,
		u.ID, u.Email, u.PasswordHash, string(u.Role), u.ProfileCompleted, u.CreatedAt,
	)
	if postgres.IsUniqueViolation(err, "users_email_key") {
		return user.ErrEmailTaken
	}
	if err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}
