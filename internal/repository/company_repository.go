package repository

import (
	"context"

	"job-board/internal/database"
	"job-board/internal/database/postgres"
	"job-board/internal/domain/user"

	"github.com/google/uuid"
)

type PostgresCompanyRepository struct {
	db database.DB
}

func NewPostgresCompanyRepository(db database.DB) *PostgresCompanyRepository {
	return &PostgresCompanyRepository{db: db}
}

func (r *PostgresCompanyRepository) ListCompanies(ctx context.Context) ([]user.Company, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, industry, size, verified, created_at FROM companies ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]user.Company, 0)
	for rows.Next() {
		c, err := scanCompany(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresCompanyRepository) GetCompanyByID(ctx context.Context, id uuid.UUID) (user.Company, error) {
	c, err := scanCompany(r.db.QueryRow(ctx, `SELECT id, name, industry, size, verified, created_at FROM companies WHERE id = $1`, id))
	if postgres.IsNoRows(err) {
		return user.Company{}, user.ErrCompanyNotFound
	}
	return c, err
}
