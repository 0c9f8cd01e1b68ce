package repository

import (
	"context"

	"job-board/internal/database"
	"job-board/internal/database/postgres"
	"job-board/internal/domain/interview"

	"github.com/google/uuid"
)

type PostgresInterviewRepository struct {
	db database.DB
}

func NewPostgresInterviewRepository(db database.DB) *PostgresInterviewRepository {
	return &PostgresInterviewRepository{db: db}
}

func (r *PostgresInterviewRepository) CreateInterview(ctx context.Context, iv interview.Interview) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO interviews (id, application_id, interviewer_id, schedule, feedback, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		iv.ID, iv.ApplicationID, iv.InterviewerID, iv.Schedule, iv.Feedback, iv.CreatedAt,
	)
	return err
}

func (r *PostgresInterviewRepository) GetInterviewByID(ctx context.Context, id uuid.UUID) (interview.Interview, error) {
	var s interviewScan
	err := r.db.QueryRow(ctx, `SELECT `+interviewColumns+` `+interviewFrom+` WHERE iv.id = $1`, id).Scan(s.dest()...)
	if err != nil {
		if postgres.IsNoRows(err) {
			return interview.Interview{}, interview.ErrNotFound
		}
		return interview.Interview{}, err
	}
	return s.result(), nil
}

func (r *PostgresInterviewRepository) ListInterviewsBySeeker(ctx context.Context, seekerID uuid.UUID) ([]interview.Interview, error) {
	return r.list(ctx, `WHERE a.seeker_id = $1`, seekerID)
}

func (r *PostgresInterviewRepository) ListInterviewsByCompany(ctx context.Context, companyID uuid.UUID) ([]interview.Interview, error) {
	return r.list(ctx, `WHERE j.company_id = $1`, companyID)
}

func (r *PostgresInterviewRepository) list(ctx context.Context, where string, arg any) ([]interview.Interview, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+interviewColumns+` `+interviewFrom+` `+where+` ORDER BY iv.schedule ASC, iv.id`,
		arg,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]interview.Interview, 0)
	for rows.Next() {
		var s interviewScan
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
