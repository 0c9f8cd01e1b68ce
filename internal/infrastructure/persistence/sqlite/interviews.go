package sqlite

import (
	"context"
	"errors"

	"job-board/internal/domain/interview"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func (s *Store) CreateInterview(ctx context.Context, iv interview.Interview) error {
	m := interviewModel{
		ID:            iv.ID,
		ApplicationID: iv.ApplicationID,
		InterviewerID: iv.InterviewerID,
		Schedule:      iv.Schedule.UTC(),
		Feedback:      iv.Feedback,
		CreatedAt:     iv.CreatedAt,
	}
	return s.db.WithContext(ctx).Omit(clause.Associations).Create(&m).Error
}

func (s *Store) interviews(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx).
		Preload("Application.Job.Company").
		Preload("Application.Seeker.User")
}

func (s *Store) GetInterviewByID(ctx context.Context, id uuid.UUID) (interview.Interview, error) {
	var m interviewModel
	if err := s.interviews(ctx).Where("interviews.id = ?", id).Take(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return interview.Interview{}, interview.ErrNotFound
		}
		return interview.Interview{}, err
	}
	return m.toDomain(), nil
}

func (s *Store) ListInterviewsBySeeker(ctx context.Context, seekerID uuid.UUID) ([]interview.Interview, error) {
	q := s.interviews(ctx).
		Joins("JOIN applications ON applications.id = interviews.application_id").
		Where("applications.seeker_id = ?", seekerID)
	return s.listInterviews(q)
}

func (s *Store) ListInterviewsByCompany(ctx context.Context, companyID uuid.UUID) ([]interview.Interview, error) {
	q := s.interviews(ctx).
		Joins("JOIN applications ON applications.id = interviews.application_id").
		Joins("JOIN jobs ON jobs.id = applications.job_id").
		Where("jobs.company_id = ?", companyID)
	return s.listInterviews(q)
}

func (s *Store) listInterviews(q *gorm.DB) ([]interview.Interview, error) {
	var rows []interviewModel
	if err := q.Order("interviews.schedule ASC").Order("interviews.id").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]interview.Interview, 0, len(rows))
	for _, m := range rows {
		out = append(out, m.toDomain())
	}
	return out, nil
}
