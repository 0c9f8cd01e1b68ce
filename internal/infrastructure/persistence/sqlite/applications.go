package sqlite

import (
	"context"
	"errors"
	"time"

	"job-board/internal/domain/application"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func (s *Store) CreateApplication(ctx context.Context, a application.Application) error {
	m := applicationModel{
		ID:          a.ID,
		JobID:       a.JobID,
		SeekerID:    a.SeekerID,
		Status:      string(a.Status),
		AppliedDate: a.AppliedDate.UTC(),
		UpdatedAt:   a.AppliedDate.UTC(),
	}
	if err := s.db.WithContext(ctx).Omit(clause.Associations).Create(&m).Error; err != nil {
		if isUniqueViolation(err) {
			return application.ErrDuplicate
		}
		return err
	}
	return nil
}

func (s *Store) ExistsForJobAndSeeker(ctx context.Context, jobID, seekerID uuid.UUID) (bool, error) {
	var n int64
	err := s.db.WithContext(ctx).Model(&applicationModel{}).
		Where("job_id = ? AND seeker_id = ?", jobID, seekerID).
		Count(&n).Error
	return n > 0, err
}

func (s *Store) applications(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx).
		Preload("Job.Company").
		Preload("Seeker.User")
}

func (s *Store) GetApplicationByID(ctx context.Context, id uuid.UUID) (application.Application, error) {
	var m applicationModel
	if err := s.applications(ctx).Where("applications.id = ?", id).Take(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return application.Application{}, application.ErrNotFound
		}
		return application.Application{}, err
	}
	return m.toDomain(), nil
}

func (s *Store) ListApplicationsBySeeker(ctx context.Context, seekerID uuid.UUID) ([]application.Application, error) {
	return s.listApplications(s.applications(ctx).Where("applications.seeker_id = ?", seekerID))
}

func (s *Store) ListApplicationsByCompany(ctx context.Context, companyID uuid.UUID) ([]application.Application, error) {
	q := s.applications(ctx).
		Joins("JOIN jobs ON jobs.id = applications.job_id").
		Where("jobs.company_id = ?", companyID)
	return s.listApplications(q)
}

func (s *Store) listApplications(q *gorm.DB) ([]application.Application, error) {
	var rows []applicationModel
	if err := q.Order("applications.applied_date DESC").Order("applications.id").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]application.Application, 0, len(rows))
	for _, m := range rows {
		out = append(out, m.toDomain())
	}
	return out, nil
}

func (s *Store) UpdateApplicationStatus(ctx context.Context, id uuid.UUID, status application.Status) error {
	res := s.db.WithContext(ctx).Model(&applicationModel{}).Where("id = ?", id).Updates(map[string]any{
		"status":     string(status),
		"updated_at": time.Now().UTC(),
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return application.ErrNotFound
	}
	return nil
}
