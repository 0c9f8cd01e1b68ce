package sqlite

import (
	"context"
	"errors"
	"strings"
	"time"

	"job-board/internal/domain/job"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func (s *Store) CreateJob(ctx context.Context, j job.Job) error {
	m := toJobModel(j)
	return s.db.WithContext(ctx).Omit(clause.Associations).Create(&m).Error
}

func (s *Store) GetJobByID(ctx context.Context, id uuid.UUID) (job.Job, error) {
	var m jobModel
	if err := s.db.WithContext(ctx).Preload("Company").Where("id = ?", id).Take(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return job.Job{}, job.ErrNotFound
		}
		return job.Job{}, err
	}
	return m.toDomain(), nil
}

func (s *Store) UpdateJob(ctx context.Context, j job.Job) error {
	m := toJobModel(j)
	res := s.db.WithContext(ctx).Model(&jobModel{}).Where("id = ?", j.ID).Updates(map[string]any{
		"title":                m.Title,
		"description":          m.Description,
		"requirements":         m.Requirements,
		"location":             m.Location,
		"location_type":        m.LocationType,
		"salary_min":           m.SalaryMin,
		"salary_max":           m.SalaryMax,
		"experience_required":  m.ExperienceRequired,
		"job_type":             m.JobType,
		"application_deadline": m.ApplicationDeadline,
		"skills_required":      m.SkillsRequired,
		"updated_at":           nowOr(j.UpdatedAt),
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return job.ErrNotFound
	}
	return nil
}

func (s *Store) SetJobActive(ctx context.Context, id uuid.UUID, active bool) error {
	res := s.db.WithContext(ctx).Model(&jobModel{}).Where("id = ?", id).Updates(map[string]any{
		"is_active":  active,
		"updated_at": time.Now().UTC(),
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return job.ErrNotFound
	}
	return nil
}

func (s *Store) ListActiveJobs(ctx context.Context, f job.ListFilter) ([]job.Job, error) {
	q := s.db.WithContext(ctx).Preload("Company").Where("is_active = ?", true)

	if f.Location != "" {
		q = q.Where("instr(lower(location), ?) > 0", strings.ToLower(f.Location))
	}
	if f.JobType != "" {
		q = q.Where("job_type = ?", f.JobType)
	}
	if f.ExperienceLevel != "" {
		q = q.Where("experience_required = ?", f.ExperienceLevel)
	}
	for _, skill := range f.Skills {
		q = q.Where("instr(lower(skills_required), ?) > 0", strings.ToLower(skill))
	}

	var rows []jobModel
	if err := q.Order("posted_at DESC").Order("id").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]job.Job, 0, len(rows))
	for _, m := range rows {
		out = append(out, m.toDomain())
	}
	return out, nil
}

func (s *Store) DeactivateExpired(ctx context.Context, day time.Time) (int64, error) {
	res := s.db.WithContext(ctx).Model(&jobModel{}).
		Where("is_active = ? AND application_deadline IS NOT NULL AND application_deadline < ?", true, job.Day(day)).
		Updates(map[string]any{
			"is_active":  false,
			"updated_at": time.Now().UTC(),
		})
	return res.RowsAffected, res.Error
}
