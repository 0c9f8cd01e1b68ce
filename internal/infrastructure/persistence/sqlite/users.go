package sqlite

import (
	"context"
	"errors"
	"strings"
	"time"

	"job-board/internal/domain/user"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func (s *Store) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var n int64
	if err := s.db.WithContext(ctx).Model(&userModel{}).Where("email = ?", email).Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *Store) GetUserByID(ctx context.Context, id uuid.UUID) (user.User, error) {
	return s.getUser(ctx, "id = ?", id)
}

func (s *Store) GetUserByEmail(ctx context.Context, email string) (user.User, error) {
	return s.getUser(ctx, "email = ?", email)
}

func (s *Store) getUser(ctx context.Context, cond string, arg any) (user.User, error) {
	var m userModel
	if err := s.db.WithContext(ctx).Where(cond, arg).Take(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return user.User{}, user.ErrNotFound
		}
		return user.User{}, err
	}
	return m.toDomain(), nil
}

func (s *Store) CreateJobSeeker(ctx context.Context, u user.User, p user.SeekerProfile) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := createUser(tx, u); err != nil {
			return err
		}
		m := seekerProfileModel{
			ID:              p.ID,
			UserID:          u.ID,
			ExperienceLevel: string(p.ExperienceLevel),
			ResumeURL:       p.ResumeURL,
			Skills:          p.Skills,
			Education:       p.Education,
			Projects:        p.Projects,
			Certifications:  p.Certifications,
			CreatedAt:       p.CreatedAt,
			UpdatedAt:       p.CreatedAt,
		}
		return tx.Omit(clause.Associations).Create(&m).Error
	})
}

func (s *Store) CreateEmployer(ctx context.Context, u user.User, companyName string, p user.EmployerProfile) (user.EmployerProfile, error) {
	companyName = strings.TrimSpace(companyName)
	var out user.EmployerProfile
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := createUser(tx, u); err != nil {
			return err
		}

		var c companyModel
		if err := tx.Where(companyModel{Name: companyName}).
			Attrs(companyModel{ID: uuid.New(), CreatedAt: p.CreatedAt}).
			FirstOrCreate(&c).Error; err != nil {
			return err
		}

		m := employerProfileModel{
			ID:        p.ID,
			UserID:    u.ID,
			CompanyID: c.ID,
			Position:  p.Position,
			CreatedAt: p.CreatedAt,
			UpdatedAt: p.CreatedAt,
		}
		if err := tx.Omit(clause.Associations).Create(&m).Error; err != nil {
			return err
		}
		m.Company = c
		out = m.toDomain()
		return nil
	})
	if err != nil {
		return user.EmployerProfile{}, err
	}
	return out, nil
}

func createUser(tx *gorm.DB, u user.User) error {
	m := userModel{
		ID:               u.ID,
		Email:            u.Email,
		PasswordHash:     u.PasswordHash,
		Role:             string(u.Role),
		ProfileCompleted: u.ProfileCompleted,
		CreatedAt:        u.CreatedAt,
		UpdatedAt:        u.CreatedAt,
	}
	if err := tx.Create(&m).Error; err != nil {
		if isUniqueViolation(err) {
			return user.ErrEmailTaken
		}
		return err
	}
	return nil
}

func (s *Store) GetSeekerProfileByUserID(ctx context.Context, userID uuid.UUID) (user.SeekerProfile, error) {
	var m seekerProfileModel
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Take(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return user.SeekerProfile{}, user.ErrProfileNotFound
		}
		return user.SeekerProfile{}, err
	}
	return m.toDomain(), nil
}

func (s *Store) GetEmployerProfileByUserID(ctx context.Context, userID uuid.UUID) (user.EmployerProfile, error) {
	var m employerProfileModel
	if err := s.db.WithContext(ctx).Preload("Company").Where("user_id = ?", userID).Take(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return user.EmployerProfile{}, user.ErrProfileNotFound
		}
		return user.EmployerProfile{}, err
	}
	return m.toDomain(), nil
}

func (s *Store) UpdateSeekerProfile(ctx context.Context, p user.SeekerProfile) error {
	res := s.db.WithContext(ctx).Model(&seekerProfileModel{}).Where("id = ?", p.ID).Updates(map[string]any{
		"experience_level": string(p.ExperienceLevel),
		"resume_url":       p.ResumeURL,
		"skills":           p.Skills,
		"education":        p.Education,
		"projects":         p.Projects,
		"certifications":   p.Certifications,
		"updated_at":       nowOr(p.UpdatedAt),
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return user.ErrProfileNotFound
	}
	return nil
}

func (s *Store) UpdateEmployerProfile(ctx context.Context, p user.EmployerProfile) error {
	res := s.db.WithContext(ctx).Model(&employerProfileModel{}).Where("id = ?", p.ID).Updates(map[string]any{
		"position":   p.Position,
		"updated_at": nowOr(p.UpdatedAt),
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return user.ErrProfileNotFound
	}
	return nil
}

func (s *Store) ListCompanies(ctx context.Context) ([]user.Company, error) {
	var rows []companyModel
	if err := s.db.WithContext(ctx).Order("name ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]user.Company, 0, len(rows))
	for _, m := range rows {
		out = append(out, m.toDomain())
	}
	return out, nil
}

func (s *Store) GetCompanyByID(ctx context.Context, id uuid.UUID) (user.Company, error) {
	var m companyModel
	if err := s.db.WithContext(ctx).Where("id = ?", id).Take(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return user.Company{}, user.ErrCompanyNotFound
		}
		return user.Company{}, err
	}
	return m.toDomain(), nil
}

func nowOr(t time.Time) time.Time {
	if t.IsZero() {
		return time.Now().UTC()
	}
	return t.UTC()
}
