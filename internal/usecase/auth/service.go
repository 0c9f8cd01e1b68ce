package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"job-board/internal/domain/user"
)

var (
	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrInvalidInput           = errors.New("invalid input")
	ErrInternal               = errors.New("internal error")
)

// RegisterInput is role conditioned: Experience is used for job seekers,
// Company and Position for employers.
type RegisterInput struct {
	Email      string `json:"email"`
	Password   string `json:"password"`
	Role       string `json:"role"`
	Experience string `json:"experience"`
	Company    string `json:"company"`
	Position   string `json:"position"`
}

type LoginInput struct {
	Email    string
	Password string
}

type Service struct {
	users user.Repository
	now   func() time.Time
}

func NewService(users user.Repository) *Service {
	return &Service{users: users, now: time.Now}
}

func (s *Service) Register(ctx context.Context, in RegisterInput) (user.User, error) {
	email := normalizeEmail(in.Email)
	if email == "" {
		return user.User{}, ErrInvalidInput
	}
	if !isValidPassword(in.Password) {
		return user.User{}, ErrInvalidInput
	}
	role, err := user.ParseRole(in.Role)
	if err != nil {
		return user.User{}, ErrInvalidInput
	}

	exists, err := s.users.ExistsByEmail(ctx, email)
	if err != nil {
		return user.User{}, ErrInternal
	}
	if exists {
		return user.User{}, ErrEmailAlreadyRegistered
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.User{}, ErrInternal
	}

	now := s.now().UTC()
	u := user.User{
		ID:               uuid.New(),
		Email:            email,
		PasswordHash:     string(hash),
		Role:             role,
		ProfileCompleted: true,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	switch role {
	case user.RoleJobSeeker:
		level, err := user.ParseExperienceLevel(in.Experience)
		if err != nil {
			return user.User{}, ErrInvalidInput
		}
		err = s.users.CreateJobSeeker(ctx, u, user.SeekerProfile{
			ID:              uuid.New(),
			UserID:          u.ID,
			ExperienceLevel: level,
			CreatedAt:       now,
			UpdatedAt:       now,
		})
		if err != nil {
			return user.User{}, mapCreateErr(err)
		}
	case user.RoleEmployer:
		company := strings.TrimSpace(in.Company)
		position := strings.TrimSpace(in.Position)
		if company == "" || position == "" {
			return user.User{}, ErrInvalidInput
		}
		_, err := s.users.CreateEmployer(ctx, u, company, user.EmployerProfile{
			ID:        uuid.New(),
			UserID:    u.ID,
			Position:  position,
			CreatedAt: now,
			UpdatedAt: now,
		})
		if err != nil {
			return user.User{}, mapCreateErr(err)
		}
	}

	return sanitizeUser(u), nil
}

func (s *Service) Login(ctx context.Context, in LoginInput) (user.User, error) {
	email := normalizeEmail(in.Email)
	if email == "" {
		return user.User{}, ErrInvalidCredentials
	}
	if in.Password == "" {
		return user.User{}, ErrInvalidCredentials
	}

	u, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.User{}, ErrInvalidCredentials
		}
		return user.User{}, ErrInternal
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(in.Password)); err != nil {
		return user.User{}, ErrInvalidCredentials
	}

	return sanitizeUser(u), nil
}

func mapCreateErr(err error) error {
	if errors.Is(err, user.ErrEmailTaken) {
		return ErrEmailAlreadyRegistered
	}
	return ErrInternal
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func isValidPassword(pw string) bool {
	return len(strings.TrimSpace(pw)) >= 8
}

func sanitizeUser(u user.User) user.User {
	u.PasswordHash = ""
	return u
}
