package user

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var (
	ErrNotFound        = errors.New("user not found")
	ErrEmailTaken      = errors.New("email already registered")
	ErrProfileNotFound = errors.New("profile not found")
	ErrCompanyNotFound = errors.New("company not found")
)

type Repository interface {
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (User, error)
	GetUserByEmail(ctx context.Context, email string) (User, error)

	// CreateJobSeeker stores the user and its seeker profile atomically.
	CreateJobSeeker(ctx context.Context, u User, p SeekerProfile) error
	// CreateEmployer stores the user and its employer profile atomically,
	// reusing the company named companyName or creating it.
	CreateEmployer(ctx context.Context, u User, companyName string, p EmployerProfile) (EmployerProfile, error)
}

type ProfileRepository interface {
	GetSeekerProfileByUserID(ctx context.Context, userID uuid.UUID) (SeekerProfile, error)
	GetEmployerProfileByUserID(ctx context.Context, userID uuid.UUID) (EmployerProfile, error)
	UpdateSeekerProfile(ctx context.Context, p SeekerProfile) error
	UpdateEmployerProfile(ctx context.Context, p EmployerProfile) error
}

type CompanyRepository interface {
	ListCompanies(ctx context.Context) ([]Company, error)
	GetCompanyByID(ctx context.Context, id uuid.UUID) (Company, error)
}
