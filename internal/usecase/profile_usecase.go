package usecase

import (
	"context"
	"errors"
	"log"
	"time"

	"job-board/internal/domain/access"
	"job-board/internal/domain/user"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"
)

// Me is the authenticated user with whichever profile it owns.
type Me struct {
	User     user.User
	Seeker   *user.SeekerProfile
	Employer *user.EmployerProfile
}

type SeekerProfileInput struct {
	ExperienceLevel *string `json:"experience_level"`
	ResumeURL       *string `json:"resume_url"`
	Skills          *string `json:"skills"`
	Education       *string `json:"education"`
	Projects        *string `json:"projects"`
	Certifications  *string `json:"certifications"`
}

func (in SeekerProfileInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.ExperienceLevel, validation.NilOrNotEmpty,
			validation.In(string(user.ExperienceFresher), string(user.ExperienceExperienced)).Error("must be one of fresher, experienced")),
		validation.Field(&in.ResumeURL, is.URL),
	)
}

type EmployerProfileInput struct {
	Position *string `json:"position"`
}

func (in EmployerProfileInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Position, validation.NilOrNotEmpty, validation.Length(1, 100)),
	)
}

type ProfileUsecase interface {
	GetMe(ctx context.Context, actor access.Actor) (Me, error)
	UpdateSeekerProfile(ctx context.Context, actor access.Actor, in SeekerProfileInput) (user.SeekerProfile, error)
	UpdateEmployerProfile(ctx context.Context, actor access.Actor, in EmployerProfileInput) (user.EmployerProfile, error)
	AuthorizeSeekerUpdate(actor access.Actor) error
	AuthorizeEmployerUpdate(actor access.Actor) error
	ListCompanies(ctx context.Context) ([]user.Company, error)
	GetCompany(ctx context.Context, id uuid.UUID) (user.Company, error)
}

type Profiles struct {
	users     user.Repository
	profiles  user.ProfileRepository
	companies user.CompanyRepository
	logger    *log.Logger
	now       func() time.Time
}

func NewProfileUsecase(users user.Repository, profiles user.ProfileRepository, companies user.CompanyRepository, logger *log.Logger) *Profiles {
	return &Profiles{users: users, profiles: profiles, companies: companies, logger: logger, now: time.Now}
}

func (u *Profiles) GetMe(ctx context.Context, actor access.Actor) (Me, error) {
	usr, err := u.users.GetUserByID(ctx, actor.UserID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return Me{}, ErrNotFound
		}
		u.logf("[Profiles] load user failed user_id=%s err=%v", actor.UserID, err)
		return Me{}, ErrInternal
	}
	usr.PasswordHash = ""

	me := Me{User: usr}
	if p, ok := actor.SeekerProfile(); ok {
		me.Seeker = &p
	}
	if p, ok := actor.EmployerProfile(); ok {
		me.Employer = &p
	}
	return me, nil
}

func (u *Profiles) AuthorizeSeekerUpdate(actor access.Actor) error {
	if _, ok := actor.SeekerProfile(); !ok {
		return access.Decision{Reason: "Job seeker profile required"}.Err()
	}
	return nil
}

func (u *Profiles) AuthorizeEmployerUpdate(actor access.Actor) error {
	if _, ok := actor.EmployerProfile(); !ok {
		return access.Decision{Reason: "Employer profile required"}.Err()
	}
	return nil
}

func (u *Profiles) UpdateSeekerProfile(ctx context.Context, actor access.Actor, in SeekerProfileInput) (user.SeekerProfile, error) {
	if err := u.AuthorizeSeekerUpdate(actor); err != nil {
		return user.SeekerProfile{}, err
	}
	p, _ := actor.SeekerProfile()
	if err := validationResult(in.Validate()); err != nil {
		return user.SeekerProfile{}, err
	}

	if in.ExperienceLevel != nil {
		p.ExperienceLevel = user.ExperienceLevel(*in.ExperienceLevel)
	}
	if in.ResumeURL != nil {
		if *in.ResumeURL == "" {
			p.ResumeURL = nil
		} else {
			v := *in.ResumeURL
			p.ResumeURL = &v
		}
	}
	if in.Skills != nil {
		p.Skills = *in.Skills
	}
	if in.Education != nil {
		p.Education = *in.Education
	}
	if in.Projects != nil {
		p.Projects = *in.Projects
	}
	if in.Certifications != nil {
		p.Certifications = *in.Certifications
	}
	p.UpdatedAt = u.now().UTC()

	if err := u.profiles.UpdateSeekerProfile(ctx, p); err != nil {
		u.logf("[Profiles] seeker update failed user_id=%s err=%v", actor.UserID, err)
		return user.SeekerProfile{}, ErrInternal
	}
	return p, nil
}

func (u *Profiles) UpdateEmployerProfile(ctx context.Context, actor access.Actor, in EmployerProfileInput) (user.EmployerProfile, error) {
	if err := u.AuthorizeEmployerUpdate(actor); err != nil {
		return user.EmployerProfile{}, err
	}
	p, _ := actor.EmployerProfile()
	if err := validationResult(in.Validate()); err != nil {
		return user.EmployerProfile{}, err
	}

	if in.Position != nil {
		p.Position = *in.Position
	}
	p.UpdatedAt = u.now().UTC()

	if err := u.profiles.UpdateEmployerProfile(ctx, p); err != nil {
		u.logf("[Profiles] employer update failed user_id=%s err=%v", actor.UserID, err)
		return user.EmployerProfile{}, ErrInternal
	}
	return p, nil
}

func (u *Profiles) ListCompanies(ctx context.Context) ([]user.Company, error) {
	items, err := u.companies.ListCompanies(ctx)
	if err != nil {
		u.logf("[Profiles] list companies failed err=%v", err)
		return nil, ErrInternal
	}
	return items, nil
}

func (u *Profiles) GetCompany(ctx context.Context, id uuid.UUID) (user.Company, error) {
	c, err := u.companies.GetCompanyByID(ctx, id)
	if err != nil {
		if errors.Is(err, user.ErrCompanyNotFound) {
			return user.Company{}, ErrNotFound
		}
		u.logf("[Profiles] get company failed company_id=%s err=%v", id, err)
		return user.Company{}, ErrInternal
	}
	return c, nil
}

func (u *Profiles) logf(format string, args ...any) {
	if u.logger != nil {
		u.logger.Printf(format, args...)
	}
}
