package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"job-board/internal/domain/access"
	"job-board/internal/domain/job"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

type JobListParams struct {
	Location        string
	JobType         string
	ExperienceLevel string
	Skills          string
}

func (p JobListParams) Filter() job.ListFilter {
	return job.ListFilter{
		Location:        p.Location,
		JobType:         p.JobType,
		ExperienceLevel: p.ExperienceLevel,
		Skills:          job.ParseSkills(p.Skills),
	}
}

// JobInput is the payload of CreateJob. Ownership fields are deliberately
// absent: company and poster always come from the actor.
type JobInput struct {
	Title               string `json:"title"`
	Description         string `json:"description"`
	Requirements        string `json:"requirements"`
	Location            string `json:"location"`
	LocationType        string `json:"location_type"`
	SalaryMin           *int   `json:"salary_min"`
	SalaryMax           *int   `json:"salary_max"`
	ExperienceRequired  string `json:"experience_required"`
	JobType             string `json:"job_type"`
	ApplicationDeadline string `json:"application_deadline"`
	SkillsRequired      string `json:"skills_required"`
}

func (in JobInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Title, validation.Required, validation.Length(1, 255)),
		validation.Field(&in.Description, validation.Required),
		validation.Field(&in.Requirements, validation.Required),
		validation.Field(&in.Location, validation.Required, validation.Length(1, 255)),
		validation.Field(&in.LocationType, validation.Required, locationTypeRule),
		validation.Field(&in.SalaryMin, validation.Min(0)),
		validation.Field(&in.SalaryMax, validation.Min(0), salaryMaxRule(in.SalaryMin)),
		validation.Field(&in.ExperienceRequired, validation.Required, validation.Length(1, 50)),
		validation.Field(&in.JobType, validation.Required, jobTypeRule),
		validation.Field(&in.ApplicationDeadline, validation.Date(job.DeadlineLayout)),
	)
}

// JobPatchInput is the payload of UpdateJob. Nil fields are left unchanged.
type JobPatchInput struct {
	Title               *string `json:"title"`
	Description         *string `json:"description"`
	Requirements        *string `json:"requirements"`
	Location            *string `json:"location"`
	LocationType        *string `json:"location_type"`
	SalaryMin           *int    `json:"salary_min"`
	SalaryMax           *int    `json:"salary_max"`
	ExperienceRequired  *string `json:"experience_required"`
	JobType             *string `json:"job_type"`
	ApplicationDeadline *string `json:"application_deadline"`
	SkillsRequired      *string `json:"skills_required"`
}

func (in JobPatchInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Title, validation.NilOrNotEmpty, validation.Length(1, 255)),
		validation.Field(&in.Description, validation.NilOrNotEmpty),
		validation.Field(&in.Requirements, validation.NilOrNotEmpty),
		validation.Field(&in.Location, validation.NilOrNotEmpty, validation.Length(1, 255)),
		validation.Field(&in.LocationType, validation.NilOrNotEmpty, locationTypeRule),
		validation.Field(&in.SalaryMin, validation.Min(0)),
		validation.Field(&in.SalaryMax, validation.Min(0)),
		validation.Field(&in.ExperienceRequired, validation.NilOrNotEmpty, validation.Length(1, 50)),
		validation.Field(&in.JobType, validation.NilOrNotEmpty, jobTypeRule),
		validation.Field(&in.ApplicationDeadline, validation.NilOrNotEmpty, validation.Date(job.DeadlineLayout)),
	)
}

func (in JobPatchInput) patch() job.Patch {
	p := job.Patch{
		Title:              in.Title,
		Description:        in.Description,
		Requirements:       in.Requirements,
		Location:           in.Location,
		SalaryMin:          in.SalaryMin,
		SalaryMax:          in.SalaryMax,
		ExperienceRequired: in.ExperienceRequired,
		SkillsRequired:     in.SkillsRequired,
	}
	if in.LocationType != nil {
		lt, _ := job.ParseLocationType(*in.LocationType)
		p.LocationType = &lt
	}
	if in.JobType != nil {
		jt, _ := job.ParseType(*in.JobType)
		p.JobType = &jt
	}
	if in.ApplicationDeadline != nil {
		d, _ := time.Parse(job.DeadlineLayout, *in.ApplicationDeadline)
		p.ApplicationDeadline = &d
	}
	return p
}

var locationTypeRule = validation.In(string(job.LocationRemote), string(job.LocationOnsite), string(job.LocationHybrid)).
	Error("must be one of remote, onsite, hybrid")

var jobTypeRule = validation.In(string(job.TypeFullTime), string(job.TypePartTime), string(job.TypeInternship)).
	Error("must be one of full-time, part-time, internship")

func salaryMaxRule(salaryMin *int) validation.Rule {
	return validation.By(func(value any) error {
		salaryMax, _ := value.(*int)
		if salaryMax == nil || salaryMin == nil {
			return nil
		}
		if *salaryMax < *salaryMin {
			return errors.New("must be greater than or equal to salary_min")
		}
		return nil
	})
}

type JobUsecase interface {
	ListJobs(ctx context.Context, params JobListParams) ([]job.Job, error)
	CreateJob(ctx context.Context, actor access.Actor, in JobInput) (job.Job, error)
	GetJob(ctx context.Context, id uuid.UUID) (job.Job, error)
	UpdateJob(ctx context.Context, actor access.Actor, id uuid.UUID, in JobPatchInput) (job.Job, error)
	DeactivateJob(ctx context.Context, actor access.Actor, id uuid.UUID) error
	AuthorizeCreate(actor access.Actor) error
	AuthorizeUpdate(ctx context.Context, actor access.Actor, id uuid.UUID) error
	ExpireJobs(ctx context.Context, now time.Time) (int64, error)
}

type Jobs struct {
	jobs   job.Repository
	cache  JobListCache
	logger *log.Logger
	now    func() time.Time
}

// NewJobUsecase accepts a nil cache, which disables listing caching.
func NewJobUsecase(jobs job.Repository, cache JobListCache, logger *log.Logger) *Jobs {
	return &Jobs{jobs: jobs, cache: cache, logger: logger, now: time.Now}
}

func (u *Jobs) ListJobs(ctx context.Context, params JobListParams) ([]job.Job, error) {
	f := params.Filter()

	key := ""
	if u.cache != nil {
		if gen, err := u.cache.Generation(ctx, jobListGenerationKey); err == nil {
			key = JobListCacheKey(gen, f)
			var cached []job.Job
			if hit, err := u.cache.GetJSON(ctx, key, &cached); err == nil && hit {
				return cached, nil
			}
		}
	}

	items, err := u.jobs.ListActiveJobs(ctx, f)
	if err != nil {
		u.logf("[Jobs] list failed err=%v", err)
		return nil, ErrInternal
	}

	if key != "" {
		if err := u.cache.SetJSON(ctx, key, items, 0); err != nil {
			u.logf("[Jobs] cache set failed key=%s err=%v", key, err)
		}
	}
	return items, nil
}

func (u *Jobs) CreateJob(ctx context.Context, actor access.Actor, in JobInput) (job.Job, error) {
	if err := access.CanCreateJob(actor).Err(); err != nil {
		return job.Job{}, err
	}
	if err := validationResult(in.Validate()); err != nil {
		return job.Job{}, err
	}

	ep, _ := actor.EmployerProfile()
	now := u.now().UTC()
	j := job.Job{
		ID:                 uuid.New(),
		CompanyID:          ep.CompanyID,
		Company:            ep.Company,
		PostedBy:           actor.UserID,
		Title:              strings.TrimSpace(in.Title),
		Description:        in.Description,
		Requirements:       in.Requirements,
		Location:           strings.TrimSpace(in.Location),
		LocationType:       job.LocationType(in.LocationType),
		SalaryMin:          in.SalaryMin,
		SalaryMax:          in.SalaryMax,
		ExperienceRequired: strings.TrimSpace(in.ExperienceRequired),
		JobType:            job.Type(in.JobType),
		IsActive:           true,
		PostedAt:           now,
		SkillsRequired:     in.SkillsRequired,
		UpdatedAt:          now,
	}
	if in.ApplicationDeadline != "" {
		d, _ := time.Parse(job.DeadlineLayout, in.ApplicationDeadline)
		j.ApplicationDeadline = &d
	}

	if err := u.jobs.CreateJob(ctx, j); err != nil {
		u.logf("[Jobs] create failed company_id=%s err=%v", j.CompanyID, err)
		return job.Job{}, ErrInternal
	}
	u.invalidateListings(ctx)

	return u.GetJob(ctx, j.ID)
}

func (u *Jobs) GetJob(ctx context.Context, id uuid.UUID) (job.Job, error) {
	j, err := u.jobs.GetJobByID(ctx, id)
	if err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return job.Job{}, ErrNotFound
		}
		u.logf("[Jobs] get failed job_id=%s err=%v", id, err)
		return job.Job{}, ErrInternal
	}
	return j, nil
}

// AuthorizeCreate is the role gate of CreateJob.
func (u *Jobs) AuthorizeCreate(actor access.Actor) error {
	return access.CanCreateJob(actor).Err()
}

// AuthorizeUpdate reports ErrNotFound or a denial exactly as UpdateJob would,
// without touching the job.
func (u *Jobs) AuthorizeUpdate(ctx context.Context, actor access.Actor, id uuid.UUID) error {
	j, err := u.GetJob(ctx, id)
	if err != nil {
		return err
	}
	return access.CanModifyJob(actor, j).Err()
}

func (u *Jobs) UpdateJob(ctx context.Context, actor access.Actor, id uuid.UUID, in JobPatchInput) (job.Job, error) {
	j, err := u.GetJob(ctx, id)
	if err != nil {
		return job.Job{}, err
	}
	if err := access.CanModifyJob(actor, j).Err(); err != nil {
		return job.Job{}, err
	}
	if err := validationResult(in.Validate()); err != nil {
		return job.Job{}, err
	}

	j.Apply(in.patch())
	if j.SalaryMin != nil && j.SalaryMax != nil && *j.SalaryMax < *j.SalaryMin {
		return job.Job{}, fieldError("salary_max", "must be greater than or equal to salary_min")
	}
	j.UpdatedAt = u.now().UTC()

	if err := u.jobs.UpdateJob(ctx, j); err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return job.Job{}, ErrNotFound
		}
		u.logf("[Jobs] update failed job_id=%s err=%v", id, err)
		return job.Job{}, ErrInternal
	}
	u.invalidateListings(ctx)

	return u.GetJob(ctx, id)
}

func (u *Jobs) DeactivateJob(ctx context.Context, actor access.Actor, id uuid.UUID) error {
	j, err := u.GetJob(ctx, id)
	if err != nil {
		return err
	}
	if err := access.CanModifyJob(actor, j).Err(); err != nil {
		return err
	}

	if err := u.jobs.SetJobActive(ctx, id, false); err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return ErrNotFound
		}
		u.logf("[Jobs] deactivate failed job_id=%s err=%v", id, err)
		return ErrInternal
	}
	u.invalidateListings(ctx)
	return nil
}

// ExpireJobs deactivates active jobs whose application deadline has passed.
func (u *Jobs) ExpireJobs(ctx context.Context, now time.Time) (int64, error) {
	n, err := u.jobs.DeactivateExpired(ctx, now)
	if err != nil {
		u.logf("[Jobs] expiry sweep failed err=%v", err)
		return 0, ErrInternal
	}
	if n > 0 {
		u.invalidateListings(ctx)
	}
	return n, nil
}

func (u *Jobs) invalidateListings(ctx context.Context) {
	if u.cache == nil {
		return
	}
	gen, err := u.cache.BumpGeneration(ctx, jobListGenerationKey)
	if err != nil {
		return
	}
	if err := u.cache.DeleteByPattern(ctx, jobListGenerationPattern(gen-1)); err != nil {
		u.logf("[Jobs] cache cleanup failed generation=%d err=%v", gen-1, err)
	}
}

func (u *Jobs) logf(format string, args ...any) {
	if u.logger != nil {
		u.logger.Printf(format, args...)
	}
}
