package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"job-board/internal/domain/access"
	"job-board/internal/domain/application"
	"job-board/internal/domain/event"
	"job-board/internal/domain/job"

	"github.com/google/uuid"
)

type ApplicationUsecase interface {
	ListApplications(ctx context.Context, actor access.Actor) ([]application.Application, error)
	CreateApplication(ctx context.Context, actor access.Actor, jobID string) (application.Application, error)
	UpdateApplicationStatus(ctx context.Context, actor access.Actor, id uuid.UUID, status string) (application.Application, error)
	AuthorizeCreate(actor access.Actor) error
	AuthorizeStatusUpdate(ctx context.Context, actor access.Actor, id uuid.UUID) error
}

type Applications struct {
	apps   application.Repository
	jobs   job.Repository
	events event.Publisher
	logger *log.Logger
	now    func() time.Time
}

func NewApplicationUsecase(apps application.Repository, jobs job.Repository, events event.Publisher, logger *log.Logger) *Applications {
	if events == nil {
		events = event.NopPublisher{}
	}
	return &Applications{apps: apps, jobs: jobs, events: events, logger: logger, now: time.Now}
}

func (u *Applications) ListApplications(ctx context.Context, actor access.Actor) ([]application.Application, error) {
	scope, d := access.ListingScope(actor)
	if err := d.Err(); err != nil {
		return nil, err
	}

	var (
		items []application.Application
		err   error
	)
	switch scope.Kind {
	case access.ScopeSeeker:
		items, err = u.apps.ListApplicationsBySeeker(ctx, scope.SeekerID)
	case access.ScopeCompany:
		items, err = u.apps.ListApplicationsByCompany(ctx, scope.CompanyID)
	default:
		return []application.Application{}, nil
	}
	if err != nil {
		u.logf("[Applications] list failed user_id=%s err=%v", actor.UserID, err)
		return nil, ErrInternal
	}
	return items, nil
}

// CreateApplication submits the actor's application to jobID. The existence
// check only produces a friendlier error; the store's unique constraint is
// what rejects concurrent duplicates.
func (u *Applications) CreateApplication(ctx context.Context, actor access.Actor, jobID string) (application.Application, error) {
	if err := access.CanApply(actor).Err(); err != nil {
		return application.Application{}, err
	}
	seeker, _ := actor.SeekerProfile()

	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return application.Application{}, fieldError("job", "cannot be blank")
	}
	id, err := uuid.Parse(jobID)
	if err != nil {
		return application.Application{}, fieldError("job", "must be a valid id")
	}
	j, err := u.jobs.GetJobByID(ctx, id)
	if err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return application.Application{}, fieldError("job", "does not exist")
		}
		u.logf("[Applications] load job failed job_id=%s err=%v", id, err)
		return application.Application{}, ErrInternal
	}

	exists, err := u.apps.ExistsForJobAndSeeker(ctx, j.ID, seeker.ID)
	if err != nil {
		u.logf("[Applications] exists check failed job_id=%s err=%v", j.ID, err)
		return application.Application{}, ErrInternal
	}
	if exists {
		return application.Application{}, ErrConflict
	}

	a := application.Application{
		ID:          uuid.New(),
		JobID:       j.ID,
		SeekerID:    seeker.ID,
		Status:      application.StatusApplied,
		AppliedDate: u.now().UTC(),
	}
	if err := u.apps.CreateApplication(ctx, a); err != nil {
		if errors.Is(err, application.ErrDuplicate) {
			return application.Application{}, ErrConflict
		}
		u.logf("[Applications] create failed job_id=%s err=%v", j.ID, err)
		return application.Application{}, ErrInternal
	}

	created, err := u.get(ctx, a.ID)
	if err != nil {
		return application.Application{}, err
	}

	u.events.Publish(ctx, event.Event{
		Type:      event.TypeApplicationCreated,
		Topic:     event.CompanyTopic(j.CompanyID),
		Payload:   applicationEventPayload(created),
		Timestamp: u.now().UTC(),
	})
	return created, nil
}

func (u *Applications) AuthorizeCreate(actor access.Actor) error {
	return access.CanApply(actor).Err()
}

// AuthorizeStatusUpdate reports ErrNotFound or a denial exactly as
// UpdateApplicationStatus would.
func (u *Applications) AuthorizeStatusUpdate(ctx context.Context, actor access.Actor, id uuid.UUID) error {
	a, err := u.get(ctx, id)
	if err != nil {
		return err
	}
	return access.CanModifyApplication(actor, a).Err()
}

func (u *Applications) UpdateApplicationStatus(ctx context.Context, actor access.Actor, id uuid.UUID, status string) (application.Application, error) {
	a, err := u.get(ctx, id)
	if err != nil {
		return application.Application{}, err
	}
	if err := access.CanModifyApplication(actor, a).Err(); err != nil {
		return application.Application{}, err
	}
	st, err := application.ParseStatus(status)
	if err != nil {
		return application.Application{}, fieldError("status", "must be one of applied, shortlisted, rejected, hired")
	}

	if err := u.apps.UpdateApplicationStatus(ctx, id, st); err != nil {
		if errors.Is(err, application.ErrNotFound) {
			return application.Application{}, ErrNotFound
		}
		u.logf("[Applications] status update failed application_id=%s err=%v", id, err)
		return application.Application{}, ErrInternal
	}

	updated, err := u.get(ctx, id)
	if err != nil {
		return application.Application{}, err
	}

	u.events.Publish(ctx, event.Event{
		Type:      event.TypeApplicationStatusChanged,
		Topic:     event.UserTopic(updated.SeekerUserID),
		Payload:   applicationEventPayload(updated),
		Timestamp: u.now().UTC(),
	})
	return updated, nil
}

func (u *Applications) get(ctx context.Context, id uuid.UUID) (application.Application, error) {
	a, err := u.apps.GetApplicationByID(ctx, id)
	if err != nil {
		if errors.Is(err, application.ErrNotFound) {
			return application.Application{}, ErrNotFound
		}
		u.logf("[Applications] get failed application_id=%s err=%v", id, err)
		return application.Application{}, ErrInternal
	}
	return a, nil
}

func (u *Applications) logf(format string, args ...any) {
	if u.logger != nil {
		u.logger.Printf(format, args...)
	}
}

func applicationEventPayload(a application.Application) map[string]any {
	return map[string]any{
		"application_id": a.ID,
		"job_id":         a.JobID,
		"job_title":      a.Job.Title,
		"company_id":     a.Job.CompanyID,
		"status":         a.Status,
	}
}
