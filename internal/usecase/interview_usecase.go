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
	"job-board/internal/domain/interview"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"
)

// InterviewInput is the payload of CreateInterview. There is no interviewer
// field: the interviewer is always the acting employer.
type InterviewInput struct {
	Application string `json:"application"`
	Schedule    string `json:"schedule"`
	Feedback    string `json:"feedback"`
}

func (in InterviewInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Application, validation.Required, is.UUID),
		validation.Field(&in.Schedule, validation.Required, validation.Date(time.RFC3339)),
	)
}

type InterviewUsecase interface {
	ListInterviews(ctx context.Context, actor access.Actor) ([]interview.Interview, error)
	CreateInterview(ctx context.Context, actor access.Actor, in InterviewInput) (interview.Interview, error)
	AuthorizeCreate(actor access.Actor) error
}

type Interviews struct {
	interviews interview.Repository
	apps       application.Repository
	events     event.Publisher
	logger     *log.Logger
	now        func() time.Time
}

func NewInterviewUsecase(interviews interview.Repository, apps application.Repository, events event.Publisher, logger *log.Logger) *Interviews {
	if events == nil {
		events = event.NopPublisher{}
	}
	return &Interviews{interviews: interviews, apps: apps, events: events, logger: logger, now: time.Now}
}

func (u *Interviews) ListInterviews(ctx context.Context, actor access.Actor) ([]interview.Interview, error) {
	scope, d := access.ListingScope(actor)
	if err := d.Err(); err != nil {
		return nil, err
	}

	var (
		items []interview.Interview
		err   error
	)
	switch scope.Kind {
	case access.ScopeSeeker:
		items, err = u.interviews.ListInterviewsBySeeker(ctx, scope.SeekerID)
	case access.ScopeCompany:
		items, err = u.interviews.ListInterviewsByCompany(ctx, scope.CompanyID)
	default:
		return []interview.Interview{}, nil
	}
	if err != nil {
		u.logf("[Interviews] list failed user_id=%s err=%v", actor.UserID, err)
		return nil, ErrInternal
	}
	return items, nil
}

func (u *Interviews) AuthorizeCreate(actor access.Actor) error {
	return access.CanScheduleInterviews(actor).Err()
}

func (u *Interviews) CreateInterview(ctx context.Context, actor access.Actor, in InterviewInput) (interview.Interview, error) {
	if err := access.CanScheduleInterviews(actor).Err(); err != nil {
		return interview.Interview{}, err
	}
	in.Application = strings.TrimSpace(in.Application)
	in.Schedule = strings.TrimSpace(in.Schedule)
	if err := validationResult(in.Validate()); err != nil {
		return interview.Interview{}, err
	}

	appID, _ := uuid.Parse(in.Application)
	schedule, _ := time.Parse(time.RFC3339, in.Schedule)

	app, err := u.apps.GetApplicationByID(ctx, appID)
	if err != nil {
		if errors.Is(err, application.ErrNotFound) {
			return interview.Interview{}, fieldError("application", "does not exist")
		}
		u.logf("[Interviews] load application failed application_id=%s err=%v", appID, err)
		return interview.Interview{}, ErrInternal
	}
	if err := access.CanScheduleInterview(actor, app).Err(); err != nil {
		return interview.Interview{}, err
	}

	interviewer, _ := actor.EmployerProfile()
	iv := interview.Interview{
		ID:            uuid.New(),
		ApplicationID: app.ID,
		InterviewerID: interviewer.ID,
		Schedule:      schedule.UTC(),
		Feedback:      in.Feedback,
		CreatedAt:     u.now().UTC(),
	}
	if err := u.interviews.CreateInterview(ctx, iv); err != nil {
		u.logf("[Interviews] create failed application_id=%s err=%v", app.ID, err)
		return interview.Interview{}, ErrInternal
	}

	created, err := u.interviews.GetInterviewByID(ctx, iv.ID)
	if err != nil {
		u.logf("[Interviews] reload failed interview_id=%s err=%v", iv.ID, err)
		return interview.Interview{}, ErrInternal
	}

	payload := map[string]any{
		"interview_id":   created.ID,
		"application_id": created.ApplicationID,
		"job_title":      created.Application.Job.Title,
		"schedule":       created.Schedule,
	}
	u.events.Publish(ctx, event.Event{
		Type:      event.TypeInterviewScheduled,
		Topic:     event.UserTopic(created.Application.SeekerUserID),
		Payload:   payload,
		Timestamp: u.now().UTC(),
	})
	return created, nil
}

func (u *Interviews) logf(format string, args ...any) {
	if u.logger != nil {
		u.logger.Printf(format, args...)
	}
}
