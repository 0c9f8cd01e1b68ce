package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"

	"job-board/internal/domain/access"
	"job-board/internal/domain/application"
	"job-board/internal/domain/event"
	"job-board/internal/domain/job"
	"job-board/internal/domain/user"

	"github.com/google/uuid"
)

type applicationFixture struct {
	store  *memStore
	events *recordingPublisher
	jobs   *Jobs
	apps   *Applications
	e1, e2 access.Actor
	seeker access.Actor
	j1     job.Job
}

func newApplicationFixture(t *testing.T) applicationFixture {
	t.Helper()
	store := newMemStore()
	events := &recordingPublisher{}
	f := applicationFixture{
		store:  store,
		events: events,
		jobs:   NewJobUsecase(store, nil, nil),
		apps:   NewApplicationUsecase(store, store, events, nil),
		e1:     store.addEmployer("e1@acme.io", "Acme"),
		e2:     store.addEmployer("e2@globex.io", "Globex"),
		seeker: store.addSeeker("s@mail.io"),
	}
	f.j1 = mustCreateJob(t, f.jobs, f.e1, validJobInput("Backend Engineer"))
	return f
}

func TestApplications_ApplyThenReapplyConflict(t *testing.T) {
	f := newApplicationFixture(t)
	ctx := context.Background()

	a1, err := f.apps.CreateApplication(ctx, f.seeker, f.j1.ID.String())
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if a1.Status != application.StatusApplied {
		t.Fatalf("expected status applied, got %s", a1.Status)
	}
	if a1.Job.ID != f.j1.ID || a1.SeekerEmail != "s@mail.io" {
		t.Fatalf("expected hydrated application, got %+v", a1)
	}

	_, err = f.apps.CreateApplication(ctx, f.seeker, f.j1.ID.String())
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
	if len(f.store.apps) != 1 {
		t.Fatalf("expected exactly one application, got %d", len(f.store.apps))
	}
}

// racingApps reports no existing application, as every concurrent request
// would before the first insert commits.
type racingApps struct {
	*memStore
}

func (racingApps) ExistsForJobAndSeeker(context.Context, uuid.UUID, uuid.UUID) (bool, error) {
	return false, nil
}

func TestApplications_ConcurrentDuplicatesRejectedByStore(t *testing.T) {
	f := newApplicationFixture(t)
	uc := NewApplicationUsecase(racingApps{f.store}, f.store, nil, nil)

	const workers = 8
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		created   int
		conflicts int
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := uc.CreateApplication(context.Background(), f.seeker, f.j1.ID.String())
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				created++
			case errors.Is(err, ErrConflict):
				conflicts++
			default:
				t.Errorf("unexpected err: %v", err)
			}
		}()
	}
	wg.Wait()

	if created != 1 || conflicts != workers-1 {
		t.Fatalf("expected 1 created and %d conflicts, got %d and %d", workers-1, created, conflicts)
	}
	if len(f.store.apps) != 1 {
		t.Fatalf("expected exactly one application, got %d", len(f.store.apps))
	}
}

func TestApplications_CreateApplication_Rejections(t *testing.T) {
	f := newApplicationFixture(t)
	ctx := context.Background()

	if _, err := f.apps.CreateApplication(ctx, f.e1, f.j1.ID.String()); !errors.Is(err, ErrForbidden) {
		t.Fatalf("employer applying: expected ErrForbidden, got %v", err)
	}

	cases := map[string]string{
		"blank":   "  ",
		"invalid": "not-a-uuid",
		"unknown": uuid.NewString(),
	}
	for name, jobID := range cases {
		_, err := f.apps.CreateApplication(ctx, f.seeker, jobID)
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("%s job id: expected *ValidationError, got %v", name, err)
		}
		if _, ok := verr.Fields["job"]; !ok {
			t.Fatalf("%s job id: expected job field error, got %v", name, verr.Fields)
		}
	}
	if len(f.store.apps) != 0 {
		t.Fatalf("no application must be created")
	}
}

func TestApplications_CreateApplication_PublishesToCompany(t *testing.T) {
	f := newApplicationFixture(t)

	a1, err := f.apps.CreateApplication(context.Background(), f.seeker, f.j1.ID.String())
	if err != nil {
		t.Fatalf("apply: %v", err)
	}

	evts := f.events.all()
	if len(evts) != 1 {
		t.Fatalf("expected 1 event, got %d", len(evts))
	}
	if evts[0].Type != event.TypeApplicationCreated {
		t.Fatalf("unexpected event type %q", evts[0].Type)
	}
	if evts[0].Topic != event.CompanyTopic(f.j1.CompanyID) {
		t.Fatalf("unexpected topic %q", evts[0].Topic)
	}
	payload, _ := evts[0].Payload.(map[string]any)
	if payload["application_id"] != a1.ID {
		t.Fatalf("unexpected payload %v", evts[0].Payload)
	}
}

func TestApplications_UpdateStatus(t *testing.T) {
	f := newApplicationFixture(t)
	ctx := context.Background()
	a1, err := f.apps.CreateApplication(ctx, f.seeker, f.j1.ID.String())
	if err != nil {
		t.Fatalf("apply: %v", err)
	}

	got, err := f.apps.UpdateApplicationStatus(ctx, f.e1, a1.ID, "shortlisted")
	if err != nil {
		t.Fatalf("update status: %v", err)
	}
	if got.Status != application.StatusShortlisted {
		t.Fatalf("expected shortlisted, got %s", got.Status)
	}

	evts := f.events.all()
	last := evts[len(evts)-1]
	if last.Type != event.TypeApplicationStatusChanged || last.Topic != event.UserTopic(f.seeker.UserID) {
		t.Fatalf("unexpected event %+v", last)
	}

	if _, err := f.apps.UpdateApplicationStatus(ctx, f.e2, a1.ID, "hired"); !errors.Is(err, ErrForbidden) {
		t.Fatalf("other company: expected ErrForbidden, got %v", err)
	}
	if _, err := f.apps.UpdateApplicationStatus(ctx, f.seeker, a1.ID, "hired"); !errors.Is(err, ErrForbidden) {
		t.Fatalf("seeker: expected ErrForbidden, got %v", err)
	}
	if _, err := f.apps.UpdateApplicationStatus(ctx, f.e1, a1.ID, "archived"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("bad status: expected ErrInvalidInput, got %v", err)
	}
	if _, err := f.apps.UpdateApplicationStatus(ctx, f.e1, uuid.New(), "hired"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("missing: expected ErrNotFound, got %v", err)
	}

	stored, _ := f.store.GetApplicationByID(ctx, a1.ID)
	if stored.Status != application.StatusShortlisted {
		t.Fatalf("rejected updates must leave status unchanged, got %s", stored.Status)
	}
}

func TestApplications_UpdateStatus_AnyTransition(t *testing.T) {
	f := newApplicationFixture(t)
	ctx := context.Background()
	a1, _ := f.apps.CreateApplication(ctx, f.seeker, f.j1.ID.String())

	for _, st := range []string{"hired", "applied", "applied", "rejected", "shortlisted"} {
		got, err := f.apps.UpdateApplicationStatus(ctx, f.e1, a1.ID, st)
		if err != nil {
			t.Fatalf("transition to %s: %v", st, err)
		}
		if string(got.Status) != st {
			t.Fatalf("expected %s, got %s", st, got.Status)
		}
	}
}

func TestApplications_ListScopes(t *testing.T) {
	f := newApplicationFixture(t)
	ctx := context.Background()
	other := f.store.addSeeker("other@mail.io")
	j2 := mustCreateJob(t, f.jobs, f.e2, validJobInput("Data Engineer"))

	if _, err := f.apps.CreateApplication(ctx, f.seeker, f.j1.ID.String()); err != nil {
		t.Fatalf("apply j1: %v", err)
	}
	if _, err := f.apps.CreateApplication(ctx, f.seeker, j2.ID.String()); err != nil {
		t.Fatalf("apply j2: %v", err)
	}
	if _, err := f.apps.CreateApplication(ctx, other, j2.ID.String()); err != nil {
		t.Fatalf("other apply j2: %v", err)
	}

	cases := []struct {
		name  string
		actor access.Actor
		want  int
	}{
		{name: "seeker sees own", actor: f.seeker, want: 2},
		{name: "other seeker sees own", actor: other, want: 1},
		{name: "e1 sees acme jobs", actor: f.e1, want: 1},
		{name: "e2 sees globex jobs", actor: f.e2, want: 2},
		{name: "seeker without profile", actor: access.NewActor(user.User{ID: uuid.New(), Role: user.RoleJobSeeker}, nil, nil), want: 0},
		{name: "employer without profile", actor: access.NewActor(user.User{ID: uuid.New(), Role: user.RoleEmployer}, nil, nil), want: 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			items, err := f.apps.ListApplications(ctx, tc.actor)
			if err != nil {
				t.Fatalf("unexpected err: %v", err)
			}
			if items == nil || len(items) != tc.want {
				t.Fatalf("expected %d items, got %d", tc.want, len(items))
			}
		})
	}

	admin := access.NewActor(user.User{ID: uuid.New(), Role: user.Role("admin")}, nil, nil)
	if _, err := f.apps.ListApplications(ctx, admin); !errors.Is(err, ErrForbidden) {
		t.Fatalf("unknown role: expected ErrForbidden, got %v", err)
	}
}
