package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"job-board/internal/domain/event"
)

func TestInterviews_CreateInterview_InterviewerIsActor(t *testing.T) {
	f := newApplicationFixture(t)
	ctx := context.Background()
	ivs := NewInterviewUsecase(f.store, f.store, f.events, nil)

	a1, err := f.apps.CreateApplication(ctx, f.seeker, f.j1.ID.String())
	if err != nil {
		t.Fatalf("apply: %v", err)
	}

	schedule := time.Date(2026, 11, 2, 9, 30, 0, 0, time.FixedZone("WIB", 7*3600))
	iv, err := ivs.CreateInterview(ctx, f.e1, InterviewInput{
		Application: a1.ID.String(),
		Schedule:    schedule.Format(time.RFC3339),
		Feedback:    "bring a laptop",
	})
	if err != nil {
		t.Fatalf("create interview: %v", err)
	}

	ep, _ := f.e1.EmployerProfile()
	if iv.InterviewerID != ep.ID {
		t.Fatalf("interviewer must be the acting employer, got %s", iv.InterviewerID)
	}
	if !iv.Schedule.Equal(schedule) || iv.Schedule.Location() != time.UTC {
		t.Fatalf("expected schedule stored in UTC, got %s", iv.Schedule)
	}
	if iv.Application.ID != a1.ID {
		t.Fatalf("expected hydrated application")
	}

	evts := f.events.all()
	last := evts[len(evts)-1]
	if last.Type != event.TypeInterviewScheduled || last.Topic != event.UserTopic(f.seeker.UserID) {
		t.Fatalf("unexpected event %+v", last)
	}
}

func TestInterviews_CreateInterview_Rejections(t *testing.T) {
	f := newApplicationFixture(t)
	ctx := context.Background()
	ivs := NewInterviewUsecase(f.store, f.store, nil, nil)
	a1, err := f.apps.CreateApplication(ctx, f.seeker, f.j1.ID.String())
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	valid := InterviewInput{Application: a1.ID.String(), Schedule: "2026-11-02T09:30:00Z"}

	if _, err := ivs.CreateInterview(ctx, f.seeker, valid); !errors.Is(err, ErrForbidden) {
		t.Fatalf("seeker: expected ErrForbidden, got %v", err)
	}
	if _, err := ivs.CreateInterview(ctx, f.e2, valid); !errors.Is(err, ErrForbidden) {
		t.Fatalf("other company: expected ErrForbidden, got %v", err)
	}

	bad := []InterviewInput{
		{Application: "", Schedule: valid.Schedule},
		{Application: "nope", Schedule: valid.Schedule},
		{Application: valid.Application, Schedule: "tomorrow"},
		{Application: "6f1c2a8e-0d7b-4c55-9d3e-2b8f7a1e4c90", Schedule: valid.Schedule},
	}
	for i, in := range bad {
		if _, err := ivs.CreateInterview(ctx, f.e1, in); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("case %d: expected ErrInvalidInput, got %v", i, err)
		}
	}

	if len(f.store.interviews) != 0 {
		t.Fatalf("no interview must be created, got %d", len(f.store.interviews))
	}
}

func TestInterviews_ListScopes(t *testing.T) {
	f := newApplicationFixture(t)
	ctx := context.Background()
	ivs := NewInterviewUsecase(f.store, f.store, nil, nil)
	other := f.store.addSeeker("other@mail.io")

	a1, _ := f.apps.CreateApplication(ctx, f.seeker, f.j1.ID.String())
	a2, _ := f.apps.CreateApplication(ctx, other, f.j1.ID.String())
	for _, id := range []string{a1.ID.String(), a2.ID.String()} {
		if _, err := ivs.CreateInterview(ctx, f.e1, InterviewInput{Application: id, Schedule: "2026-11-02T09:30:00Z"}); err != nil {
			t.Fatalf("create interview: %v", err)
		}
	}

	mine, err := ivs.ListInterviews(ctx, f.seeker)
	if err != nil || len(mine) != 1 || mine[0].Application.ID != a1.ID {
		t.Fatalf("seeker must see only own interviews: %d %v", len(mine), err)
	}
	company, err := ivs.ListInterviews(ctx, f.e1)
	if err != nil || len(company) != 2 {
		t.Fatalf("employer must see company interviews: %d %v", len(company), err)
	}
	none, err := ivs.ListInterviews(ctx, f.e2)
	if err != nil || len(none) != 0 {
		t.Fatalf("other company must see none: %d %v", len(none), err)
	}
}
