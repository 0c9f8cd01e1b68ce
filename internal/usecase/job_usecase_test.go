package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"job-board/internal/domain/access"
	"job-board/internal/domain/job"

	"github.com/google/uuid"
)

func validJobInput(title string) JobInput {
	return JobInput{
		Title:              title,
		Description:        "Build APIs",
		Requirements:       "3 years",
		Location:           "Jakarta",
		LocationType:       "hybrid",
		SalaryMin:          intPtr(1000),
		SalaryMax:          intPtr(2000),
		ExperienceRequired: "experienced",
		JobType:            "full-time",
		SkillsRequired:     "Go, PostgreSQL",
	}
}

func mustCreateJob(t *testing.T, uc *Jobs, actor access.Actor, in JobInput) job.Job {
	t.Helper()
	j, err := uc.CreateJob(context.Background(), actor, in)
	if err != nil {
		t.Fatalf("create job: %v", err)
	}
	return j
}

func TestJobs_CreateJob_OwnershipFromActor(t *testing.T) {
	store := newMemStore()
	e1 := store.addEmployer("e1@acme.io", "Acme")
	uc := NewJobUsecase(store, nil, nil)

	j := mustCreateJob(t, uc, e1, validJobInput("Backend Engineer"))

	companyID, _ := e1.CompanyID()
	if j.CompanyID != companyID || j.Company.Name != "Acme" {
		t.Fatalf("expected job owned by actor company, got %+v", j.Company)
	}
	if j.PostedBy != e1.UserID {
		t.Fatalf("expected posted_by %s, got %s", e1.UserID, j.PostedBy)
	}
	if !j.IsActive {
		t.Fatalf("new jobs must be active")
	}
}

func TestJobs_CreateJob_NonEmployerForbidden(t *testing.T) {
	store := newMemStore()
	seeker := store.addSeeker("s@mail.io")
	uc := NewJobUsecase(store, nil, nil)

	_, err := uc.CreateJob(context.Background(), seeker, validJobInput("Backend Engineer"))
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	var denied *access.DeniedError
	if !errors.As(err, &denied) || denied.Reason != access.ReasonEmployerOnly {
		t.Fatalf("expected employer-only reason, got %v", err)
	}
	if len(store.jobs) != 0 {
		t.Fatalf("no job must be created, got %d", len(store.jobs))
	}
}

func TestJobs_CreateJob_Validation(t *testing.T) {
	store := newMemStore()
	e1 := store.addEmployer("e1@acme.io", "Acme")
	uc := NewJobUsecase(store, nil, nil)

	in := validJobInput("")
	in.LocationType = "moon"
	in.SalaryMin = intPtr(5000)
	in.SalaryMax = intPtr(100)
	in.ApplicationDeadline = "31/12/2030"

	_, err := uc.CreateJob(context.Background(), e1, in)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
	for _, field := range []string{"title", "location_type", "salary_max", "application_deadline"} {
		if _, ok := verr.Fields[field]; !ok {
			t.Fatalf("expected field error for %s, got %v", field, verr.Fields)
		}
	}
	if len(store.jobs) != 0 {
		t.Fatalf("no job must be created")
	}
}

func TestJobs_GetJob_IgnoresActiveFlag(t *testing.T) {
	store := newMemStore()
	e1 := store.addEmployer("e1@acme.io", "Acme")
	uc := NewJobUsecase(store, nil, nil)
	j := mustCreateJob(t, uc, e1, validJobInput("Backend Engineer"))

	if err := uc.DeactivateJob(context.Background(), e1, j.ID); err != nil {
		t.Fatalf("deactivate: %v", err)
	}
	got, err := uc.GetJob(context.Background(), j.ID)
	if err != nil {
		t.Fatalf("inactive job must still be readable: %v", err)
	}
	if got.IsActive {
		t.Fatalf("expected inactive job")
	}

	if _, err := uc.GetJob(context.Background(), uuid.New()); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestJobs_UpdateJob_OtherEmployerForbidden(t *testing.T) {
	store := newMemStore()
	e1 := store.addEmployer("e1@acme.io", "Acme")
	e2 := store.addEmployer("e2@globex.io", "Globex")
	uc := NewJobUsecase(store, nil, nil)
	j1 := mustCreateJob(t, uc, e1, validJobInput("Backend Engineer"))

	_, err := uc.UpdateJob(context.Background(), e2, j1.ID, JobPatchInput{Title: strPtr("Hijacked")})
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	got, _ := uc.GetJob(context.Background(), j1.ID)
	if got.Title != "Backend Engineer" {
		t.Fatalf("job must be unchanged, got title %q", got.Title)
	}
}

func TestJobs_UpdateJob_SameCompanyButNotPosterForbidden(t *testing.T) {
	store := newMemStore()
	e1 := store.addEmployer("e1@acme.io", "Acme")
	colleague := store.addEmployer("e3@acme.io", "Acme")
	uc := NewJobUsecase(store, nil, nil)
	j1 := mustCreateJob(t, uc, e1, validJobInput("Backend Engineer"))

	if err := uc.DeactivateJob(context.Background(), colleague, j1.ID); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	got, _ := uc.GetJob(context.Background(), j1.ID)
	if !got.IsActive {
		t.Fatalf("job must stay active")
	}
}

func TestJobs_UpdateJob_PartialPatch(t *testing.T) {
	store := newMemStore()
	e1 := store.addEmployer("e1@acme.io", "Acme")
	uc := NewJobUsecase(store, nil, nil)
	j1 := mustCreateJob(t, uc, e1, validJobInput("Backend Engineer"))

	got, err := uc.UpdateJob(context.Background(), e1, j1.ID, JobPatchInput{
		Title:               strPtr("Senior Backend Engineer"),
		ApplicationDeadline: strPtr("2030-12-31"),
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got.Title != "Senior Backend Engineer" {
		t.Fatalf("title not updated: %q", got.Title)
	}
	if got.Location != j1.Location || got.Description != j1.Description || *got.SalaryMax != 2000 {
		t.Fatalf("unspecified fields must be preserved: %+v", got)
	}
	if got.ApplicationDeadline == nil || got.ApplicationDeadline.Format(job.DeadlineLayout) != "2030-12-31" {
		t.Fatalf("unexpected deadline %v", got.ApplicationDeadline)
	}
	if got.CompanyID != j1.CompanyID || got.PostedBy != j1.PostedBy {
		t.Fatalf("ownership must never change")
	}
}

func TestJobs_UpdateJob_Errors(t *testing.T) {
	store := newMemStore()
	e1 := store.addEmployer("e1@acme.io", "Acme")
	uc := NewJobUsecase(store, nil, nil)
	j1 := mustCreateJob(t, uc, e1, validJobInput("Backend Engineer"))

	if _, err := uc.UpdateJob(context.Background(), e1, uuid.New(), JobPatchInput{}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := uc.UpdateJob(context.Background(), e1, j1.ID, JobPatchInput{JobType: strPtr("gig")}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	// The merged salary range is checked, not only the patch.
	if _, err := uc.UpdateJob(context.Background(), e1, j1.ID, JobPatchInput{SalaryMax: intPtr(10)}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for salary range, got %v", err)
	}
}

func TestJobs_DeactivateJob_SoftAndIdempotent(t *testing.T) {
	store := newMemStore()
	e1 := store.addEmployer("e1@acme.io", "Acme")
	uc := NewJobUsecase(store, nil, nil)
	j1 := mustCreateJob(t, uc, e1, validJobInput("Backend Engineer"))

	for i := 0; i < 2; i++ {
		if err := uc.DeactivateJob(context.Background(), e1, j1.ID); err != nil {
			t.Fatalf("deactivate #%d: %v", i+1, err)
		}
	}

	got, err := uc.GetJob(context.Background(), j1.ID)
	if err != nil {
		t.Fatalf("row must survive deactivation: %v", err)
	}
	if got.IsActive {
		t.Fatalf("expected is_active=false")
	}
	if got.Title != j1.Title || got.Requirements != j1.Requirements || !got.PostedAt.Equal(j1.PostedAt) {
		t.Fatalf("other fields must be preserved")
	}

	items, _ := uc.ListJobs(context.Background(), JobListParams{})
	if len(items) != 0 {
		t.Fatalf("inactive jobs must not be listed, got %d", len(items))
	}
}

func TestJobs_ListJobs_Filters(t *testing.T) {
	store := newMemStore()
	e1 := store.addEmployer("e1@acme.io", "Acme")
	uc := NewJobUsecase(store, nil, nil)
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	specs := []struct {
		title, location, jobType, experience, skills string
	}{
		{"A", "Jakarta Selatan", "full-time", "experienced", "Python, SQL, Docker"},
		{"B", "Bandung", "part-time", "fresher", "python"},
		{"C", "Remote - Jakarta", "internship", "fresher", "Go, sql"},
		{"D", "Surabaya", "full-time", "experienced", "Java"},
	}
	for i, s := range specs {
		uc.now = func() time.Time { return base.Add(time.Duration(i) * time.Hour) }
		in := validJobInput(s.title)
		in.Location, in.JobType, in.ExperienceRequired, in.SkillsRequired = s.location, s.jobType, s.experience, s.skills
		mustCreateJob(t, uc, e1, in)
	}

	cases := []struct {
		name   string
		params JobListParams
		want   string
	}{
		{name: "no filters newest first", params: JobListParams{}, want: "DCBA"},
		{name: "location substring any case", params: JobListParams{Location: "jakarta"}, want: "CA"},
		{name: "job type exact", params: JobListParams{JobType: "full-time"}, want: "DA"},
		{name: "job type is not a substring match", params: JobListParams{JobType: "full"}, want: ""},
		{name: "experience exact", params: JobListParams{ExperienceLevel: "fresher"}, want: "CB"},
		{name: "skills conjunctive", params: JobListParams{Skills: "python,sql"}, want: "A"},
		{name: "skills case insensitive", params: JobListParams{Skills: " SQL "}, want: "CA"},
		{name: "skills blank terms ignored", params: JobListParams{Skills: ",,"}, want: "DCBA"},
		{name: "all filters", params: JobListParams{Location: "JAKARTA", JobType: "internship", ExperienceLevel: "fresher", Skills: "go"}, want: "C"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			items, err := uc.ListJobs(context.Background(), tc.params)
			if err != nil {
				t.Fatalf("unexpected err: %v", err)
			}
			var got strings.Builder
			for _, j := range items {
				got.WriteString(j.Title)
			}
			if got.String() != tc.want {
				t.Fatalf("got %q, want %q", got.String(), tc.want)
			}
		})
	}
}

func TestJobs_ListJobs_StoreFailure(t *testing.T) {
	store := newMemStore()
	store.listErr = errors.New("connection reset")
	uc := NewJobUsecase(store, nil, nil)

	if _, err := uc.ListJobs(context.Background(), JobListParams{}); !errors.Is(err, ErrInternal) {
		t.Fatalf("expected ErrInternal, got %v", err)
	}
}

func TestJobs_ListJobs_CachedUntilWrite(t *testing.T) {
	store := newMemStore()
	cache := newFakeCache()
	e1 := store.addEmployer("e1@acme.io", "Acme")
	uc := NewJobUsecase(store, cache, nil)
	j1 := mustCreateJob(t, uc, e1, validJobInput("Backend Engineer"))

	for i := 0; i < 3; i++ {
		items, err := uc.ListJobs(context.Background(), JobListParams{Location: "jakarta"})
		if err != nil || len(items) != 1 {
			t.Fatalf("list #%d: items=%d err=%v", i+1, len(items), err)
		}
	}
	if store.listCalls != 1 {
		t.Fatalf("expected one store read, got %d", store.listCalls)
	}
	if cache.hits != 2 {
		t.Fatalf("expected two cache hits, got %d", cache.hits)
	}

	if err := uc.DeactivateJob(context.Background(), e1, j1.ID); err != nil {
		t.Fatalf("deactivate: %v", err)
	}
	if len(cache.keys()) != 0 {
		t.Fatalf("stale listings must be dropped, got %v", cache.keys())
	}

	items, err := uc.ListJobs(context.Background(), JobListParams{Location: "jakarta"})
	if err != nil {
		t.Fatalf("list after write: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("write must be visible to the next listing, got %d items", len(items))
	}
	if store.listCalls != 2 {
		t.Fatalf("expected a fresh store read after the write, got %d", store.listCalls)
	}
}

func TestJobs_ListJobs_CacheUnavailable(t *testing.T) {
	store := newMemStore()
	cache := newFakeCache()
	cache.down = true
	e1 := store.addEmployer("e1@acme.io", "Acme")
	uc := NewJobUsecase(store, cache, nil)
	mustCreateJob(t, uc, e1, validJobInput("Backend Engineer"))

	for i := 0; i < 2; i++ {
		items, err := uc.ListJobs(context.Background(), JobListParams{})
		if err != nil || len(items) != 1 {
			t.Fatalf("list must bypass a down cache: items=%d err=%v", len(items), err)
		}
	}
	if store.listCalls != 2 {
		t.Fatalf("expected every listing to hit the store, got %d", store.listCalls)
	}
}

func TestJobListCacheKey(t *testing.T) {
	a := JobListCacheKey(3, job.ListFilter{Location: "Jakarta", Skills: []string{"Go"}})
	b := JobListCacheKey(3, job.ListFilter{Location: "jakarta", Skills: []string{"go"}})
	if a != b {
		t.Fatalf("case-insensitive filters must share a key")
	}
	if !strings.HasPrefix(a, "jobs:list:3:") {
		t.Fatalf("unexpected key %q", a)
	}
	if JobListCacheKey(4, job.ListFilter{Location: "jakarta", Skills: []string{"go"}}) == b {
		t.Fatalf("generation must be part of the key")
	}
	if JobListCacheKey(3, job.ListFilter{JobType: "full-time"}) == JobListCacheKey(3, job.ListFilter{ExperienceLevel: "full-time"}) {
		t.Fatalf("different filter fields must not collide")
	}
}

func TestJobs_ExpireJobs(t *testing.T) {
	store := newMemStore()
	cache := newFakeCache()
	e1 := store.addEmployer("e1@acme.io", "Acme")
	uc := NewJobUsecase(store, cache, nil)

	past := validJobInput("Past")
	past.ApplicationDeadline = "2026-03-09"
	today := validJobInput("Today")
	today.ApplicationDeadline = "2026-03-10"
	open := validJobInput("Open")

	expired := mustCreateJob(t, uc, e1, past)
	mustCreateJob(t, uc, e1, today)
	mustCreateJob(t, uc, e1, open)

	if _, err := uc.ListJobs(context.Background(), JobListParams{}); err != nil {
		t.Fatalf("warm cache: %v", err)
	}

	now := time.Date(2026, 3, 10, 23, 0, 0, 0, time.UTC)
	n, err := uc.ExpireJobs(context.Background(), now)
	if err != nil {
		t.Fatalf("expire: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected 1 expired job, got %d", n)
	}
	got, _ := uc.GetJob(context.Background(), expired.ID)
	if got.IsActive {
		t.Fatalf("expired job must be inactive")
	}

	items, _ := uc.ListJobs(context.Background(), JobListParams{})
	if len(items) != 2 {
		t.Fatalf("expected 2 active jobs after sweep, got %d", len(items))
	}

	n, err = uc.ExpireJobs(context.Background(), now)
	if err != nil || n != 0 {
		t.Fatalf("second sweep must be a no-op, n=%d err=%v", n, err)
	}
}
