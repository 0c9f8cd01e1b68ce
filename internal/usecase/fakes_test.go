package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"job-board/internal/domain/access"
	"job-board/internal/domain/application"
	"job-board/internal/domain/event"
	"job-board/internal/domain/interview"
	"job-board/internal/domain/job"
	"job-board/internal/domain/user"

	"github.com/google/uuid"
)

// memStore is an in-memory implementation of every repository the usecases
// depend on. Reads hydrate related records the way the SQL stores do.
type memStore struct {
	mu sync.Mutex

	users      map[uuid.UUID]user.User
	seekers    map[uuid.UUID]user.SeekerProfile
	employers  map[uuid.UUID]user.EmployerProfile
	companies  map[uuid.UUID]user.Company
	jobs       map[uuid.UUID]job.Job
	apps       map[uuid.UUID]application.Application
	interviews map[uuid.UUID]interview.Interview

	listErr   error
	listCalls int
}

func newMemStore() *memStore {
	return &memStore{
		users:      map[uuid.UUID]user.User{},
		seekers:    map[uuid.UUID]user.SeekerProfile{},
		employers:  map[uuid.UUID]user.EmployerProfile{},
		companies:  map[uuid.UUID]user.Company{},
		jobs:       map[uuid.UUID]job.Job{},
		apps:       map[uuid.UUID]application.Application{},
		interviews: map[uuid.UUID]interview.Interview{},
	}
}

func (s *memStore) ExistsByEmail(_ context.Context, email string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.userByEmail(email)
	return ok, nil
}

func (s *memStore) userByEmail(email string) (user.User, bool) {
	for _, u := range s.users {
		if u.Email == email {
			return u, true
		}
	}
	return user.User{}, false
}

func (s *memStore) GetUserByID(_ context.Context, id uuid.UUID) (user.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (s *memStore) GetUserByEmail(_ context.Context, email string) (user.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.userByEmail(email)
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (s *memStore) CreateJobSeeker(_ context.Context, u user.User, p user.SeekerProfile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.userByEmail(u.Email); ok {
		return user.ErrEmailTaken
	}
	s.users[u.ID] = u
	s.seekers[u.ID] = p
	return nil
}

func (s *memStore) CreateEmployer(_ context.Context, u user.User, companyName string, p user.EmployerProfile) (user.EmployerProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.userByEmail(u.Email); ok {
		return user.EmployerProfile{}, user.ErrEmailTaken
	}

	var company user.Company
	found := false
	for _, c := range s.companies {
		if c.Name == companyName {
			company, found = c, true
			break
		}
	}
	if !found {
		company = user.Company{ID: uuid.New(), Name: companyName, CreatedAt: u.CreatedAt}
		s.companies[company.ID] = company
	}

	p.CompanyID = company.ID
	p.Company = company
	s.users[u.ID] = u
	s.employers[u.ID] = p
	return p, nil
}

func (s *memStore) GetSeekerProfileByUserID(_ context.Context, userID uuid.UUID) (user.SeekerProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.seekers[userID]
	if !ok {
		return user.SeekerProfile{}, user.ErrProfileNotFound
	}
	return p, nil
}

func (s *memStore) GetEmployerProfileByUserID(_ context.Context, userID uuid.UUID) (user.EmployerProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.employers[userID]
	if !ok {
		return user.EmployerProfile{}, user.ErrProfileNotFound
	}
	p.Company = s.companies[p.CompanyID]
	return p, nil
}

func (s *memStore) UpdateSeekerProfile(_ context.Context, p user.SeekerProfile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.seekers[p.UserID]; !ok {
		return user.ErrProfileNotFound
	}
	s.seekers[p.UserID] = p
	return nil
}

func (s *memStore) UpdateEmployerProfile(_ context.Context, p user.EmployerProfile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.employers[p.UserID]; !ok {
		return user.ErrProfileNotFound
	}
	s.employers[p.UserID] = p
	return nil
}

func (s *memStore) ListCompanies(context.Context) ([]user.Company, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]user.Company, 0, len(s.companies))
	for _, c := range s.companies {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *memStore) GetCompanyByID(_ context.Context, id uuid.UUID) (user.Company, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.companies[id]
	if !ok {
		return user.Company{}, user.ErrCompanyNotFound
	}
	return c, nil
}

func (s *memStore) CreateJob(_ context.Context, j job.Job) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	j.Company = user.Company{}
	s.jobs[j.ID] = j
	return nil
}

func (s *memStore) GetJobByID(_ context.Context, id uuid.UUID) (job.Job, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	j, ok := s.jobs[id]
	if !ok {
		return job.Job{}, job.ErrNotFound
	}
	return s.hydrateJob(j), nil
}

func (s *memStore) hydrateJob(j job.Job) job.Job {
	j.Company = s.companies[j.CompanyID]
	return j
}

func (s *memStore) UpdateJob(_ context.Context, j job.Job) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cur, ok := s.jobs[j.ID]
	if !ok {
		return job.ErrNotFound
	}
	j.CompanyID = cur.CompanyID
	j.PostedBy = cur.PostedBy
	j.PostedAt = cur.PostedAt
	j.IsActive = cur.IsActive
	j.Company = user.Company{}
	s.jobs[j.ID] = j
	return nil
}

func (s *memStore) SetJobActive(_ context.Context, id uuid.UUID, active bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	j, ok := s.jobs[id]
	if !ok {
		return job.ErrNotFound
	}
	j.IsActive = active
	s.jobs[id] = j
	return nil
}

func (s *memStore) ListActiveJobs(_ context.Context, f job.ListFilter) ([]job.Job, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listCalls++
	if s.listErr != nil {
		return nil, s.listErr
	}
	out := []job.Job{}
	for _, j := range s.jobs {
		if j.IsActive && f.Matches(j) {
			out = append(out, s.hydrateJob(j))
		}
	}
	sort.Slice(out, func(a, b int) bool {
		if !out[a].PostedAt.Equal(out[b].PostedAt) {
			return out[a].PostedAt.After(out[b].PostedAt)
		}
		return out[a].ID.String() < out[b].ID.String()
	})
	return out, nil
}

func (s *memStore) DeactivateExpired(_ context.Context, day time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var n int64
	for id, j := range s.jobs {
		if j.IsActive && j.ExpiredAt(day) {
			j.IsActive = false
			s.jobs[id] = j
			n++
		}
	}
	return n, nil
}

func (s *memStore) CreateApplication(_ context.Context, a application.Application) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, cur := range s.apps {
		if cur.JobID == a.JobID && cur.SeekerID == a.SeekerID {
			return application.ErrDuplicate
		}
	}
	if a.UpdatedAt.IsZero() {
		a.UpdatedAt = a.AppliedDate
	}
	s.apps[a.ID] = a
	return nil
}

func (s *memStore) ExistsForJobAndSeeker(_ context.Context, jobID, seekerID uuid.UUID) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range s.apps {
		if a.JobID == jobID && a.SeekerID == seekerID {
			return true, nil
		}
	}
	return false, nil
}

func (s *memStore) GetApplicationByID(_ context.Context, id uuid.UUID) (application.Application, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.apps[id]
	if !ok {
		return application.Application{}, application.ErrNotFound
	}
	return s.hydrateApplication(a), nil
}

func (s *memStore) hydrateApplication(a application.Application) application.Application {
	a.Job = s.hydrateJob(s.jobs[a.JobID])
	for userID, p := range s.seekers {
		if p.ID == a.SeekerID {
			a.SeekerUserID = userID
			a.SeekerEmail = s.users[userID].Email
		}
	}
	return a
}

func (s *memStore) ListApplicationsBySeeker(_ context.Context, seekerID uuid.UUID) ([]application.Application, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []application.Application{}
	for _, a := range s.apps {
		if a.SeekerID == seekerID {
			out = append(out, s.hydrateApplication(a))
		}
	}
	sortApplications(out)
	return out, nil
}

func (s *memStore) ListApplicationsByCompany(_ context.Context, companyID uuid.UUID) ([]application.Application, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []application.Application{}
	for _, a := range s.apps {
		if s.jobs[a.JobID].CompanyID == companyID {
			out = append(out, s.hydrateApplication(a))
		}
	}
	sortApplications(out)
	return out, nil
}

func sortApplications(items []application.Application) {
	sort.Slice(items, func(i, j int) bool {
		if !items[i].AppliedDate.Equal(items[j].AppliedDate) {
			return items[i].AppliedDate.After(items[j].AppliedDate)
		}
		return items[i].ID.String() < items[j].ID.String()
	})
}

func (s *memStore) UpdateApplicationStatus(_ context.Context, id uuid.UUID, status application.Status) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.apps[id]
	if !ok {
		return application.ErrNotFound
	}
	a.Status = status
	s.apps[id] = a
	return nil
}

func (s *memStore) CreateInterview(_ context.Context, iv interview.Interview) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.interviews[iv.ID] = iv
	return nil
}

func (s *memStore) GetInterviewByID(_ context.Context, id uuid.UUID) (interview.Interview, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	iv, ok := s.interviews[id]
	if !ok {
		return interview.Interview{}, interview.ErrNotFound
	}
	iv.Application = s.hydrateApplication(s.apps[iv.ApplicationID])
	return iv, nil
}

func (s *memStore) ListInterviewsBySeeker(_ context.Context, seekerID uuid.UUID) ([]interview.Interview, error) {
	return s.listInterviews(func(a application.Application) bool { return a.SeekerID == seekerID })
}

func (s *memStore) ListInterviewsByCompany(_ context.Context, companyID uuid.UUID) ([]interview.Interview, error) {
	return s.listInterviews(func(a application.Application) bool { return a.Job.CompanyID == companyID })
}

func (s *memStore) listInterviews(keep func(application.Application) bool) ([]interview.Interview, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []interview.Interview{}
	for _, iv := range s.interviews {
		iv.Application = s.hydrateApplication(s.apps[iv.ApplicationID])
		if keep(iv.Application) {
			out = append(out, iv)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Schedule.Before(out[j].Schedule) })
	return out, nil
}

// addSeeker stores a job seeker and returns the actor the resolver would build.
func (s *memStore) addSeeker(email string) access.Actor {
	now := time.Now().UTC()
	u := user.User{ID: uuid.New(), Email: email, Role: user.RoleJobSeeker, ProfileCompleted: true, CreatedAt: now, UpdatedAt: now}
	p := user.SeekerProfile{ID: uuid.New(), UserID: u.ID, ExperienceLevel: user.ExperienceFresher, CreatedAt: now, UpdatedAt: now}
	if err := s.CreateJobSeeker(context.Background(), u, p); err != nil {
		panic(err)
	}
	return access.NewActor(u, &p, nil)
}

// addEmployer stores an employer of companyName, creating the company on first use.
func (s *memStore) addEmployer(email, companyName string) access.Actor {
	now := time.Now().UTC()
	u := user.User{ID: uuid.New(), Email: email, Role: user.RoleEmployer, ProfileCompleted: true, CreatedAt: now, UpdatedAt: now}
	p, err := s.CreateEmployer(context.Background(), u, companyName, user.EmployerProfile{ID: uuid.New(), UserID: u.ID, Position: "Recruiter", CreatedAt: now, UpdatedAt: now})
	if err != nil {
		panic(err)
	}
	return access.NewActor(u, nil, &p)
}

// fakeCache mimics the Redis cache. With down set every call fails the way
// an unreachable server does.
type fakeCache struct {
	mu      sync.Mutex
	entries map[string][]byte
	gens    map[string]int64
	down    bool
	hits    int
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: map[string][]byte{}, gens: map[string]int64{}}
}

var errCacheDown = errors.New("cache unavailable")

func (c *fakeCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.down {
		return false, errCacheDown
	}
	b, ok := c.entries[key]
	if !ok {
		return false, nil
	}
	c.hits++
	return true, json.Unmarshal(b, out)
}

func (c *fakeCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.down {
		return errCacheDown
	}
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.entries[key] = b
	return nil
}

func (c *fakeCache) Generation(_ context.Context, key string) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.down {
		return 0, errCacheDown
	}
	return c.gens[key], nil
}

func (c *fakeCache) BumpGeneration(_ context.Context, key string) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.down {
		return 0, errCacheDown
	}
	c.gens[key]++
	return c.gens[key], nil
}

func (c *fakeCache) DeleteByPattern(_ context.Context, pattern string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.down {
		return errCacheDown
	}
	prefix := strings.TrimSuffix(pattern, "*")
	for k := range c.entries {
		if strings.HasPrefix(k, prefix) {
			delete(c.entries, k)
		}
	}
	return nil
}

func (c *fakeCache) keys() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]string, 0, len(c.entries))
	for k := range c.entries {
		out = append(out, k)
	}
	return out
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []event.Event
}

func (p *recordingPublisher) Publish(_ context.Context, evt event.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, evt)
}

func (p *recordingPublisher) all() []event.Event {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]event.Event(nil), p.events...)
}

func strPtr(s string) *string { return &s }

func intPtr(v int) *int { return &v }
