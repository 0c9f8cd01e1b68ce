package repository

import (
	"job-board/internal/domain/application"
	"job-board/internal/domain/interview"
	"job-board/internal/domain/job"
	"job-board/internal/domain/user"
)

const jobColumns = `j.id, j.company_id, c.name, c.industry, c.size, c.verified, c.created_at,
	j.posted_by, j.title, j.description, j.requirements, j.location, j.location_type,
	j.salary_min, j.salary_max, j.experience_required, j.job_type, j.is_active,
	j.posted_at, j.application_deadline, j.skills_required, j.updated_at`

const jobFrom = `FROM jobs j JOIN companies c ON c.id = j.company_id`

const applicationColumns = `a.id, a.job_id, a.seeker_id, a.status, a.applied_date, a.updated_at,
	sp.user_id, u.email, ` + jobColumns

const applicationFrom = `FROM applications a
	JOIN jobs j ON j.id = a.job_id
	JOIN companies c ON c.id = j.company_id
	JOIN job_seeker_profiles sp ON sp.id = a.seeker_id
	JOIN users u ON u.id = sp.user_id`

const interviewColumns = `iv.id, iv.application_id, iv.interviewer_id, iv.schedule, iv.feedback, iv.created_at, ` + applicationColumns

const interviewFrom = `FROM interviews iv
	JOIN applications a ON a.id = iv.application_id
	JOIN jobs j ON j.id = a.job_id
	JOIN companies c ON c.id = j.company_id
	JOIN job_seeker_profiles sp ON sp.id = a.seeker_id
	JOIN users u ON u.id = sp.user_id`

// Enum columns are scanned as plain strings and converted afterwards.
type jobScan struct {
	j            job.Job
	locationType string
	jobType      string
}

func (s *jobScan) dest() []any {
	return []any{
		&s.j.ID, &s.j.CompanyID, &s.j.Company.Name, &s.j.Company.Industry, &s.j.Company.Size,
		&s.j.Company.Verified, &s.j.Company.CreatedAt,
		&s.j.PostedBy, &s.j.Title, &s.j.Description, &s.j.Requirements, &s.j.Location, &s.locationType,
		&s.j.SalaryMin, &s.j.SalaryMax, &s.j.ExperienceRequired, &s.jobType, &s.j.IsActive,
		&s.j.PostedAt, &s.j.ApplicationDeadline, &s.j.SkillsRequired, &s.j.UpdatedAt,
	}
}

func (s *jobScan) result() job.Job {
	out := s.j
	out.Company.ID = out.CompanyID
	out.LocationType = job.LocationType(s.locationType)
	out.JobType = job.Type(s.jobType)
	return out
}

type applicationScan struct {
	a      application.Application
	status string
	job    jobScan
}

func (s *applicationScan) dest() []any {
	d := []any{&s.a.ID, &s.a.JobID, &s.a.SeekerID, &s.status, &s.a.AppliedDate, &s.a.UpdatedAt, &s.a.SeekerUserID, &s.a.SeekerEmail}
	return append(d, s.job.dest()...)
}

func (s *applicationScan) result() application.Application {
	out := s.a
	out.Status = application.Status(s.status)
	out.Job = s.job.result()
	return out
}

type interviewScan struct {
	iv  interview.Interview
	app applicationScan
}

func (s *interviewScan) dest() []any {
	d := []any{&s.iv.ID, &s.iv.ApplicationID, &s.iv.InterviewerID, &s.iv.Schedule, &s.iv.Feedback, &s.iv.CreatedAt}
	return append(d, s.app.dest()...)
}

func (s *interviewScan) result() interview.Interview {
	out := s.iv
	out.Application = s.app.result()
	return out
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (user.User, error) {
	var u user.User
	var role string
	if err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &role, &u.ProfileCompleted, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return user.User{}, err
	}
	u.Role = user.Role(role)
	return u, nil
}

func scanCompany(row rowScanner) (user.Company, error) {
	var c user.Company
	err := row.Scan(&c.ID, &c.Name, &c.Industry, &c.Size, &c.Verified, &c.CreatedAt)
	return c, err
}
