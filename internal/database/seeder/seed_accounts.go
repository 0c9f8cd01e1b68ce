package seeder

import (
	"context"
	"time"

	"job-board/internal/domain/job"
	"job-board/internal/domain/user"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// DemoPassword is the password of every seeded account.
const DemoPassword = "password123"

type demoJob struct {
	Title        string
	Location     string
	LocationType job.LocationType
	JobType      job.Type
	Experience   string
	Skills       string
	SalaryMin    int
	SalaryMax    int
}

type demoEmployer struct {
	Email    string
	Company  string
	Position string
	Jobs     []demoJob
}

var demoEmployers = []demoEmployer{
	{
		Email:    "hiring@cloudkita.test",
		Company:  "CloudKita",
		Position: "Engineering Manager",
		Jobs: []demoJob{
			{Title: "Backend Engineer (Go)", Location: "Jakarta, ID", LocationType: job.LocationHybrid, JobType: job.TypeFullTime, Experience: "experienced", Skills: "Go, PostgreSQL, Redis", SalaryMin: 15000000, SalaryMax: 25000000},
			{Title: "DevOps Intern", Location: "Remote", LocationType: job.LocationRemote, JobType: job.TypeInternship, Experience: "fresher", Skills: "Docker, Kubernetes, Linux", SalaryMin: 3000000, SalaryMax: 5000000},
		},
	},
	{
		Email:    "talent@insightworks.test",
		Company:  "InsightWorks",
		Position: "Talent Partner",
		Jobs: []demoJob{
			{Title: "Data Engineer", Location: "Surabaya, ID", LocationType: job.LocationOnsite, JobType: job.TypeFullTime, Experience: "experienced", Skills: "Python, SQL, Airflow", SalaryMin: 12000000, SalaryMax: 20000000},
			{Title: "Part-time Data Analyst", Location: "Bandung, ID", LocationType: job.LocationHybrid, JobType: job.TypePartTime, Experience: "fresher", Skills: "SQL, Excel", SalaryMin: 4000000, SalaryMax: 6000000},
		},
	},
}

var demoSeekers = []struct {
	Email      string
	Experience user.ExperienceLevel
	Skills     string
}{
	{Email: "fresh.grad@mail.test", Experience: user.ExperienceFresher, Skills: "Python, SQL"},
	{Email: "senior.dev@mail.test", Experience: user.ExperienceExperienced, Skills: "Go, PostgreSQL, Kubernetes"},
}

// EmployersSeeder creates demo companies, their employers and open jobs.
// Accounts that already exist are left untouched together with their jobs.
type EmployersSeeder struct{}

func (EmployersSeeder) Name() string { return "employers" }

func (EmployersSeeder) Run(ctx context.Context, s Store) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(DemoPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	for _, de := range demoEmployers {
		exists, err := s.Users.ExistsByEmail(ctx, de.Email)
		if err != nil {
			return err
		}
		if exists {
			continue
		}

		now := time.Now().UTC()
		u := newUser(de.Email, string(hash), user.RoleEmployer, now)
		ep, err := s.Users.CreateEmployer(ctx, u, de.Company, user.EmployerProfile{
			ID:        uuid.New(),
			UserID:    u.ID,
			Position:  de.Position,
			CreatedAt: now,
			UpdatedAt: now,
		})
		if err != nil {
			return err
		}

		for i, dj := range de.Jobs {
			posted := now.Add(-time.Duration(len(de.Jobs)-i) * time.Hour)
			deadline := job.Day(now.AddDate(0, 1, 0))
			salaryMin, salaryMax := dj.SalaryMin, dj.SalaryMax
			err := s.Jobs.CreateJob(ctx, job.Job{
				ID:                  uuid.New(),
				CompanyID:           ep.CompanyID,
				PostedBy:            u.ID,
				Title:               dj.Title,
				Description:         dj.Title + " at " + de.Company + ".",
				Requirements:        "Skills: " + dj.Skills,
				Location:            dj.Location,
				LocationType:        dj.LocationType,
				SalaryMin:           &salaryMin,
				SalaryMax:           &salaryMax,
				ExperienceRequired:  dj.Experience,
				JobType:             dj.JobType,
				IsActive:            true,
				PostedAt:            posted,
				ApplicationDeadline: &deadline,
				SkillsRequired:      dj.Skills,
				UpdatedAt:           posted,
			})
			if err != nil {
				return err
			}
		}
	}
	return nil
}

type SeekersSeeder struct{}

func (SeekersSeeder) Name() string { return "seekers" }

func (SeekersSeeder) Run(ctx context.Context, s Store) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(DemoPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	for _, ds := range demoSeekers {
		exists, err := s.Users.ExistsByEmail(ctx, ds.Email)
		if err != nil {
			return err
		}
		if exists {
			continue
		}

		now := time.Now().UTC()
		u := newUser(ds.Email, string(hash), user.RoleJobSeeker, now)
		err = s.Users.CreateJobSeeker(ctx, u, user.SeekerProfile{
			ID:              uuid.New(),
			UserID:          u.ID,
			ExperienceLevel: ds.Experience,
			Skills:          ds.Skills,
			CreatedAt:       now,
			UpdatedAt:       now,
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func newUser(email, hash string, role user.Role, now time.Time) user.User {
	return user.User{
		ID:               uuid.New(),
		Email:            email,
		PasswordHash:     hash,
		Role:             role,
		ProfileCompleted: true,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}
