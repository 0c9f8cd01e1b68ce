package access

import (
	"errors"

	"job-board/internal/domain/application"
	"job-board/internal/domain/job"
	"job-board/internal/domain/user"

	"github.com/google/uuid"
)

var ErrForbidden = errors.New("forbidden")

// Decision is the outcome of a policy check. Reason is user facing.
type Decision struct {
	Allowed bool
	Reason  string
}

var allow = Decision{Allowed: true}

func deny(reason string) Decision {
	return Decision{Reason: reason}
}

// Err returns nil for an allowed decision and a *DeniedError otherwise.
func (d Decision) Err() error {
	if d.Allowed {
		return nil
	}
	return &DeniedError{Reason: d.Reason}
}

type DeniedError struct {
	Reason string
}

func (e *DeniedError) Error() string {
	return "forbidden: " + e.Reason
}

func (e *DeniedError) Unwrap() error {
	return ErrForbidden
}

const (
	ReasonEmployerOnly       = "Only employers can post jobs"
	ReasonNotJobOwner        = "You can only modify your own jobs"
	ReasonSeekerOnly         = "Only job seekers can apply"
	ReasonNotCompanyEmployer = "You can only manage applications for your company's jobs"
	ReasonInterviewerOnly    = "Only employers can schedule interviews"
	ReasonInvalidRole        = "Invalid role"
)

func CanCreateJob(a Actor) Decision {
	if _, ok := a.EmployerProfile(); !ok {
		return deny(ReasonEmployerOnly)
	}
	return allow
}

func CanModifyJob(a Actor, j job.Job) Decision {
	if j.PostedBy != a.UserID {
		return deny(ReasonNotJobOwner)
	}
	return allow
}

func CanApply(a Actor) Decision {
	if _, ok := a.SeekerProfile(); !ok {
		return deny(ReasonSeekerOnly)
	}
	return allow
}

// CanModifyApplication allows employers of the company that owns the job.
func CanModifyApplication(a Actor, app application.Application) Decision {
	companyID, ok := a.CompanyID()
	if !ok || companyID != app.Job.CompanyID {
		return deny(ReasonNotCompanyEmployer)
	}
	return allow
}

// CanScheduleInterviews is the role check done before the payload is resolved.
func CanScheduleInterviews(a Actor) Decision {
	if _, ok := a.EmployerProfile(); !ok {
		return deny(ReasonInterviewerOnly)
	}
	return allow
}

func CanScheduleInterview(a Actor, app application.Application) Decision {
	if d := CanScheduleInterviews(a); !d.Allowed {
		return d
	}
	return CanModifyApplication(a, app)
}

type ScopeKind int

const (
	// ScopeEmpty matches nothing: the actor's role has no profile yet.
	ScopeEmpty ScopeKind = iota
	ScopeSeeker
	ScopeCompany
)

// Scope restricts application and interview listings to what an actor may see.
type Scope struct {
	Kind      ScopeKind
	SeekerID  uuid.UUID
	CompanyID uuid.UUID
}

func ListingScope(a Actor) (Scope, Decision) {
	switch a.Role {
	case user.RoleJobSeeker:
		if p, ok := a.SeekerProfile(); ok {
			return Scope{Kind: ScopeSeeker, SeekerID: p.ID}, allow
		}
		return Scope{Kind: ScopeEmpty}, allow
	case user.RoleEmployer:
		if companyID, ok := a.CompanyID(); ok {
			return Scope{Kind: ScopeCompany, CompanyID: companyID}, allow
		}
		return Scope{Kind: ScopeEmpty}, allow
	}
	return Scope{}, deny(ReasonInvalidRole)
}
