package access

import (
	"job-board/internal/domain/user"

	"github.com/google/uuid"
)

// Actor is the authenticated identity behind a request. It is always built
// server side from the token subject and the store, never from request bodies.
type Actor struct {
	UserID uuid.UUID
	Email  string
	Role   user.Role

	seeker   *user.SeekerProfile
	employer *user.EmployerProfile
}

func NewActor(u user.User, seeker *user.SeekerProfile, employer *user.EmployerProfile) Actor {
	return Actor{
		UserID:   u.ID,
		Email:    u.Email,
		Role:     u.Role,
		seeker:   seeker,
		employer: employer,
	}
}

func (a Actor) SeekerProfile() (user.SeekerProfile, bool) {
	if a.seeker == nil {
		return user.SeekerProfile{}, false
	}
	return *a.seeker, true
}

func (a Actor) EmployerProfile() (user.EmployerProfile, bool) {
	if a.employer == nil {
		return user.EmployerProfile{}, false
	}
	return *a.employer, true
}

func (a Actor) CompanyID() (uuid.UUID, bool) {
	if a.employer == nil {
		return uuid.Nil, false
	}
	return a.employer.CompanyID, true
}
