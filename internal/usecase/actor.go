package usecase

import (
	"context"
	"errors"
	"log"

	"job-board/internal/domain/access"
	"job-board/internal/domain/user"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

type ActorResolver interface {
	Resolve(ctx context.Context, userID uuid.UUID) (access.Actor, error)
}

// Actors builds an access.Actor from the store for every request.
type Actors struct {
	users    user.Repository
	profiles user.ProfileRepository
	logger   *log.Logger
}

func NewActorResolver(users user.Repository, profiles user.ProfileRepository, logger *log.Logger) *Actors {
	return &Actors{users: users, profiles: profiles, logger: logger}
}

func (a *Actors) Resolve(ctx context.Context, userID uuid.UUID) (access.Actor, error) {
	u, err := a.users.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return access.Actor{}, ErrUnauthorized
		}
		a.logf("[Actor] load user failed user_id=%s err=%v", userID, err)
		return access.Actor{}, ErrInternal
	}

	var (
		seeker   *user.SeekerProfile
		employer *user.EmployerProfile
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		p, err := a.profiles.GetSeekerProfileByUserID(gctx, u.ID)
		if errors.Is(err, user.ErrProfileNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		seeker = &p
		return nil
	})
	g.Go(func() error {
		p, err := a.profiles.GetEmployerProfileByUserID(gctx, u.ID)
		if errors.Is(err, user.ErrProfileNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		employer = &p
		return nil
	})
	if err := g.Wait(); err != nil {
		a.logf("[Actor] load profiles failed user_id=%s err=%v", userID, err)
		return access.Actor{}, ErrInternal
	}

	return access.NewActor(u, seeker, employer), nil
}

func (a *Actors) logf(format string, args ...any) {
	if a.logger != nil {
		a.logger.Printf(format, args...)
	}
}
