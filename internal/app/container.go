package app

import (
	"context"
	"log"
	"os"
	"time"

	"job-board/internal/config"
	"job-board/internal/delivery/http/handler"
	"job-board/internal/delivery/http/middleware"
	"job-board/internal/delivery/http/routes"
	"job-board/internal/domain/event"
	"job-board/internal/infrastructure/cache"
	"job-board/internal/pkg/jwt"
	"job-board/internal/scheduler"
	"job-board/internal/usecase"
	"job-board/internal/ws"
)

type Container struct {
	Config config.Config
	Logger *log.Logger

	Store *Store
	Cache *cache.Redis
	Hub   *ws.Hub
	JWT   jwt.Service

	Jobs         *usecase.Jobs
	Applications *usecase.Applications
	Interviews   *usecase.Interviews
	Profiles     *usecase.Profiles
	Auth         *usecase.Auth
	Actors       *usecase.Actors

	Registry *routes.Registry
	Sweeper  *scheduler.ExpirySweeper
}

func NewContainer(cfg config.Config) (*Container, error) {
	logger := log.New(os.Stdout, "", log.LstdFlags)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	store, err := OpenStore(ctx, cfg.Database, logger)
	if err != nil {
		return nil, err
	}
	if cfg.Database.RunSeeders {
		if err := store.Seed(ctx, logger); err != nil {
			_ = store.Close()
			return nil, err
		}
	}

	return Wire(cfg, store, cache.NewRedis(cfg.Redis, logger), logger), nil
}

// Wire connects everything above the store. A nil or unavailable cache
// disables listing caching and keeps events on this instance.
func Wire(cfg config.Config, store *Store, redis *cache.Redis, logger *log.Logger) *Container {
	c := &Container{Config: cfg, Logger: logger, Store: store, Hub: ws.NewHub(logger)}

	var listCache usecase.JobListCache
	var events event.Publisher = c.Hub
	var cachePinger handler.Pinger
	if redis != nil && redis.Available() {
		c.Cache = redis
		listCache = redis
		cachePinger = redis
		events = ws.NewBusPublisher(redis, cfg.Redis.EventsChannel, c.Hub, logger)
	}

	c.JWT = jwt.NewHMACService(cfg.JWT.AccessSecret, cfg.JWT.RefreshSecret, cfg.JWT.AccessExpiresIn, cfg.JWT.RefreshExpiresIn)
	c.Actors = usecase.NewActorResolver(store.Users, store.Profiles, logger)

	c.Auth = usecase.NewAuthUsecase(store.Users, c.JWT)
	c.Jobs = usecase.NewJobUsecase(store.Jobs, listCache, logger)
	c.Applications = usecase.NewApplicationUsecase(store.Applications, store.Jobs, events, logger)
	c.Interviews = usecase.NewInterviewUsecase(store.Interviews, store.Applications, events, logger)
	c.Profiles = usecase.NewProfileUsecase(store.Users, store.Profiles, store.Companies, logger)

	c.Registry = &routes.Registry{
		Health:         handler.NewHealthHandler(store, cachePinger),
		Auth:           handler.NewAuthHandler(c.Auth),
		Jobs:           handler.NewJobHandler(c.Jobs),
		Applications:   handler.NewApplicationHandler(c.Applications),
		Interviews:     handler.NewInterviewHandler(c.Interviews),
		Profiles:       handler.NewProfileHandler(c.Profiles),
		Notifications:  ws.NewHandler(c.Hub, c.JWT, c.Actors, logger).HandleNotifications,
		AuthMiddleware: middleware.NewAuthMiddleware(c.JWT, c.Actors),
	}

	if cfg.Scheduler.JobExpirySchedule != "" {
		c.Sweeper = scheduler.NewExpirySweeper(c.Jobs, cfg.Scheduler.JobExpirySchedule, logger)
	}
	return c
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.Cache != nil {
		_ = c.Cache.Close()
	}
	return c.Store.Close()
}
