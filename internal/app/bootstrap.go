package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"job-board/internal/config"
	"job-board/internal/delivery/http/middleware"
	"job-board/internal/ws"

	"github.com/gofiber/fiber/v3"
	"golang.org/x/sync/errgroup"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

func New(c *Container) *App {
	f := fiber.New(fiber.Config{AppName: c.Config.App.AppName})

	registerGlobalMiddleware(f, c)
	c.Registry.Register(f)

	return &App{Fiber: f, Container: c}
}

func Bootstrap(cfg config.Config) (*App, func() error, error) {
	c, err := NewContainer(cfg)
	if err != nil {
		return nil, nil, err
	}
	return New(c), c.Close, nil
}

// The access log sits outside the error middleware so it sees the error
// returned by the chain and logs the status the client receives.
func registerGlobalMiddleware(app *fiber.App, c *Container) {
	app.Use(middleware.NewAccessLogMiddleware(c.Logger).Middleware())
	app.Use(middleware.NewErrorMiddleware(c.Logger).Middleware())
}

// Run serves HTTP together with the realtime hub, the cross-instance event
// relay and the expiry sweeper until ctx is cancelled or one of them fails.
func (a *App) Run(ctx context.Context, addr string, shutdownTimeout time.Duration) error {
	c := a.Container
	g, gctx := errgroup.WithContext(ctx)

	if c.Sweeper != nil {
		if err := c.Sweeper.Start(gctx); err != nil {
			return err
		}
		g.Go(func() error {
			<-gctx.Done()
			c.Sweeper.Stop()
			return nil
		})
	}

	g.Go(func() error {
		c.Hub.Run(gctx)
		return nil
	})

	if c.Cache != nil {
		g.Go(func() error {
			err := ws.Relay(gctx, c.Cache, c.Config.Redis.EventsChannel, c.Hub)
			if err != nil && !errors.Is(err, context.Canceled) {
				return fmt.Errorf("event relay: %w", err)
			}
			return nil
		})
	}

	g.Go(func() error {
		return a.Fiber.Listen(addr, fiber.ListenConfig{DisableStartupMessage: true})
	})

	g.Go(func() error {
		<-gctx.Done()
		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return a.Fiber.ShutdownWithContext(sctx)
	})

	return g.Wait()
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
