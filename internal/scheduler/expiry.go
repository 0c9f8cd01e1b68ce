// Package scheduler runs the periodic job-expiry sweep.
package scheduler

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
)

// Expirer deactivates jobs whose application deadline has passed.
type Expirer interface {
	ExpireJobs(ctx context.Context, now time.Time) (int64, error)
}

type ExpirySweeper struct {
	cron    *cron.Cron
	expirer Expirer
	spec    string
	logger  *log.Logger
	now     func() time.Time
	wg      sync.WaitGroup
}

func NewExpirySweeper(expirer Expirer, spec string, logger *log.Logger) *ExpirySweeper {
	if logger == nil {
		logger = log.Default()
	}
	return &ExpirySweeper{
		cron:    cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger))),
		expirer: expirer,
		spec:    spec,
		logger:  logger,
		now:     time.Now,
	}
}

// Start registers the sweep and runs it once immediately so jobs that
// expired while the service was down are hidden right away.
func (s *ExpirySweeper) Start(ctx context.Context) error {
	if _, err := s.cron.AddFunc(s.spec, func() { s.Sweep(ctx) }); err != nil {
		return fmt.Errorf("cron.AddFunc %q: %w", s.spec, err)
	}

	s.cron.Start()
	s.logger.Printf("[Scheduler] expiry sweeper started spec=%s", s.spec)

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.Sweep(ctx)
	}()
	return nil
}

// Stop waits for running sweeps to finish, the start-up sweep included.
func (s *ExpirySweeper) Stop() {
	<-s.cron.Stop().Done()
	s.wg.Wait()
	s.logger.Printf("[Scheduler] expiry sweeper stopped")
}

func (s *ExpirySweeper) Sweep(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}
	n, err := s.expirer.ExpireJobs(ctx, s.now())
	if err != nil {
		s.logger.Printf("[Scheduler] expiry sweep failed err=%v", err)
		return
	}
	if n > 0 {
		s.logger.Printf("[Scheduler] deactivated expired jobs count=%d", n)
	}
}
