// Package job runs the periodic background work of the backend, currently
// the hourly external-news ingestion.
package job

import (
	"context"
	"sync"
	"time"

	"khabar/utils/logger"
)

// Job is one periodic task. Fn runs under a context bounded by Timeout.
type Job struct {
	Name     string
	Interval time.Duration
	Timeout  time.Duration
	Fn       func(ctx context.Context) error
}

// JobScheduler runs registered jobs on their intervals until the parent
// context is cancelled. Each job also runs once immediately on Start, so a
// fresh deployment does not wait a full interval for its first ingestion.
type JobScheduler struct {
	jobs []Job
	wg   sync.WaitGroup
}

func NewJobScheduler() *JobScheduler {
	return &JobScheduler{}
}

// Add registers a job. Call before Start.
func (s *JobScheduler) Add(j Job) {
	s.jobs = append(s.jobs, j)
}

// Start launches every registered job in its own goroutine.
func (s *JobScheduler) Start(ctx context.Context) {
	for _, j := range s.jobs {
		s.wg.Add(1)
		go func(j Job) {
			defer s.wg.Done()
			s.loop(ctx, j)
		}(j)
	}
}

func (s *JobScheduler) loop(ctx context.Context, j Job) {
	s.runOnce(ctx, j)

	ticker := time.NewTicker(j.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Logger.Info("job stopping", "job", j.Name)
			return
		case <-ticker.C:
			s.runOnce(ctx, j)
		}
	}
}

func (s *JobScheduler) runOnce(ctx context.Context, j Job) {
	if ctx.Err() != nil {
		return
	}

	jobCtx, cancel := context.WithTimeout(ctx, j.Timeout)
	defer cancel()

	started := time.Now()
	if err := j.Fn(jobCtx); err != nil {
		logger.Logger.ErrorContext(ctx, "job failed", "job", j.Name, "error", err, "elapsed", time.Since(started))
		return
	}
	logger.Logger.InfoContext(ctx, "job finished", "job", j.Name, "elapsed", time.Since(started))
}

// Shutdown blocks until every job goroutine has returned. Cancel the context
// passed to Start first.
func (s *JobScheduler) Shutdown() {
	s.wg.Wait()
}
