package job

import (
	"context"
	"os"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"khabar/utils/logger"
)

func TestMain(m *testing.M) {
	logger.InitLogger()
	os.Exit(m.Run())
}

func newCountingJob(name string, interval time.Duration, count *atomic.Int32) Job {
	return Job{
		Name:     name,
		Interval: interval,
		Timeout:  time.Second,
		Fn: func(ctx context.Context) error {
			count.Add(1)
			return nil
		},
	}
}

func TestJobSchedulerRunsImmediatelyOnStart(t *testing.T) {
	var count atomic.Int32

	scheduler := NewJobScheduler()
	scheduler.Add(newCountingJob("news-ingestion", time.Hour, &count))

	ctx, cancel := context.WithCancel(context.Background())
	scheduler.Start(ctx)

	time.Sleep(50 * time.Millisecond)
	cancel()
	scheduler.Shutdown()

	assert.GreaterOrEqual(t, count.Load(), int32(1), "job should run once on start, not wait a full interval")
}

func TestJobSchedulerStopsOnCancel(t *testing.T) {
	var count atomic.Int32

	scheduler := NewJobScheduler()
	scheduler.Add(newCountingJob("news-ingestion", 10*time.Millisecond, &count))

	ctx, cancel := context.WithCancel(context.Background())
	scheduler.Start(ctx)

	time.Sleep(50 * time.Millisecond)
	cancel()
	scheduler.Shutdown()

	after := count.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, after, count.Load(), "job kept ticking after shutdown")
}

func TestJobSchedulerEnforcesTimeout(t *testing.T) {
	var timedOut atomic.Bool

	scheduler := NewJobScheduler()
	scheduler.Add(Job{
		Name:     "slow-ingestion",
		Interval: time.Hour,
		Timeout:  50 * time.Millisecond,
		Fn: func(ctx context.Context) error {
			select {
			case <-ctx.Done():
				timedOut.Store(true)
				return ctx.Err()
			case <-time.After(5 * time.Second):
				return nil
			}
		},
	})

	ctx, cancel := context.WithCancel(context.Background())
	scheduler.Start(ctx)

	time.Sleep(200 * time.Millisecond)
	cancel()
	scheduler.Shutdown()

	assert.True(t, timedOut.Load(), "job context should be cut off at the configured timeout")
}

func TestJobSchedulerShutdownWaitsForRunningJob(t *testing.T) {
	var completed atomic.Bool

	scheduler := NewJobScheduler()
	scheduler.Add(Job{
		Name:     "news-ingestion",
		Interval: time.Hour,
		Timeout:  time.Second,
		Fn: func(ctx context.Context) error {
			time.Sleep(50 * time.Millisecond)
			completed.Store(true)
			return nil
		},
	})

	ctx, cancel := context.WithCancel(context.Background())
	scheduler.Start(ctx)

	time.Sleep(10 * time.Millisecond)
	cancel()
	scheduler.Shutdown()

	assert.True(t, completed.Load(), "shutdown returned before the in-flight run finished")
}

func TestJobSchedulerRunsJobsIndependently(t *testing.T) {
	var countA, countB atomic.Int32

	scheduler := NewJobScheduler()
	scheduler.Add(newCountingJob("job-a", 10*time.Millisecond, &countA))
	scheduler.Add(newCountingJob("job-b", 10*time.Millisecond, &countB))

	ctx, cancel := context.WithCancel(context.Background())
	scheduler.Start(ctx)

	time.Sleep(50 * time.Millisecond)
	cancel()
	scheduler.Shutdown()

	assert.GreaterOrEqual(t, countA.Load(), int32(1))
	assert.GreaterOrEqual(t, countB.Load(), int32(1))
}
