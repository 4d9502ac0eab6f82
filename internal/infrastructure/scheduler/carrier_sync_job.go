package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
)

// CarrierSyncJobName identifies carrier list downloads in logs and job status
const CarrierSyncJobName = "carrier-sync"

// CarrierSyncJob downloads the carrier list on a fixed interval.
// A failed run is retried with exponential backoff; a run that still
// fails waits for the next tick.
type CarrierSyncJob struct {
	config   SchedulerConfig
	executor JobExecutor
	logger   *zap.Logger

	cancel    context.CancelFunc
	wg        sync.WaitGroup
	mu        sync.Mutex
	isRunning bool
	inFlight  bool
	lastJob   *Job

	// wait is replaced in tests to skip real backoff sleeps
	wait func(ctx context.Context, d time.Duration) error
}

// NewCarrierSyncJob creates the carrier sync job
func NewCarrierSyncJob(config SchedulerConfig, executor JobExecutor, logger *zap.Logger) (*CarrierSyncJob, error) {
	if executor == nil {
		return nil, fmt.Errorf("%w: executor is required", ErrInvalidConfig)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &CarrierSyncJob{
		config:   config,
		executor: executor,
		logger:   logger,
		wait:     sleepContext,
	}, nil
}

// Start starts the interval loop. It is a no-op when the scheduler is disabled.
func (s *CarrierSyncJob) Start(ctx context.Context) error {
	if !s.config.Enabled {
		s.logger.Info("Carrier sync scheduler disabled")
		return nil
	}

	s.mu.Lock()
	if s.isRunning {
		s.mu.Unlock()
		return nil
	}
	s.isRunning = true
	s.mu.Unlock()

	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel

	s.wg.Add(1)
	go s.runLoop(ctx)

	s.logger.Info("Carrier sync scheduler started",
		zap.Duration("interval", s.config.Interval),
		zap.Duration("job_timeout", s.config.JobTimeout),
		zap.Int("retry_attempts", s.config.RetryAttempts),
		zap.Bool("run_on_start", s.config.RunOnStart),
	)

	return nil
}

// Stop stops the loop and waits for a running job to finish
func (s *CarrierSyncJob) Stop(ctx context.Context) error {
	s.mu.Lock()
	if !s.isRunning {
		s.mu.Unlock()
		return nil
	}
	s.isRunning = false
	s.mu.Unlock()

	if s.cancel != nil {
		s.cancel()
	}

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		s.logger.Info("Carrier sync scheduler stopped")
		return nil
	case <-ctx.Done():
		s.logger.Warn("Carrier sync scheduler stop timed out")
		return ctx.Err()
	}
}

// IsRunning reports whether the interval loop is active
func (s *CarrierSyncJob) IsRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.isRunning
}

// LastJob returns a copy of the most recent run, nil before the first one
func (s *CarrierSyncJob) LastJob() *Job {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.lastJob == nil {
		return nil
	}
	job := *s.lastJob
	return &job
}

func (s *CarrierSyncJob) runLoop(ctx context.Context) {
	defer s.wg.Done()

	if s.config.RunOnStart {
		s.runLogged(ctx)
	}

	ticker := time.NewTicker(s.config.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.runLogged(ctx)
		}
	}
}

func (s *CarrierSyncJob) runLogged(ctx context.Context) {
	if _, err := s.RunNow(ctx); err != nil && ctx.Err() == nil {
		s.logger.Error("Scheduled carrier sync failed", zap.Error(err))
	}
}

// RunNow runs the job immediately, retrying failures with backoff.
// Concurrent calls are rejected with ErrJobAlreadyRunning.
func (s *CarrierSyncJob) RunNow(ctx context.Context) (*Job, error) {
	s.mu.Lock()
	if s.inFlight {
		s.mu.Unlock()
		return nil, ErrJobAlreadyRunning
	}
	s.inFlight = true
	job := NewJob(CarrierSyncJobName, s.config.RetryAttempts)
	s.lastJob = job
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.inFlight = false
		s.mu.Unlock()
	}()

	for {
		s.mu.Lock()
		job.Start()
		s.mu.Unlock()

		err := s.execute(ctx, job)

		s.mu.Lock()
		if err == nil {
			job.Complete()
			s.mu.Unlock()
			s.logger.Info("Carrier sync completed",
				zap.String("job_id", job.ID.String()),
				zap.Int("retry_count", job.RetryCount),
			)
			return s.LastJob(), nil
		}

		job.Fail(err.Error())
		if !job.ShouldRetry() || ctx.Err() != nil {
			s.mu.Unlock()
			s.logger.Error("Carrier sync failed",
				zap.String("job_id", job.ID.String()),
				zap.Int("retry_count", job.RetryCount),
				zap.Error(err),
			)
			if job.MaxRetries == 0 {
				return s.LastJob(), err
			}
			return s.LastJob(), fmt.Errorf("%w: %w", ErrRetriesExhausted, err)
		}
		delay := job.ScheduleRetry(s.config.RetryDelay)
		s.mu.Unlock()

		s.logger.Warn("Carrier sync failed, retrying",
			zap.String("job_id", job.ID.String()),
			zap.Int("retry_count", job.RetryCount),
			zap.Int("max_retries", job.MaxRetries),
			zap.Duration("backoff", delay),
			zap.Error(err),
		)

		if werr := s.wait(ctx, delay); werr != nil {
			s.mu.Lock()
			job.Fail(werr.Error())
			s.mu.Unlock()
			return s.LastJob(), werr
		}
	}
}

func (s *CarrierSyncJob) execute(ctx context.Context, job *Job) error {
	jobCtx, cancel := context.WithTimeout(ctx, s.config.JobTimeout)
	defer cancel()
	return s.executor.Execute(jobCtx, job)
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
