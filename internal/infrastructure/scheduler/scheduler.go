// Package scheduler runs recurring background jobs, currently the daily
// carrier list download.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/packetery/backend/internal/infrastructure/config"
)

// JobStatus represents the status of a scheduled job
type JobStatus string

const (
	JobStatusPending JobStatus = "PENDING"
	JobStatusRunning JobStatus = "RUNNING"
	JobStatusSuccess JobStatus = "SUCCESS"
	JobStatusFailed  JobStatus = "FAILED"
)

// Job is one run of a scheduled task, retries included
type Job struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Status      JobStatus  `json:"status"`
	Error       string     `json:"error,omitempty"`
	StartedAt   *time.Time `json:"started_at,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	RetryCount  int        `json:"retry_count"`
	MaxRetries  int        `json:"max_retries"`
}

// NewJob creates a new job instance
func NewJob(name string, maxRetries int) *Job {
	return &Job{
		ID:         uuid.New(),
		Name:       name,
		Status:     JobStatusPending,
		MaxRetries: maxRetries,
	}
}

// Start marks the job as running
func (j *Job) Start() {
	now := time.Now()
	j.Status = JobStatusRunning
	if j.StartedAt == nil {
		j.StartedAt = &now
	}
	j.Error = ""
}

// Complete marks the job as successful
func (j *Job) Complete() {
	now := time.Now()
	j.Status = JobStatusSuccess
	j.CompletedAt = &now
}

// Fail marks the job as failed
func (j *Job) Fail(err string) {
	now := time.Now()
	j.Status = JobStatusFailed
	j.CompletedAt = &now
	j.Error = err
}

// ShouldRetry returns true if the job should be retried
func (j *Job) ShouldRetry() bool {
	return j.Status == JobStatusFailed && j.RetryCount < j.MaxRetries
}

// ScheduleRetry counts the retry and returns the backoff to wait before it.
// The delay doubles with every attempt: base, 2*base, 4*base...
func (j *Job) ScheduleRetry(base time.Duration) time.Duration {
	delay := base << j.RetryCount
	j.RetryCount++
	j.Status = JobStatusPending
	j.CompletedAt = nil
	return delay
}

// JobExecutor runs the work of a job
type JobExecutor interface {
	Execute(ctx context.Context, job *Job) error
}

// JobFunc adapts a function to JobExecutor
type JobFunc func(ctx context.Context, job *Job) error

// Execute calls f
func (f JobFunc) Execute(ctx context.Context, job *Job) error {
	return f(ctx, job)
}

// SchedulerConfig holds scheduler configuration
type SchedulerConfig struct {
	Enabled       bool
	Interval      time.Duration
	JobTimeout    time.Duration
	RetryAttempts int
	RetryDelay    time.Duration
	RunOnStart    bool
}

// DefaultSchedulerConfig returns default scheduler configuration
func DefaultSchedulerConfig() SchedulerConfig {
	return SchedulerConfig{
		Enabled:       true,
		Interval:      24 * time.Hour,
		JobTimeout:    5 * time.Minute,
		RetryAttempts: 3,
		RetryDelay:    30 * time.Second,
	}
}

// FromConfig builds the scheduler configuration from the application config
func FromConfig(cfg config.SchedulerConfig) SchedulerConfig {
	return SchedulerConfig{
		Enabled:       cfg.Enabled,
		Interval:      cfg.CarrierSyncInterval,
		JobTimeout:    cfg.JobTimeout,
		RetryAttempts: cfg.RetryAttempts,
		RetryDelay:    cfg.RetryDelay,
		RunOnStart:    cfg.RunOnStart,
	}
}

// Validate checks the configuration
func (c SchedulerConfig) Validate() error {
	if c.Interval <= 0 {
		return fmt.Errorf("%w: interval must be positive", ErrInvalidConfig)
	}
	if c.JobTimeout <= 0 {
		return fmt.Errorf("%w: job timeout must be positive", ErrInvalidConfig)
	}
	if c.RetryAttempts < 0 {
		return fmt.Errorf("%w: retry attempts cannot be negative", ErrInvalidConfig)
	}
	if c.RetryAttempts > 0 && c.RetryDelay <= 0 {
		return fmt.Errorf("%w: retry delay must be positive", ErrInvalidConfig)
	}
	return nil
}
