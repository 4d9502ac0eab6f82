package scheduler

import "errors"

var (
	// ErrInvalidConfig is returned when configuration is invalid
	ErrInvalidConfig = errors.New("invalid scheduler configuration")

	// ErrJobAlreadyRunning is returned when a run is requested while one is in progress
	ErrJobAlreadyRunning = errors.New("job already running")

	// ErrRetriesExhausted is returned when every attempt of a run failed
	ErrRetriesExhausted = errors.New("job failed after all retry attempts")
)
