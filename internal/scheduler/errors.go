// Package scheduler fires the periodic maintenance jobs on a cron clock.
package scheduler

import "errors"

// Lifecycle errors returned by Start, Stop and RunNow.
var (
	ErrAlreadyRunning = errors.New("scheduler is already running")
	ErrNotRunning     = errors.New("scheduler is not running")
	// ErrUnknownJob is returned for a job name outside the fixed table.
	ErrUnknownJob = errors.New("unknown job")
)
