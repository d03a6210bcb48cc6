package model

import (
	"fmt"
	"time"
)

// ExecutionResult is the transient outcome of one pipeline stage run
type ExecutionResult struct {
	ID         string // run ID, used to correlate log lines
	Stage      Stage
	ConfigPath string
	Executable string // resolved path of the program, empty if it could not be found
	Status     StageStatus
	ExitCode   int    // -1 when the process never started
	Stderr     string // captured standard error
	StartedAt  time.Time
	FinishedAt time.Time
}

// Succeeded reports whether the run completed with exit code 0
func (r *ExecutionResult) Succeeded() bool {
	return r.Status == StageStatusCompleted && r.ExitCode == 0
}

// Duration returns how long the run took, or zero if it has not finished
func (r *ExecutionResult) Duration() time.Duration {
	if r.FinishedAt.IsZero() || r.StartedAt.IsZero() {
		return 0
	}
	return r.FinishedAt.Sub(r.StartedAt)
}

// GetDurationString returns the duration formatted as hh:mm:ss or mm:ss
func (r *ExecutionResult) GetDurationString() string {
	d := r.Duration()
	if d <= 0 {
		return "—"
	}

	total := int(d.Round(time.Second).Seconds())
	hours := total / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60

	if hours > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
	}
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}
