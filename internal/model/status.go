package model

// StageStatus represents the status of a pipeline stage run
type StageStatus string

const (
	// StageStatusIdle means no run has been started
	StageStatusIdle StageStatus = "Idle"

	// StageStatusRunning means the external executable is running
	StageStatusRunning StageStatus = "Running"

	// StageStatusCompleted means the executable exited with code 0
	StageStatusCompleted StageStatus = "Completed"

	// StageStatusFailed means the executable exited non-zero or could not start
	StageStatusFailed StageStatus = "Failed"
)

// String returns the string representation of StageStatus
func (s StageStatus) String() string {
	return string(s)
}

// IsActive returns true while the external executable is running
func (s StageStatus) IsActive() bool {
	return s == StageStatusRunning
}

// IsFinished returns true if the run reached a terminal state
func (s StageStatus) IsFinished() bool {
	return s == StageStatusCompleted || s == StageStatusFailed
}
