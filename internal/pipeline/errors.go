package pipeline

import (
	"errors"
	"fmt"
	"strings"

	"github.com/cryocare-tools/cryocare-setup/internal/model"
)

// ErrStageBusy is returned when a stage is triggered while another one runs
var ErrStageBusy = errors.New("a pipeline stage is already running")

// ExternalToolError wraps a non-zero exit or a failure to launch a stage program
type ExternalToolError struct {
	Stage    model.Stage
	ExitCode int    // -1 when the program never started
	Stderr   string // captured standard error
	Err      error  // launch failure or *exec.ExitError
}

// Error returns the diagnostic text shown to the user: the captured
// standard error when present, otherwise the underlying cause.
func (e *ExternalToolError) Error() string {
	if msg := strings.TrimSpace(e.Stderr); msg != "" {
		return msg
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s exited with code %d", e.Stage.Executable(), e.ExitCode)
}

func (e *ExternalToolError) Unwrap() error {
	return e.Err
}

// Launched reports whether the program started (and then failed)
func (e *ExternalToolError) Launched() bool {
	return e.ExitCode >= 0
}
