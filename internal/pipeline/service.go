package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/cryocare-tools/cryocare-setup/internal/logger"
	"github.com/cryocare-tools/cryocare-setup/internal/model"
	"github.com/cryocare-tools/cryocare-setup/internal/platform"
)

const (
	component = "pipeline"

	// RunIDPrefix prefixes every run ID
	RunIDPrefix = "run-"

	// maxLoggedOutput caps how much stdout is copied into debug logs
	maxLoggedOutput = 4096

	// exitNotStarted is the exit code recorded when the program never ran
	exitNotStarted = -1
)

var (
	_ Executor = (*Service)(nil)
	_ Locator  = (*Service)(nil)
)

// Service runs pipeline stages one at a time
type Service struct {
	mu       sync.Mutex
	running  bool
	toolsDir string
	workDir  string
	log      *logger.Logger
	onUpdate func(*model.ExecutionResult) // callback for UI updates

	// resolve is swapped in tests
	resolve func(toolsDir, name string) (string, error)
}

// NewService creates a new pipeline service
func NewService(log *logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{
		log:     log,
		resolve: platform.ResolveExecutable,
	}
}

// SetUpdateCallback sets the callback function for run updates
func (s *Service) SetUpdateCallback(callback func(*model.ExecutionResult)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onUpdate = callback
}

// SetToolsDirectory sets a directory searched for executables before PATH
func (s *Service) SetToolsDirectory(dir string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.toolsDir = dir
}

// SetWorkingDirectory sets the directory the programs run in; empty inherits ours
func (s *Service) SetWorkingDirectory(dir string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.workDir = dir
}

// IsRunning reports whether a stage is in flight
func (s *Service) IsRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

// BuildArgs builds the command-line arguments for a stage program
func (s *Service) BuildArgs(configPath string) []string {
	return []string{model.ConfFlag, configPath}
}

// Run invokes the stage program with --conf configPath and blocks until it
// exits. A non-zero exit or a launch failure is returned as an
// *ExternalToolError together with the populated result. Only one stage
// may run at a time; a concurrent call gets ErrStageBusy.
func (s *Service) Run(ctx context.Context, stage model.Stage, configPath string) (*model.ExecutionResult, error) {
	if !stage.IsValid() {
		return nil, fmt.Errorf("invalid stage: %d", stage)
	}

	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return nil, ErrStageBusy
	}
	s.running = true
	toolsDir, workDir := s.toolsDir, s.workDir
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.running = false
		s.mu.Unlock()
	}()

	result := &model.ExecutionResult{
		ID:         generateRunID(),
		Stage:      stage,
		ConfigPath: configPath,
		Status:     model.StageStatusRunning,
		ExitCode:   exitNotStarted,
		StartedAt:  time.Now(),
	}
	s.notifyUpdate(result)

	fields := map[string]interface{}{
		"run_id": result.ID,
		"stage":  stage.String(),
		"conf":   configPath,
	}

	exe, err := s.resolve(toolsDir, stage.Executable())
	if err != nil {
		s.log.Error(component, "executable not found", err, fields)
		return result, s.fail(result, &ExternalToolError{Stage: stage, ExitCode: exitNotStarted, Err: err})
	}
	result.Executable = exe
	fields["executable"] = exe
	s.log.Info(component, "stage started", fields)

	// The programs write their output folders relative to the working directory
	if workDir != "" {
		if err := platform.CreateDirectoryIfNotExists(workDir); err != nil {
			err = fmt.Errorf("failed to create working directory %s: %w", workDir, err)
			s.log.Error(component, "working directory unavailable", err, fields)
			return result, s.fail(result, &ExternalToolError{Stage: stage, ExitCode: exitNotStarted, Err: err})
		}
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, exe, s.BuildArgs(configPath)...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if workDir != "" {
		cmd.Dir = workDir
	}

	err = cmd.Run()
	result.Stderr = stderr.String()

	if out := truncate(stdout.String(), maxLoggedOutput); out != "" {
		s.log.Debug(component, "stage output", map[string]interface{}{"run_id": result.ID, "stdout": out})
	}

	if err != nil {
		toolErr := &ExternalToolError{Stage: stage, ExitCode: exitNotStarted, Stderr: result.Stderr, Err: err}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			toolErr.ExitCode = exitErr.ExitCode()
		} else {
			err = fmt.Errorf("failed to start %s: %w", stage.Executable(), err)
			toolErr.Err = err
		}
		result.ExitCode = toolErr.ExitCode
		fields["exit_code"] = toolErr.ExitCode
		s.log.Error(component, "stage failed", err, fields)
		return result, s.fail(result, toolErr)
	}

	result.ExitCode = 0
	result.Status = model.StageStatusCompleted
	result.FinishedAt = time.Now()
	fields["duration"] = result.GetDurationString()
	s.log.Info(component, "stage completed", fields)
	s.notifyUpdate(result)

	return result, nil
}

// fail marks result as failed, notifies and returns err
func (s *Service) fail(result *model.ExecutionResult, err *ExternalToolError) error {
	result.Status = model.StageStatusFailed
	result.FinishedAt = time.Now()
	s.notifyUpdate(result)
	return err
}

// notifyUpdate calls the update callback if set
func (s *Service) notifyUpdate(result *model.ExecutionResult) {
	s.mu.Lock()
	callback := s.onUpdate
	s.mu.Unlock()

	if callback != nil {
		snapshot := *result
		callback(&snapshot)
	}
}

func truncate(s string, max int) string {
	s = strings.TrimSpace(s)
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}

// generateRunID generates a unique run ID using UUID v7 so IDs sort by start time
func generateRunID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to timestamp if UUID generation fails
		return fmt.Sprintf(RunIDPrefix+"%d", time.Now().UnixNano())
	}
	return RunIDPrefix + id.String()
}
