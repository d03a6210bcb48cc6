package pipeline

import (
	"context"

	"github.com/cryocare-tools/cryocare-setup/internal/model"
)

// Executor defines the interface for running a pipeline stage.
// Run blocks until the external program exits.
type Executor interface {
	SetUpdateCallback(func(*model.ExecutionResult))
	Run(ctx context.Context, stage model.Stage, configPath string) (*model.ExecutionResult, error)
	IsRunning() bool
}

// Locator is implemented by executors that can be pointed at a tools
// directory and a working directory
type Locator interface {
	SetToolsDirectory(dir string)
	SetWorkingDirectory(dir string)
}
