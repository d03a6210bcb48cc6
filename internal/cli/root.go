package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/cryocare-tools/cryocare-setup/internal/logger"
	"github.com/cryocare-tools/cryocare-setup/internal/pipeline"
)

const component = "cli"

// App carries what the commands share
type App struct {
	Version string
	Log     *logger.Logger

	// LaunchGUI opens the desktop window and blocks until it is closed
	LaunchGUI func() error

	// NewRunner builds the executor used by the run command
	NewRunner func() pipeline.Executor
}

// New creates the command tree dependencies with the desktop launcher and
// the process-backed pipeline runner
func New(version string, log *logger.Logger) *App {
	if log == nil {
		log = logger.Nop()
	}
	a := &App{Version: version, Log: log}
	a.LaunchGUI = func() error { return RunGUI(version, log) }
	a.NewRunner = func() pipeline.Executor { return pipeline.NewService(log) }
	return a
}

// Command builds the root command
func (a *App) Command() *cobra.Command {
	root := &cobra.Command{
		Use:   "cryocare-setup",
		Short: "Prepare and launch the cryoCARE denoising pipeline",
		Long: `cryocare-setup assembles the three JSON configuration files of the
cryoCARE pipeline (training data extraction, training, prediction) and runs
the matching cryoCARE programs on them.

Run without a subcommand to open the desktop window.`,
		Version:       a.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.LaunchGUI()
		},
	}

	root.AddCommand(
		a.newGUICmd(),
		a.newGenerateCmd(),
		a.newRunCmd(),
		a.newVersionCmd(),
	)
	return root
}

func (a *App) newGUICmd() *cobra.Command {
	return &cobra.Command{
		Use:   "gui",
		Short: "Open the desktop window",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.LaunchGUI()
		},
	}
}

func (a *App) newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "cryocare-setup %s\n", a.Version)
		},
	}
}

// ExitCode maps a command error to the process exit status. A stage program
// that ran and failed passes its own code through.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var toolErr *pipeline.ExternalToolError
	if errors.As(err, &toolErr) && toolErr.ExitCode > 0 {
		return toolErr.ExitCode
	}
	return 1
}

// Report writes err for the user. The standard error of a failed stage
// program has already been relayed by the run command and is not repeated.
func Report(w io.Writer, err error) {
	if err == nil {
		return
	}
	var toolErr *pipeline.ExternalToolError
	if errors.As(err, &toolErr) && toolErr.Stderr != "" {
		return
	}
	fmt.Fprintln(w, err)
}
