package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/cryocare-tools/cryocare-setup/internal/model"
	"github.com/cryocare-tools/cryocare-setup/internal/pipeline"
)

func (a *App) newRunCmd() *cobra.Command {
	var (
		confPath string
		toolsDir string
		workDir  string
	)

	cmd := &cobra.Command{
		Use:       "run <extract|train|predict>",
		Short:     "Run a pipeline stage on a configuration file",
		Args:      cobra.ExactArgs(1),
		ValidArgs: stageNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			stage, err := model.ParseStage(args[0])
			if err != nil {
				return err
			}

			runner := a.NewRunner()
			if locator, ok := runner.(pipeline.Locator); ok {
				locator.SetToolsDirectory(toolsDir)
				locator.SetWorkingDirectory(workDir)
			}

			ctx, stop := signal.NotifyContext(cmdContext(cmd), os.Interrupt, syscall.SIGTERM)
			defer stop()

			result, err := runner.Run(ctx, stage, confPath)
			if err != nil {
				var toolErr *pipeline.ExternalToolError
				if errors.As(err, &toolErr) && toolErr.Stderr != "" {
					cmd.PrintErr(toolErr.Stderr)
					if toolErr.Stderr[len(toolErr.Stderr)-1] != '\n' {
						cmd.PrintErrln()
					}
				}
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s completed in %s\n", stage.Executable(), result.GetDurationString())
			return nil
		},
	}

	cmd.Flags().StringVar(&confPath, "conf", "", "configuration file passed to the stage program")
	cmd.Flags().StringVar(&toolsDir, "tools-dir", "", "directory searched for the cryoCARE programs before PATH")
	cmd.Flags().StringVar(&workDir, "workdir", "", "directory the stage program runs in")
	_ = cmd.MarkFlagRequired("conf")
	return cmd
}

func cmdContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
