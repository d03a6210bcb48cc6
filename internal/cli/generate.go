package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cryocare-tools/cryocare-setup/internal/configdoc"
	"github.com/cryocare-tools/cryocare-setup/internal/model"
	"github.com/cryocare-tools/cryocare-setup/internal/session"
)

func (a *App) newGenerateCmd() *cobra.Command {
	var (
		odd    []string
		even   []string
		output string
	)

	cmd := &cobra.Command{
		Use:       "generate <extract|train|predict>",
		Short:     "Write the configuration file of a stage",
		Long:      "Write the configuration file of a stage. Odd and even files without a .mrc or .tif extension are dropped.",
		Args:      cobra.ExactArgs(1),
		ValidArgs: stageNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			stage, err := model.ParseStage(args[0])
			if err != nil {
				return err
			}

			sess := session.New()
			if err := sess.Select(model.SelectionOdd, odd); err != nil {
				return fmt.Errorf("odd files: %w", err)
			}
			if err := sess.Select(model.SelectionEven, even); err != nil {
				return fmt.Errorf("even files: %w", err)
			}

			doc, err := sess.Document(stage)
			if err != nil {
				return err
			}

			path := output
			if path == "" {
				path = stage.ConfigName()
			}
			if err := configdoc.Save(path, doc); err != nil {
				a.Log.Error(component, "Failed to write configuration", err, map[string]interface{}{
					"path": path,
				})
				return err
			}

			a.Log.Info(component, "Configuration written", map[string]interface{}{
				"stage": stage.String(),
				"path":  path,
				"odd":   len(sess.Odd()),
				"even":  len(sess.Even()),
			})
			fmt.Fprintf(cmd.OutOrStdout(), "%s written to %s\n", stage.ConfigName(), path)
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&odd, "odd", nil, "odd tomogram files (.mrc or .tif)")
	cmd.Flags().StringSliceVar(&even, "even", nil, "even tomogram files (.mrc or .tif)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "destination file (default: the stage's usual file name)")
	return cmd
}

func stageNames() []string {
	names := make([]string, 0, len(model.AllStages))
	for _, s := range model.AllStages {
		names = append(names, s.String())
	}
	return names
}
