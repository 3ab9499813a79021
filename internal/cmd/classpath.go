package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/opmodel/enhance/internal/cmdutil"
)

// NewClasspathCmd creates the classpath command.
func NewClasspathCmd(cfg *GlobalConfig) *cobra.Command {
	var (
		ef   cmdutil.EnhanceFlags
		rf   cmdutil.RepositoryFlags
		list bool
	)

	c := &cobra.Command{
		Use:   "classpath [project]",
		Short: "Print the assembled classpath",
		Long: `Resolve the project's dependencies and print the classpath the engine
would receive, without running it.

Examples:
  # Print the classpath
  enhance classpath

  # One line per entry with its resolution status
  enhance classpath --list --execution-id test`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			prepared, err := cmdutil.PreparePipeline(cmdutil.PipelineOpts{
				Args:       args,
				Enhance:    &ef,
				Repository: &rf,
				Config:     cfg.Config,
				ConfigFlag: cfg.ConfigFlag,
			})
			if err != nil {
				return err
			}

			plan, err := cmdutil.PlanWithSpinner(c.Context(), prepared)
			if err != nil {
				return err
			}

			if list {
				cmdutil.WritePlan(c.OutOrStdout(), plan)
			} else {
				fmt.Fprintln(c.OutOrStdout(), plan.Classpath)
			}
			cmdutil.WriteUnresolvedWarnings(plan)
			return nil
		},
	}

	ef.AddTo(c)
	rf.AddTo(c)
	c.Flags().BoolVar(&list, "list", false, "Print one entry per line with its status")

	return c
}
