package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/opmodel/enhance/internal/cmdutil"
	oerrors "github.com/opmodel/enhance/internal/errors"
	"github.com/opmodel/enhance/internal/output"
)

// NewEnhanceCmd creates the enhance goal command.
func NewEnhanceCmd(cfg *GlobalConfig) *cobra.Command {
	var (
		ef     cmdutil.EnhanceFlags
		rf     cmdutil.RepositoryFlags
		dryRun bool
	)

	c := &cobra.Command{
		Use:   "enhance [project]",
		Short: "Enhance compiled classes",
		Long: `Resolve the project's dependencies, assemble the classpath and run the
enhancement engine over the class source directory.

The project is a pom.xml, a dependencies.yaml/.json manifest, or a directory
containing one (default: current directory).

The scope is test when --scope is "test", or when no scope is given and the
execution id contains "test". Test-scoped dependencies are left off the
classpath in the standard scope.

Dependencies that cannot be resolved are logged and left off the classpath.
Only an engine failure fails the command.

Examples:
  # Enhance target/classes
  enhance enhance --packages 'com.acme.domain.**'

  # Enhance test classes
  enhance enhance --execution-id test-compile --packages 'com.acme.**'

  # Show the plan without running the engine
  enhance enhance --dry-run ./service`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runEnhance(c, args, cfg, &ef, &rf, dryRun)
		},
	}

	ef.AddTo(c)
	rf.AddTo(c)
	c.Flags().BoolVar(&dryRun, "dry-run", false, "Resolve and print the classpath without running the engine")

	return c
}

func runEnhance(c *cobra.Command, args []string, cfg *GlobalConfig, ef *cmdutil.EnhanceFlags, rf *cmdutil.RepositoryFlags, dryRun bool) error {
	ctx := c.Context()

	prepared, err := cmdutil.PreparePipeline(cmdutil.PipelineOpts{
		Args:       args,
		Enhance:    ef,
		Repository: rf,
		Config:     cfg.Config,
		ConfigFlag: cfg.ConfigFlag,
		WithEngine: !dryRun,
	})
	if err != nil {
		return err
	}

	if dryRun {
		plan, err := cmdutil.PlanWithSpinner(ctx, prepared)
		if err != nil {
			return err
		}
		cmdutil.WritePlan(c.OutOrStdout(), plan)
		cmdutil.WriteUnresolvedWarnings(plan)
		return nil
	}

	result, err := prepared.Pipeline.Run(ctx, prepared.Options)
	if err != nil {
		output.Error("enhancement failed", "error", err)
		return &oerrors.ExitError{Code: oerrors.ExitCodeFromError(err), Err: err, Printed: true}
	}

	cmdutil.WriteUnresolvedWarnings(result.Plan)
	if result.Skipped {
		return nil
	}
	fmt.Fprintln(c.OutOrStdout(), output.FormatCheckmark(
		fmt.Sprintf("enhanced %s (%d artifacts on classpath)", result.Plan.ClassDestination, len(result.Plan.Artifacts))))
	return nil
}
