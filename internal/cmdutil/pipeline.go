package cmdutil

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/opmodel/enhance/internal/config"
	"github.com/opmodel/enhance/internal/enhance"
	oerrors "github.com/opmodel/enhance/internal/errors"
	"github.com/opmodel/enhance/internal/output"
	"github.com/opmodel/enhance/internal/pipeline"
	"github.com/opmodel/enhance/internal/project"
	"github.com/opmodel/enhance/internal/repository"
)

// PipelineOpts holds the inputs for PreparePipeline.
type PipelineOpts struct {
	// Args from the cobra command (first arg is the project path).
	Args []string

	// Enhance holds the goal flags.
	Enhance *EnhanceFlags

	// Repository holds the repository flags.
	Repository *RepositoryFlags

	// Config is the loaded config file. nil means defaults.
	Config *config.Config

	// ConfigFlag is the raw --config value.
	ConfigFlag string

	// WithEngine attaches an orchestrator backed by Factory.
	WithEngine bool

	// Factory builds the engine. nil means enhance.ExecFactory.
	Factory enhance.Factory
}

// Prepared is a ready-to-run pipeline and its options.
type Prepared struct {
	Pipeline *pipeline.Pipeline
	Options  pipeline.Options
	Project  *project.Project
	Resolved *config.ResolvedConfig
}

// PreparePipeline resolves configuration, loads the project model and wires
// the repository chain and engine into a pipeline.
//
// On failure it returns an *ExitError with the appropriate exit code and the
// Printed flag set.
func PreparePipeline(opts PipelineOpts) (*Prepared, error) {
	ef := opts.Enhance
	if ef == nil {
		ef = &EnhanceFlags{}
	}
	rf := opts.Repository
	if rf == nil {
		rf = &RepositoryFlags{}
	}

	rc, err := config.ResolveAll(config.ResolveAllOptions{
		ConfigFlag:           opts.ConfigFlag,
		LocalRepositoryFlag:  rf.LocalRepository,
		RemoteFlags:          rf.Remotes,
		OfflineFlag:          rf.Offline,
		ClassSourceFlag:      ef.ClassSource,
		ClassDestinationFlag: ef.ClassDestination,
		PackagesFlag:         ef.Packages,
		TransformArgsFlag:    ef.TransformArgs,
		ClasspathFlag:        ef.Classpath,
		ScopeFlag:            ef.Scope,
		Config:               opts.Config,
	})
	if err != nil {
		return nil, fail("resolving configuration", err)
	}
	config.LogResolvedValues(rc.Values())

	projectPath := ResolveProjectPath(opts.Args)
	proj, err := project.Load(projectPath)
	if err != nil {
		return nil, fail("loading project", err)
	}
	workDir, err := filepath.Abs(filepath.Dir(proj.Path))
	if err != nil {
		return nil, fail("resolving project directory", err)
	}
	output.Debug("project loaded",
		"path", proj.Path,
		"artifact", proj.GroupID+":"+proj.ArtifactID+":"+proj.Version,
		"dependencies", len(proj.Dependencies),
	)

	resolver, err := repository.NewCached(NewRepositoryChain(rc), repository.DefaultCacheSize)
	if err != nil {
		return nil, fail("creating resolver", err)
	}
	adapter := repository.NewAdapter(resolver, output.ScopedLogger("resolve"))

	var orch *enhance.Orchestrator
	if opts.WithEngine {
		factory := opts.Factory
		if factory == nil {
			factory = enhance.ExecFactory{}
		}
		orch = enhance.NewOrchestrator(factory, enhance.Runtime{
			Java:           rc.Engine.Java,
			JVMArgs:        rc.Engine.JVMArgs,
			AgentClasspath: rc.Engine.AgentClasspath,
			MainClass:      rc.Engine.MainClass,
		}, output.ScopedLogger("enhance"), enhance.WithForwardErrors(rc.Engine.ForwardErrors))
	}

	return &Prepared{
		Pipeline: pipeline.New(adapter, orch, nil),
		Options: pipeline.Options{
			Dependencies:     proj.Dependencies,
			ClassSource:      rc.ClassSource.Value,
			ClassDestination: rc.ClassDestination.Value,
			Packages:         rc.Packages.Value,
			TransformArgs:    rc.TransformArgs.Value,
			Classpath:        rc.Classpath.Value,
			Scope:            rc.Scope.Value,
			ExecutionID:      ef.ResolvedExecutionID(),
			Separator:        rc.Separator.Value,
			WorkDir:          workDir,
		},
		Project:  proj,
		Resolved: rc,
	}, nil
}

// NewRepositoryChain builds the local-then-remotes resolver from rc.
func NewRepositoryChain(rc *config.ResolvedConfig) *repository.Chain {
	remotes := make([]*repository.Remote, 0, len(rc.Remotes))
	for _, r := range rc.Remotes {
		remote := repository.NewRemote(r.ID, r.URL)
		remote.VerifyChecksums = rc.VerifyChecksums
		remotes = append(remotes, remote)
	}
	return repository.NewChain(repository.NewLocal(rc.LocalRepository.Value), remotes...)
}

// PlanWithSpinner runs p.Plan behind a spinner when stderr is a terminal.
func PlanWithSpinner(ctx context.Context, p *Prepared) (*pipeline.Plan, error) {
	var plan *pipeline.Plan
	err := output.RunWithSpinner(ctx, func() error {
		var err error
		plan, err = p.Pipeline.Plan(ctx, p.Options)
		return err
	}, output.WithTitle(fmt.Sprintf("Resolving %d dependencies...", len(p.Options.Dependencies))))
	if err != nil {
		return nil, fail("resolving dependencies", err)
	}
	return plan, nil
}

// fail logs err and wraps it in a printed ExitError.
func fail(msg string, err error) error {
	output.Error(msg, "error", err)
	return &oerrors.ExitError{Code: oerrors.ExitCodeFromError(err), Err: err, Printed: true}
}
