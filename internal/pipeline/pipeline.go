package pipeline

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/opmodel/enhance/internal/classpath"
	"github.com/opmodel/enhance/internal/enhance"
	"github.com/opmodel/enhance/internal/output"
	"github.com/opmodel/enhance/internal/repository"
	"github.com/opmodel/enhance/internal/scope"
)

// ErrNoOrchestrator is returned by Run on a plan-only pipeline.
var ErrNoOrchestrator = errors.New("pipeline has no orchestrator")

// Pipeline runs the enhance goal.
type Pipeline struct {
	adapter      *repository.Adapter
	orchestrator *enhance.Orchestrator
	log          *log.Logger
}

// New creates a Pipeline. orchestrator may be nil for a plan-only pipeline.
// A nil logger uses the global logger.
func New(adapter *repository.Adapter, orchestrator *enhance.Orchestrator, logger *log.Logger) *Pipeline {
	if logger == nil {
		logger = output.Logger()
	}
	return &Pipeline{adapter: adapter, orchestrator: orchestrator, log: logger}
}

// Plan resolves the scope, filters and resolves the dependencies and
// assembles the classpath. Unresolved dependencies are not an error.
//
// The phases are:
//  1. Resolve the effective scope from the override or the execution id
//  2. Filter dependencies by scope
//  3. Resolve each retained dependency to an artifact
//  4. Assemble the classpath
func (p *Pipeline) Plan(ctx context.Context, opts Options) (*Plan, error) {
	// Phase 1: scope
	res := scope.Resolve(opts.Scope, opts.ExecutionID)
	p.log.Info("scope resolved", "scope", res.Scope.String(), "token", res.Token, "source", string(res.Source))

	plan := &Plan{
		Scope:       res.Scope,
		ScopeSource: res.Source,
		ScopeToken:  res.Token,
		Separator:   opts.Separator,
	}
	if plan.Separator == "" {
		plan.Separator = classpath.DefaultSeparator
	}

	plan.ClassSource = opts.ClassSource
	if plan.ClassSource == "" {
		plan.ClassSource = res.DefaultClassSource()
	}
	plan.ClassDestination = opts.ClassDestination
	if plan.ClassDestination == "" {
		plan.ClassDestination = plan.ClassSource
	}
	if opts.WorkDir != "" {
		plan.ClassSource = anchor(opts.WorkDir, plan.ClassSource)
		plan.ClassDestination = anchor(opts.WorkDir, plan.ClassDestination)
	}

	// Phase 2: filter
	filtered := scope.Filter(opts.Dependencies, res.Scope)
	plan.Retained = filtered.Retained
	plan.Skipped = filtered.Skipped
	for _, d := range filtered.Skipped {
		p.log.Info("skipping dependency", "artifact", d.ArtifactID, "scope", d.Scope)
	}

	// Phase 3: resolve
	plan.Outcomes = p.adapter.ResolveAll(ctx, filtered.Retained)
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	plan.Artifacts = repository.Resolved(plan.Outcomes)

	// Phase 4: classpath
	plan.Classpath = classpath.Assemble(classpath.Input{
		Artifacts:   repository.Paths(plan.Artifacts),
		ClassSource: plan.ClassSource,
		Extra:       opts.Classpath,
		Separator:   plan.Separator,
	})
	p.log.Debug("classpath assembled",
		"entries", len(classpath.Split(plan.Classpath, plan.Separator)),
		"unresolved", len(plan.Unresolved()),
	)

	return plan, nil
}

// Run plans and then hands the classpath to the engine. The only fatal error
// after planning is an *enhance.TransformError.
func (p *Pipeline) Run(ctx context.Context, opts Options) (*Result, error) {
	if p.orchestrator == nil {
		return nil, ErrNoOrchestrator
	}

	wd := opts.WorkDir
	if wd == "" {
		var err error
		if wd, err = os.Getwd(); err != nil {
			return nil, fmt.Errorf("getting working directory: %w", err)
		}
	}
	p.log.Info("working directory", "path", wd)

	plan, err := p.Plan(ctx, opts)
	if err != nil {
		return nil, err
	}
	result := &Result{Plan: plan}

	if info, err := os.Stat(plan.ClassSource); err != nil || !info.IsDir() {
		p.log.Warn("class source directory not found; skipping enhancement", "classSource", plan.ClassSource)
		result.Skipped = true
		return result, nil
	}

	p.log.Info("enhancement configuration",
		"classSource", plan.ClassSource,
		"transformArgs", opts.TransformArgs,
		"classDestination", plan.ClassDestination,
		"packages", opts.Packages,
	)

	err = p.orchestrator.Run(ctx, enhance.Request{
		ClassSource:      plan.ClassSource,
		ClassDestination: plan.ClassDestination,
		TransformArgs:    opts.TransformArgs,
		Packages:         opts.Packages,
		Classpath:        plan.Classpath,
	})
	if err != nil {
		return result, err
	}
	return result, nil
}

func anchor(dir, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(dir, path)
}
