package repository

import (
	"context"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/opmodel/enhance/internal/output"
	"github.com/opmodel/enhance/internal/project"
)

// Resolver maps coordinates to an artifact file.
type Resolver interface {
	Resolve(ctx context.Context, c project.Coordinates) (string, error)
}

// Outcome is the result of resolving one dependency.
// Exactly one of Path and Err is set.
type Outcome struct {
	Dependency project.Dependency
	Path       string
	Err        error
}

// OK reports whether resolution succeeded.
func (o Outcome) OK() bool {
	return o.Err == nil
}

// Artifact is a successfully resolved dependency.
type Artifact struct {
	Dependency project.Dependency
	// Path is absolute.
	Path string
}

// Adapter resolves dependencies one by one, tolerating failures.
type Adapter struct {
	resolver Resolver
	log      *log.Logger
}

// NewAdapter creates an Adapter. A nil logger uses the global logger.
func NewAdapter(r Resolver, logger *log.Logger) *Adapter {
	if logger == nil {
		logger = output.Logger()
	}
	return &Adapter{resolver: r, log: logger}
}

// Resolve resolves a single dependency. Failures are logged and returned in
// the Outcome, never as a separate error.
func (a *Adapter) Resolve(ctx context.Context, d project.Dependency) Outcome {
	p, err := a.resolver.Resolve(ctx, d.Coordinates())
	if err == nil {
		p, err = filepath.Abs(p)
	}
	if err != nil {
		a.log.Info("artifact unresolved", "artifact", d.String(), "error", err.Error())
		return Outcome{Dependency: d, Err: err}
	}

	a.log.Info("resolved artifact", "artifact", d.String(), "path", p)
	return Outcome{Dependency: d, Path: p}
}

// ResolveAll resolves deps in order and returns one Outcome per dependency.
func (a *Adapter) ResolveAll(ctx context.Context, deps []project.Dependency) []Outcome {
	outcomes := make([]Outcome, 0, len(deps))
	for _, d := range deps {
		outcomes = append(outcomes, a.Resolve(ctx, d))
	}
	return outcomes
}

// Resolved returns the successful outcomes as artifacts, in order.
func Resolved(outcomes []Outcome) []Artifact {
	artifacts := make([]Artifact, 0, len(outcomes))
	for _, o := range outcomes {
		if o.OK() {
			artifacts = append(artifacts, Artifact{Dependency: o.Dependency, Path: o.Path})
		}
	}
	return artifacts
}

// Failed returns the failed outcomes, in order.
func Failed(outcomes []Outcome) []Outcome {
	var failed []Outcome
	for _, o := range outcomes {
		if !o.OK() {
			failed = append(failed, o)
		}
	}
	return failed
}

// Paths returns the paths of artifacts, in order.
func Paths(artifacts []Artifact) []string {
	paths := make([]string, len(artifacts))
	for i, a := range artifacts {
		paths[i] = a.Path
	}
	return paths
}
