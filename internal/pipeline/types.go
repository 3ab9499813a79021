// Package pipeline wires scope resolution, dependency filtering, artifact
// resolution, classpath assembly and the enhancement engine into a single
// linear run.
package pipeline

import (
	"github.com/opmodel/enhance/internal/project"
	"github.com/opmodel/enhance/internal/repository"
	"github.com/opmodel/enhance/internal/scope"
)

// Options configures a run. Built by the CLI from flags and config.
type Options struct {
	// Dependencies are the declared dependencies, in declaration order.
	Dependencies []project.Dependency

	// ClassSource is the directory holding the compiled classes.
	// Optional. Defaults to target/classes or target/test-classes.
	ClassSource string

	// ClassDestination is where enhanced classes are written.
	// Optional. Defaults to ClassSource.
	ClassDestination string

	// Packages selects the classes to enhance.
	Packages string

	// TransformArgs is passed to the engine verbatim.
	TransformArgs string

	// Classpath is appended after the class source.
	Classpath string

	// Scope overrides the scope derived from ExecutionID.
	Scope string

	// ExecutionID identifies the invocation; ids containing "test" select
	// the test scope.
	ExecutionID string

	// Separator between classpath entries. Defaults to ";".
	Separator string

	// WorkDir anchors relative directories. Defaults to the process
	// working directory.
	WorkDir string
}

// Plan is everything known before the engine runs.
type Plan struct {
	Scope       scope.Scope
	ScopeSource scope.Source
	// ScopeToken is the override verbatim, or the token derived from the
	// execution id.
	ScopeToken string

	// ClassSource and ClassDestination are as passed to the engine.
	ClassSource      string
	ClassDestination string

	// Retained and Skipped partition Options.Dependencies.
	Retained []project.Dependency
	Skipped  []project.Dependency

	// Outcomes has one entry per retained dependency, in order.
	Outcomes []repository.Outcome

	// Artifacts is the successful subsequence of Outcomes.
	Artifacts []repository.Artifact

	Classpath string
	Separator string
}

// Unresolved returns the failed outcomes.
func (p *Plan) Unresolved() []repository.Outcome {
	return repository.Failed(p.Outcomes)
}

// Result is the outcome of Run.
type Result struct {
	Plan *Plan

	// Skipped is true when the class source directory does not exist and the
	// engine was not invoked.
	Skipped bool
}
