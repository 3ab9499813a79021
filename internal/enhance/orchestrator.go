package enhance

import (
	"context"
	"strings"

	"github.com/charmbracelet/log"

	oerrors "github.com/opmodel/enhance/internal/errors"
	"github.com/opmodel/enhance/internal/output"
)

// Request describes one enhancement run.
type Request struct {
	ClassSource string
	// ClassDestination defaults to ClassSource.
	ClassDestination string
	TransformArgs    string
	Packages         string
	Classpath        string
}

// Destination returns the effective destination directory.
func (r Request) Destination() string {
	if r.ClassDestination == "" {
		return r.ClassSource
	}
	return r.ClassDestination
}

// TransformError is returned when the engine fails while processing.
// It is the only fatal failure of an enhancement run.
type TransformError struct {
	Err error
}

func (e *TransformError) Error() string {
	return e.Err.Error()
}

func (e *TransformError) Unwrap() error {
	return e.Err
}

// Is matches oerrors.ErrTransform.
func (e *TransformError) Is(target error) bool {
	return target == oerrors.ErrTransform
}

// Option configures an Orchestrator.
type Option func(*Orchestrator)

// WithForwardErrors controls whether engine error events reach the log.
// Enabled by default.
func WithForwardErrors(forward bool) Option {
	return func(o *Orchestrator) {
		o.forwardErrors = forward
	}
}

// Orchestrator builds the engine and driver for a request and runs it.
type Orchestrator struct {
	factory       Factory
	runtime       Runtime
	log           *log.Logger
	forwardErrors bool
}

// NewOrchestrator creates an Orchestrator. A nil logger uses the global logger.
func NewOrchestrator(f Factory, rt Runtime, logger *log.Logger, opts ...Option) *Orchestrator {
	if logger == nil {
		logger = output.Logger()
	}
	o := &Orchestrator{
		factory:       f,
		runtime:       rt,
		log:           logger,
		forwardErrors: true,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Run constructs the engine and driver, registers the log bridge and
// processes req.Packages. Errors raised while processing are returned as
// *TransformError; construction errors are returned unchanged.
func (o *Orchestrator) Run(ctx context.Context, req Request) error {
	engine, err := o.factory.NewEngine(req.Classpath, req.TransformArgs)
	if err != nil {
		return err
	}

	driver, err := o.factory.NewDriver(engine, o.runtime, req.ClassSource, req.Destination())
	if err != nil {
		return err
	}
	driver.SetListener(&logBridge{log: o.log, forwardErrors: o.forwardErrors})

	if strings.TrimSpace(req.Packages) == "" {
		o.log.Warn("no packages configured; the engine may not enhance anything")
	}

	if err := driver.Process(ctx, req.Packages); err != nil {
		return &TransformError{Err: err}
	}
	return nil
}

// logBridge forwards engine events to the log sink.
type logBridge struct {
	log           *log.Logger
	forwardErrors bool
}

func (b *logBridge) OnInfo(msg string) {
	b.log.Info(msg)
}

func (b *logBridge) OnError(msg string) {
	if b.forwardErrors {
		b.log.Error(msg)
	}
}
