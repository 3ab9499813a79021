// Package enhance drives the external class-transformation engine.
//
// The engine itself is not part of this module. It is reached through a
// narrow contract: an Engine built from a classpath and transform arguments,
// a Driver that runs the engine over a class directory for a package
// selector, and a two-callback Listener for the engine's events.
package enhance

import (
	"context"
)

// Listener receives events emitted by a Driver while it processes classes.
type Listener interface {
	OnInfo(msg string)
	OnError(msg string)
}

// Engine is a transformation engine configured with its search classpath
// and arguments.
type Engine interface {
	Classpath() string
	TransformArgs() string
}

// Driver transforms the class files of a source directory into a
// destination directory.
type Driver interface {
	// SetListener registers the event listener. Must be called before Process.
	SetListener(l Listener)

	// Process transforms the classes selected by packages, a comma-delimited
	// list of package names optionally suffixed with * or **.
	Process(ctx context.Context, packages string) error
}

// Runtime is the class-loading context the engine runs in.
type Runtime struct {
	// Java is the JVM launcher.
	Java string

	// JVMArgs are passed to the launcher before the classpath.
	JVMArgs []string

	// AgentClasspath holds the engine's own jars.
	AgentClasspath []string

	// MainClass is the engine entry point.
	MainClass string
}

// Factory constructs engines and drivers.
type Factory interface {
	NewEngine(classpath, transformArgs string) (Engine, error)
	NewDriver(e Engine, rt Runtime, classSource, classDestination string) (Driver, error)
}
