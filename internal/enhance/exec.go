package enhance

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	oerrors "github.com/opmodel/enhance/internal/errors"
)

// maxLineSize bounds a single engine output line.
const maxLineSize = 1024 * 1024

// ExecFactory runs the engine as a JVM subprocess:
//
//	<java> <jvm args> -cp <agent classpath> <main class>
//	    -classSource <dir> -classDestination <dir>
//	    -classpath <classpath> -transformArgs <args> -packages <packages>
//
// Each stdout line is an info event, each stderr line an error event.
type ExecFactory struct{}

// NewEngine implements Factory.
func (ExecFactory) NewEngine(classpath, transformArgs string) (Engine, error) {
	return &execEngine{classpath: classpath, transformArgs: transformArgs}, nil
}

// NewDriver implements Factory.
func (ExecFactory) NewDriver(e Engine, rt Runtime, classSource, classDestination string) (Driver, error) {
	if rt.Java == "" {
		return nil, oerrors.NewValidationError("no JVM launcher configured", "", "engine.java",
			"Set engine.java in the config file or ENHANCE_ENGINE_JAVA.")
	}
	if rt.MainClass == "" {
		return nil, oerrors.NewValidationError("no engine main class configured", "", "engine.mainClass",
			"Set engine.mainClass in the config file.")
	}
	return &execDriver{
		engine:           e,
		runtime:          rt,
		classSource:      classSource,
		classDestination: classDestination,
	}, nil
}

type execEngine struct {
	classpath     string
	transformArgs string
}

func (e *execEngine) Classpath() string     { return e.classpath }
func (e *execEngine) TransformArgs() string { return e.transformArgs }

type execDriver struct {
	engine           Engine
	runtime          Runtime
	classSource      string
	classDestination string

	// maxLine overrides maxLineSize when positive.
	maxLine int

	listener Listener
	mu       sync.Mutex
	lastErr  string
}

func (d *execDriver) SetListener(l Listener) {
	d.listener = l
}

// Args returns the full argument list passed to the JVM launcher.
func (d *execDriver) Args(packages string) []string {
	args := append([]string{}, d.runtime.JVMArgs...)
	if len(d.runtime.AgentClasspath) > 0 {
		args = append(args, "-cp", strings.Join(d.runtime.AgentClasspath, string(os.PathListSeparator)))
	}
	args = append(args,
		d.runtime.MainClass,
		"-classSource", d.classSource,
		"-classDestination", d.classDestination,
		"-classpath", d.engine.Classpath(),
	)
	if ta := d.engine.TransformArgs(); ta != "" {
		args = append(args, "-transformArgs", ta)
	}
	return append(args, "-packages", packages)
}

func (d *execDriver) Process(ctx context.Context, packages string) error {
	cmd := exec.CommandContext(ctx, d.runtime.Java, d.Args(packages)...)

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return err
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return err
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("starting engine: %w", err)
	}

	var g errgroup.Group
	g.Go(func() error { return d.pump(stdout, false) })
	g.Go(func() error { return d.pump(stderr, true) })
	pumpErr := g.Wait()

	waitErr := cmd.Wait()
	if pumpErr != nil {
		return fmt.Errorf("reading engine output: %w", pumpErr)
	}
	if waitErr != nil {
		var exitErr *exec.ExitError
		if errors.As(waitErr, &exitErr) {
			if d.lastErr != "" {
				return fmt.Errorf("engine exited with code %d: %s", exitErr.ExitCode(), d.lastErr)
			}
			return fmt.Errorf("engine exited with code %d", exitErr.ExitCode())
		}
		return fmt.Errorf("engine: %w", waitErr)
	}
	return nil
}

// pump forwards lines from r to the listener. Callbacks are serialized.
// After a read error the rest of r is discarded so the engine never blocks
// on a full pipe.
func (d *execDriver) pump(r io.Reader, isErr bool) error {
	limit := d.maxLine
	if limit <= 0 {
		limit = maxLineSize
	}
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, min(64*1024, limit)), limit)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		if line == "" {
			continue
		}

		d.mu.Lock()
		if isErr {
			d.lastErr = line
		}
		if d.listener != nil {
			if isErr {
				d.listener.OnError(line)
			} else {
				d.listener.OnInfo(line)
			}
		}
		d.mu.Unlock()
	}
	if err := sc.Err(); err != nil {
		_, _ = io.Copy(io.Discard, r)
		return err
	}
	return nil
}
