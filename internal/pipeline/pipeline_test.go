package pipeline

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opmodel/enhance/internal/enhance"
	oerrors "github.com/opmodel/enhance/internal/errors"
	"github.com/opmodel/enhance/internal/project"
	"github.com/opmodel/enhance/internal/repository"
	"github.com/opmodel/enhance/internal/scope"
	"github.com/opmodel/enhance/internal/testutil"
)

type mapResolver map[string]string

func (m mapResolver) Resolve(_ context.Context, c project.Coordinates) (string, error) {
	if p, ok := m[c.ArtifactID]; ok {
		return p, nil
	}
	return "", &repository.NotFoundError{Coordinates: c, Location: "/repo"}
}

type stubEngine struct{ cp, args string }

func (e stubEngine) Classpath() string     { return e.cp }
func (e stubEngine) TransformArgs() string { return e.args }

// recordingFactory captures the request reaching the engine.
type recordingFactory struct {
	classpath  string
	src, dst   string
	packages   string
	processErr error
	calls      int
}

func (f *recordingFactory) NewEngine(cp, args string) (enhance.Engine, error) {
	f.classpath = cp
	return stubEngine{cp: cp, args: args}, nil
}

func (f *recordingFactory) NewDriver(_ enhance.Engine, _ enhance.Runtime, src, dst string) (enhance.Driver, error) {
	f.src, f.dst = src, dst
	return &recordingDriver{f: f}, nil
}

type recordingDriver struct{ f *recordingFactory }

func (d *recordingDriver) SetListener(enhance.Listener) {}

func (d *recordingDriver) Process(_ context.Context, packages string) error {
	d.f.calls++
	d.f.packages = packages
	return d.f.processErr
}

// Three dependencies: A compile-scoped and resolvable, B test-scoped and
// resolvable, C compile-scoped and missing from every repository.
func scenarioDeps() []project.Dependency {
	return []project.Dependency{
		{GroupID: "g", ArtifactID: "a", Version: "1", Type: "jar", Scope: "compile"},
		{GroupID: "g", ArtifactID: "b", Version: "1", Type: "jar", Scope: "test"},
		{GroupID: "g", ArtifactID: "c", Version: "1", Type: "jar", Scope: "compile"},
	}
}

var scenarioRepo = mapResolver{"a": "/repo/a-1.jar", "b": "/repo/b-1.jar"}

func newPipeline(buf *bytes.Buffer, f *recordingFactory) *Pipeline {
	logger := log.NewWithOptions(buf, log.Options{Level: log.DebugLevel})
	var orch *enhance.Orchestrator
	if f != nil {
		orch = enhance.NewOrchestrator(f, enhance.Runtime{Java: "java", MainClass: "Main"}, logger)
	}
	return New(repository.NewAdapter(scenarioRepo, logger), orch, logger)
}

func TestPlan_Scenarios(t *testing.T) {
	tests := []struct {
		name          string
		opts          Options
		wantScope     scope.Scope
		wantClasspath string
		wantSkipped   int
	}{
		{
			name:          "standard scope drops test dependency",
			opts:          Options{ExecutionID: "default"},
			wantScope:     scope.Standard,
			wantClasspath: "/repo/a-1.jar;target/classes",
			wantSkipped:   1,
		},
		{
			name:          "test execution keeps test dependency",
			opts:          Options{ExecutionID: "test-compile", ClassSource: "target/classes"},
			wantScope:     scope.Test,
			wantClasspath: "/repo/a-1.jar;/repo/b-1.jar;target/classes",
		},
		{
			name:          "scope override beats execution id",
			opts:          Options{ExecutionID: "test-compile", Scope: "compile", ClassSource: "target/classes"},
			wantScope:     scope.Standard,
			wantClasspath: "/repo/a-1.jar;target/classes",
			wantSkipped:   1,
		},
		{
			name:          "extra classpath and custom separator",
			opts:          Options{ClassSource: "out", Classpath: "/lib/x.jar", Separator: ":"},
			wantScope:     scope.Standard,
			wantClasspath: "/repo/a-1.jar:out:/lib/x.jar",
			wantSkipped:   1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.opts.Dependencies = scenarioDeps()

			plan, err := newPipeline(&buf, nil).Plan(context.Background(), tt.opts)
			require.NoError(t, err)

			assert.Equal(t, tt.wantScope, plan.Scope)
			assert.Equal(t, tt.wantClasspath, plan.Classpath)
			assert.Len(t, plan.Skipped, tt.wantSkipped)
			require.Len(t, plan.Unresolved(), 1)
			assert.Equal(t, "c", plan.Unresolved()[0].Dependency.ArtifactID)
		})
	}
}

func TestPlan_DefaultsClassDirectories(t *testing.T) {
	var buf bytes.Buffer
	p := newPipeline(&buf, nil)

	plan, err := p.Plan(context.Background(), Options{ExecutionID: "test"})
	require.NoError(t, err)
	assert.Equal(t, "target/test-classes", plan.ClassSource)
	assert.Equal(t, "target/test-classes", plan.ClassDestination)

	plan, err = p.Plan(context.Background(), Options{WorkDir: "/work", ClassDestination: "enhanced"})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/work", "target", "classes"), plan.ClassSource)
	assert.Equal(t, filepath.Join("/work", "enhanced"), plan.ClassDestination)
}

func TestPlan_ScopeOverrideNamesClassDirectory(t *testing.T) {
	var buf bytes.Buffer
	p := newPipeline(&buf, nil)

	plan, err := p.Plan(context.Background(), Options{Scope: "it-", ExecutionID: "test-compile", Dependencies: scenarioDeps()})
	require.NoError(t, err)
	assert.Equal(t, "it-", plan.ScopeToken)
	assert.Equal(t, "target/it-classes", plan.ClassSource)
	assert.Equal(t, scope.Standard, plan.Scope)
	assert.Len(t, plan.Skipped, 1)

	plan, err = p.Plan(context.Background(), Options{Scope: "TEST-", Dependencies: scenarioDeps()})
	require.NoError(t, err)
	assert.Equal(t, "target/TEST-classes", plan.ClassSource)
	assert.Equal(t, scope.Test, plan.Scope)
	assert.Empty(t, plan.Skipped)
}

func TestPlan_Logging(t *testing.T) {
	var buf bytes.Buffer
	_, err := newPipeline(&buf, nil).Plan(context.Background(), Options{Dependencies: scenarioDeps()})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "scope resolved")
	assert.Contains(t, out, "skipping dependency")
	assert.Contains(t, out, "resolved artifact")
	assert.Contains(t, out, "artifact unresolved")
}

func TestPlan_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var buf bytes.Buffer
	_, err := newPipeline(&buf, nil).Plan(ctx, Options{Dependencies: scenarioDeps()})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRun_InvokesEngine(t *testing.T) {
	dir := t.TempDir()
	testutil.Mkdir(t, dir, "target/classes")
	t.Chdir(dir)

	var buf bytes.Buffer
	f := &recordingFactory{}
	res, err := newPipeline(&buf, f).Run(context.Background(), Options{
		Dependencies: scenarioDeps(),
		Packages:     "com.acme.**",
	})
	require.NoError(t, err)

	assert.False(t, res.Skipped)
	assert.Equal(t, 1, f.calls)
	assert.Equal(t, "/repo/a-1.jar;target/classes", f.classpath)
	assert.Equal(t, "target/classes", f.src)
	assert.Equal(t, "target/classes", f.dst)
	assert.Equal(t, "com.acme.**", f.packages)
	assert.Contains(t, buf.String(), "working directory")
	assert.Contains(t, buf.String(), "enhancement configuration")
}

func TestRun_MissingClassSourceSkips(t *testing.T) {
	t.Chdir(t.TempDir())

	var buf bytes.Buffer
	f := &recordingFactory{}
	res, err := newPipeline(&buf, f).Run(context.Background(), Options{Dependencies: scenarioDeps()})
	require.NoError(t, err)

	assert.True(t, res.Skipped)
	assert.Zero(t, f.calls)
	assert.Contains(t, buf.String(), "class source directory not found")
}

func TestRun_TransformErrorPropagates(t *testing.T) {
	dir := t.TempDir()
	testutil.Mkdir(t, dir, "target/classes")

	var buf bytes.Buffer
	engineErr := errors.New("bad class file")
	f := &recordingFactory{processErr: engineErr}

	res, err := newPipeline(&buf, f).Run(context.Background(), Options{WorkDir: dir})
	require.Error(t, err)
	require.NotNil(t, res)

	var te *enhance.TransformError
	require.ErrorAs(t, err, &te)
	assert.ErrorIs(t, err, engineErr)
	assert.ErrorIs(t, err, oerrors.ErrTransform)
	assert.Equal(t, filepath.Join(dir, "target", "classes"), f.src)
}

func TestRun_PlanOnlyPipeline(t *testing.T) {
	var buf bytes.Buffer
	_, err := newPipeline(&buf, nil).Run(context.Background(), Options{})
	assert.ErrorIs(t, err, ErrNoOrchestrator)
}
