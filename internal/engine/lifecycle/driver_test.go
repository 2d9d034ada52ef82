package lifecycle_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.trai.ch/splice/internal/adapters/telemetry"
	"go.trai.ch/splice/internal/adapters/workspace"
	"go.trai.ch/splice/internal/core/domain"
	"go.trai.ch/splice/internal/core/ports"
	"go.trai.ch/splice/internal/core/ports/mocks"
	"go.trai.ch/splice/internal/engine/lifecycle"
	"go.uber.org/mock/gomock"
)

func references(ws *domain.Workspace) ports.LocalReferenceFactory {
	return workspace.NewReferenceFactory(ws)
}

func newDriver(t *testing.T, tracer ports.Tracer) *lifecycle.Driver {
	t.Helper()
	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Debug(gomock.Any()).AnyTimes()
	return lifecycle.NewDriver(workspace.NewEvaluator(), references, tracer, logger)
}

func coreUnit() *domain.BuildUnit {
	return domain.NewBuildUnit("/core", "core", &domain.UnitDeclaration{
		Group:  "acme",
		Policy: &domain.PolicyDeclaration{},
		Outputs: []domain.OutputDeclaration{{
			Name:      "runtime",
			Artifacts: []domain.PublishedArtifact{{Name: "utils", Type: "jar", Extension: "jar"}},
		}},
	})
}

func appUnit() *domain.BuildUnit {
	return domain.NewBuildUnit("/app", "app", &domain.UnitDeclaration{
		Group:  "acme",
		Policy: &domain.PolicyDeclaration{},
		Outputs: []domain.OutputDeclaration{{
			Name: "runtime",
			Dependencies: []*domain.ExternalDependency{
				{Group: "acme", Name: "utils", Version: "1.0"},
			},
		}},
	})
}

func newWorkspace(t *testing.T, units ...*domain.BuildUnit) *domain.Workspace {
	t.Helper()
	ws := domain.NewWorkspace("/repo")
	for _, u := range units {
		require.NoError(t, ws.AddUnit(u))
	}
	return ws
}

func runtimeDeps(t *testing.T, ws *domain.Workspace, path string) []domain.Dependency {
	t.Helper()
	u, ok := ws.Unit(path)
	require.True(t, ok)
	g, ok := u.OutputGroup("runtime")
	require.True(t, ok)
	return g.Dependencies()
}

func TestRun_ListenerCoreBeforeApp(t *testing.T) {
	ws := newWorkspace(t, coreUnit(), appUnit())

	report, err := newDriver(t, telemetry.NewNoOpTracer()).Run(context.Background(), ws, domain.ModeListener)

	require.NoError(t, err)
	subs := report.Substitutions()
	require.Len(t, subs, 1)
	assert.Equal(t, "/app", subs[0].Unit)
	assert.Equal(t, "/core(runtime)", subs[0].Target.String())

	deps := runtimeDeps(t, ws, "/app")
	require.Len(t, deps, 1)
	ref, ok := deps[0].(*domain.LocalReference)
	require.True(t, ok, "expected *domain.LocalReference, got %T", deps[0])
	assert.Equal(t, "/core(runtime)", ref.String())
}

func TestRun_ListenerAppBeforeCoreKeepsExternal(t *testing.T) {
	ws := newWorkspace(t, appUnit(), coreUnit())

	report, err := newDriver(t, telemetry.NewNoOpTracer()).Run(context.Background(), ws, domain.ModeListener)

	require.NoError(t, err)
	assert.Empty(t, report.Substitutions())
	require.Len(t, report.Passes, 2)
	assert.Equal(t, "/app", report.Passes[0].Unit)
	assert.Zero(t, report.Passes[0].IndexKeys, "/core had not published anything yet")
	assert.Equal(t, 1, report.Passes[1].IndexKeys)

	deps := runtimeDeps(t, ws, "/app")
	require.Len(t, deps, 1)
	ext, ok := deps[0].(*domain.ExternalDependency)
	require.True(t, ok, "expected *domain.ExternalDependency, got %T", deps[0])
	assert.Equal(t, "acme:utils:1.0", ext.String())
}

func TestRun_StagedIgnoresEvaluationOrder(t *testing.T) {
	for _, units := range [][]*domain.BuildUnit{
		{coreUnit(), appUnit()},
		{appUnit(), coreUnit()},
	} {
		ws := newWorkspace(t, units...)

		report, err := newDriver(t, telemetry.NewNoOpTracer()).Run(context.Background(), ws, domain.ModeStaged)

		require.NoError(t, err)
		assert.Equal(t, domain.ModeStaged, report.Mode)
		require.Len(t, report.Passes, 2)
		assert.Equal(t, "/app", report.Passes[0].Unit, "units resolve in path order")
		assert.Equal(t, report.Passes[0].IndexFingerprint, report.Passes[1].IndexFingerprint)

		subs := report.Substitutions()
		require.Len(t, subs, 1)
		assert.Equal(t, "/core(runtime)", subs[0].Target.String())
		assert.IsType(t, &domain.LocalReference{}, runtimeDeps(t, ws, "/app")[0])
	}
}

func TestRun_InvalidMode(t *testing.T) {
	ws := newWorkspace(t, coreUnit())

	_, err := newDriver(t, telemetry.NewNoOpTracer()).Run(context.Background(), ws, domain.Mode("eager"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid mode")
	assert.False(t, ws.Units()[0].Evaluated())
}

func TestRun_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	ws := newWorkspace(t, coreUnit(), appUnit())

	for _, mode := range []domain.Mode{domain.ModeStaged, domain.ModeListener} {
		_, err := newDriver(t, telemetry.NewNoOpTracer()).Run(ctx, ws, mode)
		require.ErrorIs(t, err, context.Canceled)
	}
}

func TestRun_EvaluationFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	evaluator := mocks.NewMockUnitEvaluator(ctrl)
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Debug(gomock.Any()).AnyTimes()
	cause := errors.New("bad declaration")
	evaluator.EXPECT().Evaluate(gomock.Any(), gomock.Any()).Return(cause)

	d := lifecycle.NewDriver(evaluator, references, telemetry.NewNoOpTracer(), logger)
	_, err := d.Run(context.Background(), newWorkspace(t, coreUnit()), domain.ModeStaged)

	require.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), domain.ErrEvaluationFailed.Error())
}

func TestRun_LocalReferenceFailureAbortsPass(t *testing.T) {
	ctrl := gomock.NewController(t)
	factory := mocks.NewMockLocalReferenceFactory(ctrl)
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Debug(gomock.Any()).AnyTimes()
	factory.EXPECT().MakeLocalReference("/core", "runtime").Return(nil, domain.ErrOutputGroupNotFound)

	d := lifecycle.NewDriver(
		workspace.NewEvaluator(),
		func(*domain.Workspace) ports.LocalReferenceFactory { return factory },
		telemetry.NewNoOpTracer(),
		logger,
	)
	ws := newWorkspace(t, coreUnit(), appUnit())

	report, err := d.Run(context.Background(), ws, domain.ModeStaged)

	require.Error(t, err)
	assert.Nil(t, report)
	assert.Contains(t, err.Error(), "output group not found")
	_, ok := runtimeDeps(t, ws, "/app")[0].(*domain.ExternalDependency)
	assert.True(t, ok, "dependency left external")
}

func TestOnUnitEvaluated_RebuildsIndexEveryCall(t *testing.T) {
	core := coreUnit()
	app := appUnit()
	ws := newWorkspace(t, app, core)
	d := newDriver(t, telemetry.NewNoOpTracer())
	ev := workspace.NewEvaluator()

	require.NoError(t, ev.Evaluate(context.Background(), app))
	first, err := d.OnUnitEvaluated(context.Background(), ws, app)
	require.NoError(t, err)
	assert.Empty(t, first.Substitutions)

	require.NoError(t, ev.Evaluate(context.Background(), core))
	second, err := d.OnUnitEvaluated(context.Background(), ws, app)
	require.NoError(t, err)
	require.Len(t, second.Substitutions, 1)
	assert.NotEqual(t, first.IndexFingerprint, second.IndexFingerprint)

	third, err := d.OnUnitEvaluated(context.Background(), ws, app)
	require.NoError(t, err)
	assert.Empty(t, third.Substitutions, "already substituted")
}

func TestEvaluateAll_SkipsEvaluatedUnits(t *testing.T) {
	core := coreUnit()
	ws := newWorkspace(t, core, appUnit())
	require.NoError(t, workspace.NewEvaluator().Evaluate(context.Background(), core))

	require.NoError(t, newDriver(t, telemetry.NewNoOpTracer()).EvaluateAll(context.Background(), ws))

	for _, u := range ws.Units() {
		assert.True(t, u.Evaluated(), u.Path())
	}
}

func TestRun_Spans(t *testing.T) {
	sr := tracetest.NewSpanRecorder()
	tp := trace.NewTracerProvider(trace.WithSpanProcessor(sr))
	otel.SetTracerProvider(tp)
	defer func() { _ = tp.Shutdown(context.Background()) }()

	ws := newWorkspace(t, coreUnit(), appUnit())
	_, err := newDriver(t, telemetry.NewOTelTracer("test")).Run(context.Background(), ws, domain.ModeStaged)
	require.NoError(t, err)

	spans := sr.Ended()
	require.Len(t, spans, 3)
	names := []string{spans[0].Name(), spans[1].Name(), spans[2].Name()}
	assert.Equal(t, []string{"unit /app", "unit /core", "resolve"}, names)

	found := map[string]string{}
	for _, kv := range spans[0].Attributes() {
		found[string(kv.Key)] = kv.Value.Emit()
	}
	assert.Equal(t, "/app", found["unit"])
	assert.Equal(t, "1", found["index.keys"])
	assert.Equal(t, "1", found["substitutions"])
	assert.Len(t, found["index.fingerprint"], 16)
}
