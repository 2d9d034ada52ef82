// Package lifecycle sequences unit evaluation and dependency resolution for a workspace.
package lifecycle

import (
	"context"
	"fmt"

	"go.trai.ch/splice/internal/core/domain"
	"go.trai.ch/splice/internal/core/ports"
	"go.trai.ch/splice/internal/engine/index"
	"go.trai.ch/splice/internal/engine/resolver"
	"go.trai.ch/zerr"
)

// ReferenceFactoryFunc binds a local reference factory to a workspace.
type ReferenceFactoryFunc func(ws *domain.Workspace) ports.LocalReferenceFactory

// Driver runs evaluation and resolution over a workspace.
//
// In listener mode every unit is resolved right after its own evaluation, against an index
// rebuilt from whatever the workspace exposes at that moment. A unit depending on a sibling
// that has not been evaluated yet keeps its external dependency.
//
// In staged mode every unit is evaluated first, one index is built, and then every unit is
// resolved in path order. The outcome no longer depends on evaluation order.
type Driver struct {
	evaluator  ports.UnitEvaluator
	references ReferenceFactoryFunc
	tracer     ports.Tracer
	logger     ports.Logger
}

// NewDriver creates a new Driver with the given dependencies.
func NewDriver(
	evaluator ports.UnitEvaluator,
	references ReferenceFactoryFunc,
	tracer ports.Tracer,
	logger ports.Logger,
) *Driver {
	return &Driver{
		evaluator:  evaluator,
		references: references,
		tracer:     tracer,
		logger:     logger,
	}
}

// Run evaluates and resolves every unit of ws in the given mode.
func (d *Driver) Run(ctx context.Context, ws *domain.Workspace, mode domain.Mode) (*domain.Report, error) {
	ctx, span := d.tracer.Start(ctx, "resolve", ports.WithAttribute("mode", string(mode)))
	defer span.End()

	var (
		report *domain.Report
		err    error
	)
	switch mode {
	case domain.ModeListener:
		report, err = d.runListener(ctx, ws)
	case domain.ModeStaged:
		report, err = d.runStaged(ctx, ws)
	default:
		err = zerr.With(domain.ErrInvalidMode, "mode", string(mode))
	}
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	span.SetAttribute("substitutions", len(report.Substitutions()))
	return report, nil
}

func (d *Driver) runListener(ctx context.Context, ws *domain.Workspace) (*domain.Report, error) {
	report := &domain.Report{Mode: domain.ModeListener}
	for _, unit := range ws.Units() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := d.evaluate(ctx, unit); err != nil {
			return nil, err
		}
		pass, err := d.OnUnitEvaluated(ctx, ws, unit)
		if err != nil {
			return nil, err
		}
		report.Passes = append(report.Passes, pass)
	}
	return report, nil
}

func (d *Driver) runStaged(ctx context.Context, ws *domain.Workspace) (*domain.Report, error) {
	if err := d.EvaluateAll(ctx, ws); err != nil {
		return nil, err
	}

	ix := index.Build(ws.Units())
	res := resolver.New(d.references(ws), d.logger)
	d.logger.Debug(fmt.Sprintf("export index built: %d keys, fingerprint %s", ix.Len(), ix.Fingerprint()))

	report := &domain.Report{Mode: domain.ModeStaged}
	for _, unit := range ws.SortedUnits() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		pass, err := d.resolveUnit(ctx, res, unit, ix)
		if err != nil {
			return nil, err
		}
		report.Passes = append(report.Passes, pass)
	}
	return report, nil
}

// EvaluateAll evaluates every unit of ws that has not been evaluated yet, in declaration order.
func (d *Driver) EvaluateAll(ctx context.Context, ws *domain.Workspace) error {
	for _, unit := range ws.Units() {
		if err := ctx.Err(); err != nil {
			return err
		}
		if unit.Evaluated() {
			continue
		}
		if err := d.evaluate(ctx, unit); err != nil {
			return err
		}
	}
	return nil
}

// OnUnitEvaluated rebuilds the export index from every unit currently known to ws and resolves
// every output group of unit against it. It must be called once per unit, after the unit
// finished evaluating.
func (d *Driver) OnUnitEvaluated(ctx context.Context, ws *domain.Workspace, unit *domain.BuildUnit) (domain.Pass, error) {
	ix := index.Build(ws.Units())
	return d.resolveUnit(ctx, resolver.New(d.references(ws), d.logger), unit, ix)
}

func (d *Driver) evaluate(ctx context.Context, unit *domain.BuildUnit) error {
	if err := d.evaluator.Evaluate(ctx, unit); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrEvaluationFailed.Error()), "unit", unit.Path())
	}
	d.logger.Debug(fmt.Sprintf("evaluated %s", unit.Path()))
	return nil
}

func (d *Driver) resolveUnit(
	ctx context.Context,
	res *resolver.Resolver,
	unit *domain.BuildUnit,
	ix *index.Index,
) (domain.Pass, error) {
	_, span := d.tracer.Start(ctx, "unit "+unit.Path(), ports.WithAttribute("unit", unit.Path()))
	defer span.End()

	pass := domain.Pass{
		Unit:             unit.Path(),
		IndexKeys:        ix.Len(),
		IndexFingerprint: ix.Fingerprint(),
	}
	span.SetAttribute("index.keys", pass.IndexKeys)
	span.SetAttribute("index.fingerprint", pass.IndexFingerprint)

	for _, group := range unit.OutputGroups() {
		subs, err := res.Resolve(unit, group, ix)
		if err != nil {
			span.RecordError(err)
			return domain.Pass{}, err
		}
		pass.Substitutions = append(pass.Substitutions, subs...)
	}

	span.SetAttribute("substitutions", len(pass.Substitutions))
	return pass, nil
}
