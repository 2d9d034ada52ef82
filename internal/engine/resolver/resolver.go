// Package resolver rewrites external dependencies of an output group into local references
// whenever a sibling unit exports the requested artifacts.
package resolver

import (
	"fmt"
	"slices"

	"go.trai.ch/splice/internal/core/domain"
	"go.trai.ch/splice/internal/core/ports"
	"go.trai.ch/splice/internal/engine/index"
	"go.trai.ch/zerr"
)

// Resolver matches external dependencies against an export index.
type Resolver struct {
	factory ports.LocalReferenceFactory
	logger  ports.Logger
}

// New creates a Resolver that builds local references through factory.
func New(factory ports.LocalReferenceFactory, logger ports.Logger) *Resolver {
	return &Resolver{
		factory: factory,
		logger:  logger,
	}
}

// Resolve substitutes every external dependency of group that the index can satisfy.
//
// Removals and additions are applied to group as one edit after all dependencies were
// matched. If a local reference cannot be built, group is left untouched and the error
// is returned.
func (r *Resolver) Resolve(unit *domain.BuildUnit, group *domain.OutputGroup, ix *index.Index) ([]domain.Substitution, error) {
	var (
		subs   []domain.Substitution
		remove []domain.Dependency
		add    []domain.Dependency
	)

	for _, dep := range group.ExternalDependencies() {
		target, ok := Select(Candidates(dep, ix))
		if !ok {
			r.logger.Debug(fmt.Sprintf("%s(%s): no local match for %s", unit.Path(), group.Name(), dep))
			continue
		}

		local, err := r.factory.MakeLocalReference(target.Unit.String(), target.Output.String())
		if err != nil {
			err = zerr.Wrap(err, domain.ErrLocalReferenceFailed.Error())
			err = zerr.With(err, "unit", unit.Path())
			err = zerr.With(err, "output", group.Name())
			err = zerr.With(err, "dependency", dep.String())
			return nil, zerr.With(err, "target", target.String())
		}

		remove = append(remove, dep)
		add = append(add, local)
		subs = append(subs, domain.Substitution{
			Unit:   unit.Path(),
			Output: group.Name(),
			Old:    dep,
			New:    local,
			Target: target,
		})
	}

	group.Replace(remove, add)

	for _, s := range subs {
		r.logger.Debug(fmt.Sprintf("%s(%s): substituted %s with %s", s.Unit, s.Output, s.Old, s.New))
	}

	return subs, nil
}

// Candidates returns the entries able to satisfy every artifact dep requests, smallest first.
//
// A dependency without selectors looks up its default jar. Otherwise the per-selector
// candidate sets are intersected, so selectors resolving to different units yield nothing.
// The result does not depend on selector order.
func Candidates(dep *domain.ExternalDependency, ix *index.Index) []domain.ExportingEntry {
	keys := dep.Keys()
	acc := ix.Lookup(keys[0])
	for _, k := range keys[1:] {
		if len(acc) == 0 {
			break
		}
		acc = intersect(acc, ix.Lookup(k))
	}
	return acc
}

// Select returns the smallest candidate.
func Select(candidates []domain.ExportingEntry) (domain.ExportingEntry, bool) {
	if len(candidates) == 0 {
		return domain.ExportingEntry{}, false
	}
	return slices.MinFunc(candidates, domain.ExportingEntry.Compare), true
}

// intersect keeps the entries of a that also appear in b. Both inputs are sorted.
func intersect(a, b []domain.ExportingEntry) []domain.ExportingEntry {
	res := make([]domain.ExportingEntry, 0, min(len(a), len(b)))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch c := a[i].Compare(b[j]); {
		case c == 0:
			res = append(res, a[i])
			i++
			j++
		case c < 0:
			i++
		default:
			j++
		}
	}
	return res
}
