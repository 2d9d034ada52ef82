// Package index builds the export index: which build unit, via which output group,
// publishes which artifact key.
package index

import (
	"fmt"
	"slices"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/splice/internal/core/domain"
)

// Index maps an artifact key to the ordered set of entries exporting it.
// An Index is built once per resolution pass and never patched.
type Index struct {
	entries map[domain.ArtifactKey][]domain.ExportingEntry
}

// Build scans every unit for artifacts published by its policy-selected output groups.
// The result does not depend on the order of units.
func Build(units []*domain.BuildUnit) *Index {
	ix := &Index{entries: make(map[domain.ArtifactKey][]domain.ExportingEntry)}
	for _, u := range units {
		for _, name := range ExportedGroupNames(u) {
			g, ok := u.OutputGroup(name)
			if !ok {
				continue
			}
			entry := domain.NewExportingEntry(u.Path(), g.Name())
			for _, a := range g.Artifacts() {
				ix.insert(domain.KeyForPublished(u.Group(), a), entry)
			}
		}
	}
	return ix
}

// ExportedGroupNames returns the output group names scanned for exports on u: the policy's
// exported configurations if the unit carries a policy, domain.FallbackExportedConfigurations otherwise.
func ExportedGroupNames(u *domain.BuildUnit) []string {
	if p, ok := u.ExportPolicy(); ok {
		return p.ExportedConfigurations()
	}
	return slices.Clone(domain.FallbackExportedConfigurations)
}

func (ix *Index) insert(key domain.ArtifactKey, entry domain.ExportingEntry) {
	set := ix.entries[key]
	i, found := slices.BinarySearchFunc(set, entry, domain.ExportingEntry.Compare)
	if found {
		return
	}
	ix.entries[key] = slices.Insert(set, i, entry)
}

// Lookup returns the entries exporting key, smallest first.
// An unknown key yields an empty result.
func (ix *Index) Lookup(key domain.ArtifactKey) []domain.ExportingEntry {
	set := ix.entries[key]
	res := make([]domain.ExportingEntry, len(set))
	copy(res, set)
	return res
}

// Keys returns every indexed key in ascending order.
func (ix *Index) Keys() []domain.ArtifactKey {
	keys := make([]domain.ArtifactKey, 0, len(ix.entries))
	for k := range ix.entries {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, domain.ArtifactKey.Compare)
	return keys
}

// Len returns the number of indexed keys.
func (ix *Index) Len() int {
	return len(ix.entries)
}

// Fingerprint returns a stable digest of the index content. Two indexes with the same keys
// and entries share a fingerprint.
func (ix *Index) Fingerprint() string {
	hasher := xxhash.New()
	for _, k := range ix.Keys() {
		_, _ = hasher.WriteString(k.String())
		_, _ = hasher.Write([]byte{0})
		for _, e := range ix.entries[k] {
			_, _ = hasher.WriteString(e.String())
			_, _ = hasher.Write([]byte{0})
		}
		_, _ = hasher.Write([]byte{'\n'})
	}
	return fmt.Sprintf("%016x", hasher.Sum64())
}

// Snapshot lists the index content sorted by key.
func (ix *Index) Snapshot() *domain.IndexSnapshot {
	keys := ix.Keys()
	snap := &domain.IndexSnapshot{
		Fingerprint: ix.Fingerprint(),
		Entries:     make([]domain.IndexEntry, len(keys)),
	}
	for i, k := range keys {
		snap.Entries[i] = domain.IndexEntry{Key: k, Entries: ix.Lookup(k)}
	}
	return snap
}
