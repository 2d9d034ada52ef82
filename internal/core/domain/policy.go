package domain

import "slices"

var (
	// DefaultExportedConfigurations are the output groups a unit exports when it carries an
	// export policy but does not customize it.
	DefaultExportedConfigurations = []string{"runtime", "testRuntime"}

	// FallbackExportedConfigurations are scanned for a unit that carries no export policy at all.
	FallbackExportedConfigurations = []string{"default"}
)

// ExportPolicy declares which output groups of a unit may satisfy sibling dependencies.
type ExportPolicy struct {
	exported []string
}

// NewExportPolicy creates a policy exporting DefaultExportedConfigurations.
func NewExportPolicy() *ExportPolicy {
	return &ExportPolicy{exported: slices.Clone(DefaultExportedConfigurations)}
}

// SetExportedConfigurations replaces the exported group names. Duplicates are dropped and
// the result is sorted.
func (p *ExportPolicy) SetExportedConfigurations(names ...string) {
	set := slices.Clone(names)
	slices.Sort(set)
	p.exported = slices.Compact(set)
}

// ExportedConfigurations returns the exported group names.
func (p *ExportPolicy) ExportedConfigurations() []string {
	return slices.Clone(p.exported)
}
