package domain

import (
	"slices"

	"go.trai.ch/zerr"
)

// Workspace is the graph of build units known to one run.
// Units are kept in declaration order, which is also the listener-mode evaluation order.
type Workspace struct {
	root  string
	mode  Mode
	units map[InternedString]*BuildUnit
	order []InternedString
}

// NewWorkspace creates an empty workspace rooted at root.
func NewWorkspace(root string) *Workspace {
	return &Workspace{
		root:  root,
		units: make(map[InternedString]*BuildUnit),
	}
}

// Root returns the workspace root directory.
func (w *Workspace) Root() string {
	return w.root
}

// Mode returns the lifecycle mode requested by the workspace configuration.
// It defaults to ModeStaged.
func (w *Workspace) Mode() Mode {
	if w.mode == "" {
		return ModeStaged
	}
	return w.mode
}

// SetMode sets the lifecycle mode requested by the workspace configuration.
func (w *Workspace) SetMode(m Mode) {
	w.mode = m
}

// AddUnit registers a unit. Paths must be unique.
func (w *Workspace) AddUnit(u *BuildUnit) error {
	if _, exists := w.units[u.path]; exists {
		return zerr.With(ErrDuplicateUnit, "unit", u.Path())
	}
	w.units[u.path] = u
	w.order = append(w.order, u.path)
	return nil
}

// Unit returns the unit at path.
func (w *Workspace) Unit(path string) (*BuildUnit, bool) {
	u, ok := w.units[NewInternedString(path)]
	return u, ok
}

// Units returns every unit in declaration order.
func (w *Workspace) Units() []*BuildUnit {
	res := make([]*BuildUnit, len(w.order))
	for i, p := range w.order {
		res[i] = w.units[p]
	}
	return res
}

// SortedUnits returns every unit sorted by path.
func (w *Workspace) SortedUnits() []*BuildUnit {
	res := w.Units()
	slices.SortFunc(res, func(a, b *BuildUnit) int {
		return a.path.Compare(b.path)
	})
	return res
}

// Len returns the number of units.
func (w *Workspace) Len() int {
	return len(w.order)
}
