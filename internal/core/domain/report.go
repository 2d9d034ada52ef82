package domain

import "go.trai.ch/zerr"

// Mode selects how the lifecycle driver sequences evaluation and resolution.
type Mode string

const (
	// ModeStaged evaluates every unit, builds one export index, then resolves every unit.
	ModeStaged Mode = "staged"
	// ModeListener resolves each unit right after it evaluates, against an index rebuilt from
	// whatever the workspace exposes at that moment.
	ModeListener Mode = "listener"
)

// ParseMode converts a string to a Mode. An empty string selects ModeStaged.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case "", ModeStaged:
		return ModeStaged, nil
	case ModeListener:
		return ModeListener, nil
	default:
		return "", zerr.With(ErrInvalidMode, "mode", s)
	}
}

// Substitution records one external dependency replaced by a local reference.
type Substitution struct {
	Unit   string
	Output string
	Old    *ExternalDependency
	New    Dependency
	Target ExportingEntry
}

// Pass is the outcome of resolving one unit's output groups.
type Pass struct {
	Unit             string
	IndexKeys        int
	IndexFingerprint string
	Substitutions    []Substitution
}

// Report is the outcome of one lifecycle run.
type Report struct {
	Mode   Mode
	Passes []Pass
}

// Substitutions returns every substitution of the run in pass order.
func (r *Report) Substitutions() []Substitution {
	var res []Substitution
	for _, p := range r.Passes {
		res = append(res, p.Substitutions...)
	}
	return res
}
