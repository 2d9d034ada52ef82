package report

import (
	"go.trai.ch/splice/internal/core/domain"
)

// reportDocument is the structured form of a run.
type reportDocument struct {
	Mode          string            `json:"mode" yaml:"mode"`
	Passes        []passDocument    `json:"passes" yaml:"passes"`
	Substitutions []substitutionDoc `json:"substitutions" yaml:"substitutions"`
	Units         []unitDocument    `json:"units" yaml:"units"`
}

type passDocument struct {
	Unit             string `json:"unit" yaml:"unit"`
	IndexKeys        int    `json:"indexKeys" yaml:"indexKeys"`
	IndexFingerprint string `json:"indexFingerprint" yaml:"indexFingerprint"`
	Substitutions    int    `json:"substitutions" yaml:"substitutions"`
}

type substitutionDoc struct {
	Unit   string      `json:"unit" yaml:"unit"`
	Output string      `json:"output" yaml:"output"`
	From   string      `json:"from" yaml:"from"`
	To     string      `json:"to" yaml:"to"`
	Target entryTarget `json:"target" yaml:"target"`
}

type entryTarget struct {
	Unit   string `json:"unit" yaml:"unit"`
	Output string `json:"output" yaml:"output"`
}

type unitDocument struct {
	Path    string           `json:"path" yaml:"path"`
	Group   string           `json:"group,omitempty" yaml:"group,omitempty"`
	Outputs []outputDocument `json:"outputs" yaml:"outputs"`
}

type outputDocument struct {
	Name         string               `json:"name" yaml:"name"`
	Dependencies []dependencyDocument `json:"dependencies" yaml:"dependencies"`
}

type dependencyDocument struct {
	Kind string `json:"kind" yaml:"kind"`
	Ref  string `json:"ref" yaml:"ref"`
}

// indexDocument is the structured form of an export index.
type indexDocument struct {
	Fingerprint string          `json:"fingerprint" yaml:"fingerprint"`
	Keys        []indexKeyEntry `json:"keys" yaml:"keys"`
}

type indexKeyEntry struct {
	Key       string        `json:"key" yaml:"key"`
	Exporters []entryTarget `json:"exporters" yaml:"exporters"`
}

const (
	kindExternal = "external"
	kindLocal    = "local"
)

func newReportDocument(ws *domain.Workspace, r *domain.Report) reportDocument {
	doc := reportDocument{
		Mode:          string(r.Mode),
		Passes:        make([]passDocument, 0, len(r.Passes)),
		Substitutions: make([]substitutionDoc, 0),
		Units:         make([]unitDocument, 0, ws.Len()),
	}

	for _, p := range r.Passes {
		doc.Passes = append(doc.Passes, passDocument{
			Unit:             p.Unit,
			IndexKeys:        p.IndexKeys,
			IndexFingerprint: p.IndexFingerprint,
			Substitutions:    len(p.Substitutions),
		})
	}

	for _, s := range r.Substitutions() {
		doc.Substitutions = append(doc.Substitutions, substitutionDoc{
			Unit:   s.Unit,
			Output: s.Output,
			From:   s.Old.String(),
			To:     s.New.String(),
			Target: newEntryTarget(s.Target),
		})
	}

	for _, u := range ws.SortedUnits() {
		ud := unitDocument{
			Path:    u.Path(),
			Group:   u.Group(),
			Outputs: make([]outputDocument, 0),
		}
		for _, g := range u.OutputGroups() {
			od := outputDocument{
				Name:         g.Name(),
				Dependencies: make([]dependencyDocument, 0),
			}
			for _, d := range g.Dependencies() {
				od.Dependencies = append(od.Dependencies, dependencyDocument{
					Kind: dependencyKind(d),
					Ref:  d.String(),
				})
			}
			ud.Outputs = append(ud.Outputs, od)
		}
		doc.Units = append(doc.Units, ud)
	}

	return doc
}

func newIndexDocument(snapshot *domain.IndexSnapshot) indexDocument {
	doc := indexDocument{
		Fingerprint: snapshot.Fingerprint,
		Keys:        make([]indexKeyEntry, 0, len(snapshot.Entries)),
	}
	for _, e := range snapshot.Entries {
		entry := indexKeyEntry{
			Key:       e.Key.String(),
			Exporters: make([]entryTarget, 0, len(e.Entries)),
		}
		for _, ex := range e.Entries {
			entry.Exporters = append(entry.Exporters, newEntryTarget(ex))
		}
		doc.Keys = append(doc.Keys, entry)
	}
	return doc
}

func newEntryTarget(e domain.ExportingEntry) entryTarget {
	return entryTarget{Unit: e.Unit.String(), Output: e.Output.String()}
}

func dependencyKind(d domain.Dependency) string {
	if _, ok := d.(*domain.LocalReference); ok {
		return kindLocal
	}
	return kindExternal
}
