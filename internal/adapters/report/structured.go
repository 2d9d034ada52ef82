package report

import (
	"encoding/json"
	"io"

	"go.trai.ch/splice/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// StructuredRenderer writes reports as JSON or YAML documents.
type StructuredRenderer struct {
	format Format
}

// RenderReport writes the run and the resulting dependencies of every unit.
func (r *StructuredRenderer) RenderReport(w io.Writer, ws *domain.Workspace, report *domain.Report) error {
	return r.encode(w, newReportDocument(ws, report))
}

// RenderIndex writes every key of the index with its exporters.
func (r *StructuredRenderer) RenderIndex(w io.Writer, snapshot *domain.IndexSnapshot) error {
	return r.encode(w, newIndexDocument(snapshot))
}

func (r *StructuredRenderer) encode(w io.Writer, v any) error {
	switch r.format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return zerr.Wrap(err, "failed to encode json report")
		}
		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return zerr.Wrap(err, "failed to encode yaml report")
		}
		if err := enc.Close(); err != nil {
			return zerr.Wrap(err, "failed to encode yaml report")
		}
		return nil
	default:
		return zerr.With(domain.ErrInvalidFormat, "format", string(r.format))
	}
}
