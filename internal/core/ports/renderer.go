package ports

import (
	"io"

	"go.trai.ch/splice/internal/core/domain"
)

// Renderer presents the outcome of a run.
//
//go:generate mockgen -source=renderer.go -destination=mocks/mock_renderer.go -package=mocks
type Renderer interface {
	// RenderReport writes the substitutions of a run and the resulting dependencies of every unit.
	RenderReport(w io.Writer, ws *domain.Workspace, report *domain.Report) error

	// RenderIndex writes every artifact key of an export index with its exporting entries.
	RenderIndex(w io.Writer, snapshot *domain.IndexSnapshot) error
}

// RendererFactory selects a Renderer for an output format and colour preference.
type RendererFactory interface {
	// NewRenderer returns the renderer for format ("text", "json" or "yaml").
	// color is "auto", "always" or "never" and only affects the text format.
	NewRenderer(format, color string) (Renderer, error)
}
