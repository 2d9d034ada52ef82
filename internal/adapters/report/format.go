// Package report renders resolution reports and export indexes as text, JSON or YAML.
package report

import (
	"github.com/muesli/termenv"
	"go.trai.ch/splice/internal/adapters/detector"
	"go.trai.ch/splice/internal/core/domain"
	"go.trai.ch/splice/internal/core/ports"
	"go.trai.ch/zerr"
)

// Format is an output format of the renderer.
type Format string

const (
	// FormatText is the human-readable, optionally coloured format.
	FormatText Format = "text"
	// FormatJSON is an indented JSON document.
	FormatJSON Format = "json"
	// FormatYAML is a YAML document.
	FormatYAML Format = "yaml"
)

// ParseFormat converts a flag value to a Format. An empty string selects FormatText.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case "", FormatText:
		return FormatText, nil
	case FormatJSON:
		return FormatJSON, nil
	case FormatYAML:
		return FormatYAML, nil
	default:
		return "", zerr.With(domain.ErrInvalidFormat, "format", s)
	}
}

// Factory implements ports.RendererFactory.
type Factory struct {
	detect func() detector.ColorMode
}

// NewFactory creates a Factory that detects the colour mode from the process environment.
func NewFactory() *Factory {
	return &Factory{detect: detector.DetectEnvironment}
}

// NewRenderer returns the renderer for format, coloured according to color.
func (f *Factory) NewRenderer(format, color string) (ports.Renderer, error) {
	parsed, err := ParseFormat(format)
	if err != nil {
		return nil, err
	}

	if parsed != FormatText {
		return &StructuredRenderer{format: parsed}, nil
	}

	mode := detector.ResolveMode(f.detect(), color)
	return NewTextRenderer(detector.Profile(mode)), nil
}

// NewRenderer returns a renderer for format without colour.
func NewRenderer(format Format) (ports.Renderer, error) {
	switch format {
	case FormatText:
		return NewTextRenderer(func() termenv.Profile { return termenv.Ascii }), nil
	case FormatJSON, FormatYAML:
		return &StructuredRenderer{format: format}, nil
	default:
		return nil, zerr.With(domain.ErrInvalidFormat, "format", string(format))
	}
}
