package report

import "go.trai.ch/splice/internal/adapters/detector"

// NewFactoryWithDetector creates a Factory with a fixed colour detection result.
func NewFactoryWithDetector(mode detector.ColorMode) *Factory {
	return &Factory{detect: func() detector.ColorMode { return mode }}
}
