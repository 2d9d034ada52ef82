// Package detector provides environment detection for colour selection.
package detector

import (
	"os"

	"github.com/muesli/termenv"
	"go.trai.ch/splice/internal/ui/output"
	"golang.org/x/term"
)

// ColorMode selects how reports are coloured.
type ColorMode int

const (
	// ModeAuto defers to DetectEnvironment.
	ModeAuto ColorMode = iota
	// ModeTerminal uses the full colour profile of the terminal.
	ModeTerminal
	// ModeCI uses plain ANSI colours, which CI log viewers understand.
	ModeCI
	// ModePlain disables colour.
	ModePlain
)

// DetectEnvironment returns the recommended colour mode.
// Piped output is plain; a CI environment gets ANSI colours.
func DetectEnvironment() ColorMode {
	return detect(term.IsTerminal(int(os.Stdout.Fd())), os.Getenv("CI"))
}

func detect(isTTY bool, ci string) ColorMode {
	if ci == "true" || ci == "1" {
		return ModeCI
	}
	if !isTTY {
		return ModePlain
	}
	return ModeTerminal
}

// ResolveMode applies the --color flag to auto-detection.
// userFlag should be one of: "auto", "always", "never", or empty.
func ResolveMode(autoDetected ColorMode, userFlag string) ColorMode {
	switch userFlag {
	case "always":
		return ModeTerminal
	case "never":
		return ModePlain
	default:
		return autoDetected
	}
}

// Profile returns the termenv profile function for mode.
func Profile(mode ColorMode) func() termenv.Profile {
	switch mode {
	case ModeTerminal:
		return output.ColorProfile
	case ModeCI:
		return output.ColorProfileANSI
	default:
		return output.ColorProfileNone
	}
}
