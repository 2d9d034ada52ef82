package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"go.trai.ch/splice/internal/core/domain"
	"go.trai.ch/splice/internal/ui/output"
	"go.trai.ch/splice/internal/ui/style"
	"go.trai.ch/zerr"
)

// TextRenderer writes human-readable reports.
type TextRenderer struct {
	profile func() termenv.Profile
}

// NewTextRenderer creates a TextRenderer colouring its output with the given profile.
func NewTextRenderer(profile func() termenv.Profile) *TextRenderer {
	return &TextRenderer{profile: profile}
}

// RenderReport writes the substitutions of the run followed by every unit's dependencies.
func (r *TextRenderer) RenderReport(w io.Writer, ws *domain.Workspace, report *domain.Report) error {
	out := output.NewWithProfile(w, r.profile)
	p := painter{out: out}
	var b strings.Builder

	subs := report.Substitutions()
	fmt.Fprintf(&b, "Resolved %s in %s mode, %s\n\n",
		plural(len(report.Passes), "unit"), report.Mode, plural(len(subs), "substitution"))

	b.WriteString(p.heading("Substitutions") + "\n")
	if len(subs) == 0 {
		b.WriteString("  " + p.muted("none") + "\n")
	}
	locations := make([]string, len(subs))
	for i, s := range subs {
		locations[i] = s.Unit + ":" + s.Output
	}
	width := style.MaxWidth(locations)
	for i, s := range subs {
		fmt.Fprintf(&b, "  %s %s  %s %s %s\n",
			p.color(style.Check, style.Green),
			style.PadRight(locations[i], width),
			s.Old.String(),
			p.muted(style.Arrow),
			s.New.String(),
		)
	}

	b.WriteString("\n" + p.heading("Dependencies") + "\n")
	for _, u := range ws.SortedUnits() {
		b.WriteString("  " + u.Path() + "\n")
		groups := u.OutputGroups()
		if len(groups) == 0 {
			b.WriteString("    " + p.muted("(no output groups)") + "\n")
			continue
		}
		for _, g := range groups {
			b.WriteString("    " + g.Name() + "\n")
			deps := g.Dependencies()
			if len(deps) == 0 {
				b.WriteString("      " + p.muted("(none)") + "\n")
			}
			for _, d := range deps {
				icon := p.muted(style.Circle)
				if dependencyKind(d) == kindLocal {
					icon = p.color(style.Dot, style.Green)
				}
				b.WriteString("      " + icon + " " + d.String() + "\n")
			}
		}
	}

	if _, err := out.WriteString(b.String()); err != nil {
		return zerr.Wrap(err, "failed to write report")
	}
	return nil
}

// RenderIndex writes every artifact key followed by its exporting entries in tie-break order.
func (r *TextRenderer) RenderIndex(w io.Writer, snapshot *domain.IndexSnapshot) error {
	out := output.NewWithProfile(w, r.profile)
	p := painter{out: out}
	var b strings.Builder

	fmt.Fprintf(&b, "%s %s, fingerprint %s\n\n",
		p.heading("Export index:"), plural(len(snapshot.Entries), "key"), snapshot.Fingerprint)

	if len(snapshot.Entries) == 0 {
		b.WriteString("  " + p.muted("(empty)") + "\n")
	}
	for _, e := range snapshot.Entries {
		b.WriteString(e.Key.String() + "\n")
		for _, ex := range e.Entries {
			b.WriteString("  " + ex.String() + "\n")
		}
	}

	if _, err := out.WriteString(b.String()); err != nil {
		return zerr.Wrap(err, "failed to write index")
	}
	return nil
}

type painter struct {
	out *termenv.Output
}

func (p painter) heading(s string) string {
	return p.out.String(s).Bold().Foreground(termenv.RGBColor(string(style.Iris))).String()
}

func (p painter) muted(s string) string {
	return p.color(s, style.Slate)
}

func (p painter) color(s string, c lipgloss.Color) string {
	return p.out.String(s).Foreground(termenv.RGBColor(string(c))).String()
}

func plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
