package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"marketvet.ai/cli/internal/core/result"
)

const separatorWidth = 60

// ReportRenderer prints the full validation report: one banner per
// layer, one status line per check, the tallies line, then the detail
// blocks for failures and warnings.
type ReportRenderer struct {
	out   io.Writer
	plain bool

	banner lipgloss.Style
	pass   lipgloss.Style
	fail   lipgloss.Style
	warn   lipgloss.Style
	dim    lipgloss.Style
}

// NewReportRenderer builds a renderer; plain disables all styling.
func NewReportRenderer(out io.Writer, plain bool) *ReportRenderer {
	return &ReportRenderer{
		out:    out,
		plain:  plain,
		banner: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86")),
		pass:   lipgloss.NewStyle().Foreground(lipgloss.Color("46")),
		fail:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196")),
		warn:   lipgloss.NewStyle().Foreground(lipgloss.Color("226")),
		dim:    lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	}
}

// Render writes the complete report for a finished run.
func (r *ReportRenderer) Render(log *result.Log) {
	fmt.Fprintf(r.out, "%s\n", r.style(r.dim, "run "+log.RunID()))

	for _, section := range log.Sections() {
		r.renderBanner(section.Title)
		for _, e := range section.Entries {
			fmt.Fprintf(r.out, "  %s %s\n", r.statusCell(e.Status), e.Label)
		}
	}

	tallies := fmt.Sprintf("Results: %d passed, %d failed, %d warning(s)",
		log.Passed(), log.Failed(), log.Warned())
	r.renderBanner(tallies)

	r.renderDetails("Failures", log.Failures())
	r.renderDetails("Warnings", log.Warnings())
}

func (r *ReportRenderer) renderBanner(title string) {
	rule := strings.Repeat("=", separatorWidth)
	fmt.Fprintf(r.out, "\n%s\n  %s\n%s\n", rule, r.style(r.banner, title), rule)
}

func (r *ReportRenderer) renderDetails(heading string, entries []result.Entry) {
	if len(entries) == 0 {
		return
	}
	fmt.Fprintf(r.out, "\n%s:\n\n", heading)
	for _, e := range entries {
		fmt.Fprintf(r.out, "--- %s ---\n%s\n\n", e.Label, e.Detail)
	}
}

func (r *ReportRenderer) statusCell(s result.Status) string {
	cell := fmt.Sprintf("%-8s", s)
	switch s {
	case result.StatusPass:
		return r.style(r.pass, cell)
	case result.StatusFail:
		return r.style(r.fail, cell)
	case result.StatusWarn:
		return r.style(r.warn, cell)
	}
	return cell
}

func (r *ReportRenderer) style(st lipgloss.Style, text string) string {
	if r.plain {
		return text
	}
	return st.Render(text)
}
