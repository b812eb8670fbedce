package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ProgressBar renders a Unicode progress bar with percentage.
func ProgressBar(done, total, width int) string {
	if total <= 0 {
		total = 1
	}
	if width < 5 {
		width = 5
	}
	filled := int(float64(done) / float64(total) * float64(width))
	if filled > width {
		filled = width
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	pct := int(float64(done) / float64(total) * 100)
	return fmt.Sprintf("%s %3d%%", bar, pct)
}

// Panel frames lines with the theme border.
func (p *Printer) Panel(lines []string) {
	border := p.r.NewStyle().
		Border(p.theme.Border).
		BorderForeground(p.theme.Muted).
		Padding(0, 1)
	p.Println(border.Render(strings.Join(lines, "\n")))
}

// Header is the "Todos ✔ n • n Total n" line with a progress bar below.
func (p *Printer) Header(done, pending int) []string {
	t := p.theme
	head := fmt.Sprintf("%s  %s %d  %s %d  %s %d",
		p.title.Render("Todos"),
		p.success.Render(t.SymDone), done,
		p.pending.Render(t.SymPending), pending,
		p.accent.Render("Total"), done+pending,
	)
	return []string{head, p.muted.Render(ProgressBar(done, done+pending, 28))}
}

func newStyle(r *lipgloss.Renderer, c lipgloss.TerminalColor) lipgloss.Style {
	return r.NewStyle().Foreground(c)
}
