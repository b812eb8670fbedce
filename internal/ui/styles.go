// Package ui renders menu output: themed styles, panels, the screen clear
// and the interactive list viewer.
package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/idilsaglam/todoman/internal/model"
)

// Printer writes styled output to one writer.
type Printer struct {
	w     io.Writer
	r     *lipgloss.Renderer
	theme Theme

	title, success, pending, accent, muted, errStyle lipgloss.Style
}

// NewPrinter styles output for w. Color is dropped when noColor is set, the
// theme is mono, or w is not a terminal.
func NewPrinter(w io.Writer, theme Theme, noColor bool) *Printer {
	r := lipgloss.NewRenderer(w)
	if noColor || theme.Mono {
		r.SetColorProfile(termenv.Ascii)
	}
	return &Printer{
		w:        w,
		r:        r,
		theme:    theme,
		title:    newStyle(r, theme.Title).Bold(!theme.Mono),
		success:  newStyle(r, theme.Success),
		pending:  newStyle(r, theme.Pending),
		accent:   newStyle(r, theme.Accent),
		muted:    newStyle(r, theme.Muted).Faint(!theme.Mono),
		errStyle: newStyle(r, theme.Error).Bold(!theme.Mono),
	}
}

func (p *Printer) Theme() Theme { return p.theme }

func (p *Printer) Writer() io.Writer { return p.w }

func (p *Printer) Println(a ...any) {
	_, _ = fmt.Fprintln(p.w, a...)
}

func (p *Printer) Printf(format string, a ...any) {
	_, _ = fmt.Fprintf(p.w, format, a...)
}

// Print writes s with no newline; used for input labels.
func (p *Printer) Print(s string) {
	_, _ = fmt.Fprint(p.w, s)
}

func (p *Printer) OK(msg string) {
	p.Println(p.success.Render(p.theme.SymDone + " " + msg))
}

func (p *Printer) Fail(msg string) {
	p.Println(p.errStyle.Render("✖ " + msg))
}

func (p *Printer) Muted(msg string) {
	p.Println(p.muted.Render(msg))
}

// TodoLine is "completed: <bool> | text: <text>" with the flag colored.
func (p *Printer) TodoLine(it model.Todo) string {
	state := p.pending.Render(fmt.Sprint(it.Completed))
	if it.Completed {
		state = p.success.Render(fmt.Sprint(it.Completed))
	}
	return fmt.Sprintf("completed: %s | text: %s", state, it.Text)
}

// NumberedLine prefixes TodoLine with the 1-based index.
func (p *Printer) NumberedLine(n int, it model.Todo) string {
	return fmt.Sprintf("# %d: %s", n, p.TodoLine(it))
}
