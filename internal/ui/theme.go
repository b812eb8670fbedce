package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme bundles palette + symbols + box borders.
type Theme struct {
	Name                                          string
	Title, Muted, Accent, Success, Error, Pending lipgloss.TerminalColor
	BoxUnchecked, BoxChecked                      string
	SymDone, SymPending                           string
	Border                                        lipgloss.Border
	Mono                                          bool
}

// ThemeByName returns the named theme; unknown names get classic.
func ThemeByName(name string) Theme {
	switch strings.ToLower(name) {
	case "neon":
		return Theme{
			Name:         "neon",
			Title:        lipgloss.Color("13"),
			Muted:        lipgloss.Color("8"),
			Accent:       lipgloss.Color("14"),
			Success:      lipgloss.Color("10"),
			Error:        lipgloss.Color("9"),
			Pending:      lipgloss.Color("11"),
			BoxUnchecked: "◻",
			BoxChecked:   "◼",
			SymDone:      "✔",
			SymPending:   "•",
			Border:       lipgloss.RoundedBorder(),
		}
	case "mono":
		none := lipgloss.NoColor{}
		return Theme{
			Name:         "mono",
			Title:        none,
			Muted:        none,
			Accent:       none,
			Success:      none,
			Error:        none,
			Pending:      none,
			BoxUnchecked: "[ ]",
			BoxChecked:   "[x]",
			SymDone:      "x",
			SymPending:   "-",
			Border:       lipgloss.ASCIIBorder(),
			Mono:         true,
		}
	default:
		return Theme{
			Name:         "classic",
			Title:        lipgloss.NoColor{},
			Muted:        lipgloss.Color("8"),
			Accent:       lipgloss.Color("12"),
			Success:      lipgloss.Color("42"),
			Error:        lipgloss.Color("9"),
			Pending:      lipgloss.Color("214"),
			BoxUnchecked: "☐",
			BoxChecked:   "☑",
			SymDone:      "✔",
			SymPending:   "•",
			Border:       lipgloss.NormalBorder(),
		}
	}
}

// Box returns the checkbox glyph for a completed flag.
func (t Theme) Box(completed bool) string {
	if completed {
		return t.BoxChecked
	}
	return t.BoxUnchecked
}
