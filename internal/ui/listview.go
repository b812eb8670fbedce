package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/todoman/internal/model"
)

// listItem adapts a todo to bubbles/list.Item.
type listItem struct {
	todo  model.Todo
	index int
}

func (i listItem) FilterValue() string { return i.todo.Text }

// itemDelegate renders one todo per line.
type itemDelegate struct {
	theme                          Theme
	box, doneBox, doneText, cursor lipgloss.Style
}

func newItemDelegate(t Theme) itemDelegate {
	return itemDelegate{
		theme:    t,
		box:      lipgloss.NewStyle().Foreground(t.Muted),
		doneBox:  lipgloss.NewStyle().Foreground(t.Success),
		doneText: lipgloss.NewStyle().Faint(true).Strikethrough(!t.Mono),
		cursor:   lipgloss.NewStyle().Bold(true).Reverse(!t.Mono),
	}
}

func (d itemDelegate) Height() int                         { return 1 }
func (d itemDelegate) Spacing() int                        { return 0 }
func (d itemDelegate) Update(tea.Msg, *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(listItem)
	if !ok {
		return
	}
	box := d.box.Render(d.theme.BoxUnchecked)
	text := it.todo.Text
	if it.todo.Completed {
		box = d.doneBox.Render(d.theme.BoxChecked)
		text = d.doneText.Render(text)
	}
	prefix := "  "
	if index == m.Index() {
		prefix = d.cursor.Render(">") + " "
	}
	_, _ = fmt.Fprintf(w, "%s%2d. %s %s", prefix, it.index, box, text)
}

// listView is a read-only Bubble Tea model over a snapshot of the list.
type listView struct {
	list list.Model
	back key.Binding
}

func newListView(items []model.Todo, t Theme) listView {
	li := make([]list.Item, 0, len(items))
	for i, it := range items {
		li = append(li, listItem{todo: it, index: i + 1})
	}

	done := 0
	for _, it := range items {
		if it.Completed {
			done++
		}
	}

	l := list.New(li, newItemDelegate(t), 0, 0)
	l.Title = fmt.Sprintf("Todos   %s %d  %s %d  Total %d",
		t.SymDone, done, t.SymPending, len(items)-done, len(items))
	l.Styles.Title = lipgloss.NewStyle().Bold(true)
	l.SetShowStatusBar(true)
	l.SetStatusBarItemName("todo", "todos")
	l.SetFilteringEnabled(true)
	l.FilterInput.Prompt = "/ "

	back := key.NewBinding(key.WithKeys("enter", "q", "esc"), key.WithHelp("enter/q", "back to menu"))
	l.KeyMap.Quit = back
	l.AdditionalShortHelpKeys = func() []key.Binding { return []key.Binding{back} }

	return listView{list: l, back: back}
}

func (m listView) Init() tea.Cmd { return nil }

func (m listView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width-2, msg.Height-2)
		return m, nil
	case tea.KeyMsg:
		switch {
		case m.list.FilterState() == list.Filtering:
		case m.list.FilterState() == list.FilterApplied && msg.String() == "esc":
			// esc clears the filter first
		case key.Matches(msg, m.back):
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m listView) View() string {
	return m.list.View()
}

// ShowList runs the interactive viewer until the user returns to the menu.
// The list is not modified.
func ShowList(items []model.Todo, t Theme, in io.Reader, out io.Writer) error {
	p := tea.NewProgram(newListView(items, t),
		tea.WithAltScreen(),
		tea.WithInput(in),
		tea.WithOutput(out),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("list view: %w", err)
	}
	return nil
}
