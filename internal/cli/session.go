package cli

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/idilsaglam/todoman/internal/model"
	"github.com/idilsaglam/todoman/internal/todo"
	"github.com/idilsaglam/todoman/internal/ui"
)

// SessionOptions tune the menu loop.
type SessionOptions struct {
	// Pause follows each action so its message can be read.
	Pause       time.Duration
	ClearScreen bool

	// StableDelete keeps list order on delete instead of swap-remove.
	StableDelete bool

	// ListView, when set, replaces the plain listing of the List action.
	ListView func(items []model.Todo) error
}

// Session runs the interactive menu over one list.
type Session struct {
	list  *todo.List
	in    LineReader
	out   *ui.Printer
	log   *log.Logger
	opts  SessionOptions
	sleep func(time.Duration)
}

func NewSession(list *todo.List, in LineReader, out *ui.Printer, logger *log.Logger, opts SessionOptions) *Session {
	return &Session{
		list:  list,
		in:    in,
		out:   out,
		log:   logger,
		opts:  opts,
		sleep: time.Sleep,
	}
}

// List returns the list the session mutates.
func (s *Session) List() *todo.List { return s.list }

// Run loops until the user picks Exit (nil) or the input stream fails
// (*todo.IOError). Recoverable errors are printed and the loop continues.
func (s *Session) Run() error {
	state := StateRunning
	for state == StateRunning {
		if s.opts.ClearScreen {
			_ = ui.ClearScreen(s.out.Writer())
		}
		s.printMenu()

		line, err := s.in.ReadLine("Enter your action: ")
		if err != nil {
			return err
		}

		action := ParseAction(line)
		s.log.Debug("dispatch", "action", action, "input", line)

		state, err = s.Dispatch(action)
		if err != nil {
			if !todo.Recoverable(err) {
				return err
			}
			s.out.Fail(err.Error())
			s.pause()
		}
	}
	return nil
}

// Dispatch performs one action and returns the next state.
func (s *Session) Dispatch(a Action) (State, error) {
	var err error
	switch a {
	case ActionCreate:
		err = s.create()
	case ActionEdit:
		err = s.edit()
	case ActionDelete:
		err = s.remove()
	case ActionList:
		err = s.listTodos()
	case ActionComplete:
		err = s.complete()
	case ActionExit:
		return StateExiting, nil
	default:
		err = &todo.SelectionError{Input: "unknown menu entry"}
	}
	return StateRunning, err
}

func (s *Session) pause() {
	if s.opts.Pause > 0 {
		s.sleep(s.opts.Pause)
	}
}

func (s *Session) printMenu() {
	done, pending := s.list.Stats()
	lines := []string{"TODO Manager", ""}
	lines = append(lines, s.out.Header(done, pending)...)
	lines = append(lines,
		"",
		"Available Actions:",
		"1. Create TODO",
		"2. Edit TODO",
		"3. Delete TODO",
		"4. List TODOs",
		"5. Complete TODO",
		"6. Exit",
	)
	s.out.Println()
	s.out.Panel(lines)
	s.out.Println()
}

// printNumbered shows the list with 1-based indexes before a selection.
func (s *Session) printNumbered() {
	s.out.Println("Your TODO list:")
	s.out.Println()
	items := s.list.Items()
	if len(items) == 0 {
		s.out.Muted("no todos")
	}
	for i, it := range items {
		s.out.Println(s.out.NumberedLine(i+1, it))
	}
	s.out.Println()
}

// selectIndex prompts for an index and checks it against the list.
func (s *Session) selectIndex(prompt string) (int, error) {
	s.printNumbered()
	raw, err := s.in.ReadLine(prompt)
	if err != nil {
		return 0, err
	}
	n, err := todo.ParseIndex(raw)
	if err != nil {
		return 0, err
	}
	if _, err := s.list.Get(n); err != nil {
		return 0, err
	}
	return n, nil
}

func (s *Session) create() error {
	raw, err := s.in.ReadLine("Enter new TODO: ")
	if err != nil {
		return err
	}
	text, err := todo.ValidateText(raw)
	if err != nil {
		return err
	}
	s.list.Create(text)
	s.out.OK("Successfully added new todo!")
	s.pause()
	return nil
}

func (s *Session) listTodos() error {
	items := s.list.Items()
	if s.opts.ListView != nil {
		return s.opts.ListView(items)
	}
	s.out.Println("Your TODO list:")
	s.out.Println()
	if len(items) == 0 {
		s.out.Muted("no todos")
	}
	for _, it := range items {
		s.out.Println(s.out.TodoLine(it))
	}
	s.out.Println()
	_, err := s.in.ReadLine("Press enter key to return")
	return err
}

func (s *Session) complete() error {
	n, err := s.selectIndex("Enter TODO to complete: ")
	if err != nil {
		return err
	}
	if err := s.list.Complete(n); err != nil {
		return err
	}
	s.out.OK("Successfully marked TODO as completed.")
	s.pause()
	return nil
}

func (s *Session) remove() error {
	n, err := s.selectIndex("Enter TODO to delete: ")
	if err != nil {
		return err
	}
	var removed model.Todo
	if s.opts.StableDelete {
		removed, err = s.list.DeleteStable(n)
	} else {
		removed, err = s.list.Delete(n)
	}
	if err != nil {
		return err
	}
	s.log.Debug("deleted", "index", n, "text", removed.Text)
	s.out.OK("Successfully deleted TODO.")
	s.pause()
	return nil
}

func (s *Session) edit() error {
	n, err := s.selectIndex("Enter TODO to edit: ")
	if err != nil {
		return err
	}
	raw, err := s.in.ReadLine("Would you like to edit the [T]ext or toggle the [C]ompleted state? ")
	if err != nil {
		return err
	}
	field, err := todo.ParseField(raw)
	if err != nil {
		return err
	}

	var value string
	if field == todo.FieldText {
		current, _ := s.list.Get(n)
		s.out.Println("Current text:", current.Text)
		raw, err := s.in.ReadLine("Enter new text: ")
		if err != nil {
			return err
		}
		if value, err = todo.ValidateText(raw); err != nil {
			return err
		}
	}

	updated, err := s.list.Edit(n, field, value)
	if err != nil {
		return err
	}
	if field == todo.FieldText {
		s.out.OK(fmt.Sprintf("Successfully updated TODO. New text: %s", updated.Text))
	} else {
		s.out.OK(fmt.Sprintf("Successfully toggled completed state. New state: %t", updated.Completed))
	}
	s.pause()
	return nil
}
