// Package todo holds the in-memory todo list and the operations the menu
// performs on it. All user-facing indexes are 1-based.
package todo

import (
	"strconv"
	"strings"

	"github.com/idilsaglam/todoman/internal/model"
)

// Field selects what an Edit changes.
type Field int

const (
	FieldText Field = iota + 1
	FieldToggleCompleted
)

// List is an ordered, mutable collection of todos. It is owned by a single
// session and is not safe for concurrent use.
type List struct {
	items []model.Todo
}

// NewList wraps items. The slice is copied.
func NewList(items []model.Todo) *List {
	l := &List{items: make([]model.Todo, len(items))}
	copy(l.items, items)
	return l
}

func (l *List) Len() int { return len(l.items) }

// Items returns a copy of the todos in list order.
func (l *List) Items() []model.Todo {
	out := make([]model.Todo, len(l.items))
	copy(out, l.items)
	return out
}

// Stats counts completed and pending todos.
func (l *List) Stats() (done, pending int) {
	for _, it := range l.items {
		if it.Completed {
			done++
		} else {
			pending++
		}
	}
	return
}

// Create appends a pending todo.
func (l *List) Create(text string) {
	l.items = append(l.items, model.New(text))
}

// Get returns the todo at 1-based index n.
func (l *List) Get(n int) (model.Todo, error) {
	idx, err := l.index(n)
	if err != nil {
		return model.Todo{}, err
	}
	return l.items[idx], nil
}

// Complete marks the todo at 1-based index n as completed.
func (l *List) Complete(n int) error {
	idx, err := l.index(n)
	if err != nil {
		return err
	}
	l.items[idx].Completed = true
	return nil
}

// Edit replaces the text or flips the completed flag of the todo at n.
// value is ignored for FieldToggleCompleted.
func (l *List) Edit(n int, field Field, value string) (model.Todo, error) {
	idx, err := l.index(n)
	if err != nil {
		return model.Todo{}, err
	}
	switch field {
	case FieldText:
		l.items[idx].Text = value
	case FieldToggleCompleted:
		l.items[idx].Completed = !l.items[idx].Completed
	default:
		return model.Todo{}, &SelectionError{Input: strconv.Itoa(int(field))}
	}
	return l.items[idx], nil
}

// Delete removes the todo at n by moving the last todo into its slot.
// Order is not preserved.
func (l *List) Delete(n int) (model.Todo, error) {
	idx, err := l.index(n)
	if err != nil {
		return model.Todo{}, err
	}
	removed := l.items[idx]
	last := len(l.items) - 1
	l.items[idx] = l.items[last]
	l.items[last] = model.Todo{}
	l.items = l.items[:last]
	return removed, nil
}

// DeleteStable removes the todo at n and keeps the remaining order.
func (l *List) DeleteStable(n int) (model.Todo, error) {
	idx, err := l.index(n)
	if err != nil {
		return model.Todo{}, err
	}
	removed := l.items[idx]
	l.items = append(l.items[:idx], l.items[idx+1:]...)
	return removed, nil
}

func (l *List) index(n int) (int, error) {
	if n < 1 || n > len(l.items) {
		return 0, &SelectionError{Input: strconv.Itoa(n)}
	}
	return n - 1, nil
}

// ParseIndex parses raw as an unsigned decimal index. Range is checked by
// the operation that uses it.
func ParseIndex(raw string) (int, error) {
	s := strings.TrimSpace(raw)
	n, err := strconv.ParseUint(s, 10, 0)
	if err != nil {
		return 0, &ParseError{Input: s, Err: err}
	}
	if n > uint64(maxInt) {
		return 0, &SelectionError{Input: s}
	}
	return int(n), nil
}

const maxInt = int(^uint(0) >> 1)

// ValidateText trims text and rejects an empty result.
func ValidateText(text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", ErrEmptyText
	}
	return text, nil
}

// ParseField maps the edit sub-prompt answer to a Field.
func ParseField(raw string) (Field, error) {
	switch strings.TrimSpace(raw) {
	case "T", "t":
		return FieldText, nil
	case "C", "c":
		return FieldToggleCompleted, nil
	}
	return 0, &SelectionError{Input: raw}
}
