package cli

import (
	"bytes"
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/idilsaglam/todoman/internal/model"
	"github.com/idilsaglam/todoman/internal/todo"
	"github.com/idilsaglam/todoman/internal/ui"
)

// scriptedInput replays lines and then reports a closed stream.
type scriptedInput struct {
	lines   []string
	prompts []string
}

func (s *scriptedInput) ReadLine(prompt string) (string, error) {
	s.prompts = append(s.prompts, prompt)
	if len(s.lines) == 0 {
		return "", &todo.IOError{Op: "read input", Err: io.EOF}
	}
	line := s.lines[0]
	s.lines = s.lines[1:]
	return line, nil
}

// push queues more lines.
func (s *scriptedInput) push(lines ...string) {
	s.lines = append(s.lines, lines...)
}

type testSession struct {
	*Session
	in     *scriptedInput
	out    *bytes.Buffer
	pauses int
}

func newTestSession(t *testing.T, texts []string, opts SessionOptions) *testSession {
	t.Helper()

	items := make([]model.Todo, 0, len(texts))
	for _, text := range texts {
		items = append(items, model.New(text))
	}

	ts := &testSession{in: &scriptedInput{}, out: &bytes.Buffer{}}
	printer := ui.NewPrinter(ts.out, ui.ThemeByName("classic"), true)
	ts.Session = NewSession(todo.NewList(items), ts.in, printer, log.New(io.Discard), opts)
	ts.sleep = func(time.Duration) { ts.pauses++ }

	return ts
}

func (ts *testSession) texts() []string {
	var out []string
	for _, it := range ts.List().Items() {
		out = append(out, it.Text)
	}
	return out
}
