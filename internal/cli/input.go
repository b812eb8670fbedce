package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/peterh/liner"

	"github.com/idilsaglam/todoman/internal/todo"
)

// LineReader reads one line of user input after showing prompt. Stream
// failures are returned as *todo.IOError.
type LineReader interface {
	ReadLine(prompt string) (string, error)
}

// ScannerInput reads lines from any reader; used for pipes and tests.
type ScannerInput struct {
	r   *bufio.Reader
	out io.Writer
}

func NewScannerInput(r io.Reader, out io.Writer) *ScannerInput {
	return &ScannerInput{r: bufio.NewReader(r), out: out}
}

func (s *ScannerInput) ReadLine(prompt string) (string, error) {
	if prompt != "" {
		_, _ = fmt.Fprint(s.out, prompt)
	}
	line, err := s.r.ReadString('\n')
	if err != nil {
		// A final line without newline still counts.
		if errors.Is(err, io.EOF) && line != "" {
			return trimLineEnd(line), nil
		}
		return "", &todo.IOError{Op: "read input", Err: err}
	}
	return trimLineEnd(line), nil
}

func trimLineEnd(s string) string {
	s = strings.TrimSuffix(s, "\n")
	return strings.TrimSuffix(s, "\r")
}

// LinerInput reads from the terminal with line editing. Ctrl-C aborts the
// prompt and is reported like a closed stream.
type LinerInput struct {
	state *liner.State
}

func NewLinerInput() *LinerInput {
	st := liner.NewLiner()
	st.SetCtrlCAborts(true)
	return &LinerInput{state: st}
}

func (l *LinerInput) ReadLine(prompt string) (string, error) {
	line, err := l.state.Prompt(prompt)
	if err != nil {
		if errors.Is(err, liner.ErrPromptAborted) {
			err = fmt.Errorf("interrupted: %w", err)
		}
		return "", &todo.IOError{Op: "read input", Err: err}
	}
	// single-key menu answers stay out of history
	if len(strings.TrimSpace(line)) > 1 {
		l.state.AppendHistory(line)
	}
	return line, nil
}

// Close restores the terminal.
func (l *LinerInput) Close() error {
	return l.state.Close()
}
