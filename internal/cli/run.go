// Package cli wires flags, config, storage and the interactive menu.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	flag "github.com/spf13/pflag"

	"github.com/idilsaglam/todoman/internal/config"
	"github.com/idilsaglam/todoman/internal/logging"
	"github.com/idilsaglam/todoman/internal/model"
	"github.com/idilsaglam/todoman/internal/store/jsonstore"
	"github.com/idilsaglam/todoman/internal/todo"
	"github.com/idilsaglam/todoman/internal/ui"
)

// Exit codes.
const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

type globalFlags struct {
	file       string
	configPath string
	theme      string
	logLevel   string
	noColor    bool
	help       bool
}

func newFlagSet(f *globalFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("todoman", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVarP(&f.file, "file", "f", "", "todo file (default todos.json in the working directory)")
	fs.StringVarP(&f.configPath, "config", "c", "", "explicit config file (JSONC)")
	fs.StringVar(&f.theme, "theme", "", "color theme: classic, neon or mono")
	fs.StringVar(&f.logLevel, "log-level", "", "log level: debug, info, warn or error")
	fs.BoolVar(&f.noColor, "no-color", false, "disable colored output")
	fs.BoolVarP(&f.help, "help", "h", false, "show help")
	return fs
}

func parseFlags(args []string) (globalFlags, error) {
	var f globalFlags
	fs := newFlagSet(&f)
	if err := fs.Parse(args); err != nil {
		return f, err
	}
	if fs.NArg() > 0 {
		return f, fmt.Errorf("unexpected argument: %s", fs.Arg(0))
	}
	return f, nil
}

// PrintHelp writes usage to w.
func PrintHelp(w io.Writer) {
	var f globalFlags
	fs := newFlagSet(&f)
	_, _ = fmt.Fprintf(w, `todoman - an interactive TODO manager

Usage:
  todoman [flags]

Pick an action from the menu by number:
  1 Create   2 Edit   3 Delete   4 List   5 Complete   6 Exit

Todos are saved to the todo file on exit.

Flags:
%s`, fs.FlagUsages())
}

// Run is the main entry point. args includes the program name. Returns the
// process exit code.
func Run(in io.Reader, out, errOut io.Writer, args []string, env map[string]string) int {
	if len(args) > 0 {
		args = args[1:]
	}
	flags, err := parseFlags(args)
	if err != nil {
		fmt.Fprintln(errOut, "error:", err)
		PrintHelp(errOut)
		return ExitUsage
	}
	if flags.help {
		PrintHelp(out)
		return ExitOK
	}

	cfg, err := config.Load(config.Input{
		ConfigPath: flags.configPath,
		Env:        env,
		Overrides: config.Config{
			File:     flags.file,
			Theme:    flags.theme,
			LogLevel: flags.logLevel,
			NoColor:  flags.noColor,
		},
	})
	if err != nil {
		fmt.Fprintln(errOut, "error:", err)
		return ExitError
	}

	logger := logging.New(errOut, cfg.LogLevel)
	logger.Debug("config loaded", "file", cfg.File, "sources", cfg.Sources)

	store, err := jsonstore.New(cfg.File, nil)
	if err != nil {
		logger.Error("cannot open todo file", "err", err)
		return ExitError
	}

	items, err := store.Load()
	if err != nil {
		logger.Warn("error loading data from file, starting with an empty list", "path", store.Path(), "err", err)
		items = []model.Todo{}
	} else {
		logger.Debug("loaded todos", "path", store.Path(), "count", len(items))
	}
	list := todo.NewList(items)

	theme := ui.ThemeByName(cfg.Theme)
	outFile, _ := out.(*os.File)
	outTTY := ui.IsTerminal(outFile)
	printer := ui.NewPrinter(out, theme, cfg.NoColor || !outTTY)

	var reader LineReader
	inFile, _ := in.(*os.File)
	if ui.IsTerminal(inFile) && outTTY {
		li := NewLinerInput()
		defer func() { _ = li.Close() }()
		reader = li
	} else {
		reader = NewScannerInput(in, out)
	}

	opts := SessionOptions{
		Pause:        cfg.Pause(),
		ClearScreen:  cfg.Clear() && outTTY,
		StableDelete: cfg.DeleteMode == config.DeleteStable,
	}
	if cfg.ListView == config.ListViewTUI && outTTY && inFile != nil {
		opts.ListView = func(items []model.Todo) error {
			return ui.ShowList(items, theme, in, out)
		}
	}

	session := NewSession(list, reader, printer, logger, opts)
	if err := session.Run(); err != nil {
		fmt.Fprintf(errOut, "Error when reading input: %v, exit.\n", err)
		if !errors.Is(err, todo.ErrIO) {
			logger.Error("menu loop stopped", "err", err)
		}
		return ExitError
	}

	printer.Println("Storing to file....")
	if err := store.Save(list.Items()); err != nil {
		logger.Error("error storing data to file", "path", store.Path(), "err", err)
		printer.Fail("Error storing data to file: " + err.Error())
		return ExitError
	}
	printer.Println("Exiting, Bye!")
	return ExitOK
}
