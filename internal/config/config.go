// Package config loads todoman settings from JSONC files, the environment
// and command-line overrides.
package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/tailscale/hujson"
)

// Config errors.
var (
	ErrConfigInvalid      = errors.New("invalid config")
	ErrConfigFileNotFound = errors.New("config file not found")
	ErrConfigFileRead     = errors.New("cannot read config file")
)

// FileName is the project config looked up in the working directory.
const FileName = ".todoman.json"

// Enum values accepted by Validate.
const (
	ListViewPlain = "plain"
	ListViewTUI   = "tui"

	DeleteSwap   = "swap"
	DeleteStable = "stable"
)

var (
	themes    = []string{"classic", "neon", "mono"}
	listViews = []string{ListViewPlain, ListViewTUI}
	deletes   = []string{DeleteSwap, DeleteStable}
	levels    = []string{"debug", "info", "warn", "error"}
)

// Config holds all settings. Pointer fields distinguish "unset" from the
// zero value when merging layers.
type Config struct {
	File        string `json:"file,omitempty"`
	Theme       string `json:"theme,omitempty"`
	ListView    string `json:"list_view,omitempty"`
	DeleteMode  string `json:"delete_mode,omitempty"`
	ClearScreen *bool  `json:"clear_screen,omitempty"`
	PauseMS     *int   `json:"pause_ms,omitempty"`
	LogLevel    string `json:"log_level,omitempty"`
	NoColor     bool   `json:"no_color,omitempty"`

	// Sources lists the config files that were applied, lowest first.
	Sources []string `json:"-"`
}

// Default returns the built-in configuration.
func Default() Config {
	clearScreen := true
	pause := 1000
	return Config{
		File:        "todos.json",
		Theme:       "classic",
		ListView:    ListViewPlain,
		DeleteMode:  DeleteSwap,
		ClearScreen: &clearScreen,
		PauseMS:     &pause,
		LogLevel:    "warn",
	}
}

// Pause is the delay after each menu action.
func (c Config) Pause() time.Duration {
	if c.PauseMS == nil {
		return 0
	}
	return time.Duration(*c.PauseMS) * time.Millisecond
}

// Clear reports whether the screen is cleared before the menu is drawn.
func (c Config) Clear() bool {
	return c.ClearScreen != nil && *c.ClearScreen
}

// Input holds everything Load needs.
type Input struct {
	WorkDir    string            // empty means os.Getwd
	ConfigPath string            // explicit --config; must exist when set
	Env        map[string]string // environment
	Overrides  Config            // flag values; empty fields are ignored
}

// Load merges, lowest precedence first: defaults, global user config,
// project config (or the explicit file), environment, overrides.
func Load(in Input) (Config, error) {
	workDir := in.WorkDir
	if workDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return Config{}, fmt.Errorf("cannot get working directory: %w", err)
		}
		workDir = wd
	}

	cfg := Default()

	if p := globalPath(in.Env); p != "" {
		fileCfg, loaded, err := loadFile(p, false)
		if err != nil {
			return Config{}, err
		}
		if loaded {
			cfg = merge(cfg, fileCfg)
			cfg.Sources = append(cfg.Sources, p)
		}
	}

	projectPath, mustExist := filepath.Join(workDir, FileName), false
	if in.ConfigPath != "" {
		projectPath, mustExist = in.ConfigPath, true
		if !filepath.IsAbs(projectPath) {
			projectPath = filepath.Join(workDir, projectPath)
		}
	}
	fileCfg, loaded, err := loadFile(projectPath, mustExist)
	if err != nil {
		return Config{}, err
	}
	if loaded {
		cfg = merge(cfg, fileCfg)
		cfg.Sources = append(cfg.Sources, projectPath)
	}

	cfg = merge(cfg, fromEnv(in.Env))
	cfg = merge(cfg, in.Overrides)

	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	if !filepath.IsAbs(cfg.File) {
		cfg.File = filepath.Join(workDir, cfg.File)
	}
	return cfg, nil
}

// globalPath is $XDG_CONFIG_HOME/todoman/config.json, falling back to
// ~/.config/todoman/config.json.
func globalPath(env map[string]string) string {
	if xdg := env["XDG_CONFIG_HOME"]; xdg != "" {
		return filepath.Join(xdg, "todoman", "config.json")
	}
	if home := env["HOME"]; home != "" {
		return filepath.Join(home, ".config", "todoman", "config.json")
	}
	return ""
}

func loadFile(path string, mustExist bool) (Config, bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if !mustExist {
			return Config{}, false, nil
		}
		if os.IsNotExist(err) {
			return Config{}, false, fmt.Errorf("%w: %s", ErrConfigFileNotFound, path)
		}
		return Config{}, false, fmt.Errorf("%w: %s: %w", ErrConfigFileRead, path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, false, fmt.Errorf("%w %s: %w", ErrConfigInvalid, path, err)
	}
	return cfg, true, nil
}

// Parse decodes JSONC (comments and trailing commas allowed).
func Parse(data []byte) (Config, error) {
	standardized, err := hujson.Standardize(data)
	if err != nil {
		return Config{}, fmt.Errorf("invalid JSONC: %w", err)
	}
	var cfg Config
	dec := json.NewDecoder(bytes.NewReader(standardized))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("invalid JSON: %w", err)
	}
	return cfg, nil
}

func fromEnv(env map[string]string) Config {
	var cfg Config
	cfg.File = env["TODOMAN_FILE"]
	cfg.LogLevel = env["TODOMAN_LOG_LEVEL"]
	if _, ok := env["NO_COLOR"]; ok {
		cfg.NoColor = true
	}
	return cfg
}

func merge(base, overlay Config) Config {
	if overlay.File != "" {
		base.File = overlay.File
	}
	if overlay.Theme != "" {
		base.Theme = overlay.Theme
	}
	if overlay.ListView != "" {
		base.ListView = overlay.ListView
	}
	if overlay.DeleteMode != "" {
		base.DeleteMode = overlay.DeleteMode
	}
	if overlay.ClearScreen != nil {
		base.ClearScreen = overlay.ClearScreen
	}
	if overlay.PauseMS != nil {
		base.PauseMS = overlay.PauseMS
	}
	if overlay.LogLevel != "" {
		base.LogLevel = strings.ToLower(overlay.LogLevel)
	}
	if overlay.NoColor {
		base.NoColor = true
	}
	return base
}

// Validate rejects unknown enum values, an empty file and negative pauses.
func Validate(cfg Config) error {
	if strings.TrimSpace(cfg.File) == "" {
		return fmt.Errorf("%w: file must not be empty", ErrConfigInvalid)
	}
	checks := []struct {
		name, value string
		allowed     []string
	}{
		{"theme", cfg.Theme, themes},
		{"list_view", cfg.ListView, listViews},
		{"delete_mode", cfg.DeleteMode, deletes},
		{"log_level", cfg.LogLevel, levels},
	}
	for _, c := range checks {
		if !slices.Contains(c.allowed, c.value) {
			return fmt.Errorf("%w: %s %q (want one of %s)",
				ErrConfigInvalid, c.name, c.value, strings.Join(c.allowed, ", "))
		}
	}
	if cfg.PauseMS != nil && *cfg.PauseMS < 0 {
		return fmt.Errorf("%w: pause_ms must be >= 0", ErrConfigInvalid)
	}
	return nil
}
