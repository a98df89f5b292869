package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"boxedit/internal/editor"
	"boxedit/internal/history"
)

const (
	appName               = "boxedit"
	defaultConfigFileName = "config.toml"
)

type Config struct {
	Logger LoggerConfig `toml:"logger"`
	Editor EditorConfig `toml:"editor"`
	Canvas CanvasConfig `toml:"canvas"`
	Export ExportConfig `toml:"export"`
}

type LoggerConfig struct {
	Level string `toml:"level"`
	// File is the log destination: empty discards, "-" is stderr.
	File string `toml:"file"`
}

type EditorConfig struct {
	// Typing is "edit" (one undo step per edit session) or "keystroke".
	Typing          string `toml:"typing"`
	HistoryLimit    int    `toml:"history_limit"`
	SystemClipboard bool   `toml:"system_clipboard"`
}

// CanvasConfig sets how many canvas pixels one terminal cell covers.
type CanvasConfig struct {
	CellWidth  int `toml:"cell_width"`
	CellHeight int `toml:"cell_height"`
}

type ExportConfig struct {
	Directory string `toml:"directory"`
	Filename  string `toml:"filename"`
	Borders   bool   `toml:"borders"`
}

func defaultConfig() *Config {
	return &Config{
		Logger: LoggerConfig{Level: "info"},
		Editor: EditorConfig{
			Typing:          editor.TypingPerEdit.String(),
			HistoryLimit:    history.DefaultLimit,
			SystemClipboard: true,
		},
		Canvas: CanvasConfig{CellWidth: 8, CellHeight: 16},
		Export: ExportConfig{Filename: appName},
	}
}

func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, appName, defaultConfigFileName)
}

// loadConfig reads path over the defaults. A missing file is not an error.
// The returned warnings list keys the file set that nothing reads. Values are
// not checked here; call validate once every override is applied.
func loadConfig(path string) (*Config, []string, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil, nil
	} else if err != nil {
		return cfg, nil, fmt.Errorf("error checking config file '%s': %w", path, err)
	}

	meta, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return defaultConfig(), nil, fmt.Errorf("failed to parse config file '%s': %w", path, err)
	}
	var warnings []string
	for _, key := range meta.Undecoded() {
		warnings = append(warnings, fmt.Sprintf("unrecognized config key %q", key.String()))
	}
	return cfg, warnings, nil
}

// validate resets invalid values to their defaults and says which ones it
// touched.
func (c *Config) validate() []string {
	defaults := defaultConfig()
	var warnings []string
	if _, err := parseTypingMode(c.Editor.Typing); err != nil {
		warnings = append(warnings, err.Error())
		c.Editor.Typing = defaults.Editor.Typing
	}
	if c.Editor.HistoryLimit < 0 {
		warnings = append(warnings, fmt.Sprintf("history_limit %d is negative", c.Editor.HistoryLimit))
		c.Editor.HistoryLimit = defaults.Editor.HistoryLimit
	}
	if c.Canvas.CellWidth <= 0 {
		c.Canvas.CellWidth = defaults.Canvas.CellWidth
	}
	if c.Canvas.CellHeight <= 0 {
		c.Canvas.CellHeight = defaults.Canvas.CellHeight
	}
	if c.Logger.Level == "" {
		c.Logger.Level = defaults.Logger.Level
	}
	if c.Export.Filename == "" {
		c.Export.Filename = defaults.Export.Filename
	}
	if strings.HasPrefix(c.Export.Directory, "~") {
		if home, err := os.UserHomeDir(); err == nil {
			c.Export.Directory = filepath.Join(home, strings.TrimPrefix(c.Export.Directory, "~"))
		}
	}
	return warnings
}

func parseTypingMode(s string) (editor.TypingMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "edit", "blur":
		return editor.TypingPerEdit, nil
	case "keystroke", "key":
		return editor.TypingPerKeystroke, nil
	}
	return editor.TypingPerEdit, fmt.Errorf("unknown typing mode %q", s)
}

func (c *Config) TypingMode() editor.TypingMode {
	m, _ := parseTypingMode(c.Editor.Typing)
	return m
}

// GetSavePath places filename in the export directory, creating it on demand.
func (c *Config) GetSavePath(filename string) (string, error) {
	if c.Export.Directory == "" {
		return filename, nil
	}
	if err := os.MkdirAll(c.Export.Directory, 0o755); err != nil {
		return "", fmt.Errorf("create export directory: %w", err)
	}
	return filepath.Join(c.Export.Directory, filename), nil
}
