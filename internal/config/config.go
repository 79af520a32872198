package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/dshills/textbridge/internal/engine/buffer"
	"github.com/dshills/textbridge/internal/engine/text"
)

// Config holds the settings of an editing session.
type Config struct {
	Diff DiffConfig `toml:"diff" yaml:"diff"`
	Undo UndoConfig `toml:"undo" yaml:"undo"`
	Log  LogConfig  `toml:"log" yaml:"log"`
}

// DiffConfig bounds the diffs computed between unrelated snapshots.
// Zero selects the built-in default, a negative value disables the limit.
type DiffConfig struct {
	MaxLines    int `toml:"max_lines" yaml:"max_lines"`
	MaxMemoryMB int `toml:"max_memory_mb" yaml:"max_memory_mb"`
}

// UndoConfig bounds the undo history.
type UndoConfig struct {
	MaxEntries int `toml:"max_entries" yaml:"max_entries"`
}

// LogConfig selects the log level: debug, info, warn or error.
type LogConfig struct {
	Level string `toml:"level" yaml:"level"`
}

// Default returns the built-in settings.
func Default() Config {
	d := text.DefaultDiffOptions()
	return Config{
		Diff: DiffConfig{MaxLines: d.MaxLines, MaxMemoryMB: d.MaxMemoryMB},
		Undo: UndoConfig{MaxEntries: buffer.DefaultMaxUndoEntries},
		Log:  LogConfig{Level: "info"},
	}
}

// Validate checks that every setting is usable.
func (c Config) Validate() error {
	if c.Undo.MaxEntries < 0 {
		return fmt.Errorf("%w: undo.max_entries must not be negative, got %d",
			ErrValidationFailed, c.Undo.MaxEntries)
	}
	if _, err := parseLevel(c.Log.Level); err != nil {
		return err
	}
	return nil
}

// DiffOptions returns the diff limits as text.DiffOptions.
func (c Config) DiffOptions() text.DiffOptions {
	return text.DiffOptions{
		MaxLines:    c.Diff.MaxLines,
		MaxMemoryMB: c.Diff.MaxMemoryMB,
	}
}

// LogLevel returns the configured level, or slog.LevelInfo if it is not valid.
func (c Config) LogLevel() slog.Level {
	level, err := parseLevel(c.Log.Level)
	if err != nil {
		return slog.LevelInfo
	}
	return level
}

func parseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("%w: unknown log level %q", ErrValidationFailed, s)
}
