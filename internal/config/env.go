package config

import (
	"fmt"
	"os"
	"strconv"
)

// EnvPrefix is the prefix of environment overrides.
const EnvPrefix = "TEXTBRIDGE_"

// Environment variables read by ApplyEnv.
const (
	EnvDiffMaxLines    = EnvPrefix + "DIFF_MAX_LINES"
	EnvDiffMaxMemoryMB = EnvPrefix + "DIFF_MAX_MEMORY_MB"
	EnvUndoMaxEntries  = EnvPrefix + "UNDO_MAX_ENTRIES"
	EnvLogLevel        = EnvPrefix + "LOG_LEVEL"
)

// ApplyEnv overrides cfg with any set TEXTBRIDGE_* variables.
// An empty value counts as set for the log level and is rejected for
// numeric settings.
func ApplyEnv(cfg *Config) error {
	ints := []struct {
		env string
		dst *int
	}{
		{EnvDiffMaxLines, &cfg.Diff.MaxLines},
		{EnvDiffMaxMemoryMB, &cfg.Diff.MaxMemoryMB},
		{EnvUndoMaxEntries, &cfg.Undo.MaxEntries},
	}
	for _, v := range ints {
		val, ok := os.LookupEnv(v.env)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(val)
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not an integer", ErrValidationFailed, v.env, val)
		}
		*v.dst = n
	}

	if val, ok := os.LookupEnv(EnvLogLevel); ok {
		cfg.Log.Level = val
	}
	return nil
}
