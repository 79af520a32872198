// Package config loads the settings of an editing session.
//
// Settings come from built-in defaults, optionally overlaid by a TOML or
// YAML file and then by TEXTBRIDGE_* environment variables:
//
//	[diff]
//	max_lines = 20000
//	max_memory_mb = 64
//
//	[undo]
//	max_entries = 500
//
//	[log]
//	level = "debug"
//
// A missing file is not an error; Load returns the defaults.
package config
