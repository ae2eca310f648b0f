package config

import (
	"os"
	"strconv"
)

// Environment variables read by ApplyEnv.
const (
	EnvLogLevel  = "RITE_LOG_LEVEL"
	EnvLogFile   = "RITE_LOG_FILE"
	EnvTabWidth  = "RITE_TAB_WIDTH"
	EnvStateFile = "RITE_STATE_FILE"
)

// ApplyEnv overrides settings from RITE_* environment variables.
// Empty string values are treated as valid values, not as unset.
func (c *Config) ApplyEnv() error {
	if v, ok := os.LookupEnv(EnvLogLevel); ok {
		c.Logging.Level = v
	}
	if v, ok := os.LookupEnv(EnvLogFile); ok {
		c.Logging.File = v
	}
	if v, ok := os.LookupEnv(EnvStateFile); ok {
		c.State.File = v
	}
	if v, ok := os.LookupEnv(EnvTabWidth); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return &ValidationError{Path: EnvTabWidth, Message: "not an integer", Value: v}
		}
		c.Editor.TabWidth = n
	}
	return nil
}
