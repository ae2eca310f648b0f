// Package config provides the configuration system for Rite.
//
// Configuration is resolved in layers, later layers overriding earlier ones:
//
//	┌─────────────────────────────┐
//	│  4. Command Line Arguments  │  ← Highest priority (applied by cmd/rite)
//	├─────────────────────────────┤
//	│  3. Environment Variables   │  ← RITE_*
//	├─────────────────────────────┤
//	│  2. User Settings           │  ← ~/.config/rite/config.toml
//	├─────────────────────────────┤
//	│  1. Built-in Defaults       │  ← Lowest priority
//	└─────────────────────────────┘
//
// A missing settings file is not an error. Watch reports changes to the
// settings file so a running editor can pick up a new theme or tab width
// without restarting.
//
// # Example
//
//	cfg, err := config.Load(config.DefaultPath())
//	if err != nil {
//	    return err
//	}
//	cfg.ApplyEnv()
//	if err := cfg.Validate(); err != nil {
//	    return err
//	}
package config
