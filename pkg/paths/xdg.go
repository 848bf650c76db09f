// Package paths provides XDG-compliant path resolution for gmux.
//
// Resolution order:
// 1. GMUX_HOME (portable root) → $GMUX_HOME/{config,state}
// 2. XDG env vars → $XDG_*_HOME/gmux
// 3. Platform defaults → ~/.config/gmux, ~/.local/state/gmux
package paths

import (
	"os"
	"path/filepath"
)

// getConfigHome returns the base config home directory.
func getConfigHome() string {
	if gmuxHome := os.Getenv("GMUX_HOME"); gmuxHome != "" {
		return filepath.Join(gmuxHome, "config")
	}
	if xdgConfigHome := os.Getenv("XDG_CONFIG_HOME"); xdgConfigHome != "" {
		return xdgConfigHome
	}
	if homeDir, err := os.UserHomeDir(); err == nil {
		return filepath.Join(homeDir, ".config")
	}
	return ""
}

// getStateHome returns the base state home directory.
func getStateHome() string {
	if gmuxHome := os.Getenv("GMUX_HOME"); gmuxHome != "" {
		return filepath.Join(gmuxHome, "state")
	}
	if xdgStateHome := os.Getenv("XDG_STATE_HOME"); xdgStateHome != "" {
		return xdgStateHome
	}
	if homeDir, err := os.UserHomeDir(); err == nil {
		return filepath.Join(homeDir, ".local", "state")
	}
	return ""
}

// ConfigDir returns the gmux configuration directory.
// Used for the registered-directory config file.
func ConfigDir() string {
	base := getConfigHome()
	if base == "" {
		return ""
	}
	return filepath.Join(base, "gmux")
}

// LegacyConfigDir returns the pre-rename configuration directory.
// Older installs wrote their config under "quickswitch"; loading still
// falls back to it when the gmux directory has no config yet.
func LegacyConfigDir() string {
	base := getConfigHome()
	if base == "" {
		return ""
	}
	return filepath.Join(base, "quickswitch")
}

// StateDir returns the gmux state directory.
// Used for log files.
func StateDir() string {
	base := getStateHome()
	if base == "" {
		return ""
	}
	return filepath.Join(base, "gmux")
}

// LogDir returns the directory where gmux log files are written.
func LogDir() string {
	state := StateDir()
	if state == "" {
		return ""
	}
	return filepath.Join(state, "logs")
}
