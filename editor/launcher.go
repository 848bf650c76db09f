// Package editor resolves and launches the editor command for a registered
// directory. Launches are fire-and-forget: gmux never waits for the editor to
// exit.
package editor

import (
	"os"
	"os/exec"
	"strings"

	"github.com/grovetools/gmux/config"
	"github.com/grovetools/gmux/errors"
)

// fallbackEnvVars is the ordered list of environment variables consulted when
// neither the entry nor the stored default provides an editor command.
var fallbackEnvVars = []string{"GMUX_EDITOR", "QUICKSWITCH_EDITOR", "EDITOR", "VISUAL"}

// Launcher spawns editor processes.
type Launcher struct {
	lookupEnv func(string) (string, bool)
}

// NewLauncher creates a Launcher using the process environment.
func NewLauncher() *Launcher {
	return &Launcher{lookupEnv: os.LookupEnv}
}

// EnvFallback returns the first non-empty editor command from the fallback
// environment variables, or "" when none is set.
func (l *Launcher) EnvFallback() string {
	for _, name := range fallbackEnvVars {
		if value, ok := l.lookupEnv(name); ok && strings.TrimSpace(value) != "" {
			return value
		}
	}
	return ""
}

// Resolve picks the editor command for an entry: its own override, then the
// stored default, then the environment fallback.
func (l *Launcher) Resolve(entryEditor, defaultEditor string) (string, error) {
	if entryEditor != "" {
		return entryEditor, nil
	}
	if defaultEditor != "" {
		return defaultEditor, nil
	}
	if fallback := l.EnvFallback(); fallback != "" {
		return fallback, nil
	}
	return "", errors.EditorUnset()
}

// Launch resolves the editor command for entry and starts it with the entry's
// path appended as the final argument. The spawned process is released
// immediately; failures to start are reported, failures after start are not.
func (l *Launcher) Launch(entry config.Entry, defaultEditor string) error {
	commandString, err := l.Resolve(entry.Editor, defaultEditor)
	if err != nil {
		return err
	}

	parts, err := SplitCommand(commandString)
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeSpawn,
			"failed to parse editor command: "+commandString)
	}
	if len(parts) == 0 {
		return errors.New(errors.ErrCodeSpawn, "editor command is empty")
	}

	program := parts[0]
	args := append(parts[1:], entry.Path)

	cmd := exec.Command(program, args...)
	if err := cmd.Start(); err != nil {
		return errors.Spawn(err, program, entry.Path)
	}

	// Reap the child when it exits so it never lingers as a zombie.
	go func() { _ = cmd.Wait() }()

	return nil
}
