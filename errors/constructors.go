package errors

import (
	"fmt"
	"os/exec"
)

// Validation creates an error for rejected user input
func Validation(reason string) *GmuxError {
	return New(ErrCodeValidation, reason)
}

// PathDoesNotExist creates a validation error for a missing directory
func PathDoesNotExist(display string) *GmuxError {
	return New(ErrCodeValidation, fmt.Sprintf("%s does not exist", display)).
		WithDetail("path", display)
}

// PathNotDirectory creates a validation error for a non-directory path
func PathNotDirectory(display string) *GmuxError {
	return New(ErrCodeValidation, fmt.Sprintf("%s is not a directory", display)).
		WithDetail("path", display)
}

// EntryNotFound creates an error for an unresolvable entry target
func EntryNotFound(target string) *GmuxError {
	return New(ErrCodeEntryNotFound, fmt.Sprintf("entry not found: %s", target)).
		WithDetail("target", target)
}

// Persistence wraps a failed config read or write
func Persistence(err error, path string) *GmuxError {
	return Wrap(err, ErrCodePersistence, fmt.Sprintf("failed to persist config at %s", path)).
		WithDetail("path", path)
}

// Probe wraps a failed git status query
func Probe(err error, path string) *GmuxError {
	return Wrap(err, ErrCodeProbe, fmt.Sprintf("git status probe failed for %s", path)).
		WithDetail("path", path)
}

// Spawn wraps a failed editor launch
func Spawn(err error, program, path string) *GmuxError {
	gmuxErr := Wrap(err, ErrCodeSpawn,
		fmt.Sprintf("failed to launch editor `%s` for %s", program, path)).
		WithDetail("program", program).
		WithDetail("path", path)

	if exitErr, ok := err.(*exec.ExitError); ok {
		gmuxErr = gmuxErr.WithDetail("exitCode", exitErr.ExitCode())
	}

	return gmuxErr
}

// EditorUnset creates an error for a launch with no resolvable editor command
func EditorUnset() *GmuxError {
	return New(ErrCodeEditorUnset,
		"no editor set. provide one in the entry or set GMUX_EDITOR/EDITOR")
}
