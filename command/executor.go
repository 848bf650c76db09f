package command

import (
	"context"
	"os/exec"
)

// Executor is the seam between the builder and os/exec. Tests substitute it
// to point git invocations at fake binaries or to capture the argv without
// spawning anything.
type Executor interface {
	// Command builds an exec.Cmd for the given program and arguments.
	Command(name string, args ...string) *exec.Cmd

	// CommandContext is Command bound to a context, for timeout-capped runs.
	CommandContext(ctx context.Context, name string, args ...string) *exec.Cmd
}

// RealExecutor backs the Executor interface with os/exec directly.
type RealExecutor struct{}

func (e *RealExecutor) Command(name string, args ...string) *exec.Cmd {
	return exec.Command(name, args...)
}

func (e *RealExecutor) CommandContext(ctx context.Context, name string, args ...string) *exec.Cmd {
	return exec.CommandContext(ctx, name, args...)
}
