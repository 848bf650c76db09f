// Package testutil provides shared fixtures for gmux tests.
package testutil

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// RequireGit skips the test if the git binary is not available.
func RequireGit(t *testing.T) {
	t.Helper()

	if err := exec.Command("git", "version").Run(); err != nil {
		t.Skip("git not available")
	}
}

// RunGit executes a git command in dir, failing the test on error.
func RunGit(t *testing.T, dir string, args ...string) {
	t.Helper()

	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "git %s failed with output: %s", strings.Join(args, " "), string(output))
}

// InitGitRepo initializes a git repository with a single commit in dir.
func InitGitRepo(t *testing.T, dir string) {
	t.Helper()

	RunGit(t, dir, "init")
	RunGit(t, dir, "config", "user.name", "Test User")
	RunGit(t, dir, "config", "user.email", "test@example.com")

	readme := filepath.Join(dir, "README.md")
	require.NoError(t, os.WriteFile(readme, []byte("# Test Project\n"), 0o600))

	RunGit(t, dir, "add", ".")
	RunGit(t, dir, "commit", "-m", "initial commit")
}
