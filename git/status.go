// Package git probes working trees for the branch and diff information shown
// next to each registered directory. Probes shell out to the git binary
// through the command package so tests can substitute a fake executor.
package git

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/grovetools/gmux/command"
	"github.com/grovetools/gmux/errors"
)

// probeTimeout bounds each git invocation; a hung git call stalls the refresh
// tick, so it must not hang forever.
const probeTimeout = 5 * time.Second

// DiffStat holds working-tree line counts relative to HEAD.
type DiffStat struct {
	Additions int `json:"additions"`
	Deletions int `json:"deletions"`
}

// Prober executes git queries against registered directories.
type Prober struct {
	builder *command.SafeBuilder
}

// NewProber creates a Prober backed by the real git binary.
func NewProber() *Prober {
	return &Prober{builder: command.NewSafeBuilder()}
}

// NewProberWithExecutor creates a Prober with a custom command executor.
func NewProberWithExecutor(exec command.Executor) *Prober {
	return &Prober{builder: command.NewSafeBuilderWithExecutor(exec)}
}

func (p *Prober) run(path string, args ...string) ([]byte, error) {
	cmd, err := p.builder.Build(context.Background(), "git", args...)
	if err != nil {
		return nil, err
	}
	execCmd := cmd.WithTimeout(probeTimeout).Exec()
	execCmd.Dir = path
	return execCmd.Output()
}

// CurrentBranch returns the checked-out branch name for the repository at
// path. A detached HEAD is reported as "detached@<short-sha>".
func (p *Prober) CurrentBranch(path string) (string, error) {
	output, err := p.run(path, "rev-parse", "--abbrev-ref", "HEAD")
	if err != nil {
		return "", errors.Probe(fmt.Errorf("git rev-parse failed: %w", err), path)
	}

	branch := strings.TrimSpace(string(output))
	if branch == "HEAD" {
		fallback, err := p.run(path, "rev-parse", "--short", "HEAD")
		if err == nil {
			branch = fmt.Sprintf("detached@%s", strings.TrimSpace(string(fallback)))
		}
	}

	return branch, nil
}

// DiffCounts returns the uncommitted addition/deletion line counts for the
// repository at path. It prefers a diff against HEAD and falls back to a
// plain worktree diff in repositories without commits.
func (p *Prober) DiffCounts(path string) (DiffStat, error) {
	for _, args := range [][]string{
		{"diff", "--shortstat", "HEAD"},
		{"diff", "--shortstat"},
	} {
		output, err := p.run(path, args...)
		if err == nil {
			return parseShortstat(string(output)), nil
		}
	}
	return DiffStat{}, errors.Probe(fmt.Errorf("git diff failed"), path)
}

// IsRepository reports whether path is inside a git working tree.
func (p *Prober) IsRepository(path string) bool {
	_, err := p.run(path, "rev-parse", "--show-toplevel")
	return err == nil
}

// parseShortstat extracts addition and deletion counts from
// `git diff --shortstat` output, e.g.
// " 3 files changed, 10 insertions(+), 2 deletions(-)".
func parseShortstat(text string) DiffStat {
	var stat DiffStat

	for _, part := range strings.Split(text, ",") {
		trimmed := strings.TrimSpace(part)
		if trimmed == "" {
			continue
		}

		switch {
		case strings.Contains(trimmed, "insertion"):
			if value, ok := leadingNumber(trimmed); ok {
				stat.Additions = value
			}
		case strings.Contains(trimmed, "deletion"):
			if value, ok := leadingNumber(trimmed); ok {
				stat.Deletions = value
			}
		}
	}

	return stat
}

func leadingNumber(text string) (int, bool) {
	for _, token := range strings.Fields(text) {
		value := 0
		numeric := len(token) > 0
		for _, ch := range token {
			if ch < '0' || ch > '9' {
				numeric = false
				break
			}
			value = value*10 + int(ch-'0')
		}
		if numeric {
			return value, true
		}
	}
	return 0, false
}
