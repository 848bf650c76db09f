package git

import (
	"fmt"
	"os"
	"strings"
)

// StatusKind discriminates the BranchStatus variants.
type StatusKind int

const (
	// StatusUnknown means the entry has not been probed yet.
	StatusUnknown StatusKind = iota
	// StatusReady means branch and diff information is available.
	StatusReady
	// StatusMissing means the path no longer exists.
	StatusMissing
	// StatusNotGit means the path exists but is not a repository.
	StatusNotGit
	// StatusError means the probe failed.
	StatusError
)

// BranchStatus is the volatile per-entry probe result. It is recomputed on
// every refresh tick and never persisted.
type BranchStatus struct {
	Kind      StatusKind
	Branch    string
	Additions int
	Deletions int
	Err       string
}

// Unknown returns the initial, not-yet-probed status.
func Unknown() BranchStatus {
	return BranchStatus{Kind: StatusUnknown}
}

// Text renders the status as plain text for CLI output.
func (s BranchStatus) Text() string {
	switch s.Kind {
	case StatusUnknown:
		return "…"
	case StatusReady:
		var changes []string
		if s.Additions > 0 {
			changes = append(changes, fmt.Sprintf("+%d", s.Additions))
		}
		if s.Deletions > 0 {
			changes = append(changes, fmt.Sprintf("-%d", s.Deletions))
		}
		if len(changes) == 0 {
			return s.Branch
		}
		return fmt.Sprintf("%s (%s)", s.Branch, strings.Join(changes, " "))
	case StatusMissing:
		return "missing"
	case StatusNotGit:
		return "not a repo"
	default:
		return s.Err
	}
}

// ProbeStatus computes the BranchStatus for a registered path. Missing and
// non-directory paths short-circuit before any git invocation, as does a
// directory that is not a repository.
func (p *Prober) ProbeStatus(path string) BranchStatus {
	info, err := os.Stat(path)
	if err != nil {
		return BranchStatus{Kind: StatusMissing}
	}
	if !info.IsDir() {
		return BranchStatus{Kind: StatusError, Err: "not a dir"}
	}
	if !p.IsRepository(path) {
		return BranchStatus{Kind: StatusNotGit}
	}

	branch, err := p.CurrentBranch(path)
	if err != nil {
		return BranchStatus{Kind: StatusError, Err: err.Error()}
	}

	// A failed diff degrades to zero counts rather than an error; the branch
	// name alone is still useful.
	diff, _ := p.DiffCounts(path)

	return BranchStatus{
		Kind:      StatusReady,
		Branch:    branch,
		Additions: diff.Additions,
		Deletions: diff.Deletions,
	}
}
