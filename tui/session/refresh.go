package session

import (
	"os"
	"time"

	"github.com/grovetools/gmux/git"
)

// RefreshAll recomputes every entry's branch status, strictly sequentially in
// registration order. Paths that are missing or not directories short-circuit
// to their status variant without consulting the prober.
func (s *Session) RefreshAll() {
	for i := range s.entries {
		s.entries[i].Status = s.probe(s.entries[i].Config.Path)
	}
	s.lastRefresh = s.now()
}

func (s *Session) probe(path string) git.BranchStatus {
	info, err := os.Stat(path)
	if err != nil {
		return git.BranchStatus{Kind: git.StatusMissing}
	}
	if !info.IsDir() {
		return git.BranchStatus{Kind: git.StatusError, Err: "not a dir"}
	}
	return s.prober.ProbeStatus(path)
}

// TickDue reports whether the refresh interval has elapsed since the last
// refresh.
func (s *Session) TickDue(now time.Time) bool {
	return now.Sub(s.lastRefresh) >= RefreshInterval
}

// NextTickIn returns how long until the next refresh is due; zero when it is
// already overdue. The scheduler bounds its input wait with this.
func (s *Session) NextTickIn(now time.Time) time.Duration {
	remaining := RefreshInterval - now.Sub(s.lastRefresh)
	if remaining < 0 {
		return 0
	}
	return remaining
}

// Tick performs the periodic work for one scheduler iteration: expiring the
// status message and, when the interval has elapsed, refreshing all entries.
func (s *Session) Tick(now time.Time) {
	s.ExpireStatus(now)
	if s.TickDue(now) {
		s.RefreshAll()
	}
}

// ExpireStatus clears the status message once its age exceeds StatusTimeout.
// Messages only time out in Normal mode; inside a flow or confirmation they
// stay until replaced or cancelled.
func (s *Session) ExpireStatus(now time.Time) {
	if s.mode.Kind != ModeNormal {
		return
	}
	if s.status != nil && now.Sub(s.status.CreatedAt) >= StatusTimeout {
		s.status = nil
	}
}
