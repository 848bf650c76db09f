// Package session implements the interactive engine behind the gmux TUI: the
// mode state machine, the add/edit flows, key dispatch, and the refresh-tick
// bookkeeping. It owns all interactive state and talks to storage, the git
// prober, and the editor launcher through narrow interfaces so it can be
// exercised entirely with fakes.
package session

import (
	"time"

	"github.com/grovetools/gmux/config"
	"github.com/grovetools/gmux/git"
	"github.com/grovetools/gmux/tui/editline"
	"github.com/grovetools/gmux/util/pathutil"
)

const (
	// RefreshInterval is how often entry branch statuses are recomputed.
	RefreshInterval = 500 * time.Millisecond

	// StatusTimeout is how long a status message lives in Normal mode.
	StatusTimeout = 3 * time.Second

	// MaxHotkeys is the number of entries reachable via digit hotkeys.
	MaxHotkeys = 9
)

// Storage is the durable side of the registered-directory list.
type Storage interface {
	Entries() []config.Entry
	DefaultEditor() string
	Add(path, editor string) (config.Entry, bool, error)
	UpdateAt(idx int, path, editor string) (config.Entry, error)
	RemoveAt(idx int) (config.Entry, error)
	Reload() error
}

// Prober computes the branch status for a repository path.
type Prober interface {
	ProbeStatus(path string) git.BranchStatus
}

// Launcher starts editor processes and exposes the environment fallback used
// to prefill the editor step.
type Launcher interface {
	Launch(entry config.Entry, defaultEditor string) error
	EnvFallback() string
}

// ModeKind discriminates the session modes. Exactly one mode is active at a
// time; quitting is a flag, not a mode.
type ModeKind int

const (
	ModeNormal ModeKind = iota
	ModeInput
	ModeConfirmDelete
)

// FlowKind names the two multi-step capture flows.
type FlowKind int

const (
	FlowAdd FlowKind = iota
	FlowEdit
)

// FlowStep names the two steps of a flow, in fixed order.
type FlowStep int

const (
	StepDirectory FlowStep = iota
	StepEditor
)

// Mode is the session's current top-level mode. Flow and Step are meaningful
// only when Kind is ModeInput; DeleteIndex only for ModeConfirmDelete.
type Mode struct {
	Kind        ModeKind
	Flow        FlowKind
	Step        FlowStep
	DeleteIndex int
}

// StatusKind classifies a status message.
type StatusKind int

const (
	StatusInfo StatusKind = iota
	StatusError
)

// StatusMessage is a transient notice describing the last action's outcome.
type StatusMessage struct {
	Text      string
	Kind      StatusKind
	CreatedAt time.Time
}

// Entry pairs a registered directory with its volatile branch status.
type Entry struct {
	Config config.Entry
	Status git.BranchStatus
}

// Session owns all interactive state. It is not safe for concurrent use; the
// scheduler drives it from a single goroutine.
type Session struct {
	store    Storage
	prober   Prober
	launcher Launcher
	now      func() time.Time

	entries  []Entry
	selected int
	mode     Mode
	buffer   *editline.Buffer

	// Flow context, alive only while mode.Kind == ModeInput.
	pendingPath  string
	editingIndex int

	status      *StatusMessage
	quit        bool
	lastRefresh time.Time
}

// Option configures a Session.
type Option func(*Session)

// WithClock substitutes the wall clock, for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

// New creates a session over the given collaborators. The entry list is
// projected from storage with every status Unknown; the first refresh tick
// fills them in.
func New(store Storage, prober Prober, launcher Launcher, opts ...Option) *Session {
	s := &Session{
		store:        store,
		prober:       prober,
		launcher:     launcher,
		now:          time.Now,
		buffer:       editline.New(),
		editingIndex: -1,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.syncEntries()
	return s
}

// Entries returns the current projection, statuses included.
func (s *Session) Entries() []Entry {
	return s.entries
}

// Selected returns the selection index: always in [0, len-1] when the list
// is non-empty, 0 when empty.
func (s *Session) Selected() int {
	return s.selected
}

// Mode returns the current mode.
func (s *Session) Mode() Mode {
	return s.mode
}

// Buffer exposes the line editor for rendering (text and cursor).
func (s *Session) Buffer() *editline.Buffer {
	return s.buffer
}

// Status returns the current status message, or nil.
func (s *Session) Status() *StatusMessage {
	return s.status
}

// ShouldQuit reports whether the quit flag has been set.
func (s *Session) ShouldQuit() bool {
	return s.quit
}

// DefaultEditor returns the stored session-wide editor command.
func (s *Session) DefaultEditor() string {
	return s.store.DefaultEditor()
}

// ReloadFromDisk re-reads storage (e.g. after an external config edit) and
// rebuilds the projection. Statuses reset to Unknown until the next tick.
func (s *Session) ReloadFromDisk() error {
	if err := s.store.Reload(); err != nil {
		return err
	}
	s.syncEntries()
	return nil
}

// syncEntries rebuilds the in-memory projection from storage. Every status
// resets to Unknown; callers refresh afterwards when they need live data.
func (s *Session) syncEntries() {
	stored := s.store.Entries()
	s.entries = make([]Entry, len(stored))
	for i, entry := range stored {
		s.entries[i] = Entry{Config: entry, Status: git.Unknown()}
	}
	s.clampSelection()
}

func (s *Session) clampSelection() {
	if len(s.entries) == 0 {
		s.selected = 0
		return
	}
	if s.selected >= len(s.entries) {
		s.selected = len(s.entries) - 1
	}
	if s.selected < 0 {
		s.selected = 0
	}
}

// selectByPath moves the selection to the entry matching path, falling back
// to the given index, falling back to the last valid index.
func (s *Session) selectByPath(path string, fallbackIdx int) {
	if len(s.entries) == 0 {
		s.selected = 0
		return
	}
	normalized := pathutil.Normalize(path)
	for i := range s.entries {
		if pathutil.Normalize(s.entries[i].Config.Path) == normalized {
			s.selected = i
			return
		}
	}
	if fallbackIdx >= 0 && fallbackIdx < len(s.entries) {
		s.selected = fallbackIdx
		return
	}
	s.selected = len(s.entries) - 1
}

func (s *Session) setStatus(kind StatusKind, text string) {
	s.status = &StatusMessage{Text: text, Kind: kind, CreatedAt: s.now()}
}

func (s *Session) clearStatus() {
	s.status = nil
}
