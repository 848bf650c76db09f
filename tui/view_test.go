package tui

import (
	"testing"

	"github.com/charmbracelet/bubbles/help"
	"github.com/stretchr/testify/assert"

	"github.com/grovetools/gmux/config"
	"github.com/grovetools/gmux/git"
	"github.com/grovetools/gmux/tui/session"
)

type stubStorage struct {
	entries []config.Entry
}

func (s *stubStorage) Entries() []config.Entry { return s.entries }
func (s *stubStorage) DefaultEditor() string   { return "" }
func (s *stubStorage) Add(path, editor string) (config.Entry, bool, error) {
	return config.Entry{}, false, nil
}
func (s *stubStorage) UpdateAt(idx int, path, editor string) (config.Entry, error) {
	return config.Entry{}, nil
}
func (s *stubStorage) RemoveAt(idx int) (config.Entry, error) { return config.Entry{}, nil }
func (s *stubStorage) Reload() error                          { return nil }

type stubProber struct{}

func (stubProber) ProbeStatus(path string) git.BranchStatus {
	return git.BranchStatus{Kind: git.StatusReady, Branch: "main"}
}

type stubLauncher struct{}

func (stubLauncher) Launch(entry config.Entry, defaultEditor string) error { return nil }
func (stubLauncher) EnvFallback() string                                   { return "" }

func viewModel(entries ...config.Entry) *Model {
	sess := session.New(&stubStorage{entries: entries}, stubProber{}, stubLauncher{})
	return &Model{
		session: sess,
		keys:    DefaultKeyMap,
		help:    help.New(),
		width:   80,
		height:  24,
	}
}

func TestRenderRowShowsEditorOverride(t *testing.T) {
	m := viewModel(config.Entry{Path: "/tmp/proj", Editor: "code --wait"})

	row := m.renderRow(0, m.session.Entries()[0])
	assert.Contains(t, row, "[code --wait]")
}

func TestRenderRowWithoutOverride(t *testing.T) {
	m := viewModel(config.Entry{Path: "/tmp/proj"})

	row := m.renderRow(0, m.session.Entries()[0])
	assert.NotContains(t, row, "]")
}

func TestRenderRowHotkeys(t *testing.T) {
	entries := make([]config.Entry, 11)
	for i := range entries {
		entries[i] = config.Entry{Path: "/tmp/proj"}
	}
	m := viewModel(entries...)

	assert.Contains(t, m.renderRow(0, m.session.Entries()[0]), "1")
	assert.Contains(t, m.renderRow(9, m.session.Entries()[9]), "·")
}

func TestRenderListEmpty(t *testing.T) {
	m := viewModel()
	assert.Contains(t, m.renderList(), "No directories registered")
}

func TestRenderStatusVariants(t *testing.T) {
	tests := []struct {
		name   string
		status git.BranchStatus
		want   string
	}{
		{"unknown", git.BranchStatus{Kind: git.StatusUnknown}, "…"},
		{"branch", git.BranchStatus{Kind: git.StatusReady, Branch: "main"}, "main"},
		{"missing", git.BranchStatus{Kind: git.StatusMissing}, "missing"},
		{"not a repo", git.BranchStatus{Kind: git.StatusNotGit}, "not a repo"},
		{"error", git.BranchStatus{Kind: git.StatusError, Err: "boom"}, "boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Contains(t, renderStatus(tt.status), tt.want)
		})
	}
}
