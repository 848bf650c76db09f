package tui

import (
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"

	"github.com/grovetools/gmux/tui/session"
)

// tickMsg carries the time the refresh tick fired.
type tickMsg time.Time

// configChangedMsg signals that the config file was modified externally.
type configChangedMsg struct{}

// scheduleTick arms a timer for the next scheduler iteration. The delay is
// whatever remains of the refresh interval, so key handling never postpones
// a due refresh.
func (m *Model) scheduleTick() tea.Cmd {
	return tea.Tick(m.session.NextTickIn(time.Now()), func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// waitForConfigChange blocks on the watcher until the config file is
// written, created, or renamed. Events for other files in the directory are
// skipped. Returns nil when no watcher is available.
func (m *Model) waitForConfigChange() tea.Cmd {
	if m.watcher == nil {
		return nil
	}
	watcher := m.watcher
	name := m.configName
	return func() tea.Msg {
		for ev := range watcher.Events {
			if filepath.Base(ev.Name) != name {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				return configChangedMsg{}
			}
		}
		return nil
	}
}

// Update handles messages and updates the model accordingly.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tickMsg:
		m.session.Tick(time.Time(msg))
		return m, m.scheduleTick()

	case configChangedMsg:
		if err := m.session.ReloadFromDisk(); err != nil {
			m.log.WithError(err).Warn("config reload failed")
		} else {
			m.session.RefreshAll()
		}
		return m, m.waitForConfigChange()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// An open help overlay swallows the next key.
	if m.help.ShowAll {
		m.help.ShowAll = false
		return m, nil
	}

	// The help toggle lives in the outer layer; it only applies outside
	// flows so '?' stays typable in path and editor input.
	if m.session.Mode().Kind == session.ModeNormal && key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = true
		return m, nil
	}

	k, ok := translateKey(msg)
	if !ok {
		return m, nil
	}
	m.session.HandleKey(k)
	if m.session.ShouldQuit() {
		return m, tea.Quit
	}
	return m, nil
}
