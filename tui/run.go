package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/grovetools/gmux/editor"
	"github.com/grovetools/gmux/git"
	"github.com/grovetools/gmux/logging"
	"github.com/grovetools/gmux/registry"
	"github.com/grovetools/gmux/tui/session"
)

// Run starts the interactive switcher over the given store and blocks until
// the user quits. The terminal is switched to the alternate screen for the
// duration.
func Run(store *registry.Store) error {
	InitializeTUI()

	// Diagnostics go to a file; stderr belongs to the alternate screen.
	log := logging.NewFileLogger("tui")

	sess := session.New(store, git.NewProber(), editor.NewLauncher())
	sess.RefreshAll()

	m := NewModel(sess, store.ConfigPath(), log)
	defer m.Close()

	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
