package tui

import (
	"path/filepath"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"

	"github.com/grovetools/gmux/tui/session"
)

// Model is the bubbletea model wrapping the session engine. All interactive
// state lives in the session; the model only holds presentation concerns and
// the config watcher.
type Model struct {
	session *session.Session
	keys    KeyMap
	help    help.Model

	width  int
	height int

	// watcher observes the config file's directory so external edits show
	// up without a restart. Nil when the watcher could not be created.
	watcher    *fsnotify.Watcher
	configName string

	log *logrus.Entry
}

// NewModel builds the TUI model around an initialized session. configPath is
// the file whose external modifications trigger a reload; watching is best
// effort and its failure only logs a warning.
func NewModel(sess *session.Session, configPath string, log *logrus.Entry) *Model {
	m := &Model{
		session:    sess,
		keys:       DefaultKeyMap,
		help:       help.New(),
		configName: filepath.Base(configPath),
		log:        log,
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		log.WithError(err).Warn("config watcher unavailable")
		return m
	}
	if err := watcher.Add(filepath.Dir(configPath)); err != nil {
		log.WithError(err).Warn("cannot watch config directory")
		watcher.Close()
		return m
	}
	m.watcher = watcher
	return m
}

// Init schedules the first refresh tick and starts waiting for config
// changes.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.scheduleTick(), m.waitForConfigChange())
}

// Close releases the config watcher. Call after the program exits.
func (m *Model) Close() {
	if m.watcher != nil {
		m.watcher.Close()
	}
}
