// Package registry owns the registered-directory list: loading and saving it
// through the config store, mutating it, and resolving user-supplied targets
// (1-based index or path) to entries.
package registry

import (
	"os"
	"strconv"
	"strings"

	"github.com/grovetools/gmux/config"
	"github.com/grovetools/gmux/errors"
	"github.com/grovetools/gmux/util/pathutil"
)

// Store is the in-memory projection of the durable config. Every mutation
// saves the config first and only adopts the new state when the save
// succeeded, so a failed write never desynchronizes memory from disk.
type Store struct {
	configPath string
	cfg        *config.Config
}

// Open loads the config at configPath (default location when empty) and
// returns a store over it.
func Open(configPath string) (*Store, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	return &Store{configPath: configPath, cfg: cfg}, nil
}

// Reload re-reads the config from disk, replacing the in-memory projection.
func (s *Store) Reload() error {
	cfg, err := config.Load(s.configPath)
	if err != nil {
		return err
	}
	s.cfg = cfg
	return nil
}

// ConfigPath returns the path this store persists to. Empty means the
// default location.
func (s *Store) ConfigPath() string {
	if s.configPath != "" {
		return s.configPath
	}
	return config.FilePath()
}

// Entries returns a copy of the registered entries in registration order.
func (s *Store) Entries() []config.Entry {
	entries := make([]config.Entry, len(s.cfg.Entries))
	copy(entries, s.cfg.Entries)
	return entries
}

// Len returns the number of registered entries.
func (s *Store) Len() int {
	return len(s.cfg.Entries)
}

// DefaultEditor returns the stored session-wide editor command, if any.
func (s *Store) DefaultEditor() string {
	return s.cfg.DefaultEditor
}

// Add registers a directory, replacing any existing entry with the same
// canonical path instead of duplicating it. A non-empty editor command also
// becomes the new default editor. It returns the stored entry and whether an
// existing entry was replaced.
func (s *Store) Add(path, editor string) (config.Entry, bool, error) {
	next := s.clone()

	if editor != "" {
		next.DefaultEditor = editor
	}

	entry := config.Entry{Path: path, Editor: editor}
	replaced := false
	normalized := pathutil.Normalize(path)
	for i := range next.Entries {
		if pathutil.Normalize(next.Entries[i].Path) == normalized {
			next.Entries[i] = entry
			replaced = true
			break
		}
	}
	if !replaced {
		next.Entries = append(next.Entries, entry)
	}

	if err := s.commit(next); err != nil {
		return config.Entry{}, false, err
	}
	return entry, replaced, nil
}

// UpdateAt replaces the entry at idx in place. A non-empty editor command
// also becomes the new default editor.
func (s *Store) UpdateAt(idx int, path, editor string) (config.Entry, error) {
	if idx < 0 || idx >= len(s.cfg.Entries) {
		return config.Entry{}, errors.New(errors.ErrCodeInvalidInput, "invalid entry index")
	}

	next := s.clone()
	if editor != "" {
		next.DefaultEditor = editor
	}

	entry := config.Entry{Path: path, Editor: editor}
	next.Entries[idx] = entry

	if err := s.commit(next); err != nil {
		return config.Entry{}, err
	}
	return entry, nil
}

// RemoveAt deletes the entry at idx and returns it.
func (s *Store) RemoveAt(idx int) (config.Entry, error) {
	if idx < 0 || idx >= len(s.cfg.Entries) {
		return config.Entry{}, errors.New(errors.ErrCodeInvalidInput, "invalid entry index")
	}

	next := s.clone()
	removed := next.Entries[idx]
	next.Entries = append(next.Entries[:idx], next.Entries[idx+1:]...)

	if err := s.commit(next); err != nil {
		return config.Entry{}, err
	}
	return removed, nil
}

// SetDefaultEditor persists a new session-wide default editor.
func (s *Store) SetDefaultEditor(editor string) error {
	next := s.clone()
	next.DefaultEditor = editor
	return s.commit(next)
}

// IndexByPath finds the entry whose canonical path matches the given path.
func (s *Store) IndexByPath(path string) (int, bool) {
	normalized := pathutil.Normalize(path)
	for i := range s.cfg.Entries {
		if pathutil.Normalize(s.cfg.Entries[i].Path) == normalized {
			return i, true
		}
	}
	return 0, false
}

// Resolve maps a user-supplied target to an entry index. Numeric targets are
// treated as 1-based list positions; anything else is matched by canonical
// path after ~/env expansion.
func (s *Store) Resolve(target string) (int, error) {
	if idx, err := strconv.Atoi(strings.TrimSpace(target)); err == nil {
		if idx >= 1 && idx <= len(s.cfg.Entries) {
			return idx - 1, nil
		}
		return 0, errors.EntryNotFound(target)
	}

	expanded, err := pathutil.Expand(strings.TrimSpace(target))
	if err != nil {
		return 0, errors.EntryNotFound(target)
	}
	if idx, ok := s.IndexByPath(expanded); ok {
		return idx, nil
	}
	return 0, errors.EntryNotFound(target)
}

func (s *Store) clone() *config.Config {
	next := &config.Config{
		Entries:       make([]config.Entry, len(s.cfg.Entries)),
		DefaultEditor: s.cfg.DefaultEditor,
	}
	copy(next.Entries, s.cfg.Entries)
	return next
}

func (s *Store) commit(next *config.Config) error {
	if err := config.Save(s.configPath, next); err != nil {
		return err
	}
	s.cfg = next
	return nil
}

// ResolveDirectory validates a raw user-entered directory path: trims it,
// expands ~ and environment variables, and checks that it names an existing
// directory. The returned path is the expanded absolute form.
func ResolveDirectory(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", errors.Validation("directory path cannot be empty")
	}

	expanded, err := pathutil.Expand(trimmed)
	if err != nil {
		return "", errors.Validation(err.Error())
	}

	info, err := os.Stat(expanded)
	if err != nil {
		if os.IsNotExist(err) {
			return "", errors.PathDoesNotExist(pathutil.Display(expanded))
		}
		return "", errors.Validation(err.Error())
	}
	if !info.IsDir() {
		return "", errors.PathNotDirectory(pathutil.Display(expanded))
	}

	return expanded, nil
}
