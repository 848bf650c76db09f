package session

import (
	"fmt"

	"github.com/grovetools/gmux/util/pathutil"
)

// moveSelectionUp moves the selection one entry up, wrapping to the bottom.
func (s *Session) moveSelectionUp() {
	if len(s.entries) == 0 {
		return
	}
	if s.selected == 0 {
		s.selected = len(s.entries) - 1
	} else {
		s.selected--
	}
}

// moveSelectionDown moves the selection one entry down, wrapping to the top.
func (s *Session) moveSelectionDown() {
	if len(s.entries) == 0 {
		return
	}
	s.selected = (s.selected + 1) % len(s.entries)
}

// requestRemove enters ConfirmDelete for the selected entry. No-op when the
// list is empty.
func (s *Session) requestRemove() {
	if len(s.entries) == 0 {
		return
	}
	idx := s.selected
	if idx >= len(s.entries) {
		idx = len(s.entries) - 1
	}
	display := pathutil.Display(s.entries[idx].Config.Path)
	s.mode = Mode{Kind: ModeConfirmDelete, DeleteIndex: idx}
	s.setStatus(StatusInfo, fmt.Sprintf("Press Enter to remove %s or Esc to cancel", display))
}

// removeEntry deletes the entry at idx through storage and resynchronizes.
// A failed save leaves the list untouched and reports the error.
func (s *Session) removeEntry(idx int) {
	removed, err := s.store.RemoveAt(idx)
	if err != nil {
		s.setStatus(StatusError, err.Error())
		return
	}
	s.setStatus(StatusInfo, fmt.Sprintf("Removed %s", pathutil.Display(removed.Path)))
	s.syncEntries()
	s.RefreshAll()
}

// launchIndex starts the editor for the entry at idx. Spawn failures become
// an error status; the session keeps running either way.
func (s *Session) launchIndex(idx int) {
	if idx < 0 || idx >= len(s.entries) {
		return
	}
	entry := s.entries[idx].Config
	if err := s.launcher.Launch(entry, s.store.DefaultEditor()); err != nil {
		s.setStatus(StatusError, err.Error())
		return
	}
	s.setStatus(StatusInfo, fmt.Sprintf("Opened %s", pathutil.Display(entry.Path)))
}
