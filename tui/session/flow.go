package session

import (
	"fmt"

	"github.com/grovetools/gmux/registry"
	"github.com/grovetools/gmux/util/pathutil"
)

// startAddFlow enters Input{Add, Directory} with a cleared buffer and kill
// ring and no pending context.
func (s *Session) startAddFlow() {
	s.mode = Mode{Kind: ModeInput, Flow: FlowAdd, Step: StepDirectory}
	s.buffer.Reset()
	s.buffer.ClearKillRing()
	s.pendingPath = ""
	s.editingIndex = -1
	s.setStatus(StatusInfo, "Enter directory path")
}

// startEditFlow enters Input{Edit, Directory} pre-filled with the selected
// entry's path, cursor at the end. No-op when the list is empty.
func (s *Session) startEditFlow() {
	if len(s.entries) == 0 {
		return
	}
	idx := s.selected
	if idx >= len(s.entries) {
		idx = len(s.entries) - 1
	}
	entry := s.entries[idx].Config

	s.mode = Mode{Kind: ModeInput, Flow: FlowEdit, Step: StepDirectory}
	s.buffer.SetText(entry.Path)
	s.buffer.ClearKillRing()
	s.pendingPath = entry.Path
	s.editingIndex = idx
	s.setStatus(StatusInfo, "Edit directory path and press enter")
}

// cancelFlow discards the buffer, pending path, editing index, and kill
// ring, and returns to Normal with the status cleared.
func (s *Session) cancelFlow() {
	s.mode = Mode{Kind: ModeNormal}
	s.buffer.Reset()
	s.buffer.ClearKillRing()
	s.pendingPath = ""
	s.editingIndex = -1
	s.clearStatus()
}

// submitFlowStep completes the current step. On failure the error becomes a
// status message and the flow stays in the same step with its state intact,
// so the user can correct and resubmit.
func (s *Session) submitFlowStep() {
	var err error
	switch s.mode.Step {
	case StepDirectory:
		err = s.completeDirectoryStep()
	case StepEditor:
		err = s.completeEditorStep()
	}
	if err != nil {
		s.setStatus(StatusError, err.Error())
	}
}

func (s *Session) completeDirectoryStep() error {
	resolved, err := registry.ResolveDirectory(s.buffer.Trimmed())
	if err != nil {
		return err
	}

	s.pendingPath = resolved
	s.mode.Step = StepEditor

	s.buffer.SetText(s.editorPrefill())

	switch s.mode.Flow {
	case FlowAdd:
		s.setStatus(StatusInfo, "Set editor command (enter to accept current value)")
	case FlowEdit:
		s.setStatus(StatusInfo, "Edit editor command (enter to accept current value)")
	}
	return nil
}

// editorPrefill resolves the editor-step prefill: the edited entry's own
// override, then the stored default, then the environment fallback.
func (s *Session) editorPrefill() string {
	if s.mode.Flow == FlowEdit && s.editingIndex >= 0 && s.editingIndex < len(s.entries) {
		if override := s.entries[s.editingIndex].Config.Editor; override != "" {
			return override
		}
	}
	if def := s.store.DefaultEditor(); def != "" {
		return def
	}
	return s.launcher.EnvFallback()
}

func (s *Session) completeEditorStep() error {
	if s.pendingPath == "" {
		return fmt.Errorf("no directory captured")
	}
	path := s.pendingPath
	editorCmd := s.buffer.Trimmed()

	switch s.mode.Flow {
	case FlowAdd:
		if _, _, err := s.store.Add(path, editorCmd); err != nil {
			return err
		}
		s.setStatus(StatusInfo, fmt.Sprintf("Registered %s", pathutil.Display(path)))
	case FlowEdit:
		if _, err := s.store.UpdateAt(s.editingIndex, path, editorCmd); err != nil {
			return err
		}
		s.setStatus(StatusInfo, fmt.Sprintf("Updated %s", pathutil.Display(path)))
	}

	fallbackIdx := s.editingIndex
	s.mode = Mode{Kind: ModeNormal}
	s.buffer.Reset()
	s.pendingPath = ""
	s.editingIndex = -1

	s.syncEntries()
	s.RefreshAll()
	s.selectByPath(path, fallbackIdx)
	return nil
}
