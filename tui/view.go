package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/grovetools/gmux/git"
	"github.com/grovetools/gmux/tui/editline"
	"github.com/grovetools/gmux/tui/session"
	"github.com/grovetools/gmux/tui/theme"
	"github.com/grovetools/gmux/util/pathutil"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.DefaultColors.Cyan)

	listStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.DefaultColors.Border).
			Padding(0, 1)

	selectedStyle = lipgloss.NewStyle().
			Bold(true).
			Background(theme.DefaultColors.SelectedBackground)

	hotkeyStyle    = lipgloss.NewStyle().Foreground(theme.DefaultColors.Yellow)
	branchStyle    = lipgloss.NewStyle().Foreground(theme.DefaultColors.Cyan)
	additionsStyle = lipgloss.NewStyle().Foreground(theme.DefaultColors.Green)
	deletionsStyle = lipgloss.NewStyle().Foreground(theme.DefaultColors.Red)
	mutedStyle     = lipgloss.NewStyle().Foreground(theme.DefaultColors.MutedText)
	warnStyle      = lipgloss.NewStyle().Foreground(theme.DefaultColors.Yellow)
	errorStyle     = lipgloss.NewStyle().Foreground(theme.DefaultColors.Red)
	infoStyle      = lipgloss.NewStyle().Foreground(theme.DefaultColors.Cyan)
	promptStyle    = lipgloss.NewStyle().Foreground(theme.DefaultColors.Yellow).Bold(true)
	cursorStyle    = lipgloss.NewStyle().Reverse(true)
)

// View renders the full screen: header, bordered entry list, and the
// mode-dependent bottom panel.
func (m *Model) View() string {
	if m.width == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("gmux"))
	b.WriteString(mutedStyle.Render("  directory switcher"))
	b.WriteString("\n\n")

	b.WriteString(listStyle.Width(m.width - 4).Render(m.renderList()))
	b.WriteString("\n")

	if panel := m.renderPanel(); panel != "" {
		b.WriteString(panel)
		b.WriteString("\n")
	}

	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m *Model) renderList() string {
	entries := m.session.Entries()
	if len(entries) == 0 {
		return mutedStyle.Render("No directories registered. Press 'a' to add one.")
	}

	rows := make([]string, len(entries))
	for i, entry := range entries {
		rows[i] = m.renderRow(i, entry)
	}
	return strings.Join(rows, "\n")
}

func (m *Model) renderRow(i int, entry session.Entry) string {
	// Only the first nine entries get a digit hotkey; the rest are marked
	// with a dot and reachable by cursor.
	label := "·"
	if i < session.MaxHotkeys {
		label = fmt.Sprintf("%d", i+1)
	}

	path := pathutil.Display(entry.Config.Path)
	line := fmt.Sprintf("%s  %-40s %s", hotkeyStyle.Render(label), path, renderStatus(entry.Status))
	if entry.Config.Editor != "" {
		line += mutedStyle.Render(fmt.Sprintf("  [%s]", entry.Config.Editor))
	}

	if i == m.session.Selected() {
		return selectedStyle.Render("▸ " + line)
	}
	return "  " + line
}

func renderStatus(st git.BranchStatus) string {
	switch st.Kind {
	case git.StatusReady:
		s := branchStyle.Render(st.Branch)
		if st.Additions > 0 || st.Deletions > 0 {
			s += mutedStyle.Render(" (") +
				additionsStyle.Render(fmt.Sprintf("+%d", st.Additions)) + " " +
				deletionsStyle.Render(fmt.Sprintf("-%d", st.Deletions)) +
				mutedStyle.Render(")")
		}
		return s
	case git.StatusMissing:
		return errorStyle.Render("missing")
	case git.StatusNotGit:
		return warnStyle.Render("not a repo")
	case git.StatusError:
		return errorStyle.Render(st.Err)
	default:
		return mutedStyle.Render("…")
	}
}

// renderPanel renders the bottom panel: the input prompt inside a flow, or
// the transient status message otherwise.
func (m *Model) renderPanel() string {
	mode := m.session.Mode()

	if mode.Kind == session.ModeInput {
		var lines []string
		lines = append(lines, promptStyle.Render(promptLabel(mode))+" "+renderInput(m.session.Buffer()))
		if st := m.session.Status(); st != nil && st.Kind == session.StatusError {
			lines = append(lines, errorStyle.Render(st.Text))
		}
		return strings.Join(lines, "\n")
	}

	if mode.Kind == session.ModeConfirmDelete {
		if st := m.session.Status(); st != nil {
			return promptStyle.Render(st.Text)
		}
	}

	if st := m.session.Status(); st != nil {
		if st.Kind == session.StatusError {
			return errorStyle.Render(st.Text)
		}
		return infoStyle.Render(st.Text)
	}
	return ""
}

func promptLabel(mode session.Mode) string {
	switch {
	case mode.Step == session.StepDirectory && mode.Flow == session.FlowAdd:
		return "Add directory:"
	case mode.Step == session.StepDirectory:
		return "Edit directory:"
	default:
		return "Editor command:"
	}
}

// renderInput renders the line buffer with a block cursor at the insertion
// point.
func renderInput(b *editline.Buffer) string {
	text := []rune(b.String())
	cur := b.Cursor()
	if cur >= len(text) {
		return string(text) + cursorStyle.Render(" ")
	}
	return string(text[:cur]) + cursorStyle.Render(string(text[cur])) + string(text[cur+1:])
}
