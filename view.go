package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true)
	enabledStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	disabledStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	successStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	statusStyle   = lipgloss.NewStyle().Faint(true)
)

func (m model) View() string {
	if m.help {
		return m.helpView()
	}
	width := m.width
	if width < 1 {
		width = 80
	}
	rows := m.canvasRows()

	var b strings.Builder
	b.WriteString(m.headerView())
	b.WriteByte('\n')
	b.WriteString(strings.Join(m.renderCanvas(width, rows), "\n"))
	b.WriteByte('\n')
	b.WriteString(m.statusView(width))
	return b.String()
}

func (m model) headerView() string {
	button := func(label string, enabled bool, depth int) string {
		text := fmt.Sprintf("[%s %d]", label, depth)
		if enabled {
			return enabledStyle.Render(text)
		}
		return disabledStyle.Render(text)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		titleStyle.Render(appName),
		"  ",
		button("Undo", m.editor.CanUndo(), m.editor.UndoDepth()-1),
		" ",
		button("Redo", m.editor.CanRedo(), m.editor.RedoDepth()),
		"  ",
		disabledStyle.Render("a add  ? help"),
	)
}

func (m model) modeString() string {
	switch {
	case m.mode == ModeEditing:
		return "EDIT"
	case m.editor.Dragging():
		return "DRAG"
	}
	return "NORMAL"
}

func (m model) statusView(width int) string {
	left := "[" + m.modeString() + "] "
	switch {
	case m.errorMessage != "":
		left += errorStyle.Render(m.errorMessage)
	case m.successMessage != "":
		left += successStyle.Render(m.successMessage)
	default:
		left += statusStyle.Render(fmt.Sprintf("%d boxes", len(m.editor.Document())))
	}

	right := ""
	if box, ok := m.editor.ActiveBox(); ok {
		flags := ""
		for _, f := range []struct {
			on    bool
			label string
		}{{box.Bold, "B"}, {box.Italic, "I"}, {box.Underline, "U"}} {
			if f.on {
				flags += f.label
			} else {
				flags += "-"
			}
		}
		right = fmt.Sprintf("%s %dpx %s %s (%d,%d)",
			box.FontFamily, box.FontSize, flags, box.Alignment, box.Position.X, box.Position.Y)
	}

	gap := width - lipgloss.Width(left) - runewidth.StringWidth(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + statusStyle.Render(right)
}

func (m model) helpView() string {
	lines := []string{
		"boxedit help",
		"============",
		"",
		"Boxes:",
		"  a                Add a new text box",
		"  tab              Select the next box",
		"  esc              Clear the selection",
		"  mouse drag       Move a box (one undo step per drag)",
		"  h/j/k/l, arrows  Nudge the selected box one cell",
		"  H/J/K/L          Nudge four cells",
		"",
		"Style (selected box):",
		"  b / i / _        Toggle bold / italic / underline",
		"  f                Next font family",
		"  + / -            Font size up / down",
		"  < / | / >        Align left / center / right",
		"",
		"Content:",
		"  e, enter         Edit the selected box",
		"  alt+enter        New line while editing",
		"  enter, esc       Finish editing",
		"  y / p            Copy content / paste into the box",
		"",
		"History:",
		"  u, ctrl+z        Undo",
		"  r, ctrl+y        Redo",
		"",
		"Other:",
		"  x                Export the canvas to PNG",
		"  ?                Toggle this help",
		"  q                Quit",
		"",
		fmt.Sprintf("Typing undo granularity: %s", m.editor.TypingMode()),
	}
	return strings.Join(lines, "\n")
}
