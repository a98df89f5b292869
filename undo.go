package main

func (m *model) undo() {
	m.leaveEditMode()
	if !m.editor.Undo() {
		m.successMessage = "Nothing to undo"
		return
	}
	m.successMessage = "Undone"
}

func (m *model) redo() {
	m.leaveEditMode()
	if !m.editor.Redo() {
		m.successMessage = "Nothing to redo"
		return
	}
	m.successMessage = "Redone"
}

// leaveEditMode drops the terminal edit mode. The editor settles the edit
// session itself before traversing history.
func (m *model) leaveEditMode() {
	if m.mode == ModeEditing {
		m.mode = ModeNormal
		m.editCursor = 0
	}
}
