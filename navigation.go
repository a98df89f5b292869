package main

import "boxedit/internal/document"

// handleNudge moves the active box by whole cells; each key press is one
// undoable step.
func (m *model) handleNudge(key string, speed int) {
	dx, dy := m.config.Canvas.CellWidth*speed, m.config.Canvas.CellHeight*speed
	var delta document.Point
	switch key {
	case "h", "left", "H", "shift+left":
		delta.X = -dx
	case "l", "right", "L", "shift+right":
		delta.X = dx
	case "k", "up", "K", "shift+up":
		delta.Y = -dy
	case "j", "down", "J", "shift+down":
		delta.Y = dy
	}
	if !m.editor.Nudge(delta) {
		m.successMessage = "No box selected"
	}
}

func (m *model) getMoveSpeed(key string) int {
	switch key {
	case "H", "L", "K", "J", "shift+left", "shift+right", "shift+up", "shift+down":
		return 4
	default:
		return 1
	}
}
