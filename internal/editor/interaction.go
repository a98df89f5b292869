package editor

import "boxedit/internal/document"

// PointerDown starts a drag on box id at canvas point at, recording the
// box's position as the drag anchor and selecting it. Pressing on empty
// canvas (NoID or an unknown id) clears the selection instead.
func (e *Editor) PointerDown(id document.ID, at document.Point) {
	if e.draggedID != document.NoID {
		e.PointerUp()
	}
	b, ok := e.doc.Find(id)
	if !ok {
		if e.editID != document.NoID {
			e.EndEdit()
		}
		e.activeID = document.NoID
		return
	}
	if e.editID != document.NoID && e.editID != id {
		e.EndEdit()
	}
	e.activeID = id
	e.draggedID = id
	e.dragAnchor = b.Position
	e.anchored = true
	e.grab = at.Sub(b.Position)
}

// PointerMove follows the pointer while a drag is in progress. The box keeps
// the offset it was grabbed at. No checkpoint is committed.
func (e *Editor) PointerMove(at document.Point) {
	if e.draggedID == document.NoID {
		return
	}
	p := at.Sub(e.grab)
	e.UpdatePosition(e.draggedID, p.X, p.Y)
}

// PointerUp ends a drag. A box that ended somewhere other than its anchor
// yields exactly one checkpoint for the whole drag. It reports whether a
// checkpoint was committed.
func (e *Editor) PointerUp() bool {
	committed := false
	if e.draggedID != document.NoID && e.anchored {
		if b, ok := e.doc.Find(e.draggedID); ok && b.Position != e.dragAnchor {
			e.checkpoint("drag")
			committed = true
		}
	}
	e.clearDrag()
	return committed
}

// Nudge moves the active box by delta as a complete one-step drag.
func (e *Editor) Nudge(delta document.Point) bool {
	b, ok := e.ActiveBox()
	if !ok || delta == (document.Point{}) {
		return false
	}
	e.PointerDown(b.ID, b.Position)
	e.PointerMove(b.Position.Add(delta))
	return e.PointerUp()
}

func (e *Editor) clearDrag() {
	e.draggedID = document.NoID
	e.dragAnchor = document.Point{}
	e.anchored = false
	e.grab = document.Point{}
}

// BeginEdit opens an edit session on box id and selects it.
func (e *Editor) BeginEdit(id document.ID) bool {
	b, ok := e.doc.Find(id)
	if !ok {
		return false
	}
	if e.editID != document.NoID && e.editID != id {
		e.EndEdit()
	}
	e.activeID = id
	e.editID = id
	e.editAnchor = b.Content
	return true
}

// Type replaces the content of box id. Per-keystroke typing commits every
// change; per-edit typing defers the checkpoint to EndEdit.
func (e *Editor) Type(id document.ID, content string) {
	if e.typing == TypingPerKeystroke || id != e.editID {
		e.UpdateBox(id, document.SetContent(content))
		return
	}
	if i := e.doc.Index(id); i >= 0 {
		e.doc[i].Content = content
	}
}

// EndEdit closes the edit session (blur). Content that differs from what the
// session started with is committed as one checkpoint. It reports whether a
// checkpoint was committed.
func (e *Editor) EndEdit() bool {
	committed := false
	if b, ok := e.doc.Find(e.editID); ok && b.Content != e.editAnchor {
		e.checkpoint("edit")
		committed = true
	}
	e.clearEdit()
	return committed
}

func (e *Editor) clearEdit() {
	e.editID = document.NoID
	e.editAnchor = ""
}

// CycleSelection selects the next box in document order.
func (e *Editor) CycleSelection() document.ID {
	if len(e.doc) == 0 {
		return document.NoID
	}
	next := 0
	if i := e.doc.Index(e.activeID); i >= 0 {
		next = (i + 1) % len(e.doc)
	}
	e.activeID = e.doc[next].ID
	return e.activeID
}
