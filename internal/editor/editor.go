// Package editor holds the live document together with the transient
// selection, drag and edit state, and commits history checkpoints for the
// actions that form an undoable step.
//
// An Editor is driven from a single event loop and is not safe for concurrent
// use.
package editor

import (
	"io"
	"log/slog"

	"boxedit/internal/document"
	"boxedit/internal/history"
)

// TypingMode selects how content edits are grouped into undo steps.
type TypingMode int

const (
	// TypingPerEdit commits one checkpoint when an edit session ends.
	TypingPerEdit TypingMode = iota
	// TypingPerKeystroke commits a checkpoint for every content change.
	TypingPerKeystroke
)

func (m TypingMode) String() string {
	if m == TypingPerKeystroke {
		return "keystroke"
	}
	return "edit"
}

type Option func(*Editor)

func WithIDGenerator(next func() document.ID) Option {
	return func(e *Editor) { e.newID = next }
}

// WithHistoryLimit caps the number of undoable steps; n <= 0 is unbounded.
func WithHistoryLimit(n int) Option {
	return func(e *Editor) { e.historyLimit = n }
}

func WithTypingMode(m TypingMode) Option {
	return func(e *Editor) { e.typing = m }
}

func WithLogger(l *slog.Logger) Option {
	return func(e *Editor) {
		if l != nil {
			e.log = l
		}
	}
}

// Editor owns a live document and its undo history.
type Editor struct {
	doc  document.Document
	hist *history.History[document.Document]

	activeID   document.ID
	draggedID  document.ID
	dragAnchor document.Point
	anchored   bool
	grab       document.Point

	editID     document.ID
	editAnchor string

	newID        func() document.ID
	historyLimit int
	typing       TypingMode
	log          *slog.Logger
}

// New returns an editor over an empty canvas whose history is seeded with
// that empty document.
func New(opts ...Option) *Editor {
	e := &Editor{
		doc:          document.Document{},
		newID:        document.NewID,
		historyLimit: history.DefaultLimit,
		log:          slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.hist = history.New(e.doc, document.Document.Clone, e.historyLimit)
	return e
}

// Close discards the session's history and interaction state.
func (e *Editor) Close() {
	e.doc = document.Document{}
	e.hist.Reset(e.doc)
	e.activeID = document.NoID
	e.clearDrag()
	e.clearEdit()
}

// checkpoint commits the live document. Any drag or edit still in progress
// is re-anchored to the committed state so its own end does not record the
// same change twice.
func (e *Editor) checkpoint(reason string) {
	e.hist.Checkpoint(e.doc)
	if b, ok := e.doc.Find(e.draggedID); ok && e.anchored {
		e.dragAnchor = b.Position
	}
	if b, ok := e.doc.Find(e.editID); ok {
		e.editAnchor = b.Content
	}
	e.log.Debug("checkpoint", "reason", reason, "boxes", len(e.doc), "undo", e.hist.UndoLen())
}

// AddBox appends a default box, selects it and commits a checkpoint.
func (e *Editor) AddBox() document.ID {
	e.settle()
	id := e.newID()
	e.doc = append(e.doc, document.NewTextBox(id))
	e.activeID = id
	e.checkpoint("add")
	return id
}

// UpdateBox applies p to the box with the given id and commits a checkpoint.
// An unknown id, or a patch left empty once invalid enum values are dropped,
// is ignored and leaves history untouched.
func (e *Editor) UpdateBox(id document.ID, p document.Patch) {
	i := e.doc.Index(id)
	if i < 0 {
		e.log.Debug("update ignored", "id", id)
		return
	}
	if p = p.Clean(); p.Empty() {
		e.log.Debug("empty update ignored", "id", id)
		return
	}
	e.doc[i] = p.Apply(e.doc[i])
	e.checkpoint("update")
}

// UpdatePosition moves a box without committing a checkpoint. An unknown id
// is ignored.
func (e *Editor) UpdatePosition(id document.ID, x, y int) {
	if i := e.doc.Index(id); i >= 0 {
		e.doc[i].Position = document.Point{X: x, Y: y}
	}
}

func (e *Editor) SetActive(id document.ID)  { e.activeID = id }
func (e *Editor) SetDragged(id document.ID) { e.draggedID = id }

// Undo settles any in-progress drag or edit, then steps back one checkpoint.
func (e *Editor) Undo() bool {
	e.settle()
	doc, ok := e.hist.Undo(e.doc)
	if !ok {
		return false
	}
	e.restore(doc)
	e.log.Debug("undo", "undo", e.hist.UndoLen(), "redo", e.hist.RedoLen())
	return true
}

// Redo settles any in-progress drag or edit, then re-applies the last undone
// step.
func (e *Editor) Redo() bool {
	e.settle()
	doc, ok := e.hist.Redo(e.doc)
	if !ok {
		return false
	}
	e.restore(doc)
	e.log.Debug("redo", "undo", e.hist.UndoLen(), "redo", e.hist.RedoLen())
	return true
}

func (e *Editor) restore(doc document.Document) {
	e.doc = doc
	if e.doc.Index(e.activeID) < 0 {
		e.activeID = document.NoID
	}
}

// settle finishes interactions that hold uncommitted changes so history
// traversal starts from a committed state.
func (e *Editor) settle() {
	if e.draggedID != document.NoID {
		e.PointerUp()
	}
	if e.editID != document.NoID {
		e.EndEdit()
	}
}

func (e *Editor) Document() document.Document { return e.doc.Clone() }

func (e *Editor) Box(id document.ID) (document.TextBox, bool) { return e.doc.Find(id) }

// ActiveBox returns the selected box, if any.
func (e *Editor) ActiveBox() (document.TextBox, bool) { return e.doc.Find(e.activeID) }

func (e *Editor) ActiveID() document.ID  { return e.activeID }
func (e *Editor) DraggedID() document.ID { return e.draggedID }
func (e *Editor) EditingID() document.ID { return e.editID }
func (e *Editor) Dragging() bool         { return e.draggedID != document.NoID }
func (e *Editor) Editing() bool          { return e.editID != document.NoID }
func (e *Editor) TypingMode() TypingMode { return e.typing }

func (e *Editor) CanUndo() bool  { return e.hist.CanUndo() }
func (e *Editor) CanRedo() bool  { return e.hist.CanRedo() }
func (e *Editor) UndoDepth() int { return e.hist.UndoLen() }
func (e *Editor) RedoDepth() int { return e.hist.RedoLen() }
