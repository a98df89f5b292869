// Package history keeps undo and redo stacks of whole-state snapshots.
//
// The top of the undo stack always mirrors the last committed state. The
// stack is seeded with the initial state, and that base snapshot is never
// popped, so undoing the very first checkpoint lands back on the initial
// state instead of doing nothing.
//
// A History is not safe for concurrent use.
package history

// DefaultLimit caps the undo stack when the caller asks for no explicit limit.
const DefaultLimit = 100

// History is a bounded pair of undo and redo stacks of T snapshots.
type History[T any] struct {
	undo  []T
	redo  []T
	clone func(T) T
	limit int
}

// New returns a History seeded with a snapshot of initial. clone must return a
// copy that shares no mutable state with its argument. limit <= 0 keeps every
// snapshot.
func New[T any](initial T, clone func(T) T, limit int) *History[T] {
	h := &History[T]{clone: clone, limit: limit}
	h.Reset(initial)
	return h
}

// Reset drops both stacks and reseeds with initial.
func (h *History[T]) Reset(initial T) {
	h.undo = []T{h.clone(initial)}
	h.redo = nil
}

// Checkpoint records state as a new undoable step and invalidates redo.
func (h *History[T]) Checkpoint(state T) {
	h.undo = append(h.undo, h.clone(state))
	h.redo = nil
	if h.limit > 0 && len(h.undo) > h.limit+1 {
		// +1 keeps a base snapshot under `limit` undoable steps.
		h.undo = h.undo[len(h.undo)-h.limit-1:]
	}
}

// Undo steps back one snapshot. current is the live state being left; it goes
// onto the redo stack so a later Redo brings it back even if it was never
// checkpointed. Undo reports false, touching nothing, when there is no step to
// undo.
func (h *History[T]) Undo(current T) (T, bool) {
	if !h.CanUndo() {
		var zero T
		return zero, false
	}
	h.redo = append(h.redo, h.clone(current))
	h.undo = h.undo[:len(h.undo)-1]
	return h.clone(h.undo[len(h.undo)-1]), true
}

// Redo re-applies the most recently undone snapshot. current replaces the
// committed state it is leaving, so undoing the redo returns to it. Unlike
// Checkpoint it leaves the rest of the redo stack in place.
func (h *History[T]) Redo(current T) (T, bool) {
	if !h.CanRedo() {
		var zero T
		return zero, false
	}
	last := len(h.redo) - 1
	next := h.redo[last]
	h.redo = h.redo[:last]
	h.undo[len(h.undo)-1] = h.clone(current)
	h.undo = append(h.undo, next)
	return h.clone(next), true
}

func (h *History[T]) CanUndo() bool { return len(h.undo) > 1 }
func (h *History[T]) CanRedo() bool { return len(h.redo) > 0 }

// UndoLen counts snapshots on the undo stack, base included.
func (h *History[T]) UndoLen() int { return len(h.undo) }
func (h *History[T]) RedoLen() int { return len(h.redo) }

// Current returns a copy of the last committed state.
func (h *History[T]) Current() T {
	return h.clone(h.undo[len(h.undo)-1])
}
