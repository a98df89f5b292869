package editor

import (
	"testing"

	"boxedit/internal/document"
)

func typeString(e *Editor, id document.ID, s string) {
	b, _ := e.Box(id)
	content := b.Content
	for _, r := range s {
		content += string(r)
		e.Type(id, content)
	}
}

func TestTypingPerEditCommitsOnceOnBlur(t *testing.T) {
	e := newTestEditor(t)
	id := e.AddBox()
	before := e.UndoDepth()

	e.BeginEdit(id)
	typeString(e, id, " one")
	if e.UndoDepth() != before {
		t.Fatalf("typing committed checkpoints before blur: %d -> %d", before, e.UndoDepth())
	}
	if !e.EndEdit() {
		t.Fatal("EndEdit should commit changed content")
	}
	if e.UndoDepth() != before+1 {
		t.Fatalf("undo depth = %d, want %d", e.UndoDepth(), before+1)
	}
	if got := mustBox(t, e, id).Content; got != "New box one" {
		t.Fatalf("content = %q", got)
	}

	e.Undo()
	if got := mustBox(t, e, id).Content; got != "New box" {
		t.Fatalf("content after undo = %q, want %q", got, "New box")
	}
}

func TestTypingPerEditUnchangedCommitsNothing(t *testing.T) {
	e := newTestEditor(t)
	id := e.AddBox()
	before := e.UndoDepth()
	e.BeginEdit(id)
	e.Type(id, "New box!")
	e.Type(id, "New box")
	if e.EndEdit() {
		t.Fatal("edit that restores the original content should not commit")
	}
	if e.UndoDepth() != before || e.Editing() {
		t.Fatalf("depth=%d editing=%v", e.UndoDepth(), e.Editing())
	}
}

func TestTypingPerKeystroke(t *testing.T) {
	e := newTestEditor(t, WithTypingMode(TypingPerKeystroke))
	id := e.AddBox()
	before := e.UndoDepth()

	e.BeginEdit(id)
	typeString(e, id, "abc")
	if e.UndoDepth() != before+3 {
		t.Fatalf("undo depth = %d, want %d", e.UndoDepth(), before+3)
	}
	if e.EndEdit() {
		t.Fatal("per-keystroke typing has nothing left to commit on blur")
	}
	e.Undo()
	if got := mustBox(t, e, id).Content; got != "New boxab" {
		t.Fatalf("content after one undo = %q", got)
	}
}

func TestUndoDuringDragSettlesFirst(t *testing.T) {
	e := newTestEditor(t)
	id := e.AddBox()
	e.PointerDown(id, document.Point{X: 50, Y: 50})
	e.PointerMove(document.Point{X: 90, Y: 70})

	if !e.Undo() {
		t.Fatal("Undo during a drag should undo the drag")
	}
	if e.Dragging() {
		t.Fatal("drag should be finished by undo")
	}
	if p := mustBox(t, e, id).Position; p != (document.Point{X: 50, Y: 50}) {
		t.Fatalf("position = %+v, want (50,50)", p)
	}
	e.Redo()
	if p := mustBox(t, e, id).Position; p != (document.Point{X: 90, Y: 70}) {
		t.Fatalf("position after redo = %+v, want (90,70)", p)
	}
}

func TestUndoDuringEditSettlesFirst(t *testing.T) {
	e := newTestEditor(t)
	id := e.AddBox()
	e.BeginEdit(id)
	e.Type(id, "draft")
	e.Undo()
	if e.Editing() {
		t.Fatal("edit session should be closed by undo")
	}
	if got := mustBox(t, e, id).Content; got != "New box" {
		t.Fatalf("content = %q, want %q", got, "New box")
	}
	e.Redo()
	if got := mustBox(t, e, id).Content; got != "draft" {
		t.Fatalf("content after redo = %q, want %q", got, "draft")
	}
}

func TestStyleUpdateDuringEditIsNotCommittedTwice(t *testing.T) {
	e := newTestEditor(t)
	id := e.AddBox()
	e.BeginEdit(id)
	e.Type(id, "draft")
	e.ToggleBold()
	depth := e.UndoDepth()
	if e.EndEdit() {
		t.Fatal("content was already captured by the style checkpoint")
	}
	if e.UndoDepth() != depth {
		t.Fatalf("undo depth = %d, want %d", e.UndoDepth(), depth)
	}
}

func TestPointerDownEndsOtherEdit(t *testing.T) {
	e := newTestEditor(t)
	a := e.AddBox()
	b := e.AddBox()
	e.BeginEdit(a)
	e.Type(a, "changed")
	before := e.UndoDepth()

	e.PointerDown(b, document.Point{X: 50, Y: 50})
	if e.Editing() {
		t.Fatal("pressing another box should blur the edit")
	}
	if e.UndoDepth() != before+1 {
		t.Fatalf("blur should commit the edit: depth %d -> %d", before, e.UndoDepth())
	}
	if e.ActiveID() != b {
		t.Fatalf("ActiveID = %q, want %q", e.ActiveID(), b)
	}
	e.PointerUp()
}

func TestSetDraggedWithoutAnchorNeverCommits(t *testing.T) {
	e := newTestEditor(t)
	id := e.AddBox()
	before := e.UndoDepth()
	e.SetDragged(id)
	e.PointerMove(document.Point{X: 5, Y: 5})
	if e.PointerUp() || e.UndoDepth() != before {
		t.Fatal("a drag without an anchor should not commit")
	}
	e.SetActive(document.NoID)
	if e.ActiveID() != document.NoID {
		t.Fatal("SetActive(NoID) should clear the selection")
	}
}

func TestNudge(t *testing.T) {
	e := newTestEditor(t)
	id := e.AddBox()
	before := e.UndoDepth()
	if !e.Nudge(document.Point{X: 8, Y: 0}) {
		t.Fatal("Nudge should commit")
	}
	if p := mustBox(t, e, id).Position; p != (document.Point{X: 58, Y: 50}) {
		t.Fatalf("position = %+v", p)
	}
	if e.UndoDepth() != before+1 || e.Dragging() {
		t.Fatalf("depth=%d dragging=%v", e.UndoDepth(), e.Dragging())
	}
	e.SetActive(document.NoID)
	if e.Nudge(document.Point{X: 8}) {
		t.Fatal("Nudge without a selection should do nothing")
	}
}

func TestCycleSelection(t *testing.T) {
	e := newTestEditor(t)
	if e.CycleSelection() != document.NoID {
		t.Fatal("empty document has nothing to select")
	}
	a := e.AddBox()
	b := e.AddBox()
	if got := e.CycleSelection(); got != a {
		t.Fatalf("CycleSelection = %q, want %q", got, a)
	}
	if got := e.CycleSelection(); got != b {
		t.Fatalf("CycleSelection = %q, want %q", got, b)
	}
}

func TestStyleHelpers(t *testing.T) {
	e := newTestEditor(t)
	if e.ToggleBold() {
		t.Fatal("style helpers need an active box")
	}
	id := e.AddBox()

	e.ToggleBold()
	e.ToggleItalic()
	e.ToggleUnderline()
	e.CycleFontFamily()
	e.SetFontSize(100)
	e.SetAlignment(document.AlignCenter)

	b := mustBox(t, e, id)
	if !b.Bold || !b.Italic || !b.Underline {
		t.Fatalf("flags not toggled: %+v", b)
	}
	if b.FontFamily != document.TimesNewRoman {
		t.Fatalf("FontFamily = %v", b.FontFamily)
	}
	if b.FontSize != document.MaxFontSize {
		t.Fatalf("FontSize = %d, want clamped %d", b.FontSize, document.MaxFontSize)
	}
	if b.Alignment != document.AlignCenter {
		t.Fatalf("Alignment = %v", b.Alignment)
	}

	e.StepFontSize(-200)
	if got := mustBox(t, e, id).FontSize; got != document.MinFontSize {
		t.Fatalf("FontSize = %d, want %d", got, document.MinFontSize)
	}
	if e.SetAlignment(document.Alignment(9)) || e.SetFontFamily(document.FontFamily(-1)) {
		t.Fatal("invalid enum members must be rejected")
	}

	// base snapshot, the add, seven style updates
	if e.UndoDepth() != 1+1+7 {
		t.Fatalf("undo depth = %d", e.UndoDepth())
	}
}
