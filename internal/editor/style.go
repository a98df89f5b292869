package editor

import "boxedit/internal/document"

// The helpers below act on the active box and do nothing without one.

func (e *Editor) updateActive(patch func(document.TextBox) document.Patch) bool {
	b, ok := e.ActiveBox()
	if !ok {
		return false
	}
	e.UpdateBox(b.ID, patch(b))
	return true
}

func (e *Editor) ToggleBold() bool {
	return e.updateActive(func(b document.TextBox) document.Patch { return document.SetBold(!b.Bold) })
}

func (e *Editor) ToggleItalic() bool {
	return e.updateActive(func(b document.TextBox) document.Patch { return document.SetItalic(!b.Italic) })
}

func (e *Editor) ToggleUnderline() bool {
	return e.updateActive(func(b document.TextBox) document.Patch { return document.SetUnderline(!b.Underline) })
}

func (e *Editor) SetFontFamily(f document.FontFamily) bool {
	if !f.Valid() {
		return false
	}
	return e.updateActive(func(document.TextBox) document.Patch { return document.SetFontFamily(f) })
}

// CycleFontFamily advances the active box to the next entry of the font menu.
func (e *Editor) CycleFontFamily() bool {
	return e.updateActive(func(b document.TextBox) document.Patch { return document.SetFontFamily(b.FontFamily.Next()) })
}

// SetFontSize clamps size into the supported range before applying it.
func (e *Editor) SetFontSize(size int) bool {
	size = document.ClampFontSize(size)
	return e.updateActive(func(document.TextBox) document.Patch { return document.SetFontSize(size) })
}

func (e *Editor) StepFontSize(delta int) bool {
	b, ok := e.ActiveBox()
	if !ok {
		return false
	}
	return e.SetFontSize(b.FontSize + delta)
}

func (e *Editor) SetAlignment(a document.Alignment) bool {
	if !a.Valid() {
		return false
	}
	return e.updateActive(func(document.TextBox) document.Patch { return document.SetAlignment(a) })
}
