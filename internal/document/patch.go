package document

// Patch is a partial TextBox update. Nil fields are left untouched.
type Patch struct {
	Position   *Point
	Content    *string
	FontSize   *int
	FontFamily *FontFamily
	Bold       *bool
	Italic     *bool
	Underline  *bool
	Alignment  *Alignment
}

func (p Patch) Empty() bool {
	return p.Position == nil && p.Content == nil && p.FontSize == nil &&
		p.FontFamily == nil && p.Bold == nil && p.Italic == nil &&
		p.Underline == nil && p.Alignment == nil
}

// Clean drops font family and alignment values that are not enum members.
func (p Patch) Clean() Patch {
	if p.FontFamily != nil && !p.FontFamily.Valid() {
		p.FontFamily = nil
	}
	if p.Alignment != nil && !p.Alignment.Valid() {
		p.Alignment = nil
	}
	return p
}

// Apply returns b with the patch's fields written over it. Invalid enum values
// are skipped and the id is never changed.
func (p Patch) Apply(b TextBox) TextBox {
	p = p.Clean()
	if p.Position != nil {
		b.Position = *p.Position
	}
	if p.Content != nil {
		b.Content = *p.Content
	}
	if p.FontSize != nil {
		b.FontSize = *p.FontSize
	}
	if p.FontFamily != nil {
		b.FontFamily = *p.FontFamily
	}
	if p.Bold != nil {
		b.Bold = *p.Bold
	}
	if p.Italic != nil {
		b.Italic = *p.Italic
	}
	if p.Underline != nil {
		b.Underline = *p.Underline
	}
	if p.Alignment != nil {
		b.Alignment = *p.Alignment
	}
	return b
}

func SetPosition(x, y int) Patch { return Patch{Position: &Point{x, y}} }
func SetContent(s string) Patch { return Patch{Content: &s} }
func SetFontSize(n int) Patch { return Patch{FontSize: &n} }
func SetFontFamily(f FontFamily) Patch { return Patch{FontFamily: &f} }
func SetBold(v bool) Patch { return Patch{Bold: &v} }
func SetItalic(v bool) Patch { return Patch{Italic: &v} }
func SetUnderline(v bool) Patch { return Patch{Underline: &v} }
func SetAlignment(a Alignment) Patch { return Patch{Alignment: &a} }
