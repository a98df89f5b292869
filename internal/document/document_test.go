package document

import (
	"errors"
	"testing"
)

func TestNewTextBoxDefaults(t *testing.T) {
	b := NewTextBox("a")
	want := TextBox{
		ID:         "a",
		Position:   Point{X: 50, Y: 50},
		Content:    "New box",
		FontSize:   16,
		FontFamily: Arial,
		Alignment:  AlignLeft,
	}
	if b != want {
		t.Fatalf("NewTextBox = %+v, want %+v", b, want)
	}
}

func TestNewIDUnique(t *testing.T) {
	seen := make(map[ID]bool)
	for i := 0; i < 1000; i++ {
		id := NewID()
		if id == NoID || seen[id] {
			t.Fatalf("duplicate or empty id %q", id)
		}
		seen[id] = true
	}
}

func TestCloneIsIndependent(t *testing.T) {
	d := Document{NewTextBox("a"), NewTextBox("b")}
	c := d.Clone()
	c[0].Content = "changed"
	c = append(c, NewTextBox("c"))
	if d[0].Content != "New box" || len(d) != 2 {
		t.Fatalf("clone aliases original: %+v", d)
	}
	if got := Document(nil).Clone(); got == nil || len(got) != 0 {
		t.Fatalf("Clone(nil) = %#v, want empty non-nil", got)
	}
}

func TestLookupAndEqual(t *testing.T) {
	d := Document{NewTextBox("a"), NewTextBox("b")}
	if d.Index("b") != 1 || d.Index("z") != -1 {
		t.Fatalf("Index wrong")
	}
	if _, ok := d.Find("z"); ok {
		t.Fatal("Find of unknown id succeeded")
	}
	if !d.Equal(d.Clone()) {
		t.Fatal("clone should be equal")
	}
	other := d.Clone()
	other[0], other[1] = other[1], other[0]
	if d.Equal(other) {
		t.Fatal("order must matter for Equal")
	}
}

func TestPatchApply(t *testing.T) {
	b := NewTextBox("a")
	p := Patch{Content: ptr("hi"), Bold: ptr(true), Alignment: ptr(AlignRight)}
	got := p.Apply(b)
	if got.Content != "hi" || !got.Bold || got.Alignment != AlignRight {
		t.Fatalf("Apply = %+v", got)
	}
	if got.ID != "a" || got.FontSize != 16 || got.Italic {
		t.Fatalf("Apply touched unset fields: %+v", got)
	}
	if !(Patch{}).Empty() || p.Empty() {
		t.Fatal("Empty misreports")
	}
	if got := SetPosition(3, 4).Apply(b).Position; got != (Point{X: 3, Y: 4}) {
		t.Fatalf("SetPosition = %+v", got)
	}
}

func TestPatchApplySkipsInvalidEnums(t *testing.T) {
	b := NewTextBox("a")
	b.FontFamily = Georgia
	b.Alignment = AlignCenter
	p := Patch{FontFamily: ptr(FontFamily(-2)), Alignment: ptr(Alignment(9)), Bold: ptr(true)}
	got := p.Apply(b)
	if got.FontFamily != Georgia || got.Alignment != AlignCenter || !got.Bold {
		t.Fatalf("Apply = %+v", got)
	}
	if !SetFontFamily(FontFamily(7)).Clean().Empty() {
		t.Fatal("Clean should drop an invalid font family")
	}
}

func TestParseFontFamily(t *testing.T) {
	tests := []struct {
		in   string
		want FontFamily
	}{
		{"Arial", Arial},
		{"times new roman", TimesNewRoman},
		{" COURIER NEW ", CourierNew},
		{"georgia", Georgia},
	}
	for _, tt := range tests {
		got, err := ParseFontFamily(tt.in)
		if err != nil || got != tt.want {
			t.Errorf("ParseFontFamily(%q) = %v, %v; want %v", tt.in, got, err, tt.want)
		}
	}
	if _, err := ParseFontFamily("Comic Sans"); !errors.Is(err, ErrUnknownFontFamily) {
		t.Errorf("unknown family error = %v", err)
	}
}

func TestParseAlignment(t *testing.T) {
	for in, want := range map[string]Alignment{"Left": AlignLeft, "CENTER": AlignCenter, "right": AlignRight} {
		got, err := ParseAlignment(in)
		if err != nil || got != want {
			t.Errorf("ParseAlignment(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := ParseAlignment("justify"); !errors.Is(err, ErrUnknownAlignment) {
		t.Errorf("unknown alignment error = %v", err)
	}
}

func TestFontFamilyNext(t *testing.T) {
	f := Arial
	for range FontFamilies {
		f = f.Next()
	}
	if f != Arial {
		t.Fatalf("cycling the whole menu should wrap to Arial, got %v", f)
	}
	for _, bad := range []FontFamily{-2, -1, 4, 100} {
		if got := bad.Next(); got != Arial {
			t.Errorf("FontFamily(%d).Next() = %v, want Arial", int(bad), got)
		}
	}
	if !CourierNew.Monospace() || Georgia.Monospace() {
		t.Fatal("Monospace misreports")
	}
}

func TestClampFontSize(t *testing.T) {
	for in, want := range map[int]int{0: 8, 8: 8, 30: 30, 72: 72, 500: 72} {
		if got := ClampFontSize(in); got != want {
			t.Errorf("ClampFontSize(%d) = %d, want %d", in, got, want)
		}
	}
}

func ptr[T any](v T) *T { return &v }
