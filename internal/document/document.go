// Package document holds the text-box data model shared by the editor, the
// history and the renderers.
package document

import (
	"strings"

	"github.com/google/uuid"
)

// ID identifies a TextBox for the lifetime of a session. NoID means "none".
type ID string

const NoID ID = ""

// NewID returns a random, collision-free box id.
func NewID() ID {
	return ID(uuid.NewString())
}

type Point struct {
	X, Y int
}

func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

const DefaultContent = "New box"

var DefaultPosition = Point{X: 50, Y: 50}

// TextBox is one placed, editable text element. All fields are values, so a
// copy of a TextBox never shares state with the original.
type TextBox struct {
	ID         ID
	Position   Point
	Content    string
	FontSize   int
	FontFamily FontFamily
	Bold       bool
	Italic     bool
	Underline  bool
	Alignment  Alignment
}

// NewTextBox returns a box with the default styling at the default position.
func NewTextBox(id ID) TextBox {
	return TextBox{
		ID:         id,
		Position:   DefaultPosition,
		Content:    DefaultContent,
		FontSize:   DefaultFontSize,
		FontFamily: Arial,
		Alignment:  AlignLeft,
	}
}

// Lines splits the content on newlines. Empty content yields one empty line.
func (b TextBox) Lines() []string {
	return strings.Split(b.Content, "\n")
}

// Document is the ordered collection of boxes on the canvas.
type Document []TextBox

// Clone returns a copy that shares no backing array with d.
func (d Document) Clone() Document {
	if d == nil {
		return Document{}
	}
	out := make(Document, len(d))
	copy(out, d)
	return out
}

func (d Document) Index(id ID) int {
	for i := range d {
		if d[i].ID == id {
			return i
		}
	}
	return -1
}

func (d Document) Find(id ID) (TextBox, bool) {
	if i := d.Index(id); i >= 0 {
		return d[i], true
	}
	return TextBox{}, false
}

// Equal compares two documents box by box, in order.
func (d Document) Equal(other Document) bool {
	if len(d) != len(other) {
		return false
	}
	for i := range d {
		if d[i] != other[i] {
			return false
		}
	}
	return true
}

// IDs lists box ids in document order.
func (d Document) IDs() []ID {
	ids := make([]ID, len(d))
	for i, b := range d {
		ids[i] = b.ID
	}
	return ids
}
