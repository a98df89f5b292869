package document

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnknownFontFamily = errors.New("unknown font family")
	ErrUnknownAlignment  = errors.New("unknown alignment")
)

const (
	MinFontSize     = 8
	MaxFontSize     = 72
	DefaultFontSize = 16
)

// ClampFontSize pins size into [MinFontSize, MaxFontSize]. The model itself
// stores whatever it is given; clamping belongs to the input boundary.
func ClampFontSize(size int) int {
	if size < MinFontSize {
		return MinFontSize
	}
	if size > MaxFontSize {
		return MaxFontSize
	}
	return size
}

type FontFamily int

const (
	Arial FontFamily = iota
	TimesNewRoman
	CourierNew
	Georgia
)

// FontFamilies is the fixed font menu, in menu order.
var FontFamilies = []FontFamily{Arial, TimesNewRoman, CourierNew, Georgia}

func (f FontFamily) String() string {
	switch f {
	case Arial:
		return "Arial"
	case TimesNewRoman:
		return "Times New Roman"
	case CourierNew:
		return "Courier New"
	case Georgia:
		return "Georgia"
	}
	return fmt.Sprintf("FontFamily(%d)", int(f))
}

// Valid reports whether f is a member of the font menu.
func (f FontFamily) Valid() bool {
	return f >= Arial && f <= Georgia
}

// Next returns the family after f in menu order, wrapping around. An invalid
// f yields the first family.
func (f FontFamily) Next() FontFamily {
	if !f.Valid() {
		return FontFamilies[0]
	}
	return FontFamilies[(int(f)+1)%len(FontFamilies)]
}

// Monospace reports whether the family renders with fixed-width glyphs.
func (f FontFamily) Monospace() bool {
	return f == CourierNew
}

func ParseFontFamily(name string) (FontFamily, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for _, f := range FontFamilies {
		if strings.ToLower(f.String()) == key {
			return f, nil
		}
	}
	return Arial, fmt.Errorf("%w: %q", ErrUnknownFontFamily, name)
}

type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

func (a Alignment) String() string {
	switch a {
	case AlignLeft:
		return "Left"
	case AlignCenter:
		return "Center"
	case AlignRight:
		return "Right"
	}
	return fmt.Sprintf("Alignment(%d)", int(a))
}

func (a Alignment) Valid() bool {
	return a >= AlignLeft && a <= AlignRight
}

func ParseAlignment(name string) (Alignment, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "left":
		return AlignLeft, nil
	case "center", "centre":
		return AlignCenter, nil
	case "right":
		return AlignRight, nil
	}
	return AlignLeft, fmt.Errorf("%w: %q", ErrUnknownAlignment, name)
}
