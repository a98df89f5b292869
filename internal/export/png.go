// Package export rasterizes a document to PNG.
package export

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"
	"sync"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/gomonobolditalic"
	"golang.org/x/image/font/gofont/gomonoitalic"
	"golang.org/x/image/font/gofont/goregular"

	"boxedit/internal/document"
)

var ErrNothingToExport = errors.New("nothing to export")

type Options struct {
	// Margin is added around the content bounds, in pixels.
	Margin int
	// Padding is the inner spacing between a box edge and its text.
	Padding int
	// Borders draws a thin outline around each box.
	Borders    bool
	Background color.Color
	Foreground color.Color
}

func DefaultOptions() Options {
	return Options{
		Margin:     16,
		Padding:    8,
		Background: color.White,
		Foreground: color.Black,
	}
}

// PNG renders doc and writes it to path.
func PNG(doc document.Document, path string, opts Options) error {
	dc, err := draw(doc, opts)
	if err != nil {
		return err
	}
	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("save png %s: %w", path, err)
	}
	return nil
}

// Render returns the rasterized document without touching the filesystem.
func Render(doc document.Document, opts Options) (image.Image, error) {
	dc, err := draw(doc, opts)
	if err != nil {
		return nil, err
	}
	return dc.Image(), nil
}

type layout struct {
	box    document.TextBox
	face   font.Face
	lines  []string
	widths []float64
	x, y   float64
	w, h   float64
	lineH  float64
}

func draw(doc document.Document, opts Options) (*gg.Context, error) {
	if len(doc) == 0 {
		return nil, ErrNothingToExport
	}
	if opts.Background == nil {
		opts.Background = color.White
	}
	if opts.Foreground == nil {
		opts.Foreground = color.Black
	}

	// Faces are measured on a scratch context before the real canvas size is
	// known.
	scratch := gg.NewContext(1, 1)
	faces := map[faceKey]font.Face{}
	boxes := make([]layout, 0, len(doc))
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, b := range doc {
		face, err := faceFor(b, faces)
		if err != nil {
			return nil, err
		}
		scratch.SetFontFace(face)
		l := layout{
			box:   b,
			face:  face,
			lines: b.Lines(),
			x:     float64(b.Position.X),
			y:     float64(b.Position.Y),
			lineH: float64(size(b)) * 1.25,
		}
		widest := 0.0
		for _, line := range l.lines {
			w, _ := scratch.MeasureString(line)
			l.widths = append(l.widths, w)
			widest = math.Max(widest, w)
		}
		pad := float64(opts.Padding)
		l.w = widest + 2*pad
		l.h = l.lineH*float64(len(l.lines)) + 2*pad
		boxes = append(boxes, l)

		minX, minY = math.Min(minX, l.x), math.Min(minY, l.y)
		maxX, maxY = math.Max(maxX, l.x+l.w), math.Max(maxY, l.y+l.h)
	}

	// Canvas coordinates start at the origin; only content left of or above
	// it shifts the image.
	originX, originY := math.Min(0, minX), math.Min(0, minY)
	margin := float64(opts.Margin)
	width := int(math.Ceil(maxX - originX + margin))
	height := int(math.Ceil(maxY - originY + margin))

	dc := gg.NewContext(width, height)
	dc.SetColor(opts.Background)
	dc.Clear()

	for _, l := range boxes {
		x := l.x - originX
		y := l.y - originY
		dc.SetColor(opts.Foreground)
		if opts.Borders {
			dc.SetLineWidth(1)
			dc.DrawRectangle(x, y, l.w, l.h)
			dc.Stroke()
		}
		dc.SetFontFace(l.face)
		pad := float64(opts.Padding)
		for i, line := range l.lines {
			lx := alignX(l.box.Alignment, x, l.w, l.widths[i], pad)
			baseline := y + pad + float64(i)*l.lineH + float64(size(l.box))
			dc.DrawString(line, lx, baseline)
			if l.box.Underline && l.widths[i] > 0 {
				dc.SetLineWidth(math.Max(1, float64(size(l.box))/16))
				dc.DrawLine(lx, baseline+2, lx+l.widths[i], baseline+2)
				dc.Stroke()
			}
		}
	}
	return dc, nil
}

func alignX(a document.Alignment, x, boxW, lineW, pad float64) float64 {
	switch a {
	case document.AlignCenter:
		return x + (boxW-lineW)/2
	case document.AlignRight:
		return x + boxW - pad - lineW
	}
	return x + pad
}

// size guards the rasterizer against sizes the model accepts but a face
// cannot be built from.
func size(b document.TextBox) int {
	if b.FontSize <= 0 {
		return document.DefaultFontSize
	}
	return b.FontSize
}

type faceKey struct {
	mono, bold, italic bool
	size               int
}

// Parsed fonts are shared; faces carry glyph caches and stay local to one
// render.
var (
	fontsMu sync.Mutex
	fonts   = map[faceKey]*truetype.Font{}
)

func parsedFont(k faceKey) (*truetype.Font, error) {
	k.size = 0
	fontsMu.Lock()
	defer fontsMu.Unlock()
	if f, ok := fonts[k]; ok {
		return f, nil
	}
	f, err := truetype.Parse(ttfData(k))
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	fonts[k] = f
	return f, nil
}

func faceFor(b document.TextBox, faces map[faceKey]font.Face) (font.Face, error) {
	key := faceKey{mono: b.FontFamily.Monospace(), bold: b.Bold, italic: b.Italic, size: size(b)}
	if f, ok := faces[key]; ok {
		return f, nil
	}
	ttf, err := parsedFont(key)
	if err != nil {
		return nil, err
	}
	face := truetype.NewFace(ttf, &truetype.Options{
		Size:    float64(key.size),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	faces[key] = face
	return face, nil
}

// ttfData maps a style to the Go font family: Courier New renders with Go
// Mono, every other family with the proportional Go faces.
func ttfData(k faceKey) []byte {
	switch {
	case k.mono && k.bold && k.italic:
		return gomonobolditalic.TTF
	case k.mono && k.bold:
		return gomonobold.TTF
	case k.mono && k.italic:
		return gomonoitalic.TTF
	case k.mono:
		return gomono.TTF
	case k.bold && k.italic:
		return gobolditalic.TTF
	case k.bold:
		return gobold.TTF
	case k.italic:
		return goitalic.TTF
	}
	return goregular.TTF
}
