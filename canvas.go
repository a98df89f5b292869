package main

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"boxedit/internal/document"
)

// boxRect is a box's footprint in terminal cells, canvas-relative.
type boxRect struct {
	id         document.ID
	col, row   int
	cols, rows int
	inner      int
}

func (r boxRect) contains(col, row int) bool {
	return col >= r.col && col < r.col+r.cols && row >= r.row && row < r.row+r.rows
}

// toCell maps a canvas pixel position to the cell holding it.
func (m *model) toCell(p document.Point) (int, int) {
	return floorDiv(p.X, m.config.Canvas.CellWidth), floorDiv(p.Y, m.config.Canvas.CellHeight)
}

// screenToCanvas subtracts the canvas origin from a screen cell and scales it
// to canvas pixels.
func (m *model) screenToCanvas(x, y int) document.Point {
	return document.Point{
		X: x * m.config.Canvas.CellWidth,
		Y: (y - headerHeight) * m.config.Canvas.CellHeight,
	}
}

func (m *model) canvasRows() int {
	rows := m.height - headerHeight - footerHeight
	if rows < 1 {
		rows = 1
	}
	return rows
}

func boxInnerWidth(b document.TextBox) int {
	w := minBoxInner
	for _, line := range b.Lines() {
		if lw := runewidth.StringWidth(line); lw > w {
			w = lw
		}
	}
	return w
}

func (m *model) rectFor(b document.TextBox) boxRect {
	col, row := m.toCell(b.Position)
	inner := boxInnerWidth(b)
	return boxRect{
		id:    b.ID,
		col:   col,
		row:   row,
		cols:  inner + boxChromeWidth,
		rows:  len(b.Lines()) + boxChromeHeight,
		inner: inner,
	}
}

// boxAt hit-tests a screen cell. Later boxes are drawn on top, so they win.
func (m *model) boxAt(x, y int) document.ID {
	col, row := x, y-headerHeight
	doc := m.editor.Document()
	for i := len(doc) - 1; i >= 0; i-- {
		if m.rectFor(doc[i]).contains(col, row) {
			return doc[i].ID
		}
	}
	return document.NoID
}

func alignOffset(a document.Alignment, inner, w int) int {
	switch a {
	case document.AlignCenter:
		return (inner - w) / 2
	case document.AlignRight:
		return inner - w
	}
	return 0
}

func textStyle(b document.TextBox) lipgloss.Style {
	s := lipgloss.NewStyle().Bold(b.Bold).Italic(b.Italic).Underline(b.Underline)
	if b.FontFamily.Monospace() {
		s = s.Foreground(lipgloss.Color("6"))
	}
	return s
}

type cell struct {
	r     rune
	style int
	// cont marks the trailing half of a double-width rune.
	cont bool
}

type grid struct {
	cells  [][]cell
	styles []lipgloss.Style
}

func newGrid(cols, rows int) *grid {
	g := &grid{
		cells: make([][]cell, rows),
		styles: []lipgloss.Style{
			stylePlain:         lipgloss.NewStyle(),
			styleBorder:        lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
			styleBorderActive:  lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
			styleBorderDragged: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
			styleCursor:        lipgloss.NewStyle().Reverse(true),
		},
	}
	for y := range g.cells {
		row := make([]cell, cols)
		for x := range row {
			row[x] = cell{r: ' '}
		}
		g.cells[y] = row
	}
	return g
}

func (g *grid) addStyle(s lipgloss.Style) int {
	g.styles = append(g.styles, s)
	return len(g.styles) - 1
}

func (g *grid) set(col, row int, r rune, style int) int {
	w := runewidth.RuneWidth(r)
	if w == 0 {
		return 0
	}
	if row < 0 || row >= len(g.cells) || col < 0 || col+w > len(g.cells[row]) {
		return w
	}
	g.cells[row][col] = cell{r: r, style: style}
	if w == 2 {
		g.cells[row][col+1] = cell{style: style, cont: true}
	}
	return w
}

func (g *grid) text(col, row int, s string, style int) {
	for _, r := range s {
		col += g.set(col, row, r, style)
	}
}

// lines renders each row, styling runs of cells that share a style slot.
func (g *grid) lines() []string {
	out := make([]string, len(g.cells))
	for y, row := range g.cells {
		var line, run strings.Builder
		current := stylePlain
		flush := func() {
			if run.Len() == 0 {
				return
			}
			if current == stylePlain {
				line.WriteString(run.String())
			} else {
				line.WriteString(g.styles[current].Render(run.String()))
			}
			run.Reset()
		}
		for _, c := range row {
			if c.cont {
				continue
			}
			if c.style != current {
				flush()
				current = c.style
			}
			run.WriteRune(c.r)
		}
		flush()
		out[y] = line.String()
	}
	return out
}

// renderCanvas draws every box in document order, later boxes over earlier
// ones.
func (m *model) renderCanvas(cols, rows int) []string {
	g := newGrid(cols, rows)
	active, dragged, editing := m.editor.ActiveID(), m.editor.DraggedID(), m.editor.EditingID()
	for _, b := range m.editor.Document() {
		r := m.rectFor(b)
		border, borderStyle := lipgloss.RoundedBorder(), styleBorder
		switch b.ID {
		case dragged:
			border, borderStyle = lipgloss.DoubleBorder(), styleBorderDragged
		case active:
			border, borderStyle = lipgloss.ThickBorder(), styleBorderActive
		}
		drawFrame(g, r, border, borderStyle)

		ts := g.addStyle(textStyle(b))
		lines := b.Lines()
		for i, line := range lines {
			off := alignOffset(b.Alignment, r.inner, runewidth.StringWidth(line))
			g.text(r.col+2+off, r.row+1+i, line, ts)
		}
		if b.ID == editing {
			line, col := cursorLineCol(b.Content, m.editCursor)
			if line < len(lines) {
				w := runewidth.StringWidth(lines[line])
				x := r.col + 2 + alignOffset(b.Alignment, r.inner, w) + col
				y := r.row + 1 + line
				if y >= 0 && y < rows && x >= 0 && x < cols {
					under := g.cells[y][x]
					if under.r == 0 || under.cont {
						under.r = ' '
					}
					g.set(x, y, under.r, styleCursor)
				}
			}
		}
	}
	return g.lines()
}

func drawFrame(g *grid, r boxRect, b lipgloss.Border, style int) {
	right, bottom := r.col+r.cols-1, r.row+r.rows-1
	horizontal := func(row int, left, fill, end string) {
		g.text(r.col, row, left, style)
		for x := r.col + 1; x < right; x++ {
			g.text(x, row, fill, style)
		}
		g.text(right, row, end, style)
	}
	horizontal(r.row, b.TopLeft, b.Top, b.TopRight)
	for y := r.row + 1; y < bottom; y++ {
		g.text(r.col, y, b.Left, style)
		for x := r.col + 1; x < right; x++ {
			g.set(x, y, ' ', stylePlain)
		}
		g.text(right, y, b.Right, style)
	}
	horizontal(bottom, b.BottomLeft, b.Bottom, b.BottomRight)
}

// cursorLineCol converts a rune offset into a line index and display column.
func cursorLineCol(content string, pos int) (int, int) {
	line, col := 0, 0
	for i, r := range []rune(content) {
		if i >= pos {
			break
		}
		if r == '\n' {
			line++
			col = 0
			continue
		}
		col += runewidth.RuneWidth(r)
	}
	return line, col
}
