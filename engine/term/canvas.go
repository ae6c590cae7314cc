package term

import (
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	"github.com/hubastard/grui/engine/colors"
	"github.com/hubastard/grui/engine/ui"
)

// Terminal cells are addressed in the same pixel space the layout uses; one
// cell covers CellW x CellH pixels.
const (
	CellW = 8
	CellH = 16
)

type cell struct {
	r  rune
	fg colors.Color
	bg colors.Color
}

// Canvas is a grid of terminal cells. It implements ui.Renderer so frames can
// be painted into it, then rendered with lipgloss.
type Canvas struct {
	cols, rows int
	clear      colors.Color
	cells      []cell
}

func NewCanvas(cols, rows int, clear colors.Color) *Canvas {
	c := &Canvas{clear: clear}
	c.Resize(cols, rows)
	return c
}

func (c *Canvas) Size() (cols, rows int) { return c.cols, c.rows }

func (c *Canvas) Resize(cols, rows int) {
	if cols < 0 {
		cols = 0
	}
	if rows < 0 {
		rows = 0
	}
	c.cols, c.rows = cols, rows
	c.cells = make([]cell, cols*rows)
	c.Clear()
}

func (c *Canvas) Clear() {
	for i := range c.cells {
		c.cells[i] = cell{r: ' ', fg: colors.White, bg: c.clear}
	}
}

func (c *Canvas) at(col, row int) *cell {
	if col < 0 || row < 0 || col >= c.cols || row >= c.rows {
		return nil
	}
	return &c.cells[row*c.cols+col]
}

// DrawQuad fills every cell whose center lies inside the quad. Rotation is
// not representable on a grid and is ignored.
func (c *Canvas) DrawQuad(cx, cy, w, h float32, color [4]float32, _ float32) {
	x0, y0 := cx-w*0.5, cy-h*0.5
	x1, y1 := cx+w*0.5, cy+h*0.5
	for row := int(y0 / CellH); row <= int(y1/CellH); row++ {
		my := float32(row)*CellH + CellH*0.5
		if my < y0 || my >= y1 {
			continue
		}
		for col := int(x0 / CellW); col <= int(x1/CellW); col++ {
			mx := float32(col)*CellW + CellW*0.5
			if mx < x0 || mx >= x1 {
				continue
			}
			if cl := c.at(col, row); cl != nil {
				cl.bg = colors.Color(color).Over(cl.bg)
			}
		}
	}
}

// DrawText writes s starting at the cell holding (x, y). The size is ignored.
func (c *Canvas) DrawText(x, y float32, s string, _ float32, color [4]float32) {
	col, row := int(x/CellW+0.5), int(y/CellH+0.5)
	for _, r := range s {
		if cl := c.at(col, row); cl != nil {
			cl.r = r
			cl.fg = colors.Color(color).Over(cl.bg)
		}
		col++
	}
}

// Measure counts runes; every rune takes one cell.
func (c *Canvas) Measure(s string, _ float32) (float32, float32) {
	return float32(utf8.RuneCountInString(s)) * CellW, CellH
}

// Plain returns the canvas text without styling, rows separated by newlines.
func (c *Canvas) Plain() string {
	var b strings.Builder
	for row := 0; row < c.rows; row++ {
		if row > 0 {
			b.WriteByte('\n')
		}
		for col := 0; col < c.cols; col++ {
			b.WriteRune(c.cells[row*c.cols+col].r)
		}
	}
	return b.String()
}

// Render styles runs of equal colors with lipgloss.
func (c *Canvas) Render() string {
	lines := make([]string, c.rows)
	for row := 0; row < c.rows; row++ {
		var b strings.Builder
		var run []rune
		var cur cell
		flush := func() {
			if len(run) == 0 {
				return
			}
			st := lipgloss.NewStyle().
				Foreground(lipgloss.Color(cur.fg.Hex())).
				Background(lipgloss.Color(cur.bg.Hex()))
			b.WriteString(st.Render(string(run)))
			run = run[:0]
		}
		for col := 0; col < c.cols; col++ {
			cl := c.cells[row*c.cols+col]
			if len(run) > 0 && (cl.fg != cur.fg || cl.bg != cur.bg) {
				flush()
			}
			cur = cl
			run = append(run, cl.r)
		}
		flush()
		lines[row] = b.String()
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// Metrics sizes leaves in whole cells: one row high, one padding cell on
// each side of a button caption.
func (c *Canvas) Metrics() ui.TextMetrics {
	m := ui.NewTextMetrics(c, 1)
	m.ButtonPadding = ui.Insets(CellW, 0, CellW, 0)
	m.LabelPadding = ui.Insets(0, 0, 0, 0)
	return m
}

// ToPixel maps a cell to the pixel at its center.
func ToPixel(col, row int) (float32, float32) {
	return float32(col)*CellW + CellW*0.5, float32(row)*CellH + CellH*0.5
}
