package main

import (
	"math"
	"strings"
)

type Cell struct {
	Rune rune
	Tag  Tag
}

// Canvas is a fixed-size grid of terminal cells that primitives are painted
// onto. Rows are y, columns are x, one canvas unit per cell.
type Canvas struct {
	width  int
	height int
	cells  [][]Cell
}

type cellPos struct {
	x, y int
}

const (
	sideTop uint8 = 1 << iota
	sideBottom
	sideLeft
	sideRight
)

func NewCanvas(width, height int) *Canvas {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	cells := make([][]Cell, height)
	for y := range cells {
		cells[y] = make([]Cell, width)
		for x := range cells[y] {
			cells[y][x] = Cell{Rune: ' '}
		}
	}
	return &Canvas{width: width, height: height, cells: cells}
}

func (c *Canvas) isValidPos(x, y int) bool {
	return y >= 0 && y < c.height && x >= 0 && x < c.width
}

func (c *Canvas) Cell(x, y int) Cell {
	if !c.isValidPos(x, y) {
		return Cell{Rune: ' '}
	}
	return c.cells[y][x]
}

// Paint draws the primitives in order; later ones overwrite earlier ones.
func (c *Canvas) Paint(prims []Primitive) {
	for _, p := range prims {
		if len(p.Strips) == 0 {
			x, x1 := cellSpan(p.Rect.X, 0, c.width)
			y, y1 := cellSpan(p.Rect.Y, 0, c.height)
			if x <= x1 && y <= y1 {
				c.set(x, y, p.Glyph, p.Tag)
			}
			continue
		}
		c.paintOutline(p)
	}
}

func (c *Canvas) paintOutline(p Primitive) {
	sides := make(map[cellPos]uint8)
	for _, s := range p.Strips {
		var flag uint8
		switch s.Side {
		case SideTop:
			flag = sideTop
		case SideBottom:
			flag = sideBottom
		case SideLeft:
			flag = sideLeft
		case SideRight:
			flag = sideRight
		}
		x0, x1 := cellSpan(s.Rect.X, s.Rect.Width, c.width)
		y0, y1 := cellSpan(s.Rect.Y, s.Rect.Height, c.height)
		for y := y0; y <= y1; y++ {
			for x := x0; x <= x1; x++ {
				sides[cellPos{x, y}] |= flag
			}
		}
	}
	for pos, flags := range sides {
		c.set(pos.x, pos.y, borderGlyph(flags), p.Tag)
	}
}

// cellSpan returns the first and last cell a strip covers, clipped to
// [0, limit). The clamp happens in float space so huge coordinates never
// reach the int conversion.
func cellSpan(start, extent float64, limit int) (int, int) {
	hi := float64(limit - 1)
	lo := math.Max(math.Floor(start), 0)
	end := math.Min(math.Floor(start+extent), hi)
	if math.IsNaN(lo) || math.IsNaN(end) || lo > end {
		return 0, -1
	}
	return int(lo), int(end)
}

func borderGlyph(flags uint8) rune {
	top := flags&sideTop != 0
	bottom := flags&sideBottom != 0
	left := flags&sideLeft != 0
	right := flags&sideRight != 0

	switch {
	case top && bottom && left && right:
		return '·'
	case top && bottom:
		return '─'
	case left && right:
		return '│'
	case top && left:
		return '┌'
	case top && right:
		return '┐'
	case bottom && left:
		return '└'
	case bottom && right:
		return '┘'
	case top || bottom:
		return '─'
	default:
		return '│'
	}
}

func (c *Canvas) set(x, y int, r rune, tag Tag) {
	if !c.isValidPos(x, y) {
		return
	}
	c.cells[y][x] = Cell{Rune: r, Tag: tag}
}

// Lines returns the canvas as plain text rows.
func (c *Canvas) Lines() []string {
	lines := make([]string, c.height)
	for y, row := range c.cells {
		var b strings.Builder
		for _, cell := range row {
			b.WriteRune(cell.Rune)
		}
		lines[y] = b.String()
	}
	return lines
}
