package main

import "math"

// Contains reports whether (px, py) lies inside r. Both edges are inclusive,
// so a point on the border and the corners of a zero-size rectangle count.
func Contains(r Rectangle, px, py float64) bool {
	return px >= r.X && px <= r.X+r.Width && py >= r.Y && py <= r.Y+r.Height
}

// NormalizedRect returns the rectangle spanned by two opposite corners.
func NormalizedRect(a, b Point) Rectangle {
	return Rectangle{
		X:      math.Min(a.X, b.X),
		Y:      math.Min(a.Y, b.Y),
		Width:  math.Abs(b.X - a.X),
		Height: math.Abs(b.Y - a.Y),
	}
}

func (r Rectangle) valid() bool {
	for _, v := range []float64{r.X, r.Y, r.Width, r.Height} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return r.Width >= 0 && r.Height >= 0
}

func delta(dir Direction) Point {
	switch dir {
	case DirUp:
		return Point{0, -stepY}
	case DirDown:
		return Point{0, stepY}
	case DirLeft:
		return Point{-stepX, 0}
	case DirRight:
		return Point{stepX, 0}
	}
	return Point{}
}

// Bounds is the visible canvas area, used only when cursor clamping is on.
type Bounds struct {
	Width, Height float64
}

func (b Bounds) Clamp(p Point) Point {
	maxX := math.Max(b.Width-1, 0)
	maxY := math.Max(b.Height-1, 0)
	return Point{
		X: math.Min(math.Max(p.X, 0), maxX),
		Y: math.Min(math.Max(p.Y, 0), maxY),
	}
}
