package main

// Project turns the state into draw primitives in paint order: rectangles in
// collection order, then the gesture preview, then the cursor glyph last.
func Project(s *State) []Primitive {
	hover := ResolveHit(s.Rects, s.Cursor.X, s.Cursor.Y)
	selected := s.Selected()

	prims := make([]Primitive, 0, len(s.Rects)+2)
	for i, r := range s.Rects {
		tag := TagNormal
		switch i {
		case selected:
			tag = TagSelected
		case hover:
			tag = TagHovered
		}
		prims = append(prims, outline(r, tag))
	}

	if anchor, ok := s.Drawing(); ok {
		prims = append(prims, outline(NormalizedRect(anchor, s.Cursor), TagPreview))
	}

	prims = append(prims, Primitive{
		Tag:   TagCursor,
		Rect:  Rectangle{X: s.Cursor.X, Y: s.Cursor.Y},
		Glyph: cursorGlyph,
	})
	return prims
}

// outline splits r into four thin border strips. Cell canvases cannot draw a
// zero-width line, so each edge gets BorderThickness.
func outline(r Rectangle, tag Tag) Primitive {
	t := BorderThickness
	return Primitive{
		Tag:  tag,
		Rect: r,
		Strips: []Strip{
			{SideTop, Rectangle{X: r.X, Y: r.Y, Width: r.Width, Height: t}},
			{SideBottom, Rectangle{X: r.X, Y: r.Y + r.Height, Width: r.Width, Height: t}},
			{SideLeft, Rectangle{X: r.X, Y: r.Y, Width: t, Height: r.Height}},
			{SideRight, Rectangle{X: r.X + r.Width, Y: r.Y, Width: t, Height: r.Height}},
		},
	}
}
