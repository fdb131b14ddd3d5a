package main

func NewState(rects []Rectangle) *State {
	if rects == nil {
		rects = []Rectangle{}
	}
	return &State{
		Mode:  Idle{Selected: noSelection},
		Rects: rects,
	}
}

// Selected returns the selected index, or -1.
func (s *State) Selected() int {
	if idle, ok := s.Mode.(Idle); ok {
		return idle.Selected
	}
	return noSelection
}

func (s *State) Drawing() (Point, bool) {
	if d, ok := s.Mode.(Drawing); ok {
		return d.Anchor, true
	}
	return Point{}, false
}

// Apply runs one command against the state. It never fails; commands that
// make no sense in the current mode are ignored.
func (s *State) Apply(cmd Command) Outcome {
	if s.Mode == nil {
		s.Mode = Idle{Selected: noSelection}
	}

	switch cmd.Kind {
	case CmdQuit:
		return Outcome{Quit: true}
	case CmdMove:
		return Outcome{Changed: s.move(cmd.Dir)}
	case CmdBeginDraw:
		switch mode := s.Mode.(type) {
		case Drawing:
			s.move(cmd.Dir)
		case Idle:
			if mode.Selected != noSelection {
				return Outcome{}
			}
			s.Mode = Drawing{Anchor: s.Cursor}
			s.move(cmd.Dir)
		}
	case CmdConfirm:
		return s.confirm()
	case CmdUndoLast:
		if _, drawing := s.Mode.(Drawing); drawing || len(s.Rects) == 0 {
			return Outcome{}
		}
		removed := len(s.Rects) - 1
		s.Rects = s.Rects[:removed]
		if s.Selected() >= removed {
			s.Mode = Idle{Selected: noSelection}
		}
		return Outcome{Changed: true}
	case CmdClearAll:
		if _, drawing := s.Mode.(Drawing); drawing {
			return Outcome{}
		}
		changed := len(s.Rects) > 0
		s.Rects = s.Rects[:0]
		s.Mode = Idle{Selected: noSelection}
		return Outcome{Changed: changed}
	case CmdCancel:
		s.Mode = Idle{Selected: noSelection}
	}
	return Outcome{}
}

// move shifts the cursor, dragging the selected rectangle along when idle.
// With bounds installed the delta is shortened so the cursor stays visible,
// and the rectangle follows by the same amount.
func (s *State) move(dir Direction) bool {
	d := delta(dir)
	next := Point{s.Cursor.X + d.X, s.Cursor.Y + d.Y}
	if s.Bounds != nil {
		next = s.Bounds.Clamp(next)
	}
	dx, dy := next.X-s.Cursor.X, next.Y-s.Cursor.Y
	s.Cursor = next

	if idle, ok := s.Mode.(Idle); ok && idle.Selected >= 0 && idle.Selected < len(s.Rects) {
		r := &s.Rects[idle.Selected]
		r.X += dx
		r.Y += dy
		return dx != 0 || dy != 0
	}
	return false
}

func (s *State) confirm() Outcome {
	switch mode := s.Mode.(type) {
	case Drawing:
		r := NormalizedRect(mode.Anchor, s.Cursor)
		r.Z = len(s.Rects)
		s.Rects = append(s.Rects, r)
		s.Mode = Idle{Selected: noSelection}
		return Outcome{Changed: true}
	case Idle:
		if mode.Selected != noSelection {
			s.Mode = Idle{Selected: noSelection}
			return Outcome{}
		}
		s.Mode = Idle{Selected: ResolveHit(s.Rects, s.Cursor.X, s.Cursor.Y)}
	}
	return Outcome{}
}
