package main

type model struct {
	width          int
	height         int
	state          *State
	store          *Store
	config         *Config
	keys           KeyMap
	style          Style
	help           bool
	modified       bool
	errorMessage   string
	successMessage string
	saveErr        error
	quitting       bool
}

type Point struct {
	X, Y float64
}

type Rectangle struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Z      int     `json:"z"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Mode is either Idle or Drawing.
type Mode interface {
	isMode()
}

type Idle struct {
	Selected int
}

type Drawing struct {
	Anchor Point
}

func (Idle) isMode()    {}
func (Drawing) isMode() {}

// State is the whole editor: cursor, mode and the rectangles it owns.
// Only Apply mutates it.
type State struct {
	Cursor Point
	Mode   Mode
	Rects  []Rectangle
	Bounds *Bounds
}

type Command struct {
	Kind CommandKind
	Dir  Direction
}

type Outcome struct {
	Quit    bool
	Changed bool
}

type Strip struct {
	Side Side
	Rect Rectangle
}

// Primitive is either an outline (Strips set) or a glyph at Rect's origin.
type Primitive struct {
	Tag    Tag
	Rect   Rectangle
	Strips []Strip
	Glyph  rune
}
