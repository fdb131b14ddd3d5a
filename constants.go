package main

type CommandKind int

const (
	CmdNone CommandKind = iota
	CmdMove
	CmdBeginDraw
	CmdConfirm
	CmdUndoLast
	CmdClearAll
	CmdCancel
	CmdQuit
)

type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

type Tag int

const (
	TagNormal Tag = iota
	TagHovered
	TagSelected
	TagPreview
	TagCursor
)

type Side int

const (
	SideTop Side = iota
	SideBottom
	SideLeft
	SideRight
)

const (
	// Terminal cells are roughly twice as tall as they are wide.
	stepX = 2.0
	stepY = 1.0

	BorderThickness = 0.1

	cursorGlyph = '█'
	noSelection = -1

	defaultStateFile = "rects.json"
)
