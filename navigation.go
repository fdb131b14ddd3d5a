package main

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// commandForKey maps a key press to an editor command. Keys that are not
// editor commands map to CmdNone.
func (k KeyMap) commandForKey(msg tea.KeyMsg) Command {
	switch {
	case key.Matches(msg, k.Up):
		return Command{Kind: CmdMove, Dir: DirUp}
	case key.Matches(msg, k.Down):
		return Command{Kind: CmdMove, Dir: DirDown}
	case key.Matches(msg, k.Left):
		return Command{Kind: CmdMove, Dir: DirLeft}
	case key.Matches(msg, k.Right):
		return Command{Kind: CmdMove, Dir: DirRight}
	case key.Matches(msg, k.DrawUp):
		return Command{Kind: CmdBeginDraw, Dir: DirUp}
	case key.Matches(msg, k.DrawDown):
		return Command{Kind: CmdBeginDraw, Dir: DirDown}
	case key.Matches(msg, k.DrawLeft):
		return Command{Kind: CmdBeginDraw, Dir: DirLeft}
	case key.Matches(msg, k.DrawRight):
		return Command{Kind: CmdBeginDraw, Dir: DirRight}
	case key.Matches(msg, k.Confirm):
		return Command{Kind: CmdConfirm}
	case key.Matches(msg, k.UndoLast):
		return Command{Kind: CmdUndoLast}
	case key.Matches(msg, k.ClearAll):
		return Command{Kind: CmdClearAll}
	case key.Matches(msg, k.Cancel):
		return Command{Kind: CmdCancel}
	case key.Matches(msg, k.Quit):
		return Command{Kind: CmdQuit}
	}
	return Command{Kind: CmdNone}
}
