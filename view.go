package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Style maps primitive tags to terminal colours.
type Style struct {
	Normal   lipgloss.Style
	Hovered  lipgloss.Style
	Selected lipgloss.Style
	Preview  lipgloss.Style
	Cursor   lipgloss.Style

	Status lipgloss.Style
	Error  lipgloss.Style
}

func DefaultStyle() Style {
	return Style{
		Normal:   lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		Hovered:  lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Bold(true),
		Selected: lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		Preview:  lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Cursor:   lipgloss.NewStyle().Foreground(lipgloss.Color("231")),
		Status:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
	}
}

func (s Style) forTag(tag Tag) lipgloss.Style {
	switch tag {
	case TagHovered:
		return s.Hovered
	case TagSelected:
		return s.Selected
	case TagPreview:
		return s.Preview
	case TagCursor:
		return s.Cursor
	default:
		return s.Normal
	}
}

func (m model) View() string {
	if m.quitting {
		return ""
	}
	if m.help {
		return m.helpView()
	}

	width, height := m.canvasSize()
	canvas := NewCanvas(width, height)
	canvas.Paint(Project(m.state))

	var result strings.Builder
	for y := 0; y < height; y++ {
		m.writeStyledRow(&result, canvas, y, width)
		result.WriteString("\n")
	}
	result.WriteString(m.statusLine())
	return result.String()
}

// writeStyledRow renders a row in runs of equally tagged cells so each run
// costs one style call.
func (m model) writeStyledRow(b *strings.Builder, canvas *Canvas, y, width int) {
	var run strings.Builder
	runTag := canvas.Cell(0, y).Tag
	flush := func() {
		if run.Len() == 0 {
			return
		}
		b.WriteString(m.style.forTag(runTag).Render(run.String()))
		run.Reset()
	}
	for x := 0; x < width; x++ {
		cell := canvas.Cell(x, y)
		if cell.Tag != runTag {
			flush()
			runTag = cell.Tag
		}
		run.WriteRune(cell.Rune)
	}
	flush()
}

func (m model) modeString() string {
	switch m.state.Mode.(type) {
	case Drawing:
		return "DRAW"
	default:
		if m.state.Selected() != noSelection {
			return "SELECT"
		}
		return "NORMAL"
	}
}

func (m model) statusLine() string {
	c := m.state.Cursor
	status := fmt.Sprintf("Mode: %s | Cursor: (%s,%s) | Rects: %d",
		m.modeString(), formatUnits(c.X), formatUnits(c.Y), len(m.state.Rects))

	if anchor, ok := m.state.Drawing(); ok {
		r := NormalizedRect(anchor, c)
		status += fmt.Sprintf(" | %s x %s", formatUnits(r.Width), formatUnits(r.Height))
	}
	if idx := m.state.Selected(); idx != noSelection {
		status += fmt.Sprintf(" | Selected: %d", idx)
	}
	if m.modified {
		status += " | [+]"
	}
	if m.successMessage != "" {
		status += " | " + m.successMessage
	}
	if m.errorMessage != "" {
		return m.style.Status.Render(status) + m.style.Error.Render(" | ERROR: "+m.errorMessage)
	}
	if m.successMessage == "" {
		status += " | ? for help | q to quit"
	}
	return m.style.Status.Render(status)
}

func (m model) helpView() string {
	var b strings.Builder
	b.WriteString("rectedit help\n")
	b.WriteString("=============\n\n")
	for _, binding := range m.keys.HelpBindings() {
		h := binding.Help()
		fmt.Fprintf(&b, "  %-14s %s\n", h.Key, h.Desc)
	}
	b.WriteString("\nRectangles are saved to ")
	b.WriteString(m.store.Path())
	b.WriteString(" on quit.\n\nPress any key to close this help.")
	return b.String()
}
