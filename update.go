package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type tickMsg time.Time

// tick keeps the view refreshing even when no key arrives.
func tick(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func newModel(config *Config, store *Store) model {
	m := model{
		config: config,
		store:  store,
		keys:   DefaultKeyMap(),
		style:  DefaultStyle(),
	}

	rects, err := store.Load()
	if err != nil {
		// A missing file is the normal first run; anything else is worth a word.
		if !errors.Is(err, os.ErrNotExist) {
			log.Printf("starting with an empty canvas: %v", err)
			m.errorMessage = "could not read " + store.Path() + ", starting empty"
		}
	}
	m.state = NewState(rects)
	return m
}

func (m model) Init() tea.Cmd {
	return tick(m.config.TickInterval)
}

func (m model) canvasSize() (int, int) {
	width := m.width
	if width < 1 {
		width = 1
	}
	// Leave room for the status line.
	height := m.height - 1
	if height < 1 {
		height = 1
	}
	return width, height
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		return m, tick(m.config.TickInterval)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.config.ClampCursor {
			w, h := m.canvasSize()
			m.state.Bounds = &Bounds{Width: float64(w), Height: float64(h)}
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.help {
		m.help = false
		return m, nil
	}
	m.errorMessage = ""
	m.successMessage = ""

	switch {
	case key.Matches(msg, m.keys.Help):
		m.help = true
		return m, nil
	case key.Matches(msg, m.keys.Yank):
		r, err := yankSelection(m.state)
		if err != nil {
			m.errorMessage = err.Error()
		} else {
			m.successMessage = fmt.Sprintf("Copied %s x %s at (%s,%s)",
				formatUnits(r.Width), formatUnits(r.Height), formatUnits(r.X), formatUnits(r.Y))
		}
		return m, nil
	case key.Matches(msg, m.keys.ExportPNG):
		m.export(".png", func(filename string) error {
			return ExportPNG(filename, m.state)
		})
		return m, nil
	case key.Matches(msg, m.keys.ExportText):
		w, h := m.canvasSize()
		m.export(".txt", func(filename string) error {
			return ExportText(filename, m.state, w, h)
		})
		return m, nil
	}

	outcome := m.state.Apply(m.keys.commandForKey(msg))
	if outcome.Changed {
		m.modified = true
	}
	if outcome.Quit {
		m.quitting = true
		if err := m.store.Save(m.state.Rects); err != nil {
			log.Printf("save failed: %v", err)
			m.saveErr = err
		}
		return m, tea.Quit
	}
	return m, nil
}

// exportName derives an export file name from the state file, rects.json
// becoming rects.png and so on.
func (m model) exportName(ext string) string {
	base := filepath.Base(m.store.Path())
	return strings.TrimSuffix(base, filepath.Ext(base)) + ext
}

// export resolves the export path for ext and reports the result of write in
// the status line.
func (m *model) export(ext string, write func(filename string) error) {
	filename, err := m.config.GetExportPath(m.exportName(ext))
	if err == nil {
		err = write(filename)
	}
	if err != nil {
		m.errorMessage = err.Error()
		return
	}
	m.successMessage = "Exported " + filename
}
