package main

import (
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	if os.Getenv("RECTEDIT_DEBUG") != "" {
		f, err := tea.LogToFile("rectedit.log", "rectedit")
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
	}

	config := loadConfig()
	path := config.GetSavePath(config.StateFile)
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	p := tea.NewProgram(
		newModel(config, NewStore(path)),
		tea.WithAltScreen(),
	)
	final, err := p.Run()
	if err != nil {
		log.Fatal(err)
	}
	if m, ok := final.(model); ok && m.saveErr != nil {
		fmt.Fprintf(os.Stderr, "rectedit: rectangles not saved: %v\n", m.saveErr)
		os.Exit(1)
	}
}
