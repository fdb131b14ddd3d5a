package main

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
)

var errNothingSelected = errors.New("no rectangle selected")

// writeClipboard is swapped out in tests; CI machines have no clipboard.
var writeClipboard = clipboard.WriteAll

// yankSelection copies the selected rectangle to the system clipboard as JSON.
func yankSelection(s *State) (Rectangle, error) {
	idx := s.Selected()
	if idx < 0 || idx >= len(s.Rects) {
		return Rectangle{}, errNothingSelected
	}
	r := s.Rects[idx]
	data, err := json.Marshal(r)
	if err != nil {
		return Rectangle{}, fmt.Errorf("json marshal: %w", err)
	}
	if err := writeClipboard(string(data)); err != nil {
		return Rectangle{}, fmt.Errorf("clipboard: %w", err)
	}
	return r, nil
}

func formatUnits(v float64) string {
	return fmt.Sprintf("%g", v)
}
