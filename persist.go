package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ReadError means the save file was missing or could not be parsed. Callers
// recover by starting with an empty canvas.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("read %s: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

var errMalformed = errors.New("malformed rectangle record")

// Store reads and writes the rectangle list as a JSON array.
type Store struct {
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

func (s *Store) Path() string {
	return s.path
}

// rectRecord uses pointers so absent fields can be told apart from zeros.
type rectRecord struct {
	X      *float64 `json:"x"`
	Y      *float64 `json:"y"`
	Z      *int     `json:"z"`
	Width  *float64 `json:"width"`
	Height *float64 `json:"height"`
}

// Load always returns a usable, non-nil slice. When the file is missing or
// broken the slice is empty and the error is a *ReadError.
func (s *Store) Load() ([]Rectangle, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return []Rectangle{}, &ReadError{Path: s.path, Err: err}
	}
	rects, err := decodeRects(data)
	if err != nil {
		return []Rectangle{}, &ReadError{Path: s.path, Err: err}
	}
	return rects, nil
}

func decodeRects(data []byte) ([]Rectangle, error) {
	var records []rectRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("json unmarshal: %w", err)
	}

	rects := make([]Rectangle, 0, len(records))
	for i, rec := range records {
		if rec.X == nil || rec.Y == nil || rec.Width == nil || rec.Height == nil {
			return nil, fmt.Errorf("record %d: %w: missing field", i, errMalformed)
		}
		r := Rectangle{X: *rec.X, Y: *rec.Y, Width: *rec.Width, Height: *rec.Height, Z: i}
		if rec.Z != nil {
			r.Z = *rec.Z
		}
		if !r.valid() {
			return nil, fmt.Errorf("record %d: %w: negative size", i, errMalformed)
		}
		rects = append(rects, r)
	}
	return rects, nil
}

// Save truncates and rewrites the file in place. A crash mid-write can lose
// the previous contents.
func (s *Store) Save(rects []Rectangle) error {
	if rects == nil {
		rects = []Rectangle{}
	}
	data, err := json.MarshalIndent(rects, "", "  ")
	if err != nil {
		return &WriteError{Path: s.path, Err: fmt.Errorf("json marshal: %w", err)}
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return &WriteError{Path: s.path, Err: fmt.Errorf("mkdir %s: %w", dir, err)}
		}
	}
	if err := os.WriteFile(s.path, append(data, '\n'), 0o644); err != nil {
		return &WriteError{Path: s.path, Err: err}
	}
	return nil
}
