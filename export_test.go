package main

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestExportPNG_Empty(t *testing.T) {
	err := ExportPNG(filepath.Join(t.TempDir(), "out.png"), NewState(nil))
	if !errors.Is(err, errNothingToExport) {
		t.Fatalf("err: got %v, want errNothingToExport", err)
	}
}

func decodePNG(t *testing.T, path string) image.Image {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	return img
}

func isWhite(c color.Color) bool {
	r, g, b, _ := c.RGBA()
	return r == 0xffff && g == 0xffff && b == 0xffff
}

func TestExportPNG_SizedToContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.png")
	s := NewState([]Rectangle{{X: 0, Y: 0, Width: 10, Height: 4}})

	if err := ExportPNG(path, s); err != nil {
		t.Fatalf("export: %v", err)
	}

	img := decodePNG(t, path)
	// 10+1 units wide plus 2 units of padding per side, 8x16 px per unit.
	if b := img.Bounds(); b.Dx() != 15*8 || b.Dy() != 9*16 {
		t.Fatalf("size: got %dx%d, want %dx%d", b.Dx(), b.Dy(), 15*8, 9*16)
	}
}

func TestExportPNG_WhileDrawingWithNoRects(t *testing.T) {
	s := NewState(nil)
	s.Apply(Command{Kind: CmdBeginDraw, Dir: DirRight})
	if err := ExportPNG(filepath.Join(t.TempDir(), "out.png"), s); err != nil {
		t.Fatalf("export preview: %v", err)
	}
}

func TestExportPNG_IncludesGestureAnchor(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.png")
	s := NewState(nil)
	s.Cursor = Point{40, 20}
	for i := 0; i < 10; i++ {
		s.Apply(Command{Kind: CmdBeginDraw, Dir: DirLeft})
	}
	for i := 0; i < 10; i++ {
		s.Apply(Command{Kind: CmdBeginDraw, Dir: DirUp})
	}
	if s.Cursor != (Point{20, 10}) {
		t.Fatalf("cursor: got %+v, want {20 10}", s.Cursor)
	}

	if err := ExportPNG(path, s); err != nil {
		t.Fatalf("export: %v", err)
	}
	img := decodePNG(t, path)

	// Preview spans x 20..40 and y 10..20, padded to 18..43 and 8..23.
	if b := img.Bounds(); b.Dx() != 25*8 || b.Dy() != 15*16 {
		t.Fatalf("size: got %dx%d, want %dx%d", b.Dx(), b.Dy(), 25*8, 15*16)
	}
	// Right edge of the preview sits at the anchor column.
	if c := img.At((40-18)*8, (15-8)*16); isWhite(c) {
		t.Fatalf("anchor edge not drawn at (%d,%d)", (40-18)*8, (15-8)*16)
	}
}

func TestExportPNG_FarFromOrigin(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.png")
	s := NewState([]Rectangle{{X: 100, Y: 50, Width: 3, Height: 2}})

	if err := ExportPNG(path, s); err != nil {
		t.Fatalf("export: %v", err)
	}
	img := decodePNG(t, path)

	// Cursor at the origin and the rectangle out at (100,50) both fit.
	if b := img.Bounds(); b.Dx() != 108*8 || b.Dy() != 57*16 {
		t.Fatalf("size: got %dx%d, want %dx%d", b.Dx(), b.Dy(), 108*8, 57*16)
	}
	x, y := (100+2)*8+4, (50+2)*16
	if c := img.At(x, y); isWhite(c) {
		t.Fatalf("top edge not drawn at (%d,%d)", x, y)
	}
}

func TestExportPNG_TooLarge(t *testing.T) {
	tests := []struct {
		name string
		rect Rectangle
	}{
		{"huge", Rectangle{Width: 1e6, Height: 1e6}},
		{"wide", Rectangle{X: -1e300, Width: 1e300, Height: 1}},
		{"infinite", Rectangle{Width: math.Inf(1), Height: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "out.png")
			err := ExportPNG(path, NewState([]Rectangle{tt.rect}))
			if !errors.Is(err, errExportTooLarge) {
				t.Fatalf("err: got %v, want errExportTooLarge", err)
			}
			if _, err := os.Stat(path); !os.IsNotExist(err) {
				t.Fatalf("file written despite error: %v", err)
			}
		})
	}
}

func TestExportText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	s := NewState([]Rectangle{{X: 0, Y: 0, Width: 2, Height: 1}})
	s.Cursor = Point{5, 2}

	if err := ExportText(path, s, 6, 3); err != nil {
		t.Fatalf("export: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	want := strings.Join([]string{
		"┌─┐   ",
		"└─┘   ",
		"     █",
	}, "\n") + "\n"
	if string(data) != want {
		t.Fatalf("got:\n%s\nwant:\n%s", data, want)
	}
}

func TestExportText_DefaultSize(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	if err := ExportText(path, NewState(nil), 0, 0); err != nil {
		t.Fatalf("export: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if lines := strings.Count(string(data), "\n"); lines != 24 {
		t.Fatalf("lines: got %d, want 24", lines)
	}
}
