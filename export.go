package main

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"os"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
)

var (
	errNothingToExport = errors.New("nothing to export")
	errExportTooLarge  = errors.New("drawing too large to export as PNG")
)

// Pixels per canvas unit in PNG exports.
const (
	charWidth  = 8.0
	charHeight = 16.0

	// Keeps the RGBA buffer gg allocates around 256MB.
	maxExportPixels = 64 << 20
)

var pngTagColors = map[Tag]color.RGBA{
	TagNormal:   {0x30, 0x30, 0x30, 0xff},
	TagHovered:  {0x1e, 0x88, 0xe5, 0xff},
	TagSelected: {0xe5, 0x39, 0x35, 0xff},
	TagPreview:  {0x43, 0xa0, 0x47, 0xff},
	TagCursor:   {0x00, 0x00, 0x00, 0xff},
}

// ExportPNG renders the current projection to an image sized to fit every
// rectangle, the gesture preview and the cursor, with a small margin.
func ExportPNG(filename string, s *State) error {
	anchor, drawing := s.Drawing()
	if len(s.Rects) == 0 && !drawing {
		return errNothingToExport
	}

	minX, minY := s.Cursor.X, s.Cursor.Y
	maxX, maxY := s.Cursor.X+1, s.Cursor.Y+1
	extend := func(r Rectangle) {
		minX, minY = math.Min(minX, r.X), math.Min(minY, r.Y)
		maxX, maxY = math.Max(maxX, r.X+r.Width+1), math.Max(maxY, r.Y+r.Height+1)
	}
	for _, r := range s.Rects {
		extend(r)
	}
	if drawing {
		extend(NormalizedRect(anchor, s.Cursor))
	}

	padding := 2.0
	minX -= padding
	minY -= padding
	maxX += padding
	maxY += padding

	w := math.Ceil((maxX - minX) * charWidth)
	h := math.Ceil((maxY - minY) * charHeight)
	if math.IsInf(w, 0) || math.IsInf(h, 0) || math.IsNaN(w*h) || w*h > maxExportPixels {
		return fmt.Errorf("%w: %.0fx%.0f px", errExportTooLarge, w, h)
	}
	imageWidth, imageHeight := int(w), int(h)

	dc := gg.NewContext(imageWidth, imageHeight)
	dc.SetColor(color.White)
	dc.Clear()

	ttfFont, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return fmt.Errorf("failed to parse font: %w", err)
	}
	face := truetype.NewFace(ttfFont, &truetype.Options{
		Size:    14,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	dc.SetFontFace(face)

	for _, p := range Project(s) {
		dc.SetColor(pngTagColors[p.Tag])
		if len(p.Strips) == 0 {
			px := (p.Rect.X - minX) * charWidth
			py := (p.Rect.Y - minY) * charHeight
			dc.DrawStringAnchored(string(p.Glyph), px, py, 0, 0.8)
			continue
		}
		for _, strip := range p.Strips {
			drawStripPNG(dc, strip, minX, minY)
		}
	}

	return dc.SavePNG(filename)
}

// drawStripPNG fills one border strip, widening it to at least a pixel and a
// half so thin edges stay visible.
func drawStripPNG(dc *gg.Context, strip Strip, minX, minY float64) {
	x := (strip.Rect.X - minX) * charWidth
	y := (strip.Rect.Y - minY) * charHeight
	w := math.Max(strip.Rect.Width*charWidth, 1.5)
	h := math.Max(strip.Rect.Height*charHeight, 1.5)
	dc.DrawRectangle(x, y, w, h)
	dc.Fill()
}

// ExportText writes the canvas exactly as it appears in a width x height
// viewport, without styling.
func ExportText(filename string, s *State, width, height int) error {
	if width < 1 {
		width = 80
	}
	if height < 1 {
		height = 24
	}

	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	canvas := NewCanvas(width, height)
	canvas.Paint(Project(s))
	for _, line := range canvas.Lines() {
		if _, err := fmt.Fprintln(file, line); err != nil {
			return err
		}
	}
	return nil
}
