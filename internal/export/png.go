// Package export renders a canvas to a PNG image.
package export

import (
	"bytes"
	"fmt"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"

	"pinboard/internal/entity"
	"pinboard/internal/note"
)

const (
	charWidth  = 8.0
	lineHeight = 16.0
	padding    = 24.0
	boxPadX    = 6.0
	boxPadY    = 4.0
)

// RenderPNG draws every note as a bordered box at its world position,
// scaled 1:1 pixels, and returns the encoded image.
func RenderPNG(notes []entity.Note) ([]byte, error) {
	if len(notes) == 0 {
		return nil, fmt.Errorf("nothing to export")
	}

	minX, minY := notes[0].X, notes[0].Y
	maxX, maxY := notes[0].X, notes[0].Y
	for _, n := range notes {
		label := noteLabel(n)
		right := n.X + int(float64(len([]rune(label)))*charWidth) + int(2*boxPadX)
		bottom := n.Y + int(lineHeight+2*boxPadY)
		if n.X < minX {
			minX = n.X
		}
		if n.Y < minY {
			minY = n.Y
		}
		if right > maxX {
			maxX = right
		}
		if bottom > maxY {
			maxY = bottom
		}
	}

	width := maxX - minX + int(2*padding)
	height := maxY - minY + int(2*padding)

	dc := gg.NewContext(width, height)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	f, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return nil, err
	}
	face := truetype.NewFace(f, &truetype.Options{
		Size:    12,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	dc.SetFontFace(face)

	for _, n := range notes {
		drawNote(dc, n, float64(n.X-minX)+padding, float64(n.Y-minY)+padding)
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func noteLabel(n entity.Note) string {
	c := note.Classify(n.Text)
	switch {
	case c.Kind == note.KindImage:
		return "[img] " + c.URL
	case c.Checkbox && c.Checked:
		return "[x] " + c.Display
	case c.Checkbox:
		return "[ ] " + c.Display
	}
	return c.Display
}

func drawNote(dc *gg.Context, n entity.Note, x, y float64) {
	label := noteLabel(n)
	c := note.Classify(n.Text)

	w := float64(len([]rune(label)))*charWidth + 2*boxPadX
	h := lineHeight + 2*boxPadY

	dc.SetRGB(0.85, 0.85, 0.85)
	dc.DrawRectangle(x, y, w, h)
	dc.Stroke()

	dc.SetRGB(0, 0, 0)
	tx := x + boxPadX
	ty := y + boxPadY + lineHeight*0.75
	dc.DrawString(label, tx, ty)
	if c.Header {
		// cheap bold for headers
		dc.DrawString(label, tx+0.5, ty)
	}
	if c.Kind == note.KindStrikethrough {
		dc.DrawLine(tx, y+h/2, tx+float64(len([]rune(label)))*charWidth, y+h/2)
		dc.Stroke()
	}
}
