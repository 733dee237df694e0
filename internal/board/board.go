// Package board is the client-side state of one open canvas: the note
// registry, the selection set, and the undo/redo history. The terminal view
// is a pure projection of this state.
package board

import (
	"sort"

	"pinboard/internal/geom"
	"pinboard/internal/note"
)

// Board is the in-memory registry of notes for the open canvas. It is the
// single source of truth; the view never holds note state of its own.
type Board struct {
	CanvasID uint
	TabID    uint

	notes map[string]*note.Note
	sel   map[string]struct{}
}

func New(canvasID, tabID uint) *Board {
	return &Board{
		CanvasID: canvasID,
		TabID:    tabID,
		notes:    make(map[string]*note.Note),
		sel:      make(map[string]struct{}),
	}
}

// Load replaces the registry contents with rows from the server.
func (b *Board) Load(notes []note.Note) {
	b.notes = make(map[string]*note.Note, len(notes))
	b.sel = make(map[string]struct{})
	for i := range notes {
		n := notes[i]
		b.notes[n.ID] = &n
	}
}

// Put inserts or replaces a note and returns the stored pointer.
func (b *Board) Put(n note.Note) *note.Note {
	stored := n
	b.notes[n.ID] = &stored
	return &stored
}

func (b *Board) Get(id string) *note.Note {
	return b.notes[id]
}

// Remove drops a note from the registry and the selection.
func (b *Board) Remove(id string) {
	delete(b.notes, id)
	delete(b.sel, id)
}

func (b *Board) Len() int { return len(b.notes) }

// Notes returns every note on the canvas, ordered by id for determinism.
func (b *Board) Notes() []*note.Note {
	out := make([]*note.Note, 0, len(b.notes))
	for _, n := range b.notes {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Visible returns the notes on the current tab, ordered by id. Notes with a
// zero tab id predate tabs and show everywhere.
func (b *Board) Visible() []*note.Note {
	out := make([]*note.Note, 0, len(b.notes))
	for _, n := range b.notes {
		if n.TabID == 0 || n.TabID == b.TabID {
			out = append(out, n)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Label is the text a note occupies on screen, marker included. Selection
// and hit testing size notes from it so the view and the model agree.
func Label(n *note.Note) string {
	c := note.Classify(n.Text)
	switch {
	case c.Kind == note.KindImage:
		return "[img] " + c.URL
	case c.Checkbox && c.Checked:
		return "☑ " + c.Display
	case c.Checkbox:
		return "☐ " + c.Display
	}
	return c.Display
}

// NoteRect is the note's bounding box in world pixels.
func (b *Board) NoteRect(n *note.Note) geom.Rect {
	w := len([]rune(Label(n)))
	if w < 2 {
		w = 2
	}
	return geom.RectAt(n.X, n.Y, w*geom.PxPerCol, geom.PxPerRow)
}

// NoteAt returns the topmost visible note whose box contains the point, or
// nil. Later ids win, matching draw order.
func (b *Board) NoteAt(x, y int) *note.Note {
	var hit *note.Note
	for _, n := range b.Visible() {
		if b.NoteRect(n).Contains(x, y) {
			hit = n
		}
	}
	return hit
}

// MaxExtent returns the furthest right/bottom edge across all notes.
func (b *Board) MaxExtent() (int, int) {
	right, bottom := 0, 0
	for _, n := range b.notes {
		r := b.NoteRect(n)
		if r.Right > right {
			right = r.Right
		}
		if r.Bottom > bottom {
			bottom = r.Bottom
		}
	}
	return right, bottom
}
