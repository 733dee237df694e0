package board

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"pinboard/internal/geom"
	"pinboard/internal/note"
)

func testBoard(notes ...note.Note) *Board {
	b := New(1, 1)
	for _, n := range notes {
		if n.CanvasID == 0 {
			n.CanvasID = 1
		}
		if n.TabID == 0 {
			n.TabID = 1
		}
		b.Put(n)
	}
	return b
}

func TestRegistry(t *testing.T) {
	b := testBoard(
		note.Note{ID: "a", Text: "one", X: 0, Y: 0},
		note.Note{ID: "b", Text: "two", X: 100, Y: 100},
	)
	assert.Equal(t, 2, b.Len())
	assert.Equal(t, "one", b.Get("a").Text)
	assert.Nil(t, b.Get("missing"))

	b.Remove("a")
	assert.Equal(t, 1, b.Len())
	assert.Nil(t, b.Get("a"))
}

func TestVisibleFiltersByTab(t *testing.T) {
	b := New(1, 1)
	b.Put(note.Note{ID: "a", CanvasID: 1, TabID: 1, Text: "here"})
	b.Put(note.Note{ID: "b", CanvasID: 1, TabID: 2, Text: "other tab"})
	b.Put(note.Note{ID: "c", CanvasID: 1, TabID: 0, Text: "pre-tabs"})

	ids := []string{}
	for _, n := range b.Visible() {
		ids = append(ids, n.ID)
	}
	assert.Equal(t, []string{"a", "c"}, ids)
}

func TestNoteAt(t *testing.T) {
	b := testBoard(
		note.Note{ID: "a", Text: "hello", X: 40, Y: 40},
	)
	assert.Equal(t, "a", b.NoteAt(41, 41).ID)
	// width covers the label, one row tall
	assert.Equal(t, "a", b.NoteAt(40+5*geom.PxPerCol-1, 59).ID)
	assert.Nil(t, b.NoteAt(40, 60))
	assert.Nil(t, b.NoteAt(39, 40))
}

func TestLabel(t *testing.T) {
	assert.Equal(t, "hello", Label(&note.Note{Text: "hello"}))
	assert.Equal(t, "☐ buy milk", Label(&note.Note{Text: "[] buy milk"}))
	assert.Equal(t, "☑ buy milk", Label(&note.Note{Text: "[x] buy milk"}))
	assert.Equal(t, "docs", Label(&note.Note{Text: "[docs](https://example.com)"}))
	assert.Equal(t, "[img] https://e.com/a.png", Label(&note.Note{Text: "![a](https://e.com/a.png)"}))
}

func TestMaxExtent(t *testing.T) {
	b := testBoard(
		note.Note{ID: "a", Text: "x", X: 40, Y: 40},
		note.Note{ID: "b", Text: "x", X: 200, Y: 500},
	)
	right, bottom := b.MaxExtent()
	assert.Equal(t, 200+2*geom.PxPerCol, right)
	assert.Equal(t, 500+geom.PxPerRow, bottom)
}
