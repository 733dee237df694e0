package board

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"pinboard/internal/geom"
	"pinboard/internal/note"
)

func selectedIDs(b *Board) []string {
	ids := []string{}
	for _, n := range b.Selected() {
		ids = append(ids, n.ID)
	}
	return ids
}

func TestToggle(t *testing.T) {
	b := testBoard(
		note.Note{ID: "a", Text: "x"},
		note.Note{ID: "b", Text: "y", X: 100},
	)

	b.Toggle("a", false)
	assert.Equal(t, []string{"a"}, selectedIDs(b))

	// non-multi replaces
	b.Toggle("b", false)
	assert.Equal(t, []string{"b"}, selectedIDs(b))

	// multi toggles membership
	b.Toggle("a", true)
	assert.Equal(t, []string{"a", "b"}, selectedIDs(b))
	b.Toggle("b", true)
	assert.Equal(t, []string{"a"}, selectedIDs(b))
}

func TestBoxSelection(t *testing.T) {
	b := testBoard(
		note.Note{ID: "a", Text: "x", X: 0, Y: 0},
		note.Note{ID: "b", Text: "y", X: 100, Y: 100},
	)

	// rectangle covering only the first note
	b.SyncBoxSelection(geom.RectAt(0, 0, 50, 50), false)
	assert.Equal(t, []string{"a"}, selectedIDs(b))

	// moving the band off "a" deselects it
	b.SyncBoxSelection(geom.RectAt(90, 90, 50, 50), false)
	assert.Equal(t, []string{"b"}, selectedIDs(b))

	// with a multi modifier the prior selection survives
	b.SyncBoxSelection(geom.RectAt(0, 0, 50, 50), true)
	assert.Equal(t, []string{"a", "b"}, selectedIDs(b))
}

func TestLineSweeps(t *testing.T) {
	b := testBoard(
		note.Note{ID: "a", Text: "x", X: 0, Y: 0},
		note.Note{ID: "b", Text: "y", X: 40, Y: 200},
		note.Note{ID: "c", Text: "z", X: 600, Y: 400},
	)
	view := geom.RectAt(0, 0, 500, 500)

	b.SelectBelowLine(100, view)
	assert.Equal(t, []string{"b"}, selectedIDs(b), "c is outside the horizontal span")

	b.SelectRightOfLine(30, view)
	assert.Equal(t, []string{"b"}, selectedIDs(b))

	b.SelectBelowLine(0, view)
	assert.Equal(t, []string{"a", "b"}, selectedIDs(b))
}

func TestNearestToOrigin(t *testing.T) {
	b := testBoard(
		note.Note{ID: "far", Text: "x", X: 300, Y: 300},
		note.Note{ID: "near", Text: "y", X: 20, Y: 20},
	)
	assert.Equal(t, "near", b.NearestToOrigin().ID)

	empty := New(1, 1)
	assert.Nil(t, empty.NearestToOrigin())
}

func TestNearestInDirection(t *testing.T) {
	b := testBoard(
		note.Note{ID: "mid", Text: "m", X: 200, Y: 200},
		note.Note{ID: "above", Text: "a", X: 200, Y: 100},
		note.Note{ID: "below", Text: "b", X: 200, Y: 300},
		note.Note{ID: "right", Text: "r", X: 400, Y: 200},
		note.Note{ID: "level", Text: "l", X: 600, Y: 200},
	)
	mid := b.Get("mid")

	assert.Equal(t, "above", b.NearestInDirection(mid, DirUp).ID)
	assert.Equal(t, "below", b.NearestInDirection(mid, DirDown).ID)
	assert.Equal(t, "right", b.NearestInDirection(mid, DirRight).ID)
	// nothing strictly left; "level" shares the row so it is not a
	// candidate in any vertical direction
	assert.Nil(t, b.NearestInDirection(mid, DirLeft))
	assert.Equal(t, "above", b.NearestInDirection(b.Get("level"), DirUp).ID)
}
