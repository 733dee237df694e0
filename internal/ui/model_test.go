package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"pinboard/internal/apiclient"
	"pinboard/internal/config"
	"pinboard/internal/geom"
	"pinboard/internal/note"
	"pinboard/internal/state"
)

// newTestModel builds a model with one canvas and one tab already loaded.
// Commands returned by handlers are never executed, so no server is needed.
func newTestModel(t *testing.T) *Model {
	t.Helper()
	prefs, err := state.Open(t.TempDir())
	require.NoError(t, err)

	canvas := apiclient.Canvas{ID: 1, Name: "test"}
	m := New(config.ClientConfig{}, apiclient.New("http://127.0.0.1:1"), zap.NewNop(), prefs, canvas)
	m.Update(canvasLoadedMsg{
		canvas: canvas,
		tabs:   []apiclient.Tab{{ID: 1, CanvasID: 1, Name: "default"}},
	})
	m.width, m.height = 80, 24
	return m
}

func press(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func release(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}
}

func typeText(m *Model, text string) {
	for _, r := range text {
		m.handleEditKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func TestWorldCellRoundTrip(t *testing.T) {
	m := newTestModel(t)
	m.panX, m.panY = 40, 80
	for _, c := range []struct{ x, y int }{{0, 1}, {5, 3}, {79, 22}} {
		wx, wy := m.world(c.x, c.y)
		cx, cy := m.cell(wx, wy)
		assert.Equal(t, c.x, cx)
		assert.Equal(t, c.y, cy)
	}
}

func TestClickOnEmptyCanvasOpensEditor(t *testing.T) {
	m := newTestModel(t)
	m.handleMouse(press(12, 5))
	m.handleMouse(release(12, 5))

	assert.Equal(t, ModeEditing, m.mode)
	require.Equal(t, 1, m.b.Len())
	n := m.b.Notes()[0]
	assert.Zero(t, n.X%geom.Grid)
	assert.Zero(t, n.Y%geom.Grid)
	assert.True(t, m.hist.CanUndo())
}

func TestAbandonedEmptyNoteLeavesNoTrace(t *testing.T) {
	m := newTestModel(t)
	m.handleMouse(press(12, 5))
	m.handleMouse(release(12, 5))
	m.handleEditKey(tea.KeyMsg{Type: tea.KeyEsc})

	assert.Equal(t, ModeCanvas, m.mode)
	assert.Equal(t, 0, m.b.Len())
	assert.False(t, m.hist.CanUndo(), "nothing to undo after abandoning an empty note")
}

func TestEditSaveKeepsTextAndSelects(t *testing.T) {
	m := newTestModel(t)
	m.handleMouse(press(12, 5))
	m.handleMouse(release(12, 5))
	typeText(m, "hello")
	m.handleEditKey(tea.KeyMsg{Type: tea.KeyEsc})

	require.Equal(t, 1, m.b.Len())
	n := m.b.Notes()[0]
	assert.Equal(t, "hello", n.Text)
	assert.True(t, m.b.IsSelected(n.ID))
}

func TestEditCursorMovement(t *testing.T) {
	m := newTestModel(t)
	m.createEditingNote(0, 0, "")
	typeText(m, "abc")
	m.handleEditKey(tea.KeyMsg{Type: tea.KeyLeft})
	m.handleEditKey(tea.KeyMsg{Type: tea.KeyLeft})
	typeText(m, "X")
	assert.Equal(t, "aXbc", string(m.editBuf))

	m.handleEditKey(tea.KeyMsg{Type: tea.KeyBackspace})
	assert.Equal(t, "abc", string(m.editBuf))
}

func TestEnterContinuesList(t *testing.T) {
	m := newTestModel(t)
	m.createEditingNote(100, 100, "")
	typeText(m, "1. first")
	m.handleEditKey(tea.KeyMsg{Type: tea.KeyEnter})

	require.Equal(t, ModeEditing, m.mode)
	require.Equal(t, 2, m.b.Len())
	n := m.b.Get(m.editID)
	require.NotNil(t, n)
	assert.Equal(t, "2. ", n.Text)
	assert.Equal(t, 100, n.X)
	assert.Equal(t, 100+2*geom.Grid, n.Y)
}

func TestEnterOnPlainNoteJustSaves(t *testing.T) {
	m := newTestModel(t)
	m.createEditingNote(0, 0, "")
	typeText(m, "just a note")
	m.handleEditKey(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, ModeCanvas, m.mode)
	assert.Equal(t, 1, m.b.Len())
}

func TestCommandClickInsertShiftsRun(t *testing.T) {
	m := newTestModel(t)
	m.b.Put(note.Note{ID: "a", CanvasID: 1, TabID: 1, Text: "• one", X: 100, Y: 100})
	m.b.Put(note.Note{ID: "b", CanvasID: 1, TabID: 1, Text: "• two", X: 100, Y: 140})
	m.b.Put(note.Note{ID: "far", CanvasID: 1, TabID: 1, Text: "far", X: 400, Y: 100})

	m.commandClickInsert(m.b.Get("b"))

	assert.Equal(t, ModeEditing, m.mode)
	inserted := m.b.Get(m.editID)
	require.NotNil(t, inserted)
	assert.Equal(t, "• ", inserted.Text)
	assert.Equal(t, 140, inserted.Y)
	assert.Equal(t, 140+2*geom.Grid, m.b.Get("b").Y, "clicked note shifted down")
	assert.Equal(t, 100, m.b.Get("a").Y, "note above untouched")
	assert.Equal(t, 100, m.b.Get("far").Y, "distant column untouched")
}

func TestEscapeCancelsFreshInsertion(t *testing.T) {
	m := newTestModel(t)
	m.b.Put(note.Note{ID: "a", CanvasID: 1, TabID: 1, Text: "• one", X: 100, Y: 100})
	m.commandClickInsert(m.b.Get("a"))

	// typed nothing beyond the seed, so Escape reverts the shift too
	m.editBuf = nil
	m.handleEditKey(tea.KeyMsg{Type: tea.KeyEsc})

	assert.Equal(t, 1, m.b.Len())
	assert.Equal(t, 100, m.b.Get("a").Y)
	assert.False(t, m.hist.CanUndo())
}

func TestUndoRedoMove(t *testing.T) {
	m := newTestModel(t)
	n := m.b.Put(note.Note{ID: "n1", CanvasID: 1, TabID: 1, Text: "x", X: 0, Y: 0})
	m.b.Select(n.ID)
	m.b.Select(n.ID) // idempotent

	// drag via mouse: press on the note, move past the threshold, release
	cx, cy := m.cell(n.X, n.Y)
	m.handleMouse(press(cx, cy))
	m.handleMouse(tea.MouseMsg{X: cx + 8, Y: cy + 4, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})
	m.downTime = m.downTime.Add(-clickMaxDuration) // not a short-drag click
	m.handleMouse(release(cx + 8, cy + 4))

	require.True(t, m.hist.CanUndo())
	movedX, movedY := m.b.Get("n1").X, m.b.Get("n1").Y
	require.NotEqual(t, 0, movedY)

	m.doUndo()
	assert.Equal(t, 0, m.b.Get("n1").X)
	assert.Equal(t, 0, m.b.Get("n1").Y)

	m.histBusy = false
	m.doRedo()
	assert.Equal(t, movedX, m.b.Get("n1").X)
	assert.Equal(t, movedY, m.b.Get("n1").Y)
}

func TestHistBusyBlocksUndo(t *testing.T) {
	m := newTestModel(t)
	m.b.Put(note.Note{ID: "n1", CanvasID: 1, TabID: 1, Text: "x", X: 20, Y: 20})
	m.b.Select("n1")
	m.deleteSelection()

	m.histBusy = true
	assert.Nil(t, m.doUndo())
}

func TestBoxSelectSweep(t *testing.T) {
	m := newTestModel(t)
	m.b.Put(note.Note{ID: "in", CanvasID: 1, TabID: 1, Text: "x", X: 40, Y: 40})
	m.b.Put(note.Note{ID: "out", CanvasID: 1, TabID: 1, Text: "x", X: 600, Y: 400})

	m.handleMouse(press(0, 1))
	m.handleMouse(tea.MouseMsg{X: 10, Y: 5, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})
	m.handleMouse(release(10, 5))

	assert.True(t, m.b.IsSelected("in"))
	assert.False(t, m.b.IsSelected("out"))
	assert.Equal(t, ModeCanvas, m.mode)
}

func TestTabBarHitTesting(t *testing.T) {
	m := newTestModel(t)
	m.tabs = []apiclient.Tab{
		{ID: 1, Name: "one"},
		{ID: 2, Name: "two"},
	}
	assert.Equal(t, 0, m.tabAtCell(0))
	assert.Equal(t, 0, m.tabAtCell(4))
	assert.Equal(t, -1, m.tabAtCell(5)) // separator
	assert.Equal(t, 1, m.tabAtCell(6))
	assert.Equal(t, -1, m.tabAtCell(40))
}

func TestShiftClickTogglesMembership(t *testing.T) {
	m := newTestModel(t)
	m.b.Put(note.Note{ID: "a", CanvasID: 1, TabID: 1, Text: "a", X: 40, Y: 40})
	m.b.Put(note.Note{ID: "b", CanvasID: 1, TabID: 1, Text: "b", X: 40, Y: 120})
	m.b.Select("a")

	shiftClick := func(id string) {
		n := m.b.Get(id)
		cx, cy := m.cell(n.X, n.Y)
		msg := press(cx, cy)
		msg.Shift = true
		m.handleMouse(msg)
		m.handleMouse(release(cx, cy))
	}

	shiftClick("b")
	assert.True(t, m.b.IsSelected("b"), "shift-click adds an unselected note")
	assert.True(t, m.b.IsSelected("a"), "existing selection kept")

	shiftClick("b")
	assert.False(t, m.b.IsSelected("b"), "second shift-click removes it")
	assert.True(t, m.b.IsSelected("a"))
}

func TestMultiLinePasteWhileEditingReplacesBuffer(t *testing.T) {
	m := newTestModel(t)
	m.createEditingNote(100, 100, "")
	typeText(m, "existing text")

	m.pasteLinesWhileEditing([]string{"first", "second", "third"})

	assert.Equal(t, "first", string(m.editBuf), "buffer replaced, not appended")
	assert.Equal(t, len("first"), m.editCursor)
	require.Equal(t, 3, m.b.Len())
	edited := m.b.Get(m.editID)
	assert.Equal(t, 100, edited.Y)
	var ys []int
	for _, n := range m.b.Notes() {
		if n.ID != m.editID {
			ys = append(ys, n.Y)
		}
	}
	assert.ElementsMatch(t, []int{100 + 2*geom.Grid, 100 + 4*geom.Grid}, ys)
}

func TestSingleLinePasteWhileEditingInsertsAtCursor(t *testing.T) {
	m := newTestModel(t)
	m.createEditingNote(0, 0, "")
	typeText(m, "ac")
	m.handleEditKey(tea.KeyMsg{Type: tea.KeyLeft})

	m.pasteLinesWhileEditing([]string{"b"})

	assert.Equal(t, "abc", string(m.editBuf))
	assert.Equal(t, 1, m.b.Len())
}

func TestPasteSnapshotsPreserveLayout(t *testing.T) {
	m := newTestModel(t)
	m.clipText = "a\nb"
	m.clipNotes = []note.Note{
		{ID: "a", Text: "a", X: 100, Y: 100},
		{ID: "b", Text: "b", X: 160, Y: 180},
	}
	m.pasteSnapshots(400, 200)

	require.Equal(t, 2, m.b.Len())
	notes := m.b.Notes()
	var pa, pb *note.Note
	for _, n := range notes {
		if n.Text == "a" {
			pa = n
		} else {
			pb = n
		}
	}
	require.NotNil(t, pa)
	require.NotNil(t, pb)
	assert.Equal(t, 60, pb.X-pa.X, "relative offsets preserved")
	assert.Equal(t, 80, pb.Y-pa.Y)
	assert.NotEqual(t, "a", pa.ID, "pasted notes get fresh ids")
}

func TestViewRendersWithoutPanic(t *testing.T) {
	m := newTestModel(t)
	m.b.Put(note.Note{ID: "n1", CanvasID: 1, TabID: 1, Text: "# header", X: 40, Y: 40})
	m.b.Put(note.Note{ID: "n2", CanvasID: 1, TabID: 1, Text: "[x] done", X: 40, Y: 80})
	out := m.View()
	assert.Contains(t, out, "header")
	assert.Contains(t, out, "☑ done")
}
