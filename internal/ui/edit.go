package ui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"pinboard/internal/board"
	"pinboard/internal/note"
)

// openEditor puts a note into the editing state. Editing and selection are
// mutually exclusive visual states.
func (m *Model) openEditor(n *note.Note) {
	m.b.ClearSelection()
	m.editID = n.ID
	m.editBuf = []rune(n.Text)
	m.editCursor = len(m.editBuf)
	m.mode = ModeEditing
}

// createEditingNote makes a fresh note at a snapped position, opens it for
// editing immediately, and records the creation.
func (m *Model) createEditingNote(x, y int, seed string) tea.Cmd {
	n := m.b.Put(note.Note{
		ID:       note.NewID(),
		CanvasID: m.canvas.ID,
		TabID:    m.currentTabID(),
		Text:     seed,
		X:        x,
		Y:        y,
	})
	m.hist.Record(&board.Create{Note: board.NoteSnapshot{ID: n.ID, Text: seed, X: x, Y: y}})
	m.openEditor(n)
	return nil
}

// createSavedNote makes a note with final content, skipping the editor.
// Used by paste and image upload.
func (m *Model) createSavedNote(text string, x, y int) tea.Cmd {
	n := m.b.Put(note.Note{
		ID:       note.NewID(),
		CanvasID: m.canvas.ID,
		TabID:    m.currentTabID(),
		Text:     text,
		X:        x,
		Y:        y,
	})
	m.hist.Record(&board.Create{Note: board.NoteSnapshot{ID: n.ID, Text: text, X: x, Y: y}})
	m.clampPan()
	return m.saveNoteCmd(*n)
}

// saveEdit leaves editing mode. Meaningless content deletes the note
// instead of saving; otherwise the text is stored, persisted, and patched
// into any pending history record.
func (m *Model) saveEdit() tea.Cmd {
	n := m.b.Get(m.editID)
	id := m.editID
	m.editID = ""
	m.mode = ModeCanvas
	if n == nil {
		return nil
	}

	text := strings.TrimSpace(string(m.editBuf))
	if note.IsMeaningless(text) {
		m.b.Remove(id)
		m.hist.DropCreate(id)
		return m.deleteNoteCmd(id)
	}

	n.Text = text
	m.hist.PatchContent(id, text)
	m.b.Select(id)
	return m.saveNoteCmd(*n)
}

func (m *Model) handleEditKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return m, m.handleEditEscape()
	case "enter":
		return m, m.handleEditEnter()
	case "tab":
		return m, m.nudgeWhileEditing(m.grid(), 0)
	case "shift+tab":
		return m, m.nudgeWhileEditing(-m.grid(), 0)
	case "ctrl+up", "ctrl+shift+up":
		return m, m.nudgeWhileEditing(0, -m.editStep(msg.String()))
	case "ctrl+down", "ctrl+shift+down":
		return m, m.nudgeWhileEditing(0, m.editStep(msg.String()))
	case "ctrl+left", "ctrl+shift+left":
		return m, m.nudgeWhileEditing(-m.editStep(msg.String()), 0)
	case "ctrl+right", "ctrl+shift+right":
		return m, m.nudgeWhileEditing(m.editStep(msg.String()), 0)
	case "ctrl+backspace", "ctrl+h":
		return m, m.deleteWhileEditing()
	case "ctrl+v":
		return m, m.pasteWhileEditing()
	case "left":
		if m.editCursor > 0 {
			m.editCursor--
		}
		return m, nil
	case "right":
		if m.editCursor < len(m.editBuf) {
			m.editCursor++
		}
		return m, nil
	case "home", "ctrl+a":
		m.editCursor = 0
		return m, nil
	case "end", "ctrl+e":
		m.editCursor = len(m.editBuf)
		return m, nil
	case "backspace":
		if m.editCursor > 0 {
			m.editBuf = append(m.editBuf[:m.editCursor-1], m.editBuf[m.editCursor:]...)
			m.editCursor--
		}
		return m, nil
	case "delete":
		if m.editCursor < len(m.editBuf) {
			m.editBuf = append(m.editBuf[:m.editCursor], m.editBuf[m.editCursor+1:]...)
		}
		return m, nil
	}

	switch msg.Type {
	case tea.KeySpace:
		m.insertRunes([]rune{' '})
	case tea.KeyRunes:
		m.insertRunes(msg.Runes)
	}
	return m, nil
}

func (m *Model) editStep(keyString string) int {
	if hasMod(keyString, "shift") {
		return 5 * m.grid()
	}
	return m.grid()
}

func (m *Model) insertRunes(rs []rune) {
	buf := make([]rune, 0, len(m.editBuf)+len(rs))
	buf = append(buf, m.editBuf[:m.editCursor]...)
	buf = append(buf, rs...)
	buf = append(buf, m.editBuf[m.editCursor:]...)
	m.editBuf = buf
	m.editCursor += len(rs)
}

// handleEditEscape saves and reselects, with the command-click cancel
// special case: Escape shortly after a list insertion whose note stayed
// empty reverts the whole insertion.
func (m *Model) handleEditEscape() tea.Cmd {
	id := m.editID
	text := strings.TrimSpace(string(m.editBuf))
	cancelInsert := id != "" && id == m.insertID &&
		note.IsMeaningless(text) &&
		time.Since(m.insertAt) < insertUndoWindow

	cmd := m.saveEdit()
	if !cancelInsert {
		return cmd
	}

	m.insertID = ""
	p := &pendingPersister{}
	if !m.hist.UndoInsertion(m.b, p, id) {
		return cmd
	}
	return tea.Batch(cmd, m.flushHistoryCmd(p))
}

// handleEditEnter saves and, for list notes, continues the list: a new
// note two grid rows below seeded with the next bullet. If a note already
// sits at the target, it opens for editing instead.
func (m *Model) handleEditEnter() tea.Cmd {
	id := m.editID
	cmd := m.saveEdit()

	n := m.b.Get(id)
	if n == nil {
		return cmd
	}
	c := note.Classify(n.Text)
	if !c.List {
		return cmd
	}

	targetY := n.Y + 2*m.grid()
	if existing := m.b.NoteAt(n.X, targetY); existing != nil {
		m.openEditor(existing)
		return cmd
	}
	return tea.Batch(cmd, m.createEditingNote(n.X, targetY, note.NextBullet(c.Bullet)))
}

func (m *Model) nudgeWhileEditing(dx, dy int) tea.Cmd {
	n := m.b.Get(m.editID)
	if n == nil {
		return nil
	}
	n.X += dx
	n.Y += dy
	m.clampPan()
	return m.saveNoteCmd(*n)
}

func (m *Model) deleteWhileEditing() tea.Cmd {
	id := m.editID
	n := m.b.Get(id)
	m.editID = ""
	m.mode = ModeCanvas
	if n == nil {
		return nil
	}
	m.hist.Record(&board.Delete{Note: board.NoteSnapshot{ID: id, Text: n.Text, X: n.X, Y: n.Y}})
	m.b.Remove(id)
	return m.deleteNoteCmd(id)
}

// commandClickInsert shifts the vertical run of notes at the clicked
// note's column down one list step and opens a fresh note in the vacated
// slot. The whole operation is one undoable unit, and Escape can cancel it
// for a short while.
func (m *Model) commandClickInsert(target *note.Note) tea.Cmd {
	g := m.grid()
	step := 2 * g

	var shifted []board.ShiftedNote
	var saves []note.Note
	for _, n := range m.b.Visible() {
		if abs(n.X-target.X) <= g && n.Y >= target.Y {
			shifted = append(shifted, board.ShiftedNote{ID: n.ID, OldY: n.Y, NewY: n.Y + step})
		}
	}

	seed := ""
	if c := note.Classify(target.Text); c.List {
		seed = note.NextBullet(c.Bullet)
	}

	newNote := note.Note{
		ID:       note.NewID(),
		CanvasID: m.canvas.ID,
		TabID:    m.currentTabID(),
		Text:     seed,
		X:        target.X,
		Y:        target.Y,
	}
	m.hist.Record(&board.ListInsert{
		Note:    board.NoteSnapshot{ID: newNote.ID, Text: seed, X: newNote.X, Y: newNote.Y},
		Shifted: shifted,
	})

	for _, sh := range shifted {
		if n := m.b.Get(sh.ID); n != nil {
			n.Y = sh.NewY
			saves = append(saves, *n)
		}
	}
	inserted := m.b.Put(newNote)
	m.openEditor(inserted)
	m.insertID = inserted.ID
	m.insertAt = time.Now()
	m.clampPan()
	return m.saveNotesCmd(saves)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
