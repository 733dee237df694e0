package ui

import (
	"fmt"
	"os"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"pinboard/internal/board"
	"pinboard/internal/geom"
	"pinboard/internal/note"
)

// copySelection writes the selected notes to the system clipboard as plain
// lines, and keeps full snapshots internally so a same-session paste can
// reproduce the layout.
func (m *Model) copySelection() tea.Cmd {
	sel := m.b.Selected()
	if len(sel) == 0 {
		return nil
	}
	sort.Slice(sel, func(i, j int) bool {
		if sel[i].Y != sel[j].Y {
			return sel[i].Y < sel[j].Y
		}
		return sel[i].X < sel[j].X
	})

	lines := make([]string, 0, len(sel))
	snaps := make([]note.Note, 0, len(sel))
	for _, n := range sel {
		lines = append(lines, n.Text)
		snaps = append(snaps, *n)
	}
	text := strings.Join(lines, "\n")
	if err := writeClipboardText(text); err != nil {
		m.log.Warn("clipboard write failed", zap.Error(err))
	}
	m.clipText = text
	m.clipNotes = snaps
	return m.showToast(fmt.Sprintf("Copied %d", len(sel)))
}

func (m *Model) cutSelection() tea.Cmd {
	if m.b.SelectionCount() == 0 {
		return nil
	}
	copyCmd := m.copySelection()
	return tea.Batch(copyCmd, m.deleteSelection())
}

// pasteToCanvas resolves the clipboard in order of specificity: our own
// copied notes with layout intact, an image file path that gets uploaded,
// then arbitrary text split into one note per line.
func (m *Model) pasteToCanvas() tea.Cmd {
	text, err := readClipboardText()
	if err != nil {
		m.log.Warn("clipboard read failed", zap.Error(err))
		return m.showToast("Paste failed")
	}

	g := m.grid()
	px := geom.Snap(m.lastMouseX, g)
	py := geom.Snap(m.lastMouseY, g)

	if text == m.clipText && len(m.clipNotes) > 0 {
		return m.pasteSnapshots(px, py)
	}
	if path, ok := imagePath(text); ok {
		return m.uploadImageCmd(path, px, py)
	}

	lines := splitPasteLines(cleanClipboardText(text))
	switch len(lines) {
	case 0:
		return nil
	case 1:
		return m.createSavedNote(lines[0], px, py)
	}

	cmds := make([]tea.Cmd, 0, len(lines))
	for i, line := range lines {
		cmds = append(cmds, m.createSavedNote(line, px, py+i*2*g))
	}
	return tea.Batch(cmds...)
}

// pasteSnapshots clones the copied notes with fresh ids, anchored so the
// group's top-left corner lands at the paste position.
func (m *Model) pasteSnapshots(px, py int) tea.Cmd {
	minX, minY := m.clipNotes[0].X, m.clipNotes[0].Y
	for _, n := range m.clipNotes[1:] {
		if n.X < minX {
			minX = n.X
		}
		if n.Y < minY {
			minY = n.Y
		}
	}

	g := m.grid()
	saves := make([]note.Note, 0, len(m.clipNotes))
	for _, src := range m.clipNotes {
		n := m.b.Put(note.Note{
			ID:       note.NewID(),
			CanvasID: m.canvas.ID,
			TabID:    m.currentTabID(),
			Text:     src.Text,
			X:        geom.Snap(px+src.X-minX, g),
			Y:        geom.Snap(py+src.Y-minY, g),
		})
		m.hist.Record(&board.Create{Note: board.NoteSnapshot{ID: n.ID, Text: n.Text, X: n.X, Y: n.Y}})
		saves = append(saves, *n)
	}
	m.clampPan()
	return m.saveNotesCmd(saves)
}

func (m *Model) pasteWhileEditing() tea.Cmd {
	text, err := readClipboardText()
	if err != nil {
		return nil
	}
	return m.pasteLinesWhileEditing(splitPasteLines(cleanClipboardText(text)))
}

// pasteLinesWhileEditing applies a paste to the note being edited. A single
// line inserts at the cursor; a multi-line paste replaces the buffer with
// the first line and stacks the rest as notes below.
func (m *Model) pasteLinesWhileEditing(lines []string) tea.Cmd {
	switch len(lines) {
	case 0:
		return nil
	case 1:
		m.insertRunes([]rune(lines[0]))
		return nil
	}

	m.editBuf = []rune(lines[0])
	m.editCursor = len(m.editBuf)

	n := m.b.Get(m.editID)
	if n == nil {
		return nil
	}
	g := m.grid()
	cmds := make([]tea.Cmd, 0, len(lines)-1)
	for i, line := range lines[1:] {
		cmds = append(cmds, m.createSavedNote(line, n.X, n.Y+(i+1)*2*g))
	}
	return tea.Batch(cmds...)
}

// imagePath reports whether the clipboard holds a path to a local image
// file.
func imagePath(text string) (string, bool) {
	path := strings.TrimSpace(text)
	if strings.ContainsAny(path, "\n\r") {
		return "", false
	}
	lower := strings.ToLower(path)
	ok := false
	for _, ext := range []string{".png", ".jpg", ".jpeg", ".gif", ".webp"} {
		if strings.HasSuffix(lower, ext) {
			ok = true
			break
		}
	}
	if !ok {
		return "", false
	}
	if info, err := os.Stat(path); err != nil || info.IsDir() {
		return "", false
	}
	return path, true
}
