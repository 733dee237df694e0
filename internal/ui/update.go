package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"pinboard/internal/board"
	"pinboard/internal/note"
)

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.clampPan()
		return m, nil

	case canvasLoadedMsg:
		if msg.err != nil {
			m.loadErr = msg.err
			m.log.Error("canvas load failed", zap.Error(msg.err))
			return m, nil
		}
		m.loadErr = nil
		m.canvas = msg.canvas
		m.tabs = msg.tabs
		m.tabIndex = 0
		m.tabsEnabled = m.prefs.TabsEnabled(msg.canvas.ID)
		m.b = board.New(msg.canvas.ID, m.currentTabID())
		m.b.Load(msg.notes)
		m.hist = &board.History{}
		m.histBusy = false
		m.panX, m.panY = 0, 0
		m.mode = ModeCanvas
		_ = m.prefs.SetLastCanvas(msg.canvas.Name)
		return m, nil

	case saveDoneMsg:
		if msg.err != nil {
			m.log.Error("save failed", zap.Error(msg.err))
			return m, m.showToast("Save failed")
		}
		return m, nil

	case histDoneMsg:
		m.histBusy = false
		if msg.err != nil {
			m.log.Error("history persist failed", zap.Error(msg.err))
			return m, m.showToast("Save failed")
		}
		return m, nil

	case canvasListMsg:
		if msg.err != nil {
			m.log.Error("canvas list failed", zap.Error(msg.err))
			return m, m.showToast("Search unavailable")
		}
		m.searchCanvases = msg.canvases
		m.filterSearch()
		return m, nil

	case tabCreatedMsg:
		if msg.err != nil {
			return m, m.showToast("Tab create failed")
		}
		m.tabs = append(m.tabs, msg.tab)
		m.switchTab(len(m.tabs) - 1)
		return m, nil

	case imageUploadedMsg:
		if msg.err != nil {
			m.log.Error("image upload failed", zap.Error(msg.err))
			return m, m.showToast("Upload failed")
		}
		return m, m.createSavedNote("![image]("+msg.url+")", msg.x, msg.y)

	case exportDoneMsg:
		if msg.err != nil {
			return m, m.showToast("Export failed")
		}
		return m, m.showToast("Exported " + msg.path)

	case shareDoneMsg:
		if msg.err != nil {
			return m, m.showToast("Share failed")
		}
		_ = writeClipboardText(msg.url)
		return m, m.showToast("Share URL copied: " + msg.url)

	case toastClearMsg:
		if msg.seq == m.toastSeq {
			m.toast = ""
		}
		return m, nil

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.KeyMsg:
		switch m.mode {
		case ModeEditing:
			return m.handleEditKey(msg)
		case ModeSearch:
			return m.handleSearchKey(msg)
		case ModeTabNaming:
			return m.handleTabNameKey(msg)
		default:
			return m.handleCanvasKey(msg)
		}
	}
	return m, nil
}

func (m *Model) handleCanvasKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "ctrl+c":
		if m.b.SelectionCount() > 0 {
			return m, m.copySelection()
		}
		return m, tea.Quit
	case "ctrl+x":
		return m, m.cutSelection()
	case "ctrl+v":
		return m, m.pasteToCanvas()
	case "ctrl+z":
		return m, m.doUndo()
	case "ctrl+y", "ctrl+shift+z":
		return m, m.doRedo()
	case "tab":
		return m, m.handleTabKey(false)
	case "shift+tab":
		return m, m.handleTabKey(true)
	case "up", "shift+up", "ctrl+up", "ctrl+shift+up":
		return m, m.handleArrow(board.DirUp, msg)
	case "down", "shift+down", "ctrl+down", "ctrl+shift+down":
		return m, m.handleArrow(board.DirDown, msg)
	case "left", "shift+left", "ctrl+left", "ctrl+shift+left":
		return m, m.handleArrow(board.DirLeft, msg)
	case "right", "shift+right", "ctrl+right", "ctrl+shift+right":
		return m, m.handleArrow(board.DirRight, msg)
	case "backspace", "delete":
		return m, m.deleteSelection()
	case "enter":
		if sel := m.b.Selected(); len(sel) == 1 {
			m.openEditor(sel[0])
		}
		return m, nil
	case "esc":
		m.guide = guideNone
		m.b.ClearSelection()
		return m, nil
	case "ctrl+l":
		return m, m.cycleBullets()
	case "x":
		return m, m.toggleCheckboxes()
	case "ctrl+t":
		m.tabsEnabled = !m.tabsEnabled
		_ = m.prefs.SetTabsEnabled(m.canvas.ID, m.tabsEnabled)
		return m, nil
	case "{":
		if len(m.tabs) > 1 {
			m.switchTab((m.tabIndex - 1 + len(m.tabs)) % len(m.tabs))
		}
		return m, nil
	case "}":
		if len(m.tabs) > 1 {
			m.switchTab((m.tabIndex + 1) % len(m.tabs))
		}
		return m, nil
	case "T":
		m.mode = ModeTabNaming
		m.tabNameBuf = nil
		return m, nil
	case "ctrl+/", "ctrl+_":
		return m, m.openSearch()
	case "z":
		m.zPan = !m.zPan
		return m, nil
	case "h", "j", "k", "l":
		if m.zPan {
			m.panByKey(msg.String())
		}
		return m, nil
	case "ctrl+e":
		return m, tea.Batch(m.showToast("Exporting..."), m.exportPNGCmd())
	case "ctrl+s":
		return m, tea.Batch(m.showToast("Sharing..."), m.shareCmd())
	}
	return m, nil
}

func (m *Model) panByKey(key string) {
	step := 4 * m.grid()
	switch key {
	case "h":
		m.panX -= step
	case "l":
		m.panX += step
	case "k":
		m.panY -= step
	case "j":
		m.panY += step
	}
	m.clampPan()
}

// handleTabKey: with nothing selected Tab picks the note nearest the
// origin; with a selection it nudges horizontally and persists, without an
// undo record.
func (m *Model) handleTabKey(reverse bool) tea.Cmd {
	sel := m.b.Selected()
	if len(sel) == 0 {
		if n := m.b.NearestToOrigin(); n != nil {
			m.b.Select(n.ID)
		}
		return nil
	}
	dx := m.grid()
	if reverse {
		dx = -dx
	}
	saves := make([]note.Note, 0, len(sel))
	for _, n := range sel {
		n.X += dx
		saves = append(saves, *n)
	}
	return m.saveNotesCmd(saves)
}

func (m *Model) handleArrow(dir board.Direction, msg tea.KeyMsg) tea.Cmd {
	s := msg.String()
	shift := hasMod(s, "shift")
	ctrl := hasMod(s, "ctrl")

	sel := m.b.Selected()
	if len(sel) == 0 {
		if n := m.b.NearestToOrigin(); n != nil {
			m.b.Select(n.ID)
		}
		return nil
	}
	if len(sel) == 1 && !ctrl {
		if next := m.b.NearestInDirection(sel[0], dir); next != nil {
			m.b.ClearSelection()
			m.b.Select(next.ID)
		}
		return nil
	}

	step := m.grid()
	if shift {
		step = 5 * m.grid()
	}
	dx, dy := 0, 0
	switch dir {
	case board.DirUp:
		dy = -step
	case board.DirDown:
		dy = step
	case board.DirLeft:
		dx = -step
	case board.DirRight:
		dx = step
	}

	moves := make([]board.Movement, 0, len(sel))
	saves := make([]note.Note, 0, len(sel))
	for _, n := range sel {
		moves = append(moves, board.Movement{
			ID: n.ID, FromX: n.X, FromY: n.Y, ToX: n.X + dx, ToY: n.Y + dy,
		})
		n.X += dx
		n.Y += dy
		saves = append(saves, *n)
	}
	m.hist.Record(&board.MultiMove{Moves: moves})
	return m.saveNotesCmd(saves)
}

func hasMod(keyString, mod string) bool {
	return strings.Contains(keyString, mod+"+")
}

func (m *Model) deleteSelection() tea.Cmd {
	sel := m.b.Selected()
	if len(sel) == 0 {
		return nil
	}
	if len(sel) == 1 {
		n := sel[0]
		m.hist.Record(&board.Delete{Note: board.NoteSnapshot{ID: n.ID, Text: n.Text, X: n.X, Y: n.Y}})
	} else {
		snaps := make([]board.NoteSnapshot, 0, len(sel))
		for _, n := range sel {
			snaps = append(snaps, board.NoteSnapshot{ID: n.ID, Text: n.Text, X: n.X, Y: n.Y})
		}
		m.hist.Record(&board.MultiDelete{Notes: snaps})
	}
	ids := make([]string, 0, len(sel))
	for _, n := range sel {
		ids = append(ids, n.ID)
		m.b.Remove(n.ID)
	}
	return m.deleteNotesCmd(ids)
}

func (m *Model) doUndo() tea.Cmd {
	if m.histBusy {
		return nil
	}
	p := &pendingPersister{}
	if _, ok := m.hist.Undo(m.b, p); !ok {
		return nil
	}
	m.histBusy = true
	m.clampPan()
	return tea.Batch(m.showToast("Undo"), m.flushHistoryCmd(p))
}

func (m *Model) doRedo() tea.Cmd {
	if m.histBusy {
		return nil
	}
	p := &pendingPersister{}
	a, ok := m.hist.Redo(m.b, p)
	if !ok {
		return nil
	}
	m.histBusy = true
	m.clampPan()
	// re-creating an empty note means the user was mid-entry
	if c, isCreate := a.(*board.Create); isCreate && c.Note.Text == "" {
		if n := m.b.Get(c.Note.ID); n != nil {
			m.openEditor(n)
		}
	}
	return tea.Batch(m.showToast("Redo"), m.flushHistoryCmd(p))
}

// cycleBullets rotates the topmost selected note's marker and applies the
// result to the whole selection.
func (m *Model) cycleBullets() tea.Cmd {
	sel := m.b.Selected()
	if len(sel) == 0 {
		return nil
	}
	top := sel[0]
	for _, n := range sel {
		if n.Y < top.Y {
			top = n
		}
	}
	next := note.NextMarker(note.MarkerOf(top.Text))

	saves := make([]note.Note, 0, len(sel))
	for _, n := range sel {
		n.Text = note.ApplyMarker(n.Text, next)
		m.hist.PatchContent(n.ID, n.Text)
		saves = append(saves, *n)
	}
	return m.saveNotesCmd(saves)
}

func (m *Model) toggleCheckboxes() tea.Cmd {
	saves := []note.Note{}
	for _, n := range m.b.Selected() {
		if !note.Classify(n.Text).Checkbox {
			continue
		}
		n.Text = note.ToggleCheckbox(n.Text)
		m.hist.PatchContent(n.ID, n.Text)
		saves = append(saves, *n)
	}
	return m.saveNotesCmd(saves)
}

func (m *Model) switchTab(idx int) {
	if idx < 0 || idx >= len(m.tabs) {
		return
	}
	m.tabIndex = idx
	m.b.TabID = m.tabs[idx].ID
	m.b.ClearSelection()
}

func (m *Model) handleTabNameKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.mode = ModeCanvas
		return m, nil
	case tea.KeyEnter:
		name := string(m.tabNameBuf)
		m.mode = ModeCanvas
		if name == "" {
			return m, nil
		}
		return m, m.createTabCmd(name)
	case tea.KeyBackspace:
		if len(m.tabNameBuf) > 0 {
			m.tabNameBuf = m.tabNameBuf[:len(m.tabNameBuf)-1]
		}
		return m, nil
	case tea.KeySpace:
		m.tabNameBuf = append(m.tabNameBuf, ' ')
		return m, nil
	case tea.KeyRunes:
		m.tabNameBuf = append(m.tabNameBuf, msg.Runes...)
		return m, nil
	}
	return m, nil
}
