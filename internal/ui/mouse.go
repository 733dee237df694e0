package ui

import (
	"math"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"pinboard/internal/board"
	"pinboard/internal/geom"
	"pinboard/internal/note"
)

func (m *Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.mode == ModeSearch || m.mode == ModeTabNaming {
		return m, nil
	}

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.panY -= 3 * geom.PxPerRow
		m.clampPan()
		return m, nil
	case tea.MouseButtonWheelDown:
		m.panY += 3 * geom.PxPerRow
		m.clampPan()
		return m, nil
	case tea.MouseButtonWheelLeft:
		m.panX -= 3 * geom.PxPerCol
		m.clampPan()
		return m, nil
	case tea.MouseButtonWheelRight:
		m.panX += 3 * geom.PxPerCol
		m.clampPan()
		return m, nil
	}

	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonLeft:
			return m.mouseDown(msg)
		case tea.MouseButtonMiddle:
			m.mode = ModePanning
			m.panLastX, m.panLastY = msg.X, msg.Y
			return m, nil
		}
	case tea.MouseActionMotion:
		return m.mouseMove(msg)
	case tea.MouseActionRelease:
		return m.mouseUp(msg)
	}
	return m, nil
}

func (m *Model) mouseDown(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	// header bar clicks switch tabs
	if msg.Y < m.topRows() {
		if m.tabsEnabled {
			if idx := m.tabAtCell(msg.X); idx >= 0 {
				m.switchTab(idx)
			}
		}
		return m, nil
	}

	var cmd tea.Cmd
	if m.mode == ModeEditing {
		cmd = m.saveEdit()
	}

	wx, wy := m.world(msg.X, msg.Y)
	m.downX, m.downY = wx, wy
	m.downTime = time.Now()
	m.downCtrl = msg.Ctrl
	m.downMulti = msg.Shift
	m.lastMouseX, m.lastMouseY = wx, wy

	if n := m.b.NoteAt(wx, wy); n != nil {
		m.downOnNote = n.ID
		m.downWasSelected = m.b.IsSelected(n.ID)
		if !m.downWasSelected {
			if !msg.Shift && !msg.Ctrl {
				m.b.ClearSelection()
			}
			m.b.Select(n.ID)
		}
		// capture starting positions for the whole eventual drag set
		// before any movement happens
		m.dragOrigins = m.dragOrigins[:0]
		for _, s := range m.b.Selected() {
			m.dragOrigins = append(m.dragOrigins, board.Movement{
				ID: s.ID, FromX: s.X, FromY: s.Y,
			})
		}
	} else {
		m.downOnNote = ""
		m.downWasSelected = false
		if !msg.Shift && !msg.Ctrl {
			m.b.ClearSelection()
		}
	}
	m.mode = ModePendingClick
	return m, cmd
}

func (m *Model) mouseMove(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	wx, wy := m.world(msg.X, msg.Y)
	m.lastMouseX, m.lastMouseY = wx, wy

	switch m.mode {
	case ModePanning:
		m.panX -= (msg.X - m.panLastX) * geom.PxPerCol * panMultiplier
		m.panY -= (msg.Y - m.panLastY) * geom.PxPerRow * panMultiplier
		m.panLastX, m.panLastY = msg.X, msg.Y
		m.clampPan()

	case ModePendingClick:
		if dist(m.downX, m.downY, wx, wy) > geom.DragThreshold {
			if m.downOnNote != "" {
				m.mode = ModeDragging
				m.applyDragDelta(wx, wy)
			} else {
				m.mode = ModeBoxSelect
				m.b.SyncBoxSelection(geom.FromCorners(m.downX, m.downY, wx, wy), m.downMulti || m.downCtrl)
			}
		}

	case ModeDragging:
		m.applyDragDelta(wx, wy)

	case ModeBoxSelect:
		m.b.SyncBoxSelection(geom.FromCorners(m.downX, m.downY, wx, wy), m.downMulti || m.downCtrl)

	case ModeCanvas:
		m.updateGuide(msg.X, msg.Y, wx, wy)
	}
	return m, nil
}

func (m *Model) mouseUp(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	wx, wy := m.world(msg.X, msg.Y)

	switch m.mode {
	case ModePanning:
		m.mode = ModeCanvas
		return m, nil

	case ModePendingClick:
		m.mode = ModeCanvas
		return m, m.finishClick(wx, wy)

	case ModeBoxSelect:
		// membership was synced on every move; nothing left to do
		m.mode = ModeCanvas
		return m, nil

	case ModeDragging:
		m.mode = ModeCanvas
		return m, m.finishDrag(wx, wy)
	}
	return m, nil
}

func dist(x1, y1, x2, y2 int) float64 {
	return math.Hypot(float64(x2-x1), float64(y2-y1))
}

// applyDragDelta moves every captured note by the pointer delta, preserving
// relative offsets across the group.
func (m *Model) applyDragDelta(wx, wy int) {
	dx, dy := wx-m.downX, wy-m.downY
	for _, o := range m.dragOrigins {
		if n := m.b.Get(o.ID); n != nil {
			n.X = o.FromX + dx
			n.Y = o.FromY + dy
		}
	}
}

// finishClick resolves a press/release that never exceeded the drag
// threshold: guide selection, note open/toggle/insert, or note creation.
func (m *Model) finishClick(wx, wy int) tea.Cmd {
	if m.downOnNote == "" {
		if m.guide != guideNone {
			m.applyGuideSelection()
			return nil
		}
		// click on empty canvas creates a note there
		g := m.grid()
		return m.createEditingNote(geom.Snap(m.downX, g), geom.Snap(m.downY, g), "")
	}

	n := m.b.Get(m.downOnNote)
	if n == nil {
		return nil
	}
	switch {
	case m.downCtrl:
		// reserved for list insertion, never opens the editor
		return m.commandClickInsert(n)
	case m.downMulti:
		// mouse-down already added an unselected note to the selection;
		// only a note that was selected before the press toggles off
		if m.downWasSelected {
			m.b.Deselect(n.ID)
		}
		return nil
	default:
		m.openEditor(n)
		return nil
	}
}

func (m *Model) finishDrag(wx, wy int) tea.Cmd {
	duration := time.Since(m.downTime)

	// very short drags ending on a note are clicks: restore positions and
	// open the editor instead
	if duration < clickMaxDuration && m.downOnNote != "" && m.b.NoteAt(wx, wy) != nil {
		for _, o := range m.dragOrigins {
			if n := m.b.Get(o.ID); n != nil {
				n.X, n.Y = o.FromX, o.FromY
			}
		}
		if n := m.b.Get(m.downOnNote); n != nil {
			m.openEditor(n)
		}
		return nil
	}

	g := m.grid()
	moves := make([]board.Movement, 0, len(m.dragOrigins))
	saves := make([]note.Note, 0, len(m.dragOrigins))
	for _, o := range m.dragOrigins {
		n := m.b.Get(o.ID)
		if n == nil {
			continue
		}
		n.X = geom.Snap(n.X+geom.SnapBias, g)
		n.Y = geom.Snap(n.Y+geom.SnapBias, g)
		if n.X == o.FromX && n.Y == o.FromY {
			continue
		}
		moves = append(moves, board.Movement{
			ID: o.ID, FromX: o.FromX, FromY: o.FromY, ToX: n.X, ToY: n.Y,
		})
		saves = append(saves, *n)
	}
	if len(moves) == 0 {
		return nil
	}
	if len(moves) == 1 {
		m.hist.Record(&board.Move{Move: moves[0]})
	} else {
		m.hist.Record(&board.MultiMove{Moves: moves})
	}
	m.clampPan()
	return m.saveNotesCmd(saves)
}

// updateGuide arms a selection guide while hovering near the left or top
// edge. The horizontal guide wins near the top-left corner.
func (m *Model) updateGuide(cellX, cellY, wx, wy int) {
	nearLeft := wx-m.panX < edgeMargin
	nearTop := cellY == m.topRows()

	switch {
	case nearLeft:
		m.guide = guideHorizontal
		m.guideY = wy
	case nearTop:
		m.guide = guideVertical
		m.guideX = wx
	default:
		m.guide = guideNone
	}
}

func (m *Model) applyGuideSelection() {
	view := m.viewRect()
	switch m.guide {
	case guideHorizontal:
		m.b.SelectBelowLine(m.guideY, view)
	case guideVertical:
		m.b.SelectRightOfLine(m.guideX, view)
	}
	m.guide = guideNone
}

// tabAtCell maps a header-bar column to a tab index, or -1.
func (m *Model) tabAtCell(x int) int {
	col := 0
	for i, t := range m.tabs {
		w := len([]rune(t.Name)) + 2
		if x >= col && x < col+w {
			return i
		}
		col += w + 1
	}
	return -1
}
