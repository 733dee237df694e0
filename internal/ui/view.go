package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"pinboard/internal/board"
	"pinboard/internal/note"
)

var (
	styleDefault  = lipgloss.NewStyle()
	styleSelected = lipgloss.NewStyle().Reverse(true)
	styleHeader   = lipgloss.NewStyle().Bold(true)
	styleLink     = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Underline(true)
	styleTag      = lipgloss.NewStyle().Foreground(lipgloss.Color("13"))
	styleStrike   = lipgloss.NewStyle().Strikethrough(true).Faint(true)
	styleGuide    = lipgloss.NewStyle().Faint(true)
	styleCursor   = lipgloss.NewStyle().Reverse(true)
	styleTabOn    = lipgloss.NewStyle().Reverse(true).Bold(true)
	styleTabOff   = lipgloss.NewStyle().Faint(true)
	styleStatus   = lipgloss.NewStyle().Faint(true)
	styleToast    = lipgloss.NewStyle().Bold(true)
	styleErr      = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// screenBuf composites styled text into a fixed cell grid so overlapping
// notes resolve the same way hit testing does: later writes win.
type screenBuf struct {
	w, h  int
	runes [][]rune
	style [][]*lipgloss.Style
}

func newScreenBuf(w, h int) *screenBuf {
	b := &screenBuf{w: w, h: h}
	b.runes = make([][]rune, h)
	b.style = make([][]*lipgloss.Style, h)
	for y := 0; y < h; y++ {
		b.runes[y] = make([]rune, w)
		b.style[y] = make([]*lipgloss.Style, w)
		for x := 0; x < w; x++ {
			b.runes[y][x] = ' '
		}
	}
	return b
}

func (b *screenBuf) set(x, y int, r rune, st *lipgloss.Style) {
	if x < 0 || x >= b.w || y < 0 || y >= b.h {
		return
	}
	b.runes[y][x] = r
	b.style[y][x] = st
}

func (b *screenBuf) write(x, y int, text string, st *lipgloss.Style) {
	for i, r := range []rune(text) {
		b.set(x+i, y, r, st)
	}
}

// render flushes each row, batching adjacent cells that share a style.
func (b *screenBuf) render() string {
	var out strings.Builder
	for y := 0; y < b.h; y++ {
		var run []rune
		var cur *lipgloss.Style
		flush := func() {
			if len(run) == 0 {
				return
			}
			if cur != nil {
				out.WriteString(cur.Render(string(run)))
			} else {
				out.WriteString(string(run))
			}
			run = run[:0]
		}
		for x := 0; x < b.w; x++ {
			if b.style[y][x] != cur {
				flush()
				cur = b.style[y][x]
			}
			run = append(run, b.runes[y][x])
		}
		flush()
		if y < b.h-1 {
			out.WriteByte('\n')
		}
	}
	return out.String()
}

func (m *Model) View() string {
	buf := newScreenBuf(m.width, m.height)
	m.drawHeader(buf)

	if m.loadErr != nil {
		buf.write(2, m.topRows()+1, "Could not reach the server: "+m.loadErr.Error(), &styleErr)
		buf.write(2, m.topRows()+3, "Check that `pinboard serve` is running, then restart.", &styleStatus)
		return buf.render()
	}

	m.drawGuides(buf)
	m.drawNotes(buf)

	if m.mode == ModeSearch {
		m.drawSearch(buf)
	}
	m.drawStatus(buf)
	return buf.render()
}

func (m *Model) drawHeader(buf *screenBuf) {
	if m.tabsEnabled {
		col := 0
		for i, t := range m.tabs {
			st := &styleTabOff
			if i == m.tabIndex {
				st = &styleTabOn
			}
			label := " " + t.Name + " "
			buf.write(col, 0, label, st)
			col += len([]rune(label)) + 1
		}
	}
	name := m.canvas.Name
	buf.write(m.width-len([]rune(name))-1, 0, name, &styleHeader)
}

func (m *Model) drawGuides(buf *screenBuf) {
	switch m.guide {
	case guideHorizontal:
		_, cy := m.cell(0, m.guideY)
		for x := 0; x < m.width; x++ {
			buf.set(x, cy, '─', &styleGuide)
		}
	case guideVertical:
		cx, _ := m.cell(m.guideX, 0)
		for y := m.topRows(); y < m.height-1; y++ {
			buf.set(cx, y, '│', &styleGuide)
		}
	}
}

func (m *Model) drawNotes(buf *screenBuf) {
	bottom := m.height - 1
	for _, n := range m.b.Visible() {
		cx, cy := m.cell(n.X, n.Y)
		if cy < m.topRows() || cy >= bottom {
			continue
		}
		if n.ID == m.editID && m.mode == ModeEditing {
			m.drawEditBuffer(buf, cx, cy)
			continue
		}
		buf.write(cx, cy, board.Label(n), m.noteStyle(n))
	}
}

func (m *Model) drawEditBuffer(buf *screenBuf, cx, cy int) {
	for i, r := range m.editBuf {
		st := &styleDefault
		if i == m.editCursor {
			st = &styleCursor
		}
		buf.set(cx+i, cy, r, st)
	}
	if m.editCursor == len(m.editBuf) {
		buf.set(cx+len(m.editBuf), cy, ' ', &styleCursor)
	}
}

func (m *Model) noteStyle(n *note.Note) *lipgloss.Style {
	if m.b.IsSelected(n.ID) {
		return &styleSelected
	}
	c := note.Classify(n.Text)
	switch {
	case c.Kind == note.KindLink || c.Kind == note.KindImage:
		return &styleLink
	case c.Kind == note.KindTag:
		return &styleTag
	case c.Kind == note.KindStrikethrough:
		return &styleStrike
	case c.Header:
		return &styleHeader
	}
	return &styleDefault
}

func (m *Model) drawSearch(buf *screenBuf) {
	y := m.topRows() + 1
	buf.write(2, y, "Switch canvas: "+string(m.searchQuery)+"▌", &styleHeader)
	for i, c := range m.searchMatches {
		if y+2+i >= m.height-1 {
			break
		}
		st := &styleDefault
		prefix := "  "
		if i == m.searchCursor {
			st = &styleSelected
			prefix = "> "
		}
		buf.write(2, y+2+i, prefix+c.Name, st)
	}
}

func (m *Model) drawStatus(buf *screenBuf) {
	y := m.height - 1
	var left string
	switch m.mode {
	case ModeEditing:
		left = "enter save · esc done · ctrl+arrows move · ctrl+bksp delete"
	case ModeSearch:
		left = "type to filter · enter open · esc cancel"
	case ModeTabNaming:
		left = "New tab: " + string(m.tabNameBuf) + "▌"
	case ModeBoxSelect:
		left = fmt.Sprintf("%d selected", m.b.SelectionCount())
	default:
		left = "click create · drag move · ctrl+z undo · ctrl+/ canvases · q quit"
		if count := m.b.SelectionCount(); count > 0 {
			left = fmt.Sprintf("%d selected · bksp delete · ctrl+c copy · ctrl+l bullets", count)
		}
	}
	buf.write(1, y, left, &styleStatus)

	if m.toast != "" {
		t := " " + m.toast + " "
		buf.write(m.width-len([]rune(t))-1, y, t, &styleToast)
	}
}
