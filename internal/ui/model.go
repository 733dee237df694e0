// Package ui is the terminal client: a bubbletea program projecting the
// board onto cells and routing keyboard/mouse input to it.
package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"pinboard/internal/apiclient"
	"pinboard/internal/board"
	"pinboard/internal/config"
	"pinboard/internal/geom"
	"pinboard/internal/note"
	"pinboard/internal/state"
)

// Mode is the single interaction state. Drag, box selection, editing and
// panning are mutually exclusive by construction.
type Mode int

const (
	ModeCanvas Mode = iota
	ModePendingClick
	ModeDragging
	ModeBoxSelect
	ModePanning
	ModeEditing
	ModeSearch
	ModeTabNaming
)

const (
	clickMaxDuration = 200 * time.Millisecond
	insertUndoWindow = 30 * time.Second
	edgeMargin       = 15 // world px from the left/top edge that arms a guide
	panMultiplier    = 2
)

type guideAxis int

const (
	guideNone guideAxis = iota
	guideHorizontal
	guideVertical
)

type Model struct {
	cfg   config.ClientConfig
	api   *apiclient.Client
	log   *zap.Logger
	prefs *state.Store

	width  int
	height int

	canvas      apiclient.Canvas
	tabs        []apiclient.Tab
	tabIndex    int
	tabsEnabled bool

	b    *board.Board
	hist *board.History
	// undo/redo keys are dropped while a history operation's saves are in
	// flight
	histBusy bool

	mode Mode

	// pointer state, world pixels
	downX, downY    int
	downOnNote      string
	downWasSelected bool
	downCtrl        bool
	downMulti       bool
	downTime        time.Time
	dragOrigins     []board.Movement
	panLastX        int
	panLastY        int

	guide  guideAxis
	guideX int
	guideY int

	lastMouseX int
	lastMouseY int

	panX int
	panY int

	// edit buffer
	editID     string
	editBuf    []rune
	editCursor int

	// Escape-undo convenience for the last list insertion
	insertID string
	insertAt time.Time

	// dual-format clipboard: plain text mirrors the system clipboard,
	// snapshots preserve layout for same-session pastes
	clipText  string
	clipNotes []note.Note

	searchQuery    []rune
	searchCanvases []apiclient.Canvas
	searchMatches  []apiclient.Canvas
	searchCursor   int

	tabNameBuf []rune

	zPan bool

	toast    string
	toastSeq int

	loadErr error
}

func New(cfg config.ClientConfig, api *apiclient.Client, log *zap.Logger, prefs *state.Store, canvas apiclient.Canvas) *Model {
	return &Model{
		cfg:         cfg,
		api:         api,
		log:         log,
		prefs:       prefs,
		canvas:      canvas,
		tabsEnabled: prefs.TabsEnabled(canvas.ID),
		b:           board.New(canvas.ID, 0),
		hist:        &board.History{},
		width:       80,
		height:      24,
	}
}

func (m *Model) Init() tea.Cmd {
	return m.loadCanvasCmd(m.canvas)
}

func (m *Model) grid() int {
	if m.cfg.SnapGrid > 0 {
		return m.cfg.SnapGrid
	}
	return geom.Grid
}

// topRows is the header bar height; the canvas area starts below it and
// stops above the status line.
func (m *Model) topRows() int { return 1 }

func (m *Model) canvasRows() int {
	rows := m.height - m.topRows() - 1
	if rows < 1 {
		rows = 1
	}
	return rows
}

// world converts a cell position to world pixels.
func (m *Model) world(cellX, cellY int) (int, int) {
	return cellX*geom.PxPerCol + m.panX, (cellY-m.topRows())*geom.PxPerRow + m.panY
}

// cell converts world pixels to a screen cell.
func (m *Model) cell(wx, wy int) (int, int) {
	return (wx - m.panX) / geom.PxPerCol, (wy-m.panY)/geom.PxPerRow + m.topRows()
}

// viewRect is the visible world region.
func (m *Model) viewRect() geom.Rect {
	return geom.RectAt(m.panX, m.panY, m.width*geom.PxPerCol, m.canvasRows()*geom.PxPerRow)
}

func (m *Model) clampPan() {
	maxRight, maxBottom := m.b.MaxExtent()
	view := m.viewRect()
	extW, extH := geom.Extent(maxRight, maxBottom, view.Width(), view.Height())
	if m.panX > extW-view.Width() {
		m.panX = extW - view.Width()
	}
	if m.panY > extH-view.Height() {
		m.panY = extH - view.Height()
	}
	if m.panX < 0 {
		m.panX = 0
	}
	if m.panY < 0 {
		m.panY = 0
	}
}

func (m *Model) currentTabID() uint {
	if len(m.tabs) == 0 {
		return 0
	}
	return m.tabs[m.tabIndex].ID
}

func (m *Model) showToast(text string) tea.Cmd {
	m.toast = text
	m.toastSeq++
	seq := m.toastSeq
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return toastClearMsg{seq: seq}
	})
}
