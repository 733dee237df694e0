package ui

import (
	"context"
	"fmt"
	"os"
	"sort"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"pinboard/internal/apiclient"
	"pinboard/internal/note"
)

type canvasLoadedMsg struct {
	canvas apiclient.Canvas
	tabs   []apiclient.Tab
	notes  []note.Note
	err    error
}

type saveDoneMsg struct{ err error }

// histDoneMsg re-enables undo/redo once a history operation's saves land.
type histDoneMsg struct{ err error }

type canvasListMsg struct {
	canvases []apiclient.Canvas
	err      error
}

type tabCreatedMsg struct {
	tab apiclient.Tab
	err error
}

type imageUploadedMsg struct {
	url  string
	x, y int
	err  error
}

type exportDoneMsg struct {
	path string
	err  error
}

type shareDoneMsg struct {
	url string
	err error
}

type toastClearMsg struct{ seq int }

const requestTimeout = 10 * time.Second

func (m *Model) loadCanvasCmd(canvas apiclient.Canvas) tea.Cmd {
	api := m.api
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		tabs, err := api.ListTabs(ctx, canvas.ID)
		if err != nil {
			return canvasLoadedMsg{err: err}
		}
		sort.Slice(tabs, func(i, j int) bool {
			if tabs[i].SortOrder != tabs[j].SortOrder {
				return tabs[i].SortOrder < tabs[j].SortOrder
			}
			return tabs[i].Name > tabs[j].Name
		})
		notes, err := api.ListNotes(ctx, canvas.ID)
		if err != nil {
			return canvasLoadedMsg{err: err}
		}
		return canvasLoadedMsg{canvas: canvas, tabs: tabs, notes: notes}
	}
}

// saveNotesCmd persists snapshots sequentially. Fire-and-forget from the
// board's point of view: a failure surfaces as a toast, state is not rolled
// back.
func (m *Model) saveNotesCmd(notes []note.Note) tea.Cmd {
	if len(notes) == 0 {
		return nil
	}
	api := m.api
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		for _, n := range notes {
			if err := api.SaveNote(ctx, n); err != nil {
				return saveDoneMsg{err: err}
			}
		}
		return saveDoneMsg{}
	}
}

func (m *Model) deleteNotesCmd(ids []string) tea.Cmd {
	if len(ids) == 0 {
		return nil
	}
	api := m.api
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		for _, id := range ids {
			if err := api.DeleteNote(ctx, id); err != nil {
				return saveDoneMsg{err: err}
			}
		}
		return saveDoneMsg{}
	}
}

func (m *Model) saveNoteCmd(n note.Note) tea.Cmd {
	return m.saveNotesCmd([]note.Note{n})
}

func (m *Model) deleteNoteCmd(id string) tea.Cmd {
	return m.deleteNotesCmd([]string{id})
}

// pendingPersister buffers the saves/deletes emitted while a history action
// executes, so they can run in one sequential command.
type pendingPersister struct {
	saves   []note.Note
	deletes []string
}

func (p *pendingPersister) SaveNote(n note.Note) { p.saves = append(p.saves, n) }
func (p *pendingPersister) DeleteNote(id string) { p.deletes = append(p.deletes, id) }

func (m *Model) flushHistoryCmd(p *pendingPersister) tea.Cmd {
	api := m.api
	saves := p.saves
	deletes := p.deletes
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		for _, id := range deletes {
			if err := api.DeleteNote(ctx, id); err != nil {
				return histDoneMsg{err: err}
			}
		}
		for _, n := range saves {
			if err := api.SaveNote(ctx, n); err != nil {
				return histDoneMsg{err: err}
			}
		}
		return histDoneMsg{}
	}
}

func (m *Model) listCanvasesCmd() tea.Cmd {
	api := m.api
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		canvases, err := api.ListCanvases(ctx)
		return canvasListMsg{canvases: canvases, err: err}
	}
}

func (m *Model) createTabCmd(name string) tea.Cmd {
	api := m.api
	canvasID := m.canvas.ID
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		tab, err := api.CreateTab(ctx, canvasID, name)
		return tabCreatedMsg{tab: tab, err: err}
	}
}

func (m *Model) uploadImageCmd(path string, x, y int) tea.Cmd {
	api := m.api
	return func() tea.Msg {
		data, err := os.ReadFile(path)
		if err != nil {
			return imageUploadedMsg{err: err}
		}
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		url, err := api.UploadImage(ctx, path, data)
		return imageUploadedMsg{url: url, x: x, y: y, err: err}
	}
}

func (m *Model) exportPNGCmd() tea.Cmd {
	api := m.api
	canvas := m.canvas
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		data, err := api.ExportPNG(ctx, canvas.ID)
		if err != nil {
			return exportDoneMsg{err: err}
		}
		path := fmt.Sprintf("pinboard-%s.png", canvas.Name)
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return exportDoneMsg{err: err}
		}
		return exportDoneMsg{path: path}
	}
}

func (m *Model) shareCmd() tea.Cmd {
	api := m.api
	canvas := m.canvas
	log := m.log
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		html, err := api.Snapshot(ctx, canvas.ID)
		if err != nil {
			return shareDoneMsg{err: err}
		}
		url, err := api.Share(ctx, canvas.ID, canvas.Name, html)
		if err != nil {
			return shareDoneMsg{err: err}
		}
		log.Info("canvas shared", zap.String("url", url))
		return shareDoneMsg{url: url}
	}
}
