package board

import (
	"math"
	"sort"

	"pinboard/internal/geom"
	"pinboard/internal/note"
)

// Direction of an arrow-key selection move.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

func (b *Board) Select(id string) {
	if _, ok := b.notes[id]; ok {
		b.sel[id] = struct{}{}
	}
}

func (b *Board) Deselect(id string) {
	delete(b.sel, id)
}

func (b *Board) ClearSelection() {
	b.sel = make(map[string]struct{})
}

func (b *Board) IsSelected(id string) bool {
	_, ok := b.sel[id]
	return ok
}

func (b *Board) SelectionCount() int { return len(b.sel) }

// Selected returns the selected notes ordered by id.
func (b *Board) Selected() []*note.Note {
	out := make([]*note.Note, 0, len(b.sel))
	for id := range b.sel {
		if n := b.notes[id]; n != nil {
			out = append(out, n)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Toggle flips membership when a multi-select modifier is held, otherwise
// replaces the selection with just this note.
func (b *Board) Toggle(id string, multi bool) {
	if !multi {
		b.ClearSelection()
		b.Select(id)
		return
	}
	if b.IsSelected(id) {
		b.Deselect(id)
	} else {
		b.Select(id)
	}
}

// SyncBoxSelection matches membership to the rubber-band rectangle on every
// pointer move: intersecting notes join, non-intersecting leave unless a
// multi-select modifier preserves the prior selection.
func (b *Board) SyncBoxSelection(r geom.Rect, multi bool) {
	for _, n := range b.Visible() {
		if b.NoteRect(n).Intersects(r) {
			b.Select(n.ID)
		} else if !multi {
			b.Deselect(n.ID)
		}
	}
}

// SelectBelowLine selects every visible note at or below the horizontal
// guide whose left edge falls within the viewport's horizontal span.
func (b *Board) SelectBelowLine(y int, view geom.Rect) {
	b.ClearSelection()
	for _, n := range b.Visible() {
		r := b.NoteRect(n)
		if r.Top >= y && r.Left >= view.Left && r.Left <= view.Right {
			b.Select(n.ID)
		}
	}
}

// SelectRightOfLine is the vertical-guide counterpart of SelectBelowLine.
func (b *Board) SelectRightOfLine(x int, view geom.Rect) {
	b.ClearSelection()
	for _, n := range b.Visible() {
		r := b.NoteRect(n)
		if r.Left >= x && r.Top >= view.Top && r.Top <= view.Bottom {
			b.Select(n.ID)
		}
	}
}

// NearestToOrigin returns the visible note closest to (0,0), or nil.
func (b *Board) NearestToOrigin() *note.Note {
	var best *note.Note
	bestDist := math.Inf(1)
	for _, n := range b.Visible() {
		r := b.NoteRect(n)
		d := math.Hypot(float64(r.Left), float64(r.Top))
		if d < bestDist {
			bestDist = d
			best = n
		}
	}
	return best
}

// NearestInDirection finds the closest note strictly in the given direction
// from the current one. A candidate must be fully past the relevant edge
// (its bottom at or above the current top for "up", and so on); notes level
// with the current one are not candidates. Ties break on Euclidean distance
// between the facing edges.
func (b *Board) NearestInDirection(from *note.Note, dir Direction) *note.Note {
	cur := b.NoteRect(from)
	var best *note.Note
	bestDist := math.Inf(1)
	for _, n := range b.Visible() {
		if n.ID == from.ID {
			continue
		}
		r := b.NoteRect(n)
		var ok bool
		var d float64
		switch dir {
		case DirUp:
			ok = r.Bottom <= cur.Top
			d = math.Hypot(float64(r.Left-cur.Left), float64(r.Bottom-cur.Top))
		case DirDown:
			ok = r.Top >= cur.Bottom
			d = math.Hypot(float64(r.Left-cur.Left), float64(r.Top-cur.Bottom))
		case DirLeft:
			ok = r.Right <= cur.Left
			d = math.Hypot(float64(r.Right-cur.Left), float64(r.Top-cur.Top))
		case DirRight:
			ok = r.Left >= cur.Right
			d = math.Hypot(float64(r.Left-cur.Right), float64(r.Top-cur.Top))
		}
		if ok && d < bestDist {
			bestDist = d
			best = n
		}
	}
	return best
}
