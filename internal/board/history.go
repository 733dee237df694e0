package board

import "pinboard/internal/note"

// MaxHistory caps both stacks; the oldest entry is evicted on overflow.
const MaxHistory = 50

// Action is one reversible mutation in the history. The concrete types form
// a sealed tagged union; each knows how to apply itself forward and in
// reverse against a Board, reporting the notes that need persisting.
type Action interface {
	isAction()
}

// NoteSnapshot captures what is needed to re-create a note.
type NoteSnapshot struct {
	ID   string
	Text string
	X, Y int
}

// Movement is one note's before/after position.
type Movement struct {
	ID           string
	FromX, FromY int
	ToX, ToY     int
}

// ShiftedNote records a vertical shift made by a list insertion.
type ShiftedNote struct {
	ID   string
	OldY int
	NewY int
}

type Create struct{ Note NoteSnapshot }

type Delete struct{ Note NoteSnapshot }

type Move struct{ Move Movement }

type MultiMove struct{ Moves []Movement }

type MultiDelete struct{ Notes []NoteSnapshot }

// ListInsert is the command-click insertion: one new note plus the run of
// notes shifted down to make room, undone as a single unit.
type ListInsert struct {
	Note    NoteSnapshot
	Shifted []ShiftedNote
}

func (*Create) isAction()      {}
func (*Delete) isAction()      {}
func (*Move) isAction()        {}
func (*MultiMove) isAction()   {}
func (*MultiDelete) isAction() {}
func (*ListInsert) isAction()  {}

// Persister receives the saves and deletes a history operation produces.
// The UI batches them into backend calls.
type Persister interface {
	SaveNote(n note.Note)
	DeleteNote(id string)
}

// History is the linear undo/redo store. Recording a new action clears the
// redo stack; there is no branching.
type History struct {
	undo []Action
	redo []Action
}

func (h *History) Record(a Action) {
	h.undo = append(h.undo, a)
	if len(h.undo) > MaxHistory {
		h.undo = h.undo[len(h.undo)-MaxHistory:]
	}
	h.redo = nil
}

func (h *History) CanUndo() bool { return len(h.undo) > 0 }
func (h *History) CanRedo() bool { return len(h.redo) > 0 }
func (h *History) UndoLen() int  { return len(h.undo) }

// Undo pops the newest action, applies its inverse to the board, and moves
// it to the redo stack. Returns the action executed.
func (h *History) Undo(b *Board, p Persister) (Action, bool) {
	if len(h.undo) == 0 {
		return nil, false
	}
	a := h.undo[len(h.undo)-1]
	h.undo = h.undo[:len(h.undo)-1]
	h.redo = append(h.redo, a)
	if len(h.redo) > MaxHistory {
		h.redo = h.redo[len(h.redo)-MaxHistory:]
	}
	applyInverse(a, b, p)
	return a, true
}

// Redo pops from the redo stack and re-applies the forward operation.
func (h *History) Redo(b *Board, p Persister) (Action, bool) {
	if len(h.redo) == 0 {
		return nil, false
	}
	a := h.redo[len(h.redo)-1]
	h.redo = h.redo[:len(h.redo)-1]
	h.undo = append(h.undo, a)
	applyForward(a, b, p)
	return a, true
}

// UndoInsertion reverses a just-made list insertion without touching the
// redo stack: the Escape-to-cancel convenience, distinct from general undo.
func (h *History) UndoInsertion(b *Board, p Persister, noteID string) bool {
	if len(h.undo) == 0 {
		return false
	}
	li, ok := h.undo[len(h.undo)-1].(*ListInsert)
	if !ok || li.Note.ID != noteID {
		return false
	}
	h.undo = h.undo[:len(h.undo)-1]
	applyInverse(li, b, p)
	return true
}

// DropCreate discards the pending Create for noteID when it sits on top of
// the undo stack. Used when an empty note is abandoned: nothing was ever
// persisted, so there is nothing to undo.
func (h *History) DropCreate(noteID string) bool {
	if len(h.undo) == 0 {
		return false
	}
	c, ok := h.undo[len(h.undo)-1].(*Create)
	if !ok || c.Note.ID != noteID {
		return false
	}
	h.undo = h.undo[:len(h.undo)-1]
	return true
}

// PatchContent rewrites the recorded text for noteID in every pending
// action, so undoing a delete later restores the edited text, not the text
// at record time.
func (h *History) PatchContent(noteID, text string) {
	for _, stack := range [][]Action{h.undo, h.redo} {
		for _, a := range stack {
			switch a := a.(type) {
			case *Create:
				if a.Note.ID == noteID {
					a.Note.Text = text
				}
			case *Delete:
				if a.Note.ID == noteID {
					a.Note.Text = text
				}
			case *MultiDelete:
				for i := range a.Notes {
					if a.Notes[i].ID == noteID {
						a.Notes[i].Text = text
					}
				}
			case *ListInsert:
				if a.Note.ID == noteID {
					a.Note.Text = text
				}
			}
		}
	}
}

func (b *Board) restore(s NoteSnapshot) note.Note {
	n := note.Note{
		ID:       s.ID,
		CanvasID: b.CanvasID,
		TabID:    b.TabID,
		Text:     s.Text,
		X:        s.X,
		Y:        s.Y,
	}
	b.Put(n)
	return n
}

func applyInverse(a Action, b *Board, p Persister) {
	switch a := a.(type) {
	case *Create:
		b.Remove(a.Note.ID)
		p.DeleteNote(a.Note.ID)
	case *Delete:
		p.SaveNote(b.restore(a.Note))
	case *Move:
		moveTo(b, p, a.Move.ID, a.Move.FromX, a.Move.FromY)
	case *MultiMove:
		for _, mv := range a.Moves {
			moveTo(b, p, mv.ID, mv.FromX, mv.FromY)
		}
	case *MultiDelete:
		for _, s := range a.Notes {
			p.SaveNote(b.restore(s))
		}
	case *ListInsert:
		b.Remove(a.Note.ID)
		p.DeleteNote(a.Note.ID)
		for _, sh := range a.Shifted {
			if n := b.Get(sh.ID); n != nil {
				n.Y = sh.OldY
				p.SaveNote(*n)
			}
		}
	}
}

func applyForward(a Action, b *Board, p Persister) {
	switch a := a.(type) {
	case *Create:
		p.SaveNote(b.restore(a.Note))
	case *Delete:
		b.Remove(a.Note.ID)
		p.DeleteNote(a.Note.ID)
	case *Move:
		moveTo(b, p, a.Move.ID, a.Move.ToX, a.Move.ToY)
	case *MultiMove:
		for _, mv := range a.Moves {
			moveTo(b, p, mv.ID, mv.ToX, mv.ToY)
		}
	case *MultiDelete:
		for _, s := range a.Notes {
			b.Remove(s.ID)
			p.DeleteNote(s.ID)
		}
	case *ListInsert:
		for _, sh := range a.Shifted {
			if n := b.Get(sh.ID); n != nil {
				n.Y = sh.NewY
				p.SaveNote(*n)
			}
		}
		p.SaveNote(b.restore(a.Note))
	}
}

func moveTo(b *Board, p Persister, id string, x, y int) {
	n := b.Get(id)
	if n == nil {
		return
	}
	n.X, n.Y = x, y
	p.SaveNote(*n)
}
