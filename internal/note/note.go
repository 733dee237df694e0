package note

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Note is one positioned text unit on a canvas. Text is the single source of
// truth: every visual decoration (checkbox, bullet, link, header, ...) is
// derived from it by Classify and never stored separately.
type Note struct {
	ID       string `json:"id"`
	CanvasID uint   `json:"canvas_id"`
	TabID    uint   `json:"tab_id"`
	Text     string `json:"text"`
	X        int    `json:"x"`
	Y        int    `json:"y"`
}

// NewID returns a fresh client-side note id. Timestamp first so ids sort
// roughly by creation time, uuid suffix so two notes created in the same
// millisecond don't collide.
func NewID() string {
	return fmt.Sprintf("%d-%s", time.Now().UnixMilli(), uuid.NewString()[:8])
}

// Clone returns a copy with a fresh id, used when pasting copied notes.
func (n Note) Clone() Note {
	n.ID = NewID()
	return n
}

func (n *Note) TrimmedText() string {
	return strings.TrimSpace(n.Text)
}
