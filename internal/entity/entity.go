package entity

import "time"

// Canvas is a project: a named collection of tabs and notes.
type Canvas struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

func (Canvas) TableName() string { return "canvases" }

// Tab partitions a canvas's notes. Every canvas keeps at least the
// "default" tab; deleting a tab cascades its notes.
type Tab struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	CanvasID  uint   `gorm:"index;not null" json:"canvas_id"`
	Name      string `gorm:"not null" json:"name"`
	SortOrder int    `json:"sort_order"`
}

func (Tab) TableName() string { return "tabs" }

// Note rows carry client-assigned string ids; saves are upserts so the
// last write wins.
type Note struct {
	ID       string `gorm:"primaryKey" json:"id"`
	CanvasID uint   `gorm:"index" json:"canvas_id"`
	TabID    uint   `gorm:"index" json:"tab_id"`
	Text     string `json:"text"`
	X        int    `json:"x"`
	Y        int    `json:"y"`
}

func (Note) TableName() string { return "notes" }

// Share is a locally hosted readonly snapshot, used when no edge worker is
// configured.
type Share struct {
	Key       string    `gorm:"primaryKey" json:"key"`
	CanvasID  uint      `json:"canvas_id"`
	Name      string    `json:"name"`
	HTML      string    `gorm:"type:text" json:"-"`
	CreatedAt time.Time `json:"created_at"`
}

func (Share) TableName() string { return "shares" }
