package dto

type CreateCanvasRequest struct {
	Name string `json:"name" validate:"required"`
}

type RenameCanvasRequest struct {
	Name string `json:"name" validate:"required"`
}

type CreateTabRequest struct {
	CanvasID uint   `json:"canvas_id" validate:"required"`
	Name     string `json:"name" validate:"required"`
}

type RenameTabRequest struct {
	Name string `json:"name" validate:"required"`
}

// SaveNoteRequest is an upsert: the client owns the id.
type SaveNoteRequest struct {
	ID       string `json:"id" validate:"required"`
	CanvasID uint   `json:"canvas_id" validate:"required"`
	TabID    uint   `json:"tab_id"`
	Text     string `json:"text"`
	X        int    `json:"x"`
	Y        int    `json:"y"`
}

type ShareRequest struct {
	CanvasID    uint   `json:"canvasId" validate:"required"`
	Name        string `json:"name" validate:"required"`
	HTMLContent string `json:"htmlContent" validate:"required"`
}

type ShareResponse struct {
	ShareURL string `json:"shareUrl"`
}

type UploadResponse struct {
	ImageURL string `json:"imageUrl"`
}

type DeleteTabResponse struct {
	NotesDeleted int64 `json:"notesDeleted"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
