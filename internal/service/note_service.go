package service

import (
	"context"

	"go.uber.org/zap"

	"pinboard/internal/dto"
	"pinboard/internal/entity"
	"pinboard/internal/repository"
)

type INoteService interface {
	Save(ctx context.Context, req *dto.SaveNoteRequest) error
	List(ctx context.Context, canvasID uint) ([]entity.Note, error)
	Delete(ctx context.Context, id string) error
}

type noteService struct {
	notes repository.INoteRepository
	log   *zap.Logger
}

func NewNoteService(notes repository.INoteRepository, log *zap.Logger) INoteService {
	return &noteService{notes: notes, log: log}
}

func (s *noteService) Save(ctx context.Context, req *dto.SaveNoteRequest) error {
	return s.notes.Upsert(ctx, &entity.Note{
		ID:       req.ID,
		CanvasID: req.CanvasID,
		TabID:    req.TabID,
		Text:     req.Text,
		X:        req.X,
		Y:        req.Y,
	})
}

func (s *noteService) List(ctx context.Context, canvasID uint) ([]entity.Note, error) {
	return s.notes.FindByCanvas(ctx, canvasID)
}

// Delete is idempotent: deleting an already-gone note is not an error, the
// client may race a save against a delete.
func (s *noteService) Delete(ctx context.Context, id string) error {
	return s.notes.Delete(ctx, id)
}
