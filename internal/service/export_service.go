package service

import (
	"context"

	"pinboard/internal/export"
	"pinboard/internal/repository"
)

type IExportService interface {
	PNG(ctx context.Context, canvasID uint) ([]byte, error)
}

type exportService struct {
	canvases repository.ICanvasRepository
	notes    repository.INoteRepository
}

func NewExportService(canvases repository.ICanvasRepository, notes repository.INoteRepository) IExportService {
	return &exportService{canvases: canvases, notes: notes}
}

func (s *exportService) PNG(ctx context.Context, canvasID uint) ([]byte, error) {
	if _, err := s.canvases.FindByID(ctx, canvasID); err != nil {
		return nil, err
	}
	notes, err := s.notes.FindByCanvas(ctx, canvasID)
	if err != nil {
		return nil, err
	}
	return export.RenderPNG(notes)
}
