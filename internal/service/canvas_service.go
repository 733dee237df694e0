package service

import (
	"context"

	"go.uber.org/zap"

	"pinboard/internal/entity"
	"pinboard/internal/repository"
)

type ICanvasService interface {
	Create(ctx context.Context, name string) (*entity.Canvas, error)
	List(ctx context.Context) ([]entity.Canvas, error)
	Get(ctx context.Context, id uint) (*entity.Canvas, error)
	Rename(ctx context.Context, id uint, name string) error
	Delete(ctx context.Context, id uint) error
}

type canvasService struct {
	canvases repository.ICanvasRepository
	tabs     repository.ITabRepository
	notes    repository.INoteRepository
	log      *zap.Logger
}

func NewCanvasService(
	canvases repository.ICanvasRepository,
	tabs repository.ITabRepository,
	notes repository.INoteRepository,
	log *zap.Logger,
) ICanvasService {
	return &canvasService{canvases: canvases, tabs: tabs, notes: notes, log: log}
}

// Create makes the canvas and its "default" tab: every canvas owns at least
// one tab from birth.
func (s *canvasService) Create(ctx context.Context, name string) (*entity.Canvas, error) {
	c := &entity.Canvas{Name: name}
	if err := s.canvases.Create(ctx, c); err != nil {
		return nil, err
	}
	if err := s.tabs.Create(ctx, &entity.Tab{CanvasID: c.ID, Name: "default"}); err != nil {
		return nil, err
	}
	s.log.Info("canvas created", zap.Uint("id", c.ID), zap.String("name", name))
	return c, nil
}

func (s *canvasService) List(ctx context.Context) ([]entity.Canvas, error) {
	return s.canvases.FindAll(ctx)
}

func (s *canvasService) Get(ctx context.Context, id uint) (*entity.Canvas, error) {
	return s.canvases.FindByID(ctx, id)
}

func (s *canvasService) Rename(ctx context.Context, id uint, name string) error {
	return s.canvases.Rename(ctx, id, name)
}

// Delete cascades notes and tabs. No soft delete.
func (s *canvasService) Delete(ctx context.Context, id uint) error {
	if _, err := s.canvases.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.notes.DeleteByCanvas(ctx, id); err != nil {
		return err
	}
	if err := s.tabs.DeleteByCanvas(ctx, id); err != nil {
		return err
	}
	return s.canvases.Delete(ctx, id)
}
