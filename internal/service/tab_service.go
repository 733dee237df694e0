package service

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"pinboard/internal/dto"
	"pinboard/internal/entity"
	"pinboard/internal/repository"
)

type ITabService interface {
	List(ctx context.Context, canvasID uint) ([]entity.Tab, error)
	Create(ctx context.Context, req *dto.CreateTabRequest) (*entity.Tab, error)
	Rename(ctx context.Context, id uint, name string) error
	Delete(ctx context.Context, id uint) (int64, error)
}

type tabService struct {
	tabs  repository.ITabRepository
	notes repository.INoteRepository
	log   *zap.Logger
}

func NewTabService(tabs repository.ITabRepository, notes repository.INoteRepository, log *zap.Logger) ITabService {
	return &tabService{tabs: tabs, notes: notes, log: log}
}

// List returns the canvas's tabs, creating the "default" tab on the fly for
// canvases that predate it.
func (s *tabService) List(ctx context.Context, canvasID uint) ([]entity.Tab, error) {
	tabs, err := s.tabs.FindByCanvas(ctx, canvasID)
	if err != nil {
		return nil, err
	}
	if len(tabs) == 0 {
		def := &entity.Tab{CanvasID: canvasID, Name: "default"}
		if err := s.tabs.Create(ctx, def); err != nil {
			return nil, err
		}
		tabs = []entity.Tab{*def}
	}
	return tabs, nil
}

func (s *tabService) Create(ctx context.Context, req *dto.CreateTabRequest) (*entity.Tab, error) {
	t := &entity.Tab{CanvasID: req.CanvasID, Name: req.Name}
	if err := s.tabs.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *tabService) Rename(ctx context.Context, id uint, name string) error {
	return s.tabs.Rename(ctx, id, name)
}

// Delete removes the tab and every note in it, reporting how many notes
// went with it. The last tab of a canvas cannot be deleted.
func (s *tabService) Delete(ctx context.Context, id uint) (int64, error) {
	t, err := s.tabs.FindByID(ctx, id)
	if err != nil {
		return 0, err
	}
	siblings, err := s.tabs.FindByCanvas(ctx, t.CanvasID)
	if err != nil {
		return 0, err
	}
	if len(siblings) <= 1 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "cannot delete the last tab of a canvas")
	}
	notesDeleted, err := s.notes.DeleteByTab(ctx, id)
	if err != nil {
		return 0, err
	}
	if err := s.tabs.Delete(ctx, id); err != nil {
		return notesDeleted, err
	}
	s.log.Info("tab deleted", zap.Uint("id", id), zap.Int64("notes_deleted", notesDeleted))
	return notesDeleted, nil
}
