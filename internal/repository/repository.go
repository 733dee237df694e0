// Package repository is the GORM data-access layer over the SQLite store.
package repository

import (
	"context"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"pinboard/internal/entity"
)

// NewDB opens (creating if needed) the SQLite database and migrates the
// schema. Use ":memory:" for tests.
func NewDB(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(
		&entity.Canvas{},
		&entity.Tab{},
		&entity.Note{},
		&entity.Share{},
	); err != nil {
		return nil, err
	}
	return db, nil
}

type ICanvasRepository interface {
	Create(ctx context.Context, c *entity.Canvas) error
	FindAll(ctx context.Context) ([]entity.Canvas, error)
	FindByID(ctx context.Context, id uint) (*entity.Canvas, error)
	Rename(ctx context.Context, id uint, name string) error
	Delete(ctx context.Context, id uint) error
}

type ITabRepository interface {
	Create(ctx context.Context, t *entity.Tab) error
	FindByCanvas(ctx context.Context, canvasID uint) ([]entity.Tab, error)
	FindByID(ctx context.Context, id uint) (*entity.Tab, error)
	Rename(ctx context.Context, id uint, name string) error
	Delete(ctx context.Context, id uint) error
	DeleteByCanvas(ctx context.Context, canvasID uint) error
}

type INoteRepository interface {
	Upsert(ctx context.Context, n *entity.Note) error
	FindByCanvas(ctx context.Context, canvasID uint) ([]entity.Note, error)
	Delete(ctx context.Context, id string) error
	DeleteByTab(ctx context.Context, tabID uint) (int64, error)
	DeleteByCanvas(ctx context.Context, canvasID uint) error
}

type IShareRepository interface {
	Create(ctx context.Context, s *entity.Share) error
	FindByKey(ctx context.Context, key string) (*entity.Share, error)
}
