package repository

import (
	"context"

	"gorm.io/gorm"

	"pinboard/internal/entity"
)

type canvasRepository struct {
	db *gorm.DB
}

func NewCanvasRepository(db *gorm.DB) ICanvasRepository {
	return &canvasRepository{db: db}
}

func (r *canvasRepository) Create(ctx context.Context, c *entity.Canvas) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *canvasRepository) FindAll(ctx context.Context) ([]entity.Canvas, error) {
	var out []entity.Canvas
	err := r.db.WithContext(ctx).Order("created_at").Find(&out).Error
	return out, err
}

func (r *canvasRepository) FindByID(ctx context.Context, id uint) (*entity.Canvas, error) {
	var c entity.Canvas
	if err := r.db.WithContext(ctx).First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *canvasRepository) Rename(ctx context.Context, id uint, name string) error {
	res := r.db.WithContext(ctx).Model(&entity.Canvas{}).Where("id = ?", id).Update("name", name)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *canvasRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&entity.Canvas{}, id).Error
}
