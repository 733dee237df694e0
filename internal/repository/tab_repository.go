package repository

import (
	"context"

	"gorm.io/gorm"

	"pinboard/internal/entity"
)

type tabRepository struct {
	db *gorm.DB
}

func NewTabRepository(db *gorm.DB) ITabRepository {
	return &tabRepository{db: db}
}

func (r *tabRepository) Create(ctx context.Context, t *entity.Tab) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *tabRepository) FindByCanvas(ctx context.Context, canvasID uint) ([]entity.Tab, error) {
	var out []entity.Tab
	err := r.db.WithContext(ctx).
		Where("canvas_id = ?", canvasID).
		Order("sort_order, name desc").
		Find(&out).Error
	return out, err
}

func (r *tabRepository) FindByID(ctx context.Context, id uint) (*entity.Tab, error) {
	var t entity.Tab
	if err := r.db.WithContext(ctx).First(&t, id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *tabRepository) Rename(ctx context.Context, id uint, name string) error {
	res := r.db.WithContext(ctx).Model(&entity.Tab{}).Where("id = ?", id).Update("name", name)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *tabRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&entity.Tab{}, id).Error
}

func (r *tabRepository) DeleteByCanvas(ctx context.Context, canvasID uint) error {
	return r.db.WithContext(ctx).Where("canvas_id = ?", canvasID).Delete(&entity.Tab{}).Error
}
