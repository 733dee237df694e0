package repository

import (
	"context"

	"gorm.io/gorm"

	"pinboard/internal/entity"
)

type shareRepository struct {
	db *gorm.DB
}

func NewShareRepository(db *gorm.DB) IShareRepository {
	return &shareRepository{db: db}
}

func (r *shareRepository) Create(ctx context.Context, s *entity.Share) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *shareRepository) FindByKey(ctx context.Context, key string) (*entity.Share, error) {
	var s entity.Share
	if err := r.db.WithContext(ctx).Where("key = ?", key).First(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}
