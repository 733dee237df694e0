package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"pinboard/internal/entity"
)

type noteRepository struct {
	db *gorm.DB
}

func NewNoteRepository(db *gorm.DB) INoteRepository {
	return &noteRepository{db: db}
}

// Upsert is last-write-wins on the client-assigned id: there is no version
// column and no conflict resolution beyond replacing the row.
func (r *noteRepository) Upsert(ctx context.Context, n *entity.Note) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(n).Error
}

func (r *noteRepository) FindByCanvas(ctx context.Context, canvasID uint) ([]entity.Note, error) {
	var out []entity.Note
	err := r.db.WithContext(ctx).Where("canvas_id = ?", canvasID).Find(&out).Error
	return out, err
}

func (r *noteRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Note{}).Error
}

func (r *noteRepository) DeleteByTab(ctx context.Context, tabID uint) (int64, error) {
	res := r.db.WithContext(ctx).Where("tab_id = ?", tabID).Delete(&entity.Note{})
	return res.RowsAffected, res.Error
}

func (r *noteRepository) DeleteByCanvas(ctx context.Context, canvasID uint) error {
	return r.db.WithContext(ctx).Where("canvas_id = ?", canvasID).Delete(&entity.Note{}).Error
}
