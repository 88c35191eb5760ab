package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/testigo-app/testigo-api/internal/model"
)

type StoryRepository interface {
	Create(ctx context.Context, idUsuario int64, contenido string) (*model.Story, error)
	// List 按 id 倒序（最新优先）
	List(ctx context.Context) ([]*model.Story, error)
}

type storyRepository struct{ db *gorm.DB }

func NewStoryRepository(db *gorm.DB) StoryRepository { return &storyRepository{db: db} }

func (r *storyRepository) Create(ctx context.Context, idUsuario int64, contenido string) (*model.Story, error) {
	s := &model.Story{IDUsuario: idUsuario, Contenido: contenido}
	if err := r.db.WithContext(ctx).Create(s).Error; err != nil {
		return nil, err
	}
	return s, nil
}

func (r *storyRepository) List(ctx context.Context) ([]*model.Story, error) {
	var res []*model.Story
	err := r.db.WithContext(ctx).Order("id DESC").Find(&res).Error
	return res, err
}
