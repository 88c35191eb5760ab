package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/testigo-app/testigo-api/internal/model"
)

type CommentRepository interface {
	// Create 追加评论；不校验 post_id 是否存在（与前端契约一致）
	Create(ctx context.Context, comment *model.Comment) error
}

type commentRepository struct{ db *gorm.DB }

func NewCommentRepository(db *gorm.DB) CommentRepository { return &commentRepository{db: db} }

func (r *commentRepository) Create(ctx context.Context, comment *model.Comment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}
