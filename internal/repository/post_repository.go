package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/testigo-app/testigo-api/internal/model"
)

type PostRepository interface {
	Create(ctx context.Context, post *model.Post) error
	// List 按 id 倒序（最新优先）
	List(ctx context.Context) ([]*model.Post, error)
	// IncrementLikes 单条原子自增；post 不存在返回 ErrPostNoEncontrado
	IncrementLikes(ctx context.Context, id int64) (int64, error)
	// DecrementLikes 单条原子自减，条件含 likes_count > 0 地板约束；
	// 计数为 0 或 post 不存在均返回 ErrSinLikes
	DecrementLikes(ctx context.Context, id int64) (int64, error)
	GetLikes(ctx context.Context, id int64) (int64, error)
}

type postRepository struct{ db *gorm.DB }

func NewPostRepository(db *gorm.DB) PostRepository { return &postRepository{db: db} }

func (r *postRepository) Create(ctx context.Context, post *model.Post) error {
	return r.db.WithContext(ctx).Create(post).Error
}

func (r *postRepository) List(ctx context.Context) ([]*model.Post, error) {
	var res []*model.Post
	err := r.db.WithContext(ctx).Order("id DESC").Find(&res).Error
	return res, err
}

func (r *postRepository) IncrementLikes(ctx context.Context, id int64) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&model.Post{}).
		Where("id = ?", id).
		UpdateColumn("likes_count", gorm.Expr("likes_count + 1"))
	if res.Error != nil {
		return 0, res.Error
	}
	if res.RowsAffected == 0 {
		return 0, ErrPostNoEncontrado
	}
	return r.GetLikes(ctx, id)
}

func (r *postRepository) DecrementLikes(ctx context.Context, id int64) (int64, error) {
	// 检查与变更在同一条语句内完成，并发下不会越过 0
	res := r.db.WithContext(ctx).
		Model(&model.Post{}).
		Where("id = ? AND likes_count > 0", id).
		UpdateColumn("likes_count", gorm.Expr("likes_count - 1"))
	if res.Error != nil {
		return 0, res.Error
	}
	if res.RowsAffected == 0 {
		return 0, ErrSinLikes
	}
	return r.GetLikes(ctx, id)
}

func (r *postRepository) GetLikes(ctx context.Context, id int64) (int64, error) {
	var p model.Post
	err := r.db.WithContext(ctx).
		Select("likes_count").
		Where("id = ?", id).
		First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, ErrPostNoEncontrado
	}
	if err != nil {
		return 0, err
	}
	return p.LikesCount, nil
}
