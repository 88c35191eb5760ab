package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/testigo-app/testigo-api/internal/repository"
	"github.com/testigo-app/testigo-api/pkg/logger"
)

// LikeService 点赞计数；仓储为权威，redis 仅做读缓存。
// cache 为 nil 时直接透传仓储。
type LikeService struct {
	posts repository.PostRepository
	cache *redis.Client
	ttl   time.Duration
}

func NewLikeService(posts repository.PostRepository, cache *redis.Client) *LikeService {
	return &LikeService{posts: posts, cache: cache, ttl: 5 * time.Minute}
}

// Add 自增并刷新缓存；post 不存在返回 repository.ErrPostNoEncontrado
func (s *LikeService) Add(ctx context.Context, postID int64) (int64, error) {
	n, err := s.posts.IncrementLikes(ctx, postID)
	if err != nil {
		return 0, err
	}
	s.cacheSet(ctx, postID, n)
	return n, nil
}

// Remove 带地板约束自减；无可删返回 repository.ErrSinLikes
func (s *LikeService) Remove(ctx context.Context, postID int64) (int64, error) {
	n, err := s.posts.DecrementLikes(ctx, postID)
	if err != nil {
		return 0, err
	}
	s.cacheSet(ctx, postID, n)
	return n, nil
}

// Count 读缓存，未命中回源并回填
func (s *LikeService) Count(ctx context.Context, postID int64) (int64, error) {
	if s.cache != nil {
		if v, err := s.cache.Get(ctx, likeKey(postID)).Result(); err == nil {
			if n, pErr := strconv.ParseInt(v, 10, 64); pErr == nil {
				return n, nil
			}
		}
	}
	n, err := s.posts.GetLikes(ctx, postID)
	if err != nil {
		return 0, err
	}
	s.cacheSet(ctx, postID, n)
	return n, nil
}

func (s *LikeService) cacheSet(ctx context.Context, postID, n int64) {
	if s.cache == nil {
		return
	}
	// 缓存失败不影响请求结果
	if err := s.cache.Set(ctx, likeKey(postID), n, s.ttl).Err(); err != nil {
		logger.Debug("likes cache set failed", zap.Int64("post", postID), zap.Error(err))
	}
}

func likeKey(postID int64) string { return fmt.Sprintf("likes:%d", postID) }
