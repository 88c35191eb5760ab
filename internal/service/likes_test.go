package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/testigo-app/testigo-api/internal/model"
	"github.com/testigo-app/testigo-api/internal/repository"
)

func setupLikes(t *testing.T) (*LikeService, *gorm.DB, *miniredis.Miniredis) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&model.Post{}))

	mr := miniredis.RunT(t)
	cache := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { cache.Close() })

	return NewLikeService(repository.NewPostRepository(db), cache), db, mr
}

func TestLikeCountReadThrough(t *testing.T) {
	svc, db, mr := setupLikes(t)
	ctx := context.Background()

	p := &model.Post{Nombre: "ana", LikesCount: 3}
	require.NoError(t, db.Create(p).Error)

	n, err := svc.Count(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)

	cached, err := mr.Get(fmt.Sprintf("likes:%d", p.ID))
	require.NoError(t, err)
	assert.Equal(t, "3", cached)

	// 缓存命中时不再回源
	require.NoError(t, db.Model(p).Update("likes_count", 10).Error)
	n, err = svc.Count(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
}

func TestLikeAddRemoveRefreshCache(t *testing.T) {
	svc, db, mr := setupLikes(t)
	ctx := context.Background()

	p := &model.Post{Nombre: "ana", LikesCount: 1}
	require.NoError(t, db.Create(p).Error)
	key := fmt.Sprintf("likes:%d", p.ID)

	n, err := svc.Add(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
	cached, _ := mr.Get(key)
	assert.Equal(t, "2", cached)

	n, err = svc.Remove(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	cached, _ = mr.Get(key)
	assert.Equal(t, "1", cached)
}

func TestLikeServiceErrorsPassThrough(t *testing.T) {
	svc, _, _ := setupLikes(t)
	ctx := context.Background()

	_, err := svc.Add(ctx, 404)
	assert.ErrorIs(t, err, repository.ErrPostNoEncontrado)
	_, err = svc.Remove(ctx, 404)
	assert.ErrorIs(t, err, repository.ErrSinLikes)
	_, err = svc.Count(ctx, 404)
	assert.ErrorIs(t, err, repository.ErrPostNoEncontrado)
}

func TestLikeServiceWithoutCache(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&model.Post{}))

	svc := NewLikeService(repository.NewPostRepository(db), nil)
	p := &model.Post{Nombre: "ana"}
	require.NoError(t, db.Create(p).Error)

	n, err := svc.Add(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	n, err = svc.Count(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}
