package repository

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/testigo-app/testigo-api/internal/model"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	// 单连接，保证内存库共享且写入串行
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&model.User{}, &model.Story{}, &model.Post{}, &model.Comment{}))
	return db
}

func seedPost(t *testing.T, db *gorm.DB, likes int64) *model.Post {
	t.Helper()
	p := &model.Post{Nombre: "ana", Contenido: "hola", AutorID: 1, LikesCount: likes}
	require.NoError(t, db.Create(p).Error)
	return p
}

func TestIncrementLikes(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	p := seedPost(t, db, 3)

	n, err := repo.IncrementLikes(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(4), n)

	_, err = repo.IncrementLikes(ctx, 9999)
	assert.ErrorIs(t, err, ErrPostNoEncontrado)
}

func TestDecrementLikesFloor(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	p := seedPost(t, db, 0)

	_, err := repo.DecrementLikes(ctx, p.ID)
	assert.ErrorIs(t, err, ErrSinLikes)

	n, err := repo.GetLikes(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), n, "failed decrement must not touch the counter")

	// post 不存在与计数为 0 走同一信号
	_, err = repo.DecrementLikes(ctx, 9999)
	assert.ErrorIs(t, err, ErrSinLikes)

	n, err = repo.IncrementLikes(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestGetLikesMissingPost(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)

	_, err := repo.GetLikes(context.Background(), 42)
	assert.ErrorIs(t, err, ErrPostNoEncontrado)
}

func TestConcurrentDecrementsNeverGoNegative(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	const initial = 5
	const attempts = 20
	p := seedPost(t, db, initial)

	var wg sync.WaitGroup
	results := make(chan error, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.DecrementLikes(ctx, p.ID)
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	succeeded := 0
	for err := range results {
		if err == nil {
			succeeded++
		} else {
			assert.ErrorIs(t, err, ErrSinLikes)
		}
	}
	assert.Equal(t, initial, succeeded, "exactly one decrement per available like")

	n, err := repo.GetLikes(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)
}

func TestListPostsNewestFirst(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	first := seedPost(t, db, 0)
	second := seedPost(t, db, 0)

	rows, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, second.ID, rows[0].ID)
	assert.Equal(t, first.ID, rows[1].ID)
}
