package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/testigo-app/testigo-api/config"
	"github.com/testigo-app/testigo-api/internal/api/handler"
	"github.com/testigo-app/testigo-api/internal/api/router"
	"github.com/testigo-app/testigo-api/internal/model"
	"github.com/testigo-app/testigo-api/internal/repository"
	"github.com/testigo-app/testigo-api/internal/service"
	"github.com/testigo-app/testigo-api/pkg/database"
	"github.com/testigo-app/testigo-api/pkg/logger"
	"github.com/testigo-app/testigo-api/pkg/tracing"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	if err := logger.Init(cfg.Server.Mode); err != nil {
		panic(err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.Sentry.DSN != "" {
		if err := sentry.Init(sentry.ClientOptions{Dsn: cfg.Sentry.DSN}); err != nil {
			logger.Warn("sentry init failed", zap.Error(err))
		} else {
			defer sentry.Flush(2 * time.Second)
		}
	}

	if cfg.Tracing.Endpoint != "" {
		shutdown, err := tracing.Init(ctx, cfg.Tracing.Endpoint, "testigo-api")
		if err != nil {
			logger.Warn("tracing init failed", zap.Error(err))
		} else {
			defer shutdown(context.Background())
		}
	}

	// 连接失败不退出：可用性网关逐请求短路，恢复后自动放行
	db, err := database.InitDB(cfg)
	if err != nil {
		logger.Error("database connection failed, serving degraded", zap.Error(err))
		db = nil
	}
	store := database.NewStore(db)
	defer store.Close()

	if db != nil {
		if err := db.AutoMigrate(&model.User{}, &model.Story{}, &model.Post{}, &model.Comment{}); err != nil {
			logger.Error("auto migrate failed", zap.Error(err))
		}
	}

	var cache *redis.Client
	if cfg.Redis.Addr != "" {
		cache = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer cache.Close()
	}

	media, err := service.NewMediaGate(cfg.Uploads.Dir, cfg.Uploads.MaxSize)
	if err != nil {
		logger.Fatal("media gate init failed", zap.Error(err))
	}

	userRepo := repository.NewUserRepository(db)
	storyRepo := repository.NewStoryRepository(db)
	postRepo := repository.NewPostRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	likes := service.NewLikeService(postRepo, cache)

	h := handler.New(store, userRepo, storyRepo, postRepo, commentRepo, likes, media)
	engine := router.New(cfg, h, store)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: engine,
	}

	go func() {
		logger.Info("server listening", zap.Int("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("listen failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown", zap.Error(err))
	}
}
