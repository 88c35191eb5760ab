package handler

import (
	"github.com/testigo-app/testigo-api/internal/repository"
	"github.com/testigo-app/testigo-api/internal/service"
	"github.com/testigo-app/testigo-api/pkg/database"
)

// Handler 聚合各资源的请求处理器依赖
type Handler struct {
	store    *database.Store
	users    repository.UserRepository
	stories  repository.StoryRepository
	posts    repository.PostRepository
	comments repository.CommentRepository
	likes    *service.LikeService
	media    *service.MediaGate
}

func New(
	store *database.Store,
	users repository.UserRepository,
	stories repository.StoryRepository,
	posts repository.PostRepository,
	comments repository.CommentRepository,
	likes *service.LikeService,
	media *service.MediaGate,
) *Handler {
	return &Handler{
		store:    store,
		users:    users,
		stories:  stories,
		posts:    posts,
		comments: comments,
		likes:    likes,
		media:    media,
	}
}
