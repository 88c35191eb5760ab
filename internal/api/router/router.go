package router

import (
	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/testigo-app/testigo-api/config"
	"github.com/testigo-app/testigo-api/internal/api/handler"
	"github.com/testigo-app/testigo-api/internal/api/middleware"
	"github.com/testigo-app/testigo-api/pkg/database"
)

// New 装配引擎：中间件、/uploads 静态服务与路由表
func New(cfg *config.Config, h *handler.Handler, store *database.Store) *gin.Engine {
	gin.SetMode(ginMode(cfg.Server.Mode))

	r := gin.New()
	r.Use(gin.Recovery())
	// 前端契约：全开的 CORS
	r.Use(cors.Default())
	r.Use(gzip.Gzip(gzip.DefaultCompression))
	if cfg.Tracing.Endpoint != "" {
		r.Use(otelgin.Middleware("testigo-api"))
	}
	if cfg.Sentry.DSN != "" {
		r.Use(sentrygin.New(sentrygin.Options{Repanic: true}))
	}

	r.Static("/uploads", cfg.Uploads.Dir)

	// 根路由绕过网关，实时上报连通性
	r.GET("/", h.Health)

	api := r.Group("", middleware.RequireDB(store))
	{
		api.GET("/usuarios", h.ListUsers)
		api.GET("/usuario", h.GetUser)
		api.POST("/login", h.Login)

		api.GET("/historias", h.ListStories)
		api.POST("/crearhistoria", h.CreateStory)
		api.POST("/cambiarPerfil", h.UpdateProfileImage)
		api.POST("/cambiarPortada", h.UpdateCoverImage)

		api.POST("/insertarPost", h.CreatePost)
		api.GET("/optenerPost", h.ListPosts)

		api.POST("/likes", h.AddLike)
		api.POST("/eliminaLike", h.RemoveLike)
		api.GET("/likes/:idPost", h.GetLikes)

		api.POST("/comentarios", h.AddComment)
	}

	return r
}

func ginMode(mode string) string {
	if mode == "release" {
		return gin.ReleaseMode
	}
	return gin.DebugMode
}
