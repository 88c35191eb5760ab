package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/testigo-app/testigo-api/internal/model"
	"github.com/testigo-app/testigo-api/pkg/logger"
)

// CreatePost 插入 post；图片可选，不校验作者存在
// @Summary 发布 post
// @Accept multipart/form-data
// @Produce json
// @Param txt formData string false "正文"
// @Param id formData int false "作者 id"
// @Param nombreUser formData string false "作者展示名"
// @Param file formData file false "图片"
// @Success 200 {object} map[string]interface{}
// @Router /insertarPost [post]
func (h *Handler) CreatePost(c *gin.Context) {
	var autorID int64
	if s := c.PostForm("id"); s != "" {
		v, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			c.String(http.StatusInternalServerError, "Error en el servidor")
			return
		}
		autorID = v
	}

	var imagenURL *string
	if fh, err := c.FormFile("file"); err == nil {
		path, ok := h.saveUpload(c, fh)
		if !ok {
			return
		}
		imagenURL = &path
	}

	post := &model.Post{
		Nombre:    c.PostForm("nombreUser"),
		Contenido: c.PostForm("txt"),
		AutorID:   autorID,
		ImagenURL: imagenURL,
	}
	if err := h.posts.Create(c.Request.Context(), post); err != nil {
		logger.Error("create post", zap.Int64("autor", autorID), zap.Error(err))
		c.String(http.StatusInternalServerError, "Error en el servidor")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Post creado exitosamente",
		"data":    post,
	})
}

// ListPosts post 列表，最新优先
// @Summary post 列表
// @Produce json
// @Success 200 {array} model.Post
// @Router /optenerPost [get]
func (h *Handler) ListPosts(c *gin.Context) {
	rows, err := h.posts.List(c.Request.Context())
	if err != nil {
		logger.Error("list posts", zap.Error(err))
		c.String(http.StatusInternalServerError, "Error en el servidor")
		return
	}
	c.JSON(http.StatusOK, rows)
}
