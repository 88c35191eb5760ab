package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/testigo-app/testigo-api/internal/model"
	"github.com/testigo-app/testigo-api/pkg/logger"
	"github.com/testigo-app/testigo-api/pkg/response"
)

type commentRequest struct {
	IDPost     int64  `json:"idPost"`
	Nombre     string `json:"nombre"`
	Comentario string `json:"comentario"`
}

// AddComment 追加评论；三个字段缺一不可，校验先于写入
// @Summary 评论
// @Accept json
// @Produce json
// @Param request body commentRequest true "评论"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} response.Response
// @Router /comentarios [post]
func (h *Handler) AddComment(c *gin.Context) {
	var req commentRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.IDPost == 0 || req.Nombre == "" || req.Comentario == "" {
		response.BadRequest(c, "Se requiere el id del post, nombre y comentario")
		return
	}
	comment := &model.Comment{
		PostID:     req.IDPost,
		Nombre:     req.Nombre,
		Comentario: req.Comentario,
	}
	if err := h.comments.Create(c.Request.Context(), comment); err != nil {
		logger.Error("add comment", zap.Int64("post", req.IDPost), zap.Error(err))
		response.Fail(c, http.StatusInternalServerError, "Error en el servidor")
		return
	}
	response.OK(c, "Comentario agregado exitosamente", comment)
}
