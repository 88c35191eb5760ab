package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/testigo-app/testigo-api/internal/repository"
	"github.com/testigo-app/testigo-api/pkg/logger"
	"github.com/testigo-app/testigo-api/pkg/response"
)

type likeRequest struct {
	IDPost int64 `json:"idPost" binding:"required"`
}

// AddLike 自增点赞计数
// @Summary 点赞
// @Accept json
// @Produce json
// @Param request body likeRequest true "post id"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} response.Response
// @Router /likes [post]
func (h *Handler) AddLike(c *gin.Context) {
	var req likeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	n, err := h.likes.Add(c.Request.Context(), req.IDPost)
	if errors.Is(err, repository.ErrPostNoEncontrado) {
		response.NotFound(c, "Post no encontrado")
		return
	}
	if err != nil {
		logger.Error("add like", zap.Int64("post", req.IDPost), zap.Error(err))
		response.Fail(c, http.StatusInternalServerError, "Error en el servidor")
		return
	}
	response.OKLikes(c, "Like agregado exitosamente", n)
}

// RemoveLike 自减点赞计数，不会越过 0
// @Summary 取消点赞
// @Accept json
// @Produce json
// @Param request body likeRequest true "post id"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} response.Response
// @Router /eliminaLike [post]
func (h *Handler) RemoveLike(c *gin.Context) {
	var req likeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	n, err := h.likes.Remove(c.Request.Context(), req.IDPost)
	if errors.Is(err, repository.ErrSinLikes) {
		response.BadRequest(c, "No hay likes para eliminar")
		return
	}
	if err != nil {
		logger.Error("remove like", zap.Int64("post", req.IDPost), zap.Error(err))
		response.Fail(c, http.StatusInternalServerError, "Error en el servidor")
		return
	}
	response.OKLikes(c, "Like eliminado exitosamente", n)
}

// GetLikes 当前计数
// @Summary 点赞计数
// @Param idPost path int true "post id"
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} response.Response
// @Router /likes/{idPost} [get]
func (h *Handler) GetLikes(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("idPost"), 10, 64)
	if err != nil {
		response.NotFound(c, "Post no encontrado")
		return
	}
	n, err := h.likes.Count(c.Request.Context(), id)
	if errors.Is(err, repository.ErrPostNoEncontrado) {
		response.NotFound(c, "Post no encontrado")
		return
	}
	if err != nil {
		logger.Error("get likes", zap.Int64("post", id), zap.Error(err))
		response.Fail(c, http.StatusInternalServerError, "Error en el servidor")
		return
	}
	response.OKLikes(c, "", n)
}
