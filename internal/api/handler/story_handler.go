package handler

import (
	"context"
	"errors"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/testigo-app/testigo-api/internal/model"
	"github.com/testigo-app/testigo-api/internal/repository"
	"github.com/testigo-app/testigo-api/internal/service"
	"github.com/testigo-app/testigo-api/pkg/logger"
	"github.com/testigo-app/testigo-api/pkg/response"
)

// ListStories 历史列表，最新优先
// @Summary 历史列表
// @Produce json
// @Success 200 {array} model.Story
// @Failure 500 {object} map[string]string
// @Router /historias [get]
func (h *Handler) ListStories(c *gin.Context) {
	rows, err := h.stories.List(c.Request.Context())
	if err != nil {
		logger.Error("list stories", zap.Error(err))
		response.ListError(c, "Error al obtener historias")
		return
	}
	c.JSON(http.StatusOK, rows)
}

// CreateStory 上传媒体并插入一条历史
// @Summary 发布历史
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "图片"
// @Param idUser formData int true "账号 id"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} response.Response
// @Router /crearhistoria [post]
func (h *Handler) CreateStory(c *gin.Context) {
	fh, idUser, ok := h.bindUpload(c)
	if !ok {
		return
	}
	path, ok := h.saveUpload(c, fh)
	if !ok {
		return
	}
	story, err := h.stories.Create(c.Request.Context(), idUser, path)
	if err != nil {
		logger.Error("create story", zap.Int64("user", idUser), zap.Error(err))
		response.InternalError(c, err)
		return
	}
	response.OK(c, "Historia subida exitosamente", story)
}

// UpdateProfileImage 换头像
// @Summary 更新头像
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "图片"
// @Param idUser formData int true "账号 id"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} response.Response
// @Router /cambiarPerfil [post]
func (h *Handler) UpdateProfileImage(c *gin.Context) {
	h.updateUserImage(c, "Foto perfil subida correctamente", h.users.UpdateFotoPerfil)
}

// UpdateCoverImage 换封面
// @Summary 更新封面
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "图片"
// @Param idUser formData int true "账号 id"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} response.Response
// @Router /cambiarPortada [post]
func (h *Handler) UpdateCoverImage(c *gin.Context) {
	h.updateUserImage(c, "Foto portada subida correctamente", h.users.UpdateImgPortada)
}

type userImageUpdate func(ctx context.Context, id int64, path string) (*model.User, error)

func (h *Handler) updateUserImage(c *gin.Context, okMessage string, update userImageUpdate) {
	fh, idUser, ok := h.bindUpload(c)
	if !ok {
		return
	}
	path, ok := h.saveUpload(c, fh)
	if !ok {
		return
	}
	u, err := update(c.Request.Context(), idUser, path)
	if errors.Is(err, repository.ErrUsuarioNoEncontrado) {
		// 保留原始契约：无匹配行回笼统失败，而非 404
		response.BadRequest(c, "No se pudo realizar la operación")
		return
	}
	if err != nil {
		logger.Error("update user image", zap.Int64("user", idUser), zap.Error(err))
		response.InternalError(c, err)
		return
	}
	response.OK(c, okMessage, u)
}

// bindUpload 取出必填的 file + idUser；失败时已写响应
func (h *Handler) bindUpload(c *gin.Context) (*multipart.FileHeader, int64, bool) {
	fh, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "No se recibió ningún archivo o el formato no es válido")
		return nil, 0, false
	}
	idUser, err := strconv.ParseInt(c.PostForm("idUser"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Se requiere el id_usuario")
		return nil, 0, false
	}
	return fh, idUser, true
}

// saveUpload 走媒体闸门；校验失败回 400，落盘失败回 500
func (h *Handler) saveUpload(c *gin.Context, fh *multipart.FileHeader) (string, bool) {
	path, err := h.media.Save(fh)
	if errors.Is(err, service.ErrTipoNoPermitido) || errors.Is(err, service.ErrArchivoMuyGrande) {
		response.BadRequest(c, err.Error())
		return "", false
	}
	if err != nil {
		logger.Error("save upload", zap.String("file", fh.Filename), zap.Error(err))
		response.InternalError(c, err)
		return "", false
	}
	return path, true
}
