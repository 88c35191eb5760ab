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

type loginRequest struct {
	Correo string `json:"correo"`
	Clave  string `json:"clave"`
}

// ListUsers 全部账号
// @Summary 账号列表
// @Produce json
// @Success 200 {array} model.User
// @Failure 500 {object} map[string]string
// @Router /usuarios [get]
func (h *Handler) ListUsers(c *gin.Context) {
	rows, err := h.users.List(c.Request.Context())
	if err != nil {
		logger.Error("list users", zap.Error(err))
		response.ListError(c, "Error al obtener usuarios")
		return
	}
	c.JSON(http.StatusOK, rows)
}

// GetUser 按 id 查询单个账号，返回 0/1 行数组
// @Summary 账号查询
// @Param id query int true "账号 id"
// @Produce json
// @Success 200 {array} model.User
// @Router /usuario [get]
func (h *Handler) GetUser(c *gin.Context) {
	id, err := strconv.ParseInt(c.Query("id"), 10, 64)
	if err != nil {
		c.String(http.StatusInternalServerError, "Error en el servidor")
		return
	}
	rows, err := h.users.GetByID(c.Request.Context(), id)
	if err != nil {
		logger.Error("get user", zap.Int64("id", id), zap.Error(err))
		c.String(http.StatusInternalServerError, "Error en el servidor")
		return
	}
	c.JSON(http.StatusOK, rows)
}

// Login 凭据逐字比对，命中返回最小身份载荷
// @Summary 登录
// @Accept json
// @Produce json
// @Param request body loginRequest true "凭据"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /login [post]
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Correo == "" || req.Clave == "" {
		response.BadRequest(c, "Correo y clave son requeridos")
		return
	}
	u, err := h.users.FindByCredentials(c.Request.Context(), req.Correo, req.Clave)
	if errors.Is(err, repository.ErrCredenciales) {
		response.Unauthorized(c, "Credenciales incorrectas")
		return
	}
	if err != nil {
		logger.Error("login", zap.Error(err))
		response.Fail(c, http.StatusInternalServerError, "Error en el servidor")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"user":    gin.H{"id": u.ID, "correo": u.Correo},
	})
}
