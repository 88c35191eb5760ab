package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// The API keeps the wire shapes of the original frontend contract:
// mutations answer a {success, message, data} envelope, like endpoints
// answer {success, likes_count}, list endpoints answer raw arrays.

// OK 操作成功，带 data
func OK(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": message,
		"data":    data,
	})
}

// OKLikes 点赞成功，返回最新计数
func OKLikes(c *gin.Context, message string, count int64) {
	h := gin.H{"success": true, "likes_count": count}
	if message != "" {
		h["message"] = message
	}
	c.JSON(http.StatusOK, h)
}

// Response 失败响应的统一结构
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Fail 业务失败
func Fail(c *gin.Context, status int, message string) {
	c.JSON(status, Response{Success: false, Message: message})
}

func BadRequest(c *gin.Context, message string) { Fail(c, http.StatusBadRequest, message) }

func Unauthorized(c *gin.Context, message string) { Fail(c, http.StatusUnauthorized, message) }

func NotFound(c *gin.Context, message string) { Fail(c, http.StatusNotFound, message) }

// InternalError 未预期错误；详情拼进 message 便于排查
func InternalError(c *gin.Context, err error) {
	Fail(c, http.StatusInternalServerError, "Error en el servidor: "+err.Error())
}

// ListError 列表查询失败的 {error} 形态
func ListError(c *gin.Context, message string) {
	c.JSON(http.StatusInternalServerError, gin.H{"error": message})
}

// Unavailable 仓储不可用时的统一响应
func Unavailable(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusInternalServerError,
		gin.H{"message": "Error de conexión con la base de datos"})
}
