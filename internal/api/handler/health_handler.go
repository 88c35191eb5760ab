package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Health 探活；绕过可用性网关，连通性实时上报
// @Summary 服务状态
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router / [get]
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":      "ok",
		"dbConnected": h.store.Healthy(c.Request.Context()),
	})
}
