package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/testigo-app/testigo-api/pkg/database"
	"github.com/testigo-app/testigo-api/pkg/response"
)

// RequireDB 可用性网关：仓储不可达时统一短路，不让底层错误外漏。
// 逐请求探活，连接恢复后无需重启即可放行。
func RequireDB(store *database.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !store.Healthy(c.Request.Context()) {
			response.Unavailable(c)
			return
		}
		c.Next()
	}
}
