package middleware

import (
	"Ripple/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// CheckAdmin 仅放行管理员
func CheckAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !c.GetBool("is_admin") {
			response.Fail(c, response.Forbidden, "权限不足：无权访问该资源")
			c.Abort()
			return
		}

		c.Next()
	}
}
