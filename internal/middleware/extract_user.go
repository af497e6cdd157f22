package middleware

import (
	"net/http"

	"github.com/haiphamkd/quanlynhansu/internal/shared/response"

	"github.com/gin-gonic/gin"
)

// ExtractUserID re-asserts that the auth middleware populated a usable user
// id, for handlers that read it directly.
func ExtractUserID() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := c.Get("user_id")
		if !exists {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Chưa đăng nhập", nil)
			c.Abort()
			return
		}

		userIDStr, ok := userID.(string)
		if !ok || userIDStr == "" {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Phiên đăng nhập không hợp lệ", nil)
			c.Abort()
			return
		}

		c.Set("user_id_validated", userIDStr)
		c.Next()
	}
}
