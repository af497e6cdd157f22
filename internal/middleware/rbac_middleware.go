package middleware

import (
	"net/http"

	"github.com/haiphamkd/quanlynhansu/internal/rbac"
	"github.com/haiphamkd/quanlynhansu/internal/shared/response"

	"github.com/gin-gonic/gin"
)

// RBACAuthorize checks the session role against the static permission table.
func RBACAuthorize(service rbac.Service, resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString("role")
		if role == "" {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Thiếu thông tin phiên đăng nhập", nil)
			c.Abort()
			return
		}

		allowed, err := service.Enforce(rbac.EnforceRequest{
			Role:     role,
			Resource: resource,
			Action:   action,
		})
		if err != nil {
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Không thể kiểm tra quyền truy cập", nil)
			c.Abort()
			return
		}

		if !allowed {
			response.Error(c, http.StatusForbidden, "FORBIDDEN",
				"Bạn không có quyền thực hiện thao tác này", resource+":"+action)
			c.Abort()
			return
		}

		c.Next()
	}
}
