package dropdown

import (
	"github.com/haiphamkd/quanlynhansu/internal/middleware"
	"github.com/haiphamkd/quanlynhansu/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService rbac.Service) {
	dropdowns := r.Group("/dropdowns")
	dropdowns.Use(middleware.AuthMiddleware())
	{
		dropdowns.GET("", h.GetAll)
		dropdowns.POST("", middleware.RBACAuthorize(rbacService, "dropdowns", "write"), h.Add)
		dropdowns.DELETE("/:id", middleware.RBACAuthorize(rbacService, "dropdowns", "write"), h.Delete)
	}
}
