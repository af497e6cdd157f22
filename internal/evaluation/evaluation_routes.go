package evaluation

import (
	"github.com/haiphamkd/quanlynhansu/internal/middleware"
	"github.com/haiphamkd/quanlynhansu/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService rbac.Service) {
	evaluations := r.Group("/evaluations")
	evaluations.Use(middleware.AuthMiddleware())
	evaluations.Use(middleware.RBACAuthorize(rbacService, "evaluations", "read"))
	{
		evaluations.GET("", h.GetAll)
		evaluations.POST("", middleware.RBACAuthorize(rbacService, "evaluations", "write"), h.Create)
		evaluations.DELETE("/:id", middleware.RBACAuthorize(rbacService, "evaluations", "write"), h.Delete)
	}
}
