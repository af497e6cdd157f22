package report

import (
	"github.com/haiphamkd/quanlynhansu/internal/middleware"
	"github.com/haiphamkd/quanlynhansu/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService rbac.Service) {
	reports := r.Group("/reports")
	reports.Use(middleware.AuthMiddleware())
	{
		reports.GET("", h.GetAll)
		reports.GET("/:id", h.GetByID)
		reports.POST("", h.Save)
		reports.DELETE("/:id", middleware.RBACAuthorize(rbacService, "reports", "write"), h.Delete)
	}
}
