package proposal

import (
	"github.com/haiphamkd/quanlynhansu/internal/middleware"
	"github.com/haiphamkd/quanlynhansu/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService rbac.Service) {
	proposals := r.Group("/proposals")
	proposals.Use(middleware.AuthMiddleware())
	{
		proposals.GET("", h.GetAll)
		proposals.GET("/:id", h.GetByID)
		proposals.POST("", h.Save)
		proposals.DELETE("/:id", middleware.RBACAuthorize(rbacService, "proposals", "write"), h.Delete)
	}
}
