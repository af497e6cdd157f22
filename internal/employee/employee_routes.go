package employee

import (
	"github.com/haiphamkd/quanlynhansu/internal/middleware"
	"github.com/haiphamkd/quanlynhansu/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService rbac.Service) {
	employees := r.Group("/employees")
	employees.Use(middleware.AuthMiddleware())
	{
		// Roster read is open to every signed-in role (the attendance screen
		// needs it); management is admin/manager only.
		employees.GET("/roster", h.GetRoster)
		employees.GET("", middleware.RBACAuthorize(rbacService, "employees", "read"), h.GetAll)
		employees.GET("/:id", middleware.RBACAuthorize(rbacService, "employees", "read"), h.GetByID)
		employees.POST("", middleware.RBACAuthorize(rbacService, "employees", "write"), h.Create)
		employees.PUT("/:id", middleware.RBACAuthorize(rbacService, "employees", "write"), h.Update)
		employees.DELETE("/:id", middleware.RBACAuthorize(rbacService, "employees", "write"), h.Delete)
	}
}
