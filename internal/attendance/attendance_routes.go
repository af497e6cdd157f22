package attendance

import (
	"github.com/haiphamkd/quanlynhansu/internal/middleware"
	"github.com/haiphamkd/quanlynhansu/internal/rbac"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService rbac.Service) {
	attendances := r.Group("/attendances")
	attendances.Use(middleware.AuthMiddleware())
	{
		// Every signed-in role runs the attendance screen, so the check-in
		// flow is not gated behind RBAC beyond authentication. The scan flow
		// is rate limited per user since a stuck camera loop can hammer it.
		attendances.POST("/scan", middleware.RateLimitByUser(rate.Limit(2), 10), h.Scan)
		attendances.POST("/check-in", h.CheckIn)
		attendances.POST("/manual", h.ManualCheckIn)
		attendances.DELETE("", h.Delete)
		attendances.GET("/grid", h.Grid)
		attendances.POST("/grid", h.SaveGrid)
		attendances.GET("", middleware.RBACAuthorize(rbacService, "attendances", "read"), h.History)
	}
}
