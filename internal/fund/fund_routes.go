package fund

import (
	"github.com/haiphamkd/quanlynhansu/internal/middleware"
	"github.com/haiphamkd/quanlynhansu/internal/rbac"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService rbac.Service, rdb ...*redis.Client) {
	var redisClient *redis.Client
	if len(rdb) > 0 {
		redisClient = rdb[0]
	}

	funds := r.Group("/funds")
	funds.Use(middleware.AuthMiddleware())
	funds.Use(middleware.RBACAuthorize(rbacService, "funds", "read"))
	{
		funds.GET("", h.GetAll)
		funds.GET("/summary", h.Summary)

		// A retried append must not land twice in the ledger.
		if redisClient != nil {
			funds.POST(
				"",
				middleware.Idempotency(redisClient),
				middleware.RBACAuthorize(rbacService, "funds", "write"),
				h.Record,
			)
		} else {
			funds.POST("", middleware.RBACAuthorize(rbacService, "funds", "write"), h.Record)
		}
	}
}
