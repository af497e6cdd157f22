package gateway

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/haiphamkd/quanlynhansu/internal/middleware"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	// Old clients carry no bearer token, only the login action. The endpoint
	// stays open but rate limited; new clients use the REST routes.
	r.POST("/exec", middleware.RateLimitByIP(rate.Limit(20), 40), h.Exec)
}
