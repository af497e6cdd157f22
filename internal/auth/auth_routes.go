package auth

import (
	"github.com/haiphamkd/quanlynhansu/internal/middleware"
	"github.com/haiphamkd/quanlynhansu/internal/rbac"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService rbac.Service) {
	authGroup := r.Group("/auth")
	{
		// The login form is the one surface open to the network.
		authGroup.POST("/login", middleware.RateLimitByIP(rate.Limit(5), 10), h.Login)
		authGroup.POST("/refresh", h.RefreshToken)
		authGroup.POST("/logout", h.Logout)

		authGroup.GET("/me", middleware.AuthMiddleware(), middleware.ExtractUserID(), h.Me)
		authGroup.POST("/change-password", middleware.AuthMiddleware(), middleware.ExtractUserID(), h.ChangePassword)
	}

	accounts := r.Group("/accounts")
	accounts.Use(middleware.AuthMiddleware())
	{
		accounts.GET("", middleware.RBACAuthorize(rbacService, "accounts", "read"), h.ListAccounts)
		accounts.POST("", middleware.RBACAuthorize(rbacService, "accounts", "write"), h.CreateAccount)
		accounts.DELETE("/:id", middleware.RBACAuthorize(rbacService, "accounts", "write"), h.DeleteAccount)
	}
}
