package auth

import (
	"go-payroll/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	auth := r.Group("/auth")
	{
		auth.POST("/signup", middleware.RateLimitByIP(0.5, 5), handler.Signup)
		auth.POST("/login", middleware.RateLimitByIP(0.5, 5), handler.Login)
	}
}
