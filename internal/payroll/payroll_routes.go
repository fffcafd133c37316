package payroll

import (
	"go-payroll/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, logger *zap.Logger) {
	payroll := r.Group("/payroll")
	payroll.Use(middleware.AuthMiddleware())
	payroll.Use(middleware.ContextLogger(logger))
	{
		payroll.POST("/generate/:employeeId", handler.Generate)
		payroll.GET("", handler.ListAll)
		payroll.GET("/employee/:employeeId", handler.GetForEmployee)
		payroll.GET("/employee/:employeeId/history", handler.History)
		payroll.PUT("/employee/:employeeId/payroll", handler.UpdateSalary)
		payroll.GET("/snapshots/:id", handler.GetSnapshot)
	}
}
