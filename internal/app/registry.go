package app

import (
	"context"
	"time"

	"go-payroll/internal/auth"
	"go-payroll/internal/employee"
	"go-payroll/internal/payroll"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

func registerModules(router *gin.Engine, db *mongo.Database, logger *zap.Logger) error {
	// --- Repositories ---
	authRepo := auth.NewRepository(db)
	employeeRepo := employee.NewRepository(db)
	payrollRepo := payroll.NewRepository(db)

	// Unique email index on accounts; without it concurrent signups for the
	// same email can both pass the service-level pre-check.
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := authRepo.EnsureIndexes(ctx); err != nil {
		return err
	}

	// --- Services ---
	authService := auth.NewService(authRepo, logger)
	employeeService := employee.NewService(employeeRepo, logger)
	payrollService := payroll.NewService(payrollRepo, employeeRepo, logger)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService, logger)
	employeeHandler := employee.NewHandler(employeeService, logger)
	payrollHandler := payroll.NewHandler(payrollService, logger)

	// --- Routes Registration ---
	api := router.Group("/api")
	{
		auth.RegisterRoutes(api, authHandler)
		employee.RegisterRoutes(api, employeeHandler, logger)
		payroll.RegisterRoutes(api, payrollHandler, logger)
	}

	return nil
}
