package app

import (
	"io/fs"
	"net/http"
	"time"

	"go-payroll/internal/config"
	"go-payroll/internal/middleware"
	"go-payroll/internal/shared/connection"
	"go-payroll/web"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BuildApp wires infrastructure, modules and routes onto the router.
func BuildApp(router *gin.Engine, cfg config.Config, logger *zap.Logger) error {
	client, err := connection.ConnectMongoWithRetry(cfg.MongoURI, 5)
	if err != nil {
		return err
	}
	db := client.Database(cfg.MongoDB)

	// One configured client origin, credentials enabled.
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.ClientOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	router.Use(middleware.RequestID())

	if err := registerModules(router, db, logger); err != nil {
		return err
	}

	// Embedded single-page client.
	staticFS, err := fs.Sub(web.Static, "static")
	if err != nil {
		return err
	}
	router.StaticFS("/app", http.FS(staticFS))
	router.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/app")
	})

	return nil
}
