package httpserver

import (
	"context"

	"line-task-tracker/internal/model"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (srv HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(); err != nil {
		return err
	}

	return nil
}

func (srv HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())
	if srv.mode != gin.ReleaseMode {
		srv.gin.Use(gin.Logger())
	}

	ctx := context.Background()
	if srv.environment == string(model.EnvironmentProduction) {
		srv.l.Infof(ctx, "HTTP mode: production")
	} else {
		srv.l.Infof(ctx, "HTTP mode: %s", srv.environment)
	}
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes.
func (srv HTTPServer) registerDomainRoutes() error {
	ctx := context.Background()

	srv.gin.POST("/webhook/line",
		srv.mw.RateLimit(),
		srv.mw.LineSignature(),
		srv.lineHandler.HandleWebhook,
	)
	srv.l.Infof(ctx, "LINE webhook route registered at POST /webhook/line")

	if srv.reminderHandler != nil {
		api := srv.gin.Group("/api", srv.mw.CronKey())
		api.POST("/cron/:job", srv.reminderHandler.RunJob)
		api.GET("/tasks/export", srv.reminderHandler.ExportTasks)
		srv.l.Infof(ctx, "Scheduler routes registered at POST /api/cron/:job and GET /api/tasks/export")
	} else {
		srv.l.Infof(ctx, "Reminder handler not configured, skipping scheduler routes")
	}

	return nil
}
