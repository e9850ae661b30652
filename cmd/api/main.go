package main

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	handler "github.com/replay-fm/replay-api/internal/adapters/http"
	"github.com/replay-fm/replay-api/internal/app"
	"github.com/replay-fm/replay-api/internal/config"

	_ "github.com/replay-fm/replay-api/docs"
)

// @title			Replay API
// @version		1.0
// @description	Upload a streaming-history export and read the derived listening
// @description	statistics: top tracks, artists, albums and podcasts, daily and
// @description	yearly buckets, skip and shuffle behavior. Nothing is persisted;
// @description	each upload is one isolated in-memory aggregation session.

// @contact.name	Replay API Support
// @license.name	MIT

// @host		localhost:8080
// @BasePath	/
func main() {
	cfg := config.Load()

	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logger.SetLevel(level)
	}

	service := app.NewService(cfg.AggregateWorkers, logger)

	r := gin.Default()
	h := handler.NewHandler(service, cfg.MaxUploadMB)
	h.RegisterRoutes(r)

	// Swagger UI
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	addr := ":" + cfg.Port
	logger.WithFields(logrus.Fields{
		"addr":    addr,
		"workers": cfg.AggregateWorkers,
	}).Info("starting Replay API")
	logger.Infof("Swagger UI: http://localhost%s/swagger/index.html", addr)

	if err := r.Run(addr); err != nil {
		logger.WithError(err).Fatal("server stopped")
	}
}
