package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"vehicle-inventory-frontend/internal/adapters/primary/http/handlers"
	"vehicle-inventory-frontend/internal/adapters/primary/http/middleware"
	"vehicle-inventory-frontend/internal/adapters/secondary/inventoryapi"
	"vehicle-inventory-frontend/internal/config"
	"vehicle-inventory-frontend/internal/core/services"
	"vehicle-inventory-frontend/internal/proxy"
	"vehicle-inventory-frontend/internal/web"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	initLogger(cfg)

	// Secondary adapter: the remote inventory API
	api := inventoryapi.NewClient(&cfg.API)
	log.WithField("base_url", api.BaseURL()).Info("inventory api client initialized")

	pingCtx, cancelPing := context.WithTimeout(context.Background(), 5*time.Second)
	if err := api.Ping(pingCtx); err != nil {
		// The frontend still starts; every view reports the outage on its own.
		log.Warnf("inventory api not reachable yet: %v", err)
	}
	cancelPing()

	// Media files are streamed from the API origin
	media := proxy.NewClient(cfg.API.Origin(), cfg.API.Timeout)

	// Core services
	carroSvc := services.NewCarroService(api)
	modeloSvc := services.NewModeloService(api, api)
	imagemSvc := services.NewImagemService(api, api)

	// Primary adapter (HTML views)
	h := handlers.New(carroSvc, modeloSvc, imagemSvc, media, cfg.Upload.MaxBytes)

	renderer, err := web.NewRenderer(cfg.API.Origin())
	if err != nil {
		log.Fatalf("load templates: %v", err)
	}
	static, err := web.StaticFS()
	if err != nil {
		log.Fatalf("load static assets: %v", err)
	}

	if cfg.Logger.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(middleware.RequestID(), middleware.Logging(), gin.Recovery())
	router.HTMLRender = renderer
	router.MaxMultipartMemory = cfg.Upload.MaxBytes

	router.StaticFS("/static", static)
	h.RegisterRoutes(router)

	// Health check with API ping
	router.GET("/healthz", func(c *gin.Context) {
		if err := api.Ping(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Start server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	go func() {
		log.Infof("starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server forced shutdown: %v", err)
	}

	log.Info("server stopped")
}

func initLogger(cfg *config.Config) {
	level, err := log.ParseLevel(cfg.Logger.Level)
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)

	if cfg.Logger.Format == "json" {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
}
