package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"plexconsole/internal/api"
	"plexconsole/internal/api/handlers"
	"plexconsole/internal/api/middleware"
	"plexconsole/internal/engine/plexconfig"
	engineSync "plexconsole/internal/engine/sync"
	"plexconsole/internal/pkg/logger"
	"plexconsole/internal/platform/audit"
	"plexconsole/internal/platform/auth"
	"plexconsole/internal/platform/config"
	"plexconsole/internal/platform/database"
	"plexconsole/internal/platform/repositories"
)

func main() {
	cfg, err := config.Load("configs/config.yaml")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init("plexconsole-api", cfg.Logging)

	// Database Connections
	globalDB, err := database.NewGlobalDB(cfg.Database.Global)
	if err != nil {
		log.Fatalf("Failed to connect to global DB: %v", err)
	}
	defer globalDB.Close()

	tenantDBPool := database.NewTenantDBPool(cfg.Database.Tenant)
	defer tenantDBPool.CloseAll()

	// Repositories
	tenantRepo := repositories.NewTenantRepository(globalDB)
	operatorRepo := repositories.NewOperatorRepository(globalDB)

	// Services
	tokenSvc := auth.NewTokenService(cfg.JWT)
	auditLogger := audit.NewLogger(globalDB)
	dispatcher := engineSync.NewDispatcher(cfg.Sync.WorkerURL, cfg.Sync.Secret)
	configCache := plexconfig.NewConfigCache(time.Minute)

	// Handlers
	authHandler := handlers.NewAuthHandler(operatorRepo, tokenSvc)
	plexConfigHandler := handlers.NewPlexConfigHandler(auditLogger, dispatcher, configCache)
	loginAppHandler := handlers.NewLoginAppHandler(auditLogger, configCache)
	elementsHandler := handlers.NewElementsHandler()
	pageParamsHandler := handlers.NewPageParamsHandler()
	keysHandler := handlers.NewKeysHandler(auditLogger, cfg.Keys, configCache)
	logoHandler := handlers.NewLogoHandler(auditLogger, cfg.Uploads)
	auditHandler := handlers.NewAuditHandler(auditLogger)
	healthHandler := handlers.NewHealthHandler(globalDB)
	metricsHandler := handlers.NewMetricsHandler()

	// Middleware
	authMiddleware := middleware.NewAuthMiddleware(tokenSvc)
	tenantMiddleware := middleware.NewTenantMiddleware(tenantRepo, tenantDBPool)

	// Router
	deps := &api.Dependencies{
		AuthHandler:       authHandler,
		PlexConfigHandler: plexConfigHandler,
		LoginAppHandler:   loginAppHandler,
		ElementsHandler:   elementsHandler,
		PageParamsHandler: pageParamsHandler,
		KeysHandler:       keysHandler,
		LogoHandler:       logoHandler,
		AuditHandler:      auditHandler,
		HealthHandler:     healthHandler,
		MetricsHandler:    metricsHandler,
		AuthMiddleware:    authMiddleware,
		TenantMiddleware:  tenantMiddleware,
	}
	router := api.NewRouter(deps)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Printf("Server starting on %s", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
