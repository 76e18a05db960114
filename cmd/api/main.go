package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/jfotso/immogest-backend/internal/domain/entities"
	httphandlers "github.com/jfotso/immogest-backend/internal/handlers/http"
	"github.com/jfotso/immogest-backend/internal/handlers/middleware"
	"github.com/jfotso/immogest-backend/internal/handlers/ws"
	"github.com/jfotso/immogest-backend/internal/infrastructure/auth"
	"github.com/jfotso/immogest-backend/internal/infrastructure/config"
	"github.com/jfotso/immogest-backend/internal/infrastructure/i18n"
	"github.com/jfotso/immogest-backend/internal/infrastructure/logging"
	"github.com/jfotso/immogest-backend/internal/infrastructure/persistence/postgres"
	"github.com/jfotso/immogest-backend/internal/infrastructure/storage"
	"github.com/jfotso/immogest-backend/internal/services"
)

func main() {
	// Carregar configurações
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	// Inicializar logger
	logger := logging.NewSlogLogger(cfg.Logging.Level)
	logger.Info("starting immogest backend",
		"env", cfg.Env,
		"version", "dev",
	)

	// Conectar ao banco de dados
	db, err := postgres.NewDatabaseConnection(&cfg.Database, logger)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		log.Fatal(err)
	}

	// Inicializar i18n
	i18nService, err := i18n.NewService(cfg.I18n.LocalesDir, cfg.I18n.DefaultLanguage)
	if err != nil {
		logger.Error("failed to initialize i18n", "error", err)
		log.Fatal(err)
	}
	logger.Info("i18n initialized",
		"default_language", i18nService.GetDefaultLanguage(),
		"supported_languages", i18nService.GetSupportedLanguages(),
	)

	// Inicializar blob storage
	blobs, err := storage.NewMinIOStore(context.Background(), &cfg.MinIO)
	if err != nil {
		logger.Error("failed to initialize blob storage", "error", err)
		log.Fatal(err)
	}

	// Inicializar repositories
	userRepo := postgres.NewUserRepository(db)
	propertyRepo := postgres.NewPropertyRepository(db)
	saleRepo := postgres.NewSaleRepository(db)
	messageRepo := postgres.NewMessageRepository(db)
	refRepo := postgres.NewReferenceRepository(db)
	uow := postgres.NewUnitOfWork(db)

	// Hub do mural (websocket)
	feedHub := ws.NewFeedHub(logger)

	// Tokens
	tokenManager := auth.NewJWTManager(cfg.JWT.Secret)

	// Inicializar services
	authService := services.NewAuthService(userRepo, tokenManager, logger)
	userService := services.NewUserService(userRepo, blobs, logger)
	propertyService := services.NewPropertyService(propertyRepo, refRepo, blobs, uow, logger)
	saleService := services.NewSaleService(saleRepo, propertyRepo, refRepo, uow, logger)
	statsService := services.NewStatsService(propertyRepo, saleRepo, logger)
	messageService := services.NewMessageService(messageRepo, feedHub, logger)

	// Inicializar handlers
	authHandler := httphandlers.NewAuthHandler(authService)
	userHandler := httphandlers.NewUserHandler(userService)
	propertyHandler := httphandlers.NewPropertyHandler(propertyService)
	saleHandler := httphandlers.NewSaleHandler(saleService)
	messageHandler := httphandlers.NewMessageHandler(messageService)
	statsHandler := httphandlers.NewStatsHandler(statsService)
	refHandler := httphandlers.NewReferenceHandler(refRepo)
	managerHandler := httphandlers.NewManagerHandler(statsService)
	updaterHandler := httphandlers.NewUpdaterHandler(propertyService, statsService)

	// Setup Gin
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()

	// Middleware global para adicionar base URL ao contexto
	router.Use(func(c *gin.Context) {
		c.Set("base_url", cfg.Server.BaseURL)
		c.Next()
	})

	// Middleware i18n
	i18nMiddleware := middleware.NewI18nMiddleware(i18nService)
	router.Use(i18nMiddleware.DetectLanguage())

	// Middleware CORS
	corsConfig := cors.DefaultConfig()
	if cfg.CORS.AllowedOrigins == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = strings.Split(cfg.CORS.AllowedOrigins, ",")
		corsConfig.AllowCredentials = true
	}
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	router.Use(cors.New(corsConfig))

	// Middleware de autenticação
	authMiddleware := middleware.NewAuthMiddleware(tokenManager, userRepo, logger)

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"env":    cfg.Env,
		})
	})

	// API routes
	api := router.Group("/api")
	{
		authRoutes := api.Group("/auth")
		{
			authRoutes.POST("/login", authHandler.Login)
			authRoutes.POST("/register", authHandler.Register)
		}

		authed := api.Group("")
		authed.Use(authMiddleware.RequireAuth())
		{
			// Leituras do catálogo: qualquer papel autenticado
			authed.GET("/proprietes", propertyHandler.List)
			authed.GET("/proprietes/:id", propertyHandler.Get)
			authed.GET("/proprietes/:id/photos", propertyHandler.ListImages)

			// Dados de referência dos formulários
			authed.GET("/villes", refHandler.ListCities)
			authed.GET("/villes/:id/quartiers", refHandler.ListDistricts)
			authed.GET("/types", refHandler.ListTypes)
			authed.GET("/statuts", refHandler.ListStatuses)

			// Mural: qualquer papel autenticado
			authed.GET("/messages", messageHandler.List)
			authed.POST("/messages", messageHandler.Post)

			authed.GET("/dashboard/stats", statsHandler.DashboardStats)

			// Mutações do catálogo e vendas: gestão
			mgmt := authed.Group("")
			mgmt.Use(authMiddleware.RequireRole(entities.ManagerRoles...))
			{
				mgmt.POST("/proprietes", propertyHandler.Create)
				mgmt.PUT("/proprietes/:id", propertyHandler.Update)
				mgmt.DELETE("/proprietes/:id", propertyHandler.Delete)

				mgmt.GET("/ventes", saleHandler.List)
				mgmt.POST("/ventes", saleHandler.Create)
			}
		}
	}

	// Portal do gestor
	manager := router.Group("/manager")
	manager.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRole(entities.ManagerRoles...))
	{
		manager.GET("/dashboard", managerHandler.Dashboard)
		manager.GET("/statistiques", managerHandler.Statistiques)

		manager.GET("/proprietes", propertyHandler.List)
		manager.POST("/proprietes", propertyHandler.Create)
		manager.GET("/proprietes/:id", propertyHandler.Get)
		manager.PUT("/proprietes/:id", propertyHandler.Update)
		manager.DELETE("/proprietes/:id", propertyHandler.Delete)

		manager.GET("/ventes", saleHandler.List)
		manager.POST("/ventes", saleHandler.Create)

		manager.GET("/utilisateurs", userHandler.ListUsers)
		manager.GET("/feed", messageHandler.List)

		manager.GET("/settings", userHandler.GetSettings)
		manager.PUT("/settings", userHandler.UpdateSettings)
		manager.POST("/settings/avatar", userHandler.UpdateAvatar)
	}

	// Portal do photo updater
	updater := router.Group("/updater")
	updater.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRole(entities.UpdaterRoles...))
	{
		updater.GET("/dashboard", updaterHandler.Dashboard)
		updater.GET("/carte", updaterHandler.Carte)

		updater.GET("/proprietes", propertyHandler.List)
		updater.POST("/proprietes", propertyHandler.Create)
		updater.GET("/proprietes/:id", propertyHandler.Get)
		updater.GET("/proprietes/:id/photos", propertyHandler.ListImages)

		updater.POST("/upload-photo", updaterHandler.UploadPhoto)
		updater.POST("/delete-photo/:id", updaterHandler.DeletePhoto)

		updater.GET("/feed", messageHandler.List)

		updater.GET("/settings", userHandler.GetSettings)
		updater.PUT("/settings", userHandler.UpdateSettings)
		updater.POST("/settings/avatar", userHandler.UpdateAvatar)
	}

	// Feed websocket: qualquer papel autenticado
	router.GET("/ws/feed", authMiddleware.RequireAuth(), feedHub.Handle)

	// HTTP Server
	srv := &http.Server{
		Addr:              cfg.Server.Host + ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	go func() {
		logger.Info("server starting",
			"host", cfg.Server.Host,
			"port", cfg.Server.Port,
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server failed", "error", err)
			log.Fatal(err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	feedHub.Close()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	logger.Info("server exited")
}
