package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"psicoagenda/config"
	deliveryHttp "psicoagenda/internal/delivery/http"
	"psicoagenda/internal/delivery/http/handler"
	"psicoagenda/internal/delivery/http/middleware"
	"psicoagenda/internal/infrastructure/cache"
	"psicoagenda/internal/infrastructure/database"
	"psicoagenda/internal/repository"
	"psicoagenda/internal/service"
	"psicoagenda/internal/usecase"
	"psicoagenda/pkg/jwt"
	"psicoagenda/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	DB          *gorm.DB
	RedisClient *redis.Client
	Server      *http.Server
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Setup logger
	setupLogger()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	logrus.Info("Configuration loaded successfully")

	// Apply database migrations
	if err := database.RunMigrations(cfg.DB); err != nil {
		return nil, err
	}

	// Initialize database
	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db
	logrus.Info("Database connected successfully")

	// Initialize Redis
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient
	logrus.Info("Redis connected successfully")

	// Initialize all layers
	server := initializeServer(cfg, db, redisClient)
	app.Server = server

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *http.Server {
	// Initialize JWT service
	jwtService := jwt.NewJWTService(cfg.JWT)

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize repositories
	userRepo := repository.NewUserRepository()
	tenantRepo := repository.NewTenantRepository()
	patientRepo := repository.NewPatientRepository()
	consultationRepo := repository.NewConsultationRepository()
	settingsRepo := repository.NewSettingsRepository()
	workingHourRepo := repository.NewWorkingHourRepository()
	auditRepo := repository.NewAuditLogRepository()

	// Initialize logger
	log := logrus.StandardLogger()

	// Initialize services
	auditService := service.NewAuditService(log, auditRepo)
	viewCache := service.NewRedisViewCache(redisClient, log)

	// Initialize usecases
	authUsecase := usecase.NewAuthUsecase(db, log, userRepo, tenantRepo, jwtService, redisClient)
	tenantUsecase := usecase.NewTenantUsecase(db, log, userRepo, tenantRepo, auditService)
	patientUsecase := usecase.NewPatientUsecase(db, log, patientRepo, auditService, viewCache)
	consultationUsecase := usecase.NewConsultationUsecase(db, log, consultationRepo, patientRepo)
	settingsUsecase := usecase.NewSettingsUsecase(db, log, settingsRepo, workingHourRepo, auditService)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUsecase, customValidator, cfg.Session)
	tenantHandler := handler.NewTenantHandler(tenantUsecase, customValidator)
	patientHandler := handler.NewPatientHandler(patientUsecase, customValidator)
	consultationHandler := handler.NewConsultationHandler(consultationUsecase, customValidator)
	settingsHandler := handler.NewSettingsHandler(settingsUsecase, customValidator)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, redisClient)
	tenantMiddleware := middleware.NewTenantMiddleware(db, log, userRepo, tenantRepo)
	routeGuard := middleware.NewRouteGuard(cfg.Session.CookieName)
	corsMiddleware := middleware.NewCORSMiddleware()

	// Initialize router
	router := deliveryHttp.NewRouter(
		authHandler, tenantHandler, patientHandler, consultationHandler, settingsHandler,
		authMiddleware, tenantMiddleware, routeGuard, corsMiddleware,
	)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:    serverAddr,
		Handler: httpRouter,
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start server in goroutine
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	// Close connections
	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
	// Close database connection
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	// Close Redis connection
	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
