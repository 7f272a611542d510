package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/interest-tracker/internal/config"
	"github.com/interest-tracker/internal/handler"
	"github.com/interest-tracker/internal/middleware"
	"github.com/interest-tracker/internal/models"
	"github.com/interest-tracker/internal/repository"
	"github.com/interest-tracker/internal/service"
	"github.com/interest-tracker/pkg/crypto"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Build info (injected at build time via -ldflags)
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

func main() {
	// Load configuration
	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Set Gin mode
	gin.SetMode(cfg.Server.Mode)

	// Initialize logging
	if err := middleware.InitLogger(cfg.Logging.Dir); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	// Initialize database
	db, err := initDatabase(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	// Initialize Redis
	rdb := initRedis(cfg)

	// Migrate database
	if err := autoMigrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	investmentRepo := repository.NewInvestmentRepository(db)

	// Rows written before ownership existed get the default owner
	if err := backfillLegacyOwner(userRepo, investmentRepo); err != nil {
		log.Fatalf("Failed to backfill legacy investment owners: %v", err)
	}

	// Initialize services
	authService := service.NewAuthService(userRepo, rdb, cfg.JWT)
	investmentService := service.NewInvestmentService(investmentRepo)
	exportService := service.NewExportService(investmentRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	investmentHandler := handler.NewInvestmentHandler(investmentService, exportService)

	// Create Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.RequestLoggerMiddleware())
	router.Use(corsMiddleware())

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":     "ok",
			"version":    Version,
			"commit":     Commit,
			"build_time": BuildTime,
			"time":       time.Now().Unix(),
		})
	})

	// Static UI
	router.StaticFile("/", "./web/index.html")
	router.StaticFile("/index.html", "./web/index.html")

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Auth routes (public)
		authHandler.RegisterRoutes(v1)

		// Investment routes (calculate public, the rest protected)
		authMiddleware := middleware.AuthMiddleware(authService)
		investmentHandler.RegisterRoutes(v1, authMiddleware)
	}

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Printf("Starting server on %s (database driver: %s)", addr, cfg.Database.Driver)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	// Graceful shutdown with 10 second timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	// Close Redis connection
	if err := rdb.Close(); err != nil {
		log.Printf("Error closing Redis connection: %v", err)
	}

	log.Println("Server exited properly")
}

// initDatabase opens the configured SQL backend. The driver is chosen once
// here; everything downstream sees a plain *gorm.DB.
func initDatabase(cfg *config.Config) (*gorm.DB, error) {
	gormLogger := logger.Default.LogMode(logger.Info)
	if cfg.Server.Mode == "release" {
		gormLogger = logger.Default.LogMode(logger.Warn)
	}

	var dialector gorm.Dialector
	switch cfg.Database.Driver {
	case "sqlite":
		dialector = sqlite.Open(cfg.Database.Path)
	case "postgres":
		dialector = postgres.Open(cfg.Database.DSN())
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", cfg.Database.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormLogger,
	})
	if err != nil {
		return nil, err
	}

	// Configure connection pool
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return db, nil
}

func initRedis(cfg *config.Config) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
}

func autoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Investment{},
	)
}

// backfillLegacyOwner assigns investments that predate the owner column to a
// default "legacy" user, creating that user on first need.
func backfillLegacyOwner(userRepo *repository.UserRepository, investmentRepo *repository.InvestmentRepository) error {
	count, err := investmentRepo.CountWithoutOwner()
	if err != nil {
		return err
	}
	if count == 0 {
		return nil
	}

	owner, err := userRepo.GetByUsername("legacy")
	if errors.Is(err, repository.ErrUserNotFound) {
		// Unknown random password; nobody logs in as this user
		hash, hashErr := crypto.HashPassword(uuid.NewString())
		if hashErr != nil {
			return hashErr
		}
		owner = &models.User{
			Username:     "legacy",
			Email:        "legacy@localhost",
			PasswordHash: hash,
		}
		if createErr := userRepo.Create(owner); createErr != nil {
			return createErr
		}
	} else if err != nil {
		return err
	}

	log.Printf("Backfilling %d ownerless investments to user %q (id=%d)", count, owner.Username, owner.ID)
	return investmentRepo.AssignOwner(owner.ID)
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization, X-Request-ID")
		c.Header("Access-Control-Max-Age", "86400")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
