package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/NAPONYAHASINE/journal/internal/calendar"
	"github.com/NAPONYAHASINE/journal/internal/config"
	"github.com/NAPONYAHASINE/journal/internal/handler"
	"github.com/NAPONYAHASINE/journal/internal/middleware"
	"github.com/NAPONYAHASINE/journal/internal/models"
	"github.com/NAPONYAHASINE/journal/internal/repository"
	"github.com/NAPONYAHASINE/journal/internal/service"
	"github.com/NAPONYAHASINE/journal/internal/worker"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
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
	// Load .env if present, then configuration
	_ = godotenv.Load()

	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Set Gin mode
	gin.SetMode(cfg.Server.Mode)

	// Initialize file logging
	if err := middleware.InitLogger(cfg.Log.Dir); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	// Initialize database
	db, err := initDatabase(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	// Initialize Redis
	rdb := initRedis(cfg)

	// Auto migrate database
	if err := autoMigrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	journalRepo := repository.NewJournalRepository(db)
	tradeRepo := repository.NewTradeRepository(db)
	analysisRepo := repository.NewAnalysisRepository(db)
	groupRepo := repository.NewGroupRepository(db)
	goalRepo := repository.NewGoalRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)
	reflectionRepo := repository.NewReflectionRepository(db)
	strategyRepo := repository.NewStrategyRepository(db)
	assistanceRepo := repository.NewAssistanceRepository(db)
	infoPostRepo := repository.NewInfoPostRepository(db)
	academyRepo := repository.NewAcademyRepository(db)
	calendarRepo := repository.NewCalendarRepository(db)

	// Websocket hub for live notification pushes
	hub := handler.NewWSHub()

	// Initialize services
	statsCache := service.NewStatsCache(rdb)
	authService := service.NewAuthService(userRepo, cfg.JWT)
	journalService := service.NewJournalService(journalRepo)
	tradeService := service.NewTradeService(tradeRepo, journalRepo, statsCache)
	statsService := service.NewStatsService(tradeRepo, userRepo, journalRepo, statsCache)
	notificationService := service.NewNotificationService(notificationRepo, hub)
	analysisService := service.NewAnalysisService(analysisRepo, journalRepo, userRepo, notificationService)
	communityService := service.NewCommunityService(groupRepo, userRepo)
	goalService := service.NewGoalService(goalRepo, notificationService)
	reflectionService := service.NewReflectionService(reflectionRepo, tradeRepo, journalRepo)
	strategyService := service.NewStrategyService(strategyRepo, tradeRepo, journalRepo)
	supportService := service.NewSupportService(assistanceRepo, infoPostRepo, notificationService)
	academyService := service.NewAcademyService(academyRepo)
	uploadService, err := service.NewUploadService(cfg.Upload.Dir)
	if err != nil {
		log.Fatalf("Failed to initialize upload directory: %v", err)
	}

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	journalHandler := handler.NewJournalHandler(journalService)
	tradeHandler := handler.NewTradeHandler(tradeService)
	statsHandler := handler.NewStatsHandler(statsService)
	analysisHandler := handler.NewAnalysisHandler(analysisService)
	communityHandler := handler.NewCommunityHandler(communityService)
	progressHandler := handler.NewProgressHandler(goalService, reflectionService, strategyService)
	notificationHandler := handler.NewNotificationHandler(notificationService, hub)
	supportHandler := handler.NewSupportHandler(supportService)
	academyHandler := handler.NewAcademyHandler(academyService)
	calendarHandler := handler.NewCalendarHandler(calendarRepo)
	uploadHandler := handler.NewUploadHandler(uploadService)

	// Create Gin router
	router := gin.Default()

	// Add request logging middleware
	router.Use(middleware.RequestLoggerMiddleware())

	// Add CORS middleware
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

	// API v1 routes
	authMiddleware := middleware.AuthMiddleware(authService)
	adminMiddleware := middleware.AdminMiddleware()

	v1 := router.Group("/api/v1")
	{
		authHandler.RegisterRoutes(v1, authMiddleware, adminMiddleware)
		journalHandler.RegisterRoutes(v1, authMiddleware)
		tradeHandler.RegisterRoutes(v1, authMiddleware)
		statsHandler.RegisterRoutes(v1, authMiddleware)
		analysisHandler.RegisterRoutes(v1, authMiddleware)
		communityHandler.RegisterRoutes(v1, authMiddleware)
		progressHandler.RegisterRoutes(v1, authMiddleware)
		notificationHandler.RegisterRoutes(v1, authMiddleware)
		supportHandler.RegisterRoutes(v1, authMiddleware, adminMiddleware)
		academyHandler.RegisterRoutes(v1, authMiddleware, adminMiddleware)
		calendarHandler.RegisterRoutes(v1, authMiddleware, adminMiddleware)
		uploadHandler.RegisterRoutes(v1, authMiddleware)
	}

	// Start the economic calendar worker
	var calendarWorker *worker.CalendarWorker
	if cfg.Calendar.APIURL != "" {
		calendarClient := calendar.NewClient(cfg.Calendar.APIURL, cfg.Calendar.APIKey)
		calendarWorker = worker.NewCalendarWorker(calendarClient, calendarRepo,
			time.Duration(cfg.Calendar.IntervalHours)*time.Hour)
		go calendarWorker.Start()
	} else {
		log.Println("Calendar API URL not configured, worker disabled")
	}

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Printf("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	// Stop the calendar worker
	if calendarWorker != nil {
		calendarWorker.Stop()
	}

	// Graceful shutdown with 10 second timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	// Close Redis connection
	if rdb != nil {
		if err := rdb.Close(); err != nil {
			log.Printf("Error closing Redis connection: %v", err)
		}
	}

	log.Println("Server exited properly")
}

func initDatabase(cfg *config.Config) (*gorm.DB, error) {
	gormLogger := logger.Default.LogMode(logger.Info)
	if cfg.Server.Mode == "release" {
		gormLogger = logger.Default.LogMode(logger.Warn)
	}

	var dialector gorm.Dialector
	switch cfg.Database.Driver {
	case "postgres":
		dialector = postgres.Open(cfg.Database.DSN())
	default:
		dialector = sqlite.Open(cfg.Database.Path)
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
	if cfg.Redis.Host == "" {
		return nil
	}
	return redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
}

func autoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Journal{},
		&models.PlatformLink{},
		&models.Trade{},
		&models.Analysis{},
		&models.AnalysisShare{},
		&models.AnalysisShareComment{},
		&models.Group{},
		&models.GroupMember{},
		&models.GroupMessage{},
		&models.Goal{},
		&models.Notification{},
		&models.ReflectionEntry{},
		&models.Strategy{},
		&models.AssistanceMessage{},
		&models.AssistanceReply{},
		&models.InfoPost{},
		&models.Module{},
		&models.Course{},
		&models.CourseLike{},
		&models.CourseComment{},
		&models.EconomicEvent{},
	)
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")
		c.Header("Access-Control-Max-Age", "86400")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
