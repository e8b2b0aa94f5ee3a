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

	"go.uber.org/zap"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	pkgvalidator "github.com/johnquangdev/task-assigner/pkg/validator"

	"github.com/johnquangdev/task-assigner/internal/adapter/handler"
	"github.com/johnquangdev/task-assigner/internal/infrastructure/cache"
	"github.com/johnquangdev/task-assigner/internal/infrastructure/storage"
	assignuse "github.com/johnquangdev/task-assigner/internal/usecase/assignment"
	"github.com/johnquangdev/task-assigner/internal/usecase/extraction"
	pkgai "github.com/johnquangdev/task-assigner/pkg/ai"
	"github.com/johnquangdev/task-assigner/pkg/config"
)

// @title           Task Assigner API
// @version         1.0
// @description     API for extracting and assigning action items from meeting transcripts

// @host      localhost:8080
// @BasePath  /v1

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize Echo instance
	e := echo.New()

	// Register validator for request validation
	e.Validator = pkgvalidator.New()

	// Configure Echo
	e.HideBanner = true
	e.HidePort = false

	// Custom logger format
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "${time_rfc3339} | ${status} | ${method} ${uri} | ${latency_human}\n",
	}))

	// Recover from panics
	e.Use(middleware.Recover())

	// CORS middleware
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.Server.AllowedOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
	}))

	// Initialize dependencies
	log.Println("🔧 Initializing dependencies...")

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Result cache: Redis when configured, in-memory otherwise
	var resultCache assignuse.ResultCache
	if cfg.Redis.Host != "" {
		log.Println("📦 Connecting to Redis...")
		redisStore, err := cache.NewRedisStore(cfg)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisStore.Close()
		resultCache = redisStore
	} else {
		log.Println("📦 Redis not configured, using in-memory result cache")
		resultCache = cache.NewMemoryStore()
	}

	// Result document store (optional)
	var resultStore assignuse.ResultStore
	if cfg.Storage.Endpoint != "" {
		log.Println("🗄️  Connecting to MinIO...")
		minioStore, err := storage.NewMinIOStore(&cfg.Storage)
		if err != nil {
			log.Fatalf("Failed to connect to MinIO: %v", err)
		}
		resultStore = minioStore
	} else {
		log.Println("🗄️  Storage not configured, result documents will not be archived")
	}

	// Transcription client (optional)
	var transcriber assignuse.Transcriber
	asmClient := pkgai.NewAssemblyAIClient(&cfg.Assembly)
	if asmClient.Configured() {
		log.Println("🎙️  AssemblyAI transcription enabled")
		transcriber = asmClient
	} else {
		log.Println("⚠️  AssemblyAI not configured, recording endpoint disabled")
	}

	// Initialize extraction engine with the default rule tables
	log.Println("⚙️  Initializing extraction engine...")
	engine := extraction.NewEngine(extraction.DefaultRules())

	// Initialize assignment service
	log.Println("🤖 Initializing assignment service...")
	assignmentService := assignuse.NewService(engine, transcriber, resultCache, resultStore, cfg, logger)

	// Initialize assignment controller
	assignmentController := handler.NewAssignmentController(assignmentService, logger)

	// Setup router with handlers
	log.Println("🛣️  Setting up routes...")
	router := handler.NewRouter(cfg, assignmentController)
	router.Setup(e)

	// Start server
	go func() {
		addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
		log.Printf("🚀 Starting server on %s", addr)
		log.Printf("📝 Environment: %s", cfg.Server.Environment)
		log.Printf("🔗 Health check: http://%s/health", addr)

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}
