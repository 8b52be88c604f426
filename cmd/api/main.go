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

	pkgvalidator "github.com/debateclub/arena/pkg/validator"

	_ "github.com/debateclub/arena/docs"
	"github.com/debateclub/arena/internal/adapter/handler"
	"github.com/debateclub/arena/internal/adapter/repository"
	"github.com/debateclub/arena/internal/domain/repositories"
	"github.com/debateclub/arena/internal/infrastructure/cache"
	"github.com/debateclub/arena/internal/infrastructure/database"
	"github.com/debateclub/arena/internal/infrastructure/storage"
	debateUsecase "github.com/debateclub/arena/internal/usecase/debate"
	"github.com/debateclub/arena/internal/usecase/export"
	"github.com/debateclub/arena/internal/usecase/judge"
	pkgai "github.com/debateclub/arena/pkg/ai"
	"github.com/debateclub/arena/pkg/config"
)

// @title           Debate Arena API
// @version         1.0
// @description     API for orchestrating simulated multi-agent AI debates with turn scheduling, judging, and scoring

// @contact.name   API Support

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

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
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
	}))

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize dependencies
	log.Println("🔧 Initializing dependencies...")

	// Initialize repository: Postgres when configured, in-memory otherwise
	var debateRepo repositories.DebateRepository
	if cfg.Database.Enabled {
		log.Println("📦 Connecting to database...")
		db, err := database.NewPostgresDB(cfg)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer database.CloseDB(db)

		// Run AutoMigrate only when explicitly enabled in config.
		// Production deployments should manage schema via sql-migrate.
		if cfg.Database.AutoMigrate {
			if cfg.Server.Environment == "production" {
				log.Fatalf("AutoMigrate is enabled in production. Disable DB_AUTO_MIGRATE or manage schema with sql-migrate.")
			}
			log.Println("🔄 Running GORM AutoMigrate (development only) ...")
			if err := database.AutoMigrate(db); err != nil {
				log.Fatalf("Failed to run AutoMigrate: %v", err)
			}
		} else {
			log.Println("🔄 Skipping GORM AutoMigrate; use sql-migrate for schema migrations in CI/CD/production")
		}

		debateRepo = repository.NewDebateRepository(db)
	} else {
		log.Println("⚠️  Database disabled; debates are kept in memory only")
		debateRepo = repository.NewMemoryDebateRepository()
	}

	// Initialize cache: Redis when enabled, in-memory otherwise
	var store cache.Store
	if cfg.Redis.Enabled {
		log.Println("📦 Connecting to Redis...")
		redisStore, err := cache.NewRedisStore(cfg)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisStore.Close()
		store = redisStore
	} else {
		store = cache.NewMemoryStore()
	}

	// Initialize object storage for transcript artifacts
	var artifactStore *storage.MinIOClient
	if cfg.Storage.Enabled {
		log.Println("🗄️  Connecting to object storage...")
		artifactStore, err = storage.NewMinIOClient(&cfg.Storage)
		if err != nil {
			log.Fatalf("Failed to initialize object storage: %v", err)
		}
	}

	// Initialize AI provider registry and judge
	log.Println("🤖 Initializing AI components...")
	registry := pkgai.NewRegistry(cfg, logger)
	if cfg.Debate.DemoMode {
		log.Println("⚠️  Demo mode enabled; all providers return mock responses")
	}
	judgeService := judge.NewService(registry, logger)

	// Initialize debate orchestration
	log.Println("⚙️  Initializing debate orchestration...")
	scheduler := debateUsecase.NewScheduler()
	pipeline := debateUsecase.NewPipeline(debateRepo, registry, judgeService, logger)
	orchestrator := debateUsecase.NewOrchestrator(debateRepo, pipeline, scheduler, store, cfg.Debate.TickInterval, logger)

	// Restart runners for debates that were live before the restart
	if err := orchestrator.ResumeActive(context.Background()); err != nil {
		log.Printf("Warning: failed to resume active debates: %v", err)
	}

	// Initialize services
	debateService := debateUsecase.NewService(debateRepo, store, orchestrator, cfg, logger)
	exportService := export.NewService(artifactStore, logger)

	// Initialize handlers
	log.Println("🚀 Initializing handlers...")
	debateHandler := handler.NewDebateHandler(debateService, exportService, logger)
	providerHandler := handler.NewProviderHandler(registry, logger)

	// Setup router with handlers
	log.Println("🛣️  Setting up routes...")
	router := handler.NewRouter(cfg, debateHandler, providerHandler)
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

	// Stop debate runners before closing the HTTP server
	orchestrator.Shutdown()

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}
