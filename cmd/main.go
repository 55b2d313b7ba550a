package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"
	_ "github.com/go-sql-driver/mysql"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/mysql"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/inclulearn/backend/docs"
	"github.com/inclulearn/backend/internal/catalog"
	"github.com/inclulearn/backend/internal/config"
	"github.com/inclulearn/backend/internal/handlers"
	"github.com/inclulearn/backend/internal/logger"
	"github.com/inclulearn/backend/internal/middleware"
	"github.com/inclulearn/backend/internal/repositories"
	"github.com/inclulearn/backend/internal/services"
	"github.com/inclulearn/backend/internal/session"
	"github.com/redis/go-redis/v9"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
)

// @title IncluLearn API
// @version 1.0
// @description API for accessible course browsing, learner progress and accounts

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:5000
// @BasePath /api
func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v\n", err)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.File); err != nil {
		log.Fatalf("Failed to initialize logger: %v\n", err)
	}
	defer logger.Sync()

	logger.Logger.Info("Starting IncluLearn API")

	// Load course catalog
	courses, err := catalog.Default()
	if err != nil {
		logger.Logger.Fatal("Failed to load course catalog", zap.Error(err))
	}

	// Select storage
	store, db, err := openStore(cfg)
	if err != nil {
		logger.Logger.Fatal("Failed to initialize storage", zap.Error(err))
	}
	if db != nil {
		defer db.Close()
	}
	logger.Logger.Info("Storage selected", zap.String("storage", string(store.Kind)))

	// Initialize session revocation
	revoker, closeRevoker := newRevoker(cfg)
	defer closeRevoker()

	// Initialize sessions
	sessions := session.NewManager(
		session.NewTokenGenerator(cfg.Session.Secret, cfg.Session.TTL),
		revoker,
		cfg.Session.CookieSecure,
		logger.Logger,
	)

	// Initialize services
	courseService := services.NewCourseService(courses)
	progressService := services.NewProgressService(courses, store.LessonProgress, store.VideoProgress, store.Quizzes, logger.Logger)
	accountService := services.NewAccountService(store.Accounts, logger.Logger)
	problemService := services.NewProblemService(store.Problems, store.Accounts, logger.Logger)

	// Initialize handlers
	courseHandler := handlers.NewCourseHandler(courseService, progressService, logger.Logger)
	progressHandler := handlers.NewProgressHandler(progressService, logger.Logger)
	accountHandler := handlers.NewAccountHandler(accountService, sessions, logger.Logger)
	problemHandler := handlers.NewProblemHandler(problemService, logger.Logger)

	var pinger handlers.Pinger
	if db != nil {
		pinger = db
	}
	healthHandler := handlers.NewHealthHandler(string(store.Kind), pinger, logger.Logger)

	metrics := middleware.NewMetrics()

	// Setup router
	r := chi.NewRouter()

	// Apply middleware
	r.Use(middleware.RequestIDMiddleware)
	r.Use(middleware.LoggerMiddleware(logger.Logger))
	r.Use(middleware.RecoveryMiddleware(logger.Logger))
	r.Use(middleware.CORSMiddleware(cfg.CORS.AllowedOrigins))
	r.Use(httprate.LimitByIP(cfg.Server.RateLimitPerMinute, time.Minute))
	r.Use(middleware.RequestSizeLimitMiddleware(middleware.MaxRequestSize))
	r.Use(metrics.Middleware)
	r.Use(sessions.Middleware)

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://localhost:%d/swagger/doc.json", cfg.Server.Port)),
	))
	r.Handle("/metrics", metrics.Handler())
	healthHandler.RegisterRoutes(r)

	// Scope router to /api
	r.Route("/api", func(r chi.Router) {
		courseHandler.RegisterRoutes(r)
		progressHandler.RegisterRoutes(r)
		accountHandler.RegisterRoutes(r, session.RequireSession)
		problemHandler.RegisterRoutes(r)
	})

	// Start server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		logger.Logger.Info("Server starting", zap.Int("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Logger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info("Shutting down server...")

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Logger.Error("Server forced to shutdown", zap.Error(err))
	}

	logger.Logger.Info("Server exited")
}

// openStore selects the persistence backend from cfg.Storage.
// In auto mode MySQL is used when it is configured and reachable, the in-memory store otherwise.
// The returned *sql.DB is nil for the in-memory store.
func openStore(cfg *config.Config) (*repositories.Store, *sql.DB, error) {
	switch cfg.Storage {
	case config.StorageMemory:
		logger.Logger.Warn("Using in-memory storage, data will be lost on restart")
		return repositories.NewMemoryStore(), nil, nil
	case config.StorageMySQL:
		return openMySQLStore(cfg)
	}

	if !cfg.Database.Configured() {
		logger.Logger.Warn("Database is not configured, using in-memory storage")
		return repositories.NewMemoryStore(), nil, nil
	}

	store, db, err := openMySQLStore(cfg)
	if err != nil {
		logger.Logger.Warn("Database unavailable, using in-memory storage", zap.Error(err))
		return repositories.NewMemoryStore(), nil, nil
	}
	return store, db, nil
}

func openMySQLStore(cfg *config.Config) (*repositories.Store, *sql.DB, error) {
	db, err := connectDB(cfg.DSN())
	if err != nil {
		return nil, nil, err
	}

	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, nil, err
	}

	return repositories.NewMySQLStore(db, logger.Logger, cfg.Database.QueryTimeout), db, nil
}

// newRevoker returns the Redis revoker when Redis is configured and reachable,
// the in-process revoker otherwise. The returned func releases the Redis client.
func newRevoker(cfg *config.Config) (session.Revoker, func()) {
	if cfg.Redis.Host == "" {
		return session.NewMemoryRevoker(), func() {}
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Logger.Warn("Redis unavailable, session revocation is kept in memory", zap.Error(err))
		rdb.Close()
		return session.NewMemoryRevoker(), func() {}
	}

	return session.NewRedisRevoker(rdb), func() { rdb.Close() }
}

// connectDB connects to the database
func connectDB(dsn string) (*sql.DB, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

// runMigrations runs database migrations
func runMigrations(db *sql.DB) error {
	driver, err := mysql.WithInstance(db, &mysql.Config{
		MigrationsTable: "inclulearn_schema_migrations",
	})
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	// Get the working directory or use migrations folder relative to the binary
	migrationPath := "file://migrations"
	if _, err := os.Stat("migrations"); os.IsNotExist(err) {
		// Try parent directory if running from cmd
		if _, err := os.Stat("../migrations"); err == nil {
			migrationPath = "file://../migrations"
		}
	}

	m, err := migrate.NewWithDatabaseInstance(
		migrationPath,
		"mysql",
		driver,
	)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}
