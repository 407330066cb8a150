package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "hiregate/docs" // This is for Swagger
	"hiregate/internal/auth"
	"hiregate/internal/config"
	"hiregate/internal/database"
	"hiregate/internal/handlers"
	"hiregate/internal/logger"
	"hiregate/internal/middleware"
	"hiregate/internal/repository"
	"hiregate/internal/service"
	"hiregate/internal/vault"

	httpSwagger "github.com/swaggo/http-swagger"
)

// @title HireGate API
// @version 1.0
// @description Backend API for HireGate, a role-based hiring decision and risk assessment platform

// @contact.name API Support
// @contact.email support@hiregate.io

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Setup structured logger
	logger.Setup(logger.Config{
		Level: cfg.Log.Level,
		Env:   cfg.App.Env,
	})

	slog.Info("Starting application",
		"name", cfg.App.Name,
		"version", cfg.App.Version,
		"env", cfg.App.Env,
		"log_level", cfg.Log.Level,
	)

	// Initialize database
	db, err := database.New(&cfg.Database)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func(db *database.Database) {
		err := db.Close()
		if err != nil {
			slog.Error("Failed to close database connection", "error", err)
		}
	}(db)

	slog.Info("Database connection established")

	// Run database migrations
	migrator := database.NewMigrationExecutor(db.DB)
	if err := migrator.RunMigrations("./migrations"); err != nil {
		slog.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("Database migrations completed")

	// Initialize repositories
	userRepo := repository.NewUserRepository(db.DB)
	jobRepo := repository.NewJobRepository(db.DB)
	assignmentRepo := repository.NewAssignmentRepository(db.DB)
	submissionRepo := repository.NewSubmissionRepository(db.DB)
	auditRepo := repository.NewAuditRepository(db.DB)

	// Initialize Vault transit encryption for decline reasons (if enabled)
	var vaultClient *vault.Client
	if cfg.Vault.Enabled {
		vaultClient, err = vault.NewClient(&vault.Config{
			Address:      cfg.Vault.Address,
			Token:        cfg.Vault.Token,
			TransitMount: cfg.Vault.TransitMount,
			KeyName:      cfg.Vault.KeyName,
		})
		if err != nil {
			slog.Error("Failed to initialize Vault client", "error", err)
			os.Exit(1)
		}
		slog.Info("Vault transit encryption enabled", "vault_addr", cfg.Vault.Address)
	} else {
		slog.Warn("Vault is disabled - decline reasons will be stored in plaintext")
	}

	// Initialize services
	authService := auth.NewService(&cfg.JWT)
	authSvc := service.NewAuthService(userRepo, authService)
	submissionSvc := service.NewSubmissionService(submissionRepo, assignmentRepo, jobRepo, vaultClient)
	jobSvc := service.NewJobService(jobRepo, assignmentRepo, submissionSvc, userRepo)
	decisionSvc := service.NewDecisionService(jobRepo, submissionRepo)
	auditSvc := service.NewAuditService(auditRepo)

	// Initialize middleware
	authMw := middleware.NewAuthMiddleware(authService)
	rbacMw := middleware.NewRBACMiddleware(userRepo)
	corsMw := middleware.NewCORSMiddleware(&cfg.CORS)
	rateLimiter := middleware.NewRateLimiter(&cfg.RateLimit)
	auditMw := middleware.NewAuditMiddleware(db.DB)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authSvc, auditSvc, cfg)
	jobHandler := handlers.NewJobHandler(jobSvc, authSvc)
	submissionHandler := handlers.NewSubmissionHandler(submissionSvc, authSvc)
	decisionHandler := handlers.NewDecisionHandler(decisionSvc)
	auditHandler := handlers.NewAuditHandler(auditRepo)
	configHandler := handlers.NewConfigHandler(cfg)

	// Setup router
	mux := http.NewServeMux()

	// Public routes
	mux.HandleFunc("POST /api/v1/auth/register", authHandler.Register)
	mux.HandleFunc("POST /api/v1/auth/login", authHandler.Login)
	mux.HandleFunc("GET /api/v1/config", configHandler.GetAppConfig)

	// Protected routes
	mux.Handle("GET /api/v1/users/profile", authMw.Authenticate(http.HandlerFunc(authHandler.Profile)))
	mux.Handle("GET /api/v1/users", authMw.Authenticate(http.HandlerFunc(authHandler.ListUsers)))

	// Job opening routes
	mux.Handle("POST /api/v1/jobs",
		authMw.Authenticate(
			rbacMw.RequireFounder(
				auditMw.Log("create", "job_opening", "Job opening proposed")(
					http.HandlerFunc(jobHandler.Create),
				),
			),
		),
	)
	mux.Handle("GET /api/v1/jobs", authMw.Authenticate(http.HandlerFunc(jobHandler.List)))
	mux.Handle("GET /api/v1/jobs/{id}", authMw.Authenticate(http.HandlerFunc(jobHandler.Get)))
	mux.Handle("POST /api/v1/jobs/{id}/reviewers",
		authMw.Authenticate(
			rbacMw.RequireFounder(
				auditMw.Log("assign", "review_assignment", "Reviewers assigned")(
					http.HandlerFunc(jobHandler.AssignReviewers),
				),
			),
		),
	)
	mux.Handle("PUT /api/v1/jobs/{id}/status",
		authMw.Authenticate(
			rbacMw.RequireFounder(
				auditMw.Log("update", "job_opening", "Job opening status changed")(
					http.HandlerFunc(jobHandler.UpdateStatus),
				),
			),
		),
	)

	// Submission routes
	mux.Handle("POST /api/v1/jobs/{id}/submissions",
		authMw.Authenticate(
			auditMw.Log("submit", "submission", "Assessment submitted")(
				http.HandlerFunc(submissionHandler.Submit),
			),
		),
	)
	mux.Handle("GET /api/v1/jobs/{id}/submissions/mine", authMw.Authenticate(http.HandlerFunc(submissionHandler.GetMine)))
	mux.Handle("GET /api/v1/submissions/{id}", authMw.Authenticate(http.HandlerFunc(submissionHandler.GetByID)))
	mux.Handle("GET /api/v1/assignments/mine", authMw.Authenticate(http.HandlerFunc(jobHandler.MyAssignments)))

	// Decision routes. The aggregate recommendation is restricted to the
	// founders who act on it.
	mux.Handle("GET /api/v1/jobs/{id}/decision",
		authMw.Authenticate(
			rbacMw.RequireFounder(
				http.HandlerFunc(decisionHandler.Evaluate),
			),
		),
	)

	// Audit log routes
	mux.Handle("GET /api/v1/audit-logs",
		authMw.Authenticate(
			rbacMw.RequireFounder(
				http.HandlerFunc(auditHandler.ListAuditLogs),
			),
		),
	)

	// Health check endpoint
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		if err := db.HealthCheck(); err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			_, err := w.Write([]byte(`{"status":"unhealthy","database":"error"}`))
			if err != nil {
				slog.Error("Failed to write health check response", "error", err)
				return
			}
			return
		}
		if vaultClient != nil {
			if err := vaultClient.Health(); err != nil {
				slog.Error("Vault health check failed", "error", err)
				w.WriteHeader(http.StatusServiceUnavailable)
				if _, err := w.Write([]byte(`{"status":"unhealthy","vault":"error"}`)); err != nil {
					slog.Error("Failed to write health check response", "error", err)
				}
				return
			}
		}
		w.WriteHeader(http.StatusOK)
		_, err := w.Write([]byte(`{"status":"healthy","version":"` + cfg.App.Version + `"}`))
		if err != nil {
			slog.Error("Failed to write health check response", "error", err)
			return
		}
	})

	// Swagger documentation
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	// Apply global middleware
	handler := middleware.LoggingMiddleware(
		middleware.SecurityHeaders(
			corsMw.Handler(
				rateLimiter.Limit(mux),
			),
		),
	)

	// Create server
	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  cfg.Server.TimeoutRead,
		WriteTimeout: cfg.Server.TimeoutWrite,
		IdleTimeout:  cfg.Server.TimeoutIdle,
	}

	// Start server in a goroutine
	go func() {
		slog.Info("Server starting", "address", addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Server shutting down...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited")
}
