package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"emplynix-backend/config"
	v1 "emplynix-backend/internal/delivery/http/v1"
	"emplynix-backend/internal/repository/postgres"
	"emplynix-backend/internal/usecase"
	"emplynix-backend/pkg/auth"
	"emplynix-backend/pkg/database"
	"emplynix-backend/pkg/email"
	"emplynix-backend/pkg/logger"
	"emplynix-backend/pkg/redis"
	"emplynix-backend/pkg/upload"
)

func main() {
	// 1. Load Config (fails closed when JWT_SECRET is missing)
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting staffing backend", "port", cfg.Port)

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// 4. Setup Redis (rate limiting; in-memory fallback when unavailable)
	if err := redis.Initialize(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
		logger.Log.Warn("Redis unavailable, rate limiting falls back to in-memory", "error", err)
	}
	defer redis.Close()

	// 5. Setup Token Manager
	tokens, err := auth.NewTokenManager(cfg.JWTSecret)
	if err != nil {
		logger.Log.Error("Failed to initialize token manager", "error", err)
		os.Exit(1)
	}

	// 6. Setup Resume Store
	resumes, err := upload.NewResumeStore(cfg.UploadDir)
	if err != nil {
		logger.Log.Error("Failed to prepare upload directory", "error", err)
		os.Exit(1)
	}

	// 7. Setup Email Service
	emailService := email.NewEmailService(cfg)
	if !emailService.IsConfigured() {
		logger.Log.Warn("Email service not fully configured - contact form will be unavailable")
	}

	// 8. Setup Repositories
	userRepo := postgres.NewUserRepository(dbPool)
	jobRepo := postgres.NewJobRepository(dbPool)
	candidateRepo := postgres.NewCandidateRepository(dbPool)

	// 9. Setup UseCases
	authUC := usecase.NewAuthUsecase(userRepo, tokens)
	jobUC := usecase.NewJobUsecase(jobRepo)
	candidateUC := usecase.NewCandidateUsecase(candidateRepo, jobRepo)
	contactUC := usecase.NewContactUsecase(emailService)

	// 10. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		AuthUC:      authUC,
		JobUC:       jobUC,
		CandidateUC: candidateUC,
		ContactUC:   contactUC,
		Tokens:      tokens,
		Resumes:     resumes,
		Config:      cfg,
	})

	// 11. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
