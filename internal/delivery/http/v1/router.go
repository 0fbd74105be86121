package v1

import (
	"net/http"
	"time"

	"emplynix-backend/config"
	"emplynix-backend/internal/delivery/http/middleware"
	"emplynix-backend/internal/delivery/http/response"
	"emplynix-backend/internal/domain"
	"emplynix-backend/pkg/auth"
	"emplynix-backend/pkg/upload"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type RouterDeps struct {
	AuthUC      domain.AuthUsecase
	JobUC       domain.JobUsecase
	CandidateUC domain.CandidateUsecase
	ContactUC   domain.ContactUsecase
	Tokens      *auth.TokenManager
	Resumes     *upload.ResumeStore
	Config      *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{deps.Config.FrontendURL},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           24 * time.Hour,
	}))
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimit(middleware.DefaultRateLimitConfig(
		deps.Config.RateLimitGlobalThreshold, deps.Config.RateLimitWindowSeconds)))

	// Uploaded resumes are served statically from the store directory
	r.Static(upload.PublicPrefix, deps.Resumes.Dir())

	api := r.Group("/api")

	// Health Check
	api.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "Server is running!", nil)
	})

	loginLimiter := middleware.RateLimit(middleware.LoginRateLimitConfig(
		deps.Config.RateLimitLoginThreshold, deps.Config.RateLimitWindowSeconds))

	// Protected routes
	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware(deps.Tokens, deps.AuthUC))

	NewAuthHandler(api, protected, deps.AuthUC, loginLimiter)
	NewJobHandler(api, protected, deps.JobUC)
	NewCandidateHandler(api, protected, deps.CandidateUC, deps.Resumes)
	NewContactHandler(api, deps.ContactUC)

	return r
}
