package v1

import (
	"net/http"

	"emplynix-backend/internal/delivery/http/response"
	"emplynix-backend/internal/domain"
	"emplynix-backend/pkg/apperror"
	"emplynix-backend/pkg/validation"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUC domain.AuthUsecase
}

// NewAuthHandler registers the auth routes. Login and create-admin are
// public; create-admin matches the original deployment where the first
// admin has to be creatable before anyone can log in.
func NewAuthHandler(public *gin.RouterGroup, protected *gin.RouterGroup, authUC domain.AuthUsecase, loginLimiter gin.HandlerFunc) {
	handler := &AuthHandler{authUC: authUC}

	auth := public.Group("/auth")
	{
		auth.POST("/login", loginLimiter, handler.Login)
		auth.POST("/create-admin", loginLimiter, handler.CreateAdmin)
	}

	protected.GET("/auth/validate", handler.Validate)
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type CreateAdminRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Name     string `json:"name" binding:"required"`
}

// Login godoc
// @Summary      Log in
// @Description  Exchange email and password for a 24-hour bearer token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        credentials  body      LoginRequest  true  "Credentials"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.Validation(validation.FormatValidationErrors(err)))
		return
	}

	token, user, err := h.authUC.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Login successful", gin.H{
		"token": token,
		"user":  user,
	})
}

// CreateAdmin godoc
// @Summary      Create an admin user
// @Description  Register a new admin account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        admin  body      CreateAdminRequest  true  "Admin account"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Router       /auth/create-admin [post]
func (h *AuthHandler) CreateAdmin(c *gin.Context) {
	var req CreateAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.Validation(validation.FormatValidationErrors(err)))
		return
	}

	if err := h.authUC.CreateAdmin(c.Request.Context(), req.Email, req.Password, req.Name); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Admin user created successfully", nil)
}

// Validate godoc
// @Summary      Validate token
// @Description  Resolve the bearer token to its user
// @Tags         auth
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /auth/validate [get]
// @Security     BearerAuth
func (h *AuthHandler) Validate(c *gin.Context) {
	// AuthMiddleware already resolved the user; re-read for the full record.
	userID := c.GetInt64(string(domain.KeyUserID))
	user, err := h.authUC.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Token valid", gin.H{"user": user})
}
