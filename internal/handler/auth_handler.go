package handler

import (
	"errors"

	"github.com/NAPONYAHASINE/journal/internal/middleware"
	"github.com/NAPONYAHASINE/journal/internal/repository"
	"github.com/NAPONYAHASINE/journal/internal/service"
	"github.com/NAPONYAHASINE/journal/pkg/response"
	"github.com/NAPONYAHASINE/journal/pkg/validate"
	"github.com/gin-gonic/gin"
)

// AuthHandler handles authentication API requests
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Register handles user registration
// POST /api/v1/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req service.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	user, err := h.authService.Register(&req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmailTaken):
			response.BadRequest(c, err.Error())
		case errors.Is(err, service.ErrInvalidEmail),
			errors.Is(err, validate.ErrPasswordTooShort),
			errors.Is(err, validate.ErrPasswordNoUpper),
			errors.Is(err, validate.ErrPasswordNoLower),
			errors.Is(err, validate.ErrPasswordNoDigit):
			response.BadRequest(c, err.Error())
		default:
			response.InternalError(c, err.Error())
		}
		return
	}

	response.Created(c, user)
}

// Login handles user login
// POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req service.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	token, err := h.authService.Login(&req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			response.Unauthorized(c, err.Error())
			return
		}
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, token)
}

// RefreshToken handles token refresh
// POST /api/v1/auth/refresh
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	var req struct {
		Token string `json:"token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	token, err := h.authService.RefreshToken(req.Token)
	if err != nil {
		response.Unauthorized(c, "invalid or expired token")
		return
	}

	response.Success(c, token)
}

// GetProfile returns the authenticated user's profile
// GET /api/v1/profile
func (h *AuthHandler) GetProfile(c *gin.Context) {
	user, err := h.authService.GetUserByID(middleware.GetUserID(c))
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}
	response.Success(c, user)
}

// UpdateProfile applies partial profile changes
// PUT /api/v1/profile
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	var req service.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	user, err := h.authService.UpdateProfile(middleware.GetUserID(c), &req)
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}
	response.Success(c, user)
}

// DeleteAccount removes the authenticated user and everything they own
// DELETE /api/v1/profile
func (h *AuthHandler) DeleteAccount(c *gin.Context) {
	if err := h.authService.DeleteAccount(middleware.GetUserID(c)); err != nil {
		response.InternalError(c, err.Error())
		return
	}
	response.Success(c, gin.H{"deleted": true})
}

// ListUsers lists every account, for administration
// GET /api/v1/admin/users
func (h *AuthHandler) ListUsers(c *gin.Context) {
	users, err := h.authService.ListUsers()
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}
	response.Success(c, users)
}

// AdminUpdateUser edits any account, including its admin flag
// PUT /api/v1/admin/users/:id
func (h *AuthHandler) AdminUpdateUser(c *gin.Context) {
	userID, err := parseID(c, "id")
	if err != nil {
		response.BadRequest(c, "invalid user id")
		return
	}

	var req service.AdminUpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	user, err := h.authService.AdminUpdateUser(userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrUserNotFound):
			response.NotFound(c, err.Error())
		case errors.Is(err, service.ErrEmailTaken),
			errors.Is(err, service.ErrInvalidEmail),
			errors.Is(err, validate.ErrPasswordTooShort),
			errors.Is(err, validate.ErrPasswordNoUpper),
			errors.Is(err, validate.ErrPasswordNoLower),
			errors.Is(err, validate.ErrPasswordNoDigit):
			response.BadRequest(c, err.Error())
		default:
			response.InternalError(c, err.Error())
		}
		return
	}
	response.Success(c, user)
}

// AdminDeleteUser removes any account and everything it owns
// DELETE /api/v1/admin/users/:id
func (h *AuthHandler) AdminDeleteUser(c *gin.Context) {
	userID, err := parseID(c, "id")
	if err != nil {
		response.BadRequest(c, "invalid user id")
		return
	}

	if err := h.authService.AdminDeleteUser(userID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c, err.Error())
		return
	}
	response.Success(c, gin.H{"deleted": true})
}

// RegisterRoutes registers auth, profile and admin user-management routes
func (h *AuthHandler) RegisterRoutes(rg *gin.RouterGroup, authMiddleware, adminMiddleware gin.HandlerFunc) {
	auth := rg.Group("/auth")
	{
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)
		auth.POST("/refresh", h.RefreshToken)
	}

	profile := rg.Group("/profile", authMiddleware)
	{
		profile.GET("", h.GetProfile)
		profile.PUT("", h.UpdateProfile)
		profile.DELETE("", h.DeleteAccount)
	}

	admin := rg.Group("/admin/users", authMiddleware, adminMiddleware)
	{
		admin.GET("", h.ListUsers)
		admin.PUT("/:id", h.AdminUpdateUser)
		admin.DELETE("/:id", h.AdminDeleteUser)
	}
}
