// File: internal/auth/handler.go
package auth

import (
	"errors"
	"net/http"

	"uniconnect_backend/internal/common"
	"uniconnect_backend/internal/user"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// Handler struct holds dependencies for auth handlers.
type Handler struct {
	users        *user.Service
	sessions     *SessionIssuer
	oauthService OAuthService
	logger       *zap.Logger
}

// NewHandler creates a new auth handler.
func NewHandler(
	users *user.Service,
	sessions *SessionIssuer,
	oauthService OAuthService,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		users:        users,
		sessions:     sessions,
		oauthService: oauthService,
		logger:       logger,
	}
}

// RegisterRoutes sets up the routes for authentication operations.
func (h *Handler) RegisterRoutes(router *gin.RouterGroup, authMW gin.HandlerFunc) {
	authGroup := router.Group("/auth")
	{
		authGroup.POST("/register", h.register)
		authGroup.POST("/login", h.login)
		authGroup.GET("/google/login", h.googleLogin)
		authGroup.GET("/google/callback", h.googleCallback)
		authGroup.GET("/me", authMW, h.me)
	}
}

func (h *Handler) register(c *gin.Context) {
	var req user.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("Register: invalid request body", zap.Error(err))
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			common.RespondWithError(c, common.NewValidationAPIError(common.FormatValidationErrors(ve)))
			return
		}
		common.RespondWithError(c, common.ErrBadRequest.WithDetails(err.Error()))
		return
	}

	newUser, err := h.users.Register(c.Request.Context(), req)
	if err != nil {
		common.RespondWithError(c, err)
		return
	}

	session, err := h.sessions.IssueFor(user.DBToShared(newUser))
	if err != nil {
		h.logger.Error("Failed to issue session after registration", zap.Error(err),
			zap.String("userID", newUser.ID.String()))
		common.RespondWithError(c, common.ErrInternalServer.WithDetails("Could not issue session token."))
		return
	}
	common.RespondCreated(c, "Registration successful.", session)
}

func (h *Handler) login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("Login: invalid request body", zap.Error(err))
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			common.RespondWithError(c, common.NewValidationAPIError(common.FormatValidationErrors(ve)))
			return
		}
		common.RespondWithError(c, common.ErrBadRequest.WithDetails(err.Error()))
		return
	}

	loggedInUser, err := h.users.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		common.RespondWithError(c, err)
		return
	}

	session, err := h.sessions.IssueFor(user.DBToShared(loggedInUser))
	if err != nil {
		h.logger.Error("Failed to issue session after login", zap.Error(err),
			zap.String("userID", loggedInUser.ID.String()))
		common.RespondWithError(c, common.ErrInternalServer.WithDetails("Could not issue session token."))
		return
	}
	common.RespondOK(c, "Login successful.", session)
}

func (h *Handler) googleLogin(c *gin.Context) {
	authURL, err := h.oauthService.GetGoogleLoginURL(c)
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	c.Redirect(http.StatusTemporaryRedirect, authURL)
}

func (h *Handler) googleCallback(c *gin.Context) {
	if errorParam := c.Query("error"); errorParam != "" {
		errorDesc := c.Query("error_description")
		h.logger.Error("Google OAuth callback error",
			zap.String("error", errorParam), zap.String("description", errorDesc))
		common.RespondWithError(c, common.ErrUnauthorized.WithDetails("Google login failed: "+errorDesc))
		return
	}

	code := c.Query("code")
	state := c.Query("state")
	if code == "" || state == "" {
		h.logger.Warn("Google callback missing code or state")
		common.RespondWithError(c, common.ErrBadRequest.WithDetails("Missing authorization code or state from Google."))
		return
	}

	resolvedUser, err := h.oauthService.HandleGoogleCallback(c, code, state)
	if err != nil {
		common.RespondWithError(c, err)
		return
	}

	session, err := h.sessions.IssueFor(user.DBToShared(resolvedUser))
	if err != nil {
		h.logger.Error("Failed to issue session after Google callback", zap.Error(err),
			zap.String("userID", resolvedUser.ID.String()))
		common.RespondWithError(c, common.ErrInternalServer.WithDetails("Could not issue session token."))
		return
	}
	common.RespondOK(c, "Google login successful.", session)
}

func (h *Handler) me(c *gin.Context) {
	userID := common.GetUserIDFromContext(c)
	u, err := h.users.GetByID(c.Request.Context(), userID)
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondOK(c, "User retrieved.", user.ToUserResponse(u))
}
