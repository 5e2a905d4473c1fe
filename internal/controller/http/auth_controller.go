// Package http holds the gin controllers for the public API surface.
package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/devjourney/journey-go/internal/domain/service"
	"github.com/devjourney/journey-go/internal/dto/request"
	"github.com/devjourney/journey-go/internal/dto/response"
	"github.com/devjourney/journey-go/internal/security"
)

// AuthController handles the Google sign-in endpoint
type AuthController struct {
	authService service.AuthService
	sessions    *security.SessionService
}

// NewAuthController creates a new AuthController instance
func NewAuthController(authService service.AuthService, sessions *security.SessionService) *AuthController {
	return &AuthController{
		authService: authService,
		sessions:    sessions,
	}
}

// RegisterRoutes registers the auth routes
func (c *AuthController) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/auth/google", c.SignIn)
}

// SignIn verifies a Google ID token and establishes the session cookie
// @Summary Sign in with a Google ID token
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body request.GoogleAuthRequest true "Sign-in request"
// @Success 200 {object} response.AuthResponse
// @Failure 400 {object} response.Error
// @Router /api/auth/google [post]
func (c *AuthController) SignIn(ctx *gin.Context) {
	var req request.GoogleAuthRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, response.NewError("token is required"))
		return
	}

	authResp, err := c.authService.SignIn(ctx.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidToken) {
			ctx.JSON(http.StatusBadRequest, response.NewError("invalid token"))
			return
		}
		ctx.JSON(http.StatusInternalServerError, response.NewError("sign-in failed"))
		return
	}

	c.sessions.Establish(ctx, req.Token)
	ctx.JSON(http.StatusOK, authResp)
}
