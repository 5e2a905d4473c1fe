package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/devjourney/journey-go/internal/domain/service"
	"github.com/devjourney/journey-go/internal/dto/request"
	"github.com/devjourney/journey-go/internal/dto/response"
	"github.com/devjourney/journey-go/internal/middleware"
	apperrors "github.com/devjourney/journey-go/pkg/errors"
)

// UserController handles journey progress endpoints
type UserController struct {
	journeyService service.JourneyService
	sessionAuth    *middleware.SessionAuth
}

// NewUserController creates a new UserController instance
func NewUserController(journeyService service.JourneyService, sessionAuth *middleware.SessionAuth) *UserController {
	return &UserController{
		journeyService: journeyService,
		sessionAuth:    sessionAuth,
	}
}

// RegisterRoutes registers the user routes
func (c *UserController) RegisterRoutes(router *gin.RouterGroup) {
	user := router.Group("/user")
	user.Use(c.sessionAuth.Authenticate())
	{
		user.GET("", c.Get)
		user.POST("", c.CompleteMission)
		// Older clients post completions to a dedicated path.
		user.POST("/completed-missions", c.CompleteMission)
		user.POST("/state", c.SaveState)
	}
}

// Get returns the signed-in user's journey record
// @Summary Get the current user's progress
// @Tags User
// @Produce json
// @Success 200 {object} response.UserRecordResponse
// @Failure 401 {object} response.Error
// @Router /api/user [get]
func (c *UserController) Get(ctx *gin.Context) {
	username := middleware.CurrentUsername(ctx)

	record, err := c.journeyService.Get(ctx.Request.Context(), username)
	if err != nil {
		ctx.JSON(apperrors.GetStatus(err), response.NewError("could not load user record"))
		return
	}

	ctx.JSON(http.StatusOK, record)
}

// CompleteMission appends a finished mission to the user's record
// @Summary Record a completed mission
// @Tags User
// @Accept json
// @Produce json
// @Param request body request.CompleteMissionRequest true "Completed mission"
// @Success 200 {object} response.UserRecordResponse
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Router /api/user [post]
func (c *UserController) CompleteMission(ctx *gin.Context) {
	var req request.CompleteMissionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, response.NewError("invalid request body"))
		return
	}

	username := middleware.CurrentUsername(ctx)

	record, err := c.journeyService.CompleteMission(ctx.Request.Context(), username, &req)
	if err != nil {
		if errors.Is(err, service.ErrMissionRequired) {
			ctx.JSON(http.StatusBadRequest, response.NewError("mission id is required"))
			return
		}
		ctx.JSON(apperrors.GetStatus(err), response.NewError("could not record mission"))
		return
	}

	ctx.JSON(http.StatusOK, record)
}

// SaveState merge-writes the user's resumable state
// @Summary Save the current mission and board position
// @Tags User
// @Accept json
// @Produce json
// @Param request body request.SaveStateRequest true "Resume state"
// @Success 200 {object} response.UserRecordResponse
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Router /api/user/state [post]
func (c *UserController) SaveState(ctx *gin.Context) {
	var req request.SaveStateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, response.NewError("invalid request body"))
		return
	}

	username := middleware.CurrentUsername(ctx)

	record, err := c.journeyService.SaveState(ctx.Request.Context(), username, &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidPosition) {
			ctx.JSON(http.StatusBadRequest, response.NewError("position is outside the board"))
			return
		}
		ctx.JSON(apperrors.GetStatus(err), response.NewError("could not save state"))
		return
	}

	ctx.JSON(http.StatusOK, record)
}
