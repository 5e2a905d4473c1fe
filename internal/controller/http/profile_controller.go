package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/devjourney/journey-go/internal/domain/service"
	"github.com/devjourney/journey-go/internal/dto/request"
	"github.com/devjourney/journey-go/internal/dto/response"
)

// ProfileController handles the contact profile endpoint
type ProfileController struct {
	profileService service.ProfileService
}

// NewProfileController creates a new ProfileController instance
func NewProfileController(profileService service.ProfileService) *ProfileController {
	return &ProfileController{profileService: profileService}
}

// RegisterRoutes registers the profile routes
func (c *ProfileController) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/user-profile", c.Save)
}

// Save merge-upserts the submitted profile
// @Summary Save contact profile fields
// @Tags Profile
// @Accept json
// @Produce json
// @Param request body request.UserProfileRequest true "Profile fields"
// @Success 200 {object} map[string]string
// @Failure 400 {object} response.Error
// @Router /api/user-profile [post]
func (c *ProfileController) Save(ctx *gin.Context) {
	var req request.UserProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, response.NewError("username is required"))
		return
	}

	if err := c.profileService.Save(ctx.Request.Context(), &req); err != nil {
		ctx.JSON(http.StatusInternalServerError, response.NewError("could not save profile"))
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "profile saved"})
}
