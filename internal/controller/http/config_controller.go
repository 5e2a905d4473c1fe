package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/devjourney/journey-go/internal/config"
	"github.com/devjourney/journey-go/internal/domain/service"
	"github.com/devjourney/journey-go/internal/dto/response"
)

// ConfigController serves the public client configuration
type ConfigController struct {
	cfg *config.Config
}

// NewConfigController creates a new ConfigController instance
func NewConfigController(cfg *config.Config) *ConfigController {
	return &ConfigController{cfg: cfg}
}

// RegisterRoutes registers the config routes
func (c *ConfigController) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/config", c.Get)
}

// Get returns the configuration the browser needs before sign-in
// @Summary Get public client configuration
// @Tags Config
// @Produce json
// @Success 200 {object} response.ConfigResponse
// @Router /api/config [get]
func (c *ConfigController) Get(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, response.ConfigResponse{ClientID: c.cfg.Google.ClientID})
}

// DiagnosticsController serves the store connectivity check
type DiagnosticsController struct {
	diagnostics service.DiagnosticsService
}

// NewDiagnosticsController creates a new DiagnosticsController instance
func NewDiagnosticsController(diagnostics service.DiagnosticsService) *DiagnosticsController {
	return &DiagnosticsController{diagnostics: diagnostics}
}

// RegisterRoutes registers the diagnostics routes
func (c *DiagnosticsController) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/store-test", c.Check)
}

// Check probes the store and reports the result
// @Summary Probe store connectivity
// @Tags Diagnostics
// @Produce json
// @Success 200 {object} response.StoreTestResponse
// @Router /api/store-test [get]
func (c *DiagnosticsController) Check(ctx *gin.Context) {
	resp := c.diagnostics.Check(ctx.Request.Context())

	status := http.StatusOK
	if !resp.Connected || !resp.RoundTrip {
		status = http.StatusInternalServerError
	}
	ctx.JSON(status, resp)
}
