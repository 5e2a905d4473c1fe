package di

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/devjourney/journey-go/internal/config"
	"github.com/devjourney/journey-go/internal/observability"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestPrintBanner(t *testing.T) {
	cfg := &config.Config{
		App: config.AppConfig{
			Name:        "journey-backend",
			Version:     "1.0.0",
			Environment: "test",
		},
	}
	cfg.Database.Name = "journey"

	// Just ensure PrintBanner doesn't panic
	PrintBanner(cfg, zap.NewNop())
}

func TestProvideLogger(t *testing.T) {
	for _, debug := range []bool{true, false} {
		logger, err := provideLogger(&config.AppConfig{Debug: debug})
		if err != nil {
			t.Fatalf("provideLogger(debug=%v) error = %v", debug, err)
		}
		if logger == nil {
			t.Errorf("provideLogger(debug=%v) returned nil", debug)
		}
	}
}

func TestModulesNotNil(t *testing.T) {
	tests := []struct {
		name   string
		module fx.Option
	}{
		{"ConfigModule", ConfigModule},
		{"LoggerModule", LoggerModule},
		{"DatabaseModule", DatabaseModule},
		{"ObservabilityModule", ObservabilityModule},
		{"DAOModule", DAOModule},
		{"RepositoryModule", RepositoryModule},
		{"SecurityModule", SecurityModule},
		{"ServiceModule", ServiceModule},
		{"MiddlewareModule", MiddlewareModule},
		{"ControllerModule", ControllerModule},
		{"ProbeModule", ProbeModule},
		{"HTTPServerModule", HTTPServerModule},
		{"AppModule", AppModule},
	}

	for _, tt := range tests {
		if tt.module == nil {
			t.Errorf("%s is nil", tt.name)
		}
	}
}

func TestProvideGinEngine_MethodNotAllowed(t *testing.T) {
	metrics := observability.NewMetrics(&config.MetricsConfig{Enabled: true, Path: "/metrics"}, zap.NewNop())
	router := provideGinEngine(&config.AppConfig{Debug: true}, metrics, zap.NewNop())
	router.GET("/api/config", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/config", nil))

	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("wrong-method status = %v, want %v", w.Code, http.StatusMethodNotAllowed)
	}
}

func TestProvideHTTPServer(t *testing.T) {
	metrics := observability.NewMetrics(&config.MetricsConfig{}, zap.NewNop())
	router := provideGinEngine(&config.AppConfig{Debug: true}, metrics, zap.NewNop())

	server := provideHTTPServer(&config.ServerConfig{Host: "127.0.0.1", Port: 8080}, router)
	if server.Addr != "127.0.0.1:8080" {
		t.Errorf("server.Addr = %q", server.Addr)
	}
	if server.Handler == nil {
		t.Error("server.Handler is nil")
	}
}
