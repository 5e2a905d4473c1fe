package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/devjourney/journey-go/internal/config"
	"github.com/devjourney/journey-go/internal/domain/service"
	"github.com/devjourney/journey-go/internal/domain/service/impl"
	"github.com/devjourney/journey-go/internal/dto/request"
	"github.com/devjourney/journey-go/internal/dto/response"
	"github.com/devjourney/journey-go/internal/middleware"
	"github.com/devjourney/journey-go/internal/security"
	"github.com/devjourney/journey-go/internal/testutil/mocks"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func sessionConfig() *config.SessionConfig {
	return &config.SessionConfig{CookieName: "session", CacheTTL: time.Minute}
}

func setupSessions(verifier security.TokenVerifier) (*security.SessionService, *middleware.SessionAuth) {
	cfg := sessionConfig()
	sessions := security.NewSessionService(verifier, security.NewTokenCache(nil, cfg, zap.NewNop()), cfg, zap.NewNop())
	return sessions, middleware.NewSessionAuth(sessions)
}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func withSession(req *http.Request) *http.Request {
	req.AddCookie(&http.Cookie{Name: "session", Value: "tok"})
	return req
}

// Auth Controller Tests

func TestAuthController_SignIn_Success(t *testing.T) {
	verifier := &mocks.MockTokenVerifier{Identity: &security.Identity{Email: "alice@example.com", Name: "Alice"}}
	sessions, _ := setupSessions(verifier)
	controller := NewAuthController(&mocks.MockAuthService{
		SignInFunc: func(ctx context.Context, req *request.GoogleAuthRequest) (*response.AuthResponse, error) {
			return &response.AuthResponse{Username: "alice", Email: "alice@example.com", Name: "Alice"}, nil
		},
	}, sessions)

	router := gin.New()
	controller.RegisterRoutes(router.Group("/api"))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest(http.MethodPost, "/api/auth/google", `{"token":"tok-123"}`))

	if w.Code != http.StatusOK {
		t.Fatalf("SignIn() status = %v, want %v (%s)", w.Code, http.StatusOK, w.Body.String())
	}

	var resp response.AuthResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Username != "alice" || resp.Email != "alice@example.com" {
		t.Errorf("SignIn() response = %+v", resp)
	}

	cookie := w.Header().Get("Set-Cookie")
	if cookie == "" {
		t.Fatal("SignIn() did not set a session cookie")
	}
	if want := "session=tok-123"; !bytes.Contains([]byte(cookie), []byte(want)) {
		t.Errorf("Set-Cookie = %q, want it to contain %q", cookie, want)
	}
}

func TestAuthController_SignIn_MissingToken(t *testing.T) {
	sessions, _ := setupSessions(&mocks.MockTokenVerifier{})
	controller := NewAuthController(&mocks.MockAuthService{}, sessions)

	router := gin.New()
	controller.RegisterRoutes(router.Group("/api"))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest(http.MethodPost, "/api/auth/google", `{}`))

	if w.Code != http.StatusBadRequest {
		t.Errorf("SignIn() status = %v, want %v", w.Code, http.StatusBadRequest)
	}
	if w.Header().Get("Set-Cookie") != "" {
		t.Error("failed sign-in must not set a cookie")
	}
}

func TestAuthController_SignIn_InvalidToken(t *testing.T) {
	sessions, _ := setupSessions(&mocks.MockTokenVerifier{})
	controller := NewAuthController(&mocks.MockAuthService{
		SignInFunc: func(ctx context.Context, req *request.GoogleAuthRequest) (*response.AuthResponse, error) {
			return nil, service.ErrInvalidToken
		},
	}, sessions)

	router := gin.New()
	controller.RegisterRoutes(router.Group("/api"))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest(http.MethodPost, "/api/auth/google", `{"token":"bad"}`))

	if w.Code != http.StatusBadRequest {
		t.Errorf("SignIn() status = %v, want %v", w.Code, http.StatusBadRequest)
	}
}

func TestAuthController_SignIn_StoreError(t *testing.T) {
	sessions, _ := setupSessions(&mocks.MockTokenVerifier{})
	controller := NewAuthController(&mocks.MockAuthService{
		SignInFunc: func(ctx context.Context, req *request.GoogleAuthRequest) (*response.AuthResponse, error) {
			return nil, errors.New("store down")
		},
	}, sessions)

	router := gin.New()
	controller.RegisterRoutes(router.Group("/api"))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest(http.MethodPost, "/api/auth/google", `{"token":"tok"}`))

	if w.Code != http.StatusInternalServerError {
		t.Errorf("SignIn() status = %v, want %v", w.Code, http.StatusInternalServerError)
	}
}

// User Controller Tests

func setupUserRouter(journeyService service.JourneyService) *gin.Engine {
	verifier := &mocks.MockTokenVerifier{Identity: &security.Identity{Email: "alice@example.com"}}
	_, sessionAuth := setupSessions(verifier)
	controller := NewUserController(journeyService, sessionAuth)

	router := gin.New()
	controller.RegisterRoutes(router.Group("/api"))
	return router
}

func TestUserController_Get_RequiresSession(t *testing.T) {
	router := setupUserRouter(&mocks.MockJourneyService{})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/user", nil))

	if w.Code != http.StatusUnauthorized {
		t.Errorf("Get() status = %v, want %v", w.Code, http.StatusUnauthorized)
	}
}

func TestUserController_Get_ReturnsRecord(t *testing.T) {
	router := setupUserRouter(&mocks.MockJourneyService{})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, withSession(httptest.NewRequest(http.MethodGet, "/api/user", nil)))

	if w.Code != http.StatusOK {
		t.Fatalf("Get() status = %v (%s)", w.Code, w.Body.String())
	}

	var resp response.UserRecordResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Username != "alice" {
		t.Errorf("Get() Username = %q, want alice", resp.Username)
	}
	if resp.CompletedMissions == nil {
		t.Error("Get() completedMissions missing, want empty list")
	}
}

func TestUserController_CompleteMission_FlatBody(t *testing.T) {
	var got string
	router := setupUserRouter(&mocks.MockJourneyService{
		CompleteMissionFunc: func(ctx context.Context, username string, req *request.CompleteMissionRequest) (*response.UserRecordResponse, error) {
			got = req.MissionID()
			return &response.UserRecordResponse{Username: username, CompletedMissions: []string{got}, ItemsCollected: []string{}}, nil
		},
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, withSession(jsonRequest(http.MethodPost, "/api/user", `{"id":"m1"}`)))

	if w.Code != http.StatusOK {
		t.Fatalf("CompleteMission() status = %v (%s)", w.Code, w.Body.String())
	}
	if got != "m1" {
		t.Errorf("mission id = %q, want m1", got)
	}
}

func TestUserController_CompleteMission_NestedBodyOnAliasRoute(t *testing.T) {
	var got string
	router := setupUserRouter(&mocks.MockJourneyService{
		CompleteMissionFunc: func(ctx context.Context, username string, req *request.CompleteMissionRequest) (*response.UserRecordResponse, error) {
			got = req.MissionID()
			return &response.UserRecordResponse{Username: username, CompletedMissions: []string{got}, ItemsCollected: []string{}}, nil
		},
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, withSession(jsonRequest(http.MethodPost, "/api/user/completed-missions", `{"mission":{"id":"m2"}}`)))

	if w.Code != http.StatusOK {
		t.Fatalf("CompleteMission() status = %v (%s)", w.Code, w.Body.String())
	}
	if got != "m2" {
		t.Errorf("mission id = %q, want m2", got)
	}
}

func TestUserController_CompleteMission_MissingID(t *testing.T) {
	router := setupUserRouter(&mocks.MockJourneyService{
		CompleteMissionFunc: func(ctx context.Context, username string, req *request.CompleteMissionRequest) (*response.UserRecordResponse, error) {
			return nil, service.ErrMissionRequired
		},
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, withSession(jsonRequest(http.MethodPost, "/api/user", `{}`)))

	if w.Code != http.StatusBadRequest {
		t.Errorf("CompleteMission() status = %v, want %v", w.Code, http.StatusBadRequest)
	}
}

func TestUserController_SaveState_RejectsOffBoard(t *testing.T) {
	router := setupUserRouter(&mocks.MockJourneyService{
		SaveStateFunc: func(ctx context.Context, username string, req *request.SaveStateRequest) (*response.UserRecordResponse, error) {
			return nil, service.ErrInvalidPosition
		},
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, withSession(jsonRequest(http.MethodPost, "/api/user/state", `{"position":{"x":9,"y":9}}`)))

	if w.Code != http.StatusBadRequest {
		t.Errorf("SaveState() status = %v, want %v", w.Code, http.StatusBadRequest)
	}
}

func TestUserController_SaveState_Success(t *testing.T) {
	router := setupUserRouter(&mocks.MockJourneyService{})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, withSession(jsonRequest(http.MethodPost, "/api/user/state", `{"currentMission":"m3","position":{"x":1,"y":2}}`)))

	if w.Code != http.StatusOK {
		t.Fatalf("SaveState() status = %v (%s)", w.Code, w.Body.String())
	}

	var resp response.UserRecordResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.CurrentMission != "m3" || resp.Position == nil || resp.Position.X != 1 {
		t.Errorf("SaveState() response = %+v", resp)
	}
}

// Profile Controller Tests

func TestProfileController_Save_Success(t *testing.T) {
	var saved *request.UserProfileRequest
	controller := NewProfileController(&mocks.MockProfileService{
		SaveFunc: func(ctx context.Context, req *request.UserProfileRequest) error {
			saved = req
			return nil
		},
	})

	router := gin.New()
	controller.RegisterRoutes(router.Group("/api"))

	body := `{"username":"alice","firstName":"Alice","technologyInterest":"cloud"}`
	w := httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest(http.MethodPost, "/api/user-profile", body))

	if w.Code != http.StatusOK {
		t.Fatalf("Save() status = %v (%s)", w.Code, w.Body.String())
	}
	if saved == nil || saved.Username != "alice" || saved.TechnologyInterest != "cloud" {
		t.Errorf("Save() forwarded request = %+v", saved)
	}
}

func TestProfileController_Save_MissingUsername(t *testing.T) {
	controller := NewProfileController(&mocks.MockProfileService{})

	router := gin.New()
	controller.RegisterRoutes(router.Group("/api"))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest(http.MethodPost, "/api/user-profile", `{"firstName":"Alice"}`))

	if w.Code != http.StatusBadRequest {
		t.Errorf("Save() status = %v, want %v", w.Code, http.StatusBadRequest)
	}
}

// Config and Diagnostics Controller Tests

func TestConfigController_Get(t *testing.T) {
	cfg := &config.Config{}
	cfg.Google.ClientID = "client-1"
	controller := NewConfigController(cfg)

	router := gin.New()
	controller.RegisterRoutes(router.Group("/api"))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/config", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("Get() status = %v", w.Code)
	}
	if want := `{"clientId":"client-1"}`; w.Body.String() != want {
		t.Errorf("Get() body = %s, want %s", w.Body.String(), want)
	}
}

func TestDiagnosticsController_Check_Healthy(t *testing.T) {
	controller := NewDiagnosticsController(&mocks.MockDiagnosticsService{})

	router := gin.New()
	controller.RegisterRoutes(router.Group("/api"))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/store-test", nil))

	if w.Code != http.StatusOK {
		t.Errorf("Check() status = %v, want %v", w.Code, http.StatusOK)
	}
}

func TestDiagnosticsController_Check_Unhealthy(t *testing.T) {
	controller := NewDiagnosticsController(&mocks.MockDiagnosticsService{
		CheckFunc: func(ctx context.Context) *response.StoreTestResponse {
			return &response.StoreTestResponse{Connected: false, Error: "store did not answer within the probe timeout"}
		},
	})

	router := gin.New()
	controller.RegisterRoutes(router.Group("/api"))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/store-test", nil))

	if w.Code != http.StatusInternalServerError {
		t.Errorf("Check() status = %v, want %v", w.Code, http.StatusInternalServerError)
	}
}

// End-to-end journey over real services with in-memory repositories.

func TestJourney_SignInThenCompleteMissions(t *testing.T) {
	verifier := &mocks.MockTokenVerifier{Identity: &security.Identity{Email: "alice@example.com", Name: "Alice"}}
	recordRepo := mocks.NewMockUserRecordRepository()

	sessions, sessionAuth := setupSessions(verifier)
	authController := NewAuthController(impl.NewAuthService(verifier, recordRepo, zap.NewNop()), sessions)
	userController := NewUserController(impl.NewJourneyService(recordRepo, zap.NewNop()), sessionAuth)

	router := gin.New()
	api := router.Group("/api")
	authController.RegisterRoutes(api)
	userController.RegisterRoutes(api)

	// Sign in.
	w := httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest(http.MethodPost, "/api/auth/google", `{"token":"tok"}`))
	if w.Code != http.StatusOK {
		t.Fatalf("sign-in status = %v (%s)", w.Code, w.Body.String())
	}

	// Complete two missions.
	for _, id := range []string{"m1", "m2"} {
		w = httptest.NewRecorder()
		router.ServeHTTP(w, withSession(jsonRequest(http.MethodPost, "/api/user", `{"id":"`+id+`"}`)))
		if w.Code != http.StatusOK {
			t.Fatalf("complete %s status = %v (%s)", id, w.Code, w.Body.String())
		}
	}

	// Read back.
	w = httptest.NewRecorder()
	router.ServeHTTP(w, withSession(httptest.NewRequest(http.MethodGet, "/api/user", nil)))
	if w.Code != http.StatusOK {
		t.Fatalf("get status = %v (%s)", w.Code, w.Body.String())
	}

	var resp response.UserRecordResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(resp.CompletedMissions) != 2 || resp.CompletedMissions[0] != "m1" || resp.CompletedMissions[1] != "m2" {
		t.Errorf("completedMissions = %v, want [m1 m2]", resp.CompletedMissions)
	}
}
