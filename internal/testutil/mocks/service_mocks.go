package mocks

import (
	"context"

	"github.com/devjourney/journey-go/internal/domain/service"
	"github.com/devjourney/journey-go/internal/dto/request"
	"github.com/devjourney/journey-go/internal/dto/response"
	"github.com/devjourney/journey-go/internal/security"
)

// MockTokenVerifier is a canned implementation of security.TokenVerifier.
type MockTokenVerifier struct {
	VerifyFunc func(ctx context.Context, token string) (*security.Identity, error)
	Identity   *security.Identity
	Err        error
}

var _ security.TokenVerifier = (*MockTokenVerifier)(nil)

func (m *MockTokenVerifier) Verify(ctx context.Context, token string) (*security.Identity, error) {
	if m.VerifyFunc != nil {
		return m.VerifyFunc(ctx, token)
	}
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Identity != nil {
		return m.Identity, nil
	}
	return &security.Identity{Email: "testuser@example.com", Name: "Test User"}, nil
}

// MockAuthService is a mock implementation of AuthService
type MockAuthService struct {
	SignInFunc func(ctx context.Context, req *request.GoogleAuthRequest) (*response.AuthResponse, error)
}

var _ service.AuthService = (*MockAuthService)(nil)

func (m *MockAuthService) SignIn(ctx context.Context, req *request.GoogleAuthRequest) (*response.AuthResponse, error) {
	if m.SignInFunc != nil {
		return m.SignInFunc(ctx, req)
	}
	return &response.AuthResponse{
		Username: "testuser",
		Email:    "testuser@example.com",
	}, nil
}

// MockJourneyService is a mock implementation of JourneyService
type MockJourneyService struct {
	GetFunc             func(ctx context.Context, username string) (*response.UserRecordResponse, error)
	CompleteMissionFunc func(ctx context.Context, username string, req *request.CompleteMissionRequest) (*response.UserRecordResponse, error)
	SaveStateFunc       func(ctx context.Context, username string, req *request.SaveStateRequest) (*response.UserRecordResponse, error)
}

var _ service.JourneyService = (*MockJourneyService)(nil)

func (m *MockJourneyService) Get(ctx context.Context, username string) (*response.UserRecordResponse, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, username)
	}
	return &response.UserRecordResponse{
		ID:                username,
		Username:          username,
		CompletedMissions: []string{},
		ItemsCollected:    []string{},
	}, nil
}

func (m *MockJourneyService) CompleteMission(ctx context.Context, username string, req *request.CompleteMissionRequest) (*response.UserRecordResponse, error) {
	if m.CompleteMissionFunc != nil {
		return m.CompleteMissionFunc(ctx, username, req)
	}
	return &response.UserRecordResponse{
		ID:                username,
		Username:          username,
		CompletedMissions: []string{req.MissionID()},
		ItemsCollected:    []string{},
	}, nil
}

func (m *MockJourneyService) SaveState(ctx context.Context, username string, req *request.SaveStateRequest) (*response.UserRecordResponse, error) {
	if m.SaveStateFunc != nil {
		return m.SaveStateFunc(ctx, username, req)
	}
	return &response.UserRecordResponse{
		ID:                username,
		Username:          username,
		CompletedMissions: []string{},
		ItemsCollected:    []string{},
		CurrentMission:    req.CurrentMission,
		Position:          req.Position,
	}, nil
}

// MockProfileService is a mock implementation of ProfileService
type MockProfileService struct {
	SaveFunc func(ctx context.Context, req *request.UserProfileRequest) error
}

var _ service.ProfileService = (*MockProfileService)(nil)

func (m *MockProfileService) Save(ctx context.Context, req *request.UserProfileRequest) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, req)
	}
	return nil
}

// MockDiagnosticsService is a mock implementation of DiagnosticsService
type MockDiagnosticsService struct {
	CheckFunc func(ctx context.Context) *response.StoreTestResponse
}

var _ service.DiagnosticsService = (*MockDiagnosticsService)(nil)

func (m *MockDiagnosticsService) Check(ctx context.Context) *response.StoreTestResponse {
	if m.CheckFunc != nil {
		return m.CheckFunc(ctx)
	}
	return &response.StoreTestResponse{Connected: true, RoundTrip: true}
}
