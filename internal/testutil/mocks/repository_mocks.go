package mocks

import (
	"context"
	"sync"

	"github.com/devjourney/journey-go/internal/domain/dao"
	"github.com/devjourney/journey-go/internal/domain/entity"
	"github.com/devjourney/journey-go/internal/domain/repository"
	"github.com/devjourney/journey-go/internal/game"
)

// MockUserRecordRepository is an in-memory implementation of
// UserRecordRepository. Appends are serialized by a mutex, mirroring the
// store's transactional guarantee, so concurrency tests are meaningful.
type MockUserRecordRepository struct {
	mu      sync.Mutex
	records map[string]*entity.UserRecord

	// Error injection
	GetOrCreateErr         error
	SetErr                 error
	AddCompletedMissionErr error
}

var _ repository.UserRecordRepository = (*MockUserRecordRepository)(nil)

func NewMockUserRecordRepository() *MockUserRecordRepository {
	return &MockUserRecordRepository{
		records: make(map[string]*entity.UserRecord),
	}
}

// AddRecord seeds a record, keyed by its username.
func (r *MockUserRecordRepository) AddRecord(record *entity.UserRecord) {
	r.mu.Lock()
	defer r.mu.Unlock()
	record.Normalize()
	r.records[record.Username] = record
}

// Record returns a copy of the stored record, or nil.
func (r *MockUserRecordRepository) Record(username string) *entity.UserRecord {
	r.mu.Lock()
	defer r.mu.Unlock()
	if record, ok := r.records[username]; ok {
		clone := *record
		return &clone
	}
	return nil
}

func (r *MockUserRecordRepository) GetOrCreate(ctx context.Context, username string) (*entity.UserRecord, error) {
	if r.GetOrCreateErr != nil {
		return nil, r.GetOrCreateErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if record, ok := r.records[username]; ok {
		clone := *record
		return &clone, nil
	}
	record := entity.NewUserRecord(username)
	r.records[username] = record
	clone := *record
	return &clone, nil
}

func (r *MockUserRecordRepository) Set(ctx context.Context, username string, fields map[string]any) error {
	if r.SetErr != nil {
		return r.SetErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	record, ok := r.records[username]
	if !ok {
		record = entity.NewUserRecord(username)
		r.records[username] = record
	}
	for key, value := range fields {
		switch key {
		case "completed_missions":
			if missions, ok := value.([]string); ok {
				record.CompletedMissions = missions
			}
		case "items_collected":
			if items, ok := value.([]string); ok {
				record.ItemsCollected = items
			}
		case "current_mission":
			if mission, ok := value.(string); ok {
				record.CurrentMission = mission
			}
		case "position":
			if pos, ok := value.(*game.Position); ok {
				record.Position = pos
			}
		}
	}
	return nil
}

func (r *MockUserRecordRepository) AddCompletedMission(ctx context.Context, username, missionID string) (*entity.UserRecord, error) {
	if r.AddCompletedMissionErr != nil {
		return nil, r.AddCompletedMissionErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	record, ok := r.records[username]
	if !ok {
		record = entity.NewUserRecord(username)
		r.records[username] = record
	}
	record.CompletedMissions = append(record.CompletedMissions, missionID)
	clone := *record
	clone.CompletedMissions = append([]string(nil), record.CompletedMissions...)
	return &clone, nil
}

// MockUserProfileRepository is an in-memory implementation of
// UserProfileRepository with the store's merge semantics.
type MockUserProfileRepository struct {
	mu       sync.Mutex
	profiles map[string]*entity.UserProfile

	SaveErr error
	GetErr  error
}

var _ repository.UserProfileRepository = (*MockUserProfileRepository)(nil)

func NewMockUserProfileRepository() *MockUserProfileRepository {
	return &MockUserProfileRepository{
		profiles: make(map[string]*entity.UserProfile),
	}
}

func (r *MockUserProfileRepository) Save(ctx context.Context, profile *entity.UserProfile) error {
	if r.SaveErr != nil {
		return r.SaveErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.profiles[profile.Username]
	if !ok {
		clone := *profile
		r.profiles[profile.Username] = &clone
		return nil
	}
	if profile.FirstName != "" {
		existing.FirstName = profile.FirstName
	}
	if profile.LastName != "" {
		existing.LastName = profile.LastName
	}
	if profile.Email != "" {
		existing.Email = profile.Email
	}
	if profile.PhoneNumber != "" {
		existing.PhoneNumber = profile.PhoneNumber
	}
	if profile.TechnologyInterest != "" {
		existing.TechnologyInterest = profile.TechnologyInterest
	}
	return nil
}

func (r *MockUserProfileRepository) Get(ctx context.Context, username string) (*entity.UserProfile, error) {
	if r.GetErr != nil {
		return nil, r.GetErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if profile, ok := r.profiles[username]; ok {
		clone := *profile
		return &clone, nil
	}
	return nil, nil
}

// MockStoreHealth is a canned implementation of StoreHealth.
type MockStoreHealth struct {
	Connected    bool
	RoundTripErr error
}

var _ dao.StoreHealth = (*MockStoreHealth)(nil)

func (m *MockStoreHealth) IsConnected(ctx context.Context, timeoutSeconds int) bool {
	if timeoutSeconds <= 0 {
		return false
	}
	return m.Connected
}

func (m *MockStoreHealth) RoundTrip(ctx context.Context) error {
	return m.RoundTripErr
}
