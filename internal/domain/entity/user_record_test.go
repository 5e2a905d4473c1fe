package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewUserRecord(t *testing.T) {
	rec := NewUserRecord("alice")

	assert.Equal(t, "alice", rec.ID)
	assert.Equal(t, "alice", rec.Username)
	assert.NotNil(t, rec.CompletedMissions)
	assert.Empty(t, rec.CompletedMissions)
	assert.NotNil(t, rec.ItemsCollected)
	assert.Empty(t, rec.ItemsCollected)
}

func TestUserRecord_Normalize(t *testing.T) {
	rec := &UserRecord{Username: "bob"}
	rec.Normalize()

	assert.Equal(t, "bob", rec.ID)
	assert.NotNil(t, rec.CompletedMissions)
	assert.NotNil(t, rec.ItemsCollected)

	// An existing ID is left alone.
	rec = &UserRecord{ID: "custom", Username: "bob"}
	rec.Normalize()
	assert.Equal(t, "custom", rec.ID)
}

func TestUserRecord_HasCompleted(t *testing.T) {
	rec := NewUserRecord("alice")
	assert.False(t, rec.HasCompleted("mission-1"))

	rec.CompletedMissions = append(rec.CompletedMissions, "mission-1", "mission-2")
	assert.True(t, rec.HasCompleted("mission-1"))
	assert.True(t, rec.HasCompleted("mission-2"))
	assert.False(t, rec.HasCompleted("mission-3"))
}
