// Package document defines MongoDB document structs for persistence.
// These structs are separate from domain entities to allow for
// store-specific field layout and to keep the entities free of bson tags.
package document

import "time"

// PositionDocument is an embedded tile coordinate.
type PositionDocument struct {
	X int `bson:"x"`
	Y int `bson:"y"`
}

// UserRecordDocument represents a user's journey progress in MongoDB.
// The username is the document key, so the store can never hold two
// documents for the same username.
type UserRecordDocument struct {
	Username          string            `bson:"_id"`
	ID                string            `bson:"id,omitempty"`
	CompletedMissions []string          `bson:"completed_missions"`
	ItemsCollected    []string          `bson:"items_collected"`
	CurrentMission    string            `bson:"current_mission,omitempty"`
	Position          *PositionDocument `bson:"position,omitempty"`
	CreatedAt         time.Time         `bson:"created_at,omitempty"`
	UpdatedAt         time.Time         `bson:"updated_at,omitempty"`
}

// CollectionName returns the MongoDB collection name for user records.
func (UserRecordDocument) CollectionName() string {
	return "users"
}
