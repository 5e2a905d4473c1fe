// Package mapper provides conversion between domain entities and MongoDB
// documents.
package mapper

import (
	"github.com/devjourney/journey-go/internal/domain/dao/mongo/document"
	"github.com/devjourney/journey-go/internal/domain/entity"
	"github.com/devjourney/journey-go/internal/game"
)

// UserRecordMapper converts between UserRecord entity and UserRecordDocument.
type UserRecordMapper struct{}

// NewUserRecordMapper creates a new UserRecordMapper instance.
func NewUserRecordMapper() *UserRecordMapper {
	return &UserRecordMapper{}
}

// ToDocument converts a UserRecord entity to a UserRecordDocument.
func (m *UserRecordMapper) ToDocument(rec *entity.UserRecord) *document.UserRecordDocument {
	if rec == nil {
		return nil
	}

	doc := &document.UserRecordDocument{
		Username:          rec.Username,
		ID:                rec.ID,
		CompletedMissions: rec.CompletedMissions,
		ItemsCollected:    rec.ItemsCollected,
		CurrentMission:    rec.CurrentMission,
		CreatedAt:         rec.CreatedAt,
		UpdatedAt:         rec.UpdatedAt,
	}
	if doc.CompletedMissions == nil {
		doc.CompletedMissions = []string{}
	}
	if doc.ItemsCollected == nil {
		doc.ItemsCollected = []string{}
	}
	if rec.Position != nil {
		doc.Position = &document.PositionDocument{X: rec.Position.X, Y: rec.Position.Y}
	}

	return doc
}

// ToEntity converts a UserRecordDocument to a UserRecord entity. Documents
// written by earlier revisions may lack the id field or the lists; the
// entity is normalized so callers always see them populated.
func (m *UserRecordMapper) ToEntity(doc *document.UserRecordDocument) *entity.UserRecord {
	if doc == nil {
		return nil
	}

	rec := &entity.UserRecord{
		ID:                doc.ID,
		Username:          doc.Username,
		CompletedMissions: doc.CompletedMissions,
		ItemsCollected:    doc.ItemsCollected,
		CurrentMission:    doc.CurrentMission,
		CreatedAt:         doc.CreatedAt,
		UpdatedAt:         doc.UpdatedAt,
	}
	if doc.Position != nil {
		rec.Position = &game.Position{X: doc.Position.X, Y: doc.Position.Y}
	}
	rec.Normalize()

	return rec
}
