package mapper

import (
	"github.com/devjourney/journey-go/internal/domain/dao/mongo/document"
	"github.com/devjourney/journey-go/internal/domain/entity"
)

// UserProfileMapper converts between UserProfile entity and UserProfileDocument.
type UserProfileMapper struct{}

// NewUserProfileMapper creates a new UserProfileMapper instance.
func NewUserProfileMapper() *UserProfileMapper {
	return &UserProfileMapper{}
}

// ToDocument converts a UserProfile entity to a UserProfileDocument.
func (m *UserProfileMapper) ToDocument(p *entity.UserProfile) *document.UserProfileDocument {
	if p == nil {
		return nil
	}
	return &document.UserProfileDocument{
		Username:           p.Username,
		FirstName:          p.FirstName,
		LastName:           p.LastName,
		Email:              p.Email,
		PhoneNumber:        p.PhoneNumber,
		TechnologyInterest: p.TechnologyInterest,
		UpdatedAt:          p.UpdatedAt,
	}
}

// ToEntity converts a UserProfileDocument to a UserProfile entity.
func (m *UserProfileMapper) ToEntity(doc *document.UserProfileDocument) *entity.UserProfile {
	if doc == nil {
		return nil
	}
	return &entity.UserProfile{
		Username:           doc.Username,
		FirstName:          doc.FirstName,
		LastName:           doc.LastName,
		Email:              doc.Email,
		PhoneNumber:        doc.PhoneNumber,
		TechnologyInterest: doc.TechnologyInterest,
		UpdatedAt:          doc.UpdatedAt,
	}
}
