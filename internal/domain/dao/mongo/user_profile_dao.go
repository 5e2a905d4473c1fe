package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/devjourney/journey-go/internal/domain/dao"
	"github.com/devjourney/journey-go/internal/domain/dao/mongo/document"
	"github.com/devjourney/journey-go/internal/domain/dao/mongo/mapper"
	"github.com/devjourney/journey-go/internal/domain/entity"
)

// userProfileDAO implements dao.UserProfileDAO using MongoDB.
type userProfileDAO struct {
	*baseMongoDAO
	mapper *mapper.UserProfileMapper
}

// NewUserProfileDAO creates a new MongoDB-based UserProfileDAO.
func NewUserProfileDAO(db *mongo.Database) dao.UserProfileDAO {
	return &userProfileDAO{
		baseMongoDAO: newBaseMongoDAO(db, document.UserProfileDocument{}.CollectionName()),
		mapper:       mapper.NewUserProfileMapper(),
	}
}

// Save merge-writes the profile fields, creating the document when absent.
// Empty fields are omitted from the write so they cannot clobber values a
// previous submission filled in.
func (d *userProfileDAO) Save(ctx context.Context, profile *entity.UserProfile) error {
	fields := bson.M{"updated_at": time.Now()}
	if profile.FirstName != "" {
		fields["first_name"] = profile.FirstName
	}
	if profile.LastName != "" {
		fields["last_name"] = profile.LastName
	}
	if profile.Email != "" {
		fields["email"] = profile.Email
	}
	if profile.PhoneNumber != "" {
		fields["phone_number"] = profile.PhoneNumber
	}
	if profile.TechnologyInterest != "" {
		fields["technology_interest"] = profile.TechnologyInterest
	}
	return d.mergeSet(ctx, profile.Username, fields)
}

// Get fetches a profile by username, nil when absent.
func (d *userProfileDAO) Get(ctx context.Context, username string) (*entity.UserProfile, error) {
	var doc document.UserProfileDocument
	err := d.findByKey(ctx, username, &doc)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return d.mapper.ToEntity(&doc), nil
}
