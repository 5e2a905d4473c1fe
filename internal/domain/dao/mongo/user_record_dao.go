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

// userRecordDAO implements dao.UserRecordDAO using MongoDB.
type userRecordDAO struct {
	*baseMongoDAO
	client *mongo.Client
	mapper *mapper.UserRecordMapper
}

// NewUserRecordDAO creates a new MongoDB-based UserRecordDAO.
func NewUserRecordDAO(db *mongo.Database, client *mongo.Client) dao.UserRecordDAO {
	return &userRecordDAO{
		baseMongoDAO: newBaseMongoDAO(db, document.UserRecordDocument{}.CollectionName()),
		client:       client,
		mapper:       mapper.NewUserRecordMapper(),
	}
}

// GetOrCreate fetches the record for username, creating an empty one on
// first sight. A document written without an id field gets it backfilled
// with a merge write, mirroring how the read path has always repaired
// legacy documents.
func (d *userRecordDAO) GetOrCreate(ctx context.Context, username string) (*entity.UserRecord, error) {
	var doc document.UserRecordDocument
	err := d.findByKey(ctx, username, &doc)
	if err == mongo.ErrNoDocuments {
		return d.create(ctx, username)
	}
	if err != nil {
		return nil, err
	}

	if doc.ID == "" {
		if err := d.mergeSet(ctx, username, bson.M{"id": username}); err != nil {
			return nil, err
		}
		doc.ID = username
	}

	return d.mapper.ToEntity(&doc), nil
}

func (d *userRecordDAO) create(ctx context.Context, username string) (*entity.UserRecord, error) {
	rec := entity.NewUserRecord(username)
	rec.CreatedAt = time.Now()
	rec.UpdatedAt = rec.CreatedAt

	if err := d.insertOne(ctx, d.mapper.ToDocument(rec)); err != nil {
		// A concurrent GetOrCreate may have inserted the same key first;
		// in that case the existing document is authoritative.
		if mongo.IsDuplicateKeyError(err) {
			var doc document.UserRecordDocument
			if ferr := d.findByKey(ctx, username, &doc); ferr == nil {
				return d.mapper.ToEntity(&doc), nil
			}
		}
		return nil, err
	}
	return rec, nil
}

// Set merge-writes the given fields into the user's document.
func (d *userRecordDAO) Set(ctx context.Context, username string, fields map[string]any) error {
	set := bson.M{"updated_at": time.Now()}
	for k, v := range fields {
		set[k] = v
	}
	return d.mergeSet(ctx, username, set)
}

// AddCompletedMission appends missionID inside a read-modify-write
// transaction. Each transaction re-reads the list before writing it back,
// so two concurrent appends for the same username both end up on the record
// regardless of commit order. A missing record is created first, matching
// the read path's lazy-create behavior.
func (d *userRecordDAO) AddCompletedMission(ctx context.Context, username, missionID string) (*entity.UserRecord, error) {
	session, err := d.client.StartSession()
	if err != nil {
		return nil, err
	}
	defer session.EndSession(ctx)

	result, err := session.WithTransaction(ctx, func(sc mongo.SessionContext) (any, error) {
		var doc document.UserRecordDocument
		err := d.collection.FindOne(sc, bson.M{"_id": username}).Decode(&doc)
		if err == mongo.ErrNoDocuments {
			rec := entity.NewUserRecord(username)
			rec.CreatedAt = time.Now()
			rec.UpdatedAt = rec.CreatedAt
			doc = *d.mapper.ToDocument(rec)
			if _, err := d.collection.InsertOne(sc, &doc); err != nil {
				return nil, err
			}
		} else if err != nil {
			return nil, err
		}

		missions := append(doc.CompletedMissions, missionID)
		update := bson.M{"$set": bson.M{
			"completed_missions": missions,
			"updated_at":         time.Now(),
		}}
		if _, err := d.collection.UpdateOne(sc, bson.M{"_id": username}, update); err != nil {
			return nil, err
		}

		doc.CompletedMissions = missions
		return &doc, nil
	})
	if err != nil {
		return nil, err
	}

	return d.mapper.ToEntity(result.(*document.UserRecordDocument)), nil
}
