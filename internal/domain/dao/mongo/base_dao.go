// Package mongo provides MongoDB-based DAO implementations.
package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// baseMongoDAO provides the common document operations shared by the DAOs.
// Every collection here is keyed by username in the _id field, which is what
// guarantees a single document per user.
type baseMongoDAO struct {
	collection *mongo.Collection
}

// newBaseMongoDAO creates a new base MongoDB DAO instance.
func newBaseMongoDAO(db *mongo.Database, collectionName string) *baseMongoDAO {
	return &baseMongoDAO{
		collection: db.Collection(collectionName),
	}
}

// findByKey finds the document with the given _id.
func (d *baseMongoDAO) findByKey(ctx context.Context, key string, result any) error {
	return d.collection.FindOne(ctx, bson.M{"_id": key}).Decode(result)
}

// insertOne inserts a single document.
func (d *baseMongoDAO) insertOne(ctx context.Context, doc any) error {
	_, err := d.collection.InsertOne(ctx, doc)
	return err
}

// mergeSet merge-writes the given fields into the document with the given
// _id, creating the document when absent. Fields not named are untouched.
func (d *baseMongoDAO) mergeSet(ctx context.Context, key string, fields bson.M) error {
	opts := options.Update().SetUpsert(true)
	_, err := d.collection.UpdateOne(ctx, bson.M{"_id": key}, bson.M{"$set": fields}, opts)
	return err
}
