package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/devjourney/journey-go/internal/domain/dao"
)

// maxProbeTimeoutSeconds caps the probe timeout at the store's own
// per-request ceiling; a longer client timeout would never trigger.
const maxProbeTimeoutSeconds = 60

// diagnosticCollection holds the round-trip test document.
const diagnosticCollection = "_connection_test"

// storeHealth implements dao.StoreHealth against a MongoDB database.
type storeHealth struct {
	db *mongo.Database
}

// NewStoreHealth creates a StoreHealth probe for the given database.
func NewStoreHealth(db *mongo.Database) dao.StoreHealth {
	return &storeHealth{db: db}
}

// IsConnected races a collection-name listing against a timer. The listing
// is not cancelled when the timer wins; it is read-only metadata, so letting
// it finish late is harmless.
func (h *storeHealth) IsConnected(ctx context.Context, timeoutSeconds int) bool {
	if timeoutSeconds <= 0 {
		// A zero-length timer can never lose the race to a network call.
		return false
	}
	if timeoutSeconds > maxProbeTimeoutSeconds {
		timeoutSeconds = maxProbeTimeoutSeconds
	}

	done := make(chan error, 1)
	go func() {
		_, err := h.db.ListCollectionNames(ctx, bson.D{})
		done <- err
	}()

	timer := time.NewTimer(time.Duration(timeoutSeconds) * time.Second)
	defer timer.Stop()

	select {
	case err := <-done:
		return err == nil
	case <-timer.C:
		return false
	}
}

// RoundTrip writes a timestamped diagnostic document and reads it back.
func (h *storeHealth) RoundTrip(ctx context.Context) error {
	coll := h.db.Collection(diagnosticCollection)

	stamp := time.Now().UTC().Format(time.RFC3339Nano)
	filter := bson.M{"_id": "test"}
	update := bson.M{"$set": bson.M{"timestamp": stamp}}
	opts := options.Update().SetUpsert(true)
	if _, err := coll.UpdateOne(ctx, filter, update, opts); err != nil {
		return fmt.Errorf("diagnostic write failed: %w", err)
	}

	var doc struct {
		Timestamp string `bson:"timestamp"`
	}
	if err := coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		return fmt.Errorf("diagnostic read failed: %w", err)
	}
	if doc.Timestamp != stamp {
		return fmt.Errorf("diagnostic read returned stale timestamp %q", doc.Timestamp)
	}
	return nil
}
