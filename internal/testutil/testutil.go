// Package testutil holds shared helpers for tests that need external
// infrastructure or unique fixtures.
package testutil

import (
	"context"
	"fmt"
	"os"
	"sync/atomic"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
)

var usernameCounter uint64

// UniqueUsername returns a username no other test in the run has used.
func UniqueUsername(prefix string) string {
	n := atomic.AddUint64(&usernameCounter, 1)
	return fmt.Sprintf("%s-%d-%d", prefix, os.Getpid(), n)
}

// Logger returns a zap logger wired to the test's log output.
func Logger(t *testing.T) *zap.Logger {
	return zaptest.NewLogger(t)
}

// MongoClient connects to the Mongo instance named by TEST_MONGO_URI and
// skips the test when the variable is unset. The client is closed when the
// test finishes.
func MongoClient(t *testing.T) *mongo.Client {
	t.Helper()

	uri := os.Getenv("TEST_MONGO_URI")
	if uri == "" {
		t.Skip("TEST_MONGO_URI not set; skipping store integration test")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		t.Fatalf("connecting to test mongo: %v", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		t.Fatalf("pinging test mongo: %v", err)
	}

	t.Cleanup(func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = client.Disconnect(disconnectCtx)
	})

	return client
}

// MongoDatabase returns a database scoped to this test run.
func MongoDatabase(t *testing.T, client *mongo.Client) *mongo.Database {
	t.Helper()

	name := os.Getenv("TEST_MONGO_DB")
	if name == "" {
		name = "journey_test"
	}
	return client.Database(name)
}
