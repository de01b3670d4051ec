package repository

import (
	"context"
	"os"
	"testing"
	"time"

	"quicknotes/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// Runs against a real server only when TEST_MONGO_URI is set, e.g.
// TEST_MONGO_URI=mongodb://localhost:27017 go test ./repository/...
func TestMongoStores(t *testing.T) {
	uri := os.Getenv("TEST_MONGO_URI")
	if uri == "" {
		t.Skip("TEST_MONGO_URI not set")
	}

	cfg := config.DatabaseConfig{
		Driver:          config.DriverMongo,
		URI:             uri,
		MaxPoolSize:     10,
		MaxConnIdleTime: time.Minute,
		DatabaseName:    "quicknotes_test_" + uuid.NewString()[:8],
		UsersCollection: "users",
		NotesCollection: "notes",
		RetryWrites:     true,
		Timeout:         10 * time.Second,
	}

	ctx := context.Background()
	stores, err := Open(ctx, cfg)
	require.NoError(t, err)

	client, err := ConnectMongo(ctx, cfg)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = client.Database(cfg.DatabaseName).Drop(context.Background())
		_ = client.Disconnect(context.Background())
		_ = stores.Close(context.Background())
	})

	runStoreSuite(t, stores)
}
