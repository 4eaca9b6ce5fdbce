package tenantdb_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/altosaas/tenantkit/pkg/tenantconfig"
	"github.com/altosaas/tenantkit/pkg/tenantdb"
)

// newTestClient builds a real driver client without touching the network:
// mongo.Connect performs no I/O, only Ping and operations do.
func newTestClient(t *testing.T) *mongo.Client {
	t.Helper()
	client, err := mongo.Connect(options.Client().
		ApplyURI("mongodb://127.0.0.1:27017").
		SetServerSelectionTimeout(100 * time.Millisecond))
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = client.Disconnect(context.Background())
	})
	return client
}

func newTestRegistry(t *testing.T, ids ...string) *tenantconfig.Registry {
	t.Helper()
	entries := make([]tenantconfig.Settings, len(ids))
	for i, id := range ids {
		entries[i] = tenantconfig.Settings{
			ID:            id,
			ConnectionURL: "mongodb://db." + id + ".internal:27017",
			DatabaseName:  id + "Db",
		}
	}
	registry, err := tenantconfig.New(entries)
	require.NoError(t, err)
	return registry
}

// stubConnector returns a connector that hands out a fresh offline client per
// tenant without any network I/O.
func stubConnector(t *testing.T) tenantdb.Connector {
	t.Helper()
	return func(ctx context.Context, settings tenantconfig.Settings) (*mongo.Client, error) {
		return newTestClient(t), nil
	}
}
