package tenantdb

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/altosaas/tenantkit/pkg/tenantconfig"
)

// Connector opens a pooled client for a tenant. Implementations may perform
// blocking network I/O; the factory guarantees at most one invocation per
// tenant is in flight at a time.
type Connector func(ctx context.Context, settings tenantconfig.Settings) (*mongo.Client, error)

// defaultConnector builds a client from the tenant's settings and verifies
// connectivity with a ping before handing it out. The driver has no dedicated
// wait-queue option; the client-wide operation timeout is what bounds waiting
// for a pooled connection, so the configured wait queue timeout is applied
// there.
func defaultConnector(connectTimeout time.Duration) Connector {
	return func(ctx context.Context, settings tenantconfig.Settings) (*mongo.Client, error) {
		client, err := mongo.Connect(
			options.Client().
				ApplyURI(settings.ConnectionURL).
				SetConnectTimeout(connectTimeout).
				SetMaxPoolSize(settings.MaxPoolSize).
				SetMinPoolSize(settings.MinPoolSize).
				SetTimeout(settings.WaitQueueTimeout),
		)
		if err != nil {
			return nil, err
		}

		pingCtx, cancel := context.WithTimeout(ctx, connectTimeout)
		defer cancel()
		if err := client.Ping(pingCtx, nil); err != nil {
			_ = client.Disconnect(context.WithoutCancel(ctx))
			return nil, err
		}
		return client, nil
	}
}
